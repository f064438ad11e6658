package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-quest/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "player not found",
			expected: "NOT_FOUND: player not found",
		},
		{
			name:     "out of range error",
			code:     errors.CodeOutOfRange,
			message:  "quest index out of range",
			expected: "OUT_OF_RANGE: quest index out of range",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("player not found").
		WithMeta("client_id", "alice").
		WithMeta("quest", "Catacombs")

	s.Equal("alice", err.Meta["client_id"])
	s.Equal("Catacombs", err.Meta["quest"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("redis connection refused")
	wrapped := errors.Wrap(baseErr, "failed to list clients")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to list clients", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.NotFound("unknown enemy kind")
	wrapped := errors.Wrap(baseErr, "failed to generate room")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("failed to generate room", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.NotFound("record missing").WithMeta("key", "quest:lobby")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeUnavailable, "snapshot store unavailable")

	s.Equal(errors.CodeUnavailable, wrapped.Code)
	s.Equal("quest:lobby", wrapped.Meta["key"])
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestConstructorFunctions() {
	testCases := []struct {
		name        string
		constructor func() *errors.Error
		code        errors.Code
	}{
		{"NotFound", func() *errors.Error { return errors.NotFound("test") }, errors.CodeNotFound},
		{"InvalidArgument", func() *errors.Error { return errors.InvalidArgument("test") }, errors.CodeInvalidArgument},
		{"AlreadyExists", func() *errors.Error { return errors.AlreadyExists("test") }, errors.CodeAlreadyExists},
		{"FailedPrecondition", func() *errors.Error { return errors.FailedPrecondition("test") }, errors.CodeFailedPrecondition},
		{"Internal", func() *errors.Error { return errors.Internal("test") }, errors.CodeInternal},
		{"Unavailable", func() *errors.Error { return errors.Unavailable("test") }, errors.CodeUnavailable},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.constructor()
			s.Equal(tc.code, err.Code)
			s.Equal("test", err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestFormattedConstructors() {
	err := errors.OutOfRangef("quest index %d out of range", 3)
	s.Equal(errors.CodeOutOfRange, err.Code)
	s.Equal("quest index 3 out of range", err.Message)

	err2 := errors.AlreadyExistsf("client %s already in quest", "bob")
	s.Equal(errors.CodeAlreadyExists, err2.Code)
	s.Equal("client bob already in quest", err2.Message)
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.NotFound("test")
	err2 := errors.NotFound("other")
	err3 := errors.InvalidArgument("test")

	s.True(err1.Is(err2))
	s.False(err1.Is(err3))
	s.True(errors.Is(errors.Wrap(err1, "wrapped"), err2))
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	notFoundErr := errors.NotFound("test")
	preconditionErr := errors.FailedPrecondition("test")
	wrappedErr := errors.Wrap(notFoundErr, "wrapped")

	s.True(errors.IsNotFound(notFoundErr))
	s.True(errors.IsNotFound(wrappedErr))
	s.False(errors.IsNotFound(preconditionErr))

	s.True(errors.IsFailedPrecondition(preconditionErr))
	s.False(errors.IsFailedPrecondition(notFoundErr))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.NotFound("test")
	wrapped := errors.Wrap(err, "wrapped")

	s.Equal(errors.CodeNotFound, errors.GetCode(err))
	s.Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	err := errors.NotFound("player not in quest")
	wrapped := errors.Wrap(err, "vote rejected")
	stdErr := fmt.Errorf("standard error")

	s.Equal("player not in quest", errors.GetMessage(err))
	s.Equal("vote rejected", errors.GetMessage(wrapped))
	s.Equal("standard error", errors.GetMessage(stdErr))
	s.Nil(errors.GetMeta(stdErr))
}

func (s *ErrorsTestSuite) TestGRPCRoundTrip() {
	err := errors.NotFound("player not in quest").
		WithMeta("client_id", "alice")

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.NotFound, st.Code())
	s.Equal("player not in quest", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.Equal(errors.CodeNotFound, errors.GetCode(back))
	s.Equal("alice", errors.GetMeta(back)["client_id"])
}

func (s *ErrorsTestSuite) TestGRPCPlainErrors() {
	s.Nil(errors.ToGRPCError(nil))

	st, ok := status.FromError(errors.ToGRPCError(fmt.Errorf("boom")))
	s.Require().True(ok)
	s.Equal(codes.Internal, st.Code())

	already := status.Error(codes.Aborted, "aborted")
	s.Equal(already, errors.ToGRPCError(already))

	err := errors.FromGRPCError(status.Error(codes.FailedPrecondition, "no quest in progress"))
	s.True(errors.IsFailedPrecondition(err))
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeAlreadyExists, codes.AlreadyExists},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition},
		{errors.CodeOutOfRange, codes.OutOfRange},
		{errors.CodeInternal, codes.Internal},
		{errors.CodeUnavailable, codes.Unavailable},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}
