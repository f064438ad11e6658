package clients_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-quest/internal/entities"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
	"github.com/KirkDiggler/rpg-quest/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-quest/internal/repositories/clients"
	"github.com/KirkDiggler/rpg-quest/internal/testutils"
)

// RepositoryTestSuite runs the same behaviour checks against every backend
type RepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	clock   *clock.Fake
	newRepo func(clk clock.Clock) clients.Repository
	repo    clients.Repository
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(clk clock.Clock) clients.Repository { return clients.NewInMemory(clk) },
	})
}

func TestRedisRepositorySuite(t *testing.T) {
	s := &RepositoryTestSuite{}
	s.newRepo = func(clk clock.Clock) clients.Repository {
		client, _ := testutils.CreateTestRedisClient(s.T())
		repo, err := clients.NewRedisRepository(&clients.Config{
			Client:    client,
			SessionID: "lobby",
			Clock:     clk,
		})
		s.Require().NoError(err)
		return repo
	}
	suite.Run(t, s)
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewFake(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	s.repo = s.newRepo(s.clock)
}

func (s *RepositoryTestSuite) add(id string) *entities.Client {
	out, err := s.repo.Add(s.ctx, &clients.AddInput{Client: &entities.Client{ID: id}})
	s.Require().NoError(err)
	s.clock.Advance(time.Second)
	return out.Client
}

func (s *RepositoryTestSuite) ids() []string {
	out, err := s.repo.List(s.ctx, &clients.ListInput{})
	s.Require().NoError(err)

	ids := make([]string, 0, len(out.Clients))
	for _, c := range out.Clients {
		ids = append(ids, c.ID)
	}
	return ids
}

func (s *RepositoryTestSuite) TestListIsOrderedByConnectionTime() {
	s.add("zed")
	s.add("alice")
	s.add("bob")

	s.Equal([]string{"zed", "alice", "bob"}, s.ids())
}

func (s *RepositoryTestSuite) TestAddStampsConnectionTime() {
	c := s.add("alice")
	s.Equal(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), c.ConnectedAt.UTC())

	got, err := s.repo.Get(s.ctx, &clients.GetInput{ClientID: "alice"})
	s.Require().NoError(err)
	s.True(c.ConnectedAt.Equal(got.Client.ConnectedAt))
}

func (s *RepositoryTestSuite) TestAddDuplicate() {
	s.add("alice")

	_, err := s.repo.Add(s.ctx, &clients.AddInput{Client: &entities.Client{ID: "alice"}})
	s.True(errors.IsAlreadyExists(err))
	s.Equal([]string{"alice"}, s.ids())
}

func (s *RepositoryTestSuite) TestRemove() {
	s.add("alice")
	s.add("bob")

	out, err := s.repo.Remove(s.ctx, &clients.RemoveInput{ClientID: "alice"})
	s.Require().NoError(err)
	s.True(out.Removed)
	s.Equal([]string{"bob"}, s.ids())

	out, err = s.repo.Remove(s.ctx, &clients.RemoveInput{ClientID: "alice"})
	s.Require().NoError(err)
	s.False(out.Removed)

	_, err = s.repo.Get(s.ctx, &clients.GetInput{ClientID: "alice"})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestEmptyList() {
	s.Empty(s.ids())
}

func (s *RepositoryTestSuite) TestRejectsMissingIDs() {
	_, err := s.repo.Add(s.ctx, &clients.AddInput{Client: &entities.Client{}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Remove(s.ctx, &clients.RemoveInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepository_ListFailure(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer func() { _ = db.Close() }()

	repo, err := clients.NewRedisRepository(&clients.Config{
		Client:    db,
		SessionID: "lobby",
		Clock:     clock.New(),
	})
	require.NoError(t, err)

	mock.ExpectZRange("quest:lobby:clients", 0, -1).SetErr(context.DeadlineExceeded)

	_, err = repo.List(context.Background(), &clients.ListInput{})
	assert.True(t, errors.IsUnavailable(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewRedisRepository_Validates(t *testing.T) {
	_, err := clients.NewRedisRepository(&clients.Config{})
	assert.True(t, errors.IsInvalidArgument(err))
}
