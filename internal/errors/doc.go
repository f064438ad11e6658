// Package errors provides coded errors for the quest engine.
//
// Orchestrators return *Error values whose Code says what went wrong from the
// caller's point of view:
//
//	errors.OutOfRangef("quest index %d out of range", idx)
//	errors.NotFound("player not in quest").WithMeta("client_id", id)
//
// Repository and collaborator failures are wrapped with context and keep
// their code when they already carry one:
//
//	if err := repo.List(ctx); err != nil {
//	    return errors.Wrap(err, "failed to list connected clients")
//	}
//
// Dependency configs validate with the builder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Clock == nil {
//	    vb.RequiredField("Clock")
//	}
//	return vb.Build()
//
// Handlers convert to gRPC with ToGRPCError; metadata is carried in a
// google.rpc.ErrorInfo detail and restored by FromGRPCError on the client.
package errors
