// Package clients stores the connections known to a game session
package clients

//go:generate mockgen -destination=mock/mock_repository.go -package=clientsmock github.com/KirkDiggler/rpg-quest/internal/repositories/clients Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-quest/internal/entities"
)

// Repository is the client registry of one session
type Repository interface {
	// Add registers a client. Adding a known id fails with AlreadyExists.
	Add(ctx context.Context, input *AddInput) (*AddOutput, error)

	// Remove forgets a client; unknown ids are not an error
	Remove(ctx context.Context, input *RemoveInput) (*RemoveOutput, error)

	// Get retrieves a client by id
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// List returns every client ordered by connection time
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
}

// AddInput defines the request for registering a client
type AddInput struct {
	Client *entities.Client
}

// AddOutput defines the response for registering a client
type AddOutput struct {
	Client *entities.Client
}

// RemoveInput defines the request for removing a client
type RemoveInput struct {
	ClientID string
}

// RemoveOutput defines the response for removing a client
type RemoveOutput struct {
	Removed bool
}

// GetInput defines the request for retrieving a client
type GetInput struct {
	ClientID string
}

// GetOutput defines the response for retrieving a client
type GetOutput struct {
	Client *entities.Client
}

// ListInput defines the request for listing clients
type ListInput struct{}

// ListOutput defines the response for listing clients
type ListOutput struct {
	Clients []*entities.Client
}
