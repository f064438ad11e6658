package clients

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-quest/internal/entities"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
	"github.com/KirkDiggler/rpg-quest/internal/pkg/clock"
)

// InMemoryRepository implements Repository in process. Clients connected at
// the same instant keep their insertion order.
type InMemoryRepository struct {
	clock clock.Clock

	mu    sync.RWMutex
	order []string
	store map[string]*entities.Client
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates a new in-memory repository
func NewInMemory(clk clock.Clock) *InMemoryRepository {
	if clk == nil {
		clk = clock.New()
	}
	return &InMemoryRepository{
		clock: clk,
		store: make(map[string]*entities.Client),
	}
}

// Add registers a client
func (r *InMemoryRepository) Add(_ context.Context, input *AddInput) (*AddOutput, error) {
	if input == nil || input.Client == nil {
		return nil, errors.InvalidArgument("client is required")
	}
	if input.Client.ID == "" {
		return nil, errors.InvalidArgument("client ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Client.ID]; exists {
		return nil, errors.AlreadyExistsf("client %s already connected", input.Client.ID).
			WithMeta("client_id", input.Client.ID)
	}

	c := *input.Client
	if c.ConnectedAt.IsZero() {
		c.ConnectedAt = r.clock.Now()
	}

	// keep order sorted by connection time, stable for ties
	pos := len(r.order)
	for pos > 0 && r.store[r.order[pos-1]].ConnectedAt.After(c.ConnectedAt) {
		pos--
	}
	r.order = append(r.order, "")
	copy(r.order[pos+1:], r.order[pos:])
	r.order[pos] = c.ID
	r.store[c.ID] = &c

	out := c
	return &AddOutput{Client: &out}, nil
}

// Remove forgets a client
func (r *InMemoryRepository) Remove(_ context.Context, input *RemoveInput) (*RemoveOutput, error) {
	if input == nil || input.ClientID == "" {
		return nil, errors.InvalidArgument("client ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ClientID]; !exists {
		return &RemoveOutput{Removed: false}, nil
	}

	delete(r.store, input.ClientID)
	for i, id := range r.order {
		if id == input.ClientID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return &RemoveOutput{Removed: true}, nil
}

// Get retrieves a client by id
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.ClientID == "" {
		return nil, errors.InvalidArgument("client ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.store[input.ClientID]
	if !exists {
		return nil, errors.NotFoundf("client %s not found", input.ClientID)
	}

	out := *c
	return &GetOutput{Client: &out}, nil
}

// List returns every client ordered by connection time
func (r *InMemoryRepository) List(_ context.Context, _ *ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clients := make([]*entities.Client, 0, len(r.order))
	for _, id := range r.order {
		c := *r.store[id]
		clients = append(clients, &c)
	}

	return &ListOutput{Clients: clients}, nil
}
