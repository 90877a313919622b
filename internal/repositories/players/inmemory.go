package players

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/arena/internal/domain/player"
	arenaerr "github.com/KirkDiggler/arena/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the player repository
// Useful for testing and for running without Redis
type InMemoryRepository struct {
	mu           sync.RWMutex
	players      map[string]*player.Player
	timeProvider TimeProvider
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository(timeProvider TimeProvider) Repository {
	if timeProvider == nil {
		timeProvider = NewTimeProvider()
	}

	return &InMemoryRepository{
		players:      make(map[string]*player.Player),
		timeProvider: timeProvider,
	}
}

// Create stores a new player
func (r *InMemoryRepository) Create(ctx context.Context, p *player.Player) error {
	if err := validate(p); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.players[p.ID]; exists {
		return arenaerr.AlreadyExistsf("player with ID '%s' already exists", p.ID).
			WithMeta("player_id", p.ID)
	}

	now := r.timeProvider.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	// Store a copy to avoid external modifications
	r.players[p.ID] = p.Clone()

	return nil
}

// Get retrieves a player by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*player.Player, error) {
	if id == "" {
		return nil, arenaerr.InvalidArgument("player ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.players[id]
	if !exists {
		return nil, notFound(id)
	}

	return p.Clone(), nil
}

// Update replaces an existing player
func (r *InMemoryRepository) Update(ctx context.Context, p *player.Player) error {
	if err := validate(p); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.players[p.ID]; !exists {
		return notFound(p.ID)
	}

	p.UpdatedAt = r.timeProvider.Now()
	r.players[p.ID] = p.Clone()

	return nil
}

// Delete removes a player
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return arenaerr.InvalidArgument("player ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.players[id]; !exists {
		return notFound(id)
	}

	delete(r.players, id)
	return nil
}

// ListByOwner retrieves all players for a specific owner, oldest first
func (r *InMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*player.Player, error) {
	if ownerID == "" {
		return nil, arenaerr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*player.Player{}
	for _, p := range r.players {
		if p.OwnerID == ownerID {
			result = append(result, p.Clone())
		}
	}

	sortPlayers(result)
	return result, nil
}

func validate(p *player.Player) error {
	if p == nil {
		return arenaerr.InvalidArgument("player cannot be nil")
	}
	if p.ID == "" {
		return arenaerr.InvalidArgument("player ID is required")
	}
	if p.OwnerID == "" {
		return arenaerr.InvalidArgument("owner ID is required").
			WithMeta("player_id", p.ID)
	}
	return nil
}

func notFound(id string) *arenaerr.Error {
	return arenaerr.NotFoundf("player with ID '%s' not found", id).
		WithMeta("player_id", id)
}

func sortPlayers(list []*player.Player) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
}
