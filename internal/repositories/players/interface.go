package players

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/arena/internal/domain/player"
)

// Repository defines the interface for player persistence
type Repository interface {
	// Create stores a new player
	Create(ctx context.Context, p *player.Player) error

	// Get retrieves a player by ID
	Get(ctx context.Context, id string) (*player.Player, error)

	// Update replaces an existing player
	Update(ctx context.Context, p *player.Player) error

	// Delete removes a player
	Delete(ctx context.Context, id string) error

	// ListByOwner retrieves all players for a specific owner
	ListByOwner(ctx context.Context, ownerID string) ([]*player.Player, error)
}
