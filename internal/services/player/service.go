package player

import (
	"context"
	"log"
	"strings"

	"github.com/KirkDiggler/arena/internal/domain/player"
	arenaerr "github.com/KirkDiggler/arena/internal/errors"
	"github.com/KirkDiggler/arena/internal/repositories/players"
	"github.com/KirkDiggler/arena/internal/uuid"
)

// Repository is an alias for the player repository interface
type Repository = players.Repository

// Service defines the player service interface
type Service interface {
	// CreatePlayer creates and stores a new player
	CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*player.Player, error)

	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, playerID string) (*player.Player, error)

	// ListPlayers lists all players for an owner
	ListPlayers(ctx context.Context, ownerID string) ([]*player.Player, error)

	// RevivePlayer brings a dead player back and stores the result
	RevivePlayer(ctx context.Context, playerID string) (*player.Player, error)

	// CastSpell has a player cast a spell and stores the spent resources
	CastSpell(ctx context.Context, playerID string, cost uint32) (*CastResult, error)

	// DeletePlayer removes a player
	DeletePlayer(ctx context.Context, playerID string) error
}

// CreatePlayerInput contains data for creating a player.
// A nil Mana creates a player without a mana pool.
type CreatePlayerInput struct {
	OwnerID string
	Name    string
	Health  uint32
	Mana    *uint32
	Level   uint32
}

// CastResult is the outcome of a spell cast
type CastResult struct {
	Player *player.Player
	Damage uint32
}

type service struct {
	repository    Repository
	uuidGenerator uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    Repository     // Required
	UUIDGenerator uuid.Generator // Optional, will use default if nil
}

// NewService creates a new player service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("service config is required")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository: cfg.Repository,
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

func (s *service) CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*player.Player, error) {
	if input == nil {
		return nil, arenaerr.InvalidArgument("input cannot be nil")
	}
	if strings.TrimSpace(input.OwnerID) == "" {
		return nil, arenaerr.InvalidArgument("owner ID is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, arenaerr.InvalidArgument("player name is required")
	}

	p := &player.Player{
		ID:      s.uuidGenerator.New(),
		OwnerID: input.OwnerID,
		Name:    strings.TrimSpace(input.Name),
		Health:  input.Health,
		Level:   input.Level,
	}
	if input.Mana != nil {
		p.Mana = player.ManaPool(*input.Mana)
	}

	if err := s.repository.Create(ctx, p); err != nil {
		return nil, arenaerr.Wrap(err, "failed to create player").
			WithMeta("player_id", p.ID).
			WithMeta("owner_id", p.OwnerID)
	}

	return p, nil
}

func (s *service) GetPlayer(ctx context.Context, playerID string) (*player.Player, error) {
	if strings.TrimSpace(playerID) == "" {
		return nil, arenaerr.InvalidArgument("player ID is required")
	}

	p, err := s.repository.Get(ctx, playerID)
	if err != nil {
		return nil, arenaerr.Wrapf(err, "failed to get player '%s'", playerID).
			WithMeta("player_id", playerID)
	}

	return p, nil
}

func (s *service) ListPlayers(ctx context.Context, ownerID string) ([]*player.Player, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, arenaerr.InvalidArgument("owner ID is required")
	}

	list, err := s.repository.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, arenaerr.Wrapf(err, "failed to list players for owner '%s'", ownerID).
			WithMeta("owner_id", ownerID)
	}

	return list, nil
}

func (s *service) RevivePlayer(ctx context.Context, playerID string) (*player.Player, error) {
	p, err := s.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	revived := p.Revive()
	if revived == nil {
		return nil, arenaerr.Validationf("player '%s' is still alive", playerID).
			WithMeta("player_id", playerID).
			WithMeta("health", p.Health)
	}

	if err := s.repository.Update(ctx, revived); err != nil {
		log.Printf("Failed to store revived player %s: %v", playerID, err)
		return nil, arenaerr.Wrap(err, "failed to store revived player").
			WithMeta("player_id", playerID)
	}

	return revived, nil
}

func (s *service) CastSpell(ctx context.Context, playerID string, cost uint32) (*CastResult, error) {
	p, err := s.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	before := p.Clone()
	damage := p.CastSpell(cost)

	// a failed cast with a mana pool changes nothing
	if p.Health == before.Health && equalMana(p.Mana, before.Mana) {
		return &CastResult{Player: p, Damage: damage}, nil
	}

	if err := s.repository.Update(ctx, p); err != nil {
		log.Printf("Failed to store player %s after casting: %v", playerID, err)
		return nil, arenaerr.Wrap(err, "failed to store player after casting").
			WithMeta("player_id", playerID).
			WithMeta("cost", cost)
	}

	return &CastResult{Player: p, Damage: damage}, nil
}

func (s *service) DeletePlayer(ctx context.Context, playerID string) error {
	if strings.TrimSpace(playerID) == "" {
		return arenaerr.InvalidArgument("player ID is required")
	}

	if err := s.repository.Delete(ctx, playerID); err != nil {
		return arenaerr.Wrapf(err, "failed to delete player '%s'", playerID).
			WithMeta("player_id", playerID)
	}

	return nil
}

func equalMana(a, b *uint32) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
