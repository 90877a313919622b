package players

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/arena/internal/domain/player"
	arenaerr "github.com/KirkDiggler/arena/internal/errors"
)

// Data represents the serialized form of a player in Redis.
// Mana is null for players without a mana pool.
type Data struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Health    uint32    `json:"health"`
	Mana      *uint32   `json:"mana"`
	Level     uint32    `json:"level"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider // Optional, defaults to wall clock
	KeyPrefix    string       // Optional, defaults to "arena"
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
	prefix       string
}

// NewRedisRepository creates a new Redis-backed player repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	repo := &redisRepo{
		client:       cfg.Client,
		timeProvider: cfg.TimeProvider,
		prefix:       cfg.KeyPrefix,
	}
	if repo.timeProvider == nil {
		repo.timeProvider = NewTimeProvider()
	}
	if repo.prefix == "" {
		repo.prefix = "arena"
	}

	return repo
}

// key generates the Redis key for a player
func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("%s:player:%s", r.prefix, id)
}

// ownerPlayersKey generates the Redis key for an owner's player set
func (r *redisRepo) ownerPlayersKey(ownerID string) string {
	return fmt.Sprintf("%s:owner:%s:players", r.prefix, ownerID)
}

// Create stores a new player
func (r *redisRepo) Create(ctx context.Context, p *player.Player) error {
	if err := validate(p); err != nil {
		return err
	}

	exists, err := r.client.Exists(ctx, r.key(p.ID)).Result()
	if err != nil {
		return arenaerr.Wrap(err, "failed to check player existence").
			WithMeta("player_id", p.ID)
	}
	if exists > 0 {
		return arenaerr.AlreadyExistsf("player with ID '%s' already exists", p.ID).
			WithMeta("player_id", p.ID)
	}

	now := r.timeProvider.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	return r.save(ctx, p)
}

// Get retrieves a player by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*player.Player, error) {
	if id == "" {
		return nil, arenaerr.InvalidArgument("player ID is required")
	}

	raw, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, notFound(id)
		}
		return nil, arenaerr.Wrap(err, "failed to get player from Redis").
			WithMeta("player_id", id)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, arenaerr.WrapWithCode(err, arenaerr.CodeInternal, "failed to unmarshal player data").
			WithMeta("player_id", id)
	}

	return fromData(&data), nil
}

// Update replaces an existing player
func (r *redisRepo) Update(ctx context.Context, p *player.Player) error {
	if err := validate(p); err != nil {
		return err
	}

	exists, err := r.client.Exists(ctx, r.key(p.ID)).Result()
	if err != nil {
		return arenaerr.Wrap(err, "failed to check player existence").
			WithMeta("player_id", p.ID)
	}
	if exists == 0 {
		return notFound(p.ID)
	}

	p.UpdatedAt = r.timeProvider.Now()

	return r.save(ctx, p)
}

// Delete removes a player and its owner index entry
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	p, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, r.ownerPlayersKey(p.OwnerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return arenaerr.Wrap(err, "failed to delete player from Redis").
			WithMeta("player_id", id)
	}

	return nil
}

// ListByOwner retrieves all players for a specific owner, oldest first
func (r *redisRepo) ListByOwner(ctx context.Context, ownerID string) ([]*player.Player, error) {
	if ownerID == "" {
		return nil, arenaerr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.ownerPlayersKey(ownerID)).Result()
	if err != nil {
		return nil, arenaerr.Wrap(err, "failed to get owner players from Redis").
			WithMeta("owner_id", ownerID)
	}

	result := make([]*player.Player, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			p, err := r.Get(gctx, id)
			if err != nil {
				return arenaerr.Wrapf(err, "failed to get player %s", id)
			}
			result[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortPlayers(result)
	return result, nil
}

// save writes the player record and its owner index in one pipeline
func (r *redisRepo) save(ctx context.Context, p *player.Player) error {
	raw, err := json.Marshal(toData(p))
	if err != nil {
		return arenaerr.WrapWithCode(err, arenaerr.CodeInternal, "failed to marshal player data").
			WithMeta("player_id", p.ID)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(p.ID), string(raw), 0)
	pipe.SAdd(ctx, r.ownerPlayersKey(p.OwnerID), p.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return arenaerr.Wrap(err, "failed to save player in Redis").
			WithMeta("player_id", p.ID)
	}

	return nil
}

func toData(p *player.Player) *Data {
	data := &Data{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Name:      p.Name,
		Health:    p.Health,
		Level:     p.Level,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Mana != nil {
		data.Mana = player.ManaPool(*p.Mana)
	}
	return data
}

func fromData(data *Data) *player.Player {
	return &player.Player{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		Health:    data.Health,
		Mana:      data.Mana,
		Level:     data.Level,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
