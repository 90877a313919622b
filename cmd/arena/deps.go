package main

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/arena/internal/config"
	arenaerr "github.com/KirkDiggler/arena/internal/errors"
	"github.com/KirkDiggler/arena/internal/repositories/players"
	playerservice "github.com/KirkDiggler/arena/internal/services/player"
)

// newPlayerService wires the player service to Redis when configured and
// falls back to an in-memory repository otherwise. The returned func closes
// whatever connection was opened.
func newPlayerService(ctx context.Context) (playerservice.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	if !cfg.UseRedis() {
		log.Println("No ARENA_REDIS_URL found, using in-memory repository")
		return playerservice.NewService(&playerservice.ServiceConfig{
			Repository: players.NewInMemoryRepository(nil),
		}), func() {}, nil
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, nil, arenaerr.WrapWithCode(err, arenaerr.CodeInvalidArgument, "failed to parse Redis URL")
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Redis.Timeout)
	defer cancel()

	if pingErr := client.Ping(pingCtx).Err(); pingErr != nil {
		log.Printf("Failed to connect to Redis: %v", pingErr)
		log.Println("Falling back to in-memory repository")
		_ = client.Close()
		return playerservice.NewService(&playerservice.ServiceConfig{
			Repository: players.NewInMemoryRepository(nil),
		}), func() {}, nil
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		}
	}

	return playerservice.NewService(&playerservice.ServiceConfig{
		Repository: players.NewRedis(client, cfg.Redis.KeyPrefix),
	}), cleanup, nil
}
