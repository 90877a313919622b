package players

import (
	"github.com/redis/go-redis/v9"
)

// NewRedis creates a new Redis-backed player repository with default settings
func NewRedis(client redis.UniversalClient, keyPrefix string) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client:       client,
		TimeProvider: NewTimeProvider(),
		KeyPrefix:    keyPrefix,
	})
}
