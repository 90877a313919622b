package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	arenaerr "github.com/KirkDiggler/arena/internal/errors"
)

// Config holds all configuration for the application
type Config struct {
	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// URL is optional: without it players are kept in memory
	URL       string        `env:"ARENA_REDIS_URL"`
	Timeout   time.Duration `env:"ARENA_REDIS_TIMEOUT" envDefault:"5s"`
	KeyPrefix string        `env:"ARENA_KEY_PREFIX"    envDefault:"arena"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, arenaerr.WrapWithCode(err, arenaerr.CodeInvalidArgument, "failed to parse environment")
	}

	if cfg.Redis.Timeout <= 0 {
		return nil, arenaerr.InvalidArgumentf("ARENA_REDIS_TIMEOUT must be positive, got %s", cfg.Redis.Timeout)
	}
	if cfg.Redis.KeyPrefix == "" {
		return nil, arenaerr.InvalidArgument("ARENA_KEY_PREFIX cannot be empty")
	}

	return cfg, nil
}

// UseRedis reports whether a Redis URL was configured
func (c *Config) UseRedis() bool {
	return c.Redis.URL != ""
}
