package config

import (
	"os"
	"testing"
	"time"

	arenaerr "github.com/KirkDiggler/arena/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears keys for the test and restores them afterwards
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "ARENA_REDIS_URL", "ARENA_REDIS_TIMEOUT", "ARENA_KEY_PREFIX")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Redis.URL)
	assert.Equal(t, 5*time.Second, cfg.Redis.Timeout)
	assert.Equal(t, "arena", cfg.Redis.KeyPrefix)
	assert.False(t, cfg.UseRedis())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ARENA_REDIS_URL", "redis://localhost:6379/2")
	t.Setenv("ARENA_REDIS_TIMEOUT", "250ms")
	t.Setenv("ARENA_KEY_PREFIX", "test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "redis://localhost:6379/2", cfg.Redis.URL)
	assert.Equal(t, 250*time.Millisecond, cfg.Redis.Timeout)
	assert.Equal(t, "test", cfg.Redis.KeyPrefix)
	assert.True(t, cfg.UseRedis())
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("ARENA_REDIS_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, arenaerr.IsInvalidArgument(err))
}

func TestLoad_NonPositiveTimeout(t *testing.T) {
	t.Setenv("ARENA_REDIS_TIMEOUT", "-1s")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, arenaerr.IsInvalidArgument(err))
}
