package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoad(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password1"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Setenv("APP_HOST", "0.0.0.0")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DATABASE_DSN", "test.db")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "30")
	t.Setenv("AUTH_USERNAME", "admin")
	t.Setenv("AUTH_PASSWORD_HASH", string(hash))
	t.Setenv("REDIS_HOST", "redis.local")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "20")

	cfg := Load()

	assert.Equal(t, "0.0.0.0:9090", cfg.AppURL)
	assert.Equal(t, "test.db", cfg.DatabaseDSN)
	assert.Equal(t, 30, cfg.RateLimit)
	assert.Equal(t, "admin", cfg.AuthUsername)
	assert.Equal(t, string(hash), cfg.AuthPasswordHash)
	assert.Equal(t, "redis.local:6379", cfg.RedisAddr)
	assert.Equal(t, 20, cfg.ShutdownTimeoutSeconds)
}

func TestLoadRedisDisabledByDefault(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password1"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Setenv("AUTH_PASSWORD_HASH", string(hash))
	t.Setenv("REDIS_HOST", "")

	cfg := Load()
	assert.Empty(t, cfg.RedisAddr)
}
