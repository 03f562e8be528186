package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresSigningKey(t *testing.T) {
	t.Setenv("AUTH_SIGNING_KEY", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingSigningKey)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_SIGNING_KEY", "test-signing-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-signing-key", cfg.Auth.SigningKey)
	assert.Equal(t, "mindwork.api", cfg.Auth.Issuer)
	assert.Equal(t, "mindwork.client", cfg.Auth.Audience)
	assert.Equal(t, 8*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTH_SIGNING_KEY", "test-signing-key")
	t.Setenv("AUTH_TOKEN_TTL", "30m")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("SERVER_ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "production", cfg.Server.Environment)
}
