package config

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "foodify", cfg.MongoDB)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, 24*time.Hour, cfg.CookieMaxAge)
	assert.Equal(t, int64(500<<20), cfg.BodyLimitBytes)
	assert.Len(t, cfg.SessionKey, 32, "missing key must be replaced by a generated dev key")
	assert.Len(t, cfg.CSRFKey, 32)
}

func TestLoadFromEnv(t *testing.T) {
	key := base64.StdEncoding.EncodeToString(make([]byte, 32))
	t.Setenv("PORT", "8080")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("COOKIE_MAX_AGE", "48h")
	t.Setenv("SESSION_KEY", key)
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 48*time.Hour, cfg.CookieMaxAge)
	assert.Equal(t, make([]byte, 32), cfg.SessionKey)
	assert.True(t, cfg.CookieSecure)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("SESSION_TTL", "soon")
	t.Setenv("SESSION_KEY", "too-short")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port, "invalid port falls back to default")
	assert.Equal(t, time.Hour, cfg.SessionTTL, "invalid duration falls back to default")
	assert.Len(t, cfg.SessionKey, 32, "short key replaced by generated dev key")
}
