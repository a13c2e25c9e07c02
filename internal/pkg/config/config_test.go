//go:build unit

package config_test

import (
	"os"
	"testing"
	"time"

	"referral-credits/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ALLOWED_ORIGINS", "SEED_FILE", "REFERRAL_SEND_DELAY", "NATS_URL", "NATS_SUBJECT", "LOG_LEVEL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Referral.SeedFile)
	assert.Zero(t, cfg.Referral.SendDelay)
	assert.Equal(t, "referrals.sent", cfg.NATS.Subject)
	assert.False(t, cfg.NATS.Enabled())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("SEED_FILE", "/tmp/seed.yaml")
	t.Setenv("REFERRAL_SEND_DELAY", "800ms")
	t.Setenv("NATS_URL", "nats://localhost:4222")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, "/tmp/seed.yaml", cfg.Referral.SeedFile)
	assert.Equal(t, 800*time.Millisecond, cfg.Referral.SendDelay)
	assert.True(t, cfg.NATS.Enabled())
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	t.Setenv("REFERRAL_SEND_DELAY", "soon")

	_, err := config.LoadConfig()
	assert.Error(t, err)
}
