// internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 72*time.Hour, cfg.TokenExpire)
	assert.Equal(t, 100, cfg.DefaultTargetScore)
	assert.False(t, cfg.ForfeitOnDisconnect)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CRAZYTENS_PORT", "9999")
	t.Setenv("CRAZYTENS_LOG_LEVEL", "debug")
	t.Setenv("CRAZYTENS_TOKEN_EXPIRE", "30m")
	t.Setenv("CRAZYTENS_TARGET_SCORE", "144")
	t.Setenv("CRAZYTENS_FORFEIT_ON_DISCONNECT", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 30*time.Minute, cfg.TokenExpire)
	assert.Equal(t, 144, cfg.DefaultTargetScore)
	assert.True(t, cfg.ForfeitOnDisconnect)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("CRAZYTENS_TARGET_SCORE", "lots")
	_, err := Load()
	assert.Error(t, err)
}
