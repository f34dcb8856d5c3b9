package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.GoEnv)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 7, cfg.RoomTTLDays)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.True(t, cfg.IsDevelopment())
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("ROOM_TTL_DAYS", "14")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, 14, cfg.RoomTTLDays)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoadConfig_InvalidInt(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{HTTPPort: 8080, RoomTTLDays: 7, LogLevel: "debug", LogFormat: "text"}
	assert.NoError(t, cfg.Validate())

	cfg.HTTPPort = 0
	assert.Error(t, cfg.Validate())

	cfg.HTTPPort = 8080
	cfg.RoomTTLDays = 0
	assert.Error(t, cfg.Validate())

	cfg.RoomTTLDays = 7
	cfg.LogLevel = "verbose"
	assert.Error(t, cfg.Validate())

	cfg.LogLevel = "debug"
	cfg.LogFormat = "xml"
	assert.Error(t, cfg.Validate())
}
