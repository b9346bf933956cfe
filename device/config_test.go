package device

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pendant.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"transport_max: 203\nphoto_interval: 5s\naudio_enabled: false\n",
	), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 203, cfg.TransportMax)
	assert.Equal(t, 5*time.Second, cfg.PhotoInterval)
	assert.False(t, cfg.AudioEnabled)
	// Untouched keys keep their defaults.
	assert.Equal(t, DefaultConfig().CycleCapacity, cfg.CycleCapacity)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("PENDANT_TRANSPORT_MAX", "103")
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 103, cfg.TransportMax)
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tiny transport", func(c *Config) { c.TransportMax = 4 }},
		{"no capacity", func(c *Config) { c.CycleCapacity = 0 }},
		{"ring smaller than frame", func(c *Config) { c.AudioRingSize = c.AudioFrameSize - 1 }},
		{"negative retries", func(c *Config) { c.PhotoRetryMax = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
