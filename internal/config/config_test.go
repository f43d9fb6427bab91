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

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "443402", cfg.LuxiorID)
	assert.Equal(t, "9133", cfg.Ami3fID)
	assert.Equal(t, "https://www.luxior.fr", cfg.LuxiorBaseURL)
	assert.Equal(t, "https://www.ami3f.com", cfg.Ami3fBaseURL)
	assert.Equal(t, 30*time.Second, cfg.ScraperTimeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LUXIOR_ID", "111")
	t.Setenv("ODOO_API_KEY", "secret")
	t.Setenv("SCRAPER_TIMEOUT", "10s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "111", cfg.LuxiorID)
	assert.Equal(t, 10*time.Second, cfg.ScraperTimeout)
	assert.True(t, cfg.OdooConfigured())
}

func TestPresenceFlags(t *testing.T) {
	cfg := &Config{LuxiorID: "443402"}
	assert.True(t, cfg.LuxiorConfigured())
	assert.False(t, cfg.Ami3fConfigured())
	assert.False(t, cfg.OdooConfigured())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  Config{Port: 8000, ScraperTimeout: 30 * time.Second, RateLimit: 60},
		},
		{
			name:    "port out of range",
			cfg:     Config{Port: 70000, ScraperTimeout: 30 * time.Second, RateLimit: 60},
			wantErr: true,
		},
		{
			name:    "zero timeout",
			cfg:     Config{Port: 8000, RateLimit: 60},
			wantErr: true,
		},
		{
			name:    "zero rate limit",
			cfg:     Config{Port: 8000, ScraperTimeout: time.Second},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
