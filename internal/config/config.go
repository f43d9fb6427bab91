package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config carries every environment-derived value the service uses. It is
// loaded once at startup and passed explicitly into adapter and handler
// construction; nothing reads the environment after Load returns.
type Config struct {
	Port int `envconfig:"PORT" default:"8000"`

	LuxiorID   string `envconfig:"LUXIOR_ID" default:"443402"`
	Ami3fID    string `envconfig:"AMI3F_ID" default:"9133"`
	OdooAPIKey string `envconfig:"ODOO_API_KEY" default:""`

	LuxiorBaseURL string `envconfig:"LUXIOR_BASE_URL" default:"https://www.luxior.fr"`
	Ami3fBaseURL  string `envconfig:"AMI3F_BASE_URL" default:"https://www.ami3f.com"`

	ScraperTimeout time.Duration `envconfig:"SCRAPER_TIMEOUT" default:"30s"`

	// Requests per minute per client IP on the public API.
	RateLimit int `envconfig:"HTTP_RATE_LIMIT" default:"60"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.ScraperTimeout <= 0 {
		return fmt.Errorf("scraper timeout must be positive")
	}
	if c.RateLimit < 1 {
		return fmt.Errorf("HTTP_RATE_LIMIT must be at least 1")
	}
	return nil
}

// Presence queries backing the /health flags.

func (c *Config) LuxiorConfigured() bool { return c.LuxiorID != "" }
func (c *Config) Ami3fConfigured() bool  { return c.Ami3fID != "" }
func (c *Config) OdooConfigured() bool   { return c.OdooAPIKey != "" }
