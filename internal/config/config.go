package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string `env:"ENV" envDefault:"development"` // "development", "production", etc.

	// Server
	ServerAddr string `env:"SERVER_ADDR" envDefault:":3000"`
	BaseURL    string `env:"BASE_URL" envDefault:"http://localhost:3000"`
	ViewsDir   string `env:"VIEWS_DIR" envDefault:"./views"`
	StaticDir  string `env:"STATIC_DIR" envDefault:"./static"`

	// Outcome store (optional, aggregate counts only)
	DatabaseURL string `env:"DATABASE_URL"`

	// Rate limiting
	RedisURL        string        `env:"REDIS_URL"` // Shared limiter storage; in-memory when empty
	RateLimitMax    int           `env:"RATE_LIMIT_MAX" envDefault:"100"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`

	// TLS
	TLSEnabled  bool   `env:"TLS_ENABLED"`
	TLSCertFile string `env:"TLS_CERT_FILE"`
	TLSKeyFile  string `env:"TLS_KEY_FILE"`

	// CORS
	CORSOrigins string `env:"CORS_ORIGINS"` // Comma-separated allowed origins

	// Site Branding
	SiteTitle   string `env:"SITE_TITLE" envDefault:"YouTube Comment Analyzer"`
	SiteTagline string `env:"SITE_TAGLINE" envDefault:"Enter a YouTube video URL to analyze audience sentiment and get improvement suggestions"`
	SiteFooter  string `env:"SITE_FOOTER" envDefault:"Comment Analyzer demo"`

	// Chart palette and labels, see yaml_config.go
	ConfigFile string `env:"CONFIG_FILE" envDefault:"config.yaml"`
}

// Load reads configuration from the environment, after loading a .env file if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.TLSEnabled && (c.TLSCertFile == "" || c.TLSKeyFile == "") {
		return fmt.Errorf("TLS_CERT_FILE and TLS_KEY_FILE are required when TLS_ENABLED is set")
	}
	if c.RateLimitMax <= 0 {
		return fmt.Errorf("RATE_LIMIT_MAX must be positive, got %d", c.RateLimitMax)
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.RateLimitWindow)
	}
	return nil
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// HasOutcomeStore returns true if a database is configured for outcome counts.
func (c *Config) HasOutcomeStore() bool {
	return c.DatabaseURL != ""
}
