// Package config loads and validates runtime configuration from environment
// variables. The process refuses to start while any required variable is
// missing.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds all runtime settings for the booking API.
type Config struct {
	ServerAddr     string        `env:"SERVER_ADDR"`
	DatabaseURL    string        `env:"DATABASE_URL"`
	FrontendURL    string        `env:"FRONTEND_URL"`
	ResetTokenTTL  time.Duration `env:"RESET_TOKEN_TTL"  envDefault:"1h"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"  envDefault:"5s"`

	SMTP SMTPConfig
}

// SMTPConfig holds the SMTP settings for sending transactional email.
type SMTPConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM"`
}

// Load creates a Config from environment variables.
func Load(logger *zerolog.Logger) *Config {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse environment variables")
	}

	if err := cfg.validate(); err != nil {
		logger.Fatal().Err(err).Msg("failed to validate configuration")
	}

	return &cfg
}

// validate checks that every required setting is present.
func (c *Config) validate() error {
	if c.ServerAddr == "" {
		return fmt.Errorf("missing SERVER_ADDR environment variable")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("missing DATABASE_URL environment variable")
	}
	if c.FrontendURL == "" {
		return fmt.Errorf("missing FRONTEND_URL environment variable")
	}
	if c.ResetTokenTTL <= 0 {
		return fmt.Errorf("RESET_TOKEN_TTL must be positive")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}

	return c.SMTP.validate()
}

func (c *SMTPConfig) validate() error {
	if c.Host == "" {
		return fmt.Errorf("missing SMTP_HOST environment variable")
	}
	if c.Port == 0 {
		return fmt.Errorf("missing SMTP_PORT environment variable")
	}
	if c.Username == "" {
		return fmt.Errorf("missing SMTP_USERNAME environment variable")
	}
	if c.Password == "" {
		return fmt.Errorf("missing SMTP_PASSWORD environment variable")
	}
	if c.From == "" {
		return fmt.Errorf("missing SMTP_FROM environment variable")
	}

	return nil
}
