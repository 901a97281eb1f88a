package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration values
type Config struct {
	Port            string `env:"PORT" envDefault:"8080"`
	GinMode         string `env:"GIN_MODE" envDefault:"release"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	LogDevelopment  bool   `env:"LOG_DEVELOPMENT"`
	CORSAllowOrigin string `env:"CORS_ALLOW_ORIGIN" envDefault:"*"`

	GoogleClientEmail string `env:"GOOGLE_CLIENT_EMAIL"`
	GooglePrivateKey  string `env:"GOOGLE_PRIVATE_KEY"`
	GoogleSheetID     string `env:"GOOGLE_SHEET_ID"`

	// Used by the apply command only.
	IntakeEndpoint string        `env:"INTAKE_ENDPOINT" envDefault:"http://localhost:8080"`
	IntakeTimeout  time.Duration `env:"INTAKE_TIMEOUT" envDefault:"30s"`
}

// LoadConfig reads configuration from environment variables.
// Missing Google credentials are not an error here; submissions fail at append time instead.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}
	cfg.GooglePrivateKey = UnescapePrivateKey(cfg.GooglePrivateKey)
	return cfg, nil
}

// UnescapePrivateKey restores the newlines of a PEM key stored on a single env line.
func UnescapePrivateKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}
