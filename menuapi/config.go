package menuapi

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the client's environment surface.
type Config struct {
	// BaseURL is the backend root; paths under /api are resolved against it.
	BaseURL string `env:"MENU_API_URL" envDefault:"http://localhost:8080"`

	// Token is the bearer token for authenticated reads and preference
	// writes. Empty means guest.
	Token string `env:"MENU_API_TOKEN"`
}

// ConfigFromEnv loads configuration from environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
