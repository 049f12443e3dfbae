// internal/config/config.go

// Package config loads service configuration from environment
// variables. A .env file is honored through godotenv's autoload import
// in the entrypoint.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full service configuration.
type Config struct {
	Port     string `env:"CRAZYTENS_PORT" envDefault:"8080"`
	LogLevel string `env:"CRAZYTENS_LOG_LEVEL" envDefault:"info"`

	// TokenExpire bounds guest session tokens; zero means no expiry.
	TokenExpire time.Duration `env:"CRAZYTENS_TOKEN_EXPIRE" envDefault:"72h"`

	// DefaultTargetScore applies when a game is created without one.
	DefaultTargetScore int `env:"CRAZYTENS_TARGET_SCORE" envDefault:"100"`

	// ForfeitOnDisconnect forfeits a game when a seated player drops.
	ForfeitOnDisconnect bool `env:"CRAZYTENS_FORFEIT_ON_DISCONNECT" envDefault:"false"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
