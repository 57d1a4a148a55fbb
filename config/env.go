// Package config loads process settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server configures the bigintd daemon.
type Server struct {
	Address     string        `env:"BIGINT_ADDRESS" envDefault:":6380"`
	DataPath    string        `env:"BIGINT_DATA_PATH" envDefault:"bigint.db"`
	MaxConns    int           `env:"BIGINT_MAX_CONNS" envDefault:"256"`
	ReadTimeout time.Duration `env:"BIGINT_READ_TIMEOUT" envDefault:"5m"`
}

// Client configures the command-line client.
type Client struct {
	Address string        `env:"BIGINT_ADDRESS" envDefault:"127.0.0.1:6380"`
	Timeout time.Duration `env:"BIGINT_TIMEOUT" envDefault:"5s"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
