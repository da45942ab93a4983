// Package config holds the environment configuration of the dcapquote CLI.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config are the defaults of the CLI flags, read from the environment.
type Config struct {
	LogLevel string `env:"DCAPQUOTE_LOG_LEVEL" envDefault:"info"`
	Format   string `env:"DCAPQUOTE_FORMAT" envDefault:"text"`
}

// Load reads the configuration from environ.
// If environ is nil, the process environment is used.
func Load(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
