package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// New loads an optional .env file, then reads configuration from environment
// variables and unmarshals them into a struct of type T.
func New[T any]() (T, error) {
	var cfg T

	// A missing .env file is fine, the environment is the source of truth.
	_ = godotenv.Load()

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}
