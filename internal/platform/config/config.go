// Package config loads environment-backed defaults for the renderer.
// CLI flags take precedence over everything here.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv       string `env:"APP_ENV" envDefault:"local"`
	Output       string `env:"DIGEST_OUTPUT" envDefault:"index.html"`
	Template     string `env:"DIGEST_TEMPLATE"`
	LinkLabel    string `env:"DIGEST_LINK_LABEL" envDefault:"View Tweet"`
	SanitizeHTML bool   `env:"DIGEST_SANITIZE_HTML" envDefault:"false"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
