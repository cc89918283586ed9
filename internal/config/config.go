package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime settings. Values come from the environment; a
// local .env file is loaded first (see cmd/api).
//
// The proxy defaults (job title "Business Analyst", 20 jobs, ...) are part of
// the endpoint's documented contract and are deliberately NOT configurable.
type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	UpstreamURL     string        `env:"UPSTREAM_URL" envDefault:"https://www.zippia.com/api/jobs/"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"30s"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
