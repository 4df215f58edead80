// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (Redis, relay, catalog) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Nolfolio API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// AllowedOriginSuffix is the host suffix accepted by CORS outside development.
	AllowedOriginSuffix string `env:"ALLOWED_ORIGIN_SUFFIX" envDefault:"nolvideography.com"`

	// Public base URL of the object storage bucket serving videos.
	// Empty means videos are served from the site's own /videos path.
	R2PublicURL string `env:"R2_PUBLIC_URL"`

	// Key-Value Cache (Redis). Optional: the contact guard falls back to memory.
	RedisURL string `env:"REDIS_URL"`

	// Contact form relay
	ContactRelayURL  string        `env:"CONTACT_RELAY_URL" envDefault:"https://formsubmit.co/ajax/nolvideography@gmail.com"`
	ContactDedupeTTL time.Duration `env:"CONTACT_DEDUPE_TTL" envDefault:"10m"`

	// Number of concurrently visible photos on the scatter page.
	ScatterSlots int `env:"SCATTER_SLOTS" envDefault:"6"`
}

// StorageConfig holds the credentials used by the bucket upload tool.
type StorageConfig struct {
	AccountID       string `env:"R2_ACCOUNT_ID,required,notEmpty"`
	AccessKeyID     string `env:"R2_ACCESS_KEY_ID,required,notEmpty"`
	SecretAccessKey string `env:"R2_SECRET_ACCESS_KEY,required,notEmpty"`
	BucketName      string `env:"R2_BUCKET_NAME,required,notEmpty"`
	PublicURL       string `env:"R2_PUBLIC_URL"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.ScatterSlots < 1 {
		return nil, fmt.Errorf("config: SCATTER_SLOTS must be positive, got %d", cfg.ScatterSlots)
	}

	return cfg, nil
}

// LoadStorage parses the R2 credentials. Everything except the public URL is required.
func LoadStorage() (*StorageConfig, error) {
	cfg := &StorageConfig{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: missing storage credentials: %w", err)
	}

	return cfg, nil
}

// Endpoint returns the S3-compatible endpoint for the configured account.
func (c *StorageConfig) Endpoint() string {
	return fmt.Sprintf("https://%s.r2.cloudflarestorage.com", c.AccountID)
}

// PublicBaseURL returns R2_PUBLIC_URL, or the bucket's r2.dev address when unset.
func (c *StorageConfig) PublicBaseURL() string {
	if c.PublicURL != "" {
		return c.PublicURL
	}
	return fmt.Sprintf("https://%s.r2.dev", c.BucketName)
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
