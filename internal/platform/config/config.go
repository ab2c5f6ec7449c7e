// Copyright (c) 2026 Moneta. All rights reserved.
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

The image store and the cache are optional: leaving S3_BUCKET or REDIS_URL
empty disables presigned image URLs or detail caching respectively.
*/
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration for the catalog API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (hosted PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string        `env:"REDIS_URL"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"10m"`

	// Tokens issued by the hosted auth provider are HS256-signed with this secret.
	AuthJWTSecret string `env:"AUTH_JWT_SECRET,required,notEmpty"`
	AuthIssuer    string `env:"AUTH_ISSUER"`

	// Image asset store (S3-compatible)
	S3Bucket    string        `env:"S3_BUCKET"`
	S3Region    string        `env:"S3_REGION"     envDefault:"auto"`
	S3Endpoint  string        `env:"S3_ENDPOINT"`
	S3PathStyle bool          `env:"S3_PATH_STYLE" envDefault:"false"`
	ImageURLTTL time.Duration `env:"IMAGE_URL_TTL" envDefault:"15m"`

	// Optional; the default AWS credential chain is used when empty.
	S3AccessKeyID     string `env:"S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"S3_SECRET_ACCESS_KEY"`

	// Cross-Origin Resource Sharing (comma separated origins)
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// AllowedOrigins returns the trimmed, non-empty entries of ExtraOrigins.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.ExtraOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// ImageStoreEnabled reports whether an image bucket is configured.
func (c *Config) ImageStoreEnabled() bool {
	return c.S3Bucket != ""
}
