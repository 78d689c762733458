// Package config loads service configuration from the environment.
package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all runtime configuration for the service.
type Config struct {
	Port     string `env:"PORT,     default=8080"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// RunMigrations controls whether the schema is auto-migrated at startup.
	RunMigrations bool `env:"RUN_MIGRATIONS, default=false"`

	// SeedRoles controls whether the recognized role vocabulary is inserted
	// into the roles table at startup.
	SeedRoles bool `env:"SEED_ROLES, default=true"`

	DB DBConfig
}

// DBConfig holds the postgres connection settings.
type DBConfig struct {
	Host     string `env:"DB_HOST,     default=localhost"`
	Port     string `env:"DB_PORT,     default=5432"`
	User     string `env:"DB_USER,     default=postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME,     default=user_backend"`
	SSLMode  string `env:"DB_SSLMODE,  default=disable"`
}

// DSN renders the gorm postgres connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}
