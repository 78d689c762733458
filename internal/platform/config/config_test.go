package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background())

	require.NoError(t, err, "loading with defaults should succeed")
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.RunMigrations)
	assert.True(t, cfg.SeedRoles)
	assert.Equal(t, "localhost", cfg.DB.Host)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RUN_MIGRATIONS", "true")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "users_prod")

	cfg, err := Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.RunMigrations)
	assert.Equal(t, "db.internal", cfg.DB.Host)
}

func TestDBConfig_DSN(t *testing.T) {
	dsn := DBConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "pw",
		Name:     "user_backend",
		SSLMode:  "disable",
	}.DSN()

	assert.Equal(t, "host=localhost port=5432 user=postgres password=pw dbname=user_backend sslmode=disable", dsn)
}
