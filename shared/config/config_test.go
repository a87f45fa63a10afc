package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Port           string         `mapstructure:"port"`
	Database       Database       `mapstructure:"database"`
	Log            Log            `mapstructure:"log"`
	CircuitBreaker CircuitBreaker `mapstructure:"circuit_breaker"`
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "local.json"), []byte(`{
		"port": "9090",
		"database": {"database": "orders"},
		"circuit_breaker": {"open_wait": "5s"}
	}`), 0o600))

	t.Setenv("ENVIRONMENT", "local")
	t.Setenv("TESTSVC_LOG_LEVEL", "debug")

	var cfg testConfig
	err := Read(Options{
		Dir:       dir,
		EnvPrefix: "TESTSVC",
		Defaults: map[string]interface{}{
			"circuit_breaker.failure_rate_threshold": 0.5,
			"circuit_breaker.minimum_requests":       10,
		},
	}, &cfg)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "orders", cfg.Database.Database)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 5*time.Second, cfg.CircuitBreaker.OpenWait)
	assert.Equal(t, uint32(10), cfg.CircuitBreaker.MinimumRequests)
}

func TestRead_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "staging")

	var cfg testConfig
	require.NoError(t, Read(Options{Dir: t.TempDir(), EnvPrefix: "TESTSVC"}, &cfg))

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestDatabase_DSN(t *testing.T) {
	db := Database{User: "postgres", Password: "pw", Host: "db", Port: 5432, Database: "orders", SSLMode: "disable"}
	assert.Equal(t, "postgres://postgres:pw@db:5432/orders?sslmode=disable", db.DSN())

	db.URL = "postgres://elsewhere"
	assert.Equal(t, "postgres://elsewhere", db.DSN())
}
