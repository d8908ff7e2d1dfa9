package config_test

import (
	"log/slog"
	"testing"

	"github.com/GeorgeBeta/rkt-regulador2-infra/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("TABLE_NAME", "filepdfs")
	t.Setenv("INDEX_NAME", "filePdfId-index")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "filepdfs", cfg.TableName)
	assert.Equal(t, "filePdfId-index", cfg.IndexName)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "MR_FAKE", cfg.DevPrincipal)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestLoadMissingTableName(t *testing.T) {
	t.Setenv("TABLE_NAME", "")
	t.Setenv("INDEX_NAME", "filePdfId-index")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TABLE_NAME")
}

func TestLoadMissingIndexName(t *testing.T) {
	t.Setenv("TABLE_NAME", "filepdfs")
	t.Setenv("INDEX_NAME", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INDEX_NAME")
}

func TestLoadCORSList(t *testing.T) {
	setRequired(t)
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"https://app.example.com", "https://staging.example.com"},
		cfg.CORSAllowedOrigins)
}

func TestLoadLogLevel(t *testing.T) {
	setRequired(t)
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadBadLogLevel(t *testing.T) {
	setRequired(t)
	t.Setenv("LOG_LEVEL", "loud")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}
