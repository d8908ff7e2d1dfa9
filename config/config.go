// Package config loads and validates service configuration from environment
// variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Config holds every runtime parameter of the backend function. The handler
// never reads the environment directly; it receives this struct once at
// process start.
type Config struct {
	// TableName is the DynamoDB table holding FilePdf records.
	TableName string
	// IndexName is the global secondary index keyed by filePdfId.
	IndexName string
	// AWSRegion overrides the SDK default region resolution when set.
	AWSRegion string

	// Env selects logger output ("production" → JSON).
	Env string
	// LogLevel for the process-wide logger.
	LogLevel slog.Level

	// DevPrincipal substitutes for the caller identity when the request
	// carries no authorizer claims (local/dev deployments only).
	DevPrincipal string
	// CORSAllowedOrigins is the allow-list applied to every response.
	// A single "*" entry means any origin, without credentials.
	CORSAllowedOrigins []string
}

// Load reads configuration from the environment. TABLE_NAME and INDEX_NAME
// are required; everything else has a default.
func Load() (*Config, error) {
	cfg := &Config{}
	var err error

	cfg.TableName, err = getEnvRequired("TABLE_NAME")
	if err != nil {
		return nil, err
	}

	cfg.IndexName, err = getEnvRequired("INDEX_NAME")
	if err != nil {
		return nil, err
	}

	cfg.AWSRegion = os.Getenv("AWS_REGION")
	cfg.Env = getEnvDefault("ENV", "production")
	cfg.DevPrincipal = getEnvDefault("DEV_PRINCIPAL", "MR_FAKE")

	cfg.LogLevel, err = parseLogLevel(getEnvDefault("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	cfg.CORSAllowedOrigins = splitList(getEnvDefault("CORS_ALLOWED_ORIGINS", "*"))

	return cfg, nil
}

func getEnvRequired(key string) (string, error) {
	val := os.Getenv(key)
	if val == "" {
		return "", fmt.Errorf("%s: required environment variable is not set", key)
	}
	return val, nil
}

func getEnvDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func parseLogLevel(val string) (slog.Level, error) {
	switch strings.ToLower(val) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown level %q", val)
	}
}

func splitList(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
