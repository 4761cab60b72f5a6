// Package config reads service configuration from environment variables,
// returning typed values with defaults for anything unset or malformed.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// GetEnvString returns the named variable, or defaultValue when it is unset
// or empty.
func GetEnvString(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// GetEnvInt returns the named variable parsed as an integer. Unset, empty or
// unparseable values yield defaultValue; unparseable ones are also logged so
// a typo in deployment config is visible at startup.
func GetEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		warnInvalid(key, raw, "integer", err)
		return defaultValue
	}
	return n
}

// GetEnvBool returns the named variable parsed as a boolean, accepting the
// strconv.ParseBool forms (1/0, t/f, true/false in any common casing).
// Unset or unparseable values yield defaultValue.
func GetEnvBool(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		warnInvalid(key, raw, "boolean", err)
		return defaultValue
	}
	return b
}

// GetEnvDuration returns the named variable parsed with time.ParseDuration
// ("90s", "1m30s", "1h"). Unset or unparseable values yield defaultValue.
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		warnInvalid(key, raw, "duration", err)
		return defaultValue
	}
	return d
}

func warnInvalid(key, raw, kind string, err error) {
	slog.Warn("ignoring malformed environment variable",
		slog.String("key", key),
		slog.String("value", raw),
		slog.String("expected", kind),
		slog.Any("error", err))
}
