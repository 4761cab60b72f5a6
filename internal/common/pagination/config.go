// Package pagination normalizes raw listing inputs (page, limit, order, title
// filter) into a safe, bounded query plan.
package pagination

import "newsdesk/pkg/config"

// Config holds pagination configuration settings.
type Config struct {
	DefaultPage  int // default page number (typically 1)
	DefaultLimit int // default items per page (typically 10)
}

// DefaultConfig returns the default pagination configuration: page=1, limit=10.
func DefaultConfig() Config {
	return Config{
		DefaultPage:  1,
		DefaultLimit: 10,
	}
}

// LoadFromEnv loads pagination config from environment variables.
// Supported environment variables:
//   - PAGINATION_DEFAULT_PAGE: default page number
//   - PAGINATION_DEFAULT_LIMIT: default items per page
//
// Falls back to DefaultConfig() values when unset or invalid.
func LoadFromEnv() Config {
	return Config{
		DefaultPage:  config.GetEnvInt("PAGINATION_DEFAULT_PAGE", 1),
		DefaultLimit: config.GetEnvInt("PAGINATION_DEFAULT_LIMIT", 10),
	}
}
