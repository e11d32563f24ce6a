// Package youtube searches the YouTube Data API for embeddable music videos.
package youtube

import (
	"errors"
	"os"
)

// ErrMissingAPIKey is returned when YT_API_KEY is not set.
var ErrMissingAPIKey = errors.New("missing YT_API_KEY environment variable")

// Config holds YouTube Data API configuration.
type Config struct {
	APIKey string
}

// LoadConfig reads YouTube configuration from environment variables.
// Returns ErrMissingAPIKey if YT_API_KEY is not set.
func LoadConfig() (*Config, error) {
	apiKey := os.Getenv("YT_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &Config{APIKey: apiKey}, nil
}
