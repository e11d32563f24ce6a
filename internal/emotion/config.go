// Package emotion infers a mood label from free text using the Hugging Face
// Inference API emotion classifier.
package emotion

import (
	"errors"
	"os"
)

// ErrMissingAPIKey is returned when HF_API_KEY is not set.
var ErrMissingAPIKey = errors.New("missing HF_API_KEY environment variable")

// Config holds Hugging Face API configuration.
type Config struct {
	APIKey string
}

// LoadConfig reads classifier configuration from environment variables.
// Returns ErrMissingAPIKey if HF_API_KEY is not set.
func LoadConfig() (*Config, error) {
	apiKey := os.Getenv("HF_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &Config{APIKey: apiKey}, nil
}
