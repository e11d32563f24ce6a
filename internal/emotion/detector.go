package emotion

import (
	"context"
	"fmt"
	"log"
)

// Classifier abstracts the remote model for testing.
type Classifier interface {
	Classify(ctx context.Context, text string) (Response, error)
}

// Detector turns free text into a single mood label.
type Detector struct {
	classifier Classifier
}

// NewDetector creates a Detector backed by the given classifier.
func NewDetector(classifier Classifier) *Detector {
	return &Detector{classifier: classifier}
}

// DetectMood returns the primary emotion label for text.
// Error payloads, "model loading" payloads and unrecognized shapes all yield Neutral.
// Transport failures and non-JSON bodies are returned as errors.
func (d *Detector) DetectMood(ctx context.Context, text string) (string, error) {
	resp, err := d.classifier.Classify(ctx, text)
	if err != nil {
		return "", fmt.Errorf("classifying text: %w", err)
	}

	label := resp.Label()
	log.Printf("emotion: response kind=%s predictions=%d label=%q", resp.Kind, len(resp.Predictions), label)
	return label, nil
}
