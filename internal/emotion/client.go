package emotion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

const (
	modelURL  = "https://api-inference.huggingface.co/models/j-hartmann/emotion-english-distilroberta-base"
	userAgent = "moodtunes/1.0"
)

// ErrServiceUnavailable is returned when the classifier cannot be reached or
// answers with a non-JSON error.
var ErrServiceUnavailable = errors.New("emotion classifier unavailable")

// Client calls the Hugging Face Inference API.
type Client struct {
	httpClient *http.Client
	modelURL   string
}

// classifyRequest is the JSON body sent to the model endpoint.
type classifyRequest struct {
	Inputs string `json:"inputs"`
}

// NewClient creates a classifier client that authenticates with the configured API key
// as a bearer token.
func NewClient(cfg *Config) *Client {
	token := &oauth2.Token{AccessToken: cfg.APIKey, TokenType: "Bearer"}
	return &Client{
		httpClient: &http.Client{
			Timeout:   10 * time.Second,
			Transport: &oauth2.Transport{Source: oauth2.StaticTokenSource(token)},
		},
		modelURL: modelURL,
	}
}

// Classify sends text to the model and decodes the response shape.
func (c *Client) Classify(ctx context.Context, text string) (Response, error) {
	payload, err := json.Marshal(classifyRequest{Inputs: text})
	if err != nil {
		return Response{}, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.modelURL, bytes.NewReader(payload))
	if err != nil {
		return Response{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("executing request: %w: %w", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("reading response body: %w: %w", ErrServiceUnavailable, err)
	}

	parsed, err := ParseResponse(body)
	if err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return Response{}, fmt.Errorf("%w: status %d", ErrServiceUnavailable, resp.StatusCode)
		}
		return Response{}, err
	}

	return parsed, nil
}
