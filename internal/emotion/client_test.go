package emotion

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Classify(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantKind  Kind
		wantLabel string
		wantErr   error
	}{
		{
			name:      "classification",
			status:    http.StatusOK,
			body:      `[[{"label":"joy","score":0.9},{"label":"sadness","score":0.1}]]`,
			wantKind:  KindClassification,
			wantLabel: "joy",
		},
		{
			name:      "model loading with 503",
			status:    http.StatusServiceUnavailable,
			body:      `{"error":"Model j-hartmann/emotion-english-distilroberta-base is currently loading","estimated_time":20}`,
			wantKind:  KindErrorOrPending,
			wantLabel: Neutral,
		},
		{
			name:      "auth error object",
			status:    http.StatusUnauthorized,
			body:      `{"error":"Invalid credentials in Authorization header"}`,
			wantKind:  KindErrorOrPending,
			wantLabel: Neutral,
		},
		{
			name:    "html gateway error",
			status:  http.StatusBadGateway,
			body:    `<html>502</html>`,
			wantErr: ErrServiceUnavailable,
		},
		{
			name:    "garbage with 200",
			status:  http.StatusOK,
			body:    `not json`,
			wantErr: ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAuth, gotContentType string
			var gotBody classifyRequest

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					w.WriteHeader(http.StatusMethodNotAllowed)
					return
				}
				gotAuth = r.Header.Get("Authorization")
				gotContentType = r.Header.Get("Content-Type")
				if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(&Config{APIKey: "hf-test-key"})
			client.modelURL = server.URL

			resp, err := client.Classify(context.Background(), "I feel great today")

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Classify() error = %v, wantErr %v", err, tt.wantErr)
			}

			if gotAuth != "Bearer hf-test-key" {
				t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer hf-test-key")
			}
			if gotContentType != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", gotContentType)
			}
			if gotBody.Inputs != "I feel great today" {
				t.Errorf("inputs = %q, want %q", gotBody.Inputs, "I feel great today")
			}

			if tt.wantErr != nil {
				return
			}
			if resp.Kind != tt.wantKind {
				t.Errorf("Classify() kind = %s, want %s", resp.Kind, tt.wantKind)
			}
			if resp.Label() != tt.wantLabel {
				t.Errorf("Classify() label = %q, want %q", resp.Label(), tt.wantLabel)
			}
		})
	}
}

func TestClient_Classify_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(&Config{APIKey: "hf-test-key"})
	client.modelURL = url

	_, err := client.Classify(context.Background(), "hello")
	if !errors.Is(err, ErrServiceUnavailable) {
		t.Errorf("Classify() error = %v, want ErrServiceUnavailable", err)
	}
}

func TestNewClient(t *testing.T) {
	client := NewClient(&Config{APIKey: "test-key"})

	if client.httpClient == nil {
		t.Fatal("NewClient() httpClient is nil")
	}
	if client.modelURL != modelURL {
		t.Errorf("NewClient() modelURL = %s, want %s", client.modelURL, modelURL)
	}
}
