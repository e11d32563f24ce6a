package youtube

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

// Search policy. These filters are fixed and not exposed to callers.
const (
	MaxResults      = 5
	musicCategoryID = "10"
	searchType      = "video"
	safeSearch      = "strict"
	embeddableOnly  = "true"
)

// YouTube API error reasons.
const (
	reasonQuotaExceeded = "quotaExceeded"
	reasonKeyInvalid    = "keyInvalid"
)

// Sentinel errors.
var (
	// ErrQuotaExceeded is returned when the daily API quota is used up.
	ErrQuotaExceeded = errors.New("YouTube quota exceeded")

	// ErrInvalidAPIKey is returned when the API key is rejected.
	ErrInvalidAPIKey = errors.New("invalid YouTube API key")
)

// Result is a single search hit. Fields are empty when the API omitted them.
type Result struct {
	VideoID      string
	Title        string
	ThumbnailURL string // medium size
}

// Client wraps the YouTube Data API v3 service.
type Client struct {
	service *ytapi.Service
}

// NewClient creates a YouTube client authenticated with the configured API key.
// Extra options are applied after the key, which lets tests point the client at a local server.
func NewClient(ctx context.Context, cfg *Config, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(cfg.APIKey)}, opts...)

	service, err := ytapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating youtube service: %w", err)
	}
	return &Client{service: service}, nil
}

// Search runs one search for embeddable, strict-safe music videos matching query.
// At most MaxResults results are returned, in the order the API returned them.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	resp, err := c.service.Search.List([]string{"snippet"}).
		Q(query).
		Type(searchType).
		MaxResults(MaxResults).
		VideoCategoryId(musicCategoryID).
		VideoEmbeddable(embeddableOnly).
		SafeSearch(safeSearch).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("searching videos: %w", classifyError(err))
	}

	results := make([]Result, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item == nil {
			continue
		}
		results = append(results, toResult(item))
		if len(results) == MaxResults {
			break
		}
	}
	return results, nil
}

// toResult flattens an API search item, leaving absent fields empty.
func toResult(item *ytapi.SearchResult) Result {
	var r Result
	if item.Id != nil {
		r.VideoID = item.Id.VideoId
	}
	if item.Snippet != nil {
		r.Title = item.Snippet.Title
		if thumbs := item.Snippet.Thumbnails; thumbs != nil && thumbs.Medium != nil {
			r.ThumbnailURL = thumbs.Medium.Url
		}
	}
	return r
}

// classifyError maps well-known API failure reasons onto sentinel errors.
func classifyError(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	for _, item := range apiErr.Errors {
		switch item.Reason {
		case reasonQuotaExceeded:
			return fmt.Errorf("%w: %w", ErrQuotaExceeded, err)
		case reasonKeyInvalid:
			return fmt.Errorf("%w: %w", ErrInvalidAPIKey, err)
		}
	}
	return err
}
