package songs

import (
	"context"
	"errors"
	"fmt"
	"html"

	"github.com/justestif/moodtunes/internal/youtube"
)

// Defaults for fields the search API left out.
const (
	DefaultTitle        = "Unknown title"
	DefaultThumbnailURL = "https://via.placeholder.com/320x180?text=No+Thumbnail"
)

// MaxSongs is the largest number of songs FindSongs returns.
const MaxSongs = youtube.MaxResults

// ErrSearchFailed wraps any failure of the underlying video search.
var ErrSearchFailed = errors.New("song search failed")

// Song is a playable search result.
type Song struct {
	Title        string
	VideoID      string
	ThumbnailURL string
}

// EmbedURL returns the embeddable player URL for the song.
func (s Song) EmbedURL() string {
	return "https://www.youtube.com/embed/" + s.VideoID
}

// Searcher abstracts the video search API for testing.
type Searcher interface {
	Search(ctx context.Context, query string) ([]youtube.Result, error)
}

// Finder finds songs for a mood and language.
type Finder struct {
	searcher Searcher
}

// NewFinder creates a Finder backed by the given searcher.
func NewFinder(searcher Searcher) *Finder {
	return &Finder{searcher: searcher}
}

// FindSongs searches for songs matching mood in language.
// Results keep the search order; results without a video ID are skipped.
// Returns an empty slice (not nil) when nothing matches.
func (f *Finder) FindSongs(ctx context.Context, mood, language string) ([]Song, error) {
	query := BuildQuery(mood, language)

	results, err := f.searcher.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query %q: %w", ErrSearchFailed, query, err)
	}

	songs := make([]Song, 0, len(results))
	for _, r := range results {
		if r.VideoID == "" {
			continue
		}
		songs = append(songs, toSong(r))
		if len(songs) == MaxSongs {
			break
		}
	}
	return songs, nil
}

// toSong applies field defaults to a search result.
func toSong(r youtube.Result) Song {
	title := html.UnescapeString(r.Title)
	if title == "" {
		title = DefaultTitle
	}
	thumbnail := r.ThumbnailURL
	if thumbnail == "" {
		thumbnail = DefaultThumbnailURL
	}
	return Song{
		Title:        title,
		VideoID:      r.VideoID,
		ThumbnailURL: thumbnail,
	}
}
