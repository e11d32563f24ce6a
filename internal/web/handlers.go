package web

import (
	"bytes"
	"context"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/justestif/moodtunes/internal/songs"
)

const (
	pageTitle       = "MoodTunes"
	defaultLanguage = "english"
)

// SongFinder looks up songs for a mood and language.
type SongFinder interface {
	FindSongs(ctx context.Context, mood, language string) ([]songs.Song, error)
}

// Handlers contains HTTP handlers for the web application.
type Handlers struct {
	finder    SongFinder
	templates *Templates
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(finder SongFinder, templates *Templates) *Handlers {
	return &Handlers{
		finder:    finder,
		templates: templates,
	}
}

// Index renders the empty mood picker (GET /).
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	data := h.newPageData(r)
	h.render(w, http.StatusOK, "index", data)
}

// Search reads the submitted mood and language and renders matching songs (POST /).
// The mood is used as submitted; unknown moods fall back to popular songs.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	data := h.newPageData(r)

	if err := r.ParseForm(); err != nil {
		data.Flash = &FlashMessage{Type: "error", Message: "Could not read the submitted form."}
		h.render(w, http.StatusBadRequest, "index", data)
		return
	}

	mood := r.PostFormValue("mood")
	language, err := normalizeLanguage(r.PostFormValue("language"))

	data.Submitted = true
	data.Mood = mood
	data.Language = language

	if err != nil {
		data.Language = r.PostFormValue("language")
		data.Flash = &FlashMessage{Type: "error", Message: "Language must be up to 40 letters, spaces or hyphens."}
		h.render(w, http.StatusBadRequest, "index", data)
		return
	}

	searchID := uuid.New()
	log.Printf("search %s: mood=%q language=%q", searchID, mood, language)

	found, err := h.finder.FindSongs(r.Context(), mood, language)
	if err != nil {
		log.Printf("search %s: %v", searchID, err)
		data.Flash = &FlashMessage{Type: "error", Message: "Song search is unavailable right now. Please try again later."}
		h.render(w, http.StatusBadGateway, "index", data)
		return
	}

	log.Printf("search %s: %d songs", searchID, len(found))
	data.Songs = found
	h.render(w, http.StatusOK, "index", data)
}

// newPageData returns the Idle state of the index page.
func (h *Handlers) newPageData(r *http.Request) IndexPageData {
	return IndexPageData{
		PageData: PageData{
			Title:       pageTitle,
			CurrentPath: r.URL.Path,
		},
		Moods:    songs.Moods(),
		Language: defaultLanguage,
		Songs:    []songs.Song{},
	}
}

// render executes a page into a buffer so a template failure never sends a partial page.
func (h *Handlers) render(w http.ResponseWriter, status int, page string, data any) {
	var buf bytes.Buffer
	if err := h.templates.Render(&buf, page, data); err != nil {
		log.Printf("rendering %s: %v", page, err)
		http.Error(w, "Failed to render template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
