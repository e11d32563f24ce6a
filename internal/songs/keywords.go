// Package songs finds mood-matched songs for a language.
package songs

import "fmt"

// fallbackKeywords is used for any mood without an entry in moodKeywords.
const fallbackKeywords = "popular"

// moodKeywords biases the search toward a mood.
//
// Moods:
//   - happy     = "happy upbeat"
//   - sad       = "sad emotional"
//   - angry     = "power rage"
//   - relaxed   = "relaxing calm"
//   - energetic = "energetic workout"
var moodKeywords = map[string]string{
	"happy":     "happy upbeat",
	"sad":       "sad emotional",
	"angry":     "power rage",
	"relaxed":   "relaxing calm",
	"energetic": "energetic workout",
}

// KeywordsFor returns the keyword phrase for mood, or "popular" if the mood is unknown.
// Matching is exact: no case folding or trimming.
func KeywordsFor(mood string) string {
	if phrase, ok := moodKeywords[mood]; ok {
		return phrase
	}
	return fallbackKeywords
}

// BuildQuery builds the search query "<keywords> <language> songs".
// The language is inserted verbatim.
func BuildQuery(mood, language string) string {
	return fmt.Sprintf("%s %s songs", KeywordsFor(mood), language)
}

// Moods returns the moods with a dedicated keyword phrase, in display order.
func Moods() []string {
	return []string{"happy", "sad", "angry", "relaxed", "energetic"}
}
