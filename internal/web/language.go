package web

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

const maxLanguageLength = 40

// ErrInvalidLanguage is returned for language values that are too long or contain
// characters other than letters, spaces and hyphens.
var ErrInvalidLanguage = errors.New("invalid language")

// normalizeLanguage trims the submitted language and defaults it to English when blank.
// The result is otherwise passed through unchanged.
func normalizeLanguage(raw string) (string, error) {
	language := strings.TrimSpace(raw)
	if language == "" {
		return defaultLanguage, nil
	}

	if utf8.RuneCountInString(language) > maxLanguageLength {
		return "", ErrInvalidLanguage
	}
	for _, r := range language {
		if !unicode.IsLetter(r) && r != ' ' && r != '-' {
			return "", ErrInvalidLanguage
		}
	}
	return language, nil
}
