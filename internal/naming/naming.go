// Package naming turns a hyphenated block identifier such as "hero-banner"
// into the human-readable and identifier-style names used in generated files.
package naming

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Separator splits an identifier into tokens.
const Separator = "-"

var (
	// ErrEmpty is returned for an empty identifier.
	ErrEmpty = errors.New("block name is empty")
	// ErrEmptyToken is returned when the identifier has a leading, trailing,
	// or doubled hyphen.
	ErrEmptyToken = errors.New("block name contains an empty word")
)

// Validate reports whether id can be used as a block identifier. It does not
// restrict the character set; it only rejects values that cannot be split
// into words or that do not name a single directory below the blocks directory.
func Validate(id string) error {
	if id == "" {
		return ErrEmpty
	}
	if id == "." || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") || filepath.Base(id) != id {
		return fmt.Errorf("invalid block name %q: must be a single directory name", id)
	}
	for i, tok := range strings.Split(id, Separator) {
		if tok == "" {
			return fmt.Errorf("invalid block name %q: word %d: %w", id, i+1, ErrEmptyToken)
		}
	}
	return nil
}

// Title returns the display form of id: "hero-banner" becomes "Hero Banner".
func Title(id string) (string, error) {
	words, err := capitalizeAll(id)
	if err != nil {
		return "", err
	}
	return strings.Join(words, " "), nil
}

// Pascal returns the identifier form of id: "hero-banner" becomes "HeroBanner".
func Pascal(id string) (string, error) {
	words, err := capitalizeAll(id)
	if err != nil {
		return "", err
	}
	return strings.Join(words, ""), nil
}

func capitalizeAll(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmpty
	}
	tokens := strings.Split(id, Separator)
	words := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		if tok == "" {
			return nil, fmt.Errorf("invalid block name %q: word %d: %w", id, i+1, ErrEmptyToken)
		}
		words = append(words, capitalize(tok))
	}
	return words, nil
}

// capitalize upper-cases the first rune of s and keeps the rest untouched.
// Full case mapping applies, so "ß" expands to "SS".
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(string(r)) + s[size:]
}
