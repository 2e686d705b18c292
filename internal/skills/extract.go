// Package skills provides skill extraction from free text and skill-set matching.
package skills

import (
	"strings"
	"unicode"
)

// Set is a deduplicated collection of normalized skill tokens.
type Set map[string]struct{}

// Contains reports whether the set holds the given token.
func (s Set) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// Add inserts a token into the set.
func (s Set) Add(token string) {
	s[token] = struct{}{}
}

// isTokenRune reports whether a rune may appear inside a skill token.
// '+' and '#' are kept so "c++" and "c#" survive tokenization.
func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#'
}

// Extract splits arbitrary free text on word boundaries and returns the
// deduplicated set of lowercase, non-empty tokens. Empty or missing text
// yields an empty set; downstream scoring treats that as "no signal",
// never as a fault.
func Extract(text string) Set {
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isTokenRune(r)
	})

	set := make(Set, len(tokens))
	for _, token := range tokens {
		if token == "" {
			continue
		}
		set.Add(token)
	}
	return set
}

// ExtractAll extracts and merges tokens from multiple text fields.
func ExtractAll(texts ...string) Set {
	set := make(Set)
	for _, text := range texts {
		for token := range Extract(text) {
			set.Add(token)
		}
	}
	return set
}
