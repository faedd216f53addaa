package dialog

import "strings"

// Normalize canonicalizes raw user input for intent resolution: trims
// surrounding whitespace, lowercases letters, and strips regular and
// full-width (U+3000) spaces anywhere in the string. It never fails and is
// idempotent; empty input yields the empty string.
func Normalize(text string) string {
	trimmed := strings.ToLower(strings.TrimSpace(text))
	if trimmed == "" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '　' {
			return -1
		}
		return r
	}, trimmed)
}
