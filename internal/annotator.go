package internal

import (
	"strings"
	"unicode"
)

// SanitizeAnnotator reduces an annotator name to characters safe for use in
// a filename. Letters, digits, underscore and hyphen survive; everything
// else is dropped. An empty result becomes "anonymous"
func SanitizeAnnotator(name string) string {
	safe := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' {
			return r
		}
		return -1
	}, name)
	if safe == "" {
		return "anonymous"
	}
	return safe
}
