// Package normalize canonicalizes raw text before any similarity
// comparison: diacritics stripped, lowercased, punctuation removed,
// whitespace collapsed. Normalization is idempotent.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize returns the canonical form of raw: accent-free, lowercase,
// word characters and single spaces only, trimmed. Total over all
// strings; the empty string maps to itself.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	decomposed, _, err := transform.String(stripMarks, raw)
	if err != nil {
		// transform only fails on malformed UTF-8; fall back to the raw
		// bytes so the function stays total.
		decomposed = raw
	}

	var b strings.Builder
	b.Grow(len(decomposed))
	lastSpace := true // drops leading whitespace
	for _, r := range strings.ToLower(decomposed) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r):
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		}
	}

	return strings.TrimRight(b.String(), " ")
}

// Words splits an already normalized string into its tokens.
func Words(s string) []string {
	return strings.Fields(s)
}
