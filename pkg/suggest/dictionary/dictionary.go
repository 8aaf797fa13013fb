// Package dictionary bundles the default storefront vocabulary. It is
// data, not behavior: callers can pass their own term list to the
// engine and ignore this package entirely.
package dictionary

import (
	_ "embed"
	"strings"
)

//go:embed default.txt
var defaultTerms string

// Default returns the bundled Portuguese gaming vocabulary, one term
// per line, comments and blanks skipped. The returned slice is a fresh
// copy on every call.
func Default() []string {
	var terms []string
	for _, line := range strings.Split(defaultTerms, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		terms = append(terms, line)
	}
	return terms
}
