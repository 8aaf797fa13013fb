// Package variations generates bounded sets of plausible misspellings
// for a term: deletions, adjacent transpositions, phonetic
// substitutions and single-character insertions. The engine uses these
// both to expand candidates and to test whether a query is a known
// variant of a candidate.
package variations

// MaxVariations caps the generated set so pathological terms cannot
// blow up a candidate scan.
const MaxVariations = 300

// maxGrowth bounds how many characters a variant may add to the term.
const maxGrowth = 2

// Confusable spellings seen in real queries: hard/soft consonants,
// ph/f, close vowels.
var substitutions = map[rune][]string{
	'c': {"k", "s"},
	'k': {"c", "q"},
	's': {"c", "z"},
	'z': {"s"},
	'f': {"ph", "v"},
	'v': {"f"},
	'g': {"j"},
	'j': {"g"},
	'i': {"y", "e"},
	'y': {"i"},
	'e': {"i", "a"},
	'a': {"e"},
	'o': {"u"},
	'u': {"o"},
	'w': {"v"},
	'x': {"ks"},
}

var insertionLetters = []rune("aeiouhrsnm")

// Generate returns the variant set of a normalized term, always
// including the term itself. The set size is capped at MaxVariations.
func Generate(term string) map[string]struct{} {
	out := map[string]struct{}{term: {}}
	runes := []rune(term)
	if len(runes) == 0 {
		return out
	}

	add := func(v string) bool {
		if len(out) >= MaxVariations {
			return false
		}
		if len([]rune(v))-len(runes) > maxGrowth {
			return true
		}
		out[v] = struct{}{}
		return true
	}

	// single-character deletions
	for i := range runes {
		v := make([]rune, 0, len(runes)-1)
		v = append(v, runes[:i]...)
		v = append(v, runes[i+1:]...)
		if !add(string(v)) {
			return out
		}
	}

	// adjacent transpositions
	for i := 0; i+1 < len(runes); i++ {
		v := make([]rune, len(runes))
		copy(v, runes)
		v[i], v[i+1] = v[i+1], v[i]
		if !add(string(v)) {
			return out
		}
	}

	// phonetic substitutions, one position at a time
	for i, r := range runes {
		for _, sub := range substitutions[r] {
			v := string(runes[:i]) + sub + string(runes[i+1:])
			if !add(v) {
				return out
			}
		}
	}

	// bounded single-character insertions
	for i := 0; i <= len(runes); i++ {
		for _, r := range insertionLetters {
			v := string(runes[:i]) + string(r) + string(runes[i:])
			if !add(v) {
				return out
			}
		}
	}

	return out
}

// Contains reports whether candidate is a generated variant of term.
func Contains(term, candidate string) bool {
	_, ok := Generate(term)[candidate]
	return ok
}
