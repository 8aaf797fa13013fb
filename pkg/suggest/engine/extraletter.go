package engine

import "strings"

// Extra-letter typos come from stray keystrokes: a doubled character, a
// trailing letter, a detached single-character token. They are the only
// corrections safe to apply without confirmation, so detection uses an
// explicit rule table instead of ad-hoc regexes.

type extraLetterRule struct {
	kind  string
	check func(query string, known func(string) bool) (string, bool)
}

var extraLetterRules = []extraLetterRule{
	{kind: "duplicate-run", check: checkDuplicateRun},
	{kind: "trailing-letter", check: checkTrailingLetter},
	{kind: "stray-token", check: checkStrayToken},
}

// detectExtraLetter runs the rule table in order and returns the first
// correction whose result is a known term. known is consulted with
// normalized terms only.
func detectExtraLetter(query string, known func(string) bool) (string, string, bool) {
	for _, rule := range extraLetterRules {
		if fixed, ok := rule.check(query, known); ok && fixed != query {
			return fixed, rule.kind, true
		}
	}
	return "", "", false
}

// checkDuplicateRun collapses runs of a repeated character to a single
// occurrence: "playsstation" -> "playstation".
func checkDuplicateRun(query string, known func(string) bool) (string, bool) {
	runes := []rune(query)
	collapsed := make([]rune, 0, len(runes))
	for i, r := range runes {
		if i > 0 && runes[i-1] == r {
			continue
		}
		collapsed = append(collapsed, r)
	}
	if len(collapsed) == len(runes) {
		return "", false
	}
	fixed := string(collapsed)
	return fixed, known(fixed)
}

// checkTrailingLetter drops a single trailing character when the rest
// is a known term: "playstationn" -> "playstation".
func checkTrailingLetter(query string, known func(string) bool) (string, bool) {
	runes := []rune(query)
	if len(runes) < 4 || runes[len(runes)-1] == ' ' {
		return "", false
	}
	fixed := string(runes[:len(runes)-1])
	return fixed, known(fixed)
}

// checkStrayToken handles a lone single-character token after a known
// term: dropped when the rest is itself known ("playstation n" ->
// "playstation"), glued back on when the join is known
// ("playstatio n" -> "playstation").
func checkStrayToken(query string, known func(string) bool) (string, bool) {
	words := strings.Fields(query)
	if len(words) < 2 {
		return "", false
	}
	last := words[len(words)-1]
	if len([]rune(last)) != 1 {
		return "", false
	}

	rest := strings.Join(words[:len(words)-1], " ")
	if known(rest) {
		return rest, true
	}
	if joined := rest + last; known(joined) {
		return joined, true
	}
	return "", false
}
