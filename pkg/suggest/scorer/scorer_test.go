package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreIdentity(t *testing.T) {
	w := DefaultWeights()
	assert.Equal(t, 1.0, Score("playstation", "playstation", w))
	assert.Equal(t, 0.0, Score("", "playstation", w))
	assert.Equal(t, 0.0, Score("playstation", "", w))
}

func TestScoreBounds(t *testing.T) {
	w := DefaultWeights()
	pairs := [][2]string{
		{"playstaton", "playstation"},
		{"xbox", "nintendo"},
		{"a", "resident evil"},
		{"resident evil", "residente evil"},
	}
	for _, p := range pairs {
		s := Score(p[0], p[1], w)
		assert.GreaterOrEqual(t, s, 0.0, "%q vs %q", p[0], p[1])
		assert.LessOrEqual(t, s, 1.0, "%q vs %q", p[0], p[1])
	}
}

func TestScoreRanksCloserCandidateHigher(t *testing.T) {
	w := DefaultWeights()
	close := Score("playstaton", "playstation", w)
	far := Score("playstaton", "nintendo", w)
	assert.Greater(t, close, far)
	assert.GreaterOrEqual(t, close, 0.7, "one missing letter should score well above the accept threshold")
}

func TestScoreLevenshteinOnly(t *testing.T) {
	w := Weights{Levenshtein: 1, LengthPenaltyAt: 3}
	// one substitution over four runes
	assert.InDelta(t, 0.75, Score("abcd", "abcz", w), 1e-9)
}

func TestScorePhoneticBonusOnly(t *testing.T) {
	w := Weights{PhoneticBonus: 0.3, LengthPenaltyAt: 3}
	assert.InDelta(t, 0.3, Score("robert", "rupert", w), 1e-9)
	assert.InDelta(t, 0.0, Score("xbox", "nintendo", w), 1e-9)
}

func TestScoreAffixBonuses(t *testing.T) {
	prefixOnly := Weights{PrefixBonus: 0.2, LengthPenaltyAt: 3}
	assert.InDelta(t, 0.2, Score("playstation", "playground", prefixOnly), 1e-9)

	suffixOnly := Weights{SuffixBonus: 0.1, LengthPenaltyAt: 3}
	assert.InDelta(t, 0.1, Score("station", "nation", suffixOnly), 1e-9)
}

func TestScoreLengthPenalty(t *testing.T) {
	w := Weights{Levenshtein: 1, LengthPenalty: 0.2, LengthPenaltyAt: 3}
	// distance 5 over 8 runes, then the penalty for a gap over 3
	assert.InDelta(t, 0.175, Score("abc", "abcdefgh", w), 1e-9)
}

func TestScoreLevenshteinCutoff(t *testing.T) {
	// past the internal distance cutoff the edit-distance term reads 0
	// rather than its true ratio; with no other signal the score is 0
	w := Weights{Levenshtein: 1, LengthPenaltyAt: 100}
	assert.Equal(t, 0.0, Score("abcdefghi", "rstuvwxyz", w))
}

func TestScoreClamped(t *testing.T) {
	// stack every bonus so the raw sum exceeds one
	w := DefaultWeights()
	w.JaroWinkler = 1
	s := Score("playstaton", "playstation", w)
	assert.Equal(t, 1.0, s)
}
