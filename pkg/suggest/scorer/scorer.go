// Package scorer combines the individual similarity metrics into one
// confidence score per (query, candidate) pair. Weights are plain
// configuration: the defaults were tuned by hand against storefront
// search logs, not derived, so callers may override them freely.
package scorer

import (
	"github.com/antzucaro/matchr"
	"github.com/joaovbs/sugestor/pkg/suggest/metrics"
)

type Weights struct {
	Levenshtein float64 `json:"levenshtein" validate:"gte=0,lte=1"`
	LCS         float64 `json:"lcs" validate:"gte=0,lte=1"`
	Bigram      float64 `json:"bigram" validate:"gte=0,lte=1"`
	Trigram     float64 `json:"trigram" validate:"gte=0,lte=1"`
	JaroWinkler float64 `json:"jaro_winkler" validate:"gte=0,lte=1"`

	PhoneticBonus float64 `json:"phonetic_bonus" validate:"gte=0,lte=1"`
	PrefixBonus   float64 `json:"prefix_bonus" validate:"gte=0,lte=1"`
	SuffixBonus   float64 `json:"suffix_bonus" validate:"gte=0,lte=1"`

	// LengthPenalty is subtracted when the rune-length difference
	// exceeds LengthPenaltyAt.
	LengthPenalty   float64 `json:"length_penalty" validate:"gte=0,lte=1"`
	LengthPenaltyAt int     `json:"length_penalty_at" validate:"gte=1"`
}

func DefaultWeights() Weights {
	return Weights{
		Levenshtein:     0.3,
		LCS:             0.25,
		Bigram:          0.2,
		Trigram:         0.15,
		JaroWinkler:     0,
		PhoneticBonus:   0.3,
		PrefixBonus:     0.2,
		SuffixBonus:     0.1,
		LengthPenalty:   0.2,
		LengthPenaltyAt: 3,
	}
}

const prefixLen = 3

// Score combines the weighted metrics plus bonuses and penalty into a
// confidence clamped to [0,1]. Both arguments must be normalized.
func Score(query, candidate string, w Weights) float64 {
	if query == "" || candidate == "" {
		return 0
	}
	if query == candidate {
		return 1
	}

	qr, cr := []rune(query), []rune(candidate)
	longest := max(len(qr), len(cr))

	// the edit-distance term is approximated: past half the longer
	// string plus slack it reads 0 instead of its true sub-0.5 ratio.
	// That only moves pairs already far below any acceptance threshold.
	cutoff := longest/2 + 2
	score := w.Levenshtein * metrics.BoundedSimilarity(query, candidate, cutoff)
	score += w.LCS * metrics.LCSSimilarity(query, candidate)
	score += w.Bigram * metrics.NGramSimilarity(query, candidate, 2)
	score += w.Trigram * metrics.NGramSimilarity(query, candidate, 3)
	if w.JaroWinkler > 0 {
		score += w.JaroWinkler * matchr.JaroWinkler(query, candidate, false)
	}

	if metrics.PhoneticEqual(query, candidate) {
		score += w.PhoneticBonus
	}
	if len(qr) >= prefixLen && len(cr) >= prefixLen {
		if string(cr[:prefixLen]) == string(qr[:prefixLen]) {
			score += w.PrefixBonus
		}
		if string(cr[len(cr)-prefixLen:]) == string(qr[len(qr)-prefixLen:]) {
			score += w.SuffixBonus
		}
	}

	if diff := len(qr) - len(cr); diff > w.LengthPenaltyAt || -diff > w.LengthPenaltyAt {
		score -= w.LengthPenalty
	}

	return min(max(score, 0), 1)
}
