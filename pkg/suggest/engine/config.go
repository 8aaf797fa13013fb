package engine

import (
	"time"

	"github.com/joaovbs/sugestor/pkg/suggest/scorer"
)

// Config parameterizes one engine instance. The three historical
// checker variants (exploratory, balanced, strict) are just different
// values here; pick a profile constructor and override what you need.
type Config struct {
	// queries shorter than this bypass correction entirely
	MinQueryLen int `json:"min_query_len" validate:"gte=1"`
	// candidate words shorter than this are not indexed
	MinTermLen   int `json:"min_term_len" validate:"gte=1"`
	MinPhraseLen int `json:"min_phrase_len" validate:"gte=1"`

	// minimum score a candidate must reach to become a suggestion
	AcceptThreshold float64 `json:"accept_threshold" validate:"gte=0,lte=1"`
	// with FastPath on, the scan stops at the first candidate at or
	// above this score
	FastThreshold float64 `json:"fast_threshold" validate:"gte=0,lte=1"`
	// variation-table hits short-circuit with at least this confidence
	VariantThreshold float64 `json:"variant_threshold" validate:"gte=0,lte=1"`
	// AutoCorrect applies a suggestion unprompted above this confidence
	AutoThreshold float64 `json:"auto_threshold" validate:"gte=0,lte=1"`

	FastPath        bool `json:"fast_path"`
	ExtraLetterPath bool `json:"extra_letter_path"`

	// cap on space-separated words considered during decomposition
	MaxWords int `json:"max_words" validate:"gte=1"`

	// soft wall-clock budget for one candidate scan; zero disables it
	Budget time.Duration `json:"-"`

	CacheTTL     time.Duration `json:"-"`
	CacheSweepAt int           `json:"cache_sweep_at" validate:"gte=1"`

	Weights scorer.Weights `json:"weights"`
}

// DefaultConfig is the balanced profile used by the storefront search
// box.
func DefaultConfig() Config {
	return Config{
		MinQueryLen:      2,
		MinTermLen:       3,
		MinPhraseLen:     7,
		AcceptThreshold:  0.5,
		FastThreshold:    0.65,
		VariantThreshold: 0.85,
		AutoThreshold:    0.9,
		FastPath:         false,
		ExtraLetterPath:  true,
		MaxWords:         8,
		Budget:           40 * time.Millisecond,
		CacheTTL:         5 * time.Minute,
		CacheSweepAt:     512,
		Weights:          scorer.DefaultWeights(),
	}
}

// ExploratoryConfig trades precision for recall: lower acceptance bar,
// no shortcuts, exhaustive scan.
func ExploratoryConfig() Config {
	cfg := DefaultConfig()
	cfg.AcceptThreshold = 0.45
	cfg.FastPath = false
	cfg.ExtraLetterPath = false
	return cfg
}

// StrictConfig favors latency: first good-enough candidate wins and
// the extra-letter rules run before any scan.
func StrictConfig() Config {
	cfg := DefaultConfig()
	cfg.AcceptThreshold = 0.6
	cfg.FastThreshold = 0.7
	cfg.FastPath = true
	return cfg
}
