package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/joaovbs/sugestor/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDictionary = []string{
	"playstation",
	"xbox",
	"nintendo",
	"resident evil",
}

func testEngine() *Engine {
	return New(DefaultConfig(), nil, testDictionary, nil)
}

func TestSuggestMissingLetter(t *testing.T) {
	e := testEngine()

	result := e.Suggest("playstaton", nil)
	require.True(t, result.NeedsCorrection)
	assert.Equal(t, "playstation", result.Suggestion)
	assert.GreaterOrEqual(t, result.Confidence, 0.7)
	assert.NotEqual(t, model.CorrectionNone, result.Type)
}

func TestSuggestExactTermNoCorrection(t *testing.T) {
	e := testEngine()

	result := e.Suggest("playstation", nil)
	assert.False(t, result.NeedsCorrection)
	assert.Equal(t, model.CorrectionNone, result.Type)
}

func TestSuggestKnownTermWithCloseSibling(t *testing.T) {
	// each term sits in its sibling's variant set ("kart" is one
	// substitution from "cart") or collapses onto it via the doubled
	// letter rule ("sonny" -> "sony"); an exact dictionary match must
	// still never be rewritten
	e := New(DefaultConfig(), nil, []string{"cart", "kart", "sony", "sonny"}, nil)

	for _, query := range []string{"cart", "kart", "sony", "sonny"} {
		result := e.Suggest(query, nil)
		assert.False(t, result.NeedsCorrection, "dictionary term %q was rewritten to %q", query, result.Suggestion)
		assert.Equal(t, model.CorrectionNone, result.Type)
	}
}

func TestSuggestDirectCorpusHit(t *testing.T) {
	e := testEngine()
	corpus := []model.Document{{Name: "God of War Ragnarok", Platform: "PlayStation"}}

	result := e.Suggest("ragnarok", corpus)
	assert.False(t, result.NeedsCorrection, "verbatim corpus occurrences are never corrected")
}

func TestSuggestQueryLengthGate(t *testing.T) {
	e := testEngine()

	result := e.Suggest("a", nil)
	assert.False(t, result.NeedsCorrection)
	assert.Equal(t, int64(0), e.Scans(), "gated queries must not trigger a scan")
	assert.Equal(t, 0, e.CacheStats().Size, "gated queries must not be cached")
}

func TestSuggestPhraseTypo(t *testing.T) {
	e := testEngine()

	result := e.Suggest("residente evil", nil)
	require.True(t, result.NeedsCorrection)
	assert.Equal(t, "resident evil", result.Suggestion)
}

func TestSuggestMultiWordDecomposition(t *testing.T) {
	e := testEngine()

	result := e.Suggest("xbo nintndo", nil)
	require.True(t, result.NeedsCorrection)
	assert.Equal(t, "xbox nintendo", result.Suggestion)
	assert.Greater(t, result.Confidence, 0.0)
}

func TestSuggestBudget(t *testing.T) {
	corpus := make([]model.Document, 400)
	for i := range corpus {
		corpus[i] = model.Document{Name: fmt.Sprintf("produto generico %03d", i)}
	}

	cfg := DefaultConfig()
	cfg.Budget = time.Nanosecond
	e := New(cfg, nil, testDictionary, nil)

	// the deadline expires before the first candidate is considered, so
	// the scan must stop early with a valid empty verdict
	result := e.Suggest("playstaton", corpus)
	assert.False(t, result.NeedsCorrection)
	assert.GreaterOrEqual(t, result.Confidence, 0.0)
	assert.LessOrEqual(t, result.Confidence, 1.0)

	cfg.Budget = 0 // disabled, the full scan runs
	e = New(cfg, nil, testDictionary, nil)
	full := e.Suggest("playstaton", corpus)
	require.True(t, full.NeedsCorrection)
	assert.Equal(t, "playstation", full.Suggestion)
}

func TestSuggestCacheHit(t *testing.T) {
	e := testEngine()

	first := e.Suggest("playstaton", nil)
	scans := e.Scans()
	second := e.Suggest("playstaton", nil)

	assert.Equal(t, first, second)
	assert.Equal(t, scans, e.Scans(), "the second call must be served from cache")
	assert.Equal(t, 1, e.CacheStats().Size)
}

func TestSuggestCacheExpiry(t *testing.T) {
	e := testEngine()

	e.Suggest("playstaton", nil)
	scans := e.Scans()

	e.cache.now = func() time.Time { return time.Now().Add(e.cfg.CacheTTL + time.Second) }
	e.Suggest("playstaton", nil)
	assert.Equal(t, scans+1, e.Scans(), "an expired entry must be recomputed")
}

func TestAutoCorrect(t *testing.T) {
	e := testEngine()

	// stray-token glue, handled by the rule table at full confidence
	assert.Equal(t, "playstation", e.AutoCorrect("playstatio n", nil))
	// nothing wrong, input echoed
	assert.Equal(t, "playstation", e.AutoCorrect("playstation", nil))
}

func TestAutoCorrectBelowThreshold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AutoThreshold = 1
	cfg.ExtraLetterPath = false
	e := New(cfg, nil, testDictionary, nil)

	require.True(t, e.NeedsCorrection("playstaton", nil))
	assert.Equal(t, "playstaton", e.AutoCorrect("playstaton", nil),
		"an unsafe correction must not be applied unprompted")
}

func TestSuggestDegenerateInput(t *testing.T) {
	e := testEngine()

	for _, query := range []string{"", "   ", "\t\n", "日本語クエリ", "!!!"} {
		result := e.Suggest(query, nil)
		assert.False(t, result.NeedsCorrection, "query %q", query)
	}
}

type fakeStore struct {
	terms []string
	added []string
}

func (s *fakeStore) AllTerms() ([]string, error) { return s.terms, nil }
func (s *fakeStore) AddTerm(term string) error {
	s.added = append(s.added, term)
	return nil
}

func TestStoreTermsJoinDictionary(t *testing.T) {
	store := &fakeStore{terms: []string{"hollow knight"}}
	e := New(DefaultConfig(), nil, testDictionary, store)

	result := e.Suggest("hollow knigt", nil)
	require.True(t, result.NeedsCorrection)
	assert.Equal(t, "hollow knight", result.Suggestion)
}

func TestAccept(t *testing.T) {
	store := &fakeStore{}
	e := New(DefaultConfig(), nil, testDictionary, store)

	require.False(t, e.NeedsCorrection("sekirro", nil), "unknown term, nothing to suggest yet")

	require.NoError(t, e.Accept("Sekiro"))
	assert.Equal(t, []string{"sekiro"}, store.added)
	assert.Equal(t, 0, e.CacheStats().Size, "accepting a term must drop stale verdicts")

	// doubled letter now collapses onto the accepted term
	result := e.Suggest("sekirro", nil)
	require.True(t, result.NeedsCorrection)
	assert.Equal(t, "sekiro", result.Suggestion)
	assert.Equal(t, model.CorrectionExtraLetter, result.Type)
}

func TestAcceptShortTermIgnored(t *testing.T) {
	store := &fakeStore{}
	e := New(DefaultConfig(), nil, testDictionary, store)

	require.NoError(t, e.Accept("ab"))
	assert.Empty(t, store.added)
}

func TestClearCache(t *testing.T) {
	e := testEngine()
	e.Suggest("playstaton", nil)
	require.Equal(t, 1, e.CacheStats().Size)

	e.ClearCache()
	assert.Equal(t, 0, e.CacheStats().Size)
}
