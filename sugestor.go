// Package sugestor provides "did you mean?" spelling suggestions for
// storefront search queries: fuzzy matching of a query against a
// gaming vocabulary plus whatever terms the product corpus itself
// contains.
//
// The package-level functions run on a shared engine with the bundled
// dictionary and default tuning. Construct your own engine via
// pkg/suggest/engine for per-tenant dictionaries, custom weights or a
// persistent term store.
package sugestor

import (
	"sync"

	"github.com/joaovbs/sugestor/pkg/model"
	"github.com/joaovbs/sugestor/pkg/suggest/dictionary"
	"github.com/joaovbs/sugestor/pkg/suggest/engine"
	"github.com/joaovbs/sugestor/pkg/suggest/normalize"
)

type (
	Document         = model.Document
	CorrectionResult = model.CorrectionResult
	CacheStatistics  = engine.CacheStats
)

var (
	defaultOnce   sync.Once
	defaultEngine *engine.Engine
)

func defaultInstance() *engine.Engine {
	defaultOnce.Do(func() {
		defaultEngine = engine.New(engine.DefaultConfig(), nil, dictionary.Default(), nil)
	})
	return defaultEngine
}

// Normalize canonicalizes text the way all comparisons see it.
func Normalize(text string) string {
	return normalize.Normalize(text)
}

// Suggest returns the correction verdict for query against corpus.
func Suggest(query string, corpus []Document) CorrectionResult {
	return defaultInstance().Suggest(query, corpus)
}

// NeedsCorrection reports whether query looks misspelled.
func NeedsCorrection(query string, corpus []Document) bool {
	return defaultInstance().NeedsCorrection(query, corpus)
}

// AutoCorrect returns corrected text when the correction is safe to
// apply without confirmation, otherwise the input unchanged.
func AutoCorrect(query string, corpus []Document) string {
	return defaultInstance().AutoCorrect(query, corpus)
}

// ClearCache drops all memoized verdicts of the shared engine.
func ClearCache() {
	defaultInstance().ClearCache()
}

// CacheStats exposes the shared engine's cache for tests and
// monitoring.
func CacheStats() CacheStatistics {
	return defaultInstance().CacheStats()
}
