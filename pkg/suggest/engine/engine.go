// Package engine orchestrates the suggestion pipeline: normalize,
// gate, cache, direct hit, candidate scan, multi-word decomposition,
// verdict. One Engine owns one dictionary and one cache, so separate
// tenants get separate instances.
package engine

import (
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/joaovbs/sugestor/pkg/model"
	"github.com/joaovbs/sugestor/pkg/suggest/index"
	"github.com/joaovbs/sugestor/pkg/suggest/metrics"
	"github.com/joaovbs/sugestor/pkg/suggest/normalize"
	"github.com/joaovbs/sugestor/pkg/suggest/scorer"
	"github.com/joaovbs/sugestor/pkg/suggest/variations"
)

// budget expiry is polled every deadlineCheckEvery candidates; checking
// the clock per candidate costs more than the scan step itself.
const deadlineCheckEvery = 64

// extraLetterConfidence is the confidence assigned to rule-table
// matches; above AutoThreshold because stray keystrokes are safe to
// undo without confirmation.
const extraLetterConfidence = 0.95

// Store persists user-accepted terms between runs. Implementations
// must tolerate concurrent calls.
type Store interface {
	AllTerms() ([]string, error)
	AddTerm(term string) error
}

type Engine struct {
	cfg     Config
	log     *model.Logger
	builder *index.Builder
	cache   *resultCache

	mu         sync.RWMutex
	dictionary []string // static entries plus loaded custom terms

	scans atomic.Int64 // candidate scans actually executed

	store Store
}

// New builds an engine over a static dictionary. store may be nil;
// when present its terms join the dictionary and Accept persists new
// ones to it.
func New(cfg Config, log *model.Logger, dictionary []string, store Store) *Engine {
	e := &Engine{
		cfg:        cfg,
		log:        log,
		builder:    index.NewBuilder(cfg.MinTermLen, cfg.MinPhraseLen),
		cache:      newResultCache(cfg.CacheTTL, cfg.CacheSweepAt),
		dictionary: append([]string(nil), dictionary...),
		store:      store,
	}
	if store != nil {
		custom, err := store.AllTerms()
		if err != nil {
			log.Errorf("loading custom terms: %v", err)
		} else {
			e.dictionary = append(e.dictionary, custom...)
		}
	}
	return e
}

// Suggest is the primary entry point: the full verdict for one raw
// query against a corpus. It never fails; unmatchable input degrades
// to a no-correction result.
//
// An engine serves one corpus: the candidate index is rebuilt in place,
// so interleaving different corpora across concurrent calls can pair
// the direct-hit text with another call's candidates. Use one engine
// per corpus.
func (e *Engine) Suggest(query string, corpus []model.Document) model.CorrectionResult {
	norm := normalize.Normalize(query)
	if len([]rune(norm)) < e.cfg.MinQueryLen {
		return model.CorrectionResult{Type: model.CorrectionNone}
	}

	if cached, ok := e.cache.get(norm); ok {
		return cached
	}

	candidates := e.builder.Build(e.snapshotDictionary(), corpus)

	var result model.CorrectionResult
	if strings.Contains(e.builder.SearchableText(), norm) {
		// the query already occurs verbatim in the corpus
		result = model.CorrectionResult{Type: model.CorrectionNone}
	} else {
		var deadline time.Time
		if e.cfg.Budget > 0 {
			deadline = time.Now().Add(e.cfg.Budget)
		}
		result = e.correct(norm, candidates, deadline, true)
	}

	e.cache.put(norm, result)
	return result
}

// NeedsCorrection is a convenience wrapper over Suggest.
func (e *Engine) NeedsCorrection(query string, corpus []model.Document) bool {
	return e.Suggest(query, corpus).NeedsCorrection
}

// AutoCorrect returns the corrected text only when the verdict is safe
// to apply unprompted: rule-table extra-letter matches, or confidence
// above the auto threshold. Anything else echoes the input.
func (e *Engine) AutoCorrect(query string, corpus []model.Document) string {
	result := e.Suggest(query, corpus)
	if !result.NeedsCorrection {
		return query
	}
	safe := result.Confidence > e.cfg.AutoThreshold ||
		(result.Type == model.CorrectionExtraLetter && result.Confidence >= extraLetterConfidence)
	if !safe {
		return query
	}
	return result.Suggestion
}

// Accept records that the user kept term as-is: it joins the dictionary
// immediately and is persisted when a store is configured.
func (e *Engine) Accept(term string) error {
	norm := normalize.Normalize(term)
	if len([]rune(norm)) < e.cfg.MinTermLen {
		return nil
	}

	e.mu.Lock()
	e.dictionary = append(e.dictionary, norm)
	e.mu.Unlock()
	e.cache.clear() // stale verdicts may now miss the new term

	if e.store == nil {
		return nil
	}
	return e.store.AddTerm(norm)
}

func (e *Engine) ClearCache() {
	e.cache.clear()
}

func (e *Engine) CacheStats() CacheStats {
	return e.cache.stats()
}

func (e *Engine) snapshotDictionary() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.dictionary
}

// correct scans the candidate space for the best suggestion. A zero
// deadline disables the time budget. decompose guards the multi-word
// recursion so per-word calls cannot recurse again.
func (e *Engine) correct(query string, candidates []index.Candidate, deadline time.Time, decompose bool) model.CorrectionResult {
	// a query that already is a known term stands as-is; without this the
	// variant short-circuit or the rule table could rewrite it onto a
	// sibling term sorted earlier in the scan
	if e.builder.Known(query) {
		return model.CorrectionResult{Type: model.CorrectionNone}
	}

	e.scans.Add(1)

	known := func(term string) bool { return e.builder.Known(term) }
	if e.cfg.ExtraLetterPath {
		if fixed, kind, ok := detectExtraLetter(query, known); ok {
			e.log.Debugf("extra-letter rule %q: %q -> %q", kind, query, fixed)
			return model.CorrectionResult{
				NeedsCorrection: true,
				Suggestion:      fixed,
				Confidence:      extraLetterConfidence,
				Type:            model.CorrectionExtraLetter,
			}
		}
	}

	queryVariants := variations.Generate(query)

	var best string
	var bestScore float64
	expired := false

	for i, candidate := range candidates {
		if !deadline.IsZero() && i%deadlineCheckEvery == 0 && time.Now().After(deadline) {
			expired = true
			break
		}

		if _, ok := queryVariants[candidate.Term]; ok && candidate.Term != query {
			best, bestScore = candidate.Term, e.cfg.VariantThreshold
			if s := scorer.Score(query, candidate.Term, e.cfg.Weights); s > bestScore {
				bestScore = s
			}
			break
		}

		s := scorer.Score(query, candidate.Term, e.cfg.Weights)
		if s < e.cfg.AcceptThreshold {
			continue
		}
		if e.cfg.FastPath && s >= e.cfg.FastThreshold {
			best, bestScore = candidate.Term, s
			break
		}
		// reverse direction: the query may be a known variant of the
		// candidate (e.g. a deletion of it); only worth generating for
		// already-plausible candidates
		if s < e.cfg.VariantThreshold && variations.Contains(candidate.Term, query) {
			best, bestScore = candidate.Term, e.cfg.VariantThreshold
			break
		}
		if s > bestScore {
			best, bestScore = candidate.Term, s
		}
	}
	if expired {
		e.log.Debugf("scan budget exhausted for %q, returning partial best", query)
	}

	if best == "" && decompose {
		best, bestScore = e.decompose(query, candidates, deadline)
	}

	if best == "" || best == query {
		return model.CorrectionResult{Type: model.CorrectionNone}
	}
	return model.CorrectionResult{
		NeedsCorrection: true,
		Suggestion:      best,
		Confidence:      bestScore,
		Type:            correctionType(query, best),
	}
}

// decompose corrects each word of a multi-word query independently and
// recombines. The word count is capped so a pathological query cannot
// trigger hundreds of scans.
func (e *Engine) decompose(query string, candidates []index.Candidate, deadline time.Time) (string, float64) {
	words := strings.Fields(query)
	if len(words) < 2 {
		return "", 0
	}

	out := make([]string, len(words))
	total := 0.0
	counted := 0
	for i, word := range words {
		out[i] = word
		// words past the cap pass through untouched
		if i >= e.cfg.MaxWords {
			continue
		}
		if len([]rune(word)) < e.cfg.MinQueryLen || e.builder.Known(word) {
			continue
		}
		result := e.correct(word, candidates, deadline, false)
		if result.NeedsCorrection && !strings.Contains(result.Suggestion, " ") {
			out[i] = result.Suggestion
			total += result.Confidence
			counted++
		}
	}

	recombined := strings.Join(out, " ")
	if counted == 0 || recombined == query {
		return "", 0
	}
	return recombined, total / float64(counted)
}

func correctionType(query, suggestion string) model.CorrectionType {
	if metrics.PhoneticEqual(query, suggestion) {
		return model.CorrectionPhonetic
	}
	return model.CorrectionTypo
}

// Scans reports how many candidate scans have run; cache hits do not
// increment it.
func (e *Engine) Scans() int64 {
	return e.scans.Load()
}
