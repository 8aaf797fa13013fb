// Package index mines the candidate vocabulary a query can be
// corrected to: the static dictionary plus words and two-word phrases
// taken from the corpus text fields. The built index is memoized on a
// corpus fingerprint so repeated queries against the same corpus skip
// the extraction pass.
package index

import (
	"crypto/sha256"
	"sort"
	"strings"
	"sync"

	"github.com/joaovbs/sugestor/pkg/model"
	"github.com/joaovbs/sugestor/pkg/suggest/normalize"
	"golang.org/x/net/html"
)

// Candidate is a normalized term or short phrase eligible to be
// suggested, together with the highest importance weight of the fields
// it was mined from. Dictionary entries carry DictionaryWeight.
type Candidate struct {
	Term   string
	Weight float64
}

// Field importance: product names matter more than descriptions when
// two candidates tie on score.
const (
	DictionaryWeight  = 4.0
	NameWeight        = 3.0
	PlatformWeight    = 2.0
	DescriptionWeight = 1.0
)

type Builder struct {
	minTermLen   int
	minPhraseLen int

	mu        sync.Mutex
	memoKey   [32]byte
	memo      []Candidate
	memoText  string
	memoTerms map[string]struct{}
}

// NewBuilder returns a Builder that drops candidate words shorter than
// minTermLen and phrases shorter than minPhraseLen.
func NewBuilder(minTermLen, minPhraseLen int) *Builder {
	return &Builder{
		minTermLen:   minTermLen,
		minPhraseLen: minPhraseLen,
	}
}

// Build returns the deduplicated candidate set for dictionary ∪ corpus,
// sorted by descending weight then lexicographically so iteration order
// is stable and tie-breaks reproducible. Results are memoized until the
// dictionary or corpus changes.
func (b *Builder) Build(dictionary []string, corpus []model.Document) []Candidate {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := fingerprint(dictionary, corpus)
	if key == b.memoKey && b.memo != nil {
		return b.memo
	}

	weights := make(map[string]float64)
	record := func(term string, weight float64) {
		if w, ok := weights[term]; !ok || weight > w {
			weights[term] = weight
		}
	}

	for _, entry := range dictionary {
		term := normalize.Normalize(entry)
		if len([]rune(term)) >= b.minTermLen {
			record(term, DictionaryWeight)
		}
	}

	var searchable strings.Builder
	for _, doc := range corpus {
		for _, field := range []struct {
			text   string
			weight float64
		}{
			{doc.Name, NameWeight},
			{doc.Platform, PlatformWeight},
			{StripHTML(doc.Description), DescriptionWeight},
		} {
			if field.text == "" {
				continue
			}
			text := normalize.Normalize(field.text)
			if text == "" {
				continue
			}
			searchable.WriteString(text)
			searchable.WriteByte(' ')

			words := normalize.Words(text)
			for i, word := range words {
				if len([]rune(word)) >= b.minTermLen {
					record(word, field.weight)
				}
				if i+1 < len(words) {
					phrase := word + " " + words[i+1]
					if len([]rune(phrase)) >= b.minPhraseLen {
						record(phrase, field.weight)
					}
				}
			}
		}
	}

	candidates := make([]Candidate, 0, len(weights))
	terms := make(map[string]struct{}, len(weights))
	for term, weight := range weights {
		candidates = append(candidates, Candidate{Term: term, Weight: weight})
		terms[term] = struct{}{}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Weight != candidates[j].Weight {
			return candidates[i].Weight > candidates[j].Weight
		}
		return candidates[i].Term < candidates[j].Term
	})

	b.memoKey = key
	b.memo = candidates
	b.memoText = searchable.String()
	b.memoTerms = terms
	return candidates
}

// SearchableText is the normalized concatenation of all corpus fields,
// used for the direct-hit substring check. Valid for the corpus passed
// to the latest Build call.
func (b *Builder) SearchableText() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.memoText
}

// Known reports whether term is an exact candidate of the latest build.
func (b *Builder) Known(term string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.memoTerms[term]
	return ok
}

func fingerprint(dictionary []string, corpus []model.Document) [32]byte {
	h := sha256.New()
	for _, entry := range dictionary {
		h.Write([]byte(entry))
		h.Write([]byte{0})
	}
	h.Write([]byte{1})
	for _, doc := range corpus {
		h.Write([]byte(doc.Name))
		h.Write([]byte{0})
		h.Write([]byte(doc.Platform))
		h.Write([]byte{0})
		h.Write([]byte(doc.Description))
		h.Write([]byte{0})
	}
	var key [32]byte
	h.Sum(key[:0])
	return key
}

// StripHTML extracts the visible text of an HTML fragment, skipping
// script and style bodies. Plain text comes back unchanged apart from
// token boundaries turning into spaces.
func StripHTML(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	tokenizer := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	skipDepth := 0
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return b.String()
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if tag := string(name); tag == "script" || tag == "style" {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if tag := string(name); (tag == "script" || tag == "style") && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth == 0 {
				b.Write(tokenizer.Text())
				b.WriteByte(' ')
			}
		}
	}
}
