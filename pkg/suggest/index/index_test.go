package index

import (
	"testing"

	"github.com/joaovbs/sugestor/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCorpus() []model.Document {
	return []model.Document{
		{
			Name:        "PlayStation 5 Console",
			Platform:    "PlayStation",
			Description: "<p>Console de <b>nova geração</b></p>",
		},
		{
			Name:     "Resident Evil 4",
			Platform: "Xbox",
		},
	}
}

func TestBuildWeights(t *testing.T) {
	b := NewBuilder(3, 7)
	candidates := b.Build([]string{"Nintendo"}, testCorpus())

	byTerm := make(map[string]float64, len(candidates))
	for _, c := range candidates {
		byTerm[c.Term] = c.Weight
	}

	assert.Equal(t, DictionaryWeight, byTerm["nintendo"])
	assert.Equal(t, NameWeight, byTerm["console"], "name weight wins over description weight")
	assert.Equal(t, NameWeight, byTerm["resident"])
	assert.Equal(t, DescriptionWeight, byTerm["geracao"])
	// platform field outranks description for the same term
	assert.Equal(t, PlatformWeight, byTerm["xbox"])
}

func TestBuildMinLengths(t *testing.T) {
	b := NewBuilder(3, 7)
	candidates := b.Build(nil, testCorpus())

	for _, c := range candidates {
		assert.GreaterOrEqual(t, len([]rune(c.Term)), 3, "term %q below minimum", c.Term)
	}
	assert.False(t, b.Known("de"), "short words are filtered out")
	assert.False(t, b.Known("evil 4"), "phrase below minimum phrase length")
	assert.True(t, b.Known("resident evil"))
	assert.True(t, b.Known("playstation 5"))
}

func TestBuildStableOrder(t *testing.T) {
	b := NewBuilder(3, 7)
	candidates := b.Build([]string{"zelda", "mario"}, testCorpus())
	require.NotEmpty(t, candidates)

	for i := 1; i < len(candidates); i++ {
		prev, curr := candidates[i-1], candidates[i]
		if prev.Weight == curr.Weight {
			assert.Less(t, prev.Term, curr.Term)
		} else {
			assert.Greater(t, prev.Weight, curr.Weight)
		}
	}
	assert.Equal(t, "mario", candidates[0].Term, "dictionary entries sort first, lexicographically")
	assert.Equal(t, "zelda", candidates[1].Term)
}

func TestBuildMemoization(t *testing.T) {
	b := NewBuilder(3, 7)
	corpus := testCorpus()

	first := b.Build([]string{"nintendo"}, corpus)
	second := b.Build([]string{"nintendo"}, corpus)
	require.NotEmpty(t, first)
	assert.Same(t, &first[0], &second[0], "unchanged inputs must reuse the memoized slice")

	third := b.Build([]string{"nintendo", "sega"}, corpus)
	assert.NotSame(t, &first[0], &third[0], "dictionary change must invalidate the memo")
	assert.True(t, b.Known("sega"))
}

func TestSearchableText(t *testing.T) {
	b := NewBuilder(3, 7)
	b.Build(nil, testCorpus())

	text := b.SearchableText()
	assert.Contains(t, text, "playstation 5 console")
	assert.Contains(t, text, "nova geracao")
	assert.NotContains(t, text, "<p>")
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text untouched", "console novo", "console novo"},
		{"tags removed", "<p>Console de <b>nova</b> geração</p>", "Console de  nova  geração "},
		{"script body skipped", "antes<script>var x = 1;</script>depois", "antes depois "},
		{"style body skipped", "a<style>p{color:red}</style>b", "a b "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripHTML(tt.input))
		})
	}
}
