package sugestor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "memoria de video", Normalize("Memória de Vídeo!"))
}

func TestSuggestWithBundledDictionary(t *testing.T) {
	result := Suggest("playstaton", nil)
	require.True(t, result.NeedsCorrection)
	assert.Equal(t, "playstation", result.Suggestion)
}

func TestSuggestAgainstCorpus(t *testing.T) {
	corpus := []Document{
		{Name: "God of War Ragnarok", Platform: "PlayStation 5"},
	}

	assert.False(t, NeedsCorrection("ragnarok", corpus))
	assert.True(t, NeedsCorrection("ragnarokk", corpus))
}

func TestAutoCorrect(t *testing.T) {
	assert.Equal(t, "xbox", AutoCorrect("xbox x", nil))
}

func TestCacheRoundTrip(t *testing.T) {
	ClearCache()
	Suggest("playstaton", nil)
	assert.GreaterOrEqual(t, CacheStats().Size, 1)

	ClearCache()
	assert.Equal(t, 0, CacheStats().Size)
}
