// Package metrics holds the pure pairwise similarity functions the
// scorer combines: Levenshtein, LCS, n-gram Jaccard and a Soundex-style
// phonetic code. Every function expects normalized input and returns a
// value in [0,1] unless stated otherwise.
package metrics

// Distance is the classic Levenshtein edit distance over runes,
// computed with two sliding rows.
func Distance(a, b string) int {
	d, _ := boundedDistance([]rune(a), []rune(b), -1)
	return d
}

// BoundedDistance is Distance with an early exit: ok is false as soon
// as the provable minimum distance exceeds cutoff, and the returned
// distance is then meaningless. A negative cutoff disables the bound.
func BoundedDistance(a, b string, cutoff int) (int, bool) {
	return boundedDistance([]rune(a), []rune(b), cutoff)
}

func boundedDistance(ra, rb []rune, cutoff int) (int, bool) {
	la, lb := len(ra), len(rb)
	if cutoff >= 0 && (la-lb > cutoff || lb-la > cutoff) {
		return cutoff + 1, false
	}
	if la == 0 {
		return lb, true
	}
	if lb == 0 {
		return la, true
	}

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		rowMin := curr[0]
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
			rowMin = min(rowMin, curr[j])
		}
		if cutoff >= 0 && rowMin > cutoff {
			return cutoff + 1, false
		}
		prev, curr = curr, prev
	}

	return prev[lb], true
}

// Similarity converts edit distance to a ratio: 1 - d/max(len(a), len(b)).
// Two empty strings are identical (1).
func Similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	longest := max(len(ra), len(rb))
	if longest == 0 {
		return 1
	}
	d, _ := boundedDistance(ra, rb, -1)
	return 1 - float64(d)/float64(longest)
}

// BoundedSimilarity is Similarity with a distance cutoff; it returns 0
// once the distance provably exceeds cutoff. Used on large candidate
// sets where obviously-dissimilar pairs should not pay full O(m*n).
func BoundedSimilarity(a, b string, cutoff int) float64 {
	ra, rb := []rune(a), []rune(b)
	longest := max(len(ra), len(rb))
	if longest == 0 {
		return 1
	}
	d, ok := boundedDistance(ra, rb, cutoff)
	if !ok {
		return 0
	}
	return 1 - float64(d)/float64(longest)
}
