package metrics

// NGramSet returns the set of contiguous rune substrings of length n.
// Strings shorter than n produce an empty set.
func NGramSet(s string, n int) map[string]struct{} {
	runes := []rune(s)
	if n < 1 || len(runes) < n {
		return map[string]struct{}{}
	}
	grams := make(map[string]struct{}, len(runes)-n+1)
	for i := 0; i+n <= len(runes); i++ {
		grams[string(runes[i:i+n])] = struct{}{}
	}
	return grams
}

// NGramSimilarity is the Jaccard index between the n-gram sets of a
// and b. Defined as 0 when the union is empty.
func NGramSimilarity(a, b string, n int) float64 {
	ga, gb := NGramSet(a, n), NGramSet(b, n)
	if len(ga) == 0 && len(gb) == 0 {
		return 0
	}

	inter := 0
	for g := range ga {
		if _, ok := gb[g]; ok {
			inter++
		}
	}
	union := len(ga) + len(gb) - inter
	return float64(inter) / float64(union)
}
