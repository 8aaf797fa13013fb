package metrics

// LCSLength is the longest common subsequence length, standard
// O(m*n) dynamic program over two sliding rows.
func LCSLength(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
		clear(curr)
	}

	return prev[len(rb)]
}

// LCSSimilarity divides the LCS length by the longer string's length.
// Two empty strings are identical (1).
func LCSSimilarity(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}
	return float64(LCSLength(a, b)) / float64(longest)
}
