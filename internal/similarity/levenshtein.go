package similarity

// LevenshteinSimilarity returns how close two whole utterances are, in
// [0, 100]. Both strings are trimmed and lower-cased, then compared by unit
// cost edit distance over code points:
//
//	round((1 - distance/max(len(a), len(b), 1)) * 100)
//
// This is O(len(a)*len(b)); call it once per final recognition result rather
// than on interim updates.
func LevenshteinSimilarity(a, b string) int {
	ar := []rune(normalize(a))
	br := []rune(normalize(b))
	if len(ar) == 0 && len(br) == 0 {
		return PerfectScore
	}

	d := EditDistance(ar, br)
	longest := max(len(ar), len(br), 1)
	return percent(1 - float64(d)/float64(longest))
}

// EditDistance computes the Levenshtein distance between two rune sequences.
func EditDistance(a, b []rune) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// Two rows of the (la+1) x (lb+1) table are enough.
	prev := make([]int, lb+1)
	cur := make([]int, lb+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		cur[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(
				prev[j]+1,      // deletion
				cur[j-1]+1,     // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, cur = cur, prev
	}
	return prev[lb]
}
