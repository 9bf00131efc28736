package match

// Levenshtein computes the edit distance between two strings: the minimum
// number of single-rune insertions, deletions or substitutions turning one
// into the other.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	// row[i] holds the distance between ra[:i] and the prefix of rb processed so far.
	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(ra); i++ {
			up := row[i]

			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			row[i] = min(up+1, row[i-1]+1, diag+cost)
			diag = up
		}
	}

	return row[len(ra)]
}

// LevenshteinNormalized computes a similarity score between 0 and 1.
// 1.0 means identical strings, 0.0 means completely different.
// The score is: 1 - (distance / max(len(a), len(b))), lengths in runes.
func LevenshteinNormalized(a, b string) float64 {
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(maxLen)
}

// NormalizedLevenshteinScore computes the similarity of two identifiers
// after normalizing them.
func NormalizedLevenshteinScore(a, b string) float64 {
	return LevenshteinNormalized(NormalizeIdent(a), NormalizeIdent(b))
}
