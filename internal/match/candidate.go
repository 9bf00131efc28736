package match

import "sort"

// Candidate is a known name ranked against an unknown one.
type Candidate struct {
	Name  string
	Score float64 // Normalized Levenshtein similarity (0-1)
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Normalizer maps a name to the form it is compared in.
type Normalizer func(string) string

// RankCandidates scores every known name against target. Names are compared
// after normalization; identical names are never candidates. The result is
// sorted by score (descending), ties by name.
func RankCandidates(target string, known []string, norm Normalizer) CandidateList {
	if norm == nil {
		norm = NormalizeIdent
	}

	targetNorm := norm(target)
	candidates := make(CandidateList, 0, len(known))

	for _, name := range known {
		if name == target {
			continue
		}

		candidates = append(candidates, Candidate{
			Name:  name,
			Score: LevenshteinNormalized(targetNorm, norm(name)),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to limit known names scoring at least minScore against target.
func Suggest(target string, known []string, norm Normalizer, limit int, minScore float64) []string {
	ranked := RankCandidates(target, known, norm).AboveThreshold(minScore).Top(limit)

	names := make([]string, 0, len(ranked))
	for _, c := range ranked {
		names = append(names, c.Name)
	}

	return names
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// AboveThreshold returns candidates with a score of at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// Suggestion thresholds.
const (
	// DefaultMinScore is the minimum similarity for a name to be suggested.
	DefaultMinScore = 0.75
	// DefaultMaxSuggestions is how many names a diagnostic lists at most.
	DefaultMaxSuggestions = 3
)
