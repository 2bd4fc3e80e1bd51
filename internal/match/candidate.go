package match

import (
	"sort"
)

// Candidate is a known name scored against a looked-up one.
type Candidate struct {
	Name string

	// Normalized Levenshtein similarity (0-1)
	Score float64

	NormalizedName string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankNames scores every known name against target.
// Returns candidates sorted by score (descending).
func RankNames(target string, names []string) CandidateList {
	candidates := make(CandidateList, 0, len(names))

	targetNorm := NormalizeIdent(target)

	for _, name := range names {
		norm := NormalizeIdent(name)

		candidates = append(candidates, Candidate{
			Name:           name,
			Score:          LevenshteinNormalized(norm, targetNorm),
			NormalizedName: norm,
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to n names similar to target, best first.
func Suggest(target string, names []string, n int, threshold float64) []string {
	ranked := RankNames(target, names).AboveThreshold(threshold).Top(n)

	out := make([]string, len(ranked))
	for i, c := range ranked {
		out[i] = c.Name
	}

	return out
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

// AboveThreshold returns candidates with score at or above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}
