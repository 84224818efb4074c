package registry

import "sort"

// SuggestCommands returns up to maxResults command keys from candidates
// that are close, by edit distance, to target — surfaced by the façade
// as a "did you mean" hint on a TEMPLATE_NOT_FOUND error. Grounded on
// prompty.debug.go's findSimilarStrings/levenshteinDistance pair, the
// teacher's own mechanism for suggesting near-miss variable names.
func SuggestCommands(target string, candidates []string, maxResults int) []string {
	return findSimilarStrings(target, candidates, maxResults)
}

func findSimilarStrings(target string, candidates []string, maxResults int) []string {
	type scored struct {
		str   string
		score int
	}

	var scoredCandidates []scored
	for _, c := range candidates {
		dist := levenshteinDistance(target, c)
		if dist <= len(target)/2+2 {
			scoredCandidates = append(scoredCandidates, scored{c, dist})
		}
	}

	sort.Slice(scoredCandidates, func(i, j int) bool {
		return scoredCandidates[i].score < scoredCandidates[j].score
	})

	results := make([]string, 0, maxResults)
	for i := 0; i < len(scoredCandidates) && i < maxResults; i++ {
		results = append(results, scoredCandidates[i].str)
	}
	return results
}

func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}
	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			matrix[i][j] = minOfThree(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}

	return matrix[len(a)][len(b)]
}

func minOfThree(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
