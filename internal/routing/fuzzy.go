package routing

import "github.com/agnivade/levenshtein"

// fuzzyCutoff is the minimum normalized similarity for a token to count
// as a fuzzy keyword hit.
const fuzzyCutoff = 0.82

// closestToken returns the text token most similar to the keyword, if
// any token clears the cutoff. Similarity is 1 - distance/maxLen over
// the Levenshtein edit distance.
func closestToken(keyword string, tokens []string) (string, bool) {
	best := ""
	bestScore := 0.0
	for _, token := range tokens {
		score := similarity(keyword, token)
		if score >= fuzzyCutoff && score > bestScore {
			best = token
			bestScore = score
		}
	}
	return best, best != ""
}

func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	longest := len([]rune(a))
	if lb := len([]rune(b)); lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(longest)
}
