// Package fuzzy offers small string-matching helpers used for suggestions and search ranking.
package fuzzy

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Distance returns the case-insensitive edit distance between a and b.
func Distance(a, b string) int {
	return levenshtein.ComputeDistance(strings.ToLower(a), strings.ToLower(b))
}

// Closest returns the candidate nearest to input when it is within maxDistance edits.
// Ties keep the candidate that appears first.
func Closest(input string, candidates []string, maxDistance int) (string, bool) {
	best := ""
	bestDist := maxDistance + 1
	for _, c := range candidates {
		if d := Distance(input, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist <= maxDistance
}

// Rank orders candidates by distance to input, closest first. The input slice is not modified.
func Rank(input string, candidates []string) []string {
	out := append([]string(nil), candidates...)
	sort.SliceStable(out, func(i, j int) bool {
		return Distance(input, out[i]) < Distance(input, out[j])
	})
	return out
}
