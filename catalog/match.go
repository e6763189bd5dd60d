package catalog

import (
	"strings"
)

// maxEditDistance is how many typos a search query may contain and still
// match an item name.
const maxEditDistance = 2

// MatchesName reports whether an item name matches a free-text query.
// Containment always wins; otherwise the full strings must be within
// maxEditDistance edits of each other. Both inputs are case-folded here,
// callers pass them raw.
func MatchesName(name, query string) bool {
	name = strings.ToLower(name)
	query = strings.ToLower(query)

	if strings.Contains(name, query) {
		return true
	}
	return Levenshtein(name, query) <= maxEditDistance
}

// Levenshtein returns the minimum number of single-character insertions,
// deletions, and substitutions needed to turn a into b. Classic two-row
// dynamic programming over runes; product names and search terms are short
// enough that no cutoff is needed.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost

			min := del
			if ins < min {
				min = ins
			}
			if sub < min {
				min = sub
			}
			curr[j] = min
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
