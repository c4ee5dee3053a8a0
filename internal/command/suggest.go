package command

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance is how many edits away a typed verb may be from a known
// verb before it is not worth suggesting.
const maxSuggestDistance = 2

// Suggest returns the known verb closest to the given unrecognized verb, or
// "" if nothing is close enough to be a plausible typo. Ties break toward
// the lexicographically smaller verb so output is stable.
func Suggest(verb string, known []string) string {
	if len(verb) < 2 {
		return ""
	}

	sorted := append([]string(nil), known...)
	sort.Strings(sorted)

	best := ""
	bestDist := maxSuggestDistance + 1
	for _, cand := range sorted {
		dist := levenshtein.ComputeDistance(verb, cand)
		if dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	if bestDist > maxSuggestDistance {
		return ""
	}
	return best
}
