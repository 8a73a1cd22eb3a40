// Package suggest finds the closest spelling of a mistyped word among a bank
// of known words.
package suggest

import "github.com/agnivade/levenshtein"

// Cost bounds the edit distance a suggestion may be from its target.
// A zero cost disables suggestions.
type Cost int

// Func is the signature of a suggestion oracle.
type Func func(target string, bank []string, maxCost Cost) (string, bool)

// Closest returns the word in bank with the smallest edit distance to target,
// provided that distance does not exceed maxCost. Ties go to the earlier word.
func Closest(target string, bank []string, maxCost Cost) (string, bool) {
	if maxCost <= 0 {
		return "", false
	}

	var (
		best     string
		bestCost Cost
		found    bool
	)

	for _, word := range bank {
		cost := Cost(levenshtein.ComputeDistance(target, word))
		if cost > maxCost {
			continue
		}

		if !found || cost < bestCost {
			best, bestCost, found = word, cost, true
		}
	}

	return best, found
}
