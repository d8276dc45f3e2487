// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package resolve

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// closestPath returns the candidate with the smallest Levenshtein distance to
// target, or "" and -1 when there are no candidates. Ties keep the earlier
// candidate.
func closestPath(target string, candidates []string) (string, int) {
	dmp := diffmatchpatch.New()

	best, bestDist := "", -1
	for _, c := range candidates {
		diffs := dmp.DiffMain(target, c, false)
		dist := dmp.DiffLevenshtein(diffs)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = c, dist
		}
	}
	return best, bestDist
}
