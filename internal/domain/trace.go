package domain

import (
	"sort"

	m "github.com/mouse-blink/linemap/internal/model"
)

// ProjectBack returns the sorted, distinct 1-based old line numbers whose
// mapping lands on any of the given 1-based new line numbers.
func ProjectBack(result m.Result, newLines []int) []int {
	wanted := make(map[int]bool, len(newLines))
	for _, n := range newLines {
		wanted[n-1] = true
	}

	var oldLines []int

	for old, target := range result.State.Mapping {
		for _, idx := range target.Indices() {
			if wanted[idx] {
				oldLines = append(oldLines, old+1)
				break
			}
		}
	}

	sort.Ints(oldLines)

	return oldLines
}

// ProjectForward returns the sorted, distinct 1-based new line numbers the
// given 1-based old line numbers map onto.
func ProjectForward(result m.Result, oldLines []int) []int {
	seen := map[int]bool{}

	var newLines []int

	for _, o := range oldLines {
		target, ok := result.Target(o - 1)
		if !ok {
			continue
		}

		for _, idx := range target.Indices() {
			if !seen[idx] {
				seen[idx] = true
				newLines = append(newLines, idx+1)
			}
		}
	}

	sort.Ints(newLines)

	return newLines
}
