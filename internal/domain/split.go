package domain

import (
	m "github.com/mouse-blink/linemap/internal/model"
)

// DetectSplits looks for old lines that were broken into 2 or 3 nearby new
// lines. For each unmatched old line it slides over the unmatched new lines in
// ascending order, concatenates the normalized texts of each window and keeps
// the window most similar to the old line, if its similarity exceeds the
// threshold.
func DetectSplits(oldSide, newSide m.Side, st m.State, opts Options) m.State {
	st = st.Clone()

	for _, o := range st.UnmatchedOld(oldSide) {
		window, score := bestSplit(oldSide[o].Normalized, newSide, st.UnmatchedNew(newSide), opts)
		if window == nil {
			continue
		}

		st.Commit(o, m.Split(window...), m.ProvenanceSplit)
		st.Scores[o] = score
	}

	return st
}

// bestSplit returns the best window over the ascending candidates and its
// content similarity. Earlier windows win ties; at the same position the
// 2-line window is considered before the 3-line one.
func bestSplit(target string, newSide m.Side, candidates []int, opts Options) ([]int, float64) {
	var best []int

	bestScore := opts.Threshold

	consider := func(window ...int) {
		var merged string
		for _, idx := range window {
			merged += newSide[idx].Normalized
		}

		if score := ContentSimilarity(target, merged); score > bestScore {
			bestScore = score
			best = window
		}
	}

	for k := range candidates {
		if k+1 < len(candidates) && candidates[k+1]-candidates[k] <= opts.SplitGap2 {
			consider(candidates[k], candidates[k+1])
		}

		if k+2 < len(candidates) && candidates[k+2]-candidates[k] <= opts.SplitGap3 {
			consider(candidates[k], candidates[k+1], candidates[k+2])
		}
	}

	if best == nil {
		return nil, 0
	}

	return best, bestScore
}
