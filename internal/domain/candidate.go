package domain

import (
	"sort"

	m "github.com/mouse-blink/linemap/internal/model"
)

// Candidate is a potential fuzzy match between an old and a new line. It only
// lives while MatchCandidates resolves conflicts.
type Candidate struct {
	Old   int
	New   int
	Score float64
}

// CandidateList is a list of candidates with a deterministic ranking.
type CandidateList []Candidate

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then old index, then new index ascending.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	if c[i].Old != c[j].Old {
		return c[i].Old < c[j].Old
	}

	return c[i].New < c[j].New
}

// GenerateCandidates scores every unmatched non-empty old/new pair and keeps
// the ones at or above threshold, ranked.
func GenerateCandidates(scorer *Scorer, oldSide, newSide m.Side, st m.State, threshold float64) CandidateList {
	var candidates CandidateList

	unmatchedNew := st.UnmatchedNew(newSide)

	for _, o := range st.UnmatchedOld(oldSide) {
		for _, n := range unmatchedNew {
			score := scorer.Score(o, n)
			if score >= threshold {
				candidates = append(candidates, Candidate{Old: o, New: n, Score: score})
			}
		}
	}

	sort.Sort(candidates)

	return candidates
}

// MatchCandidates resolves ranked candidates greedily: a candidate is committed
// when neither of its lines has been consumed by a higher-ranked one.
func MatchCandidates(scorer *Scorer, oldSide, newSide m.Side, st m.State, threshold float64) m.State {
	candidates := GenerateCandidates(scorer, oldSide, newSide, st, threshold)

	st = st.Clone()

	for _, c := range candidates {
		if st.IsOldMatched(c.Old) || st.IsNewMatched(c.New) {
			continue
		}

		st.Commit(c.Old, m.Single(c.New), m.ProvenanceFuzzy)
		st.Scores[c.Old] = c.Score
	}

	return st
}
