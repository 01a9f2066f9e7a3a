package model

import "fmt"

// Provenance records which phase produced a mapping entry.
type Provenance string

const (
	// ProvenanceExact marks entries from the order-preserving exact alignment.
	ProvenanceExact Provenance = "exact"
	// ProvenanceFuzzy marks entries from greedy candidate resolution.
	ProvenanceFuzzy Provenance = "fuzzy"
	// ProvenanceSplit marks entries from split detection.
	ProvenanceSplit Provenance = "split"
)

// IndexSet is a set of line indices.
type IndexSet map[int]struct{}

// Has reports whether idx is in the set.
func (s IndexSet) Has(idx int) bool {
	_, ok := s[idx]
	return ok
}

// Mapping maps old line indices to their targets.
type Mapping map[int]Target

// State is the matching state threaded through the pipeline phases. Each
// phase clones the incoming State and returns the updated copy.
type State struct {
	Mapping    Mapping
	MatchedOld IndexSet
	MatchedNew IndexSet
	Origin     map[int]Provenance
	Scores     map[int]float64 // committed score of fuzzy and split entries
}

// NewState returns an empty State.
func NewState() State {
	return State{
		Mapping:    Mapping{},
		MatchedOld: IndexSet{},
		MatchedNew: IndexSet{},
		Origin:     map[int]Provenance{},
		Scores:     map[int]float64{},
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	c := State{
		Mapping:    make(Mapping, len(s.Mapping)),
		MatchedOld: make(IndexSet, len(s.MatchedOld)),
		MatchedNew: make(IndexSet, len(s.MatchedNew)),
		Origin:     make(map[int]Provenance, len(s.Origin)),
		Scores:     make(map[int]float64, len(s.Scores)),
	}

	for k, v := range s.Mapping {
		c.Mapping[k] = Target{kind: v.kind, indices: v.Indices()}
	}

	for k := range s.MatchedOld {
		c.MatchedOld[k] = struct{}{}
	}

	for k := range s.MatchedNew {
		c.MatchedNew[k] = struct{}{}
	}

	for k, v := range s.Origin {
		c.Origin[k] = v
	}

	for k, v := range s.Scores {
		c.Scores[k] = v
	}

	return c
}

// Commit records old -> target and consumes every index involved. Consuming
// an index twice is a programming error and panics.
func (s State) Commit(old int, target Target, origin Provenance) {
	if s.MatchedOld.Has(old) {
		panic(fmt.Sprintf("old line %d already matched", old))
	}

	for _, idx := range target.indices {
		if s.MatchedNew.Has(idx) {
			panic(fmt.Sprintf("new line %d already matched", idx))
		}
	}

	s.Mapping[old] = target
	s.MatchedOld[old] = struct{}{}

	for _, idx := range target.indices {
		s.MatchedNew[idx] = struct{}{}
	}

	s.Origin[old] = origin
}

// IsOldMatched reports whether the old index is consumed.
func (s State) IsOldMatched(idx int) bool {
	return s.MatchedOld.Has(idx)
}

// IsNewMatched reports whether the new index is consumed.
func (s State) IsNewMatched(idx int) bool {
	return s.MatchedNew.Has(idx)
}

// UnmatchedOld returns the ascending non-empty old indices not yet consumed.
func (s State) UnmatchedOld(old Side) []int {
	return unmatched(old, s.MatchedOld)
}

// UnmatchedNew returns the ascending non-empty new indices not yet consumed.
func (s State) UnmatchedNew(side Side) []int {
	return unmatched(side, s.MatchedNew)
}

func unmatched(side Side, matched IndexSet) []int {
	var indices []int

	for _, idx := range side.NonEmpty() {
		if !matched.Has(idx) {
			indices = append(indices, idx)
		}
	}

	return indices
}
