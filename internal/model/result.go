package model

// Result is the assembled outcome of one comparison. It is not mutated after
// the pipeline returns it.
type Result struct {
	Old   Side
	New   Side
	State State
}

// Target returns the mapping entry for an old index.
func (r Result) Target(old int) (Target, bool) {
	t, ok := r.State.Mapping[old]
	return t, ok
}

// Deleted returns the non-empty old indices left unmatched.
func (r Result) Deleted() []int {
	return r.State.UnmatchedOld(r.Old)
}

// Inserted returns the non-empty new indices left unmatched.
func (r Result) Inserted() []int {
	return r.State.UnmatchedNew(r.New)
}

// Rows lists one row per non-empty old line followed by one row per inserted
// new line, all 1-based.
func (r Result) Rows() []Row {
	rows := make([]Row, 0, len(r.Old)+len(r.New))

	for _, idx := range r.Old.NonEmpty() {
		row := Row{Old: idx + 1}

		if t, ok := r.State.Mapping[idx]; ok {
			for _, n := range t.indices {
				row.New = append(row.New, n+1)
			}

			row.Origin = r.State.Origin[idx]
		}

		rows = append(rows, row)
	}

	for _, idx := range r.Inserted() {
		rows = append(rows, Row{Old: -1, New: []int{idx + 1}})
	}

	return rows
}

// Summary counts the entries of r by outcome.
func (r Result) Summary() Summary {
	var s Summary

	for _, origin := range r.State.Origin {
		switch origin {
		case ProvenanceExact:
			s.Exact++
		case ProvenanceFuzzy:
			s.Fuzzy++
		case ProvenanceSplit:
			s.Split++
		}
	}

	s.Deleted = len(r.Deleted())
	s.Inserted = len(r.Inserted())

	return s
}

// Report packages r for rendering and persistence.
func (r Result) Report(oldPath, newPath Path) Report {
	return Report{
		OldPath: oldPath,
		NewPath: newPath,
		Rows:    r.Rows(),
		Summary: r.Summary(),
	}
}
