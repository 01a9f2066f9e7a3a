package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// TargetKind tags the variant held by a Target.
type TargetKind int

// Available TargetKind values.
const (
	TargetSingle TargetKind = iota
	TargetSplit
)

// String returns the lowercase name of the kind.
func (k TargetKind) String() string {
	switch k {
	case TargetSingle:
		return "single"
	case TargetSplit:
		return "split"
	default:
		return fmt.Sprintf("TargetKind(%d)", int(k))
	}
}

// Target is the new-side destination of one old line: either a single line or
// an ascending run of 2-3 lines the old line was split into.
type Target struct {
	kind    TargetKind
	indices []int
}

// Single returns a Target pointing at one new line.
func Single(newIndex int) Target {
	return Target{kind: TargetSingle, indices: []int{newIndex}}
}

// Split returns a Target spanning several new lines. The indices are stored
// sorted ascending.
func Split(newIndices ...int) Target {
	indices := append([]int(nil), newIndices...)
	sort.Ints(indices)

	return Target{kind: TargetSplit, indices: indices}
}

// Kind returns the variant tag.
func (t Target) Kind() TargetKind {
	return t.kind
}

// IsSplit reports whether t is a Split target.
func (t Target) IsSplit() bool {
	return t.kind == TargetSplit
}

// First returns the lowest new index of t.
func (t Target) First() int {
	return t.indices[0]
}

// Indices returns a copy of the new indices covered by t.
func (t Target) Indices() []int {
	return append([]int(nil), t.indices...)
}

// Contains reports whether newIndex is covered by t.
func (t Target) Contains(newIndex int) bool {
	for _, idx := range t.indices {
		if idx == newIndex {
			return true
		}
	}

	return false
}

// LineNumbers renders the 1-based new line numbers joined by commas.
func (t Target) LineNumbers() string {
	parts := make([]string, 0, len(t.indices))
	for _, idx := range t.indices {
		parts = append(parts, strconv.Itoa(idx+1))
	}

	return strings.Join(parts, ",")
}
