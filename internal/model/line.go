// Package model defines the data structures shared by the line mapping pipeline.
package model

// LineKind classifies a line for matching purposes.
type LineKind string

const (
	// KindCode is any line that does not start with the comment marker.
	KindCode LineKind = "code"
	// KindComment is a line whose stripped text starts with the comment marker.
	KindComment LineKind = "comment"
)

// Line is a single physical line of one file version.
type Line struct {
	Index      int // 0-based position in its own file
	Raw        string
	Normalized string
	Tokens     []string // word tokens of Normalized, used for context vectors
	Kind       LineKind
	Empty      bool
}

// Side is the ordered sequence of lines of one file version. Blank lines are
// kept so indices stay aligned with physical line numbers.
type Side []Line

// Len returns the physical line count.
func (s Side) Len() int {
	return len(s)
}

// Valid reports whether idx addresses a non-empty line of s.
func (s Side) Valid(idx int) bool {
	return idx >= 0 && idx < len(s) && !s[idx].Empty
}

// NonEmpty returns the ascending indices of all non-empty lines.
func (s Side) NonEmpty() []int {
	indices := make([]int, 0, len(s))

	for i := range s {
		if !s[i].Empty {
			indices = append(indices, i)
		}
	}

	return indices
}
