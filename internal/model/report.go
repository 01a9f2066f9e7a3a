package model

import (
	"strconv"
	"strings"
)

// Row is one line of a rendered mapping. Old is -1 for an insertion; an empty
// New means the old line was deleted.
type Row struct {
	Old    int        `json:"old" yaml:"old"`
	New    []int      `json:"new,omitempty" yaml:"new,omitempty,flow"`
	Origin Provenance `json:"origin,omitempty" yaml:"origin,omitempty"`
}

// Inserted reports whether the row describes an inserted new line.
func (r Row) Inserted() bool {
	return r.Old == -1
}

// Deleted reports whether the row describes a deleted old line.
func (r Row) Deleted() bool {
	return r.Old != -1 && len(r.New) == 0
}

// OldString renders the old column.
func (r Row) OldString() string {
	return strconv.Itoa(r.Old)
}

// NewString renders the new column: comma-joined numbers or -1.
func (r Row) NewString() string {
	if len(r.New) == 0 {
		return "-1"
	}

	parts := make([]string, 0, len(r.New))
	for _, n := range r.New {
		parts = append(parts, strconv.Itoa(n))
	}

	return strings.Join(parts, ",")
}

// Summary counts mapping outcomes.
type Summary struct {
	Exact    int `json:"exact" yaml:"exact"`
	Fuzzy    int `json:"fuzzy" yaml:"fuzzy"`
	Split    int `json:"split" yaml:"split"`
	Deleted  int `json:"deleted" yaml:"deleted"`
	Inserted int `json:"inserted" yaml:"inserted"`
}

// Report is the rendered form of one comparison.
type Report struct {
	OldPath Path    `json:"old_path" yaml:"old_path"`
	NewPath Path    `json:"new_path" yaml:"new_path"`
	Rows    []Row   `json:"rows" yaml:"rows"`
	Summary Summary `json:"summary" yaml:"summary"`
}

// Trace is the projection of a line set from one side onto the other.
type Trace struct {
	Report  Report `json:"report" yaml:"report"`
	Forward bool   `json:"forward" yaml:"forward"`
	From    []int  `json:"from" yaml:"from,flow"`
	To      []int  `json:"to" yaml:"to,flow"`
}
