package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRange is returned when a line range cannot be parsed.
var ErrInvalidRange = errors.New("invalid line range")

// LineRange is an inclusive range of 1-based line numbers.
type LineRange struct {
	Start int
	End   int
}

// ParseLineRange parses "N" or "A-B" into a LineRange.
func ParseLineRange(s string) (LineRange, error) {
	s = strings.TrimSpace(s)

	startStr, endStr, isRange := strings.Cut(s, "-")
	if !isRange {
		endStr = startStr
	}

	start, err := strconv.Atoi(strings.TrimSpace(startStr))
	if err != nil {
		return LineRange{}, fmt.Errorf("%w %q: %w", ErrInvalidRange, s, err)
	}

	end, err := strconv.Atoi(strings.TrimSpace(endStr))
	if err != nil {
		return LineRange{}, fmt.Errorf("%w %q: %w", ErrInvalidRange, s, err)
	}

	if start < 1 || end < start {
		return LineRange{}, fmt.Errorf("%w %q", ErrInvalidRange, s)
	}

	return LineRange{Start: start, End: end}, nil
}

// Clamp limits r to the lines of an n-line file. A range starting past the
// end comes back empty.
func (r LineRange) Clamp(n int) LineRange {
	r.End = min(r.End, n)
	return r
}

// Lines expands r into its line numbers.
func (r LineRange) Lines() []int {
	if r.End < r.Start {
		return nil
	}

	lines := make([]int, 0, r.End-r.Start+1)
	for n := r.Start; n <= r.End; n++ {
		lines = append(lines, n)
	}

	return lines
}

// String renders r as "A-B", or "N" for a single line.
func (r LineRange) String() string {
	if r.Start == r.End {
		return strconv.Itoa(r.Start)
	}

	return fmt.Sprintf("%d-%d", r.Start, r.End)
}
