package domain

import (
	m "github.com/mouse-blink/linemap/internal/model"
)

// Differ maps the lines of an old file version onto a new one.
type Differ interface {
	Diff(oldSide, newSide m.Side) m.Result
	Options() Options
}

type differ struct {
	opts Options
}

// NewDiffer returns a Differ using DefaultOptions adjusted by opts.
func NewDiffer(opts ...Option) Differ {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &differ{opts: o}
}

func (d *differ) Options() Options {
	return d.opts
}

// Diff runs the phases in order: exact alignment, fuzzy candidate matching
// and split detection. Each phase only sees lines the previous ones left
// unmatched.
func (d *differ) Diff(oldSide, newSide m.Side) m.Result {
	st := m.NewState()
	st = AlignExact(oldSide, newSide, st)

	scorer := NewScorer(oldSide, newSide, d.opts)
	st = MatchCandidates(scorer, oldSide, newSide, st, d.opts.Threshold)
	st = DetectSplits(oldSide, newSide, st, d.opts)

	return m.Result{Old: oldSide, New: newSide, State: st}
}
