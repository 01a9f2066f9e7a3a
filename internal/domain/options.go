package domain

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidOptions is returned by Options.Validate.
var ErrInvalidOptions = errors.New("invalid matching options")

// Default matching parameters.
const (
	DefaultThreshold     = 0.65
	DefaultContentWeight = 0.7
	DefaultContextWeight = 0.3
	DefaultContextWindow = 4
	DefaultSplitGap2     = 3
	DefaultSplitGap3     = 5
)

// Options holds the tunable parameters of the matching pipeline.
type Options struct {
	// Threshold is the minimum combined score for a fuzzy match and the
	// exclusive lower bound for a split match.
	Threshold     float64
	ContentWeight float64
	ContextWeight float64
	// ContextWindow is the number of lines looked at on each side of a line
	// when building its context vector.
	ContextWindow int
	// SplitGap2 and SplitGap3 cap the index span of 2- and 3-line split windows.
	SplitGap2 int
	SplitGap3 int
}

// Option is a functional option for NewDiffer.
type Option func(*Options)

// DefaultOptions returns the standard parameters.
func DefaultOptions() Options {
	return Options{
		Threshold:     DefaultThreshold,
		ContentWeight: DefaultContentWeight,
		ContextWeight: DefaultContextWeight,
		ContextWindow: DefaultContextWindow,
		SplitGap2:     DefaultSplitGap2,
		SplitGap3:     DefaultSplitGap3,
	}
}

// WithThreshold sets the match threshold.
func WithThreshold(threshold float64) Option {
	return func(o *Options) {
		o.Threshold = threshold
	}
}

// WithWeights sets the content and context weights.
func WithWeights(content, context float64) Option {
	return func(o *Options) {
		o.ContentWeight = content
		o.ContextWeight = context
	}
}

// WithContextWindow sets the context window radius.
func WithContextWindow(window int) Option {
	return func(o *Options) {
		o.ContextWindow = window
	}
}

// WithSplitGaps sets the index span caps of split windows.
func WithSplitGaps(gap2, gap3 int) Option {
	return func(o *Options) {
		o.SplitGap2 = gap2
		o.SplitGap3 = gap3
	}
}

// WithOptions replaces all parameters at once.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		*o = opts
	}
}

// Validate checks that the parameters keep every score inside [0,1].
func (o Options) Validate() error {
	if o.Threshold < 0 || o.Threshold > 1 {
		return fmt.Errorf("%w: threshold %v outside [0,1]", ErrInvalidOptions, o.Threshold)
	}

	if o.ContentWeight < 0 || o.ContextWeight < 0 {
		return fmt.Errorf("%w: negative weight", ErrInvalidOptions)
	}

	if math.Abs(o.ContentWeight+o.ContextWeight-1) > 1e-9 {
		return fmt.Errorf("%w: weights %v + %v do not sum to 1", ErrInvalidOptions, o.ContentWeight, o.ContextWeight)
	}

	if o.ContextWindow < 0 {
		return fmt.Errorf("%w: negative context window", ErrInvalidOptions)
	}

	if o.SplitGap2 < 1 || o.SplitGap3 < 2 {
		return fmt.Errorf("%w: split gaps %d/%d too small", ErrInvalidOptions, o.SplitGap2, o.SplitGap3)
	}

	return nil
}
