package domain

import (
	m "github.com/mouse-blink/linemap/internal/model"
)

// OptionsFromConfig fills the fields cfg leaves unset with defaults and
// validates the result. Giving one weight without the other leaves the other
// at zero, so the pair must be given together.
func OptionsFromConfig(cfg m.Config) (Options, error) {
	opts := DefaultOptions()

	setIfGiven(&opts.Threshold, cfg.Threshold)

	if cfg.ContentWeight != nil || cfg.ContextWeight != nil {
		opts.ContentWeight, opts.ContextWeight = 0, 0
		setIfGiven(&opts.ContentWeight, cfg.ContentWeight)
		setIfGiven(&opts.ContextWeight, cfg.ContextWeight)
	}

	setIfGiven(&opts.ContextWindow, cfg.ContextWindow)
	setIfGiven(&opts.SplitGap2, cfg.SplitGap2)
	setIfGiven(&opts.SplitGap3, cfg.SplitGap3)

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}

	return opts, nil
}

func setIfGiven[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// ResolveMarker picks the comment marker for path: an explicit marker wins,
// then the configured one, then the one inferred from the extension.
func ResolveMarker(explicit string, cfg m.Config, path m.Path) string {
	if explicit != "" {
		return explicit
	}

	if cfg.CommentMarker != "" {
		return cfg.CommentMarker
	}

	return MarkerForPath(path)
}
