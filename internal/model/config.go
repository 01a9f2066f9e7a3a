package model

// Config is the optional YAML configuration of a comparison. Nil fields were
// not given and take their defaults; a zero value is a real setting.
type Config struct {
	Threshold     *float64 `yaml:"threshold,omitempty"`
	ContentWeight *float64 `yaml:"content_weight,omitempty"`
	ContextWeight *float64 `yaml:"context_weight,omitempty"`
	ContextWindow *int     `yaml:"context_window,omitempty"`
	SplitGap2     *int     `yaml:"split_gap2,omitempty"`
	SplitGap3     *int     `yaml:"split_gap3,omitempty"`
	CommentMarker string   `yaml:"comment_marker,omitempty"`
	Format        Format   `yaml:"format,omitempty"`
}

// Ptr returns a pointer to v, for filling optional Config fields.
func Ptr[T any](v T) *T {
	return &v
}

// Pair names the two versions of one file.
type Pair struct {
	Old    Path   `yaml:"old"`
	New    Path   `yaml:"new"`
	Marker string `yaml:"marker,omitempty"`
}

// Manifest lists the pairs of a batch run.
type Manifest struct {
	Pairs []Pair `yaml:"pairs"`
}
