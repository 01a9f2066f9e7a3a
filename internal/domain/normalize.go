package domain

import (
	"path/filepath"
	"regexp"
	"strings"

	m "github.com/mouse-blink/linemap/internal/model"
)

// DefaultCommentMarker is used when no marker is configured or inferred.
const DefaultCommentMarker = "#"

var (
	whitespaceRun = regexp.MustCompile(`[\s\p{Zs}]+`)
	wordToken     = regexp.MustCompile(`[\p{L}\p{N}_]+`)
)

// slashMarkerExts lists extensions of C-family sources that use "//" comments.
var slashMarkerExts = map[string]bool{
	".c": true, ".cc": true, ".cpp": true, ".cs": true, ".go": true, ".h": true,
	".hpp": true, ".java": true, ".js": true, ".jsx": true, ".kt": true,
	".rs": true, ".scala": true, ".swift": true, ".ts": true, ".tsx": true,
}

// dashMarkerExts lists extensions of sources that use "--" comments.
var dashMarkerExts = map[string]bool{
	".sql": true, ".lua": true, ".hs": true,
}

// MarkerForPath infers the line comment marker from a file extension.
func MarkerForPath(path m.Path) string {
	ext := strings.ToLower(filepath.Ext(string(path)))

	switch {
	case slashMarkerExts[ext]:
		return "//"
	case dashMarkerExts[ext]:
		return "--"
	default:
		return DefaultCommentMarker
	}
}

// Normalizer turns raw lines into line records. Marker is the line comment
// prefix; comment-only suffixes of code lines are dropped for matching.
type Normalizer struct {
	Marker string
}

// NewNormalizer returns a Normalizer for marker, falling back to
// DefaultCommentMarker when marker is empty.
func NewNormalizer(marker string) Normalizer {
	if marker == "" {
		marker = DefaultCommentMarker
	}

	return Normalizer{Marker: marker}
}

// Side normalizes every raw line, keeping blank lines in place.
func (n Normalizer) Side(raws []string) m.Side {
	side := make(m.Side, len(raws))
	for i, raw := range raws {
		side[i] = n.Line(i, raw)
	}

	return side
}

// Line builds the record for one physical line.
func (n Normalizer) Line(index int, raw string) m.Line {
	stripped := strings.TrimSpace(raw)
	line := m.Line{
		Index: index,
		Raw:   raw,
		Kind:  m.KindCode,
		Empty: stripped == "",
	}

	if line.Empty {
		return line
	}

	if strings.HasPrefix(stripped, n.Marker) {
		line.Kind = m.KindComment
	}

	line.Normalized = n.normalize(stripped)
	line.Tokens = wordToken.FindAllString(line.Normalized, -1)

	return line
}

func (n Normalizer) normalize(stripped string) string {
	text := stripped
	if !strings.HasPrefix(stripped, n.Marker) {
		code, _, _ := strings.Cut(stripped, n.Marker)
		text = strings.TrimSpace(code)
	}

	return whitespaceRun.ReplaceAllString(strings.ToLower(text), " ")
}
