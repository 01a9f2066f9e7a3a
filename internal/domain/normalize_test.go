package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/linemap/internal/model"
)

func TestNormalizer_Line(t *testing.T) {
	n := NewNormalizer("#")

	t.Run("code line drops trailing comment", func(t *testing.T) {
		line := n.Line(3, "  Return X+1  # note")

		assert.Equal(t, 3, line.Index)
		assert.Equal(t, "  Return X+1  # note", line.Raw)
		assert.Equal(t, "return x+1", line.Normalized)
		assert.Equal(t, []string{"return", "x", "1"}, line.Tokens)
		assert.Equal(t, m.KindCode, line.Kind)
		assert.False(t, line.Empty)
	})

	t.Run("comment line keeps its whole text", func(t *testing.T) {
		line := n.Line(0, "   # Add   Two")

		assert.Equal(t, m.KindComment, line.Kind)
		assert.Equal(t, "# add two", line.Normalized)
		assert.Equal(t, []string{"add", "two"}, line.Tokens)
	})

	t.Run("blank line is empty", func(t *testing.T) {
		line := n.Line(1, " \t ")

		assert.True(t, line.Empty)
		assert.Empty(t, line.Normalized)
		assert.Empty(t, line.Tokens)
	})

	t.Run("whitespace runs collapse", func(t *testing.T) {
		line := n.Line(0, "a\tb   c d")

		assert.Equal(t, "a b c d", line.Normalized)
	})

	t.Run("slash marker strips trailing comment", func(t *testing.T) {
		line := NewNormalizer("//").Line(0, "x := 1 // set x")

		assert.Equal(t, "x := 1", line.Normalized)
		assert.Equal(t, m.KindCode, line.Kind)
	})
}

func TestNormalizer_Side(t *testing.T) {
	side := NewNormalizer("").Side([]string{"a = 1", "", "# c"})

	require.Len(t, side, 3)
	assert.Equal(t, []int{0, 2}, side.NonEmpty())
	assert.Equal(t, 1, side[1].Index)
	assert.Equal(t, m.KindComment, side[2].Kind)
}

func TestNewNormalizer_DefaultMarker(t *testing.T) {
	assert.Equal(t, DefaultCommentMarker, NewNormalizer("").Marker)
	assert.Equal(t, "--", NewNormalizer("--").Marker)
}

func TestMarkerForPath(t *testing.T) {
	tests := []struct {
		path m.Path
		want string
	}{
		{"main.go", "//"},
		{"src/App.TSX", "//"},
		{"schema.SQL", "--"},
		{"init.lua", "--"},
		{"script.py", "#"},
		{"Makefile", "#"},
	}

	for _, tt := range tests {
		t.Run(string(tt.path), func(t *testing.T) {
			assert.Equal(t, tt.want, MarkerForPath(tt.path))
		})
	}
}
