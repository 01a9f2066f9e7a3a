package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"héllo", "hello", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b), "Levenshtein(%q, %q)", tt.a, tt.b)
		assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a), "Levenshtein(%q, %q)", tt.b, tt.a)
	}
}

func TestContentSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, ContentSimilarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, ContentSimilarity("abc", "abc"), 1e-9)
	assert.InDelta(t, 0.0, ContentSimilarity("abc", ""), 1e-9)
	assert.InDelta(t, 1.0-3.0/7.0, ContentSimilarity("kitten", "sitting"), 1e-9)
}

func TestCosineSimilarity(t *testing.T) {
	t.Run("identical vectors", func(t *testing.T) {
		v := map[string]int{"a": 1, "b": 2}
		assert.InDelta(t, 1.0, CosineSimilarity(v, v), 1e-9)
	})

	t.Run("disjoint vectors", func(t *testing.T) {
		assert.InDelta(t, 0.0, CosineSimilarity(map[string]int{"a": 1}, map[string]int{"b": 1}), 1e-9)
	})

	t.Run("zero norm", func(t *testing.T) {
		assert.Zero(t, CosineSimilarity(map[string]int{}, map[string]int{"a": 1}))
		assert.Zero(t, CosineSimilarity(nil, nil))
	})

	t.Run("partial overlap", func(t *testing.T) {
		got := CosineSimilarity(map[string]int{"a": 1}, map[string]int{"a": 1, "b": 1})
		assert.InDelta(t, 1/math.Sqrt2, got, 1e-9)
	})
}

func TestContextVector(t *testing.T) {
	side := NewNormalizer("#").Side([]string{"a b", "", "c", "target", "d", "e f"})

	assert.Equal(t, map[string]int{"c": 1, "d": 1, "e": 1, "f": 1}, ContextVector(side, 3, 2))
	assert.Equal(t, map[string]int{"c": 1, "d": 1}, ContextVector(side, 3, 1))
	assert.Equal(t, map[string]int{"c": 1}, ContextVector(side, 0, 2))
	assert.Empty(t, ContextVector(side, 3, 0))
}

func TestScorer_Score(t *testing.T) {
	normalizer := NewNormalizer("#")

	t.Run("identical sides score one", func(t *testing.T) {
		side := normalizer.Side([]string{"def f(x):", "  return x+1"})
		scorer := NewScorer(side, side, DefaultOptions())

		assert.InDelta(t, 1.0, scorer.Score(0, 0), 1e-9)
		assert.InDelta(t, 1.0, scorer.Score(1, 1), 1e-9)
	})

	t.Run("different kinds never match", func(t *testing.T) {
		oldSide := normalizer.Side([]string{"# value"})
		newSide := normalizer.Side([]string{"value"})

		assert.Zero(t, NewScorer(oldSide, newSide, DefaultOptions()).Score(0, 0))
	})

	t.Run("cosmetic rewrite stays above threshold", func(t *testing.T) {
		oldSide := normalizer.Side([]string{"# add two numbers", "def add(a,b):", "  return a+b"})
		newSide := normalizer.Side([]string{"# adds two numbers together", "def add(a, b):", "  return a + b"})
		scorer := NewScorer(oldSide, newSide, DefaultOptions())

		for i := range oldSide {
			assert.GreaterOrEqual(t, scorer.Score(i, i), DefaultThreshold, "line %d", i)
		}
	})

	t.Run("weights are applied", func(t *testing.T) {
		oldSide := normalizer.Side([]string{"alpha"})
		newSide := normalizer.Side([]string{"alphx"})

		opts := DefaultOptions()
		opts.ContentWeight, opts.ContextWeight = 1, 0

		assert.InDelta(t, 0.8, NewScorer(oldSide, newSide, opts).Score(0, 0), 1e-9)
	})
}
