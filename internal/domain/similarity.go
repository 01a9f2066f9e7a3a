package domain

import (
	"math"

	m "github.com/mouse-blink/linemap/internal/model"
)

// Levenshtein computes the edit distance between two strings, counting
// insertions, deletions and substitutions of runes.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	// Keep ra the shorter slice so the rows stay small
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// ContentSimilarity returns 1 - distance/maxLen over runes. Identical strings
// score 1.0, two empty strings included.
func ContentSimilarity(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	if la == 0 && lb == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(max(la, lb))
}

// CosineSimilarity compares two sparse token-count vectors. It is 0 when
// either vector has zero norm.
func CosineSimilarity(a, b map[string]int) float64 {
	var dot, normA, normB float64

	for token, count := range a {
		normA += float64(count * count)

		if other, ok := b[token]; ok {
			dot += float64(count * other)
		}
	}

	for _, count := range b {
		normB += float64(count * count)
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))

	// Clamp rounding noise so the result stays inside [0,1].
	return math.Min(1, math.Max(0, sim))
}

// ContextVector counts the tokens of up to window non-target lines on each
// side of idx. Empty lines contribute nothing.
func ContextVector(side m.Side, idx, window int) map[string]int {
	start := max(0, idx-window)
	end := min(len(side), idx+window+1)

	vector := map[string]int{}

	for i := start; i < end; i++ {
		if i == idx || side[i].Empty {
			continue
		}

		for _, token := range side[i].Tokens {
			vector[token]++
		}
	}

	return vector
}

// Scorer computes combined content and context scores for old/new line
// pairs. Context vectors are computed once when the Scorer is built.
type Scorer struct {
	oldSide, newSide m.Side
	oldCtx, newCtx   []map[string]int
	contentWeight    float64
	contextWeight    float64
}

// NewScorer precomputes the context vectors of both sides.
func NewScorer(oldSide, newSide m.Side, opts Options) *Scorer {
	s := &Scorer{
		oldSide:       oldSide,
		newSide:       newSide,
		oldCtx:        make([]map[string]int, len(oldSide)),
		newCtx:        make([]map[string]int, len(newSide)),
		contentWeight: opts.ContentWeight,
		contextWeight: opts.ContextWeight,
	}

	for i := range oldSide {
		if !oldSide[i].Empty {
			s.oldCtx[i] = ContextVector(oldSide, i, opts.ContextWindow)
		}
	}

	for j := range newSide {
		if !newSide[j].Empty {
			s.newCtx[j] = ContextVector(newSide, j, opts.ContextWindow)
		}
	}

	return s
}

// Score returns the combined similarity of old line oldIdx and new line
// newIdx in [0,1]. Lines of different kinds never match and score 0.
func (s *Scorer) Score(oldIdx, newIdx int) float64 {
	o, n := s.oldSide[oldIdx], s.newSide[newIdx]
	if o.Kind != n.Kind {
		return 0
	}

	content := ContentSimilarity(o.Normalized, n.Normalized)
	context := CosineSimilarity(s.oldCtx[oldIdx], s.newCtx[newIdx])

	return math.Min(1, s.contentWeight*content+s.contextWeight*context)
}
