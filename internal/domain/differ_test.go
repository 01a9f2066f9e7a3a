package domain

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/linemap/internal/model"
)

func diffLines(oldLines, newLines []string) m.Result {
	oldSide, newSide := sides(oldLines, newLines)
	return NewDiffer().Diff(oldSide, newSide)
}

func TestDiffer_Scenarios(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		lines := []string{"def f(x):", "  return x+1"}

		result := diffLines(lines, lines)

		assert.Equal(t, []m.Row{
			{Old: 1, New: []int{1}, Origin: m.ProvenanceExact},
			{Old: 2, New: []int{2}, Origin: m.ProvenanceExact},
		}, result.Rows())
		assert.Empty(t, result.Deleted())
		assert.Empty(t, result.Inserted())
	})

	t.Run("cosmetic rewrite", func(t *testing.T) {
		result := diffLines(
			[]string{"# add two numbers", "def add(a,b):", "  return a+b"},
			[]string{"# adds two numbers together", "def add(a, b):", "  return a + b"},
		)

		assert.Equal(t, []m.Row{
			{Old: 1, New: []int{1}, Origin: m.ProvenanceFuzzy},
			{Old: 2, New: []int{2}, Origin: m.ProvenanceFuzzy},
			{Old: 3, New: []int{3}, Origin: m.ProvenanceFuzzy},
		}, result.Rows(), spew.Sdump(result.State))
	})

	t.Run("split", func(t *testing.T) {
		result := diffLines(
			[]string{"  result = compute(a, b, c, d, e, f)"},
			[]string{"  result = compute(", "      a, b, c, d, e, f)"},
		)

		target, ok := result.Target(0)
		require.True(t, ok)
		assert.Equal(t, "1,2", target.LineNumbers())
		assert.Equal(t, m.TargetSplit, target.Kind())
	})

	t.Run("insertion preserves order", func(t *testing.T) {
		result := diffLines([]string{"x=1", "y=2"}, []string{"x=1", "z=3", "y=2"})

		assert.Equal(t, []m.Row{
			{Old: 1, New: []int{1}, Origin: m.ProvenanceExact},
			{Old: 2, New: []int{3}, Origin: m.ProvenanceExact},
			{Old: -1, New: []int{2}},
		}, result.Rows())
		assert.Equal(t, m.Summary{Exact: 2, Inserted: 1}, result.Summary())
	})

	t.Run("deletion", func(t *testing.T) {
		result := diffLines([]string{"x=1", "gone()", "y=2"}, []string{"x=1", "y=2"})

		assert.Equal(t, []int{1}, result.Deleted())
		assert.Equal(t, m.Summary{Exact: 2, Deleted: 1}, result.Summary())
	})

	t.Run("empty files", func(t *testing.T) {
		result := diffLines(nil, nil)

		assert.Empty(t, result.Rows())
		assert.Equal(t, m.Summary{}, result.Summary())
	})

	t.Run("blank lines are never mapped", func(t *testing.T) {
		result := diffLines([]string{"", "a", "  "}, []string{"a", "", ""})

		assert.Equal(t, m.Mapping{1: m.Single(0)}, result.State.Mapping)
	})
}

func TestDiffer_Options(t *testing.T) {
	d := NewDiffer(WithThreshold(0.9), WithContextWindow(2))

	assert.InDelta(t, 0.9, d.Options().Threshold, 1e-9)
	assert.Equal(t, 2, d.Options().ContextWindow)
	assert.InDelta(t, DefaultContentWeight, d.Options().ContentWeight, 1e-9)

	t.Run("higher threshold rejects a small edit", func(t *testing.T) {
		oldSide, newSide := sides(
			[]string{"alpha()", "beta(1)", "gamma()"},
			[]string{"alpha()", "beta(2)", "gamma()"},
		)

		result := NewDiffer(WithThreshold(0.95)).Diff(oldSide, newSide)

		assert.Equal(t, m.Mapping{0: m.Single(0), 2: m.Single(2)}, result.State.Mapping)
	})
}

var vocabulary = []string{
	"x = compute(a, b)", "return x", "# helper", "if err != nil {", "}",
	"for i := range items {", "total += i", "log.Println(total)", "",
	"value := lookup(key)", "# done", "y = x * 2", "call(a, b, c, d)",
}

func randomFile(r *rand.Rand, n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = vocabulary[r.IntN(len(vocabulary))]
	}

	return lines
}

// mutate applies random edits: deletions, insertions, small rewrites and splits.
func mutate(r *rand.Rand, lines []string) []string {
	var out []string

	for _, line := range lines {
		switch r.IntN(8) {
		case 0:
			continue
		case 1:
			out = append(out, vocabulary[r.IntN(len(vocabulary))], line)
		case 2:
			out = append(out, strings.ReplaceAll(line, " ", "  ")+"!")
		case 3:
			if len(line) > 6 {
				cut := len(line) / 2
				out = append(out, line[:cut], "    "+line[cut:])

				continue
			}

			out = append(out, line)
		default:
			out = append(out, line)
		}
	}

	return out
}

func checkInvariants(t *testing.T, result m.Result, opts Options) {
	t.Helper()

	st := result.State
	dump := spew.Sdump(st)
	seenNew := map[int]int{}

	for old, target := range st.Mapping {
		require.True(t, result.Old.Valid(old), "key %d is not a non-empty old line\n%s", old, dump)
		require.True(t, st.IsOldMatched(old), "key %d missing from matched old\n%s", old, dump)

		indices := target.Indices()
		if target.IsSplit() {
			require.GreaterOrEqual(t, len(indices), 2, dump)
			require.LessOrEqual(t, len(indices), 3, dump)
		} else {
			require.Len(t, indices, 1, dump)
		}

		for k, idx := range indices {
			require.True(t, result.New.Valid(idx), "target %d is not a non-empty new line\n%s", idx, dump)
			require.True(t, st.IsNewMatched(idx), dump)

			if k > 0 {
				require.Greater(t, idx, indices[k-1], "split targets must ascend\n%s", dump)
			}

			prev, dup := seenNew[idx]
			require.False(t, dup, "new line %d mapped from %d and %d\n%s", idx, prev, old, dump)
			seenNew[idx] = old
		}

		switch st.Origin[old] {
		case m.ProvenanceFuzzy:
			require.GreaterOrEqual(t, st.Scores[old], opts.Threshold, dump)
		case m.ProvenanceSplit:
			require.Greater(t, st.Scores[old], opts.Threshold, dump)
		case m.ProvenanceExact:
			require.Equal(t, result.Old[old].Normalized, result.New[indices[0]].Normalized, dump)
		default:
			t.Fatalf("old line %d has no origin\n%s", old, dump)
		}
	}

	require.Len(t, st.MatchedOld, len(st.Mapping), dump)
	require.Len(t, st.MatchedNew, len(seenNew), dump)
}

func TestDiffer_Properties(t *testing.T) {
	opts := DefaultOptions()

	for seed := range uint64(40) {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			r := rand.New(rand.NewPCG(seed, seed*7+1))

			oldLines := randomFile(r, 5+r.IntN(30))
			newLines := mutate(r, oldLines)

			oldSide, newSide := sides(oldLines, newLines)
			result := NewDiffer().Diff(oldSide, newSide)

			checkInvariants(t, result, opts)

			again := NewDiffer().Diff(oldSide, newSide)
			assert.Equal(t, result.Rows(), again.Rows(), "diff must be deterministic")

			identity := NewDiffer().Diff(oldSide, oldSide)
			for _, idx := range oldSide.NonEmpty() {
				target, ok := identity.Target(idx)
				require.True(t, ok, "identity left line %d unmatched", idx)
				assert.Equal(t, m.Single(idx), target)
				assert.Equal(t, m.ProvenanceExact, identity.State.Origin[idx])
			}
		})
	}
}

func TestDiffer_ExactMatchesSurviveLaterPhases(t *testing.T) {
	oldSide, newSide := sides(
		[]string{"alpha()", "beta(1)", "gamma()"},
		[]string{"alpha()", "beta(2)", "gamma()"},
	)

	exact := AlignExact(oldSide, newSide, m.NewState())
	result := NewDiffer().Diff(oldSide, newSide)

	for old, target := range exact.Mapping {
		assert.Equal(t, target, result.State.Mapping[old])
		assert.Equal(t, m.ProvenanceExact, result.State.Origin[old])
	}

	assert.Equal(t, m.ProvenanceFuzzy, result.State.Origin[1])
}
