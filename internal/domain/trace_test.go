package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/linemap/internal/model"
)

func traceResult() m.Result {
	st := m.NewState()
	st.Commit(0, m.Single(0), m.ProvenanceExact)
	st.Commit(1, m.Split(1, 2), m.ProvenanceSplit)

	oldSide, newSide := sides([]string{"a", "b c", "d"}, []string{"a", "b", "c", "e"})

	return m.Result{Old: oldSide, New: newSide, State: st}
}

func TestProjectBack(t *testing.T) {
	result := traceResult()

	assert.Equal(t, []int{2}, ProjectBack(result, []int{2, 3}))
	assert.Equal(t, []int{1, 2}, ProjectBack(result, []int{1, 2}))
	assert.Empty(t, ProjectBack(result, []int{4}))
	assert.Empty(t, ProjectBack(result, nil))
}

func TestProjectForward(t *testing.T) {
	result := traceResult()

	assert.Equal(t, []int{2, 3}, ProjectForward(result, []int{2}))
	assert.Equal(t, []int{1, 2, 3}, ProjectForward(result, []int{2, 1, 2}))
	assert.Empty(t, ProjectForward(result, []int{3}))
	assert.Empty(t, ProjectForward(result, []int{99}))
}
