package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/linemap/internal/domain"
	m "github.com/mouse-blink/linemap/internal/model"
)

func TestTraceCmd_Range(t *testing.T) {
	mockWorkflow, _ := useMockWorkflow(t)

	cmd, _ := testRootCmd(newTraceCmd())

	mockWorkflow.EXPECT().Trace(domain.TraceArgs{
		CompareArgs: domain.CompareArgs{Old: m.Path("a.go"), New: m.Path("b.go")},
		Lines:       m.LineRange{Start: 10, End: 12},
	}).Return(nil)

	cmd.SetArgs([]string{"trace", "a.go", "b.go", "--lines", "10-12"})
	require.NoError(t, cmd.Execute())
}

func TestTraceCmd_Forward(t *testing.T) {
	mockWorkflow, _ := useMockWorkflow(t)

	cmd, _ := testRootCmd(newTraceCmd())

	mockWorkflow.EXPECT().Trace(domain.TraceArgs{
		CompareArgs: domain.CompareArgs{Old: m.Path("a.go"), New: m.Path("b.go")},
		Lines:       m.LineRange{Start: 4, End: 4},
		Forward:     true,
	}).Return(nil)

	cmd.SetArgs([]string{"trace", "a.go", "b.go", "-l", "4", "--forward"})
	require.NoError(t, cmd.Execute())
}

func TestTraceCmd_InvalidRange(t *testing.T) {
	useMockWorkflow(t)

	cmd, _ := testRootCmd(newTraceCmd())

	cmd.SetArgs([]string{"trace", "a.go", "b.go", "--lines", "9-3"})
	err := cmd.Execute()

	assert.ErrorIs(t, err, m.ErrInvalidRange)
}

func TestTraceCmd_LinesRequired(t *testing.T) {
	useMockWorkflow(t)

	cmd, _ := testRootCmd(newTraceCmd())

	cmd.SetArgs([]string{"trace", "a.go", "b.go"})
	require.Error(t, cmd.Execute())
}
