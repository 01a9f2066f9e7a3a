package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/linemap/internal/domain"
	m "github.com/mouse-blink/linemap/internal/model"
)

func TestBatchCmd_Manifest(t *testing.T) {
	mockWorkflow, _ := useMockWorkflow(t)

	cmd, _ := testRootCmd(newBatchCmd())

	mockWorkflow.EXPECT().Batch(mock.Anything, domain.BatchArgs{
		Manifest:        m.Path("pairs.yaml"),
		Threads:         4,
		ShardIndex:      0,
		TotalShardCount: 1,
	}).Return(nil)

	cmd.SetArgs([]string{"batch", "pairs.yaml", "--parallel", "4"})
	require.NoError(t, cmd.Execute())
}

func TestBatchCmd_WithSharding(t *testing.T) {
	mockWorkflow, _ := useMockWorkflow(t)

	cmd, _ := testRootCmd(newBatchCmd())

	mockWorkflow.On("Batch", mock.Anything, mock.MatchedBy(func(args domain.BatchArgs) bool {
		return args.ShardIndex == 1 && args.TotalShardCount == 3 && args.Threads == 1
	})).Return(nil)

	cmd.SetArgs([]string{"batch", "pairs.yaml", "--shard", "1/3"})
	require.NoError(t, cmd.Execute())
}

func TestBatchCmd_Roots(t *testing.T) {
	mockWorkflow, _ := useMockWorkflow(t)

	cmd, _ := testRootCmd(newBatchCmd())

	mockWorkflow.On("Batch", mock.Anything, mock.MatchedBy(func(args domain.BatchArgs) bool {
		return args.Manifest == "" && args.OldRoot == "v1" && args.NewRoot == "v2"
	})).Return(nil)

	cmd.SetArgs([]string{"batch", "--old-root", "v1", "--new-root", "v2"})
	require.NoError(t, cmd.Execute())
}

func TestBatchCmd_RejectsExtraArgs(t *testing.T) {
	useMockWorkflow(t)

	cmd, _ := testRootCmd(newBatchCmd())

	cmd.SetArgs([]string{"batch", "a.yaml", "b.yaml"})
	require.Error(t, cmd.Execute())
}
