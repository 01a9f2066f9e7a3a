package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/linemap/internal/domain"
	m "github.com/mouse-blink/linemap/internal/model"
)

var batchParallelFlag int
var batchShardFlag string
var batchOldRootFlag string
var batchNewRootFlag string

// batchCmd represents the batch command.
var batchCmd = newBatchCmd()

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [MANIFEST]",
		Short: "Map many file pairs at once",
		Long: `Map every pair listed in a YAML manifest:

  pairs:
    - old: v1/main.go
      new: v2/main.go
    - old: v1/setup.sql
      new: v2/setup.sql
      marker: "--"

Without a manifest, --old-root and --new-root pair the files both trees have
in common. Pairs are compared in parallel and reported in order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shardIndex, totalShards := parseShardFlag(batchShardFlag)

			var manifest m.Path
			if len(args) == 1 {
				manifest = m.Path(args[0])
			}

			return workflow.Batch(cmd.Context(), domain.BatchArgs{
				Manifest:        manifest,
				OldRoot:         m.Path(batchOldRootFlag),
				NewRoot:         m.Path(batchNewRootFlag),
				Config:          config,
				Threads:         batchParallelFlag,
				ShardIndex:      shardIndex,
				TotalShardCount: totalShards,
			})
		},
	}
	cmd.Flags().IntVarP(&batchParallelFlag, "parallel", "p", 1, "number of pairs compared in parallel")
	cmd.Flags().StringVarP(&batchShardFlag, "shard", "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")
	cmd.Flags().StringVar(&batchOldRootFlag, "old-root", "", "directory holding the old versions")
	cmd.Flags().StringVar(&batchNewRootFlag, "new-root", "", "directory holding the new versions")

	return cmd
}

func init() {
	rootCmd.AddCommand(batchCmd)
}
