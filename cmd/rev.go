package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/linemap/internal/domain"
	m "github.com/mouse-blink/linemap/internal/model"
)

var revRepoFlag string
var revOldFlag string
var revNewFlag string

// revCmd represents the rev command.
var revCmd = newRevCmd()

func newRevCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rev FILE",
		Short: "Map a file between two git revisions",
		Long: `Map the lines of FILE at one git revision onto the same file at another.
FILE is relative to the repository root. Revisions accept anything git can
resolve: branch and tag names, hashes, HEAD~N.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.CompareRevisions(domain.RevisionArgs{
				Repo:   m.Path(revRepoFlag),
				File:   m.Path(args[0]),
				OldRev: revOldFlag,
				NewRev: revNewFlag,
				Marker: markerFlag,
				Config: config,
				Save:   m.Path(saveFlag),
			})
		},
	}
	cmd.Flags().StringVar(&revRepoFlag, "repo", ".", "path inside the git repository")
	cmd.Flags().StringVar(&revOldFlag, "old", "HEAD~1", "old revision")
	cmd.Flags().StringVar(&revNewFlag, "new", "HEAD", "new revision")

	return cmd
}

func init() {
	rootCmd.AddCommand(revCmd)
}
