package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/linemap/internal/domain"
	m "github.com/mouse-blink/linemap/internal/model"
)

var traceLinesFlag string
var traceForwardFlag bool

// traceCmd represents the trace command.
var traceCmd = newTraceCmd()

func newTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace OLD NEW",
		Short: "Find where a range of lines came from",
		Long: `Map OLD onto NEW and report which old lines produced the given new lines.
With --forward the range is read as old line numbers and projected onto NEW.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			lines, err := m.ParseLineRange(traceLinesFlag)
			if err != nil {
				return err
			}

			return workflow.Trace(domain.TraceArgs{
				CompareArgs: compareArgs(args[0], args[1]),
				Lines:       lines,
				Forward:     traceForwardFlag,
			})
		},
	}
	cmd.Flags().StringVarP(&traceLinesFlag, "lines", "l", "", "line or range to trace, e.g. 12 or 10-20")
	cmd.Flags().BoolVar(&traceForwardFlag, "forward", false, "trace old lines forward instead of new lines back")
	_ = cmd.MarkFlagRequired("lines")

	return cmd
}

func init() {
	rootCmd.AddCommand(traceCmd)
}
