// Package cmd provides the root command and CLI setup for linemap.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mouse-blink/linemap/internal/adapter"
	"github.com/mouse-blink/linemap/internal/controller"
	"github.com/mouse-blink/linemap/internal/domain"
	m "github.com/mouse-blink/linemap/internal/model"
	"github.com/spf13/cobra"
)

var fsAdapter adapter.SourceFSAdapter
var revAdapter adapter.RevisionAdapter
var configStore adapter.ConfigStore
var reportStore adapter.ReportStore

// workflow and config are rebuilt for every command run by setup.
var workflow domain.Workflow
var config m.Config

// newWorkflow builds the workflow of one run once the output format is known.
var newWorkflow = func(cmd *cobra.Command, format m.Format) domain.Workflow {
	return domain.NewWorkflow(
		fsAdapter,
		revAdapter,
		configStore,
		reportStore,
		controller.NewUI(cmd, controller.IsTTY(os.Stdout), format),
		newLogger(cmd.ErrOrStderr()),
	)
}

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	revAdapter = adapter.NewLocalRevisionAdapter()
	configStore = adapter.NewConfigStore()
	reportStore = adapter.NewReportStore()
}

var formatFlag string
var markerFlag string
var configFlag string
var saveFlag string
var verboseFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linemap OLD NEW",
		Short: "Map the lines of an old file version onto a new one",
		Long: `Linemap tracks where every line of an old version of a file ended up in
the new version. Unchanged lines are aligned first, edited lines are then
matched by content and surrounding context, and lines broken over several
new lines are detected last.

Each non-empty old line is reported with its new line number(s), or -1 when
it was deleted. New lines no old line maps to are reported as -1 -> N.`,
		Args:              cobra.ExactArgs(2),
		PersistentPreRunE: setup,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Compare(compareArgs(args[0], args[1]))
		},
	}
	cmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "", "output format: table, plain, json or yaml (default table)")
	cmd.PersistentFlags().StringVarP(&markerFlag, "marker", "m", "", "line comment marker (inferred from the file extension by default)")
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "YAML file with matching parameters")
	cmd.PersistentFlags().StringVarP(&saveFlag, "save", "o", "", "also write the report to this file (.json or .yaml)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log matching statistics to stderr")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := configStore.LoadConfig(m.Path(configFlag))
	if err != nil {
		return err
	}

	format, err := resolveFormat(formatFlag, cfg)
	if err != nil {
		return err
	}

	config = cfg
	workflow = newWorkflow(cmd, format)

	return nil
}

// resolveFormat prefers the flag, then the config file, then table.
func resolveFormat(flag string, cfg m.Config) (m.Format, error) {
	format := m.Format(flag)
	if format == "" {
		format = cfg.Format
	}

	if format == "" {
		return m.FormatTable, nil
	}

	if !format.Valid() {
		return "", fmt.Errorf("%w: %q", controller.ErrUnknownFormat, format)
	}

	return format, nil
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verboseFlag {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func compareArgs(oldPath, newPath string) domain.CompareArgs {
	return domain.CompareArgs{
		Old:    m.Path(oldPath),
		New:    m.Path(newPath),
		Marker: markerFlag,
		Config: config,
		Save:   m.Path(saveFlag),
	}
}

func parseShardFlag(shard string) (int, int) {
	if shard == "" {
		return 0, 1
	}

	var index, total int

	_, err := fmt.Sscanf(shard, "%d/%d", &index, &total)
	if err != nil || total <= 0 || index < 0 || index >= total {
		return 0, 1
	}

	return index, total
}
