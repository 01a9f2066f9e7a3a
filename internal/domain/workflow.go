package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/linemap/internal/adapter"
	"github.com/mouse-blink/linemap/internal/controller"
	m "github.com/mouse-blink/linemap/internal/model"
)

// ErrNoPairs is returned when a batch run has nothing to compare.
var ErrNoPairs = errors.New("no file pairs to compare")

// CompareArgs describes one comparison of two files on disk.
type CompareArgs struct {
	Old    m.Path
	New    m.Path
	Marker string
	Config m.Config
	Save   m.Path
}

// RevisionArgs describes one comparison of a file at two git revisions.
type RevisionArgs struct {
	Repo   m.Path
	File   m.Path
	OldRev string
	NewRev string
	Marker string
	Config m.Config
	Save   m.Path
}

// BatchArgs describes many independent comparisons, taken from a manifest
// or from the files two directory trees have in common.
type BatchArgs struct {
	Manifest        m.Path
	OldRoot         m.Path
	NewRoot         m.Path
	Config          m.Config
	Threads         int
	ShardIndex      int
	TotalShardCount int
}

// TraceArgs projects a line range of one version onto the other.
type TraceArgs struct {
	CompareArgs
	Lines   m.LineRange
	Forward bool
}

// ViewArgs names a saved report to display.
type ViewArgs struct {
	Report m.Path
}

// Workflow defines the operations exposed by the CLI.
type Workflow interface {
	Compare(args CompareArgs) error
	CompareRevisions(args RevisionArgs) error
	Batch(ctx context.Context, args BatchArgs) error
	Trace(args TraceArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	revAdapter  adapter.RevisionAdapter
	configStore adapter.ConfigStore
	reportStore adapter.ReportStore
	ui          controller.UI
	logger      *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	revAdapter adapter.RevisionAdapter,
	configStore adapter.ConfigStore,
	reportStore adapter.ReportStore,
	ui controller.UI,
	logger *slog.Logger,
) Workflow {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &workflow{
		fsAdapter:   fsAdapter,
		revAdapter:  revAdapter,
		configStore: configStore,
		reportStore: reportStore,
		ui:          ui,
		logger:      logger,
	}
}

// Compare maps the lines of args.Old onto args.New and displays the report.
func (w *workflow) Compare(args CompareArgs) error {
	report, _, err := w.compareFiles(m.Pair{Old: args.Old, New: args.New, Marker: args.Marker}, args.Config)
	if err != nil {
		return err
	}

	return w.finish(report, args.Save)
}

// CompareRevisions maps a file at args.OldRev onto the same file at args.NewRev.
func (w *workflow) CompareRevisions(args RevisionArgs) error {
	oldLines, err := w.revAdapter.ReadLinesAt(args.Repo, args.OldRev, args.File)
	if err != nil {
		return err
	}

	newLines, err := w.revAdapter.ReadLinesAt(args.Repo, args.NewRev, args.File)
	if err != nil {
		return err
	}

	marker := ResolveMarker(args.Marker, args.Config, args.File)

	result, err := w.diff(oldLines, newLines, marker, args.Config)
	if err != nil {
		return err
	}

	report := result.Report(
		m.Path(fmt.Sprintf("%s:%s", args.OldRev, args.File)),
		m.Path(fmt.Sprintf("%s:%s", args.NewRev, args.File)),
	)

	return w.finish(report, args.Save)
}

// Batch runs every pair as an independent comparison on up to args.Threads
// workers. The first failure cancels the remaining work.
func (w *workflow) Batch(ctx context.Context, args BatchArgs) error {
	pairs, err := w.batchPairs(args)
	if err != nil {
		return err
	}

	pairs = shardPairs(pairs, args.ShardIndex, args.TotalShardCount)
	if len(pairs) == 0 {
		return ErrNoPairs
	}

	threads := max(args.Threads, 1)
	w.logger.Debug("starting batch", "pairs", len(pairs), "threads", threads)

	reports := make([]m.Report, len(pairs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, pair := range pairs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			report, _, err := w.compareFiles(pair, args.Config)
			if err != nil {
				return err
			}

			reports[i] = report

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return w.ui.DisplayBatch(reports)
}

// Trace maps a line range across the two versions. The range is clipped to
// the length of the version it is taken from.
func (w *workflow) Trace(args TraceArgs) error {
	pair := m.Pair{Old: args.Old, New: args.New, Marker: args.Marker}

	report, result, err := w.compareFiles(pair, args.Config)
	if err != nil {
		return err
	}

	if err := w.save(report, args.Save); err != nil {
		return err
	}

	trace := m.Trace{Report: report, Forward: args.Forward}
	if args.Forward {
		trace.From = args.Lines.Clamp(result.Old.Len()).Lines()
		trace.To = ProjectForward(result, trace.From)
	} else {
		trace.From = args.Lines.Clamp(result.New.Len()).Lines()
		trace.To = ProjectBack(result, trace.From)
	}

	return w.ui.DisplayTrace(trace)
}

// View displays a previously saved report.
func (w *workflow) View(args ViewArgs) error {
	report, err := w.reportStore.LoadReport(args.Report)
	if err != nil {
		return err
	}

	return w.ui.DisplayReport(report)
}

func (w *workflow) batchPairs(args BatchArgs) ([]m.Pair, error) {
	if args.Manifest != "" {
		manifest, err := w.configStore.LoadManifest(args.Manifest)
		if err != nil {
			return nil, err
		}

		return manifest.Pairs, nil
	}

	if args.OldRoot == "" || args.NewRoot == "" {
		return nil, ErrNoPairs
	}

	return w.fsAdapter.PairFiles(args.OldRoot, args.NewRoot)
}

// shardPairs keeps the pairs whose position modulo total equals index.
func shardPairs(pairs []m.Pair, index, total int) []m.Pair {
	if total <= 1 {
		return pairs
	}

	var shard []m.Pair

	for i, pair := range pairs {
		if i%total == index {
			shard = append(shard, pair)
		}
	}

	return shard
}

func (w *workflow) compareFiles(pair m.Pair, cfg m.Config) (m.Report, m.Result, error) {
	oldLines, err := w.fsAdapter.ReadLines(pair.Old)
	if err != nil {
		return m.Report{}, m.Result{}, err
	}

	newLines, err := w.fsAdapter.ReadLines(pair.New)
	if err != nil {
		return m.Report{}, m.Result{}, err
	}

	marker := ResolveMarker(pair.Marker, cfg, pair.Old)

	result, err := w.diff(oldLines, newLines, marker, cfg)
	if err != nil {
		return m.Report{}, m.Result{}, err
	}

	return result.Report(pair.Old, pair.New), result, nil
}

func (w *workflow) diff(oldLines, newLines []string, marker string, cfg m.Config) (m.Result, error) {
	opts, err := OptionsFromConfig(cfg)
	if err != nil {
		return m.Result{}, err
	}

	normalizer := NewNormalizer(marker)
	start := time.Now()

	result := NewDiffer(WithOptions(opts)).Diff(normalizer.Side(oldLines), normalizer.Side(newLines))

	s := result.Summary()
	w.logger.Debug("compared",
		"old_lines", len(oldLines),
		"new_lines", len(newLines),
		"marker", marker,
		"exact", s.Exact,
		"fuzzy", s.Fuzzy,
		"split", s.Split,
		"deleted", s.Deleted,
		"inserted", s.Inserted,
		"elapsed", time.Since(start),
	)

	return result, nil
}

func (w *workflow) finish(report m.Report, save m.Path) error {
	if err := w.save(report, save); err != nil {
		return err
	}

	return w.ui.DisplayReport(report)
}

func (w *workflow) save(report m.Report, path m.Path) error {
	if path == "" {
		return nil
	}

	if err := w.reportStore.SaveReport(path, report); err != nil {
		return err
	}

	w.logger.Info("saved report", "path", path)

	return nil
}
