package controller

import (
	"fmt"

	m "github.com/mouse-blink/linemap/internal/model"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI by writing to the cobra command's output.
type SimpleUI struct {
	cmd    *cobra.Command
	format m.Format
}

// NewSimpleUI creates a new SimpleUI rendering in format.
func NewSimpleUI(cmd *cobra.Command, format m.Format) *SimpleUI {
	if format == "" {
		format = m.FormatTable
	}

	return &SimpleUI{cmd: cmd, format: format}
}

// DisplayReport renders a single report.
func (s *SimpleUI) DisplayReport(report m.Report) error {
	return renderReport(s.cmd.OutOrStdout(), s.format, report)
}

// DisplayBatch renders several reports. Structured formats emit one document
// holding every report; text formats print a heading per pair.
func (s *SimpleUI) DisplayBatch(reports []m.Report) error {
	switch s.format {
	case m.FormatJSON:
		return renderJSON(s.cmd.OutOrStdout(), reports)
	case m.FormatYAML:
		return renderYAML(s.cmd.OutOrStdout(), reports)
	}

	for i, report := range reports {
		if i > 0 {
			s.printf("\n")
		}

		s.printf("== %s -> %s\n", report.OldPath, report.NewPath)

		if err := s.DisplayReport(report); err != nil {
			return err
		}
	}

	return nil
}

// DisplayTrace renders the projection of a line set.
func (s *SimpleUI) DisplayTrace(trace m.Trace) error {
	switch s.format {
	case m.FormatJSON:
		return renderJSON(s.cmd.OutOrStdout(), trace)
	case m.FormatYAML:
		return renderYAML(s.cmd.OutOrStdout(), trace)
	}

	from, to := "new", "old"
	if trace.Forward {
		from, to = "old", "new"
	}

	s.printf("%s %s -> %s %s\n", from, joinLines(trace.From), to, joinLines(trace.To))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
