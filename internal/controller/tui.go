package controller

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "github.com/mouse-blink/linemap/internal/model"
)

// TUI implements UI with an interactive Bubble Tea viewer for reports that do
// not fit on one screen. Everything else goes through the fallback UI.
type TUI struct {
	output   io.Writer
	fallback UI
	run      func(model tea.Model) error
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer, fallback UI) *TUI {
	t := &TUI{output: output, fallback: fallback}
	t.run = t.runProgram

	return t
}

// DisplayReport shows the report in the viewer, or prints it when it fits.
func (t *TUI) DisplayReport(report m.Report) error {
	model := newReportModel(report)

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	if !model.needsPagination() {
		return t.fallback.DisplayReport(report)
	}

	return t.run(model)
}

// DisplayBatch prints every report through the fallback UI.
func (t *TUI) DisplayBatch(reports []m.Report) error {
	return t.fallback.DisplayBatch(reports)
}

// DisplayTrace prints the projection through the fallback UI.
func (t *TUI) DisplayTrace(trace m.Trace) error {
	return t.fallback.DisplayTrace(trace)
}

func (t *TUI) runProgram(model tea.Model) error {
	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	_, err := program.Run()

	return err
}
