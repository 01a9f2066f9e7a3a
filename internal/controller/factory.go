package controller

import (
	"io"
	"os"

	m "github.com/mouse-blink/linemap/internal/model"
	"github.com/spf13/cobra"
)

// NewUI creates a UI for the requested format.
// Tables on an interactive terminal get the Bubble Tea viewer; everything
// else is printed through the cobra command's output.
func NewUI(cmd *cobra.Command, useTTY bool, format m.Format) UI {
	simple := NewSimpleUI(cmd, format)

	if useTTY && format == m.FormatTable {
		return NewTUI(cmd.OutOrStdout(), simple)
	}

	return simple
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
