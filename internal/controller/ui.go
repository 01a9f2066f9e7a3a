// Package controller renders mapping reports to the terminal.
package controller

import (
	m "github.com/mouse-blink/linemap/internal/model"
)

// UI defines how reports reach the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayReport(report m.Report) error
	DisplayBatch(reports []m.Report) error
	DisplayTrace(trace m.Trace) error
}
