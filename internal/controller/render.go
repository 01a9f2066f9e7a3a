package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	m "github.com/mouse-blink/linemap/internal/model"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for an output format no renderer handles.
var ErrUnknownFormat = errors.New("unknown output format")

func renderReport(w io.Writer, format m.Format, report m.Report) error {
	switch format {
	case m.FormatTable:
		return renderTable(w, report)
	case m.FormatPlain:
		return renderPlain(w, report)
	case m.FormatJSON:
		return renderJSON(w, report)
	case m.FormatYAML:
		return renderYAML(w, report)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func renderTable(w io.Writer, report m.Report) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Old", "New"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

	for _, row := range report.Rows {
		table.Append([]string{row.OldString(), row.NewString()})
	}

	table.Render()

	_, err := fmt.Fprintf(w, "%s\n%s", tableBuffer.String(), summaryLine(report.Summary))

	return err
}

func renderPlain(w io.Writer, report m.Report) error {
	var sb strings.Builder

	for _, row := range report.Rows {
		sb.WriteString(row.OldString())
		sb.WriteString(" -> ")
		sb.WriteString(row.NewString())
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

func renderYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return enc.Close()
}

func summaryLine(s m.Summary) string {
	return fmt.Sprintf("exact %d, fuzzy %d, split %d, deleted %d, inserted %d\n",
		s.Exact, s.Fuzzy, s.Split, s.Deleted, s.Inserted)
}

func joinLines(lines []int) string {
	if len(lines) == 0 {
		return "-1"
	}

	parts := make([]string, 0, len(lines))
	for _, n := range lines {
		parts = append(parts, strconv.Itoa(n))
	}

	return strings.Join(parts, ",")
}
