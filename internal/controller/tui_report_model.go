package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/linemap/internal/model"
)

// chrome is the number of screen lines used around the row list.
const chrome = 9

// Simple delegate for mapping rows.
type rowDelegate struct{}

func (d rowDelegate) Height() int  { return 1 }
func (d rowDelegate) Spacing() int { return 0 }
func (d rowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d rowDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	row, ok := item.(rowItem)
	if !ok {
		return
	}

	oldStyle := lipgloss.NewStyle().Width(6).Align(lipgloss.Right)
	newStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	statusStyle := lipgloss.NewStyle().Foreground(statusColor(row))

	if index == lm.Index() {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		oldStyle = selected.Width(6).Align(lipgloss.Right)
		newStyle = selected
		statusStyle = selected
	}

	newWidth := lm.Width() - 6 - 12 - 4

	line := fmt.Sprintf("%s  %s  %s",
		oldStyle.Render(row.row.OldString()),
		statusStyle.Render(fmt.Sprintf("%-10s", row.status())),
		newStyle.Render(truncateToWidth(row.row.NewString(), newWidth)),
	)
	_, _ = fmt.Fprint(w, line)
}

func statusColor(row rowItem) lipgloss.Color {
	switch {
	case row.row.Inserted():
		return lipgloss.Color("10") // Green
	case row.row.Deleted():
		return lipgloss.Color("9") // Red
	case row.row.Origin == m.ProvenanceExact:
		return lipgloss.Color("8") // Gray
	default:
		return lipgloss.Color("11") // Yellow
	}
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// reportModel is the interactive viewer for one report.
type reportModel struct {
	width    int
	height   int
	report   m.Report
	rowList  list.Model
	quitting bool
}

func newReportModel(report m.Report) reportModel {
	items := make([]list.Item, 0, len(report.Rows))
	for _, row := range report.Rows {
		items = append(items, rowItem{row: row})
	}

	rowList := list.New(items, rowDelegate{}, 80, 20)
	rowList.SetShowPagination(false)
	rowList.SetShowFilter(true)
	rowList.SetShowHelp(false)
	rowList.SetShowTitle(false)
	rowList.SetShowStatusBar(false)
	rowList.FilterInput.Placeholder = "Filter rows…"

	return reportModel{
		width:   80,
		height:  24,
		report:  report,
		rowList: rowList,
	}
}

// needsPagination reports whether the rows overflow the screen.
func (rm reportModel) needsPagination() bool {
	return len(rm.report.Rows) > rm.height-chrome
}

func (rm reportModel) Init() tea.Cmd {
	return nil
}

func (rm reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.width = msg.Width
		rm.height = msg.Height

		return rm, nil

	case tea.KeyMsg:
		if rm.rowList.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "ctrl+c", "esc":
				rm.quitting = true
				return rm, tea.Quit
			}
		}
	}

	var cmd tea.Cmd

	rm.rowList, cmd = rm.rowList.Update(msg)

	return rm, cmd
}

func (rm reportModel) View() string {
	if rm.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan

	title := titleStyle.Render(fmt.Sprintf("Line Mapping %s → %s", rm.report.OldPath, rm.report.NewPath))

	s := rm.report.Summary
	summary := summaryStyle.Render(fmt.Sprintf(
		"Exact: %s   Fuzzy: %s   Split: %s   Deleted: %s   Inserted: %s",
		accentStyle.Render(fmt.Sprintf("%d", s.Exact)),
		accentStyle.Render(fmt.Sprintf("%d", s.Fuzzy)),
		accentStyle.Render(fmt.Sprintf("%d", s.Split)),
		accentStyle.Render(fmt.Sprintf("%d", s.Deleted)),
		accentStyle.Render(fmt.Sprintf("%d", s.Inserted)),
	))

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(rm.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		rm.renderTable(),
		footer,
	)
}

func (rm reportModel) renderTable() string {
	listHeight := max(rm.height-chrome, 5)
	listWidth := rm.width - 6

	rm.rowList.SetHeight(listHeight)
	rm.rowList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%6s  %-10s  %s", "Old", "Status", "New"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			rm.rowList.View(),
		),
	)
}
