package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/yaklabco/mdsite/pkg/runner"
	"github.com/yaklabco/mdsite/pkg/site"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 4 // PAGE, TITLE, SIZE, STATUS
	minPageWidth     = 20
	minTitleWidth    = 20
	sizeWidth        = 8
	statusWidth      = 9
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
)

// Page statuses shown in the STATUS column.
const (
	StatusWritten   = "written"
	StatusUnchanged = "unchanged"
	StatusFailed    = "failed"
)

// TableRow represents a single row in the page table.
type TableRow struct {
	Page   string
	Title  string
	Size   string
	Status string
}

// TableFormatter formats build reports as styled tables.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// FormatTable formats one row per source file: generated pages first
// in path order, then failures.
func (t *TableFormatter) FormatTable(report *site.Report) string {
	rows := t.collectRows(report)
	if len(rows) == 0 {
		return ""
	}

	widths := t.calculateColumnWidths(rows)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths, heavySeparator))
	builder.WriteString("\n")

	for i, row := range rows {
		if i > 0 && row.Status == StatusFailed && rows[i-1].Status != StatusFailed {
			builder.WriteString(t.formatSeparator(widths, lightSeparator))
			builder.WriteString("\n")
		}
		builder.WriteString(t.formatRow(row, widths))
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(widths, heavySeparator))
	builder.WriteString("\n")

	return builder.String()
}

// collectRows converts the report into table rows.
func (t *TableFormatter) collectRows(report *site.Report) []TableRow {
	if report == nil {
		return nil
	}

	rows := make([]TableRow, 0, len(report.Pages))
	for _, page := range report.Pages {
		rows = append(rows, PageToTableRow(page))
	}

	if report.Result != nil {
		for _, outcome := range report.Result.Failed() {
			rows = append(rows, FailureToTableRow(outcome))
		}
	}

	return rows
}

type columnWidths struct {
	page  int
	title int
}

// calculateColumnWidths determines column widths based on content.
func (t *TableFormatter) calculateColumnWidths(rows []TableRow) columnWidths {
	widths := columnWidths{
		page:  minPageWidth,
		title: minTitleWidth,
	}

	for _, row := range rows {
		widths.page = max(widths.page, len(row.Page))
		widths.title = max(widths.title, len(row.Title))
	}

	// Constrain to terminal width, title first.
	totalWidth := t.calculateTotalWidth(widths)
	if totalWidth > t.termWidth {
		excess := totalWidth - t.termWidth
		widths.title = max(minTitleWidth, widths.title-excess)

		totalWidth = t.calculateTotalWidth(widths)
		if totalWidth > t.termWidth {
			excess = totalWidth - t.termWidth
			widths.page = max(minPageWidth, widths.page-excess)
		}
	}

	return widths
}

// calculateTotalWidth calculates the total table width from column widths.
func (t *TableFormatter) calculateTotalWidth(widths columnWidths) int {
	return widths.page + widths.title + sizeWidth + statusWidth + (tablePadding * tableColumnCount)
}

// formatHeader formats the table header row.
func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s  %*s  %-*s ",
		widths.page, "PAGE",
		widths.title, "TITLE",
		sizeWidth, "SIZE",
		statusWidth, "STATUS",
	)
	return t.styles.TableHeader.Render(header)
}

// formatSeparator formats a separator line.
func (t *TableFormatter) formatSeparator(widths columnWidths, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, t.calculateTotalWidth(widths)))
}

// formatRow formats a single table row with status-based styling.
// Page titles use the Title style; failure messages keep the row style.
func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	rowStyle := t.getRowStyle(row.Status)
	titleStyle := t.styles.Title
	if row.Status == StatusFailed {
		titleStyle = rowStyle
	}

	page := fmt.Sprintf(" %-*s  ", widths.page, truncateFilePath(row.Page, widths.page))
	title := fmt.Sprintf("%-*s", widths.title, truncateString(row.Title, widths.title))
	rest := fmt.Sprintf("  %*s  %-*s ", sizeWidth, row.Size, statusWidth, row.Status)

	return rowStyle.Render(page) + titleStyle.Render(title) + rowStyle.Render(rest)
}

// getRowStyle returns the style for a page status.
func (t *TableFormatter) getRowStyle(status string) lipgloss.Style {
	switch status {
	case StatusWritten:
		return t.styles.TableWrittenRow
	case StatusUnchanged:
		return t.styles.TableStaleRow
	case StatusFailed:
		return t.styles.TableErrorRow
	default:
		return lipgloss.NewStyle()
	}
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}

// truncateFilePath truncates a file path, preserving the end (filename) rather than beginning.
func truncateFilePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return path[len(path)-maxLen:]
	}
	return "..." + path[len(path)-maxLen+3:]
}

// PageToTableRow converts a generated page to a table row.
func PageToTableRow(page site.PageReport) TableRow {
	status := StatusUnchanged
	if page.Written {
		status = StatusWritten
	}
	return TableRow{
		Page:   page.Output,
		Title:  page.Title,
		Size:   humanize.Bytes(uint64(page.Bytes)),
		Status: status,
	}
}

// FailureToTableRow converts a failed source file to a table row.
func FailureToTableRow(outcome runner.FileOutcome) TableRow {
	return TableRow{
		Page:   outcome.Rel,
		Title:  outcome.Error.Error(),
		Size:   "-",
		Status: StatusFailed,
	}
}
