package pretty

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/yaklabco/mdsite/pkg/site"
)

const (
	summaryDividerWidth = 40
	wordPage            = "page"
	wordPages           = "pages"
	durationRound       = time.Millisecond
)

func pluralPages(n int) string {
	if n == 1 {
		return wordPage
	}
	return wordPages
}

// FormatSummaryOneLine formats a build report as a single line.
// Example: "Built 12 pages (48 kB) in 35ms, 3 unchanged, 1 failed".
func (s *Styles) FormatSummaryOneLine(report *site.Report) string {
	if report == nil || report.Result == nil {
		return ""
	}
	stats := report.Result.Stats

	if stats.Discovered == 0 {
		return s.Warning.Render("No pages found") + "\n"
	}

	head := fmt.Sprintf("Built %d %s", stats.Processed, pluralPages(stats.Processed))
	if stats.Errored == 0 {
		head = s.Success.Render(head)
	}

	parts := []string{
		head + s.Dim.Render(fmt.Sprintf(" (%s) in %s",
			humanize.Bytes(uint64(stats.Bytes)), report.Duration.Round(durationRound))),
	}

	if stats.Unchanged > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d unchanged", stats.Unchanged)))
	}
	if stats.Errored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.Errored)))
	}
	if n := len(report.BrokenLinks); n > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d broken %s", n, pluralLinks(n))))
	}

	return strings.Join(parts, ", ") + "\n"
}

func pluralLinks(n int) string {
	if n == 1 {
		return "link"
	}
	return "links"
}

// FormatSummary formats a build report as a summary block.
func (s *Styles) FormatSummary(report *site.Report) string {
	if report == nil || report.Result == nil {
		return ""
	}
	stats := report.Result.Stats

	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	// Pages
	builder.WriteString("  Sources found:     " +
		s.SummaryValue.Render(humanize.Comma(int64(stats.Discovered))) + "\n")
	builder.WriteString("  Pages written:     " +
		s.Success.Render(humanize.Comma(int64(stats.Written))) + "\n")

	if stats.Unchanged > 0 {
		builder.WriteString("  Pages unchanged:   " +
			s.Dim.Render(humanize.Comma(int64(stats.Unchanged))) + "\n")
	}
	if stats.Errored > 0 {
		builder.WriteString("  Pages failed:      " +
			s.Failure.Render(strconv.Itoa(stats.Errored)) + "\n")
	}

	builder.WriteString("  Output size:       " +
		s.SummaryValue.Render(humanize.Bytes(uint64(stats.Bytes))) + "\n")

	builder.WriteString("\n")

	// Static files
	switch {
	case report.StaticMissing:
		builder.WriteString("  Static files:      " + s.Dim.Render("none (directory missing)") + "\n")
	case report.Static.Files > 0:
		builder.WriteString("  Static files:      " +
			s.SummaryValue.Render(fmt.Sprintf("%s (%s)",
				humanize.Comma(int64(report.Static.Files)), humanize.Bytes(uint64(report.Static.Bytes)))) + "\n")
	}

	if n := len(report.BrokenLinks); n > 0 {
		builder.WriteString("  Broken links:      " + s.Warning.Render(strconv.Itoa(n)) + "\n")
	}

	builder.WriteString("  Duration:          " +
		s.SummaryValue.Render(report.Duration.Round(durationRound).String()) + "\n")

	builder.WriteString("\n")

	// Overall status
	switch {
	case stats.Errored > 0:
		builder.WriteString(s.Failure.Render("Build failed"))
	case len(report.BrokenLinks) > 0:
		builder.WriteString(s.Warning.Render("Build completed with broken links"))
	default:
		builder.WriteString(s.Success.Render("Build succeeded"))
	}
	builder.WriteString("\n")

	return builder.String()
}
