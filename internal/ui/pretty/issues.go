package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdsite/pkg/runner"
	"github.com/yaklabco/mdsite/pkg/site"
)

// FormatFailure formats a failed source file for terminal output.
func (s *Styles) FormatFailure(outcome runner.FileOutcome) string {
	return fmt.Sprintf("  %s  %s  %s\n",
		s.FilePath.Render(outcome.Rel),
		s.Error.Render("error"),
		s.Message.Render(outcome.Error.Error()),
	)
}

// FormatBrokenLink formats a root-relative URL that matched no output file.
func (s *Styles) FormatBrokenLink(link site.BrokenLink) string {
	kind := "link"
	if link.Image {
		kind = "image"
	}
	return fmt.Sprintf("  %s  %s  %s %s\n",
		s.FilePath.Render(link.Page),
		s.Warning.Render("warning"),
		s.Message.Render("broken "+kind),
		s.URL.Render(link.URL),
	)
}

// FormatIssues formats every failure and broken link in a report, grouped
// under a header. It returns "" when there is nothing to report.
func (s *Styles) FormatIssues(report *site.Report) string {
	if report == nil {
		return ""
	}

	var builder strings.Builder

	if report.Result != nil {
		for _, outcome := range report.Result.Failed() {
			builder.WriteString(s.FormatFailure(outcome))
		}
	}
	for _, link := range report.BrokenLinks {
		builder.WriteString(s.FormatBrokenLink(link))
	}

	if builder.Len() == 0 {
		return ""
	}
	return s.Bold.Render("Issues") + "\n" + builder.String()
}
