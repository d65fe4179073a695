package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bsltools/bsllint/pkg/config"
	"github.com/bsltools/bsllint/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "12 issues (8 major, 4 minor) in 3 files".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.DiagnosticsTotal == 0 {
		return s.Success.Render("No issues found") +
			s.Dim.Render(fmt.Sprintf(" (%d files checked)", stats.FilesProcessed)) + "\n"
	}

	var parts []string

	// Total issues
	issueWord := "issues"
	if stats.DiagnosticsTotal == 1 {
		issueWord = "issue"
	}

	// Build severity breakdown, hottest first.
	var severityParts []string
	for _, entry := range []struct {
		severity config.Severity
		style    lipgloss.Style
	}{
		{config.SeverityBlocker, s.Blocker},
		{config.SeverityCritical, s.Critical},
		{config.SeverityMajor, s.Major},
		{config.SeverityMinor, s.Minor},
		{config.SeverityInfo, s.Info},
	} {
		if count := stats.DiagnosticsBySeverity[entry.severity]; count > 0 {
			severityParts = append(severityParts,
				entry.style.Render(fmt.Sprintf("%d %s", count, entry.severity)))
		}
	}

	// Main count with severity breakdown
	if len(severityParts) > 0 {
		parts = append(parts, fmt.Sprintf("%d %s (%s)", stats.DiagnosticsTotal, issueWord, strings.Join(severityParts, ", ")))
	} else {
		parts = append(parts, fmt.Sprintf("%d %s", stats.DiagnosticsTotal, issueWord))
	}

	// Files with issues
	fileWord := wordFiles
	if stats.FilesWithIssues == 1 {
		fileWord = wordFile
	}
	parts = append(parts, fmt.Sprintf("in %d %s", stats.FilesWithIssues, fileWord))

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	// Files
	builder.WriteString("  Files checked:     " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesWithIssues > 0 {
		builder.WriteString("  Files with issues: " +
			s.Failure.Render(strconv.Itoa(stats.FilesWithIssues)) + "\n")
	}

	if stats.FilesSkipped > 0 {
		builder.WriteString("  Files skipped:     " +
			s.Dim.Render(strconv.Itoa(stats.FilesSkipped)) + "\n")
	}

	if stats.FilesErrored > 0 {
		builder.WriteString("  Files errored:     " +
			s.Error.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("\n")

	// Diagnostics by severity
	builder.WriteString("  Total issues:      " +
		s.SummaryValue.Render(strconv.Itoa(stats.DiagnosticsTotal)) + "\n")

	if blockers := stats.DiagnosticsBySeverity[config.SeverityBlocker]; blockers > 0 {
		builder.WriteString("    Blocker:         " +
			s.Blocker.Render(strconv.Itoa(blockers)) + "\n")
	}
	if criticals := stats.DiagnosticsBySeverity[config.SeverityCritical]; criticals > 0 {
		builder.WriteString("    Critical:        " +
			s.Critical.Render(strconv.Itoa(criticals)) + "\n")
	}
	if majors := stats.DiagnosticsBySeverity[config.SeverityMajor]; majors > 0 {
		builder.WriteString("    Major:           " +
			s.Major.Render(strconv.Itoa(majors)) + "\n")
	}
	if minors := stats.DiagnosticsBySeverity[config.SeverityMinor]; minors > 0 {
		builder.WriteString("    Minor:           " +
			s.Minor.Render(strconv.Itoa(minors)) + "\n")
	}
	if infos := stats.DiagnosticsBySeverity[config.SeverityInfo]; infos > 0 {
		builder.WriteString("    Info:            " +
			s.Info.Render(strconv.Itoa(infos)) + "\n")
	}

	builder.WriteString("\n")

	// Overall status
	switch {
	case stats.DiagnosticsBySeverity[config.SeverityBlocker] > 0 ||
		stats.DiagnosticsBySeverity[config.SeverityCritical] > 0 ||
		stats.DiagnosticsBySeverity[config.SeverityMajor] > 0:
		builder.WriteString(s.Failure.Render("Lint failed"))
	case stats.DiagnosticsTotal > 0:
		builder.WriteString(s.Minor.Render("Lint completed with issues"))
	default:
		builder.WriteString(s.Success.Render("Lint passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
