package output

import (
	"fmt"
	"io"
	"sort"

	"crparse/internal/report"
)

// MarkdownWriter outputs an agent-context markdown rendering of the report,
// suitable for dropping into a coding agent's working context.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, rep *report.Report) error {
	ew := &errWriter{w: w}

	ew.printf("# Code Review Results\n\n")
	ew.printf("**Session**: `%s`\n\n", rep.SessionID)
	ew.printf("**Summary**: %d files reviewed, %d comments\n\n",
		rep.Summary.Files, rep.Summary.Comments)

	// Issue counts are tallied from the review entries so they always agree
	// with the rendered sections, even when the stats block disagrees.
	counts := report.CountBySeverity(rep.Reviews)
	if counts != (report.SeverityCounts{}) {
		ew.println("**Issues**:")
		if counts.Critical > 0 {
			ew.printf("- 🔴 Critical: %d\n", counts.Critical)
		}
		if counts.Warning > 0 {
			ew.printf("- 🟡 Warning: %d\n", counts.Warning)
		}
		if counts.Info > 0 {
			ew.printf("- 🔵 Info: %d\n", counts.Info)
		}
		if counts.Other > 0 {
			ew.printf("- ⚪ Other: %d\n", counts.Other)
		}
		ew.println("")
	}

	if len(rep.Reviews) == 0 {
		ew.println("No review comments.")
		return ew.err
	}

	ew.println("## Review Comments\n")

	grouped := groupBySeverity(rep.Reviews)
	for _, sev := range severityOrder(rep.Reviews) {
		reviews := grouped[sev]

		ew.printf("### %s %s (%d)\n\n", mdSeverityIcon(sev), sectionTitle(sev), len(reviews))

		sort.SliceStable(reviews, func(i, j int) bool {
			return reviews[i].File < reviews[j].File
		})

		for _, r := range reviews {
			ew.printf("%s **%s**: %s\n", mdSeverityIcon(sev), sev.Label(), r.Content)
			if r.File != "" {
				ew.printf("   📍 `%s`\n", location(r))
			}
			ew.println("")
		}
	}

	return ew.err
}

func sectionTitle(s report.Severity) string {
	switch s {
	case report.SeverityCritical:
		return "Critical Issues"
	case report.SeverityWarning:
		return "Warnings"
	case report.SeverityInfo:
		return "Information"
	default:
		return fmt.Sprintf("Other (%s)", s.Label())
	}
}

func mdSeverityIcon(s report.Severity) string {
	switch s {
	case report.SeverityCritical:
		return "🔴"
	case report.SeverityWarning:
		return "🟡"
	case report.SeverityInfo:
		return "🔵"
	default:
		return "⚪"
	}
}
