package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"crparse/internal/report"
)

// TextWriter outputs a human-readable text summary.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, rep *report.Report) error {
	ew := &errWriter{w: w}

	// Summary header
	ew.printf("cr Review — session %s\n", rep.SessionID)
	ew.println(strings.Repeat("─", 60))
	ew.printf("Files reviewed: %d | Comments: %d", rep.Summary.Files, rep.Summary.Comments)
	if rep.Summary.Critical+rep.Summary.Warning+rep.Summary.Info > 0 {
		ew.printf(" (%d critical, %d warning, %d info)",
			rep.Summary.Critical,
			rep.Summary.Warning,
			rep.Summary.Info,
		)
	}
	ew.println("")
	ew.println(strings.Repeat("─", 60))

	if len(rep.Reviews) == 0 {
		ew.println("\nNo review comments. Looks good!")
		return ew.err
	}

	// Group by severity (critical first), then by file
	grouped := groupBySeverity(rep.Reviews)
	for _, sev := range severityOrder(rep.Reviews) {
		reviews := grouped[sev]

		ew.printf("\n%s %s\n", severityIcon(sev), sev.Label())
		ew.println(strings.Repeat("─", 40))

		// Sort by file path within severity
		sort.SliceStable(reviews, func(i, j int) bool {
			return reviews[i].File < reviews[j].File
		})

		for _, r := range reviews {
			ew.printf("\n  %s\n", location(r))
			for _, line := range wrapText(r.Content, 70) {
				ew.printf("    %s\n", line)
			}
		}
	}

	ew.printf("\n%s\n", strings.Repeat("─", 60))
	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}

func groupBySeverity(reviews []report.Review) map[report.Severity][]report.Review {
	m := make(map[report.Severity][]report.Review)
	for _, r := range reviews {
		m[r.Severity] = append(m[r.Severity], r)
	}
	return m
}

// severityOrder returns the severity codes present in the reviews, ranked
// codes first from most to least severe, unknown codes after in first-seen
// order.
func severityOrder(reviews []report.Review) []report.Severity {
	var ranked, unknown []report.Severity
	seen := make(map[report.Severity]bool)
	for _, r := range reviews {
		if seen[r.Severity] {
			continue
		}
		seen[r.Severity] = true
		if report.SeverityRank(r.Severity) > 0 {
			ranked = append(ranked, r.Severity)
		} else {
			unknown = append(unknown, r.Severity)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return report.SeverityRank(ranked[i]) > report.SeverityRank(ranked[j])
	})
	return append(ranked, unknown...)
}

// location renders file:line, or just the file when no line is recorded.
func location(r report.Review) string {
	file := r.File
	if file == "" {
		file = "(no file)"
	}
	if r.Line != nil {
		return fmt.Sprintf("%s:%d", file, *r.Line)
	}
	return file
}

func severityIcon(s report.Severity) string {
	switch s {
	case report.SeverityCritical:
		return "[!!]"
	case report.SeverityWarning:
		return "[!]"
	case report.SeverityInfo:
		return "[-]"
	default:
		return "[?]"
	}
}

func wrapText(text string, width int) []string {
	if len(text) <= width {
		return []string{text}
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		// All whitespace, nothing to wrap
		return []string{strings.TrimSpace(text)}
	}
	var lines []string
	var current strings.Builder
	for _, word := range words {
		if current.Len()+len(word)+1 > width && current.Len() > 0 {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
