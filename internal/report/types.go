package report

import "strings"

// Severity is the short severity code attached to a review entry.
// Codes are pass-through text: unknown codes are preserved, not rejected.
type Severity string

const (
	SeverityCritical Severity = "c"
	SeverityWarning  Severity = "w"
	SeverityInfo     Severity = "i"
)

// SeverityRank returns a numeric rank for sorting (higher = more severe).
// Unknown codes rank below info.
func SeverityRank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	default:
		return 0
	}
}

// Label returns a display label for a severity code. Unknown codes label as
// their uppercase form.
func (s Severity) Label() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityWarning:
		return "WARNING"
	case SeverityInfo:
		return "INFO"
	default:
		return strings.ToUpper(string(s))
	}
}

// Review is one normalized review comment.
type Review struct {
	File     string   `json:"file"`
	Line     *int     `json:"line"`
	Severity Severity `json:"severity"`
	Content  string   `json:"content"`
}

// Summary holds the aggregate counters reported by the review run. Values
// are copied from the export's stats block, not recomputed from reviews.
type Summary struct {
	Files    int `json:"files"`
	Comments int `json:"comments"`
	Critical int `json:"critical"`
	Warning  int `json:"warning"`
	Info     int `json:"info"`
}

// Report is the normalized output shape. Every key is always present.
type Report struct {
	SessionID string   `json:"session_id"`
	Summary   Summary  `json:"summary"`
	Reviews   []Review `json:"reviews"`
}

// ErrorReport is emitted in place of a Report when the input is not valid
// JSON. It is a normal output value, not a process failure.
type ErrorReport struct {
	Error string `json:"error"`
}

// SeverityCounts holds counts by severity code, tallied from the review
// entries themselves.
type SeverityCounts struct {
	Critical int
	Warning  int
	Info     int
	Other    int
}

// CountBySeverity tallies review entries by severity code. Display-only:
// the summary block always reflects the upstream stats, which may disagree.
func CountBySeverity(reviews []Review) SeverityCounts {
	var c SeverityCounts
	for _, r := range reviews {
		switch r.Severity {
		case SeverityCritical:
			c.Critical++
		case SeverityWarning:
			c.Warning++
		case SeverityInfo:
			c.Info++
		default:
			c.Other++
		}
	}
	return c
}
