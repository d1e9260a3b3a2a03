package report

import (
	"encoding/json"
	"fmt"
)

// Normalize parses a raw cr review export and projects it into a Report.
// Exactly one of the results is non-nil: malformed JSON yields an
// ErrorReport carrying the parser's diagnostic, anything else yields a
// Report with defaults substituted for every missing field.
//
// The input is walked as untyped JSON rather than unmarshaled into a
// struct so that a non-object top level (a bare array, number, string)
// degrades to the all-defaults report instead of a type error.
func Normalize(data []byte) (*Report, *ErrorReport) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, &ErrorReport{Error: fmt.Sprintf("Invalid JSON: %v", err)}
	}

	obj, _ := v.(map[string]any) // nil on non-object top level; lookups on a nil map are fine
	stats, _ := obj["stats"].(map[string]any)

	rep := &Report{
		SessionID: getString(obj, "session_id", "unknown"),
		Summary: Summary{
			Files:    getInt(stats, "files_reviewed"),
			Comments: getInt(stats, "total_comments"),
			Critical: getInt(stats, "critical"),
			Warning:  getInt(stats, "warning"),
			Info:     getInt(stats, "info"),
		},
		Reviews: []Review{},
	}

	entries, _ := obj["reviews"].([]any)
	for _, e := range entries {
		m, _ := e.(map[string]any)
		rep.Reviews = append(rep.Reviews, Review{
			File:     getString(m, "file", ""),
			Line:     getLine(m),
			Severity: Severity(getString(m, "sev", "i")),
			Content:  getString(m, "content", ""),
		})
	}

	return rep, nil
}

func getString(m map[string]any, key, fallback string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return fallback
}

// getInt reads a JSON number as an int, truncating toward zero.
// Missing keys and non-numbers count as 0.
func getInt(m map[string]any, key string) int {
	if f, ok := m[key].(float64); ok {
		return int(f)
	}
	return 0
}

// getLine reads the line number, or nil when absent or non-numeric.
// The output schema is int-or-null, so nil survives to serialization.
func getLine(m map[string]any) *int {
	if f, ok := m["line"].(float64); ok {
		n := int(f)
		return &n
	}
	return nil
}
