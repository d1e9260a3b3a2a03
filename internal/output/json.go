package output

import (
	"encoding/json"
	"fmt"
	"io"

	"crparse/internal/report"
)

// JSONWriter outputs the normalized report as indented JSON. This is the
// canonical format: every key is present, reviews stay in input order, and
// an absent line number serializes as null.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, rep *report.Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
