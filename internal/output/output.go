package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"crparse/internal/report"
)

// Writer writes a normalized report in a specific format.
type Writer interface {
	Write(w io.Writer, rep *report.Report) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "json":
		return &JSONWriter{}, nil
	case "text":
		return &TextWriter{}, nil
	case "markdown":
		return &MarkdownWriter{}, nil
	case "sarif":
		return &SARIFWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteReport writes the report to the specified output (file path or stdout).
func WriteReport(rep *report.Report, format, outPath string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}

	w, closeFn, err := destination(outPath)
	if err != nil {
		return err
	}
	defer closeFn()

	return writer.Write(w, rep)
}

// WriteError writes an error record to the specified output. The record is
// always serialized as indented JSON regardless of the selected format.
func WriteError(e *report.ErrorReport, outPath string) error {
	w, closeFn, err := destination(outPath)
	if err != nil {
		return err
	}
	defer closeFn()

	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling error record: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing error record: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}

func destination(outPath string) (io.Writer, func(), error) {
	if outPath == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(outPath)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
