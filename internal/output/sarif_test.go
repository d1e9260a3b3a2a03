package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"crparse/internal/report"
)

func TestSARIFWriter_ValidStructure(t *testing.T) {
	var buf bytes.Buffer
	if err := (&SARIFWriter{}).Write(&buf, sampleReport()); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var log sarifLog
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if log.Version != "2.1.0" {
		t.Errorf("Version = %q, want 2.1.0", log.Version)
	}
	if len(log.Runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(log.Runs))
	}

	run := log.Runs[0]
	if run.Tool.Driver.Name != "crparse" {
		t.Errorf("driver name = %q, want crparse", run.Tool.Driver.Name)
	}
	if len(run.Results) != 3 {
		t.Fatalf("got %d results, want 3", len(run.Results))
	}
	if len(run.Tool.Driver.Rules) != 3 {
		t.Errorf("got %d rules, want 3 (one per severity)", len(run.Tool.Driver.Rules))
	}
}

func TestSARIFWriter_LevelMapping(t *testing.T) {
	tests := []struct {
		sev  report.Severity
		want string
	}{
		{report.SeverityCritical, "error"},
		{report.SeverityWarning, "warning"},
		{report.SeverityInfo, "note"},
		{report.Severity("x"), "note"},
	}

	for _, tt := range tests {
		if got := severityToLevel(tt.sev); got != tt.want {
			t.Errorf("severityToLevel(%q) = %q, want %q", tt.sev, got, tt.want)
		}
	}
}

func TestSARIFWriter_Locations(t *testing.T) {
	rep := &report.Report{
		SessionID: "s",
		Reviews: []report.Review{
			{File: "a.go", Line: intPtr(12), Severity: report.SeverityCritical, Content: "bug"},
			{File: "b.go", Severity: report.SeverityInfo, Content: "no line"},
			{Severity: report.SeverityInfo, Content: "no file"},
		},
	}

	log := buildSARIF(rep)
	results := log.Runs[0].Results

	if len(results[0].Locations) != 1 {
		t.Fatal("result with file should have a location")
	}
	region := results[0].Locations[0].PhysicalLocation.Region
	if region == nil || region.StartLine != 12 || region.EndLine != 12 {
		t.Errorf("region = %+v, want start/end 12", region)
	}

	if results[1].Locations[0].PhysicalLocation.Region != nil {
		t.Error("result without line should have no region")
	}
	if len(results[2].Locations) != 0 {
		t.Error("result without file should have no location")
	}
}

func TestSARIFWriter_DedupesRules(t *testing.T) {
	rep := &report.Report{
		Reviews: []report.Review{
			{File: "a.go", Severity: report.SeverityWarning, Content: "one"},
			{File: "b.go", Severity: report.SeverityWarning, Content: "two"},
		},
	}

	log := buildSARIF(rep)
	rules := log.Runs[0].Tool.Driver.Rules
	if len(rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(rules))
	}
	if rules[0].ID != "crparse/w" {
		t.Errorf("rule ID = %q, want crparse/w", rules[0].ID)
	}
}

func TestSARIFWriter_EmptyReport(t *testing.T) {
	rep, _ := report.Normalize([]byte(`{}`))

	var buf bytes.Buffer
	if err := (&SARIFWriter{}).Write(&buf, rep); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var log sarifLog
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(log.Runs[0].Results) != 0 {
		t.Error("empty report should produce no results")
	}
}
