package output

import (
	"encoding/json"
	"fmt"
	"io"

	"crparse/internal/report"
)

// SARIFWriter outputs review comments in SARIF v2.1.0 format.
type SARIFWriter struct{}

func (s *SARIFWriter) Write(w io.Writer, rep *report.Report) error {
	sarif := buildSARIF(rep)
	data, err := json.MarshalIndent(sarif, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling SARIF: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing SARIF: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}

// SARIF schema types (v2.1.0)

type sarifLog struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name  string      `json:"name"`
	Rules []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	ShortDescription sarifMessage       `json:"shortDescription"`
	DefaultConfig    sarifDefaultConfig `json:"defaultConfiguration"`
}

type sarifDefaultConfig struct {
	Level string `json:"level"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations,omitempty"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           *sarifRegion          `json:"region,omitempty"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine int `json:"startLine"`
	EndLine   int `json:"endLine"`
}

func buildSARIF(rep *report.Report) sarifLog {
	rulesMap := make(map[string]sarifRule)
	results := []sarifResult{}

	for _, r := range rep.Reviews {
		rid := ruleID(r.Severity)

		// Register rule if not seen
		if _, ok := rulesMap[rid]; !ok {
			rulesMap[rid] = sarifRule{
				ID:               rid,
				Name:             string(r.Severity),
				ShortDescription: sarifMessage{Text: fmt.Sprintf("%s review comment", r.Severity.Label())},
				DefaultConfig:    sarifDefaultConfig{Level: severityToLevel(r.Severity)},
			}
		}

		result := sarifResult{
			RuleID:  rid,
			Level:   severityToLevel(r.Severity),
			Message: sarifMessage{Text: r.Content},
		}

		if r.File != "" {
			loc := sarifLocation{
				PhysicalLocation: sarifPhysicalLocation{
					ArtifactLocation: sarifArtifactLocation{URI: r.File},
				},
			}
			if r.Line != nil {
				loc.PhysicalLocation.Region = &sarifRegion{
					StartLine: *r.Line,
					EndLine:   *r.Line,
				}
			}
			result.Locations = append(result.Locations, loc)
		}

		results = append(results, result)
	}

	// Collect rules in stable order
	var rules []sarifRule
	seen := make(map[string]bool)
	for _, r := range rep.Reviews {
		rid := ruleID(r.Severity)
		if !seen[rid] {
			seen[rid] = true
			rules = append(rules, rulesMap[rid])
		}
	}

	return sarifLog{
		Version: "2.1.0",
		Schema:  "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/main/sarif-2.1/schema/sarif-schema-2.1.0.json",
		Runs: []sarifRun{
			{
				Tool: sarifTool{
					Driver: sarifDriver{
						Name:  "crparse",
						Rules: rules,
					},
				},
				Results: results,
			},
		},
	}
}

// severityToLevel maps severity codes to SARIF levels.
func severityToLevel(s report.Severity) string {
	switch s {
	case report.SeverityCritical:
		return "error"
	case report.SeverityWarning:
		return "warning"
	default:
		return "note"
	}
}

// ruleID creates a stable rule ID per severity code.
func ruleID(s report.Severity) string {
	return fmt.Sprintf("crparse/%s", string(s))
}
