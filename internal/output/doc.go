// Package output renders normalized review reports for display or machine
// consumption.
//
// Four formats are supported:
//   - json     — the canonical normalized shape, 2-space indented (default)
//   - text     — human-readable terminal summary
//   - markdown — agent-context rendering grouped by severity
//   - sarif    — SARIF v2.1.0 for upload to code-scanning tools
//
// Use [GetWriter] to obtain a [Writer] for a given format string, then call
// [Writer.Write] with an [io.Writer] and a [*report.Report]. [WriteReport]
// and [WriteError] are convenience helpers that handle destination
// selection.
package output
