// Crparse normalizes cr review exports into a stable JSON shape for coding
// agents.
//
// It reads a review export from a named file or stdin, substitutes defaults
// for every missing field, and prints the normalized report. Malformed JSON
// becomes an {"error": ...} record on stdout with a zero exit; only an
// unreadable input file exits non-zero.
//
// Usage:
//
//	crparse review.json                    # normalize a file
//	cr export --format json | crparse      # normalize from stdin
//	crparse review.json --format markdown  # render agent-context markdown
//	crparse review.json --format sarif     # SARIF for code-scanning upload
package main
