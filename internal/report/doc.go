// Package report normalizes cr review exports into a stable, fully-defaulted
// shape.
//
// The cr export format is loose: every field is optional, stats may be
// partial, and review entries carry abbreviated keys (sev). [Normalize]
// projects that shape into a [Report] in which every key is always present,
// substituting defaults for anything missing and preserving review order.
// Malformed JSON is returned as an [ErrorReport] value rather than an error,
// so callers can serialize whichever result they receive.
package report
