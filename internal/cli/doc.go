// Package cli wires together the Cobra command tree for the crparse binary.
//
// The root command does the work: it reads a review export from a file
// argument or stdin, normalizes it, and writes the result in the selected
// format. A malformed export is still a successful run — the error record
// is printed and the process exits 0. Only an unreadable input file (or an
// uncreatable output file) produces a non-zero exit.
package cli
