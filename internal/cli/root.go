package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"crparse/internal/output"
	"crparse/internal/report"
)

const version = "0.1.0"

// Exit codes
const (
	ExitSuccess    = 0
	ExitInputError = 1
	ExitUsageError = 2
)

var (
	flagFormat string
	flagOut    string
)

var rootCmd = &cobra.Command{
	Use:   "crparse [input-file]",
	Short: "Normalize cr review exports for coding agents",
	Long: "crparse reads a cr review export (from a file or stdin), fills in defaults\n" +
		"for every missing field, and emits a stable normalized report.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) > 0 {
			path = args[0]
		}

		data, err := readInput(path, os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitInputError
			return nil
		}

		rep, errRep := report.Normalize(data)
		if errRep != nil {
			// Malformed input is a normal result, not a process failure
			if err := output.WriteError(errRep, flagOut); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
				exitCode = ExitInputError
			}
			return nil
		}

		if err := output.WriteReport(rep, flagFormat, flagOut); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			exitCode = ExitInputError
		}
		return nil
	},
}

// readInput reads the named file, or all of stdin when path is empty.
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading input file: %w", err)
		}
		return data, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return data, nil
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print crparse version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "crparse version %s\n", version)
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagFormat, "format", "json", "Output format (json, text, markdown, sarif)")
	rootCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
}
