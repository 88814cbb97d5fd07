package main

import (
	"os"

	"github.com/spf13/cobra"

	"golang.org/x/term"

	"symck/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "symck",
	Short: "Symbol table and type checker for NuSMV-shaped models",
	Long: `symck drives the symbol cache, layered symbol table, and type
checker against .smv-shaped fixture files, independently of a full
NuSMV front end.`,
}

var traceCleanup func()

func main() {
	rootCmd.Version = version.VersionString()
	rootCmd.PersistentPreRunE = setupRun
	rootCmd.PersistentPostRun = cleanupRun

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("config", "", "path to a TOML options file")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "accepted but has no effect on output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show per file")
	rootCmd.PersistentFlags().Int("jobs", 0, "max parallel workers for multi-file input (0=auto)")

	rootCmd.PersistentFlags().String("trace", "", "trace output file (- for stderr, empty to disable)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-mode", "ring", "storage mode (stream|ring|both)")
	rootCmd.PersistentFlags().String("trace-format", "auto", "output format (auto|text|ndjson|chrome)")
	rootCmd.PersistentFlags().Int("trace-ring-size", 4096, "ring buffer capacity for trace events")
	rootCmd.PersistentFlags().Duration("trace-heartbeat", 0, "heartbeat interval (0 to disable, e.g. 1s)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr)), nil
}
