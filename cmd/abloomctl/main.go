// Package main provides the abloomctl CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string //nolint:gochecknoglobals // CLI flag variable

func main() {
	rootCmd := &cobra.Command{
		Use:   "abloomctl",
		Short: "Build, size, and query split-block Bloom filters",
		Long: `abloomctl is a small CLI around the abloom package.

Commands:
  estimate  Report the size and false positive rate of a hypothetical filter
  build     Build a filter from a newline-delimited word list and persist it
  check     Query membership in a persisted filter`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./abloomctl.yaml)")

	rootCmd.AddCommand(estimateCmd())
	rootCmd.AddCommand(buildCmd())
	rootCmd.AddCommand(checkCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
