// Package main provides the CLI entry point for turbex.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	setupLogging()

	rootCmd := &cobra.Command{
		Use:   "turbex",
		Short: "Extract shaped table regions from spreadsheets into destination workbooks",
		Long: `turbex reads XLSX and CSV sources, applies row and column selections and
filter rules, shapes the result and places it into destination workbooks.
Existing destination data is never overwritten: a blocked landing zone
fails the run and reports the first blocking cell.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(runCmd(), extractCmd(), templateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
