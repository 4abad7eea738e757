package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex"
	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/apperr"
	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/models"
	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/project"
)

var runAsJSON bool

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [project.json]",
		Short: "Run every extraction in a project file",
		Args:  cobra.ExactArgs(1),
		RunE:  runProject,
	}
	cmd.Flags().BoolVar(&runAsJSON, "json", false, "Print the run report as JSON")
	return cmd
}

func runProject(cmd *cobra.Command, args []string) error {
	cfg, err := project.Load(args[0])
	if err != nil {
		return err
	}
	items := project.BuildRunItems(cfg)
	report := turbex.RunAll(items, nil)

	if runAsJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		fmt.Println(string(data))
	} else {
		fmt.Print(formatReport(report))
	}

	if !report.OK {
		return errors.New("run finished with errors")
	}
	return nil
}

func formatReport(report models.RunReport) string {
	if len(report.Results) == 0 {
		return "No work items.\n"
	}
	var b strings.Builder
	for _, r := range report.Results {
		label := r.RecipeName + " / " + r.SheetName
		if r.Failed() {
			e := &apperr.Error{Code: r.ErrorCode, Message: r.ErrorMessage, Details: r.ErrorDetails}
			fmt.Fprintf(&b, "%s: ERROR [%s] %s\n", label, r.ErrorCode, apperr.Friendly(e))
		} else {
			fmt.Fprintf(&b, "%s: %d rows written\n", label, r.RowsWritten)
		}
	}
	fmt.Fprintf(&b, "Total: %d rows written\n", report.RowsWritten())
	return b.String()
}
