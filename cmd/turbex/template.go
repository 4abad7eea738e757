package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/project"
	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/templates"
)

var (
	tplSourceIndex int
	tplOut         string
	tplAsDefault   bool
	tplFrom        string
)

func templateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Export and apply source recipe templates",
	}
	cmd.AddCommand(templateExportCmd(), templateApplyCmd(), templateResetCmd())
	return cmd
}

func templateExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [project.json]",
		Short: "Capture a source's recipes as a template",
		Args:  cobra.ExactArgs(1),
		RunE:  runTemplateExport,
	}
	cmd.Flags().IntVar(&tplSourceIndex, "source", 0, "Index of the source to capture")
	cmd.Flags().StringVar(&tplOut, "out", "", "Template file to write")
	cmd.Flags().BoolVar(&tplAsDefault, "as-default", false, "Also save as the default template for new sources")
	return cmd
}

func runTemplateExport(cmd *cobra.Command, args []string) error {
	cfg, err := project.Load(args[0])
	if err != nil {
		return err
	}
	if tplSourceIndex < 0 || tplSourceIndex >= len(cfg.Sources) {
		return fmt.Errorf("source index %d out of range (project has %d sources)", tplSourceIndex, len(cfg.Sources))
	}
	tpl, err := templates.FromSource(cfg.Sources[tplSourceIndex])
	if err != nil {
		return err
	}
	if tplOut == "" && !tplAsDefault {
		return fmt.Errorf("nothing to do: pass --out and/or --as-default")
	}
	if tplOut != "" {
		if err := templates.Save(tpl, tplOut); err != nil {
			return err
		}
		fmt.Printf("Template written to %s\n", tplOut)
	}
	if tplAsDefault {
		path, err := templates.SetDefault(tpl, "")
		if err != nil {
			return err
		}
		fmt.Printf("Default template saved to %s\n", path)
	}
	return nil
}

func templateApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply [project.json]",
		Short: "Apply a template's recipes to a source, replacing its current recipes",
		Args:  cobra.ExactArgs(1),
		RunE:  runTemplateApply,
	}
	cmd.Flags().IntVar(&tplSourceIndex, "source", 0, "Index of the source to apply onto")
	cmd.Flags().StringVar(&tplFrom, "from", "", "Template file to apply (default: the saved default template)")
	return cmd
}

func runTemplateApply(cmd *cobra.Command, args []string) error {
	cfg, err := project.Load(args[0])
	if err != nil {
		return err
	}
	if tplSourceIndex < 0 || tplSourceIndex >= len(cfg.Sources) {
		return fmt.Errorf("source index %d out of range (project has %d sources)", tplSourceIndex, len(cfg.Sources))
	}

	var tpl templates.Template
	if tplFrom != "" {
		tpl, err = templates.Load(tplFrom)
		if err != nil {
			return err
		}
	} else {
		def, err := templates.LoadDefault("")
		if err != nil {
			return err
		}
		if def == nil {
			return fmt.Errorf("no default template set; pass --from or export one with --as-default")
		}
		tpl = *def
	}

	if err := templates.ApplyToSource(&cfg.Sources[tplSourceIndex], tpl); err != nil {
		return err
	}
	if err := project.SaveAtomic(cfg, args[0]); err != nil {
		return err
	}
	fmt.Printf("Applied %d recipes to source %d\n", len(tpl.Recipes), tplSourceIndex)
	return nil
}

func templateResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-default",
		Short: "Remove the saved default template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := templates.ResetDefault(""); err != nil {
				return err
			}
			fmt.Println("Default template removed")
			return nil
		},
	}
}
