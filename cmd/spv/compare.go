package main

import (
	"fmt"

	"github.com/rgehrsitz/spv/internal/compare"
	"github.com/rgehrsitz/spv/internal/transform"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare [request-file]",
	Short: "Compare the offer for a request against restructured variants",
	Long: `Value a request and a set of template variants of it, such as a
different payment mode or a shorter term, and show how each changes the offer.

Examples:
  spv compare request.yaml --with quarterly,annual,lump_sum
  spv compare request.yaml --with extend_1yr,no_increase --format csv
  spv compare --list-templates`,
	Args: func(cmd *cobra.Command, args []string) error {
		if list, _ := cmd.Flags().GetBool("list-templates"); list {
			return nil
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().String("with", "quarterly,annual,lump_sum", "Comma-separated template names")
	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	compareCmd.Flags().Bool("list-templates", false, "List available templates and exit")
	compareCmd.Flags().String("tables", "", "Pricing tables YAML file")
	compareCmd.Flags().String("profile", "", "Health profile YAML file; prices the request as life-contingent")
	compareCmd.Flags().String("base-rate", "", "Override the request's base rate")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if list, _ := cmd.Flags().GetBool("list-templates"); list {
		fmt.Fprint(out, transform.GetTemplateHelp(transform.CreateBuiltInTemplates()))
		return nil
	}

	raw, err := loadRawRequest(cmd, args[0])
	if err != nil {
		return err
	}
	engine, err := newEngine(cmd)
	if err != nil {
		return err
	}

	with, _ := cmd.Flags().GetString("with")
	set, err := compare.NewCompareEngine(engine).Compare(cmd.Context(), *raw, compare.CompareOptions{
		Source:    args[0],
		Templates: transform.ParseTemplateList(with),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	format, _ := cmd.Flags().GetString("format")
	var rendered string
	switch format {
	case "table", "console":
		rendered = (&compare.TableFormatter{}).Format(set)
	case "csv":
		rendered, err = (&compare.CSVFormatter{}).Format(set)
	case "json":
		rendered, err = (&compare.JSONFormatter{Pretty: true}).Format(set)
	default:
		return fmt.Errorf("unsupported format %q (table, csv, json)", format)
	}
	if err != nil {
		return fmt.Errorf("formatting comparison: %w", err)
	}

	fmt.Fprint(out, rendered)
	return nil
}
