package main

import (
	"fmt"

	"github.com/rgehrsitz/spv/internal/calculation"
	"github.com/rgehrsitz/spv/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity [request-file]",
	Short: "Show how the offer moves across a range of base rates",
	Long: `Value one request at evenly spaced base rates.

Examples:
  spv sensitivity request.yaml
  spv sensitivity request.yaml --min 0.06 --max 0.11 --steps 6 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runSensitivityAnalysis,
}

var (
	sensitivityMin    string
	sensitivityMax    string
	sensitivitySteps  int
	sensitivityFormat string
)

func init() {
	sensitivityCmd.Flags().StringVar(&sensitivityMin, "min", "0.05", "Lowest base rate")
	sensitivityCmd.Flags().StringVar(&sensitivityMax, "max", "0.12", "Highest base rate")
	sensitivityCmd.Flags().IntVar(&sensitivitySteps, "steps", 8, "Number of base rates to evaluate")
	sensitivityCmd.Flags().StringVarP(&sensitivityFormat, "format", "f", "table", "Output format (table, json)")
	sensitivityCmd.Flags().String("tables", "", "Pricing tables YAML file")
	sensitivityCmd.Flags().String("profile", "", "Health profile YAML file; prices the request as life-contingent")

	rootCmd.AddCommand(sensitivityCmd)
}

func runSensitivityAnalysis(cmd *cobra.Command, args []string) error {
	minRate, err := decimal.NewFromString(sensitivityMin)
	if err != nil {
		return fmt.Errorf("invalid --min %q: %w", sensitivityMin, err)
	}
	maxRate, err := decimal.NewFromString(sensitivityMax)
	if err != nil {
		return fmt.Errorf("invalid --max %q: %w", sensitivityMax, err)
	}

	valid, err := loadValidRequest(cmd, args[0])
	if err != nil {
		return err
	}
	engine, err := newEngine(cmd)
	if err != nil {
		return err
	}

	analysis, err := calculation.NewSensitivityAnalyzer(engine).SweepBaseRate(valid, minRate, maxRate, sensitivitySteps)
	if err != nil {
		return err
	}

	switch sensitivityFormat {
	case "json":
		data, err := output.MarshalJSON(analysis)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(append(data, '\n'))
		return err
	case "table", "console":
		fmt.Fprint(cmd.OutOrStdout(), output.RenderSensitivity(analysis))
		return nil
	default:
		return fmt.Errorf("unknown output format %q (valid: table, json)", sensitivityFormat)
	}
}
