package main

import (
	"fmt"

	"github.com/rgehrsitz/spv/internal/breakeven"
	"github.com/rgehrsitz/spv/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var impliedRateCmd = &cobra.Command{
	Use:   "implied-rate [request-file]",
	Short: "Find the discount rate at which a payment stream is worth a target amount",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		targetStr, _ := cmd.Flags().GetString("target")
		target, err := decimal.NewFromString(targetStr)
		if err != nil {
			return fmt.Errorf("invalid --target %q: %w", targetStr, err)
		}

		valid, err := loadValidRequest(cmd, args[0])
		if err != nil {
			return err
		}

		opts := breakeven.DefaultSolverOptions()
		if s, _ := cmd.Flags().GetString("max-rate"); s != "" {
			if opts.MaxRate, err = decimal.NewFromString(s); err != nil {
				return fmt.Errorf("invalid --max-rate %q: %w", s, err)
			}
		}

		result, err := breakeven.NewSolver(opts).ImpliedRateForRequest(cmd.Context(), valid, target)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			data, err := output.MarshalJSON(result)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(data, '\n'))
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "IMPLIED DISCOUNT RATE")
		fmt.Fprintln(out, "=====================")
		fmt.Fprintf(out, "Target Value:   %s\n", output.FormatCurrency(result.TargetValue))
		fmt.Fprintf(out, "Implied Rate:   %s\n", output.FormatPercentage(result.Rate))
		fmt.Fprintf(out, "Present Value:  %s\n", output.FormatCurrency(result.PresentValue))
		fmt.Fprintf(out, "%s\n", result.ConvergenceInfo)
		return nil
	},
}

func init() {
	impliedRateCmd.Flags().String("target", "", "Target present value (required)")
	impliedRateCmd.Flags().String("max-rate", "", "Upper end of the rate search (default 0.5)")
	impliedRateCmd.Flags().Bool("json", false, "Print the result as JSON")
	_ = impliedRateCmd.MarkFlagRequired("target")

	rootCmd.AddCommand(impliedRateCmd)
}
