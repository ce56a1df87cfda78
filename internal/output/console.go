package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/spv/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleFormatter renders a styled terminal summary
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (cf ConsoleFormatter) Format(reports []*Report) ([]byte, error) {
	var sb strings.Builder
	for i, r := range reports {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(cf.render(r))
		sb.WriteString("\n")
	}
	return []byte(sb.String()), nil
}

func (cf ConsoleFormatter) render(r *Report) string {
	v := r.Valuation
	req := v.Request

	title := "SETTLEMENT VALUATION"
	if r.Source != "" {
		title += " - " + r.Source
	}

	lines := []string{
		TitleStyle.Render(title),
		SubtitleStyle.Render(v.Result.PricingMethod),
		"",
		fmt.Sprintf("Payment:          %s %s", FormatCurrency(req.Amount), req.PaymentMode),
		fmt.Sprintf("Period:           %s to %s", req.StartDate.Format(domain.DateLayout), req.EndDate.Format(domain.DateLayout)),
		fmt.Sprintf("Valuation date:   %s", req.ValuationDate.Format(domain.DateLayout)),
		fmt.Sprintf("Annual increase:  %s%%", req.IncreaseRate.String()),
		fmt.Sprintf("Payments:         %d (undiscounted %s)", len(v.Schedule), FormatCurrency(v.UndiscountedSum)),
	}

	var cards []string
	if v.Result.IsRange() {
		lines = append(lines,
			fmt.Sprintf("Discount rates:   %s (min offer) / %s (max offer)", optPercentage(v.Rates.MinRate), optPercentage(v.Rates.MaxRate)),
			fmt.Sprintf("Amount tier adj:  %s", FormatPercentage(v.Rates.AmountAdjustmentApplied)),
		)
		cards = append(cards,
			metricCard("Minimum offer", optCurrency(v.Result.MinOffer), 24),
			metricCard("Maximum offer", optCurrency(v.Result.MaxOffer), 24),
		)
	} else {
		lines = append(lines,
			fmt.Sprintf("Discount rate:    %s (risk adj %s)", optPercentage(v.Rates.Rate), FormatPercentage(v.Rates.RiskAdjustment)),
		)
		if keys := req.LCPKeys.Sorted(); len(keys) > 0 {
			names := make([]string, len(keys))
			for i, k := range keys {
				names[i] = string(k)
			}
			lines = append(lines, fmt.Sprintf("Risk keys:        %s", strings.Join(names, ", ")))
		}
		cards = append(cards, metricCard("Present value", optCurrency(v.Result.NPV), 24))
	}

	lines = append(lines, "", lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	lines = append(lines, SubtitleStyle.Render("Report "+r.ID))
	return strings.Join(lines, "\n")
}

// RenderSchedule prints a schedule as an aligned table
func RenderSchedule(entries []domain.PaymentScheduleEntry) string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("PAYMENT SCHEDULE") + "\n")
	sb.WriteString(fmt.Sprintf("%-12s %15s\n", "Date", "Cash Flow"))
	sb.WriteString(strings.Repeat("-", 28) + "\n")

	total := decimal.Zero
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("%-12s %15s\n", e.Date.Format(domain.DateLayout), FormatCurrency(e.CashFlow)))
		total = total.Add(e.CashFlow)
	}
	sb.WriteString(strings.Repeat("-", 28) + "\n")
	sb.WriteString(fmt.Sprintf("%-12s %15s\n", fmt.Sprintf("%d payments", len(entries)), FormatCurrency(total)))
	return sb.String()
}

// RenderSensitivity prints a base-rate sweep as a table
func RenderSensitivity(analysis *domain.RateSensitivity) string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("BASE RATE SENSITIVITY") + "\n")
	sb.WriteString(fmt.Sprintf("%-10s %15s %15s %15s\n", "Base Rate", "NPV", "Min Offer", "Max Offer"))
	sb.WriteString(strings.Repeat("-", 58) + "\n")
	for _, p := range analysis.Points {
		sb.WriteString(fmt.Sprintf("%-10s %15s %15s %15s\n",
			FormatPercentage(p.BaseRate),
			optCurrency(p.Result.NPV),
			optCurrency(p.Result.MinOffer),
			optCurrency(p.Result.MaxOffer)))
	}
	sb.WriteString(strings.Repeat("-", 58) + "\n")
	sb.WriteString(fmt.Sprintf("Value range across sweep: %s\n", FormatCurrency(analysis.ValueRange)))
	return sb.String()
}
