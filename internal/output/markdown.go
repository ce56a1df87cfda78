package output

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/spv/internal/domain"
)

// MarkdownFormatter renders reports as a markdown document
type MarkdownFormatter struct{}

func (MarkdownFormatter) Name() string { return "markdown" }

func (mf MarkdownFormatter) Format(reports []*Report) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("# Settlement Valuation\n\n")

	for _, r := range reports {
		v := r.Valuation
		req := v.Request

		title := r.Source
		if title == "" {
			title = r.ID
		}
		sb.WriteString(fmt.Sprintf("## %s\n\n", title))
		sb.WriteString(fmt.Sprintf("_Report %s generated %s_\n\n", r.ID, r.GeneratedAt.Format("2006-01-02 15:04 MST")))

		sb.WriteString("| Term | Value |\n|---|---|\n")
		sb.WriteString(fmt.Sprintf("| Payment | %s %s |\n", FormatCurrency(req.Amount), req.PaymentMode))
		sb.WriteString(fmt.Sprintf("| Period | %s to %s |\n", req.StartDate.Format(domain.DateLayout), req.EndDate.Format(domain.DateLayout)))
		sb.WriteString(fmt.Sprintf("| Valuation date | %s |\n", req.ValuationDate.Format(domain.DateLayout)))
		sb.WriteString(fmt.Sprintf("| Annual increase | %s%% |\n", req.IncreaseRate.String()))
		sb.WriteString(fmt.Sprintf("| Payments | %d |\n", len(v.Schedule)))
		sb.WriteString(fmt.Sprintf("| Undiscounted total | %s |\n", FormatCurrency(v.UndiscountedSum)))
		if v.Rates.Rate != nil {
			sb.WriteString(fmt.Sprintf("| Discount rate | %s |\n", FormatPercentage(*v.Rates.Rate)))
			if keys := req.LCPKeys.Sorted(); len(keys) > 0 {
				names := make([]string, len(keys))
				for i, k := range keys {
					names[i] = "`" + string(k) + "`"
				}
				sb.WriteString(fmt.Sprintf("| Risk keys | %s |\n", strings.Join(names, ", ")))
			}
		} else {
			sb.WriteString(fmt.Sprintf("| Discount rates | %s / %s |\n", optPercentage(v.Rates.MinRate), optPercentage(v.Rates.MaxRate)))
		}
		sb.WriteString("\n")

		sb.WriteString(fmt.Sprintf("**%s**\n\n", v.Result.PricingMethod))
		if v.Result.IsRange() {
			sb.WriteString(fmt.Sprintf("- Minimum offer: **%s**\n", optCurrency(v.Result.MinOffer)))
			sb.WriteString(fmt.Sprintf("- Maximum offer: **%s**\n\n", optCurrency(v.Result.MaxOffer)))
		} else {
			sb.WriteString(fmt.Sprintf("- Present value: **%s**\n\n", optCurrency(v.Result.NPV)))
		}
	}

	return []byte(sb.String()), nil
}
