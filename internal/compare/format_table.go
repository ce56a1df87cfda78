package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing request variants
func (tf *TableFormatter) Format(set *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("SETTLEMENT OFFER COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	if set.Source != "" {
		sb.WriteString(fmt.Sprintf("Request: %s\n", set.Source))
	}
	sb.WriteString("\n")

	nameWidth := 16
	numWidth := 14

	sb.WriteString(fmt.Sprintf("%-*s %-*s %*s %*s %*s\n",
		nameWidth, "Variant",
		12, "Mode",
		8, "Payments",
		numWidth, "Total Paid",
		numWidth, "Offer"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	if set.Base != nil {
		sb.WriteString(tf.formatRow(set.Base, nameWidth, numWidth))
	}

	if len(set.Alternatives) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for i := range set.Alternatives {
			sb.WriteString(tf.formatRow(&set.Alternatives[i], nameWidth, numWidth))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	if len(set.Alternatives) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, alt := range set.Alternatives {
			if !alt.Valued() {
				continue
			}
			sb.WriteString(fmt.Sprintf("%-*s %s$%s (%s%%)  %s\n",
				nameWidth, alt.Name,
				tf.deltaSymbol(alt.DiffFromBase),
				alt.DiffFromBase.Abs().StringFixed(0),
				alt.PctFromBase.StringFixed(1),
				alt.Description))
		}
	}

	if len(set.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range set.Recommendations {
			sb.WriteString("• " + rec + "\n")
		}
	}

	return sb.String()
}

func (tf *TableFormatter) formatRow(r *ComparisonResult, nameWidth, numWidth int) string {
	if !r.Valued() {
		return fmt.Sprintf("%-*s %s\n", nameWidth, r.Name, "not valued")
	}
	return fmt.Sprintf("%-*s %-*s %*d %*s %*s\n",
		nameWidth, r.Name,
		12, r.PaymentMode,
		8, r.PaymentCount,
		numWidth, "$"+r.UndiscountedSum.StringFixed(0),
		numWidth, "$"+r.Headline.StringFixed(0))
}

func (tf *TableFormatter) deltaSymbol(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-"
	}
	return "+"
}
