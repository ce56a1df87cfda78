package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(set *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Variant",
		"Type",
		"Payment Mode",
		"Payments",
		"Undiscounted Sum",
		"Offer",
		"Diff from Base",
		"% Change",
		"Error",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if set.Base != nil {
		if err := writer.Write(cf.formatRow(set.Base, "base")); err != nil {
			return "", err
		}
	}

	for i := range set.Alternatives {
		if err := writer.Write(cf.formatRow(&set.Alternatives[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

func (cf *CSVFormatter) formatRow(r *ComparisonResult, kind string) []string {
	if !r.Valued() {
		return []string{r.Name, kind, "", "", "", "", "", "", r.Error}
	}
	return []string{
		r.Name,
		kind,
		r.PaymentMode,
		strconv.Itoa(r.PaymentCount),
		r.UndiscountedSum.StringFixed(2),
		r.Headline.StringFixed(2),
		r.DiffFromBase.StringFixed(2),
		r.PctFromBase.StringFixed(1),
		"",
	}
}
