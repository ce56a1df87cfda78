package output

import (
	"encoding/csv"
	"strings"

	"github.com/rgehrsitz/spv/internal/domain"
)

// CSVFormatter writes one row per report with the headline figures
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (cf CSVFormatter) Format(reports []*Report) ([]byte, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Report ID",
		"Source",
		"Pricing Method",
		"Payment Mode",
		"Amount",
		"Start Date",
		"End Date",
		"Payments",
		"Undiscounted Total",
		"Rate",
		"Min Rate",
		"Max Rate",
		"NPV",
		"Min Offer",
		"Max Offer",
	}
	if err := writer.Write(header); err != nil {
		return nil, err
	}

	for _, r := range reports {
		v := r.Valuation
		row := []string{
			r.ID,
			r.Source,
			v.Result.PricingMethod,
			string(v.Request.PaymentMode),
			v.Request.Amount.StringFixed(2),
			v.Request.StartDate.Format(domain.DateLayout),
			v.Request.EndDate.Format(domain.DateLayout),
			itoa(len(v.Schedule)),
			v.UndiscountedSum.StringFixed(2),
			optRate(v.Rates.Rate),
			optRate(v.Rates.MinRate),
			optRate(v.Rates.MaxRate),
			optFixed(v.Result.NPV),
			optFixed(v.Result.MinOffer),
			optFixed(v.Result.MaxOffer),
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

// FormatScheduleCSV writes the dated cash flows of a schedule
func FormatScheduleCSV(entries []domain.PaymentScheduleEntry) ([]byte, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)
	if err := writer.Write([]string{"Date", "Cash Flow"}); err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err := writer.Write([]string{e.Date.Format(domain.DateLayout), e.CashFlow.StringFixed(2)}); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}
