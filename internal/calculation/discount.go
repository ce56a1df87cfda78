package calculation

import (
	"iter"
	"math"
	"time"

	"github.com/rgehrsitz/spv/internal/domain"
	"github.com/shopspring/decimal"
)

// DaysPerYear is the Actual/365.25 day count denominator
const DaysPerYear = 365.25

const secondsPerDay = 24 * 60 * 60

// YearFraction returns the time from valuationDate to date in years.
// Dates on or before the valuation date give 0.
func YearFraction(valuationDate, date time.Time) float64 {
	// Unix seconds rather than Sub: time.Duration saturates at about 292 years
	days := float64(date.Unix()-valuationDate.Unix()) / secondsPerDay
	if days <= 0 {
		return 0
	}
	return days / DaysPerYear
}

// DiscountFactor returns 1 / (1 + rate)^years with annual compounding
func DiscountFactor(rate decimal.Decimal, years float64) decimal.Decimal {
	if years <= 0 {
		return decimal.NewFromInt(1)
	}
	return decimal.NewFromFloat(math.Pow(1+rate.InexactFloat64(), -years))
}

// PresentValue discounts every entry to valuationDate and sums the results.
// Entries dated on or before the valuation date count at full value.
func PresentValue(entries iter.Seq[domain.PaymentScheduleEntry], rate decimal.Decimal, valuationDate time.Time) decimal.Decimal {
	pv := decimal.Zero
	for e := range entries {
		pv = pv.Add(e.CashFlow.Mul(DiscountFactor(rate, YearFraction(valuationDate, e.Date))))
	}
	return pv
}
