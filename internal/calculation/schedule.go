package calculation

import (
	"iter"
	"time"

	"github.com/rgehrsitz/spv/internal/domain"
	"github.com/shopspring/decimal"
)

// Schedule is the dated cash flow stream of a settlement. It is a value
// describing the stream, not the entries themselves; entries are produced
// on demand and the sequence can be walked any number of times.
type Schedule struct {
	Start        time.Time
	End          time.Time
	Mode         domain.PaymentMode
	IncreaseRate decimal.Decimal // percent, compounded once per 12 elapsed months
	PeriodAmount decimal.Decimal
}

// GenerateSchedule describes the payment stream for the given terms
func GenerateSchedule(start, end time.Time, mode domain.PaymentMode, increaseRate, periodAmount decimal.Decimal) Schedule {
	return Schedule{
		Start:        start,
		End:          end,
		Mode:         mode,
		IncreaseRate: increaseRate,
		PeriodAmount: periodAmount,
	}
}

// ScheduleFor describes the payment stream of a request
func ScheduleFor(req domain.ValuationRequest) Schedule {
	return GenerateSchedule(req.StartDate, req.EndDate, req.PaymentMode, req.IncreaseRate, req.Amount)
}

// All yields the entries in ascending date order
func (s Schedule) All() iter.Seq[domain.PaymentScheduleEntry] {
	return func(yield func(domain.PaymentScheduleEntry) bool) {
		step := s.Mode.MonthsPerPeriod()
		if step == 0 {
			yield(domain.PaymentScheduleEntry{Date: s.Start, CashFlow: s.PeriodAmount})
			return
		}

		growth := decimal.NewFromInt(1).Add(s.IncreaseRate.Div(decimal.NewFromInt(100)))
		factor := decimal.NewFromInt(1)
		year := 0
		for months := 0; ; months += step {
			date := domain.AddMonths(s.Start, months)
			if date.After(s.End) {
				return
			}
			if y := months / 12; y != year {
				year = y
				factor = growth.Pow(decimal.NewFromInt(int64(year)))
			}
			if !yield(domain.PaymentScheduleEntry{Date: date, CashFlow: s.PeriodAmount.Mul(factor)}) {
				return
			}
		}
	}
}

// Entries collects the schedule into a slice
func (s Schedule) Entries() []domain.PaymentScheduleEntry {
	var entries []domain.PaymentScheduleEntry
	for e := range s.All() {
		entries = append(entries, e)
	}
	return entries
}

// Len returns the number of entries
func (s Schedule) Len() int {
	n := 0
	for range s.All() {
		n++
	}
	return n
}

// Total returns the undiscounted sum of all cash flows
func (s Schedule) Total() decimal.Decimal {
	total := decimal.Zero
	for e := range s.All() {
		total = total.Add(e.CashFlow)
	}
	return total
}
