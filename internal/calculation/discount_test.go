package calculation

import (
	"testing"

	"github.com/rgehrsitz/spv/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestYearFraction(t *testing.T) {
	v := date("2025-01-01")
	assert.Equal(t, 0.0, YearFraction(v, v))
	assert.Equal(t, 0.0, YearFraction(v, date("2024-12-01")))
	assert.InDelta(t, 365.0/365.25, YearFraction(v, date("2026-01-01")), 1e-12)
	assert.InDelta(t, 1461.0/365.25, YearFraction(v, date("2029-01-01")), 1e-12)
}

func TestYearFraction_BeyondDurationRange(t *testing.T) {
	v := date("2025-01-01")
	// 136965 days, past what a time.Duration can hold
	assert.InDelta(t, 136965.0/365.25, YearFraction(v, date("2400-01-01")), 1e-9)
	assert.Greater(t, YearFraction(v, date("2400-01-01")), YearFraction(v, date("2300-01-01")))
}

func TestDiscountFactor(t *testing.T) {
	assert.True(t, DiscountFactor(dec(0.1), 0).Equal(decimal.NewFromInt(1)))
	assert.True(t, DiscountFactor(dec(0.1), -2).Equal(decimal.NewFromInt(1)))
	assert.InDelta(t, 1/1.1, DiscountFactor(dec(0.1), 1).InexactFloat64(), 1e-12)
	assert.InDelta(t, 1/1.21, DiscountFactor(dec(0.1), 2).InexactFloat64(), 1e-12)
	assert.True(t, DiscountFactor(decimal.Zero, 5).Equal(decimal.NewFromInt(1)))
}

func TestPresentValue_ZeroRateEqualsTotal(t *testing.T) {
	s := GenerateSchedule(date("2025-01-01"), date("2030-01-01"), domain.PaymentModeMonthly, dec(2), decimal.NewFromInt(750))
	pv := PresentValue(s.All(), decimal.Zero, date("2025-01-01"))
	assert.True(t, pv.Equal(s.Total()), "pv %s total %s", pv, s.Total())
}

func TestPresentValue_ScenarioA(t *testing.T) {
	s := GenerateSchedule(date("2025-01-01"), date("2026-01-01"), domain.PaymentModeMonthly, decimal.Zero, decimal.NewFromInt(1000))
	valuationDate := date("2025-01-01")

	pvBase := PresentValue(s.All(), dec(0.085), valuationDate)
	pvHigh := PresentValue(s.All(), dec(0.12), valuationDate)

	assert.True(t, pvBase.LessThan(s.Total()))
	assert.True(t, pvBase.GreaterThan(pvHigh))

	// Twelve flows ending a month before the anniversary
	twelve := GenerateSchedule(date("2025-01-01"), date("2025-12-01"), domain.PaymentModeMonthly, decimal.Zero, decimal.NewFromInt(1000))
	assert.Equal(t, 12, twelve.Len())
	pv12 := PresentValue(twelve.All(), dec(0.085), valuationDate)
	assert.True(t, pv12.LessThan(decimal.NewFromInt(12000)))
	assert.True(t, pv12.GreaterThan(PresentValue(twelve.All(), dec(0.12), valuationDate)))
}

func TestPresentValue_PastEntriesCountInFull(t *testing.T) {
	s := GenerateSchedule(date("2025-01-01"), date("2025-06-01"), domain.PaymentModeMonthly, decimal.Zero, decimal.NewFromInt(1000))
	pv := PresentValue(s.All(), dec(0.5), date("2025-06-01"))
	assert.True(t, pv.Equal(decimal.NewFromInt(6000)))
}

func TestPresentValue_BoundedByTotal(t *testing.T) {
	for _, mode := range domain.PaymentModes {
		s := GenerateSchedule(date("2025-01-01"), date("2040-01-01"), mode, dec(4), decimal.NewFromInt(1200))
		for _, rate := range []float64{0.01, 0.05, 0.085, 0.2} {
			pv := PresentValue(s.All(), dec(rate), date("2025-01-01"))
			assert.True(t, pv.LessThanOrEqual(s.Total()), "%s at %v", mode, rate)
		}
	}
}

func TestPresentValue_DoesNotMutateSchedule(t *testing.T) {
	s := GenerateSchedule(date("2025-01-01"), date("2027-01-01"), domain.PaymentModeQuarterly, dec(3), decimal.NewFromInt(1000))
	before := s.Entries()
	_ = PresentValue(s.All(), dec(0.09), date("2025-01-01"))
	assert.Equal(t, before, s.Entries())
}
