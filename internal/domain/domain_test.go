package domain

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	return mustDate(s)
}

func TestParsePaymentMode(t *testing.T) {
	for _, m := range PaymentModes {
		got, err := ParsePaymentMode(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := ParsePaymentMode(" monthly ")
	require.NoError(t, err)
	assert.Equal(t, PaymentModeMonthly, got)

	_, err = ParsePaymentMode("Weekly")
	assert.Error(t, err)
}

func TestMonthsPerPeriod(t *testing.T) {
	assert.Equal(t, 1, PaymentModeMonthly.MonthsPerPeriod())
	assert.Equal(t, 3, PaymentModeQuarterly.MonthsPerPeriod())
	assert.Equal(t, 6, PaymentModeSemiannually.MonthsPerPeriod())
	assert.Equal(t, 12, PaymentModeAnnually.MonthsPerPeriod())
	assert.Equal(t, 0, PaymentModeLumpSum.MonthsPerPeriod())
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		start    string
		months   int
		expected string
	}{
		{"2025-01-01", 1, "2025-02-01"},
		{"2025-01-31", 1, "2025-02-28"},
		{"2024-01-31", 1, "2024-02-29"},
		{"2025-08-31", 6, "2026-02-28"},
		{"2025-11-15", 3, "2026-02-15"},
		{"2025-03-31", 12, "2026-03-31"},
	}
	for _, tt := range tests {
		t.Run(tt.start, func(t *testing.T) {
			assert.Equal(t, date(tt.expected), AddMonths(date(tt.start), tt.months))
		})
	}
}

func TestWholeMonthsBetween(t *testing.T) {
	assert.Equal(t, 6, WholeMonthsBetween(date("2025-01-01"), date("2025-07-01")))
	assert.Equal(t, 5, WholeMonthsBetween(date("2025-01-01"), date("2025-06-30")))
	assert.Equal(t, 5, WholeMonthsBetween(date("2025-01-15"), date("2025-06-15")))
	assert.Equal(t, 6, WholeMonthsBetween(date("2025-08-31"), date("2026-02-28")))
	assert.Equal(t, 12, WholeMonthsBetween(date("2025-01-01"), date("2026-01-01")))
}

func TestKeySet(t *testing.T) {
	s := NewKeySet("risk:smoker", "age:55-64")
	assert.True(t, s.Has("risk:smoker"))
	assert.False(t, s.Has("condition:cancer"))
	assert.Equal(t, []RiskAdjustmentKey{"age:55-64", "risk:smoker"}, s.Sorted())

	c := s.Clone()
	c.Add("condition:cancer")
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 3, c.Len())

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `["age:55-64","risk:smoker"]`, string(data))
}

func TestPricingTablesValidate(t *testing.T) {
	assert.NoError(t, DefaultPricingTables().Validate())

	var cfgErr *ConfigurationError

	empty := PricingTables{RiskDeltas: RiskDeltas{}}
	assert.ErrorAs(t, empty.Validate(), &cfgErr)
	assert.Equal(t, "amount_tiers", cfgErr.Table)

	badWeight := DefaultPricingTables()
	badWeight.AmountTiers[1].Weight = decimal.NewFromFloat(1.5)
	assert.ErrorAs(t, badWeight.Validate(), &cfgErr)

	gap := DefaultPricingTables()
	gap.AmountTiers = []AmountTier{{MinAmount: decimal.NewFromInt(500), Weight: decimal.Zero}}
	assert.ErrorAs(t, gap.Validate(), &cfgErr)

	noDeltas := DefaultPricingTables()
	noDeltas.RiskDeltas = nil
	assert.ErrorAs(t, noDeltas.Validate(), &cfgErr)
	assert.Equal(t, "risk_deltas", cfgErr.Table)
}

func TestTierWeight(t *testing.T) {
	tables := DefaultPricingTables()

	w, ok := tables.TierWeight(decimal.NewFromInt(500))
	assert.True(t, ok)
	assert.True(t, w.IsZero())

	w, ok = tables.TierWeight(decimal.NewFromInt(1000))
	assert.True(t, ok)
	assert.True(t, w.Equal(decimal.NewFromFloat(0.5)))

	w, ok = tables.TierWeight(decimal.NewFromInt(250000))
	assert.True(t, ok)
	assert.True(t, w.Equal(decimal.NewFromInt(1)))

	_, ok = PricingTables{}.TierWeight(decimal.NewFromInt(500))
	assert.False(t, ok)
}

func TestValidationErrorMessage(t *testing.T) {
	verr := &ValidationError{}
	verr.Add("amount", InvalidAmount, "must be between 100 and 1000000")
	verr.Add("endDate", InvalidEndDate, "must be at least 6 months after start date")

	assert.True(t, verr.Has("amount"))
	assert.False(t, verr.Has("startDate"))
	assert.Contains(t, verr.Error(), "amount: must be between")
	assert.Contains(t, verr.Error(), "endDate: must be at least")
}
