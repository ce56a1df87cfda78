package calculation

import (
	"testing"

	"github.com/rgehrsitz/spv/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountAdjustment_Tiers(t *testing.T) {
	rr := NewRateResolver(domain.DefaultPricingTables())
	bounds := domain.Bounds{Min: dec(-0.004), Max: dec(0.006)}

	tests := []struct {
		amount   int64
		expected float64
	}{
		{100, -0.004},
		{999, -0.004},
		{1000, 0.001},
		{4999, 0.001},
		{5000, 0.006},
		{1000000, 0.006},
	}
	for _, tt := range tests {
		adj, err := rr.AmountAdjustment(decimal.NewFromInt(tt.amount), bounds)
		require.NoError(t, err)
		assert.True(t, adj.Equal(dec(tt.expected)), "amount %d: expected %v, got %s", tt.amount, tt.expected, adj)
	}
}

func TestAmountAdjustment_Malformed(t *testing.T) {
	rr := NewRateResolver(domain.DefaultPricingTables())
	var cfgErr *domain.ConfigurationError

	_, err := rr.AmountAdjustment(decimal.NewFromInt(1000), domain.Bounds{Min: dec(0.01), Max: dec(0.005)})
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "amount_adjustment", cfgErr.Table)

	_, err = NewRateResolver(domain.PricingTables{}).AmountAdjustment(decimal.NewFromInt(1000), domain.Bounds{})
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "amount_tiers", cfgErr.Table)
}

func TestGuaranteedRates_Inversion(t *testing.T) {
	req := validRequest(t, nil).Request()

	rates, err := NewRateResolver(domain.DefaultPricingTables()).Guaranteed(req)
	require.NoError(t, err)

	// amount 1000 sits in the 0.5 weight tier: adjustment = 0.0025
	assert.True(t, rates.AmountAdjustmentApplied.Equal(dec(0.0025)))
	assert.True(t, rates.MinRate.Equal(dec(0.1025)), "minRate %s", rates.MinRate)
	assert.True(t, rates.MaxRate.Equal(dec(0.0925)), "maxRate %s", rates.MaxRate)
	assert.True(t, rates.MinRate.GreaterThan(*rates.MaxRate))
	assert.Nil(t, rates.Rate)
}

func TestGuaranteedRates_LargerAmountLowersRates(t *testing.T) {
	rr := NewRateResolver(domain.DefaultPricingTables())
	small, err := rr.Guaranteed(validRequest(t, func(r *domain.RawRequest) { r.Amount = "500" }).Request())
	require.NoError(t, err)
	large, err := rr.Guaranteed(validRequest(t, func(r *domain.RawRequest) { r.Amount = "50000" }).Request())
	require.NoError(t, err)

	assert.True(t, large.MinRate.LessThan(*small.MinRate))
	assert.True(t, large.MaxRate.LessThan(*small.MaxRate))
}

func TestGuaranteedRates_InvertedSpread(t *testing.T) {
	req := validRequest(t, func(r *domain.RawRequest) {
		r.RateSpread = &domain.Bounds{Min: dec(0.03), Max: dec(0.01)}
	}).Request()

	_, err := NewRateResolver(domain.DefaultPricingTables()).Guaranteed(req)
	var cfgErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "rate_spread", cfgErr.Table)
}

func TestGuaranteedRates_MissingBounds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.RawRequest)
		table  string
	}{
		{"no rate spread", func(r *domain.RawRequest) { r.RateSpread = nil }, "rate_spread"},
		{"no amount adjustment", func(r *domain.RawRequest) { r.AmountAdjustment = nil }, "amount_adjustment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(t, tt.mutate).Request()
			_, err := NewRateResolver(domain.DefaultPricingTables()).Guaranteed(req)
			var cfgErr *domain.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.table, cfgErr.Table)
			assert.Equal(t, "missing", cfgErr.Reason)
		})
	}
}

func TestGuaranteedRates_ZeroSpreadIsAccepted(t *testing.T) {
	req := validRequest(t, func(r *domain.RawRequest) {
		r.RateSpread = &domain.Bounds{}
		r.AmountAdjustment = &domain.Bounds{}
	}).Request()

	rates, err := NewRateResolver(domain.DefaultPricingTables()).Guaranteed(req)
	require.NoError(t, err)
	assert.True(t, rates.MinRate.Equal(*rates.MaxRate))
}

func TestLifeContingentRate(t *testing.T) {
	rr := NewRateResolver(domain.DefaultPricingTables())

	rates, err := rr.LifeContingent(dec(0.085), domain.NewKeySet("risk:smoker", "age:55-64"))
	require.NoError(t, err)
	assert.True(t, rates.RiskAdjustment.Equal(dec(0.02)))
	assert.True(t, rates.Rate.Equal(dec(0.105)))
	assert.Nil(t, rates.MinRate)
	assert.Nil(t, rates.MaxRate)
}

func TestLifeContingentRate_EmptyKeysLeaveBaseRate(t *testing.T) {
	rr := NewRateResolver(domain.DefaultPricingTables())

	for _, keys := range []domain.KeySet{nil, domain.NewKeySet()} {
		rates, err := rr.LifeContingent(dec(0.085), keys)
		require.NoError(t, err)
		assert.True(t, rates.Rate.Equal(dec(0.085)))
		assert.True(t, rates.RiskAdjustment.IsZero())
	}
}

func TestLifeContingentRate_UnknownKey(t *testing.T) {
	rr := NewRateResolver(domain.DefaultPricingTables())

	_, err := rr.LifeContingent(dec(0.085), domain.NewKeySet("condition:unknown"))
	var cfgErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "risk_deltas", cfgErr.Table)
	assert.Contains(t, err.Error(), "condition:unknown")
}

func TestLifeContingentRate_MissingTable(t *testing.T) {
	rr := NewRateResolver(domain.PricingTables{})
	_, err := rr.LifeContingent(dec(0.085), nil)
	var cfgErr *domain.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLifeContingentRate_RateFloor(t *testing.T) {
	tables := domain.DefaultPricingTables()
	tables.RiskDeltas["bonus"] = dec(-2)

	_, err := NewRateResolver(tables).LifeContingent(dec(0.085), domain.NewKeySet("bonus"))
	var cfgErr *domain.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}
