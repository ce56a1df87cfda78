package calculation

import (
	"fmt"

	"github.com/rgehrsitz/spv/internal/domain"
	"github.com/shopspring/decimal"
)

// RateResolver turns a request into effective annual discount rates using
// injected pricing tables. It never modifies the tables.
type RateResolver struct {
	Tables domain.PricingTables
}

// NewRateResolver creates a resolver over the given tables
func NewRateResolver(tables domain.PricingTables) *RateResolver {
	return &RateResolver{Tables: tables}
}

// AmountAdjustment returns the rate offset applied for the request's amount
// tier: min + weight × (max − min). Larger amounts sit in higher-weight tiers
// and so receive a larger reduction.
func (rr *RateResolver) AmountAdjustment(amount decimal.Decimal, bounds domain.Bounds) (decimal.Decimal, error) {
	if bounds.Min.GreaterThan(bounds.Max) {
		return decimal.Zero, &domain.ConfigurationError{
			Table:  "amount_adjustment",
			Reason: fmt.Sprintf("min %s exceeds max %s", bounds.Min, bounds.Max),
		}
	}
	weight, ok := rr.Tables.TierWeight(amount)
	if !ok {
		return decimal.Zero, &domain.ConfigurationError{
			Table:  "amount_tiers",
			Reason: fmt.Sprintf("no tier covers amount %s", amount),
		}
	}
	return bounds.Min.Add(weight.Mul(bounds.Max.Sub(bounds.Min))), nil
}

// Guaranteed returns the rate pair for a guaranteed range. The minimum offer
// is priced at the higher rate:
//
//	minRate = base + spread.max − adjustment
//	maxRate = base + spread.min − adjustment
func (rr *RateResolver) Guaranteed(req domain.ValuationRequest) (domain.ResolvedRates, error) {
	if req.RateSpread == nil {
		return domain.ResolvedRates{}, &domain.ConfigurationError{Table: "rate_spread", Reason: "missing"}
	}
	if req.AmountAdjustment == nil {
		return domain.ResolvedRates{}, &domain.ConfigurationError{Table: "amount_adjustment", Reason: "missing"}
	}

	spread := *req.RateSpread
	if spread.Min.GreaterThan(spread.Max) {
		return domain.ResolvedRates{}, &domain.ConfigurationError{
			Table:  "rate_spread",
			Reason: fmt.Sprintf("min %s exceeds max %s", spread.Min, spread.Max),
		}
	}

	adj, err := rr.AmountAdjustment(req.Amount, *req.AmountAdjustment)
	if err != nil {
		return domain.ResolvedRates{}, err
	}

	minRate := req.BaseRate.Add(spread.Max).Sub(adj)
	maxRate := req.BaseRate.Add(spread.Min).Sub(adj)
	if err := checkRate(maxRate, "rate_spread"); err != nil {
		return domain.ResolvedRates{}, err
	}

	return domain.ResolvedRates{
		MinRate:                 &minRate,
		MaxRate:                 &maxRate,
		AmountAdjustmentApplied: adj,
	}, nil
}

// LifeContingent returns the single profile-adjusted rate: the base rate plus
// the sum of each key's delta. Every key must have a delta entry.
func (rr *RateResolver) LifeContingent(baseRate decimal.Decimal, keys domain.KeySet) (domain.ResolvedRates, error) {
	if rr.Tables.RiskDeltas == nil {
		return domain.ResolvedRates{}, &domain.ConfigurationError{Table: "risk_deltas", Reason: "table is missing"}
	}

	delta := decimal.Zero
	for k := range keys {
		d, ok := rr.Tables.RiskDeltas[k]
		if !ok {
			return domain.ResolvedRates{}, &domain.ConfigurationError{
				Table:  "risk_deltas",
				Reason: fmt.Sprintf("no delta for risk key %q", k),
			}
		}
		delta = delta.Add(d)
	}

	rate := baseRate.Add(delta)
	if err := checkRate(rate, "risk_deltas"); err != nil {
		return domain.ResolvedRates{}, err
	}
	return domain.ResolvedRates{Rate: &rate, RiskAdjustment: delta}, nil
}

// rates at or below -100% have no discount factor
func checkRate(rate decimal.Decimal, table string) error {
	if rate.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return &domain.ConfigurationError{
			Table:  table,
			Reason: fmt.Sprintf("resolved rate %s is not above -1", rate),
		}
	}
	return nil
}
