package domain

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// AmountTier selects how much of the request's amount adjustment applies.
// The applied adjustment for an amount in this tier is
// min + Weight × (max − min).
type AmountTier struct {
	MinAmount decimal.Decimal `yaml:"min_amount" json:"minAmount"`
	Weight    decimal.Decimal `yaml:"weight" json:"weight"`
}

// PricingTables are the read-only lookup tables injected into the engine
type PricingTables struct {
	AmountTiers []AmountTier `yaml:"amount_tiers" json:"amountTiers"`
	RiskDeltas  RiskDeltas   `yaml:"risk_deltas" json:"riskDeltas"`
}

// DefaultPricingTables returns a synthetic table set. Production deployments
// are expected to load their own.
func DefaultPricingTables() PricingTables {
	return PricingTables{
		AmountTiers: []AmountTier{
			{MinAmount: decimal.NewFromInt(0), Weight: decimal.Zero},
			{MinAmount: decimal.NewFromInt(1000), Weight: decimal.NewFromFloat(0.5)},
			{MinAmount: decimal.NewFromInt(5000), Weight: decimal.NewFromInt(1)},
		},
		RiskDeltas: RiskDeltas{
			"age:18-34":              decimal.NewFromFloat(-0.0050),
			"age:35-44":              decimal.NewFromFloat(-0.0025),
			"age:45-54":              decimal.Zero,
			"age:55-64":              decimal.NewFromFloat(0.0050),
			"age:65-74":              decimal.NewFromFloat(0.0100),
			"age:75+":                decimal.NewFromFloat(0.0200),
			"sex:male":               decimal.NewFromFloat(0.0025),
			"sex:female":             decimal.Zero,
			"risk:smoker":            decimal.NewFromFloat(0.0150),
			"risk:former-smoker":     decimal.NewFromFloat(0.0050),
			"condition:cancer":       decimal.NewFromFloat(0.0300),
			"condition:heart":        decimal.NewFromFloat(0.0200),
			"condition:diabetes":     decimal.NewFromFloat(0.0100),
			"condition:copd":         decimal.NewFromFloat(0.0150),
			"condition:kidney":       decimal.NewFromFloat(0.0150),
			"condition:stroke":       decimal.NewFromFloat(0.0150),
			"condition:hypertension": decimal.NewFromFloat(0.0050),
		},
	}
}

// Validate checks the tables for missing or malformed entries
func (t PricingTables) Validate() error {
	if len(t.AmountTiers) == 0 {
		return &ConfigurationError{Table: "amount_tiers", Reason: "no tiers defined"}
	}
	lowest := t.AmountTiers[0].MinAmount
	seen := make(map[string]bool, len(t.AmountTiers))
	for i, tier := range t.AmountTiers {
		if tier.Weight.LessThan(decimal.Zero) || tier.Weight.GreaterThan(decimal.NewFromInt(1)) {
			return &ConfigurationError{
				Table:  "amount_tiers",
				Reason: fmt.Sprintf("tier %d weight must be between 0 and 1, got %s", i, tier.Weight),
			}
		}
		key := tier.MinAmount.String()
		if seen[key] {
			return &ConfigurationError{Table: "amount_tiers", Reason: fmt.Sprintf("duplicate tier boundary %s", key)}
		}
		seen[key] = true
		if tier.MinAmount.LessThan(lowest) {
			lowest = tier.MinAmount
		}
	}
	if lowest.GreaterThan(decimal.NewFromInt(MinAmount)) {
		return &ConfigurationError{
			Table:  "amount_tiers",
			Reason: fmt.Sprintf("lowest tier starts at %s, amounts down to %d must be covered", lowest, MinAmount),
		}
	}
	if t.RiskDeltas == nil {
		return &ConfigurationError{Table: "risk_deltas", Reason: "table is missing"}
	}
	return nil
}

// TierWeight returns the weight of the highest tier whose boundary is at or
// below amount. ok is false when no tier covers the amount.
func (t PricingTables) TierWeight(amount decimal.Decimal) (weight decimal.Decimal, ok bool) {
	tiers := make([]AmountTier, len(t.AmountTiers))
	copy(tiers, t.AmountTiers)
	sort.Slice(tiers, func(i, j int) bool {
		return tiers[i].MinAmount.LessThan(tiers[j].MinAmount)
	})
	for _, tier := range tiers {
		if tier.MinAmount.GreaterThan(amount) {
			break
		}
		weight, ok = tier.Weight, true
	}
	return weight, ok
}
