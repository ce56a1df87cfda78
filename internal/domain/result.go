package domain

import "github.com/shopspring/decimal"

// Pricing method labels attached to every result
const (
	PricingMethodLifeContingent = "Life Contingent with Profile Adjustments"
	PricingMethodGuaranteed     = "Professional Min/Max Range"
)

// ValuationResult is the final offer. Guaranteed results carry MinOffer and
// MaxOffer; life-contingent results carry NPV only.
type ValuationResult struct {
	NPV           *decimal.Decimal `json:"npv,omitempty"`
	MinOffer      *decimal.Decimal `json:"minOffer,omitempty"`
	MaxOffer      *decimal.Decimal `json:"maxOffer,omitempty"`
	PricingMethod string           `json:"pricingMethod"`
}

// IsRange reports whether the result is a guaranteed min/max range
func (r ValuationResult) IsRange() bool {
	return r.MinOffer != nil && r.MaxOffer != nil
}

// ResolvedRates holds the discount rate(s) the resolver produced for a request
type ResolvedRates struct {
	Rate                    *decimal.Decimal `json:"rate,omitempty"`
	MinRate                 *decimal.Decimal `json:"minRate,omitempty"`
	MaxRate                 *decimal.Decimal `json:"maxRate,omitempty"`
	AmountAdjustmentApplied decimal.Decimal  `json:"amountAdjustmentApplied"`
	RiskAdjustment          decimal.Decimal  `json:"riskAdjustment"`
}

// Valuation is a result together with the intermediate values that produced it
type Valuation struct {
	Request         ValuationRequest       `json:"request"`
	Schedule        []PaymentScheduleEntry `json:"schedule"`
	Rates           ResolvedRates          `json:"rates"`
	UndiscountedSum decimal.Decimal        `json:"undiscountedSum"`
	PresentValue    *decimal.Decimal       `json:"presentValue,omitempty"`
	MinPresentValue *decimal.Decimal       `json:"minPresentValue,omitempty"`
	MaxPresentValue *decimal.Decimal       `json:"maxPresentValue,omitempty"`
	Result          ValuationResult        `json:"result"`
}
