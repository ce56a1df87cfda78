package domain

import "github.com/shopspring/decimal"

// RateSensitivityPoint is the outcome of pricing a request at one base rate
type RateSensitivityPoint struct {
	BaseRate decimal.Decimal `json:"baseRate"`
	Result   ValuationResult `json:"result"`
}

// RateSensitivity is a sweep of one request across base rates
type RateSensitivity struct {
	Points []RateSensitivityPoint `json:"points"`
	// Spread between the highest and lowest headline value across the sweep
	ValueRange decimal.Decimal `json:"valueRange"`
}

// Headline returns the value used to compare results: the NPV for
// life-contingent results and the max offer for ranges.
func (r ValuationResult) Headline() decimal.Decimal {
	switch {
	case r.NPV != nil:
		return *r.NPV
	case r.MaxOffer != nil:
		return *r.MaxOffer
	default:
		return decimal.Zero
	}
}
