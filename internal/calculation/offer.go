package calculation

import (
	"github.com/rgehrsitz/spv/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// RoundToHundred rounds to the nearest 100, halves rounding up
func RoundToHundred(v decimal.Decimal) decimal.Decimal {
	return v.Div(hundred).Round(0).Mul(hundred)
}

// GuaranteedOffer rounds both present values and orders them into a range.
// If rounding pushes the minimum above the maximum, the minimum is clamped.
func GuaranteedOffer(minPV, maxPV decimal.Decimal) domain.ValuationResult {
	minOffer := RoundToHundred(minPV)
	maxOffer := RoundToHundred(maxPV)
	if minOffer.GreaterThan(maxOffer) {
		minOffer = maxOffer
	}
	return domain.ValuationResult{
		MinOffer:      &minOffer,
		MaxOffer:      &maxOffer,
		PricingMethod: domain.PricingMethodGuaranteed,
	}
}

// LifeContingentOffer rounds a single profile-adjusted present value
func LifeContingentOffer(pv decimal.Decimal) domain.ValuationResult {
	npv := RoundToHundred(pv)
	return domain.ValuationResult{
		NPV:           &npv,
		PricingMethod: domain.PricingMethodLifeContingent,
	}
}
