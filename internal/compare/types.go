package compare

import (
	"fmt"

	"github.com/rgehrsitz/spv/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult represents a single request variant with its key metrics
type ComparisonResult struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Valuation   *domain.Valuation `json:"valuation,omitempty"`

	// Key Metrics
	Headline        decimal.Decimal `json:"headline"`
	UndiscountedSum decimal.Decimal `json:"undiscountedSum"`
	PaymentCount    int             `json:"paymentCount"`
	PaymentMode     string          `json:"paymentMode,omitempty"`
	EndDate         string          `json:"endDate,omitempty"`

	// Comparison to Base
	DiffFromBase decimal.Decimal `json:"diffFromBase"`
	PctFromBase  decimal.Decimal `json:"pctFromBase"`

	// Set when the variant could not be valued, e.g. it breaks a term limit
	Error string `json:"error,omitempty"`
}

// Valued reports whether the variant produced a valuation
func (r ComparisonResult) Valued() bool {
	return r.Valuation != nil && r.Error == ""
}

// ComparisonSet represents a base request and its alternatives
type ComparisonSet struct {
	Source          string             `json:"source"`
	Base            *ComparisonResult  `json:"base"`
	Alternatives    []ComparisonResult `json:"alternatives"`
	Recommendations []string           `json:"recommendations"`
}

// CalculateMetrics extracts comparison metrics from a valuation
func CalculateMetrics(name, description string, v *domain.Valuation) ComparisonResult {
	return ComparisonResult{
		Name:            name,
		Description:     description,
		Valuation:       v,
		Headline:        v.Result.Headline(),
		UndiscountedSum: v.UndiscountedSum,
		PaymentCount:    len(v.Schedule),
		PaymentMode:     string(v.Request.PaymentMode),
		EndDate:         v.Request.EndDate.Format(domain.DateLayout),
	}
}

// CalculateComparison fills the deltas of a variant against the base
func CalculateComparison(variant, base ComparisonResult) ComparisonResult {
	if !variant.Valued() {
		return variant
	}
	variant.DiffFromBase = variant.Headline.Sub(base.Headline)
	if !base.Headline.IsZero() {
		variant.PctFromBase = variant.DiffFromBase.Div(base.Headline).Mul(decimal.NewFromInt(100)).Round(1)
	}
	return variant
}

// GenerateRecommendations summarizes which variants raise or lower the offer
func GenerateRecommendations(set *ComparisonSet) []string {
	recommendations := []string{}

	if set.Base == nil || len(set.Alternatives) == 0 {
		return recommendations
	}

	best := set.Base
	for i := range set.Alternatives {
		alt := &set.Alternatives[i]
		if alt.Valued() && alt.Headline.GreaterThan(best.Headline) {
			best = alt
		}
	}

	if best != set.Base {
		recommendations = append(recommendations,
			fmt.Sprintf("Highest offer: %s pays $%s more than the base request", best.Name, best.DiffFromBase.StringFixed(0)))
	} else {
		recommendations = append(recommendations, "The base request already yields the highest offer")
	}

	for _, alt := range set.Alternatives {
		if !alt.Valued() {
			recommendations = append(recommendations,
				fmt.Sprintf("%s could not be valued: %s", alt.Name, alt.Error))
		}
	}

	return recommendations
}
