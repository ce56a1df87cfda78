package calculation

import (
	"fmt"

	"github.com/rgehrsitz/spv/internal/config"
	"github.com/rgehrsitz/spv/internal/domain"
	"github.com/shopspring/decimal"
)

// SensitivityAnalyzer prices one request across a range of base rates
type SensitivityAnalyzer struct {
	engine *Engine
}

// NewSensitivityAnalyzer creates an analyzer backed by the given engine
func NewSensitivityAnalyzer(engine *Engine) *SensitivityAnalyzer {
	return &SensitivityAnalyzer{engine: engine}
}

// SweepBaseRate values req at steps evenly spaced base rates from minRate to
// maxRate inclusive.
func (sa *SensitivityAnalyzer) SweepBaseRate(req config.ValidRequest, minRate, maxRate decimal.Decimal, steps int) (*domain.RateSensitivity, error) {
	if steps < 2 {
		return nil, fmt.Errorf("sensitivity sweep needs at least 2 steps, got %d", steps)
	}
	if minRate.GreaterThan(maxRate) {
		return nil, fmt.Errorf("min rate %s exceeds max rate %s", minRate, maxRate)
	}

	stepSize := maxRate.Sub(minRate).Div(decimal.NewFromInt(int64(steps - 1)))
	analysis := &domain.RateSensitivity{Points: make([]domain.RateSensitivityPoint, 0, steps)}

	var lo, hi decimal.Decimal
	for i := 0; i < steps; i++ {
		rate := minRate.Add(stepSize.Mul(decimal.NewFromInt(int64(i))))
		if i == steps-1 {
			rate = maxRate
		}

		modified, err := req.WithBaseRate(rate)
		if err != nil {
			return nil, err
		}
		v, err := sa.engine.Value(modified)
		if err != nil {
			return nil, fmt.Errorf("failed to value at base rate %s: %w", rate, err)
		}

		headline := v.Result.Headline()
		if i == 0 || headline.LessThan(lo) {
			lo = headline
		}
		if i == 0 || headline.GreaterThan(hi) {
			hi = headline
		}
		analysis.Points = append(analysis.Points, domain.RateSensitivityPoint{BaseRate: rate, Result: v.Result})
	}

	analysis.ValueRange = hi.Sub(lo)
	return analysis, nil
}
