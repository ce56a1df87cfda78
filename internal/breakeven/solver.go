package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/spv/internal/calculation"
	"github.com/rgehrsitz/spv/internal/config"
	"github.com/shopspring/decimal"
)

// Solver finds the discount rate implied by a target present value
type Solver struct {
	Options SolverOptions
}

// NewSolver creates a solver with the given options
func NewSolver(options SolverOptions) *Solver {
	return &Solver{Options: options}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultSolverOptions())
}

// ImpliedRateForRequest solves for the rate at which the request's payment
// stream is worth target on its valuation date
func (s *Solver) ImpliedRateForRequest(ctx context.Context, req config.ValidRequest, target decimal.Decimal) (*ImpliedRateResult, error) {
	r := req.Request()
	return s.ImpliedRate(ctx, ImpliedRateRequest{
		Schedule:      calculation.ScheduleFor(r),
		ValuationDate: r.ValuationDate,
		TargetValue:   target,
	})
}

// ImpliedRate bisects on the discount rate. Present value falls as the rate
// rises, so the target must lie between the values at the bracket ends.
func (s *Solver) ImpliedRate(ctx context.Context, req ImpliedRateRequest) (*ImpliedRateResult, error) {
	if err := s.Options.Validate(); err != nil {
		return nil, err
	}
	if !req.TargetValue.IsPositive() {
		return nil, &BreakEvenError{Operation: "implied_rate", Message: "target value must be positive"}
	}

	lo, hi := s.Options.MinRate, s.Options.MaxRate
	pvAt := func(rate decimal.Decimal) decimal.Decimal {
		return calculation.PresentValue(req.Schedule.All(), rate, req.ValuationDate)
	}

	pvLo, pvHi := pvAt(lo), pvAt(hi)
	if req.TargetValue.GreaterThan(pvLo) || req.TargetValue.LessThan(pvHi) {
		return nil, &BreakEvenError{
			Operation: "implied_rate",
			Message: fmt.Sprintf("target %s is outside the attainable range [%s, %s] for rates %s to %s",
				req.TargetValue.StringFixed(2), pvHi.StringFixed(2), pvLo.StringFixed(2), lo, hi),
		}
	}

	two := decimal.NewFromInt(2)
	result := &ImpliedRateResult{TargetValue: req.TargetValue}
	for result.Iterations < s.Options.MaxIterations {
		result.Iterations++

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		mid := lo.Add(hi).Div(two)
		pv := pvAt(mid)
		result.Rate, result.PresentValue = mid, pv

		diff := pv.Sub(req.TargetValue)
		if diff.Abs().LessThan(s.Options.Tolerance) {
			result.Converged = true
			result.ConvergenceInfo = fmt.Sprintf("Converged within %s after %d iterations", s.Options.Tolerance, result.Iterations)
			return result, nil
		}

		// value too high means the rate is too low
		if diff.IsPositive() {
			lo = mid
		} else {
			hi = mid
		}
	}

	result.ConvergenceInfo = fmt.Sprintf("Stopped after %d iterations, %s from target",
		result.Iterations, result.PresentValue.Sub(req.TargetValue).Abs().StringFixed(2))
	return result, nil
}
