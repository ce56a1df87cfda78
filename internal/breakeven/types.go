package breakeven

import (
	"time"

	"github.com/rgehrsitz/spv/internal/calculation"
	"github.com/shopspring/decimal"
)

// SolverOptions configures the bisection search
type SolverOptions struct {
	MinRate       decimal.Decimal // Lower end of the rate bracket
	MaxRate       decimal.Decimal // Upper end of the rate bracket
	Tolerance     decimal.Decimal // Acceptable present value error
	MaxIterations int
}

// DefaultSolverOptions returns the default bracket [0, 50%] with a one cent tolerance
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		MinRate:       decimal.Zero,
		MaxRate:       decimal.NewFromFloat(0.5),
		Tolerance:     decimal.NewFromFloat(0.01),
		MaxIterations: 200,
	}
}

// Validate checks that the options describe a usable bracket
func (o SolverOptions) Validate() error {
	if o.MinRate.GreaterThanOrEqual(o.MaxRate) {
		return &BreakEvenError{
			Operation: "validate_options",
			Message:   "min_rate must be below max_rate",
		}
	}
	if o.MinRate.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return &BreakEvenError{
			Operation: "validate_options",
			Message:   "min_rate must be above -1",
		}
	}
	if !o.Tolerance.IsPositive() {
		return &BreakEvenError{
			Operation: "validate_options",
			Message:   "tolerance must be positive",
		}
	}
	if o.MaxIterations <= 0 {
		return &BreakEvenError{
			Operation: "validate_options",
			Message:   "max_iterations must be positive",
		}
	}
	return nil
}

// ImpliedRateRequest asks for the discount rate at which a schedule is
// worth TargetValue on ValuationDate
type ImpliedRateRequest struct {
	Schedule      calculation.Schedule
	ValuationDate time.Time
	TargetValue   decimal.Decimal
}

// ImpliedRateResult is the outcome of an implied rate search
type ImpliedRateResult struct {
	Rate            decimal.Decimal `json:"rate"`
	PresentValue    decimal.Decimal `json:"presentValue"`
	TargetValue     decimal.Decimal `json:"targetValue"`
	Iterations      int             `json:"iterations"`
	Converged       bool            `json:"converged"`
	ConvergenceInfo string          `json:"convergenceInfo"`
}

// BreakEvenError represents errors from the implied rate solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}
