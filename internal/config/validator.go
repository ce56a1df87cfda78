package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rgehrsitz/spv/internal/domain"
	"github.com/rgehrsitz/spv/internal/health"
	"github.com/shopspring/decimal"
)

// ValidRequest is a request that has passed validation. It can only be
// obtained from Validator.Validate, so anything accepting it never sees
// unchecked input.
type ValidRequest struct {
	req domain.ValuationRequest
}

// Request returns a copy of the validated request
func (v ValidRequest) Request() domain.ValuationRequest {
	r := v.req
	r.LCPKeys = v.req.LCPKeys.Clone()
	r.RateSpread = v.req.RateSpread.Clone()
	r.AmountAdjustment = v.req.AmountAdjustment.Clone()
	return r
}

// WithBaseRate returns a validated request differing only in base rate.
// The rate must satisfy the same [0, 1) rule Validate applies.
func (v ValidRequest) WithBaseRate(rate decimal.Decimal) (ValidRequest, error) {
	if !validBaseRate(rate) {
		verr := &domain.ValidationError{}
		verr.Add("baseRate", domain.InvalidBaseRate, fmt.Sprintf("must be an annual decimal rate in [0, 1), got %s", rate))
		return ValidRequest{}, verr
	}
	return ValidRequest{req: v.req.WithBaseRate(rate)}, nil
}

func validBaseRate(rate decimal.Decimal) bool {
	return !rate.IsNegative() && rate.LessThan(decimal.NewFromInt(1))
}

// Validator checks raw requests. It is the only place request rules live.
type Validator struct {
	// EarliestStart overrides domain.EarliestStartDate when non-zero
	EarliestStart time.Time
	// KnownKeys is the risk key vocabulary; nil means health.KnownKeys()
	KnownKeys domain.KeySet
}

// NewValidator creates a validator using the default rules
func NewValidator() *Validator {
	return &Validator{KnownKeys: health.KnownKeys()}
}

func (v *Validator) knownKeys() domain.KeySet {
	if v.KnownKeys == nil {
		return health.KnownKeys()
	}
	return v.KnownKeys
}

// Validate converts a raw request into a ValidRequest, or returns a
// *domain.ValidationError listing every invalid field.
func (v *Validator) Validate(raw domain.RawRequest) (ValidRequest, error) {
	verr := &domain.ValidationError{}
	var req domain.ValuationRequest

	amount, err := decimal.NewFromString(strings.TrimSpace(raw.Amount))
	switch {
	case err != nil:
		verr.Add("amount", domain.InvalidAmount, fmt.Sprintf("%q is not a number", raw.Amount))
	case amount.LessThan(decimal.NewFromInt(domain.MinAmount)) || amount.GreaterThan(decimal.NewFromInt(domain.MaxAmount)):
		verr.Add("amount", domain.InvalidAmount, fmt.Sprintf("must be between %d and %d, got %s", domain.MinAmount, domain.MaxAmount, amount))
	default:
		req.Amount = amount
	}

	earliest := domain.EarliestStartDate
	if !v.EarliestStart.IsZero() {
		earliest = v.EarliestStart
	}
	start, startErr := domain.ParseDate(strings.TrimSpace(raw.StartDate))
	switch {
	case startErr != nil:
		verr.Add("startDate", domain.InvalidStartDate, fmt.Sprintf("%q is not a valid date (YYYY-MM-DD)", raw.StartDate))
	case start.Before(earliest):
		verr.Add("startDate", domain.InvalidStartDate, fmt.Sprintf("must be on or after %s", earliest.Format(domain.DateLayout)))
		startErr = fmt.Errorf("start date too early")
	default:
		req.StartDate = start
	}

	end, endErr := domain.ParseDate(strings.TrimSpace(raw.EndDate))
	switch {
	case endErr != nil:
		verr.Add("endDate", domain.InvalidEndDate, fmt.Sprintf("%q is not a valid date (YYYY-MM-DD)", raw.EndDate))
	case startErr == nil && domain.WholeMonthsBetween(start, end) < domain.MinTermMonths:
		verr.Add("endDate", domain.InvalidEndDate, fmt.Sprintf("must be at least %d months after start date", domain.MinTermMonths))
	default:
		req.EndDate = end
	}

	req.ValuationDate = req.StartDate
	if s := strings.TrimSpace(raw.ValuationDate); s != "" {
		vd, err := domain.ParseDate(s)
		switch {
		case err != nil:
			verr.Add("valuationDate", domain.InvalidValuationDate, fmt.Sprintf("%q is not a valid date (YYYY-MM-DD)", raw.ValuationDate))
		case endErr == nil && vd.After(end):
			verr.Add("valuationDate", domain.InvalidValuationDate, "must not be after end date")
		default:
			req.ValuationDate = vd
		}
	}

	mode, err := domain.ParsePaymentMode(raw.PaymentMode)
	if err != nil {
		verr.Add("paymentMode", domain.InvalidPaymentMode, fmt.Sprintf("must be one of %s", modeNames()))
	}
	req.PaymentMode = mode

	increase := decimal.Zero
	if s := strings.TrimSpace(raw.IncreaseRate); s != "" {
		increase, err = decimal.NewFromString(s)
		switch {
		case err != nil:
			verr.Add("increaseRate", domain.InvalidIncreaseRate, fmt.Sprintf("%q is not a number", raw.IncreaseRate))
		case increase.IsNegative() || increase.GreaterThan(decimal.NewFromInt(domain.MaxIncreaseRatePct)):
			verr.Add("increaseRate", domain.InvalidIncreaseRate, fmt.Sprintf("must be between 0 and %d percent", domain.MaxIncreaseRatePct))
		}
	}
	req.IncreaseRate = increase

	base, err := decimal.NewFromString(strings.TrimSpace(raw.BaseRate))
	switch {
	case err != nil:
		verr.Add("baseRate", domain.InvalidBaseRate, fmt.Sprintf("%q is not a number", raw.BaseRate))
	case !validBaseRate(base):
		verr.Add("baseRate", domain.InvalidBaseRate, "must be an annual decimal rate in [0, 1)")
	default:
		req.BaseRate = base
	}

	req.IsLifeContingent = raw.IsLifeContingent
	req.LCPKeys = domain.NewKeySet()
	if len(raw.LCPKeys) > 0 && !raw.IsLifeContingent {
		verr.Add("lcpKeys", domain.InvalidLCPKeys, "risk keys are only allowed on life-contingent requests")
	}
	known := v.knownKeys()
	var unknown []string
	for _, k := range raw.LCPKeys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if !known.Has(domain.RiskAdjustmentKey(k)) {
			unknown = append(unknown, k)
			continue
		}
		req.LCPKeys.Add(domain.RiskAdjustmentKey(k))
	}
	if len(unknown) > 0 {
		verr.Add("lcpKeys", domain.InvalidLCPKeys, fmt.Sprintf("unknown risk keys %s", strings.Join(unknown, ", ")))
	}

	req.RateSpread = raw.RateSpread.Clone()
	req.AmountAdjustment = raw.AmountAdjustment.Clone()

	if len(verr.Fields) > 0 {
		return ValidRequest{}, verr
	}
	return ValidRequest{req: req}, nil
}

func modeNames() string {
	names := make([]string, len(domain.PaymentModes))
	for i, m := range domain.PaymentModes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}
