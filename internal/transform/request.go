package transform

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/spv/internal/domain"
	"github.com/shopspring/decimal"
)

// SetPaymentMode changes how often the settlement pays out.
type SetPaymentMode struct {
	Mode domain.PaymentMode
}

func (t *SetPaymentMode) Apply(base domain.RawRequest) (domain.RawRequest, error) {
	if t.Mode.MonthsPerPeriod() == 0 && t.Mode != domain.PaymentModeLumpSum {
		return domain.RawRequest{}, &TransformError{TransformName: t.Name(), Field: "paymentMode", Reason: fmt.Sprintf("unknown mode %q", t.Mode)}
	}
	out := cloneRaw(base)
	out.PaymentMode = string(t.Mode)
	return out, nil
}

func (t *SetPaymentMode) Name() string { return "set_mode" }

func (t *SetPaymentMode) Description() string {
	return fmt.Sprintf("Pay %s", strings.ToLower(string(t.Mode)))
}

// SetIncreaseRate replaces the annual step-up percentage.
type SetIncreaseRate struct {
	Percent decimal.Decimal
}

func (t *SetIncreaseRate) Apply(base domain.RawRequest) (domain.RawRequest, error) {
	out := cloneRaw(base)
	out.IncreaseRate = t.Percent.String()
	return out, nil
}

func (t *SetIncreaseRate) Name() string { return "set_increase" }

func (t *SetIncreaseRate) Description() string {
	return fmt.Sprintf("Increase payments %s%% per year", t.Percent.String())
}

// ShiftEndDate moves the final payment date by a number of months.
// Negative values shorten the term.
type ShiftEndDate struct {
	Months int
}

func (t *ShiftEndDate) Apply(base domain.RawRequest) (domain.RawRequest, error) {
	end, err := domain.ParseDate(base.EndDate)
	if err != nil {
		return domain.RawRequest{}, &TransformError{TransformName: t.Name(), Field: "endDate", Reason: "cannot parse end date", Err: err}
	}
	out := cloneRaw(base)
	out.EndDate = domain.AddMonths(end, t.Months).Format(domain.DateLayout)
	return out, nil
}

func (t *ShiftEndDate) Name() string { return "shift_end" }

func (t *ShiftEndDate) Description() string {
	if t.Months < 0 {
		return fmt.Sprintf("End payments %d months earlier", -t.Months)
	}
	return fmt.Sprintf("End payments %d months later", t.Months)
}

// SetBaseRate prices the request at a different market base rate.
type SetBaseRate struct {
	Rate decimal.Decimal
}

func (t *SetBaseRate) Apply(base domain.RawRequest) (domain.RawRequest, error) {
	out := cloneRaw(base)
	out.BaseRate = t.Rate.String()
	return out, nil
}

func (t *SetBaseRate) Name() string { return "set_base_rate" }

func (t *SetBaseRate) Description() string {
	return fmt.Sprintf("Price at a %s base rate", t.Rate.String())
}

// ScaleAmount multiplies the first payment amount by Factor.
type ScaleAmount struct {
	Factor decimal.Decimal
}

func (t *ScaleAmount) Apply(base domain.RawRequest) (domain.RawRequest, error) {
	if !t.Factor.IsPositive() {
		return domain.RawRequest{}, &TransformError{TransformName: t.Name(), Field: "amount", Reason: "factor must be positive"}
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(base.Amount))
	if err != nil {
		return domain.RawRequest{}, &TransformError{TransformName: t.Name(), Field: "amount", Reason: "cannot parse amount", Err: err}
	}
	out := cloneRaw(base)
	out.Amount = amount.Mul(t.Factor).Round(2).String()
	return out, nil
}

func (t *ScaleAmount) Name() string { return "scale_amount" }

func (t *ScaleAmount) Description() string {
	return fmt.Sprintf("Scale the payment amount by %s", t.Factor.String())
}
