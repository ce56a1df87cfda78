package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used in request files and reports
const DateLayout = "2006-01-02"

// PaymentMode is the frequency at which a settlement pays out
type PaymentMode string

const (
	PaymentModeMonthly      PaymentMode = "Monthly"
	PaymentModeQuarterly    PaymentMode = "Quarterly"
	PaymentModeSemiannually PaymentMode = "Semiannually"
	PaymentModeAnnually     PaymentMode = "Annually"
	PaymentModeLumpSum      PaymentMode = "LumpSum"
)

// PaymentModes lists every supported mode in display order
var PaymentModes = []PaymentMode{
	PaymentModeMonthly,
	PaymentModeQuarterly,
	PaymentModeSemiannually,
	PaymentModeAnnually,
	PaymentModeLumpSum,
}

// ParsePaymentMode resolves a mode name case-insensitively
func ParsePaymentMode(s string) (PaymentMode, error) {
	for _, m := range PaymentModes {
		if strings.EqualFold(string(m), strings.TrimSpace(s)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown payment mode %q", s)
}

// MonthsPerPeriod returns the number of months between consecutive payments.
// LumpSum has no period and returns 0.
func (m PaymentMode) MonthsPerPeriod() int {
	switch m {
	case PaymentModeMonthly:
		return 1
	case PaymentModeQuarterly:
		return 3
	case PaymentModeSemiannually:
		return 6
	case PaymentModeAnnually:
		return 12
	default:
		return 0
	}
}

// Bounds is a {min, max} pair of decimal rate offsets (0.01 = one percentage point)
type Bounds struct {
	Min decimal.Decimal `yaml:"min" json:"min"`
	Max decimal.Decimal `yaml:"max" json:"max"`
}

// Clone returns a copy of b, or nil when b is nil
func (b *Bounds) Clone() *Bounds {
	if b == nil {
		return nil
	}
	c := *b
	return &c
}

// RawRequest is an unvalidated valuation request as supplied by a form or file.
// Numeric and date fields are kept as strings so that every malformed field
// can be reported at once.
type RawRequest struct {
	Amount           string   `yaml:"amount" json:"amount"`
	StartDate        string   `yaml:"start_date" json:"startDate"`
	EndDate          string   `yaml:"end_date" json:"endDate"`
	ValuationDate    string   `yaml:"valuation_date,omitempty" json:"valuationDate,omitempty"`
	PaymentMode      string   `yaml:"payment_mode" json:"paymentMode"`
	IncreaseRate     string   `yaml:"increase_rate" json:"increaseRate"`
	BaseRate         string   `yaml:"base_rate" json:"baseRate"`
	IsLifeContingent bool     `yaml:"life_contingent" json:"isLifeContingent"`
	LCPKeys          []string `yaml:"lcp_keys,omitempty" json:"lcpKeys,omitempty"`
	RateSpread       *Bounds  `yaml:"rate_spread,omitempty" json:"rateSpread,omitempty"`
	AmountAdjustment *Bounds  `yaml:"amount_adjustment,omitempty" json:"amountAdjustment,omitempty"`
}

// ValuationRequest is a fully typed request. Values of this type are only
// trusted by the calculation engine when they come out of the validator.
type ValuationRequest struct {
	Amount           decimal.Decimal `json:"amount"`
	StartDate        time.Time       `json:"startDate"`
	EndDate          time.Time       `json:"endDate"`
	ValuationDate    time.Time       `json:"valuationDate"`
	PaymentMode      PaymentMode     `json:"paymentMode"`
	IncreaseRate     decimal.Decimal `json:"increaseRate"` // percent per year, 0-6
	BaseRate         decimal.Decimal `json:"baseRate"`     // annual decimal, e.g. 0.085
	IsLifeContingent bool            `json:"isLifeContingent"`
	LCPKeys          KeySet          `json:"lcpKeys"`
	RateSpread       *Bounds         `json:"rateSpread,omitempty"`       // required for guaranteed pricing
	AmountAdjustment *Bounds         `json:"amountAdjustment,omitempty"` // required for guaranteed pricing
}

// WithBaseRate returns a copy of the request using a different base rate
func (r ValuationRequest) WithBaseRate(rate decimal.Decimal) ValuationRequest {
	r.BaseRate = rate
	r.LCPKeys = r.LCPKeys.Clone()
	r.RateSpread = r.RateSpread.Clone()
	r.AmountAdjustment = r.AmountAdjustment.Clone()
	return r
}
