package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentScheduleEntry is a single dated cash flow
type PaymentScheduleEntry struct {
	Date     time.Time       `json:"date"`
	CashFlow decimal.Decimal `json:"cashFlow"`
}
