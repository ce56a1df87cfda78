package calculation

import (
	"sync"
	"testing"
	"time"

	"github.com/rgehrsitz/spv/internal/config"
	"github.com/rgehrsitz/spv/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func baseRaw() domain.RawRequest {
	return domain.RawRequest{
		Amount:       "1000",
		StartDate:    "2025-01-01",
		EndDate:      "2026-01-01",
		PaymentMode:  "Monthly",
		IncreaseRate: "0",
		BaseRate:     "0.085",
		RateSpread: &domain.Bounds{
			Min: decimal.NewFromFloat(0.01),
			Max: decimal.NewFromFloat(0.02),
		},
		AmountAdjustment: &domain.Bounds{
			Min: decimal.Zero,
			Max: decimal.NewFromFloat(0.005),
		},
	}
}

func validRequest(t *testing.T, mutate func(*domain.RawRequest)) config.ValidRequest {
	t.Helper()
	raw := baseRaw()
	if mutate != nil {
		mutate(&raw)
	}
	req, err := config.NewValidator().Validate(raw)
	require.NoError(t, err)
	return req
}

func date(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// TestLogger records formatted messages
type TestLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *TestLogger) record(level, format string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, level+": "+format)
}

func (l *TestLogger) Debugf(format string, args ...any) { l.record("DEBUG", format) }
func (l *TestLogger) Infof(format string, args ...any)  { l.record("INFO", format) }
func (l *TestLogger) Warnf(format string, args ...any)  { l.record("WARN", format) }
func (l *TestLogger) Errorf(format string, args ...any) { l.record("ERROR", format) }
