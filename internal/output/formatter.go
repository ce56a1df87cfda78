package output

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rgehrsitz/spv/internal/domain"
	"github.com/shopspring/decimal"
)

// Report wraps a valuation with identifying metadata for rendering
type Report struct {
	ID          string            `json:"id"`
	GeneratedAt time.Time         `json:"generatedAt"`
	Source      string            `json:"source,omitempty"`
	Valuation   *domain.Valuation `json:"valuation"`
}

// NewReport stamps a valuation with a fresh report ID
func NewReport(v *domain.Valuation, source string, now time.Time) *Report {
	return &Report{
		ID:          uuid.NewString(),
		GeneratedAt: now.UTC(),
		Source:      source,
		Valuation:   v,
	}
}

// Formatter renders reports in one output format
type Formatter interface {
	Name() string
	Format(reports []*Report) ([]byte, error)
}

var formatters = map[string]Formatter{
	"console":  ConsoleFormatter{},
	"json":     JSONFormatter{Pretty: true},
	"csv":      CSVFormatter{},
	"markdown": MarkdownFormatter{},
	"md":       MarkdownFormatter{},
	"html":     HTMLFormatter{},
}

// GetFormatterByName returns the formatter for name, or nil if unknown
func GetFormatterByName(name string) Formatter {
	return formatters[strings.ToLower(strings.TrimSpace(name))]
}

// FormatNames lists the primary format names
func FormatNames() []string {
	return []string{"console", "json", "csv", "markdown", "html"}
}

// FormatCurrency formats a decimal as a currency string
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatPercentage formats an annual decimal rate as a percentage
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(3) + "%"
}

func optCurrency(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return FormatCurrency(*d)
}

func optPercentage(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return FormatPercentage(*d)
}
