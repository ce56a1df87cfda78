package transform

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rgehrsitz/spv/internal/domain"
	"github.com/shopspring/decimal"
)

// TemplateRegistry manages built-in request templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []RequestTransform
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names in sorted order
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// CreateBuiltInTemplates creates a template registry with the common
// restructurings a seller asks about
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	for _, m := range []struct {
		name string
		mode domain.PaymentMode
	}{
		{"monthly", domain.PaymentModeMonthly},
		{"quarterly", domain.PaymentModeQuarterly},
		{"semiannual", domain.PaymentModeSemiannually},
		{"annual", domain.PaymentModeAnnually},
		{"lump_sum", domain.PaymentModeLumpSum},
	} {
		t := &SetPaymentMode{Mode: m.mode}
		registry.Register(Template{Name: m.name, Description: t.Description(), Transforms: []RequestTransform{t}})
	}

	registry.Register(Template{
		Name:        "no_increase",
		Description: "Level payments with no annual increase",
		Transforms:  []RequestTransform{&SetIncreaseRate{Percent: decimal.Zero}},
	})
	registry.Register(Template{
		Name:        "increase_3pct",
		Description: "Payments increase 3% per year",
		Transforms:  []RequestTransform{&SetIncreaseRate{Percent: decimal.NewFromInt(3)}},
	})
	registry.Register(Template{
		Name:        "shorten_1yr",
		Description: "End payments 12 months earlier",
		Transforms:  []RequestTransform{&ShiftEndDate{Months: -12}},
	})
	registry.Register(Template{
		Name:        "extend_1yr",
		Description: "End payments 12 months later",
		Transforms:  []RequestTransform{&ShiftEndDate{Months: 12}},
	})
	registry.Register(Template{
		Name:        "half_amount",
		Description: "Sell half of each payment",
		Transforms:  []RequestTransform{&ScaleAmount{Factor: decimal.NewFromFloat(0.5)}},
	})

	return registry
}

// ApplyTemplate applies a template to a base request
func ApplyTemplate(base domain.RawRequest, template Template) (domain.RawRequest, error) {
	return ApplyTransforms(base, template.Transforms)
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(templateList string) []string {
	if templateList == "" {
		return nil
	}

	parts := strings.Split(templateList, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}

// GetTemplateHelp returns formatted help text for all templates
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	var sb strings.Builder
	sb.WriteString("Available Templates:\n\n")
	for _, name := range registry.List() {
		t := registry.templates[name]
		sb.WriteString(fmt.Sprintf("  %-14s %s\n", t.Name, t.Description))
	}
	return sb.String()
}
