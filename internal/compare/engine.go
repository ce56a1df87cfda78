package compare

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/spv/internal/calculation"
	"github.com/rgehrsitz/spv/internal/config"
	"github.com/rgehrsitz/spv/internal/domain"
	"github.com/rgehrsitz/spv/internal/transform"
)

// CompareEngine orchestrates request comparison
type CompareEngine struct {
	CalcEngine       *calculation.Engine
	Validator        *config.Validator
	TemplateRegistry *transform.TemplateRegistry
	Concurrency      int
}

// NewCompareEngine creates a new comparison engine using the built-in templates
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:       calcEngine,
		Validator:        config.NewValidator(),
		TemplateRegistry: transform.CreateBuiltInTemplates(),
		Concurrency:      calculation.DefaultBatchConcurrency,
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	Source    string   // Label for the base request, usually its file path
	Templates []string // Template names to apply to the base
}

// Compare values the base request and each template variant of it.
// An invalid base is an error; an invalid variant is recorded on its result.
func (ce *CompareEngine) Compare(ctx context.Context, base domain.RawRequest, options CompareOptions) (*ComparisonSet, error) {
	baseValid, err := ce.Validator.Validate(base)
	if err != nil {
		return nil, fmt.Errorf("base request: %w", err)
	}

	alternatives := make([]ComparisonResult, len(options.Templates))
	toValue := []config.ValidRequest{baseValid}
	slots := []int{-1}

	for i, name := range options.Templates {
		tmpl, ok := ce.TemplateRegistry.Get(name)
		if !ok {
			return nil, fmt.Errorf("template %s not found", name)
		}
		alternatives[i] = ComparisonResult{Name: tmpl.Name, Description: tmpl.Description}

		variant, err := transform.ApplyTemplate(base, tmpl)
		if err != nil {
			alternatives[i].Error = err.Error()
			continue
		}
		valid, err := ce.Validator.Validate(variant)
		if err != nil {
			alternatives[i].Error = err.Error()
			continue
		}
		toValue = append(toValue, valid)
		slots = append(slots, i)
	}

	valuations, err := ce.CalcEngine.ValueBatch(ctx, toValue, ce.Concurrency)
	if err != nil {
		return nil, err
	}

	baseResult := CalculateMetrics("base", "Request as submitted", valuations[0])
	for j, v := range valuations[1:] {
		i := slots[j+1]
		alt := CalculateMetrics(alternatives[i].Name, alternatives[i].Description, v)
		alternatives[i] = CalculateComparison(alt, baseResult)
	}

	set := &ComparisonSet{
		Source:       options.Source,
		Base:         &baseResult,
		Alternatives: alternatives,
	}
	set.Recommendations = GenerateRecommendations(set)

	return set, nil
}
