package transform

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/rgehrsitz/spv/internal/domain"
	"github.com/shopspring/decimal"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (RequestTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("set_mode", createSetPaymentMode)
	registry.Register("set_increase", createSetIncreaseRate)
	registry.Register("shift_end", createShiftEndDate)
	registry.Register("set_base_rate", createSetBaseRate)
	registry.Register("scale_amount", createScaleAmount)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (RequestTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the names of all registered transforms in sorted order.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "shift_end:months=-12"
func (r *TransformRegistry) ParseTransformSpec(spec string) (RequestTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	name := strings.TrimSpace(parts[0])
	paramsStr := strings.TrimSpace(parts[1])

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			kv := strings.SplitN(paramPair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	return r.Create(name, params)
}

// Factory functions for each transform

func createSetPaymentMode(params map[string]string) (RequestTransform, error) {
	modeStr, ok := params["mode"]
	if !ok {
		return nil, fmt.Errorf("set_mode requires 'mode' parameter")
	}

	mode, err := domain.ParsePaymentMode(modeStr)
	if err != nil {
		return nil, err
	}

	return &SetPaymentMode{Mode: mode}, nil
}

func createSetIncreaseRate(params map[string]string) (RequestTransform, error) {
	pct, err := requireDecimal(params, "set_increase", "percent")
	if err != nil {
		return nil, err
	}
	return &SetIncreaseRate{Percent: pct}, nil
}

func createShiftEndDate(params map[string]string) (RequestTransform, error) {
	monthsStr, ok := params["months"]
	if !ok {
		return nil, fmt.Errorf("shift_end requires 'months' parameter")
	}

	months, err := strconv.Atoi(monthsStr)
	if err != nil {
		return nil, fmt.Errorf("invalid months value: %w", err)
	}

	return &ShiftEndDate{Months: months}, nil
}

func createSetBaseRate(params map[string]string) (RequestTransform, error) {
	rate, err := requireDecimal(params, "set_base_rate", "rate")
	if err != nil {
		return nil, err
	}
	return &SetBaseRate{Rate: rate}, nil
}

func createScaleAmount(params map[string]string) (RequestTransform, error) {
	factor, err := requireDecimal(params, "scale_amount", "factor")
	if err != nil {
		return nil, err
	}
	return &ScaleAmount{Factor: factor}, nil
}

func requireDecimal(params map[string]string, transform, key string) (decimal.Decimal, error) {
	s, ok := params[key]
	if !ok {
		return decimal.Zero, fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return d, nil
}
