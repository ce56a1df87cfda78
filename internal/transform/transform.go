package transform

import (
	"fmt"
	"slices"

	"github.com/rgehrsitz/spv/internal/domain"
)

// RequestTransform defines the interface for all request transformations.
// Transforms operate on raw requests so that a variant which breaks a
// business rule is reported by the validator like any other input.
type RequestTransform interface {
	// Apply returns a modified copy of base. The base request is never mutated.
	Apply(base domain.RawRequest) (domain.RawRequest, error)

	// Name returns a short identifier for this transform (e.g., "set_mode").
	Name() string

	// Description returns a human-readable description of what this transform does.
	Description() string
}

// ApplyTransforms applies a sequence of transforms to a base request.
// Each transform receives the output of the previous one.
func ApplyTransforms(base domain.RawRequest, transforms []RequestTransform) (domain.RawRequest, error) {
	current := cloneRaw(base)

	for i, t := range transforms {
		if t == nil {
			return domain.RawRequest{}, fmt.Errorf("transform at index %d is nil", i)
		}

		next, err := t.Apply(current)
		if err != nil {
			return domain.RawRequest{}, fmt.Errorf("transform %s failed: %w", t.Name(), err)
		}
		current = next
	}

	return current, nil
}

// TransformError represents an error that occurred during transformation.
type TransformError struct {
	TransformName string
	Field         string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %s (%s): %s: %v", e.TransformName, e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("transform %s (%s): %s", e.TransformName, e.Field, e.Reason)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

func cloneRaw(r domain.RawRequest) domain.RawRequest {
	r.LCPKeys = slices.Clone(r.LCPKeys)
	r.RateSpread = r.RateSpread.Clone()
	r.AmountAdjustment = r.AmountAdjustment.Clone()
	return r
}
