package domain

import (
	"fmt"
	"strings"
)

// Validation error codes
const (
	InvalidAmount        = "InvalidAmount"
	InvalidStartDate     = "InvalidStartDate"
	InvalidEndDate       = "InvalidEndDate"
	InvalidValuationDate = "InvalidValuationDate"
	InvalidPaymentMode   = "InvalidPaymentMode"
	InvalidIncreaseRate  = "InvalidIncreaseRate"
	InvalidBaseRate      = "InvalidBaseRate"
	InvalidLCPKeys       = "InvalidLCPKeys"
)

// Request limits
const (
	MinAmount          = 100
	MaxAmount          = 1_000_000
	MinTermMonths      = 6
	MaxIncreaseRatePct = 6
)

// EarliestStartDate is the first start date a request may use
var EarliestStartDate = mustDate("2024-05-14")

// FieldError describes one invalid request field
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError lists every invalid field of a request
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "invalid valuation request: " + strings.Join(msgs, "; ")
}

// Add records a field violation
func (e *ValidationError) Add(field, code, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Code: code, Message: message})
}

// Has reports whether the given field was rejected
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// ConfigurationError reports a missing or malformed lookup table. It is not
// recoverable by changing user input.
type ConfigurationError struct {
	Table  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error in %s: %s", e.Table, e.Reason)
}
