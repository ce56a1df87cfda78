package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/spv/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of request, profile and pricing table files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadRequestFile loads a raw valuation request from a YAML or JSON file.
// The request is not validated; pass it through a Validator.
func (ip *InputParser) LoadRequestFile(filename string) (*domain.RawRequest, error) {
	var raw domain.RawRequest
	if err := ip.decodeFile(filename, &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}

// LoadHealthProfileFile loads a health questionnaire answer set
func (ip *InputParser) LoadHealthProfileFile(filename string) (*domain.HealthProfile, error) {
	var profile domain.HealthProfile
	if err := ip.decodeFile(filename, &profile); err != nil {
		return nil, err
	}
	if profile.Version != "" && profile.Version != domain.HealthProfileVersion {
		return nil, fmt.Errorf("unsupported health profile version %q (expected %s)", profile.Version, domain.HealthProfileVersion)
	}
	return &profile, nil
}

// LoadPricingTablesFile loads and validates pricing tables
func (ip *InputParser) LoadPricingTablesFile(filename string) (*domain.PricingTables, error) {
	var tables domain.PricingTables
	if err := ip.decodeFile(filename, &tables); err != nil {
		return nil, err
	}
	if err := tables.Validate(); err != nil {
		return nil, fmt.Errorf("pricing tables %s: %w", filename, err)
	}
	return &tables, nil
}

// ParsePricingTables decodes pricing tables from YAML bytes and validates them
func (ip *InputParser) ParsePricingTables(data []byte) (*domain.PricingTables, error) {
	var tables domain.PricingTables
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := tables.Validate(); err != nil {
		return nil, err
	}
	return &tables, nil
}

func (ip *InputParser) decodeFile(filename string, out interface{}) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	// JSON is a subset of YAML, so one decoder serves both
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}
