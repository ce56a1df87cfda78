package domain

import (
	"slices"

	"github.com/goccy/go-json"

	"github.com/shopspring/decimal"
)

// HealthProfileVersion identifies the questionnaire vocabulary understood by the mapper
const HealthProfileVersion = "v1"

// HealthProfile is a submitted health questionnaire. Empty strings mean the
// question was not answered.
type HealthProfile struct {
	Version    string   `yaml:"version" json:"version"`
	AgeBracket string   `yaml:"age_bracket" json:"ageBracket"` // "18-34", "35-44", "45-54", "55-64", "65-74", "75+"
	Sex        string   `yaml:"sex" json:"sex"`                // "male", "female"
	Smoker     string   `yaml:"smoker" json:"smoker"`          // "never", "former", "current"
	Conditions []string `yaml:"conditions" json:"conditions"`
}

// RiskAdjustmentKey is an opaque token naming one mortality risk factor
type RiskAdjustmentKey string

// KeySet is an unordered set of risk adjustment keys
type KeySet map[RiskAdjustmentKey]struct{}

// NewKeySet builds a set from the given keys
func NewKeySet(keys ...RiskAdjustmentKey) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Add inserts a key into the set
func (s KeySet) Add(k RiskAdjustmentKey) {
	s[k] = struct{}{}
}

// Has reports whether the key is in the set
func (s KeySet) Has(k RiskAdjustmentKey) bool {
	_, ok := s[k]
	return ok
}

// Len returns the number of keys
func (s KeySet) Len() int {
	return len(s)
}

// Clone returns an independent copy of the set
func (s KeySet) Clone() KeySet {
	if s == nil {
		return nil
	}
	out := make(KeySet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

// Sorted returns the keys in lexical order, for display only
func (s KeySet) Sorted() []RiskAdjustmentKey {
	keys := make([]RiskAdjustmentKey, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// MarshalJSON encodes the set as a sorted array
func (s KeySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// MarshalYAML encodes the set as a sorted sequence
func (s KeySet) MarshalYAML() (interface{}, error) {
	return s.Sorted(), nil
}

// RiskDeltas maps a risk key to the signed rate offset it contributes
type RiskDeltas map[RiskAdjustmentKey]decimal.Decimal
