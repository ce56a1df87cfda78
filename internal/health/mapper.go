// Package health maps questionnaire answers onto the risk adjustment keys
// understood by the rate resolver.
package health

import (
	"strings"

	"github.com/rgehrsitz/spv/internal/domain"
)

var ageKeys = map[string]domain.RiskAdjustmentKey{
	"18-34": "age:18-34",
	"35-44": "age:35-44",
	"45-54": "age:45-54",
	"55-64": "age:55-64",
	"65-74": "age:65-74",
	"75+":   "age:75+",
}

var sexKeys = map[string]domain.RiskAdjustmentKey{
	"male":   "sex:male",
	"m":      "sex:male",
	"female": "sex:female",
	"f":      "sex:female",
}

// "never" is recognized but carries no key
var smokerKeys = map[string][]domain.RiskAdjustmentKey{
	"current": {"risk:smoker"},
	"yes":     {"risk:smoker"},
	"former":  {"risk:former-smoker"},
	"never":   nil,
	"no":      nil,
}

var conditionKeys = map[string]domain.RiskAdjustmentKey{
	"cancer":         "condition:cancer",
	"heart":          "condition:heart",
	"heart-disease":  "condition:heart",
	"diabetes":       "condition:diabetes",
	"copd":           "condition:copd",
	"kidney":         "condition:kidney",
	"kidney-disease": "condition:kidney",
	"stroke":         "condition:stroke",
	"hypertension":   "condition:hypertension",
}

// Map translates a health profile into risk adjustment keys. Unanswered or
// unrecognized answers contribute nothing.
func Map(p domain.HealthProfile) domain.KeySet {
	keys := domain.NewKeySet()

	if k, ok := ageKeys[normalize(p.AgeBracket)]; ok {
		keys.Add(k)
	}
	if k, ok := sexKeys[normalize(p.Sex)]; ok {
		keys.Add(k)
	}
	for _, k := range smokerKeys[normalize(p.Smoker)] {
		keys.Add(k)
	}
	for _, c := range p.Conditions {
		if k, ok := conditionKeys[normalize(c)]; ok {
			keys.Add(k)
		}
	}

	return keys
}

// KnownKeys returns every key the mapper can emit
func KnownKeys() domain.KeySet {
	keys := domain.NewKeySet()
	for _, k := range ageKeys {
		keys.Add(k)
	}
	for _, k := range sexKeys {
		keys.Add(k)
	}
	for _, ks := range smokerKeys {
		for _, k := range ks {
			keys.Add(k)
		}
	}
	for _, k := range conditionKeys {
		keys.Add(k)
	}
	return keys
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, " ", "-")
}
