package health

import (
	"testing"

	"github.com/rgehrsitz/spv/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMap_EmptyProfile(t *testing.T) {
	assert.Equal(t, 0, Map(domain.HealthProfile{}).Len())
}

func TestMap_FullProfile(t *testing.T) {
	keys := Map(domain.HealthProfile{
		AgeBracket: "55-64",
		Sex:        "Male",
		Smoker:     "current",
		Conditions: []string{"Diabetes", "heart disease"},
	})

	assert.Equal(t, []domain.RiskAdjustmentKey{
		"age:55-64",
		"condition:diabetes",
		"condition:heart",
		"risk:smoker",
		"sex:male",
	}, keys.Sorted())
}

func TestMap_UnrecognizedAnswersAreNeutral(t *testing.T) {
	keys := Map(domain.HealthProfile{
		AgeBracket: "ancient",
		Sex:        "prefer not to say",
		Smoker:     "sometimes",
		Conditions: []string{"gout", ""},
	})
	assert.Equal(t, 0, keys.Len())
}

func TestMap_NeverSmokerHasNoKey(t *testing.T) {
	keys := Map(domain.HealthProfile{Smoker: "never"})
	assert.Equal(t, 0, keys.Len())

	keys = Map(domain.HealthProfile{Smoker: "former"})
	assert.True(t, keys.Has("risk:former-smoker"))
}

func TestMap_OrderIndependent(t *testing.T) {
	a := Map(domain.HealthProfile{Conditions: []string{"copd", "stroke", "copd"}})
	b := Map(domain.HealthProfile{Conditions: []string{"stroke", "copd"}})
	assert.Equal(t, a, b)
}

func TestKnownKeysHaveDefaultDeltas(t *testing.T) {
	deltas := domain.DefaultPricingTables().RiskDeltas
	for _, k := range KnownKeys().Sorted() {
		_, ok := deltas[k]
		assert.True(t, ok, "default tables missing delta for %s", k)
	}
}
