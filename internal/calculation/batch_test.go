package calculation

import (
	"context"
	"fmt"
	"testing"

	"github.com/rgehrsitz/spv/internal/config"
	"github.com/rgehrsitz/spv/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueBatch_PreservesOrder(t *testing.T) {
	engine := NewDefaultEngine()

	var reqs []config.ValidRequest
	for i := 0; i < 20; i++ {
		amount := fmt.Sprintf("%d", 1000+i*100)
		reqs = append(reqs, validRequest(t, func(r *domain.RawRequest) { r.Amount = amount }))
	}

	results, err := engine.ValueBatch(context.Background(), reqs, 4)
	require.NoError(t, err)
	require.Len(t, results, len(reqs))

	for i, v := range results {
		require.NotNil(t, v)
		assert.True(t, v.Request.Amount.Equal(reqs[i].Request().Amount))

		single, err := engine.Value(reqs[i])
		require.NoError(t, err)
		assert.Equal(t, single.Result, v.Result, "concurrent and sequential results must agree")
	}
}

func TestValueBatch_PropagatesErrors(t *testing.T) {
	tables := domain.DefaultPricingTables()
	delete(tables.RiskDeltas, "risk:smoker")
	engine := NewEngine(tables)
	reqs := []config.ValidRequest{
		validRequest(t, nil),
		validRequest(t, func(r *domain.RawRequest) {
			r.IsLifeContingent = true
			r.LCPKeys = []string{"risk:smoker"}
		}),
	}

	results, err := engine.ValueBatch(context.Background(), reqs, 0)
	assert.Nil(t, results)
	var cfgErr *domain.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "request 1")
}

func TestValueBatch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDefaultEngine().ValueBatch(ctx, []config.ValidRequest{validRequest(t, nil)}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestValueBatch_Empty(t *testing.T) {
	results, err := NewDefaultEngine().ValueBatch(context.Background(), nil, 2)
	require.NoError(t, err)
	assert.Empty(t, results)
}
