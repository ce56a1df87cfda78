package calculation

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/spv/internal/config"
	"github.com/rgehrsitz/spv/internal/domain"
	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency bounds ValueBatch when no limit is given
const DefaultBatchConcurrency = 8

// ValueBatch values many requests concurrently. Results keep the order of
// reqs. The first failure cancels the remaining work and is returned.
func (e *Engine) ValueBatch(ctx context.Context, reqs []config.ValidRequest, limit int) ([]*domain.Valuation, error) {
	if limit <= 0 {
		limit = DefaultBatchConcurrency
	}

	results := make([]*domain.Valuation, len(reqs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, req := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := e.Value(req)
			if err != nil {
				return fmt.Errorf("request %d: %w", i, err)
			}
			results[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
