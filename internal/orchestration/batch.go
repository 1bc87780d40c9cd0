package orchestration

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/ecccalc/internal/bignum"
	"github.com/agbru/ecccalc/internal/curve"
	apperrors "github.com/agbru/ecccalc/internal/errors"
)

// BatchResult is one entry of a batch run.
type BatchResult struct {
	Scalar   bignum.Nat
	Result   curve.Point
	Duration time.Duration
}

// ExecuteBatch computes scalars[i]·p for every i with at most limit
// multiplications in flight (limit <= 0 means unbounded). Points are
// immutable values, so workers share p without copying.
//
// The first failure cancels the remaining work and is returned; results
// are only meaningful when err is nil.
func ExecuteBatch(ctx context.Context, m Multiplier, p curve.Point, scalars []bignum.Nat, limit int) ([]BatchResult, error) {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	results := make([]BatchResult, len(scalars))

	for i, k := range scalars {
		g.Go(func() error {
			spanCtx, end := runSpan(ctx, m.Name(), k)
			start := time.Now()
			res, err := m.Multiply(spanCtx, p, k, nil)
			end(err)
			if err != nil {
				return apperrors.WrapError(err, "scalar #%d", i)
			}
			results[i] = BatchResult{Scalar: k, Result: res, Duration: time.Since(start)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
