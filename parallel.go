package riemann

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// SumParallel computes the same result as Sum using a fixed pool of workers.
//
// The linear cell range is split into contiguous blocks, one per worker;
// each worker accumulates its block independently and the partial sums are
// combined in worker-index order. Decimal addition here is exact, so the
// reduction order does not change the result: SumParallel is bit-identical
// to Sum for any worker count.
//
// ctx is checked between cell evaluations, never mid-evaluation; on
// cancellation the context's error is returned. workers < 2 (or a grid
// smaller than the pool) degrades gracefully toward serial execution.
// Same validation and error semantics as Sum; f must be safe for
// concurrent calls.
func SumParallel(ctx context.Context, f Func, workers int, dims ...Dimension) (decimal.Decimal, error) {
	points, err := samplePlan(f, dims)
	if err != nil {
		return decimal.Decimal{}, err
	}

	cells := GridSize(dims)
	if int64(workers) > cells {
		workers = int(cells)
	}
	if workers < 2 {
		return sumCells(f, dims, points, 0, cells, ctx.Err)
	}

	partials := make([]decimal.Decimal, workers)
	g, gctx := errgroup.WithContext(ctx)

	// Static partition: worker w owns [w*quota, (w+1)*quota), the last
	// worker also takes the remainder.
	quota := cells / int64(workers)
	for w := 0; w < workers; w++ {
		first := int64(w) * quota
		last := first + quota
		if w == workers-1 {
			last = cells
		}

		g.Go(func() error {
			partial, err := sumCells(f, dims, points, first, last, gctx.Err)
			if err != nil {
				return err
			}
			partials[w] = partial
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return decimal.Decimal{}, err
	}

	total := decimal.Decimal{}
	for _, partial := range partials {
		total = total.Add(partial)
	}
	return total, nil
}
