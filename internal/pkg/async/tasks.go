package async

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map applies f to every element of src with at most concurrencyLimit calls in flight,
// returning results in the order of src. A concurrencyLimit <= 0 means no limit.
// The first error cancels the context handed to the remaining calls and is returned.
func Map[T any, D any](ctx context.Context, src []T, concurrencyLimit int, f func(context.Context, T) (D, error)) ([]D, error) {
	if len(src) == 0 {
		return []D{}, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if concurrencyLimit > 0 {
		g.SetLimit(concurrencyLimit)
	}

	results := make([]D, len(src))
	for i, element := range src {
		i, element := i, element
		g.Go(func() error {
			r, err := f(gctx, element)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
