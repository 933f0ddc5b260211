package llm

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
)

// FirstSuccess calls attempt for each candidate in order and returns the first
// result that comes back without error, together with the candidate that
// produced it. Each candidate is tried at most once. When every candidate
// fails the returned error wraps ErrAllModelsFailed and every attempt error.
// A done context stops the loop before the next attempt.
func FirstSuccess[T any](ctx context.Context, candidates []string, attempt func(context.Context, string) (T, error)) (T, string, error) {
	var (
		zero T
		errs error
	)
	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return zero, "", multierr.Append(errs, err)
		}
		result, err := attempt(ctx, candidate)
		if err == nil {
			return result, candidate, nil
		}
		errs = multierr.Append(errs, fmt.Errorf("%s: %w", candidate, err))
	}
	if errs == nil {
		return zero, "", ErrAllModelsFailed
	}
	return zero, "", fmt.Errorf("%w: %w", ErrAllModelsFailed, errs)
}
