package retry

import (
	"context"

	"github.com/LerianStudio/lib-retry/retry/backoff"
)

// DoWithState is Do for operations that must record progress across
// attempts. The same *S is passed to every attempt, in order, with no
// copying, so the operation can advance a cursor or track partial writes
// without closure captures.
func DoWithState[S, T any](builder backoff.Builder, state *S, operation func(state *S) (T, error), opts ...Option) (T, error) {
	return Do(builder, func() (T, error) {
		return operation(state)
	}, opts...)
}

// DoWithStateContext is DoContext for operations that must record progress
// across attempts. The same *S is passed to every attempt, in order, with no
// copying.
func DoWithStateContext[S, T any](ctx context.Context, builder backoff.Builder, state *S, operation func(ctx context.Context, state *S) (T, error), opts ...Option) (T, error) {
	return DoContext(ctx, builder, func(ctx context.Context) (T, error) {
		return operation(ctx, state)
	}, opts...)
}
