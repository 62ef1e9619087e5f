package retry

import (
	"context"
	"errors"

	"github.com/LerianStudio/lib-retry/retry/backoff"
)

// DoContext invokes operation until it succeeds, honoring ctx cancellation
// at the sleep boundary.
//
// Cancellation is sampled immediately before each retry sleep and while the
// sleep is in progress, never mid-attempt: an attempt that is already
// running completes (or fails) on its own. When both the delay and the
// cancellation are ready, cancellation wins, so no further attempt is made.
//
// A cancellation outcome is returned as errors.Join(ctx.Err(), lastErr):
// errors.Is(err, context.Canceled) (or context.DeadlineExceeded)
// distinguishes it from an ordinary operation failure, while the last
// operation error stays inspectable.
func DoContext[T any](ctx context.Context, builder backoff.Builder, operation func(ctx context.Context) (T, error), opts ...Option) (T, error) {
	cfg := newSettings(opts)
	seq := builder.Build()

	var zero T

	for {
		value, err := operation(ctx)
		if err == nil {
			return value, nil
		}

		if !cfg.shouldRetry(err) {
			return zero, err
		}

		delay, ok := seq.Next()
		if !ok {
			return zero, err
		}

		// Sampled before arming the timer so that a cancellation that is
		// already pending takes precedence over one more attempt. Notify
		// must not fire here: no sleep is about to happen.
		if cause := ctx.Err(); cause != nil {
			return zero, errors.Join(cause, err)
		}

		cfg.fireNotify(err, delay)

		if serr := cfg.ctxSleeper.Sleep(ctx, delay); serr != nil {
			return zero, errors.Join(serr, err)
		}
	}
}
