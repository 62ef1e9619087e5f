package retry

import (
	"github.com/LerianStudio/lib-retry/retry/backoff"
)

// Do invokes operation until it succeeds, blocking the calling goroutine
// between attempts per the backoff policy.
//
// The loop stops on the first success, when the When predicate rejects an
// error, or when the backoff sequence exhausts; in the failure cases the
// last operation error is returned verbatim alongside the zero value of T.
func Do[T any](builder backoff.Builder, operation func() (T, error), opts ...Option) (T, error) {
	cfg := newSettings(opts)
	seq := builder.Build()

	var zero T

	for {
		value, err := operation()
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

		cfg.fireNotify(err, delay)
		cfg.sleeper.Sleep(delay)
	}
}
