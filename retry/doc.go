// Package retry re-invokes a fallible operation until it succeeds, governed
// by a pluggable backoff policy from the backoff subpackage.
//
// # Overview
//
// The package offers four parallel entry points over the same state machine:
//
//   - Do: blocking; sleeps occupy the calling goroutine.
//   - DoContext: cooperative; the sleep races context cancellation.
//   - DoWithState / DoWithStateContext: thread a caller-owned pointer through
//     every attempt, for operations that must record progress (a cursor, a
//     partial write offset) visible to the next attempt.
//
// Retries are strictly sequential: the driver introduces no concurrency and
// never invokes the operation while a previous attempt is in flight.
//
// # Basic usage
//
//	content, err := retry.Do(
//		backoff.NewExponentialBuilder(),
//		func() (string, error) { return fetch() },
//		retry.When(func(err error) bool { return errors.Is(err, io.EOF) }),
//		retry.Notify(func(err error, next time.Duration) {
//			log.Printf("retrying in %v: %v", next, err)
//		}),
//	)
//
// # Contract
//
// The operation is always invoked at least once. On success the value is
// returned immediately and the backoff sequence is not consulted. On failure
// the When predicate decides whether to retry (default: always); a rejected
// error is returned immediately without paying for a delay. When the backoff
// sequence exhausts, the last operation error is returned as-is. The Notify
// hook fires exactly once per sleep that is about to happen, never on the
// terminal failure.
//
// Operation errors pass through verbatim; the driver neither wraps nor
// transforms them. The one exception is cancellation in the context
// variants, which is surfaced as errors.Join(ctx.Err(), lastErr) so callers
// can distinguish it with errors.Is(err, context.Canceled).
//
// # Non-goals
//
// No circuit breaking, no concurrency limiting, no per-attempt timeouts
// (wrap the operation itself if it needs one), and no retry budget shared
// across logical operations.
package retry
