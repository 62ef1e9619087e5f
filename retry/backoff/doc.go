// Package backoff provides pluggable backoff policies for retry loops.
//
// # Overview
//
// A policy is configured through an immutable Builder and consumed as a
// stateful Backoff sequence. Builders are plain value types: every With*
// mutator returns a modified copy, so a builder can be shared freely and
// reused to produce any number of independent sequences.
//
//	builder := backoff.NewExponentialBuilder().
//		WithInitialDelay(100 * time.Millisecond).
//		WithMaxDelay(5 * time.Second).
//		WithMaxTimes(5).
//		WithJitter()
//
//	seq := builder.Build()
//	for {
//		delay, ok := seq.Next()
//		if !ok {
//			break // budget spent
//		}
//		time.Sleep(delay)
//	}
//
// # Policies
//
//   - Constant: the same delay every time.
//   - Exponential: delay grows by a multiplicative factor, capped at a maximum.
//   - Fibonacci: delay follows the Fibonacci recurrence, capped at a maximum.
//
// # Jitter
//
// With jitter enabled, each emitted delay is drawn uniformly from
// [0, computed], which decorrelates retry storms across many callers.
// The entropy source is injectable via WithJitterSource so tests can assert
// exact values; the default source is a PCG generator seeded from crypto/rand.
//
// # Lifecycle
//
// A sequence is exclusively owned by one retry loop and is not restartable:
// once Next returns false the instance stays exhausted. Build a fresh
// sequence from the same builder to start over.
package backoff
