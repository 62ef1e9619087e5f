package backoff

import "time"

// Backoff is a stateful generator of inter-attempt wait durations.
//
// Next returns (delay, true) when the caller should wait delay before the
// next attempt, and (0, false) once the policy is exhausted. Exhaustion is
// terminal for the instance; a fresh sequence must be built to start over.
type Backoff interface {
	Next() (time.Duration, bool)
}

// Builder produces independent Backoff sequences from immutable
// configuration. Calling Build twice yields two sequences with no shared
// state.
type Builder interface {
	Build() Backoff
}
