package backoff

import "time"

// QuickExponential is tuned for component startup: many fast retries with a
// tight delay cap, so transient wiring races resolve within a second or two.
func QuickExponential() ExponentialBuilder {
	return NewExponentialBuilder().
		WithInitialDelay(50 * time.Millisecond).
		WithFactor(1.5).
		WithMaxDelay(1 * time.Second).
		WithMaxTimes(10).
		WithJitter()
}

// PersistentExponential is tuned for critical resources that must eventually
// come back: a long budget with delays ramping up to ten seconds.
func PersistentExponential() ExponentialBuilder {
	return NewExponentialBuilder().
		WithInitialDelay(200 * time.Millisecond).
		WithMaxDelay(10 * time.Second).
		WithMaxTimes(30).
		WithJitter()
}
