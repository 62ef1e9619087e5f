package backoff

import (
	"math"
	"time"
)

const (
	defaultFactor   = 2.0
	defaultMaxDelay = 60 * time.Second
)

// ExponentialBuilder configures a policy whose delay starts at an initial
// value and grows by a multiplicative factor, capped at a maximum delay.
// The zero value is not meaningful; use NewExponentialBuilder.
type ExponentialBuilder struct {
	initial    time.Duration
	factor     float64
	maxDelay   time.Duration
	noMaxDelay bool
	maxTimes   int
	unlimited  bool
	jitter     bool
	source     Source
	resetAfter time.Duration
}

// NewExponentialBuilder returns an exponential policy with a 1s initial
// delay, factor 2, a 60s delay cap, and a budget of 3 retries.
func NewExponentialBuilder() ExponentialBuilder {
	return ExponentialBuilder{
		initial:  defaultDelay,
		factor:   defaultFactor,
		maxDelay: defaultMaxDelay,
		maxTimes: defaultMaxTimes,
	}
}

// WithInitialDelay sets the first emitted delay. Zero is legal and yields
// zero-duration waits for the whole sequence.
func (b ExponentialBuilder) WithInitialDelay(delay time.Duration) ExponentialBuilder {
	b.initial = delay
	return b
}

// WithFactor sets the multiplicative growth factor. Values below 1 are
// treated as 1 at Build time.
func (b ExponentialBuilder) WithFactor(factor float64) ExponentialBuilder {
	b.factor = factor
	return b
}

// WithMaxDelay caps the emitted delay. The cap bounds delay size only; it
// does not terminate the sequence.
func (b ExponentialBuilder) WithMaxDelay(delay time.Duration) ExponentialBuilder {
	b.maxDelay = delay
	b.noMaxDelay = false

	return b
}

// WithoutMaxDelay removes the delay cap; growth is bounded only by overflow
// protection.
func (b ExponentialBuilder) WithoutMaxDelay() ExponentialBuilder {
	b.noMaxDelay = true
	return b
}

// WithMaxTimes sets the retry budget: the number of delays the sequence
// emits before exhausting. Zero means the sequence is immediately exhausted.
func (b ExponentialBuilder) WithMaxTimes(times int) ExponentialBuilder {
	b.maxTimes = times
	b.unlimited = false

	return b
}

// WithoutMaxTimes removes the retry budget; the sequence never exhausts.
func (b ExponentialBuilder) WithoutMaxTimes() ExponentialBuilder {
	b.unlimited = true
	return b
}

// WithJitter draws each emitted delay uniformly from [0, computed], where
// computed is the capped exponential delay for that step.
func (b ExponentialBuilder) WithJitter() ExponentialBuilder {
	b.jitter = true
	return b
}

// WithJitterSource enables jitter backed by the given entropy source.
func (b ExponentialBuilder) WithJitterSource(src Source) ExponentialBuilder {
	b.jitter = true
	b.source = src

	return b
}

// WithDelayResetAfter makes the sequence fall back to the initial delay when
// more than threshold has elapsed since the previous emission, i.e. when the
// attempt in between ran long before failing. Useful for long-lived
// connection loops where a stable period should restart the backoff ramp.
// Zero (the default) disables the reset.
func (b ExponentialBuilder) WithDelayResetAfter(threshold time.Duration) ExponentialBuilder {
	b.resetAfter = threshold
	return b
}

// Build produces a fresh, independently stateful sequence.
func (b ExponentialBuilder) Build() Backoff {
	factor := b.factor
	if factor < 1 {
		factor = 1
	}

	var maxDelay time.Duration
	if !b.noMaxDelay {
		maxDelay = b.maxDelay
	}

	return &exponentialBackoff{
		initial:    b.initial,
		current:    b.initial,
		factor:     factor,
		maxDelay:   maxDelay,
		maxTimes:   b.maxTimes,
		unlimited:  b.unlimited,
		source:     resolveSource(b.jitter, b.source),
		resetAfter: b.resetAfter,
		now:        time.Now,
	}
}

type exponentialBackoff struct {
	initial    time.Duration
	current    time.Duration
	factor     float64
	maxDelay   time.Duration // 0 = uncapped
	maxTimes   int
	unlimited  bool
	source     Source // nil when jitter is disabled
	resetAfter time.Duration
	lastEmit   time.Time
	emitted    int
	now        func() time.Time
}

func (s *exponentialBackoff) Next() (time.Duration, bool) {
	if !s.unlimited {
		if s.emitted >= s.maxTimes {
			return 0, false
		}

		s.emitted++
	}

	if s.resetAfter > 0 {
		emitTime := s.now()
		if !s.lastEmit.IsZero() && emitTime.Sub(s.lastEmit) > s.resetAfter {
			s.current = s.initial
		}

		s.lastEmit = emitTime
	}

	delay := s.current
	if s.maxDelay > 0 && delay > s.maxDelay {
		delay = s.maxDelay
	}

	s.advance(delay)

	if s.source != nil {
		delay = applyJitter(s.source, delay)
	}

	return delay, true
}

// advance computes the delay for the following step from the capped current
// one, guarding the multiplication against int64 overflow.
func (s *exponentialBackoff) advance(capped time.Duration) {
	next := float64(capped) * s.factor
	if next > float64(math.MaxInt64) {
		s.current = time.Duration(math.MaxInt64)
	} else {
		s.current = time.Duration(next)
	}

	if s.maxDelay > 0 && s.current > s.maxDelay {
		s.current = s.maxDelay
	}
}
