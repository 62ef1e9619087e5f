package backoff

import (
	"math"
	"time"
)

// FibonacciBuilder configures a policy whose delay follows the Fibonacci
// recurrence seeded by the initial delay: d0, d0, 2*d0, 3*d0, 5*d0, ...
// capped at a maximum delay. The zero value is not meaningful; use
// NewFibonacciBuilder.
type FibonacciBuilder struct {
	initial    time.Duration
	maxDelay   time.Duration
	noMaxDelay bool
	maxTimes   int
	unlimited  bool
	jitter     bool
	source     Source
}

// NewFibonacciBuilder returns a fibonacci policy with a 1s initial delay,
// a 60s delay cap, and a budget of 3 retries.
func NewFibonacciBuilder() FibonacciBuilder {
	return FibonacciBuilder{
		initial:  defaultDelay,
		maxDelay: defaultMaxDelay,
		maxTimes: defaultMaxTimes,
	}
}

// WithInitialDelay sets the seed delay for the recurrence. Zero is legal and
// yields zero-duration waits for the whole sequence.
func (b FibonacciBuilder) WithInitialDelay(delay time.Duration) FibonacciBuilder {
	b.initial = delay
	return b
}

// WithMaxDelay caps the emitted delay. The cap bounds delay size only; it
// does not terminate the sequence.
func (b FibonacciBuilder) WithMaxDelay(delay time.Duration) FibonacciBuilder {
	b.maxDelay = delay
	b.noMaxDelay = false

	return b
}

// WithoutMaxDelay removes the delay cap; growth is bounded only by overflow
// protection.
func (b FibonacciBuilder) WithoutMaxDelay() FibonacciBuilder {
	b.noMaxDelay = true
	return b
}

// WithMaxTimes sets the retry budget: the number of delays the sequence
// emits before exhausting. Zero means the sequence is immediately exhausted.
func (b FibonacciBuilder) WithMaxTimes(times int) FibonacciBuilder {
	b.maxTimes = times
	b.unlimited = false

	return b
}

// WithoutMaxTimes removes the retry budget; the sequence never exhausts.
func (b FibonacciBuilder) WithoutMaxTimes() FibonacciBuilder {
	b.unlimited = true
	return b
}

// WithJitter draws each emitted delay uniformly from [0, computed], where
// computed is the capped fibonacci delay for that step.
func (b FibonacciBuilder) WithJitter() FibonacciBuilder {
	b.jitter = true
	return b
}

// WithJitterSource enables jitter backed by the given entropy source.
func (b FibonacciBuilder) WithJitterSource(src Source) FibonacciBuilder {
	b.jitter = true
	b.source = src

	return b
}

// Build produces a fresh, independently stateful sequence.
func (b FibonacciBuilder) Build() Backoff {
	var maxDelay time.Duration
	if !b.noMaxDelay {
		maxDelay = b.maxDelay
	}

	return &fibonacciBackoff{
		current:   b.initial,
		maxDelay:  maxDelay,
		maxTimes:  b.maxTimes,
		unlimited: b.unlimited,
		source:    resolveSource(b.jitter, b.source),
	}
}

type fibonacciBackoff struct {
	previous  time.Duration
	current   time.Duration
	maxDelay  time.Duration // 0 = uncapped
	maxTimes  int
	unlimited bool
	source    Source // nil when jitter is disabled
	emitted   int
}

func (s *fibonacciBackoff) Next() (time.Duration, bool) {
	if !s.unlimited {
		if s.emitted >= s.maxTimes {
			return 0, false
		}

		s.emitted++
	}

	delay := s.current
	if s.maxDelay > 0 && delay > s.maxDelay {
		delay = s.maxDelay
	}

	sum := s.previous + s.current
	if sum < s.current { // int64 overflow
		sum = time.Duration(math.MaxInt64)
	}

	s.previous, s.current = s.current, sum

	if s.source != nil {
		delay = applyJitter(s.source, delay)
	}

	return delay, true
}
