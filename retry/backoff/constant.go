package backoff

import "time"

const (
	defaultDelay    = 1 * time.Second
	defaultMaxTimes = 3
)

// ConstantBuilder configures a policy that waits the same base delay before
// every retry. The zero value is not meaningful; use NewConstantBuilder.
type ConstantBuilder struct {
	delay     time.Duration
	maxTimes  int
	unlimited bool
	jitter    bool
	source    Source
}

// NewConstantBuilder returns a constant policy with a 1s delay and a budget
// of 3 retries.
func NewConstantBuilder() ConstantBuilder {
	return ConstantBuilder{
		delay:    defaultDelay,
		maxTimes: defaultMaxTimes,
	}
}

// WithDelay sets the base delay. Zero is legal and yields zero-duration waits.
func (b ConstantBuilder) WithDelay(delay time.Duration) ConstantBuilder {
	b.delay = delay
	return b
}

// WithMaxTimes sets the retry budget: the number of delays the sequence
// emits before exhausting. Zero means the sequence is immediately exhausted.
func (b ConstantBuilder) WithMaxTimes(times int) ConstantBuilder {
	b.maxTimes = times
	b.unlimited = false

	return b
}

// WithoutMaxTimes removes the retry budget; the sequence never exhausts.
func (b ConstantBuilder) WithoutMaxTimes() ConstantBuilder {
	b.unlimited = true
	return b
}

// WithJitter draws each emitted delay uniformly from [0, delay].
func (b ConstantBuilder) WithJitter() ConstantBuilder {
	b.jitter = true
	return b
}

// WithJitterSource enables jitter backed by the given entropy source.
func (b ConstantBuilder) WithJitterSource(src Source) ConstantBuilder {
	b.jitter = true
	b.source = src

	return b
}

// Build produces a fresh, independently stateful sequence.
func (b ConstantBuilder) Build() Backoff {
	return &constantBackoff{
		delay:     b.delay,
		maxTimes:  b.maxTimes,
		unlimited: b.unlimited,
		source:    resolveSource(b.jitter, b.source),
	}
}

type constantBackoff struct {
	delay     time.Duration
	maxTimes  int
	unlimited bool
	source    Source // nil when jitter is disabled
	emitted   int
}

func (s *constantBackoff) Next() (time.Duration, bool) {
	if !s.unlimited {
		if s.emitted >= s.maxTimes {
			return 0, false
		}

		s.emitted++
	}

	delay := s.delay
	if s.source != nil {
		delay = applyJitter(s.source, delay)
	}

	return delay, true
}
