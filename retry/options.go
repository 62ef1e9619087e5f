package retry

import "time"

// settings collects the per-call configuration shared by all four drivers.
type settings struct {
	when       func(error) bool
	notify     func(error, time.Duration)
	sleeper    Sleeper
	ctxSleeper ContextSleeper
}

// Option customizes a single driver invocation.
type Option func(*settings)

// When installs the retry predicate: it receives each operation error and
// returns true to retry or false to stop immediately. The default retries on
// every error.
func When(predicate func(err error) bool) Option {
	return func(s *settings) {
		s.when = predicate
	}
}

// Notify installs a hook invoked with the operation error and the upcoming
// delay, immediately before each retry sleep. It is a side effect only: its
// execution cannot abort the loop, and it never fires for the terminal
// failure.
func Notify(hook func(err error, next time.Duration)) Option {
	return func(s *settings) {
		s.notify = hook
	}
}

// WithSleeper overrides the blocking sleeper used by Do and DoWithState.
// The default sleeps with time.Sleep.
func WithSleeper(sleeper Sleeper) Option {
	return func(s *settings) {
		if sleeper != nil {
			s.sleeper = sleeper
		}
	}
}

// WithContextSleeper overrides the cancellation-aware sleeper used by
// DoContext and DoWithStateContext. The default races a timer against
// ctx.Done().
func WithContextSleeper(sleeper ContextSleeper) Option {
	return func(s *settings) {
		if sleeper != nil {
			s.ctxSleeper = sleeper
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{
		sleeper:    defaultSleeper{},
		ctxSleeper: defaultContextSleeper{},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	return s
}

func (s settings) shouldRetry(err error) bool {
	if s.when == nil {
		return true
	}

	return s.when(err)
}

func (s settings) fireNotify(err error, next time.Duration) {
	if s.notify != nil {
		s.notify(err, next)
	}
}
