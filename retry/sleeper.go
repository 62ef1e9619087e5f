package retry

import (
	"context"
	"fmt"
	"time"
)

// Sleeper waits out an inter-attempt delay, occupying the calling goroutine.
// Implementations must tolerate zero and negative durations.
type Sleeper interface {
	Sleep(delay time.Duration)
}

// SleeperFunc adapts a plain function to the Sleeper interface.
type SleeperFunc func(delay time.Duration)

// Sleep calls f.
func (f SleeperFunc) Sleep(delay time.Duration) {
	f(delay)
}

type defaultSleeper struct{}

func (defaultSleeper) Sleep(delay time.Duration) {
	if delay > 0 {
		time.Sleep(delay)
	}
}

// ContextSleeper waits out an inter-attempt delay while honoring context
// cancellation. Sleep returns nil when the delay elapses, or the context
// error when cancellation wins the race.
type ContextSleeper interface {
	Sleep(ctx context.Context, delay time.Duration) error
}

// ContextSleeperFunc adapts a plain function to the ContextSleeper interface.
type ContextSleeperFunc func(ctx context.Context, delay time.Duration) error

// Sleep calls f.
func (f ContextSleeperFunc) Sleep(ctx context.Context, delay time.Duration) error {
	return f(ctx, delay)
}

type defaultContextSleeper struct{}

func (defaultContextSleeper) Sleep(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("context done: %w", err)
		}

		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("context done: %w", ctx.Err())
	}
}
