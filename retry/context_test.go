//go:build unit

package retry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LerianStudio/lib-retry/retry/backoff"
)

// recordingContextSleeper collects requested delays without sleeping.
type recordingContextSleeper struct {
	slept []time.Duration
	err   error
}

func (r *recordingContextSleeper) Sleep(_ context.Context, delay time.Duration) error {
	r.slept = append(r.slept, delay)
	return r.err
}

func TestDoContext_SuccessAfterFailures(t *testing.T) {
	t.Parallel()

	sleeper := &recordingContextSleeper{}
	calls := 0

	value, err := DoContext(context.Background(), newScripted(time.Millisecond, time.Millisecond),
		func(context.Context) (string, error) {
			calls++

			if calls < 3 {
				return "", errTransient
			}

			return "ok", nil
		},
		WithContextSleeper(sleeper),
	)

	require.NoError(t, err)
	assert.Equal(t, "ok", value)
	assert.Equal(t, 3, calls)
	assert.Len(t, sleeper.slept, 2)
}

func TestDoContext_OperationReceivesCallerContext(t *testing.T) {
	t.Parallel()

	type ctxKey struct{}

	ctx := context.WithValue(context.Background(), ctxKey{}, "marker")

	_, err := DoContext(ctx, newScripted(), func(ctx context.Context) (string, error) {
		assert.Equal(t, "marker", ctx.Value(ctxKey{}))
		return "ok", nil
	})

	require.NoError(t, err)
}

func TestDoContext_CancellationDuringSleep(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	start := time.Now()

	_, err := DoContext(ctx, backoff.NewConstantBuilder().WithDelay(10*time.Second).WithMaxTimes(3),
		func(context.Context) (string, error) {
			calls++
			return "", errTransient
		},
	)

	// Cancellation interrupted the 10s sleep with bounded latency and the
	// operation was not invoked again.
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Equal(t, 1, calls)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, errTransient)
}

func TestDoContext_PendingCancellationWinsOverRetry(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	sleeper := &recordingContextSleeper{}
	notified := 0
	calls := 0

	_, err := DoContext(ctx, newScripted(time.Millisecond, time.Millisecond),
		func(context.Context) (string, error) {
			calls++
			cancel() // cancellation lands while the attempt is in flight

			return "", errTransient
		},
		Notify(func(error, time.Duration) { notified++ }),
		WithContextSleeper(sleeper),
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, errTransient)

	// Honored at the sleep boundary: the in-flight attempt completed, then
	// the loop stopped before notifying or sleeping.
	assert.Equal(t, 1, calls)
	assert.Zero(t, notified)
	assert.Empty(t, sleeper.slept)
}

func TestDoContext_SleeperErrorStopsLoop(t *testing.T) {
	t.Parallel()

	sleeper := &recordingContextSleeper{err: context.DeadlineExceeded}
	calls := 0

	_, err := DoContext(context.Background(), newScripted(time.Millisecond),
		func(context.Context) (string, error) {
			calls++
			return "", errTransient
		},
		WithContextSleeper(sleeper),
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.ErrorIs(t, err, errTransient)
	assert.Equal(t, 1, calls)
}

func TestDoContext_ExhaustionReturnsOperationErrorOnly(t *testing.T) {
	t.Parallel()

	_, err := DoContext(context.Background(), newScripted(),
		func(context.Context) (string, error) {
			return "", errTransient
		},
	)

	assert.Equal(t, errTransient, err)
	assert.NotErrorIs(t, err, context.Canceled)
}

func TestDoContext_PredicateShortCircuit(t *testing.T) {
	t.Parallel()

	builder := newScripted(time.Millisecond)
	calls := 0

	_, err := DoContext(context.Background(), builder,
		func(context.Context) (string, error) {
			calls++
			return "", errTransient
		},
		When(func(error) bool { return false }),
	)

	require.ErrorIs(t, err, errTransient)
	assert.Equal(t, 1, calls)
	assert.Zero(t, builder.seq.consulted)
}
