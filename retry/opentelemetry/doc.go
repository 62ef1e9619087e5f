// Package opentelemetry bridges the retry notify hook to OpenTelemetry
// metrics.
//
// NewNotify builds a hook that records one counter increment per retry and
// the backoff delay applied before it:
//
//	notify, err := opentelemetry.NewNotify(
//		opentelemetry.WithMeterProvider(provider),
//	)
//	if err != nil {
//		return err
//	}
//
//	result, err := retry.DoContext(ctx, backoff.NewExponentialBuilder(), op,
//		retry.Notify(notify),
//	)
//
// Because notify fires exactly once per sleep performed, the counter counts
// retries, not failures: the terminal failure of an exhausted loop is not
// recorded here.
package opentelemetry
