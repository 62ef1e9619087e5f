// Package zap bridges the retry notify hook to zap structured logging.
//
// It keeps the core retry package free of any logging dependency: callers
// who want each retry logged pass the adapter as a retry.Notify option.
//
//	logger, _ := zap.NewProduction()
//
//	result, err := retry.Do(
//		backoff.NewExponentialBuilder(),
//		connect,
//		retry.Notify(retryzap.Notify(logger)),
//	)
package zap
