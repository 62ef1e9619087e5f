package zap

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultMessage = "operation failed, backing off before retry"

// Notify returns a notify hook that logs each retry at warn level with the
// operation error and the upcoming delay as structured fields.
func Notify(logger *zap.Logger) func(err error, next time.Duration) {
	return NotifyLevel(logger, zapcore.WarnLevel)
}

// NotifyLevel is Notify with an explicit log level. A nil logger yields a
// no-op hook.
func NotifyLevel(logger *zap.Logger, level zapcore.Level) func(err error, next time.Duration) {
	if logger == nil {
		return func(error, time.Duration) {}
	}

	logger = logger.WithOptions(zap.AddCallerSkip(1))

	return func(err error, next time.Duration) {
		if entry := logger.Check(level, defaultMessage); entry != nil {
			entry.Write(zap.Error(err), zap.Duration("backoff", next))
		}
	}
}
