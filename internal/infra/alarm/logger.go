package alarm

import (
	"log/slog"

	"github.com/robfig/cron/v3"
)

type slogCronLogger struct {
	logger *slog.Logger
}

// NewSlogLogger routes cron's internal logging to slog. Info messages are
// logged at debug level since cron emits one per wake-up.
func NewSlogLogger(logger *slog.Logger) cron.Logger {
	if logger == nil {
		logger = slog.Default()
	}

	return &slogCronLogger{logger: logger.With("component", "cron")}
}

func (l *slogCronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *slogCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
