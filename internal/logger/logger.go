package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger carrying the caller identity and branch from
// the request context, when present.
func WithContext(ctx context.Context) *Logger {
	logger := New()

	if subject, ok := ctx.Value("subject").(string); ok && subject != "" {
		logger.Entry = logger.Entry.WithField("subject", subject)
	}
	if branch, ok := ctx.Value("branch_id").(string); ok && branch != "" {
		logger.Entry = logger.Entry.WithField("branch_id", branch)
	}
	if requestID, ok := ctx.Value("request_id").(string); ok && requestID != "" {
		logger.Entry = logger.Entry.WithField("request_id", requestID)
	}

	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}
