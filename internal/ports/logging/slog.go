// Package logging adapts the standard structured logger to the
// runtime.Logger interface the library is written against, so binaries and
// tests share one logging story.
package logging

import (
	"fmt"
	"log/slog"

	"github.com/heroiclabs/nakama-common/runtime"
)

type slogLogger struct {
	l      *slog.Logger
	fields map[string]interface{}
}

// NewSlogLogger wraps an slog.Logger as a runtime.Logger.
func NewSlogLogger(l *slog.Logger) runtime.Logger {
	return &slogLogger{l: l}
}

func (s *slogLogger) Debug(format string, v ...interface{}) {
	s.l.Debug(fmt.Sprintf(format, v...))
}

func (s *slogLogger) Info(format string, v ...interface{}) {
	s.l.Info(fmt.Sprintf(format, v...))
}

func (s *slogLogger) Warn(format string, v ...interface{}) {
	s.l.Warn(fmt.Sprintf(format, v...))
}

func (s *slogLogger) Error(format string, v ...interface{}) {
	s.l.Error(fmt.Sprintf(format, v...))
}

func (s *slogLogger) WithField(key string, v interface{}) runtime.Logger {
	return s.WithFields(map[string]interface{}{key: v})
}

func (s *slogLogger) WithFields(fields map[string]interface{}) runtime.Logger {
	merged := make(map[string]interface{}, len(s.fields)+len(fields))
	for k, v := range s.fields {
		merged[k] = v
	}
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		merged[k] = v
		args = append(args, k, v)
	}
	return &slogLogger{l: s.l.With(args...), fields: merged}
}

func (s *slogLogger) Fields() map[string]interface{} {
	return s.fields
}
