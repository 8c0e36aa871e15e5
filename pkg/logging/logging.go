// Package logging provides a small structured logging facade so that
// library packages can emit diagnostics without binding callers to a
// particular logging backend. The default backend is zap; a no-op logger
// is available for library use and tests.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Fields holds structured key/value pairs attached to log entries
type Fields map[string]any

// Logger is the logging interface used throughout the pipeline
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(err error, msg string, fields ...Fields)
	WithFields(fields Fields) Logger
}

// NewDefaultLogger creates a zap-backed logger writing to stderr at info level
func NewDefaultLogger() Logger {
	return NewLoggerWithLevel("info")
}

// NewLoggerWithLevel creates a zap-backed logger at the given level
// (debug, info, warn, error). Unknown levels fall back to info.
func NewLoggerWithLevel(level string) Logger {
	zapLevel := zapcore.InfoLevel
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "ts"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		zapLevel,
	)

	return &zapLogger{logger: zap.New(core).Sugar()}
}

// NewNoopLogger creates a logger that discards everything. Library
// components default to this so importing the pipeline stays silent.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// WithFields creates a default logger pre-populated with fields
func WithFields(fields Fields) Logger {
	return NewDefaultLogger().WithFields(fields)
}

type zapLogger struct {
	logger *zap.SugaredLogger
}

func (l *zapLogger) Debug(msg string, fields ...Fields) {
	l.logger.Debugw(msg, flatten(fields)...)
}

func (l *zapLogger) Info(msg string, fields ...Fields) {
	l.logger.Infow(msg, flatten(fields)...)
}

func (l *zapLogger) Warn(msg string, fields ...Fields) {
	l.logger.Warnw(msg, flatten(fields)...)
}

func (l *zapLogger) Error(err error, msg string, fields ...Fields) {
	args := flatten(fields)
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.logger.Errorw(msg, args...)
}

func (l *zapLogger) WithFields(fields Fields) Logger {
	return &zapLogger{logger: l.logger.With(flatten([]Fields{fields})...)}
}

func flatten(fields []Fields) []any {
	var args []any
	for _, f := range fields {
		for k, v := range f {
			args = append(args, k, v)
		}
	}
	return args
}

type noopLogger struct{}

func (l *noopLogger) Debug(msg string, fields ...Fields)            {}
func (l *noopLogger) Info(msg string, fields ...Fields)             {}
func (l *noopLogger) Warn(msg string, fields ...Fields)             {}
func (l *noopLogger) Error(err error, msg string, fields ...Fields) {}
func (l *noopLogger) WithFields(fields Fields) Logger               { return l }
