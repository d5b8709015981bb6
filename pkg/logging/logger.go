package logging

import (
	"fmt"
	"log"

	"go.uber.org/zap"
)

type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// NewNoopLogger returns a Logger that discards everything.
func NewNoopLogger() Logger {
	return noopLogger{}
}

type stdLogger struct {
	prefix string
}

func (l stdLogger) Debug(msg string, args ...interface{}) {
	log.Printf("["+l.prefix+" DEBUG] "+msg, args...)
}

func (l stdLogger) Info(msg string, args ...interface{}) {
	log.Printf("["+l.prefix+" INFO] "+msg, args...)
}

func (l stdLogger) Error(msg string, args ...interface{}) {
	log.Printf("["+l.prefix+" ERROR] "+msg, args...)
}

// NewStdLogger writes through the standard library logger, tagging every
// line with prefix.
func NewStdLogger(prefix string) Logger {
	if prefix == "" {
		prefix = "LLD"
	}
	return stdLogger{prefix: prefix}
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

func (l zapLogger) Debug(msg string, args ...interface{}) {
	l.sugar.Debugf(msg, args...)
}

func (l zapLogger) Info(msg string, args ...interface{}) {
	l.sugar.Infof(msg, args...)
}

func (l zapLogger) Error(msg string, args ...interface{}) {
	l.sugar.Errorf(msg, args...)
}

// NewZapLogger adapts a zap logger. A nil logger yields a no-op Logger.
func NewZapLogger(logger *zap.Logger) Logger {
	if logger == nil {
		return noopLogger{}
	}
	return zapLogger{sugar: logger.Sugar()}
}

// NewZapProduction builds a JSON zap logger at the named level ("debug",
// "info", "warn", "error") writing to stderr.
func NewZapProduction(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
