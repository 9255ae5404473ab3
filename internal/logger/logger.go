// Package logger provides a simple logging interface for wheel components.
// It allows packages to log debug, info, warn, and error messages without
// being coupled to a specific logging implementation.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugEnv enables debug output on the stderr logger when set to any value.
const DebugEnv = "WHEEL_DEBUG"

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// zapLogger adapts a zap sugared logger to Logger. Every message is
// prefixed (e.g. "[tui]" or "[pick]") so mixed output stays greppable.
type zapLogger struct {
	s      *zap.SugaredLogger
	prefix string
}

func newZapLogger(core zapcore.Core, prefix string) *zapLogger {
	return &zapLogger{s: zap.New(core).Sugar(), prefix: prefix}
}

func (l *zapLogger) msg(format string, args []interface{}) string {
	m := fmt.Sprintf(format, args...)
	if l.prefix == "" {
		return m
	}
	return l.prefix + " " + m
}

func (l *zapLogger) Debug(format string, args ...interface{}) {
	l.s.Debug(l.msg(format, args))
}

func (l *zapLogger) Info(format string, args ...interface{}) {
	l.s.Info(l.msg(format, args))
}

func (l *zapLogger) Warn(format string, args ...interface{}) {
	l.s.Warn(l.msg(format, args))
}

func (l *zapLogger) Error(format string, args ...interface{}) {
	l.s.Error(l.msg(format, args))
}

// NewEnvLogger creates a stderr logger that respects the WHEEL_DEBUG environment variable.
// The prefix is prepended to all log messages (e.g., "[pick]").
func NewEnvLogger(prefix string) Logger {
	return NewEnvLoggerTo(os.Stderr, prefix)
}

// NewEnvLoggerTo is NewEnvLogger writing to w instead of stderr.
func NewEnvLoggerTo(w io.Writer, prefix string) Logger {
	level := zapcore.InfoLevel
	if os.Getenv(DebugEnv) != "" {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return newZapLogger(core, prefix)
}

// noopLogger implements Logger but discards all messages.
type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Info(format string, args ...interface{})  {}
func (l *noopLogger) Warn(format string, args ...interface{})  {}
func (l *noopLogger) Error(format string, args ...interface{}) {}

// LogMessage represents a captured log message.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures log messages for testing.
type BufferLogger struct {
	Messages []LogMessage
}

// NewBufferLogger creates a logger that captures messages for inspection.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{
		Messages: make([]LogMessage, 0),
	}
}

func (l *BufferLogger) Debug(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "debug", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Info(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "info", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Warn(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "warn", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Error(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "error", Message: fmt.Sprintf(format, args...)})
}

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Contains returns true if any captured message contains substr.
func (l *BufferLogger) Contains(substr string) bool {
	for _, m := range l.Messages {
		if strings.Contains(m.Message, substr) {
			return true
		}
	}
	return false
}

// Clear removes all captured messages.
func (l *BufferLogger) Clear() {
	l.Messages = l.Messages[:0]
}

// defaultLogger is the package-level default logger.
var defaultLogger = NewEnvLogger("")

// Default returns the default logger for the package.
func Default() Logger {
	return defaultLogger
}

// SetDefault sets the default logger for the package.
func SetDefault(l Logger) {
	defaultLogger = l
}
