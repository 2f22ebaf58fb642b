package logging

import (
	"context"
	"log"
	"strings"
	"sync/atomic"
)

type requestIDKey struct{}

type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var minLevel atomic.Int32

func init() {
	minLevel.Store(int32(LevelInfo))
}

// ParseLevel maps LOG_LEVEL values onto a Level, falling back to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func SetLevel(l Level) { minLevel.Store(int32(l)) }

func enabled(l Level) bool { return int32(l) >= minLevel.Load() }

// WithRequestID stores the request ID in a standard context
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestID extracts the request ID from a standard context
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// Logger provides structured logging for services
type Logger struct {
	requestID string
}

// NewLogger creates a logger with request context
func NewLogger(ctx context.Context) *Logger {
	requestID := RequestID(ctx)
	if requestID == "" {
		requestID = "unknown"
	}
	return &Logger{requestID: requestID}
}

func (l *Logger) logf(level Level, tag, operation, format string, args ...interface{}) {
	if !enabled(level) {
		return
	}
	log.Printf("["+tag+"] request_id=%s operation=%s "+format, append([]interface{}{l.requestID, operation}, args...)...)
}

func (l *Logger) LogDebugf(operation string, format string, args ...interface{}) {
	l.logf(LevelDebug, "debug", operation, format, args...)
}

// LogInfof logs a formatted info message with context
func (l *Logger) LogInfof(operation string, format string, args ...interface{}) {
	l.logf(LevelInfo, "info", operation, format, args...)
}

// LogWarnf logs a formatted warning with context
func (l *Logger) LogWarnf(operation string, format string, args ...interface{}) {
	l.logf(LevelWarn, "warn", operation, format, args...)
}

// LogError logs an error with context
func (l *Logger) LogError(operation string, err error) {
	l.logf(LevelError, "error", operation, "error=%v", err)
}
