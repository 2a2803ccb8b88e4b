package common

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
)

// Logger carries structured request-scoped logging through the application.
type Logger interface {
	Log(level, message string, metadata map[string]interface{})
}

// Context keys for passing the logger through context
type contextKey int

const (
	loggerKey contextKey = iota
)

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext extracts the logger from context, or returns a no-op
// logger if none was attached.
func LoggerFromContext(ctx context.Context) Logger {
	if logger, ok := ctx.Value(loggerKey).(Logger); ok {
		return logger
	}
	return &noOpLogger{}
}

// noOpLogger is a logger that does nothing (fallback when no logger in context)
type noOpLogger struct{}

func (l *noOpLogger) Log(level, message string, metadata map[string]interface{}) {
	// Do nothing
}

// StdLogger writes level-tagged lines through the standard library logger.
// Metadata keys are sorted so output is stable.
type StdLogger struct {
	out      *log.Logger
	minLevel int
}

var levelRank = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

// NewStdLogger creates a logger that drops entries below minLevel ("debug",
// "info", "warn", "error"). A nil out uses the process-default logger.
func NewStdLogger(out *log.Logger, minLevel string) *StdLogger {
	if out == nil {
		out = log.Default()
	}
	rank, ok := levelRank[strings.ToLower(minLevel)]
	if !ok {
		rank = levelRank["info"]
	}
	return &StdLogger{out: out, minLevel: rank}
}

func (l *StdLogger) Log(level, message string, metadata map[string]interface{}) {
	rank, ok := levelRank[strings.ToLower(level)]
	if !ok {
		rank = levelRank["info"]
	}
	if rank < l.minLevel {
		return
	}

	var sb strings.Builder
	sb.WriteString(strings.ToUpper(level))
	sb.WriteString(" ")
	sb.WriteString(message)

	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf(" %s=%v", k, metadata[k]))
	}

	l.out.Println(sb.String())
}
