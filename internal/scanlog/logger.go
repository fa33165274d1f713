package scanlog

import (
	"log/slog"
	"time"

	"autoasr/internal/logging"
)

// Logger records scan entries in emission order, mirrors each one onto an
// optional live stream, and bridges them into structured logging. It is
// owned by a single scan invocation and is not safe for concurrent use.
type Logger struct {
	entries []Entry
	stream  *Stream
	slog    *slog.Logger
}

// NewLogger builds a scan logger. Both stream and base may be nil.
func NewLogger(stream *Stream, base *slog.Logger) *Logger {
	if base == nil {
		base = logging.NewNop()
	}
	return &Logger{stream: stream, slog: base}
}

// Info records an informational entry.
func (l *Logger) Info(message string) {
	l.emit(Entry{Level: LevelInfo, Message: message, Time: time.Now()})
}

// Success records a completed-work entry.
func (l *Logger) Success(message string) {
	l.emit(Entry{Level: LevelSuccess, Message: message, Time: time.Now()})
}

// Error records a failure entry.
func (l *Logger) Error(message string) {
	l.emit(Entry{Level: LevelError, Message: message, Time: time.Now()})
}

// Entries returns everything emitted so far, in order.
func (l *Logger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Finish closes the live stream and returns the accumulated entries.
func (l *Logger) Finish() []Entry {
	l.stream.Close()
	return l.Entries()
}

func (l *Logger) emit(entry Entry) {
	l.stream.Publish(entry)
	l.entries = append(l.entries, entry)

	switch entry.Level {
	case LevelError:
		l.slog.Error(entry.Message)
	case LevelSuccess:
		l.slog.Info(entry.Message, logging.Args(logging.String(logging.FieldStatus, "success"))...)
	default:
		l.slog.Info(entry.Message)
	}
}
