// Package logging provides the leveled logger used across tasclean.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Logger is a minimal structured logger facade over slog.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// Close releases the log file, if any.
	Close() error
}

type slogLogger struct {
	l      *slog.Logger
	closer io.Closer
}

func (s *slogLogger) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s *slogLogger) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s *slogLogger) Warn(msg string, args ...any)  { s.l.Warn(msg, args...) }
func (s *slogLogger) Error(msg string, args ...any) { s.l.Error(msg, args...) }

func (s *slogLogger) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

func levelFor(debug bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// NewText creates a text-handler logger writing to w.
func NewText(w io.Writer, debug bool) Logger {
	if w == nil {
		w = os.Stderr
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelFor(debug)})
	return &slogLogger{l: slog.New(h)}
}

// NewFile appends to the log file at path.
func NewFile(path string, debug bool) (Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelFor(debug)})
	return &slogLogger{l: slog.New(h), closer: f}, nil
}

// Nop returns a logger that drops everything.
func Nop() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
func (nopLogger) Close() error         { return nil }

var globalLogger Logger = Nop()

// SetGlobal replaces the global logger. A nil logger restores Nop.
func SetGlobal(l Logger) {
	if l == nil {
		l = Nop()
	}
	globalLogger = l
}

// Global returns the global logger instance.
func Global() Logger {
	return globalLogger
}

func Debug(msg string, args ...any) { globalLogger.Debug(msg, args...) }
func Info(msg string, args ...any)  { globalLogger.Info(msg, args...) }
func Warn(msg string, args ...any)  { globalLogger.Warn(msg, args...) }
func Error(msg string, args ...any) { globalLogger.Error(msg, args...) }
