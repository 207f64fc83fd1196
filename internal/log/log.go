// SPDX-License-Identifier: Unlicense OR MIT

// Package log holds the logger shared by the toolkit packages.
package log

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
)

// LevelTrace is below slog.LevelDebug and reports every routed event.
const LevelTrace = slog.LevelDebug - 4

// level controls the default logger. It starts at Info, which
// suppresses focus and grab debugging.
var level = new(slog.LevelVar)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// SetLevel sets the level of the default logger.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// SetLogger replaces the logger. A nil l restores the default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}
	logger.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return logger.Load()
}

// Enabled reports whether messages at l are logged.
func Enabled(l slog.Level) bool {
	return Logger().Enabled(context.Background(), l)
}

// Trace logs at LevelTrace.
func Trace(msg string, args ...any) {
	Logger().Log(context.Background(), LevelTrace, msg, args...)
}

func Debug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	Logger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Logger().Error(msg, args...)
}
