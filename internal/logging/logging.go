// Package logging provides structured logging for the bnf service using
// Go's slog package.
package logging

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

var defaultLogger = slog.Default()

// Init configures the global logger. level is one of debug, info, warn,
// error (defaulting to info) and format is "json" or "text".
func Init(level, format string) {
	var slogLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: slogLevel}
	var handler slog.Handler
	if strings.ToLower(format) == "text" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

// Logger returns the global logger instance.
func Logger() *slog.Logger {
	return defaultLogger
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// HTTPRequest logs one served HTTP request.
func HTTPRequest(method, path, remoteAddr string, status int, duration time.Duration) {
	defaultLogger.Info("http request",
		"method", method,
		"path", path,
		"remote_addr", remoteAddr,
		"status", status,
		"duration_ms", duration.Milliseconds(),
	)
}

// WebSocketEvent logs a websocket lifecycle event.
func WebSocketEvent(event string, clients int) {
	defaultLogger.Info("websocket",
		"event", event,
		"clients", clients,
	)
}
