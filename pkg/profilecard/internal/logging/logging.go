// Package logging owns the process-wide slog loggers. Output goes to stdout
// and, once SetLogPath has been called, to a log file as well.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu          sync.Mutex
	logFile     *os.File
	logPath     string
	stdout      io.Writer = os.Stdout
	multiWriter io.Writer

	logger   *slog.Logger
	levelVar = &slog.LevelVar{}

	internalLogger   *slog.Logger
	internalLevelVar = &slog.LevelVar{}
)

// SetLogPath sets the full path for the log file, including filename.
// Parent directories are created when the first logger is built.
// Call before GetLogger to take effect.
func SetLogPath(path string) {
	mu.Lock()
	defer mu.Unlock()
	logPath = path
}

// setup must be called with mu held.
func setup() io.Writer {
	if multiWriter != nil {
		return multiWriter
	}

	multiWriter = stdout
	if logPath == "" {
		return multiWriter
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return multiWriter
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		// Can't open log file, fall back to console-only
		return multiWriter
	}

	logFile = f
	multiWriter = io.MultiWriter(stdout, logFile)
	return multiWriter
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(setup(), &slog.HandlerOptions{Level: levelVar}))
	}
	return logger
}

// GetInternalLogger returns the logger used by the rendering backends. It is
// kept separate so SDL chatter can stay at error level while the application
// logs at info.
func GetInternalLogger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if internalLogger == nil {
		internalLogger = slog.New(slog.NewJSONHandler(setup(), &slog.HandlerOptions{Level: internalLevelVar})).
			With("component", "backend")
	}
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	internalLevelVar.Set(level)
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to slog
// levels. Anything else is info.
func ParseLevel(rawLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLevel(rawLevel))
}

// CloseLogger closes the log file, if one was opened.
func CloseLogger() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
