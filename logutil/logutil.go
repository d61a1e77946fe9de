// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Level represents the logging level.
type Level int

const (
	// LevelDebug is for debug messages.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warnings.
	LevelWarn
	// LevelError is for errors.
	LevelError
)

// EnvDebug enables debug logging when set to "true".
const EnvDebug = "SCALUS_DEBUG"

// Rotation limits for the log file.
const (
	maxLogSizeMB  = 1
	maxLogBackups = 2
)

// Options configures the global logger.
type Options struct {
	// Level is the minimum level written.
	Level Level
	// Structured selects JSON output instead of text.
	Structured bool
	// FileName, when set, adds a rotating log file.
	FileName string
	// Console writes to stderr. It is implied when FileName is empty.
	Console bool
}

var (
	mu           sync.RWMutex
	globalLogger *slog.Logger
	currentOpts  = Options{Level: LevelInfo, Console: true}
	outputWriter io.Writer = os.Stderr
	fileWriter   *lumberjack.Logger
)

func init() {
	SetupLogger(false, false)
}

// SetupLogger configures the global logger to write to stderr.
// This function is safe for concurrent use.
func SetupLogger(debug, structured bool) {
	level := LevelInfo
	if debug {
		level = LevelDebug
	}
	Setup(Options{Level: level, Structured: structured, Console: true})
}

// Setup configures the global logger from opts. A previously opened log file
// is closed first. This function is safe for concurrent use.
func Setup(opts Options) {
	mu.Lock()
	defer mu.Unlock()

	closeFileLocked()

	var writers []io.Writer
	if opts.FileName != "" {
		fileWriter = &lumberjack.Logger{
			Filename:   opts.FileName,
			MaxSize:    maxLogSizeMB,
			MaxBackups: maxLogBackups,
		}
		writers = append(writers, fileWriter)
	}
	if opts.Console || opts.FileName == "" {
		writers = append(writers, os.Stderr)
	}

	currentOpts = opts
	outputWriter = io.MultiWriter(writers...)
	setupLoggerInternal()
}

// Close flushes and closes the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeFileLocked()
}

func closeFileLocked() error {
	if fileWriter == nil {
		return nil
	}
	err := fileWriter.Close()
	fileWriter = nil
	return err
}

// SetOutput sets the output writer for the logger.
// This is useful for testing or redirecting logs.
// This function is safe for concurrent use.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	outputWriter = w
	setupLoggerInternal()
}

// SetupLoggerWithWriter configures the logger with a custom writer.
// This function is safe for concurrent use.
func SetupLoggerWithWriter(w io.Writer, debug, structured bool) {
	mu.Lock()
	defer mu.Unlock()

	currentOpts.Level = LevelInfo
	if debug {
		currentOpts.Level = LevelDebug
	}
	currentOpts.Structured = structured
	outputWriter = w
	setupLoggerInternal()
}

// setupLoggerInternal rebuilds the handler from the current state.
// Caller must hold mu.Lock().
func setupLoggerInternal() {
	handlerOpts := &slog.HandlerOptions{
		Level: toSlogLevel(currentOpts.Level),
	}

	var handler slog.Handler
	if currentOpts.Structured {
		handler = slog.NewJSONHandler(outputWriter, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outputWriter, handlerOpts)
	}

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

func toSlogLevel(level Level) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsDebugEnabled returns true if debug logging is enabled, either
// programmatically or through the SCALUS_DEBUG environment variable.
func IsDebugEnabled() bool {
	mu.RLock()
	level := currentOpts.Level
	mu.RUnlock()
	return level == LevelDebug || os.Getenv(EnvDebug) == "true"
}

// Debug logs a debug message with optional key-value pairs.
// Debug messages are only logged when debug mode is enabled.
func Debug(msg string, args ...any) {
	if IsDebugEnabled() {
		Logger().Debug(msg, args...)
	}
}

// Info logs an info message with optional key-value pairs.
//
// Example:
//
//	logutil.Info("parsed url", "protocol", "rdp")
func Info(msg string, args ...any) {
	Logger().Info(msg, args...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}

// Error logs an error message with optional key-value pairs.
//
// Example:
//
//	logutil.Error("cannot read template file", "path", path, "error", err)
func Error(msg string, args ...any) {
	Logger().Error(msg, args...)
}

// ParseLevel parses a string into a Level.
// Valid values are: "debug", "verbose", "info", "information", "warn",
// "warning", "error", "fatal". Returns LevelInfo for unrecognized values.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "verbose":
		return LevelDebug
	case "info", "information":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error", "fatal":
		return LevelError
	default:
		return LevelInfo
	}
}

// GetLevel returns the current logging level.
func GetLevel() Level {
	mu.RLock()
	defer mu.RUnlock()
	return currentOpts.Level
}

// SetLevel sets the logging level programmatically.
// This function is safe for concurrent use.
func SetLevel(level Level) {
	mu.Lock()
	defer mu.Unlock()

	currentOpts.Level = level
	setupLoggerInternal()
}

// Logger returns the underlying slog.Logger for advanced usage.
// This function is safe for concurrent use.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}
