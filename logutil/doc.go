// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides a structured logging abstraction built on top of slog.
//
// A protocol handler usually runs without a console, so the logger can write
// to a size-rotated log file (via lumberjack) in addition to, or instead of,
// stderr.
//
// # Basic Usage
//
//	// Initialize logging (typically in main.go)
//	logutil.Setup(logutil.Options{
//		Level:    logutil.ParseLevel(settings.Logging.MinLevel),
//		FileName: settings.Logging.FileName,
//		Console:  settings.Logging.Console,
//	})
//	defer logutil.Close()
//
//	logutil.Info("parsing url", "url", raw)
//	logutil.Warn("missing token", "token", "Host")
//	logutil.Error("cannot read template", "error", err)
//
// # Debug Mode
//
// Debug logging can be enabled in two ways:
//   - Use LevelDebug (or SetupLogger(true, ...))
//   - Set SCALUS_DEBUG=true environment variable
//
// # Structured Logging
//
// With Structured set, logs are output as JSON:
//
//	{"time":"2024-01-15T10:30:00Z","level":"INFO","msg":"parsed url","protocol":"rdp"}
//
// Otherwise, logs use a human-readable text format:
//
//	time=2024-01-15T10:30:00Z level=INFO msg="parsed url" protocol=rdp
package logutil
