// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import "log/slog"

// ComponentLogger tags every record with the scalus component that wrote it.
// Derived loggers add context and leave the parent unchanged.
type ComponentLogger struct {
	l *slog.Logger
}

// NewLogger returns a logger for component, bound to the current global
// logger.
func NewLogger(component string) *ComponentLogger {
	return &ComponentLogger{l: Logger().With("component", component)}
}

// WithProtocol adds the url protocol being handled.
func (c *ComponentLogger) WithProtocol(name string) *ComponentLogger {
	return c.WithFields("protocol", name)
}

// WithOperation adds the launch step being performed.
func (c *ComponentLogger) WithOperation(name string) *ComponentLogger {
	return c.WithFields("operation", name)
}

// WithFields adds alternating key-value pairs.
func (c *ComponentLogger) WithFields(fields ...any) *ComponentLogger {
	return &ComponentLogger{l: c.l.With(fields...)}
}

func (c *ComponentLogger) Debug(msg string, args ...any) { c.l.Debug(msg, args...) }
func (c *ComponentLogger) Info(msg string, args ...any)  { c.l.Info(msg, args...) }
func (c *ComponentLogger) Warn(msg string, args ...any)  { c.l.Warn(msg, args...) }
func (c *ComponentLogger) Error(msg string, args ...any) { c.l.Error(msg, args...) }
