// Package notify shows desktop notifications. scalus runs without a console
// when a browser hands it a URL, so failures are reported this way.
package notify

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Severity levels.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Notification represents a notification to be displayed.
type Notification struct {
	Title    string
	Message  string
	Severity string
}

// Notifier is the interface for notification systems.
type Notifier interface {
	// Send shows the notification. It returns ErrTimeout if the platform does
	// not accept it before the configured timeout.
	Send(ctx context.Context, notification Notification) error
}

// Config contains notification system configuration.
type Config struct {
	// AppName is used as the title when a notification has none.
	AppName string
	// Timeout for notification operations
	Timeout time.Duration
}

// DefaultConfig returns default notification configuration.
func DefaultConfig() Config {
	return Config{
		AppName: "Scalus",
		Timeout: 5 * time.Second,
	}
}

// New creates a notifier.
func New(config Config) Notifier {
	return newBeeepNotifier(config)
}

// Error types
var (
	ErrNotificationFailed = errors.New("failed to send notification")
	ErrTimeout            = errors.New("notification timeout")
)

// Error reports err through n with the given title.
func Error(ctx context.Context, n Notifier, title string, err error) error {
	return n.Send(ctx, Notification{
		Title:    title,
		Message:  fmt.Sprint(err),
		Severity: SeverityError,
	})
}
