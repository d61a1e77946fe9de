package notify

import (
	"context"
	"fmt"

	"github.com/gen2brain/beeep"
)

// beeepNotifier implements Notifier using the cross-platform beeep library.
type beeepNotifier struct {
	config Config
	send   func(title, message string) error
}

func newBeeepNotifier(config Config) *beeepNotifier {
	return &beeepNotifier{
		config: config,
		send: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}
}

// Send sends a notification using beeep.
func (n *beeepNotifier) Send(ctx context.Context, notification Notification) error {
	title := notification.Title
	if title == "" {
		title = n.config.AppName
	}

	if n.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.config.Timeout)
		defer cancel()
	}

	done := make(chan error, 1)
	go func() { done <- n.send(title, notification.Message) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%w: %w", ErrNotificationFailed, err)
		}
		return nil
	case <-ctx.Done():
		return ErrTimeout
	}
}
