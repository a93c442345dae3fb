package domain

import "context"

// Notifier delivers a human-readable message about a finished run.
// Notification failures never affect backup outcomes.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}
