package interfaces

import "context"

// Notification describes one status transition for the dispatcher.
type Notification struct {
	Topic       string
	AggregateID string
	Status      string
	Recipient   string
}

// INotifier is informed of every accepted transition. Delivery is
// fire-and-forget; implementations must not block the calling transition
// beyond a bounded timeout.
type INotifier interface {
	Notify(ctx context.Context, n Notification)
}
