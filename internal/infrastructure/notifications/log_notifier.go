package notifications

import (
	"context"
	"log"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/usecase/interfaces"
)

// LogNotifier is the default dispatcher: it logs every accepted transition.
// Dispatch runs on its own goroutine so a slow sink can never hold up the
// transition that triggered it. A real broker client would honor the
// context here; a log write has nothing to interrupt.
type LogNotifier struct{}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(_ context.Context, notification interfaces.Notification) {
	go log.Printf("[notification][dispatch] topic=%s aggregate_id=%s status=%s recipient=%s",
		notification.Topic, notification.AggregateID, notification.Status, notification.Recipient)
}
