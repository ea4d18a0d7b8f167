package interfaces

import (
	"context"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
)

// ICalendarEventRepository abstracts DynamoDB persistence for
// CalendarEvent.
type ICalendarEventRepository interface {
	Create(ctx context.Context, event entities.CalendarEvent) (entities.CalendarEvent, error)
	GetByID(ctx context.Context, id string) (entities.CalendarEvent, error)
	Save(ctx context.Context, event entities.CalendarEvent) (entities.CalendarEvent, error)
	ListByOrganizer(ctx context.Context, organizerID string) ([]entities.CalendarEvent, error)
}
