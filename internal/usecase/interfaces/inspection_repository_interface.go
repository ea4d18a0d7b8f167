package interfaces

import (
	"context"
	"time"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
)

// IInspectionRepository abstracts DynamoDB persistence for Inspection
// bookings.
type IInspectionRepository interface {
	Create(ctx context.Context, booking entities.Inspection) (entities.Inspection, error)
	GetByID(ctx context.Context, id string) (entities.Inspection, error)
	Save(ctx context.Context, booking entities.Inspection) (entities.Inspection, error)
	ListByInspectorBetween(ctx context.Context, inspectorID string, from, to time.Time) ([]entities.Inspection, error)
	ListByApplicationID(ctx context.Context, applicationID string) ([]entities.Inspection, error)
}
