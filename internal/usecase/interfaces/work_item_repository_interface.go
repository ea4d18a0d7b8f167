package interfaces

import (
	"context"
	"time"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
)

// IWorkItemRepository abstracts DynamoDB persistence for SLA-tracked work
// items.
type IWorkItemRepository interface {
	Create(ctx context.Context, item entities.WorkItem) (entities.WorkItem, error)
	GetByID(ctx context.Context, id string) (entities.WorkItem, error)
	Save(ctx context.Context, item entities.WorkItem) (entities.WorkItem, error)
	ListByAssignee(ctx context.Context, assigneeID string) ([]entities.WorkItem, error)
	ListDueBetween(ctx context.Context, from, to time.Time) ([]entities.WorkItem, error)
}
