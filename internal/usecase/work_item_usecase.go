package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/lifecycle"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/sla"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/usecase/interfaces"
)

// DeadlineReport is the SLA view over one assignee's open items.
type DeadlineReport struct {
	NearDeadline []entities.WorkItem `json:"near_deadline"`
	Breached     []entities.WorkItem `json:"breached"`
}

// IWorkItemUseCase tracks assigned, deadline-bound tasks. The deadline and
// stats reads are pure rollups; external reminder jobs re-invoke them.

type IWorkItemUseCase interface {
	Create(ctx context.Context, actor entities.Actor, item entities.WorkItem) (entities.WorkItem, error)
	Complete(ctx context.Context, id string, actor entities.Actor) (entities.WorkItem, error)
	Cancel(ctx context.Context, id string, actor entities.Actor) (entities.WorkItem, error)
	Deadlines(ctx context.Context, assigneeID string, threshold time.Duration) (DeadlineReport, error)
	Stats(ctx context.Context, from, to time.Time) ([]sla.GroupStats, error)
}

type WorkItemUseCase struct {
	repo  interfaces.IWorkItemRepository
	clock func() time.Time
}

var _ IWorkItemUseCase = (*WorkItemUseCase)(nil)

func NewWorkItemUseCase(repo interfaces.IWorkItemRepository) *WorkItemUseCase {
	return &WorkItemUseCase{repo: repo, clock: time.Now}
}

func (u *WorkItemUseCase) Create(ctx context.Context, actor entities.Actor, item entities.WorkItem) (entities.WorkItem, error) {
	if actor.Role != entities.RoleOfficer {
		return entities.WorkItem{}, lifecycle.NewForbidden("work items are created by officers")
	}
	if strings.TrimSpace(item.AssigneeID) == "" {
		return entities.WorkItem{}, lifecycle.NewValidation("an assignee is required")
	}
	if item.DueAt.IsZero() {
		return entities.WorkItem{}, lifecycle.NewValidation("a due timestamp is required")
	}

	now := u.clock().UTC()
	item.ID = uuid.NewString()
	item.Status = entities.WorkItemStatusOpen
	item.CompletedAt = nil
	item.CreatedAt = now
	item.UpdatedAt = now
	return u.repo.Create(ctx, item)
}

func (u *WorkItemUseCase) Complete(ctx context.Context, id string, actor entities.Actor) (entities.WorkItem, error) {
	return u.finish(ctx, id, actor, entities.WorkItemStatusCompleted)
}

func (u *WorkItemUseCase) Cancel(ctx context.Context, id string, actor entities.Actor) (entities.WorkItem, error) {
	return u.finish(ctx, id, actor, entities.WorkItemStatusCancelled)
}

// Deadlines reports the assignee's near-deadline and breached open items.
func (u *WorkItemUseCase) Deadlines(ctx context.Context, assigneeID string, threshold time.Duration) (DeadlineReport, error) {
	assigneeID = strings.TrimSpace(assigneeID)
	if assigneeID == "" {
		return DeadlineReport{}, lifecycle.NewValidation("assignee id is required")
	}
	if threshold <= 0 {
		threshold = sla.DefaultNearDeadlineThreshold
	}

	items, err := u.repo.ListByAssignee(ctx, assigneeID)
	if err != nil {
		return DeadlineReport{}, err
	}

	now := u.clock().UTC()
	var report DeadlineReport
	for _, item := range items {
		switch {
		case sla.Breached(item, now):
			report.Breached = append(report.Breached, item)
		case sla.NearDeadline(item, now, threshold):
			report.NearDeadline = append(report.NearDeadline, item)
		}
	}
	return report, nil
}

// Stats aggregates on-time vs breached completions by role and kind over
// the due-date range.
func (u *WorkItemUseCase) Stats(ctx context.Context, from, to time.Time) ([]sla.GroupStats, error) {
	if !to.After(from) {
		return nil, lifecycle.NewValidation("the range must end after it starts")
	}
	items, err := u.repo.ListDueBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return sla.Rollup(items, u.clock().UTC(), from, to), nil
}

func (u *WorkItemUseCase) finish(ctx context.Context, id string, actor entities.Actor, status entities.WorkItemStatus) (entities.WorkItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkItem{}, lifecycle.NewValidation("work item id is required")
	}

	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkItem{}, err
	}
	if item.ID == "" {
		return entities.WorkItem{}, lifecycle.NewNotFound("work item not found")
	}
	if actor.Role != entities.RoleOfficer && item.AssigneeID != actor.ID {
		return entities.WorkItem{}, lifecycle.NewForbidden("work item belongs to another assignee")
	}
	if item.Finished() {
		return entities.WorkItem{}, lifecycle.NewValidation("work item is already " + string(item.Status))
	}

	now := u.clock().UTC()
	item.Status = status
	if status == entities.WorkItemStatusCompleted {
		completed := now
		item.CompletedAt = &completed
	}
	item.UpdatedAt = now

	saved, err := u.repo.Save(ctx, item)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.WorkItem{}, lifecycle.NewConflict("work item was modified concurrently; re-fetch and retry", item.ID)
		}
		return entities.WorkItem{}, err
	}
	return saved, nil
}
