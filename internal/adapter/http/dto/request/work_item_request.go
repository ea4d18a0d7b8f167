package request

import (
	"strings"
	"time"
)

// CreateWorkItemRequest assigns a deadline-bound task.
type CreateWorkItemRequest struct {
	Kind         string    `json:"kind" binding:"required"`
	AssigneeID   string    `json:"assignee_id" binding:"required"`
	AssigneeRole string    `json:"assignee_role" binding:"required"`
	RefID        string    `json:"ref_id"`
	DueAt        time.Time `json:"due_at" binding:"required"`
}

func (r CreateWorkItemRequest) ResolveKind() string {
	return strings.TrimSpace(r.Kind)
}

func (r CreateWorkItemRequest) ResolveAssigneeID() string {
	return strings.TrimSpace(r.AssigneeID)
}

func (r CreateWorkItemRequest) ResolveAssigneeRole() string {
	return strings.ToLower(strings.TrimSpace(r.AssigneeRole))
}
