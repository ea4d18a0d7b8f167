package entities

import "time"

// WorkItemStatus of an assigned, deadline-tracked task.

type WorkItemStatus string

const (
	WorkItemStatusOpen       WorkItemStatus = "open"
	WorkItemStatusInProgress WorkItemStatus = "in_progress"
	WorkItemStatusCompleted  WorkItemStatus = "completed"
	WorkItemStatusCancelled  WorkItemStatus = "cancelled"
)

// WorkItemKind classifies the assignment for SLA rollups.

type WorkItemKind string

const (
	WorkItemDocumentReview    WorkItemKind = "document_review"
	WorkItemPaymentReview     WorkItemKind = "payment_review"
	WorkItemInspection        WorkItemKind = "inspection"
	WorkItemApplicationReview WorkItemKind = "application_review"
)

// WorkItem is one assigned task with a due timestamp, tracked by the SLA
// package.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (assignee_id-index): assignee_id
type WorkItem struct {
	ID           string         `json:"id"`
	Kind         WorkItemKind   `json:"kind"`
	AssigneeID   string         `json:"assignee_id"`
	AssigneeRole Role           `json:"assignee_role"`
	RefID        string         `json:"ref_id"`
	DueAt        time.Time      `json:"due_at"`
	Status       WorkItemStatus `json:"status"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty"`
	Version      int64          `json:"version"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// Finished reports whether the item no longer counts for deadline checks.
func (w WorkItem) Finished() bool {
	return w.Status == WorkItemStatusCompleted || w.Status == WorkItemStatusCancelled
}
