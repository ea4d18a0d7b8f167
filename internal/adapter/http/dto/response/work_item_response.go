package response

import (
	"time"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/sla"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/usecase"
)

type WorkItemResponse struct {
	ID           string     `json:"id"`
	Kind         string     `json:"kind"`
	AssigneeID   string     `json:"assignee_id"`
	AssigneeRole string     `json:"assignee_role"`
	RefID        string     `json:"ref_id,omitempty"`
	DueAt        time.Time  `json:"due_at"`
	Status       string     `json:"status"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type DeadlineReportResponse struct {
	NearDeadline []WorkItemResponse `json:"near_deadline"`
	Breached     []WorkItemResponse `json:"breached"`
}

type GroupStatsResponse struct {
	Role            string `json:"role"`
	Kind            string `json:"kind"`
	CompletedOnTime int    `json:"completed_on_time"`
	CompletedLate   int    `json:"completed_late"`
	Open            int    `json:"open"`
	BreachedOpen    int    `json:"breached_open"`
}

func FromWorkItem(item entities.WorkItem) WorkItemResponse {
	return WorkItemResponse{
		ID:           item.ID,
		Kind:         string(item.Kind),
		AssigneeID:   item.AssigneeID,
		AssigneeRole: string(item.AssigneeRole),
		RefID:        item.RefID,
		DueAt:        item.DueAt,
		Status:       string(item.Status),
		CompletedAt:  item.CompletedAt,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

func FromWorkItems(items []entities.WorkItem) []WorkItemResponse {
	out := make([]WorkItemResponse, len(items))
	for i, item := range items {
		out[i] = FromWorkItem(item)
	}
	return out
}

func FromDeadlineReport(report usecase.DeadlineReport) DeadlineReportResponse {
	return DeadlineReportResponse{
		NearDeadline: FromWorkItems(report.NearDeadline),
		Breached:     FromWorkItems(report.Breached),
	}
}

func FromGroupStats(stats []sla.GroupStats) []GroupStatsResponse {
	out := make([]GroupStatsResponse, len(stats))
	for i, s := range stats {
		out[i] = GroupStatsResponse{
			Role:            string(s.Role),
			Kind:            string(s.Kind),
			CompletedOnTime: s.CompletedOnTime,
			CompletedLate:   s.CompletedLate,
			Open:            s.Open,
			BreachedOpen:    s.BreachedOpen,
		}
	}
	return out
}
