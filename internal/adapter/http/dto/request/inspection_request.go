package request

import (
	"strings"
	"time"
)

// ScheduleInspectionRequest books an inspector for an application over a
// half-open window [window_start, window_end).
type ScheduleInspectionRequest struct {
	ApplicationID string    `json:"application_id" binding:"required"`
	InspectorID   string    `json:"inspector_id" binding:"required"`
	WindowStart   time.Time `json:"window_start" binding:"required"`
	WindowEnd     time.Time `json:"window_end" binding:"required"`
}

func (r ScheduleInspectionRequest) ResolveApplicationID() string {
	return strings.TrimSpace(r.ApplicationID)
}

func (r ScheduleInspectionRequest) ResolveInspectorID() string {
	return strings.TrimSpace(r.InspectorID)
}

// RescheduleInspectionRequest moves an existing booking to a new window.
type RescheduleInspectionRequest struct {
	WindowStart time.Time `json:"window_start" binding:"required"`
	WindowEnd   time.Time `json:"window_end" binding:"required"`
}

// CompleteInspectionRequest closes a visit with its compliance score.
// Score is a pointer so a literal zero binds distinguishably from "absent".
type CompleteInspectionRequest struct {
	ComplianceScore *float64 `json:"compliance_score" binding:"required"`
}
