package entities

import "time"

// InspectionStatus of a scheduled site or remote visit.

type InspectionStatus string

const (
	InspectionStatusScheduled   InspectionStatus = "scheduled"
	InspectionStatusConfirmed   InspectionStatus = "confirmed"
	InspectionStatusInProgress  InspectionStatus = "in_progress"
	InspectionStatusCompleted   InspectionStatus = "completed"
	InspectionStatusCancelled   InspectionStatus = "cancelled"
	InspectionStatusRescheduled InspectionStatus = "rescheduled"
)

// Inspection is a booking of one inspector for one application over a
// half-open time window [WindowStart, WindowEnd).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (inspector_id-index): inspector_id
//   - GSI2 (application_id-index): application_id
//
// Invariant: at most one non-cancelled booking may occupy an inspector's
// window; overlap checks run before every create and reschedule.
type Inspection struct {
	ID              string           `json:"id"`
	ApplicationID   string           `json:"application_id"`
	InspectorID     string           `json:"inspector_id"`
	WindowStart     time.Time        `json:"window_start"`
	WindowEnd       time.Time        `json:"window_end"`
	Status          InspectionStatus `json:"status"`
	ComplianceScore *float64         `json:"compliance_score,omitempty"`
	RescheduleCount int              `json:"reschedule_count"`
	Version         int64            `json:"version"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// Blocks reports whether this booking occupies its inspector's calendar.
// Cancelled and superseded bookings do not block.
func (i Inspection) Blocks() bool {
	return i.Status != InspectionStatusCancelled && i.Status != InspectionStatusRescheduled
}
