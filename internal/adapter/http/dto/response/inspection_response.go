package response

import (
	"time"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/scheduling"
)

type InspectionResponse struct {
	ID              string    `json:"id"`
	ApplicationID   string    `json:"application_id"`
	InspectorID     string    `json:"inspector_id"`
	WindowStart     time.Time `json:"window_start"`
	WindowEnd       time.Time `json:"window_end"`
	Status          string    `json:"status"`
	ComplianceScore *float64  `json:"compliance_score,omitempty"`
	RescheduleCount int       `json:"reschedule_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type SlotResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type AvailabilityResponse struct {
	InspectorID string         `json:"inspector_id"`
	Day         string         `json:"day"`
	Slots       []SlotResponse `json:"slots"`
}

func FromInspection(booking entities.Inspection) InspectionResponse {
	return InspectionResponse{
		ID:              booking.ID,
		ApplicationID:   booking.ApplicationID,
		InspectorID:     booking.InspectorID,
		WindowStart:     booking.WindowStart,
		WindowEnd:       booking.WindowEnd,
		Status:          string(booking.Status),
		ComplianceScore: booking.ComplianceScore,
		RescheduleCount: booking.RescheduleCount,
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}
}

func FromAvailability(inspectorID string, day time.Time, slots []scheduling.Interval) AvailabilityResponse {
	out := make([]SlotResponse, len(slots))
	for i, s := range slots {
		out[i] = SlotResponse{Start: s.Start, End: s.End}
	}
	return AvailabilityResponse{
		InspectorID: inspectorID,
		Day:         day.Format("2006-01-02"),
		Slots:       out,
	}
}
