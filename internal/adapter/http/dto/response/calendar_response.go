package response

import (
	"time"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
)

type AttendeeResponse struct {
	UserID string `json:"user_id"`
	RSVP   string `json:"rsvp"`
}

type RecurrenceRuleResponse struct {
	Frequency string     `json:"frequency"`
	Interval  int        `json:"interval"`
	Until     *time.Time `json:"until,omitempty"`
	Count     int        `json:"count,omitempty"`
}

type CalendarEventResponse struct {
	ID          string                  `json:"id"`
	Title       string                  `json:"title"`
	OrganizerID string                  `json:"organizer_id"`
	Attendees   []AttendeeResponse      `json:"attendees"`
	Start       time.Time               `json:"start"`
	End         time.Time               `json:"end"`
	Recurrence  *RecurrenceRuleResponse `json:"recurrence,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

type OccurrenceResponse struct {
	EventID string    `json:"event_id"`
	Title   string    `json:"title"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
}

func FromCalendarEvent(event entities.CalendarEvent) CalendarEventResponse {
	attendees := make([]AttendeeResponse, len(event.Attendees))
	for i, a := range event.Attendees {
		attendees[i] = AttendeeResponse{UserID: a.UserID, RSVP: string(a.RSVP)}
	}

	resp := CalendarEventResponse{
		ID:          event.ID,
		Title:       event.Title,
		OrganizerID: event.OrganizerID,
		Attendees:   attendees,
		Start:       event.Start,
		End:         event.End,
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}
	if event.Recurrence != nil {
		resp.Recurrence = &RecurrenceRuleResponse{
			Frequency: string(event.Recurrence.Frequency),
			Interval:  event.Recurrence.Interval,
			Until:     event.Recurrence.Until,
			Count:     event.Recurrence.Count,
		}
	}
	return resp
}

func FromOccurrences(occurrences []entities.EventOccurrence) []OccurrenceResponse {
	out := make([]OccurrenceResponse, len(occurrences))
	for i, o := range occurrences {
		out[i] = OccurrenceResponse{EventID: o.EventID, Title: o.Title, Start: o.Start, End: o.End}
	}
	return out
}
