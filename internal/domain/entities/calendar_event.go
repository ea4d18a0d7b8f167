package entities

import "time"

// RSVPStatus per attendee.

type RSVPStatus string

const (
	RSVPPending   RSVPStatus = "pending"
	RSVPAccepted  RSVPStatus = "accepted"
	RSVPDeclined  RSVPStatus = "declined"
	RSVPTentative RSVPStatus = "tentative"
)

// RecurrenceFrequency of a recurring calendar event.

type RecurrenceFrequency string

const (
	RecurDaily   RecurrenceFrequency = "daily"
	RecurWeekly  RecurrenceFrequency = "weekly"
	RecurMonthly RecurrenceFrequency = "monthly"
)

// RecurrenceRule bounds a repeating event by Until, Count, or both
// (whichever ends first). Interval below 1 is treated as 1.
type RecurrenceRule struct {
	Frequency RecurrenceFrequency `json:"frequency"`
	Interval  int                 `json:"interval"`
	Until     *time.Time          `json:"until,omitempty"`
	Count     int                 `json:"count,omitempty"`
}

// Attendee with their RSVP state.
type Attendee struct {
	UserID string     `json:"user_id"`
	RSVP   RSVPStatus `json:"rsvp"`
}

// CalendarEvent generalizes bookings to any scheduled activity. Recurrence
// expansion is a read-side projection; the base event is never mutated by
// it.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (organizer_id-index): organizer_id
type CalendarEvent struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	OrganizerID string          `json:"organizer_id"`
	Attendees   []Attendee      `json:"attendees,omitempty"`
	Start       time.Time       `json:"start"`
	End         time.Time       `json:"end"`
	Recurrence  *RecurrenceRule `json:"recurrence,omitempty"`
	Version     int64           `json:"version"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// EventOccurrence is one projected instance of a (possibly recurring)
// event.
type EventOccurrence struct {
	EventID string    `json:"event_id"`
	Title   string    `json:"title"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
}
