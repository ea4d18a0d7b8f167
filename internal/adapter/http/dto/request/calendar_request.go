package request

import (
	"strings"
	"time"
)

// RecurrenceRuleRequest bounds a repeating event. Until and Count may be
// combined; whichever ends first wins.
type RecurrenceRuleRequest struct {
	Frequency string     `json:"frequency" binding:"required"`
	Interval  int        `json:"interval"`
	Until     *time.Time `json:"until"`
	Count     int        `json:"count"`
}

// CreateEventRequest creates a calendar event owned by the caller.
type CreateEventRequest struct {
	Title      string                 `json:"title" binding:"required"`
	Start      time.Time              `json:"start" binding:"required"`
	End        time.Time              `json:"end" binding:"required"`
	Attendees  []string               `json:"attendees"`
	Recurrence *RecurrenceRuleRequest `json:"recurrence"`
}

func (r CreateEventRequest) ResolveTitle() string {
	return strings.TrimSpace(r.Title)
}

// RSVPRequest records the caller's reply on an event they attend.
type RSVPRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r RSVPRequest) ResolveStatus() string {
	return strings.ToLower(strings.TrimSpace(r.Status))
}
