package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/lifecycle"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/scheduling"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/usecase/interfaces"
)

// ICalendarUseCase manages general scheduled activities: creation, RSVP,
// and read-side occurrence expansion for recurring events.

type ICalendarUseCase interface {
	CreateEvent(ctx context.Context, actor entities.Actor, event entities.CalendarEvent) (entities.CalendarEvent, error)
	GetByID(ctx context.Context, id string) (entities.CalendarEvent, error)
	RSVP(ctx context.Context, id string, actor entities.Actor, status entities.RSVPStatus) (entities.CalendarEvent, error)
	Occurrences(ctx context.Context, id string, from, to time.Time) ([]entities.EventOccurrence, error)
}

type CalendarUseCase struct {
	repo interfaces.ICalendarEventRepository
}

var _ ICalendarUseCase = (*CalendarUseCase)(nil)

func NewCalendarUseCase(repo interfaces.ICalendarEventRepository) *CalendarUseCase {
	return &CalendarUseCase{repo: repo}
}

func (u *CalendarUseCase) CreateEvent(ctx context.Context, actor entities.Actor, event entities.CalendarEvent) (entities.CalendarEvent, error) {
	if actor.ID == "" {
		return entities.CalendarEvent{}, lifecycle.NewValidation("actor id is required")
	}
	if strings.TrimSpace(event.Title) == "" {
		return entities.CalendarEvent{}, lifecycle.NewValidation("an event title is required")
	}
	if !event.End.After(event.Start) {
		return entities.CalendarEvent{}, lifecycle.NewValidation("the event must end after it starts")
	}
	if r := event.Recurrence; r != nil {
		switch r.Frequency {
		case entities.RecurDaily, entities.RecurWeekly, entities.RecurMonthly:
		default:
			return entities.CalendarEvent{}, lifecycle.NewValidation("unknown recurrence frequency")
		}
	}

	now := time.Now().UTC()
	event.ID = uuid.NewString()
	event.OrganizerID = actor.ID
	for i := range event.Attendees {
		if event.Attendees[i].RSVP == "" {
			event.Attendees[i].RSVP = entities.RSVPPending
		}
	}
	event.CreatedAt = now
	event.UpdatedAt = now
	return u.repo.Create(ctx, event)
}

func (u *CalendarUseCase) GetByID(ctx context.Context, id string) (entities.CalendarEvent, error) {
	return u.loadEvent(ctx, id)
}

// RSVP records the acting attendee's response.
func (u *CalendarUseCase) RSVP(ctx context.Context, id string, actor entities.Actor, status entities.RSVPStatus) (entities.CalendarEvent, error) {
	switch status {
	case entities.RSVPAccepted, entities.RSVPDeclined, entities.RSVPTentative:
	default:
		return entities.CalendarEvent{}, lifecycle.NewValidation("rsvp must be accepted, declined or tentative")
	}

	event, err := u.loadEvent(ctx, id)
	if err != nil {
		return entities.CalendarEvent{}, err
	}

	attendees := make([]entities.Attendee, len(event.Attendees))
	copy(attendees, event.Attendees)
	found := false
	for i := range attendees {
		if attendees[i].UserID == actor.ID {
			attendees[i].RSVP = status
			found = true
		}
	}
	if !found {
		return entities.CalendarEvent{}, lifecycle.NewForbidden("you are not an attendee of this event")
	}
	event.Attendees = attendees
	event.UpdatedAt = time.Now().UTC()

	saved, err := u.repo.Save(ctx, event)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.CalendarEvent{}, lifecycle.NewConflict("event was modified concurrently; re-fetch and retry", event.ID)
		}
		return entities.CalendarEvent{}, err
	}
	return saved, nil
}

// Occurrences expands the event into the instances intersecting [from, to)
// without touching the stored record.
func (u *CalendarUseCase) Occurrences(ctx context.Context, id string, from, to time.Time) ([]entities.EventOccurrence, error) {
	if !to.After(from) {
		return nil, lifecycle.NewValidation("the window must end after it starts")
	}
	event, err := u.loadEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	return scheduling.ExpandOccurrences(event, from, to), nil
}

func (u *CalendarUseCase) loadEvent(ctx context.Context, id string) (entities.CalendarEvent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CalendarEvent{}, lifecycle.NewValidation("event id is required")
	}
	event, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CalendarEvent{}, err
	}
	if event.ID == "" {
		return entities.CalendarEvent{}, lifecycle.NewNotFound("event not found")
	}
	return event, nil
}
