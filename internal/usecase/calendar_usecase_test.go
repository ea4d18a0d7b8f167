package usecase

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/lifecycle"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/usecase/interfaces"
	mock_interfaces "github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/usecase/interfaces/mocks"
)

func briefingEvent() entities.CalendarEvent {
	return entities.CalendarEvent{
		ID:          "evt-1",
		Title:       "Inspector briefing",
		OrganizerID: "officer-1",
		Attendees: []entities.Attendee{
			{UserID: "insp-1", RSVP: entities.RSVPPending},
			{UserID: "insp-2", RSVP: entities.RSVPAccepted},
		},
		Start: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC),
	}
}

func TestCalendarUseCase_CreateEvent(t *testing.T) {
	t.Run("title required", func(t *testing.T) {
		uc := NewCalendarUseCase(nil)
		event := briefingEvent()
		event.Title = "   "
		_, err := uc.CreateEvent(context.Background(), officer, event)
		expectRejection(t, err, lifecycle.RejectionValidation)
	})

	t.Run("event must end after it starts", func(t *testing.T) {
		uc := NewCalendarUseCase(nil)
		event := briefingEvent()
		event.End = event.Start
		_, err := uc.CreateEvent(context.Background(), officer, event)
		expectRejection(t, err, lifecycle.RejectionValidation)
	})

	t.Run("unknown recurrence frequency", func(t *testing.T) {
		uc := NewCalendarUseCase(nil)
		event := briefingEvent()
		event.Recurrence = &entities.RecurrenceRule{Frequency: "yearly"}
		_, err := uc.CreateEvent(context.Background(), officer, event)
		expectRejection(t, err, lifecycle.RejectionValidation)
	})

	t.Run("organizer and pending rsvps are assigned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICalendarEventRepository(ctrl)
		uc := NewCalendarUseCase(repo)

		event := briefingEvent()
		event.ID = ""
		event.OrganizerID = "forged"
		event.Attendees[1].RSVP = ""

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, saved entities.CalendarEvent) (entities.CalendarEvent, error) {
				if saved.ID == "" {
					t.Fatalf("id must be assigned")
				}
				if saved.OrganizerID != officer.ID {
					t.Fatalf("organizer must be the caller, got %s", saved.OrganizerID)
				}
				for _, a := range saved.Attendees {
					if a.RSVP == "" {
						t.Fatalf("attendee %s left without an rsvp", a.UserID)
					}
				}
				return saved, nil
			},
		)

		if _, err := uc.CreateEvent(context.Background(), officer, event); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCalendarUseCase_RSVP(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		uc := NewCalendarUseCase(nil)
		_, err := uc.RSVP(context.Background(), "evt-1", inspector, entities.RSVPStatus("maybe"))
		expectRejection(t, err, lifecycle.RejectionValidation)
	})

	t.Run("non-attendee is refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICalendarEventRepository(ctrl)
		uc := NewCalendarUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "evt-1").Return(briefingEvent(), nil)

		_, err := uc.RSVP(context.Background(), "evt-1", applicant, entities.RSVPAccepted)
		expectRejection(t, err, lifecycle.RejectionForbidden)
	})

	t.Run("attendee reply is recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICalendarEventRepository(ctrl)
		uc := NewCalendarUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "evt-1").Return(briefingEvent(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, saved entities.CalendarEvent) (entities.CalendarEvent, error) {
				if saved.Attendees[0].RSVP != entities.RSVPDeclined {
					t.Fatalf("expected declined, got %s", saved.Attendees[0].RSVP)
				}
				if saved.Attendees[1].RSVP != entities.RSVPAccepted {
					t.Fatalf("other attendees must keep their reply")
				}
				return saved, nil
			},
		)

		if _, err := uc.RSVP(context.Background(), "evt-1", inspector, entities.RSVPDeclined); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("stale write maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICalendarEventRepository(ctrl)
		uc := NewCalendarUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "evt-1").Return(briefingEvent(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.CalendarEvent{}, interfaces.ErrVersionConflict)

		_, err := uc.RSVP(context.Background(), "evt-1", inspector, entities.RSVPAccepted)
		rej := expectRejection(t, err, lifecycle.RejectionConflict)
		if len(rej.Conflicts) != 1 || rej.Conflicts[0] != "evt-1" {
			t.Fatalf("conflict must name the event: %+v", rej.Conflicts)
		}
	})
}

func TestCalendarUseCase_Occurrences(t *testing.T) {
	t.Run("inverted window", func(t *testing.T) {
		uc := NewCalendarUseCase(nil)
		from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
		_, err := uc.Occurrences(context.Background(), "evt-1", from, from)
		expectRejection(t, err, lifecycle.RejectionValidation)
	})

	t.Run("unknown event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICalendarEventRepository(ctrl)
		uc := NewCalendarUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.CalendarEvent{}, nil)

		from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
		_, err := uc.Occurrences(context.Background(), "nope", from, from.AddDate(0, 0, 7))
		expectRejection(t, err, lifecycle.RejectionNotFound)
	})

	t.Run("daily recurrence expands inside the window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICalendarEventRepository(ctrl)
		uc := NewCalendarUseCase(repo)

		event := briefingEvent()
		event.Recurrence = &entities.RecurrenceRule{Frequency: entities.RecurDaily, Interval: 1}
		repo.EXPECT().GetByID(gomock.Any(), "evt-1").Return(event, nil)

		from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
		occ, err := uc.Occurrences(context.Background(), "evt-1", from, from.AddDate(0, 0, 3))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(occ) != 3 {
			t.Fatalf("expected 3 occurrences, got %d", len(occ))
		}
		if occ[0].EventID != "evt-1" || !occ[1].Start.Equal(event.Start.AddDate(0, 0, 1)) {
			t.Fatalf("unexpected occurrences: %+v", occ)
		}
	})
}
