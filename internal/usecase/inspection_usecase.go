package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/lifecycle"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/scheduling"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/usecase/interfaces"
)

// IInspectionUseCase exposes booking operations over the scheduling
// resolver. Conflict checks run before every create and reschedule; a
// colliding window is rejected with the list of blocking bookings.

type IInspectionUseCase interface {
	Schedule(ctx context.Context, actor entities.Actor, applicationID, inspectorID string, windowStart, windowEnd time.Time) (entities.Inspection, error)
	GetByID(ctx context.Context, id string) (entities.Inspection, error)
	Confirm(ctx context.Context, id string, actor entities.Actor) (entities.Inspection, error)
	Start(ctx context.Context, id string, actor entities.Actor) (entities.Inspection, error)
	Complete(ctx context.Context, id string, actor entities.Actor, complianceScore float64) (entities.Inspection, error)
	Cancel(ctx context.Context, id string, actor entities.Actor) (entities.Inspection, error)
	Reschedule(ctx context.Context, id string, actor entities.Actor, windowStart, windowEnd time.Time) (entities.Inspection, error)
	Availability(ctx context.Context, inspectorID string, day time.Time, duration time.Duration) ([]scheduling.Interval, error)
}

type InspectionUseCase struct {
	repo       interfaces.IInspectionRepository
	apps       interfaces.IApplicationRepository
	notifier   interfaces.INotifier
	machine    *lifecycle.Machine
	reschedule lifecycle.ReschedulePolicy
	window     scheduling.WorkingWindow
}

var _ IInspectionUseCase = (*InspectionUseCase)(nil)

func NewInspectionUseCase(
	repo interfaces.IInspectionRepository,
	apps interfaces.IApplicationRepository,
	notifier interfaces.INotifier,
) *InspectionUseCase {
	return &InspectionUseCase{
		repo:       repo,
		apps:       apps,
		notifier:   notifier,
		machine:    lifecycle.NewMachine(),
		reschedule: lifecycle.DefaultReschedulePolicy(),
		window:     scheduling.DefaultWorkingWindow(),
	}
}

// Schedule books an inspector for an application and moves the application
// to pending_inspection. The booking is rejected when the window collides
// with any non-cancelled booking of the same inspector.
func (u *InspectionUseCase) Schedule(ctx context.Context, actor entities.Actor, applicationID, inspectorID string, windowStart, windowEnd time.Time) (entities.Inspection, error) {
	if actor.Role != entities.RoleOfficer {
		return entities.Inspection{}, lifecycle.NewForbidden("scheduling requires the officer role")
	}
	applicationID = strings.TrimSpace(applicationID)
	inspectorID = strings.TrimSpace(inspectorID)
	if applicationID == "" || inspectorID == "" {
		return entities.Inspection{}, lifecycle.NewValidation("application id and inspector id are required")
	}
	candidate := scheduling.Interval{Start: windowStart, End: windowEnd}
	if !candidate.Valid() {
		return entities.Inspection{}, lifecycle.NewValidation("the booking window must end after it starts")
	}

	app, err := u.apps.GetByID(ctx, applicationID)
	if err != nil {
		return entities.Inspection{}, err
	}
	if app.ID == "" {
		return entities.Inspection{}, lifecycle.NewNotFound("application not found")
	}

	if err := u.checkConflicts(ctx, candidate, inspectorID, ""); err != nil {
		return entities.Inspection{}, err
	}

	updatedApp, err := u.machine.ScheduleInspection(app, actor)
	if err != nil {
		return entities.Inspection{}, err
	}

	now := time.Now().UTC()
	booking := entities.Inspection{
		ID:            uuid.NewString(),
		ApplicationID: applicationID,
		InspectorID:   inspectorID,
		WindowStart:   windowStart,
		WindowEnd:     windowEnd,
		Status:        entities.InspectionStatusScheduled,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.repo.Create(ctx, booking)
	if err != nil {
		return entities.Inspection{}, err
	}

	if _, err := u.apps.Save(ctx, updatedApp); err != nil {
		// The booking must not survive a failed application transition:
		// left scheduled, it would block the inspector's window for an
		// application still in its prior status.
		u.releaseBooking(ctx, created)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.Inspection{}, lifecycle.NewConflict("application was modified concurrently; re-fetch and retry", app.ID)
		}
		return entities.Inspection{}, err
	}

	log.Printf("[inspection][usecase] scheduled id=%s application=%s inspector=%s window=[%s,%s)",
		created.ID, applicationID, inspectorID, windowStart.Format(time.RFC3339), windowEnd.Format(time.RFC3339))
	u.notify(ctx, created)
	return created, nil
}

func (u *InspectionUseCase) GetByID(ctx context.Context, id string) (entities.Inspection, error) {
	return u.loadBooking(ctx, id)
}

func (u *InspectionUseCase) Confirm(ctx context.Context, id string, actor entities.Actor) (entities.Inspection, error) {
	return u.setStatus(ctx, id, actor, entities.InspectionStatusScheduled, entities.InspectionStatusConfirmed, nil)
}

func (u *InspectionUseCase) Start(ctx context.Context, id string, actor entities.Actor) (entities.Inspection, error) {
	return u.setStatus(ctx, id, actor, entities.InspectionStatusConfirmed, entities.InspectionStatusInProgress, nil)
}

// Complete records the compliance score alongside the terminal status.
func (u *InspectionUseCase) Complete(ctx context.Context, id string, actor entities.Actor, complianceScore float64) (entities.Inspection, error) {
	if complianceScore < 0 || complianceScore > 100 {
		return entities.Inspection{}, lifecycle.NewValidation("compliance score must be between 0 and 100")
	}
	return u.setStatus(ctx, id, actor, entities.InspectionStatusInProgress, entities.InspectionStatusCompleted, &complianceScore)
}

func (u *InspectionUseCase) Cancel(ctx context.Context, id string, actor entities.Actor) (entities.Inspection, error) {
	booking, err := u.loadBooking(ctx, id)
	if err != nil {
		return entities.Inspection{}, err
	}
	if err := u.authorizeBookingChange(ctx, booking, actor); err != nil {
		return entities.Inspection{}, err
	}
	switch booking.Status {
	case entities.InspectionStatusCompleted, entities.InspectionStatusCancelled:
		return entities.Inspection{}, lifecycle.NewValidation("a " + string(booking.Status) + " booking cannot be cancelled")
	}
	booking.Status = entities.InspectionStatusCancelled
	booking.UpdatedAt = time.Now().UTC()
	return u.saveBooking(ctx, booking)
}

// Reschedule moves the booking window. The attempt is refused with a
// limit-reached rejection once the policy budget is spent, and with a
// conflict rejection when the new window collides; only a successful move
// increments the counter.
func (u *InspectionUseCase) Reschedule(ctx context.Context, id string, actor entities.Actor, windowStart, windowEnd time.Time) (entities.Inspection, error) {
	candidate := scheduling.Interval{Start: windowStart, End: windowEnd}
	if !candidate.Valid() {
		return entities.Inspection{}, lifecycle.NewValidation("the booking window must end after it starts")
	}

	booking, err := u.loadBooking(ctx, id)
	if err != nil {
		return entities.Inspection{}, err
	}
	if err := u.authorizeBookingChange(ctx, booking, actor); err != nil {
		return entities.Inspection{}, err
	}
	switch booking.Status {
	case entities.InspectionStatusCompleted, entities.InspectionStatusCancelled, entities.InspectionStatusInProgress:
		return entities.Inspection{}, lifecycle.NewValidation("a " + string(booking.Status) + " booking cannot be rescheduled")
	}
	if !u.reschedule.Allows(booking.RescheduleCount) {
		return entities.Inspection{}, lifecycle.NewLimitReached(
			fmt.Sprintf("reschedule limit of %d reached for this booking", u.reschedule.Max))
	}
	if err := u.checkConflicts(ctx, candidate, booking.InspectorID, booking.ID); err != nil {
		return entities.Inspection{}, err
	}

	booking.WindowStart = windowStart
	booking.WindowEnd = windowEnd
	booking.Status = entities.InspectionStatusScheduled
	booking.RescheduleCount++
	booking.UpdatedAt = time.Now().UTC()
	saved, err := u.saveBooking(ctx, booking)
	if err != nil {
		return entities.Inspection{}, err
	}
	log.Printf("[inspection][usecase] rescheduled id=%s count=%d window=[%s,%s)",
		saved.ID, saved.RescheduleCount, windowStart.Format(time.RFC3339), windowEnd.Format(time.RFC3339))
	u.notify(ctx, saved)
	return saved, nil
}

// Availability returns the open duration-aligned slots of an inspector's
// working day.
func (u *InspectionUseCase) Availability(ctx context.Context, inspectorID string, day time.Time, duration time.Duration) ([]scheduling.Interval, error) {
	inspectorID = strings.TrimSpace(inspectorID)
	if inspectorID == "" {
		return nil, lifecycle.NewValidation("inspector id is required")
	}
	if duration <= 0 {
		return nil, lifecycle.NewValidation("a positive slot duration is required")
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	bookings, err := u.repo.ListByInspectorBetween(ctx, inspectorID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	return scheduling.AvailableSlots(day, u.window, duration, inspectorID, bookings), nil
}

func (u *InspectionUseCase) checkConflicts(ctx context.Context, candidate scheduling.Interval, inspectorID, excludeID string) error {
	// Pad the query window by a day on each side so bookings straddling
	// midnight are still considered.
	from := candidate.Start.AddDate(0, 0, -1)
	to := candidate.End.AddDate(0, 0, 1)
	existing, err := u.repo.ListByInspectorBetween(ctx, inspectorID, from, to)
	if err != nil {
		return err
	}
	colliding := scheduling.Conflicts(candidate, inspectorID, existing, excludeID)
	if len(colliding) == 0 {
		return nil
	}
	ids := make([]string, len(colliding))
	for i, b := range colliding {
		ids[i] = b.ID
	}
	return lifecycle.NewConflict("the requested window overlaps existing bookings for this inspector", ids...)
}

// authorizeBookingChange gates cancel and reschedule: officers always may,
// the assigned inspector may, and the applicant owning the underlying
// application may. Everyone else is refused.
func (u *InspectionUseCase) authorizeBookingChange(ctx context.Context, booking entities.Inspection, actor entities.Actor) error {
	switch actor.Role {
	case entities.RoleOfficer:
		return nil
	case entities.RoleInspector:
		if actor.ID == booking.InspectorID {
			return nil
		}
		return lifecycle.NewForbidden("only the assigned inspector may change this booking")
	case entities.RoleApplicant:
		app, err := u.apps.GetByID(ctx, booking.ApplicationID)
		if err != nil {
			return err
		}
		if app.ID != "" && app.ApplicantID == actor.ID {
			return nil
		}
		return lifecycle.NewForbidden("only the owning applicant may change this booking")
	default:
		return lifecycle.NewForbidden("changing a booking requires an authenticated caller")
	}
}

// releaseBooking cancels a booking whose application transition did not
// commit, freeing the inspector's window. Best effort: a failure here is
// logged and surfaced by the original error.
func (u *InspectionUseCase) releaseBooking(ctx context.Context, booking entities.Inspection) {
	booking.Status = entities.InspectionStatusCancelled
	booking.UpdatedAt = time.Now().UTC()
	if _, err := u.repo.Save(ctx, booking); err != nil {
		log.Printf("[inspection][usecase] release of booking %s failed: %v", booking.ID, err)
	}
}

func (u *InspectionUseCase) setStatus(ctx context.Context, id string, actor entities.Actor, from, to entities.InspectionStatus, score *float64) (entities.Inspection, error) {
	if actor.Role != entities.RoleInspector && actor.Role != entities.RoleOfficer {
		return entities.Inspection{}, lifecycle.NewForbidden("this operation requires the inspector or officer role")
	}
	booking, err := u.loadBooking(ctx, id)
	if err != nil {
		return entities.Inspection{}, err
	}
	if booking.Status != from {
		return entities.Inspection{}, lifecycle.NewValidation(
			fmt.Sprintf("booking is %s, expected %s", booking.Status, from))
	}
	booking.Status = to
	if score != nil {
		booking.ComplianceScore = score
	}
	booking.UpdatedAt = time.Now().UTC()
	return u.saveBooking(ctx, booking)
}

func (u *InspectionUseCase) loadBooking(ctx context.Context, id string) (entities.Inspection, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Inspection{}, lifecycle.NewValidation("booking id is required")
	}
	booking, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Inspection{}, err
	}
	if booking.ID == "" {
		return entities.Inspection{}, lifecycle.NewNotFound("booking not found")
	}
	return booking, nil
}

func (u *InspectionUseCase) saveBooking(ctx context.Context, booking entities.Inspection) (entities.Inspection, error) {
	saved, err := u.repo.Save(ctx, booking)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.Inspection{}, lifecycle.NewConflict("booking was modified concurrently; re-fetch and retry", booking.ID)
		}
		return entities.Inspection{}, err
	}
	return saved, nil
}

func (u *InspectionUseCase) notify(ctx context.Context, booking entities.Inspection) {
	if u.notifier == nil {
		return
	}
	u.notifier.Notify(ctx, interfaces.Notification{
		Topic:       "inspection",
		AggregateID: booking.ID,
		Status:      string(booking.Status),
		Recipient:   booking.InspectorID,
	})
}
