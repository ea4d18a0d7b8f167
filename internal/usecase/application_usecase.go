package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/lifecycle"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/usecase/interfaces"
)

var (
	ErrPaymentProviderNotConfigured = errors.New("payment reference provider not configured")

	// applicationSequence is the sequence bucket for application numbers.
	applicationSequence = "applications"
)

// IApplicationUseCase exposes the application lifecycle operations. Every
// transition takes the acting identity explicitly and returns either the
// updated aggregate or a typed rejection (*lifecycle.Rejection) carrying
// the current state and the valid next states.

type IApplicationUseCase interface {
	Create(ctx context.Context, actor entities.Actor, category entities.ApplicantCategory) (entities.Application, error)
	GetByID(ctx context.Context, id string, actor entities.Actor) (entities.Application, error)
	ListByApplicant(ctx context.Context, actor entities.Actor) ([]entities.Application, error)
	MissingDocuments(ctx context.Context, id string, actor entities.Actor) ([]entities.DocumentType, error)
	RecordConsent(ctx context.Context, id string, actor entities.Actor, policyVersion string) (entities.Application, error)
	AddDocument(ctx context.Context, id string, actor entities.Actor, docType, storageRef, checksum string) (entities.Application, error)
	ReviewDocument(ctx context.Context, id, documentID string, actor entities.Actor, approve bool, note string) (entities.Application, error)
	Submit(ctx context.Context, id string, actor entities.Actor) (entities.Application, error)
	AttachPaymentSlip(ctx context.Context, id string, actor entities.Actor, slipRef string) (entities.Application, error)
	ConfirmPayment(ctx context.Context, id string, actor entities.Actor) (entities.Application, error)
	RejectPaymentSlip(ctx context.Context, id string, actor entities.Actor, note string) (entities.Application, error)
	Approve(ctx context.Context, id string, actor entities.Actor) (entities.Application, error)
	Reject(ctx context.Context, id string, actor entities.Actor, reason string) (entities.Application, error)
	Cancel(ctx context.Context, id string, actor entities.Actor, reason string) (entities.Application, error)
}

type ApplicationUseCase struct {
	repo     interfaces.IApplicationRepository
	seq      interfaces.ISequenceRepository
	payments interfaces.IPaymentReferenceProvider
	notifier interfaces.INotifier
	machine  *lifecycle.Machine
}

var _ IApplicationUseCase = (*ApplicationUseCase)(nil)

func NewApplicationUseCase(
	repo interfaces.IApplicationRepository,
	seq interfaces.ISequenceRepository,
	payments interfaces.IPaymentReferenceProvider,
	notifier interfaces.INotifier,
) *ApplicationUseCase {
	return &ApplicationUseCase{
		repo:     repo,
		seq:      seq,
		payments: payments,
		notifier: notifier,
		machine:  lifecycle.NewMachine(),
	}
}

func (u *ApplicationUseCase) Create(ctx context.Context, actor entities.Actor, category entities.ApplicantCategory) (entities.Application, error) {
	if actor.ID == "" {
		return entities.Application{}, lifecycle.NewValidation("actor id is required")
	}
	switch category {
	case entities.CategoryIndividual, entities.CategoryCommunityEnterprise, entities.CategoryLegalEntity:
	default:
		return entities.Application{}, lifecycle.NewValidation("unknown applicant category")
	}

	now := time.Now().UTC()
	seq, err := u.seq.Next(ctx, applicationSequence, now.Year())
	if err != nil {
		return entities.Application{}, err
	}

	app := entities.Application{
		ID:                uuid.NewString(),
		ApplicationNumber: lifecycle.FormatApplicationNumber(now.Year(), seq),
		ApplicantID:       actor.ID,
		Category:          category,
		Status:            entities.ApplicationStatusDraft,
		StatusHistory: []entities.StatusHistoryEntry{{
			Status:    entities.ApplicationStatusDraft,
			Timestamp: now,
			Actor:     actor.ID,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, app)
	if err != nil {
		return entities.Application{}, err
	}
	log.Printf("[application][usecase] created id=%s number=%s applicant=%s", created.ID, created.ApplicationNumber, actor.ID)
	return created, nil
}

func (u *ApplicationUseCase) GetByID(ctx context.Context, id string, actor entities.Actor) (entities.Application, error) {
	return u.load(ctx, id, actor, false)
}

func (u *ApplicationUseCase) ListByApplicant(ctx context.Context, actor entities.Actor) ([]entities.Application, error) {
	if actor.ID == "" {
		return nil, lifecycle.NewValidation("actor id is required")
	}
	return u.repo.ListByApplicant(ctx, actor.ID)
}

func (u *ApplicationUseCase) MissingDocuments(ctx context.Context, id string, actor entities.Actor) ([]entities.DocumentType, error) {
	app, err := u.load(ctx, id, actor, false)
	if err != nil {
		return nil, err
	}
	return u.machine.Checklist.MissingTypes(app.Category, app.Documents), nil
}

func (u *ApplicationUseCase) RecordConsent(ctx context.Context, id string, actor entities.Actor, policyVersion string) (entities.Application, error) {
	app, err := u.load(ctx, id, actor, false)
	if err != nil {
		return entities.Application{}, err
	}
	if app.HasConsent() {
		// Consent is recorded once; re-recording is a no-op.
		return app, nil
	}
	app.Consent = &entities.Consent{
		AcceptedBy:    actor.ID,
		AcceptedAt:    time.Now().UTC(),
		PolicyVersion: strings.TrimSpace(policyVersion),
	}
	return u.save(ctx, app)
}

func (u *ApplicationUseCase) AddDocument(ctx context.Context, id string, actor entities.Actor, docType, storageRef, checksum string) (entities.Application, error) {
	storageRef = strings.TrimSpace(storageRef)
	if storageRef == "" {
		return entities.Application{}, lifecycle.NewValidation("a document storage reference is required")
	}

	app, err := u.load(ctx, id, actor, false)
	if err != nil {
		return entities.Application{}, err
	}
	if status := app.CurrentStatus(); status.IsTerminal() {
		return entities.Application{}, lifecycle.NewValidation("documents cannot be added to a " + string(status) + " application")
	}

	app.Documents = append(app.Documents, entities.Document{
		ID:                 uuid.NewString(),
		Type:               entities.NormalizeDocumentType(strings.TrimSpace(docType)),
		VerificationStatus: entities.DocumentStatusPending,
		UploadedBy:         actor.ID,
		StorageRef:         storageRef,
		Checksum:           strings.TrimSpace(checksum),
		UploadedAt:         time.Now().UTC(),
	})
	return u.save(ctx, app)
}

func (u *ApplicationUseCase) ReviewDocument(ctx context.Context, id, documentID string, actor entities.Actor, approve bool, note string) (entities.Application, error) {
	app, err := u.load(ctx, id, actor, true)
	if err != nil {
		return entities.Application{}, err
	}

	found := false
	docs := make([]entities.Document, len(app.Documents))
	copy(docs, app.Documents)
	for i := range docs {
		if docs[i].ID != documentID {
			continue
		}
		found = true
		if approve {
			docs[i].VerificationStatus = entities.DocumentStatusApproved
		} else {
			docs[i].VerificationStatus = entities.DocumentStatusRejected
		}
		docs[i].ReviewNote = note
	}
	if !found {
		return entities.Application{}, lifecycle.NewNotFound("document not found on this application")
	}
	app.Documents = docs
	return u.save(ctx, app)
}

// Submit runs the escalation check, obtains a payment reference when a fee
// is due, and applies the submit transition. The provider call happens
// before the write so a failed reference generation leaves the aggregate
// untouched.
func (u *ApplicationUseCase) Submit(ctx context.Context, id string, actor entities.Actor) (entities.Application, error) {
	app, err := u.load(ctx, id, actor, false)
	if err != nil {
		return entities.Application{}, err
	}

	var payment *entities.Payment
	assessment := u.machine.AssessNextSubmission(app)
	if assessment.RequiresPayment {
		if u.payments == nil {
			return entities.Application{}, ErrPaymentProviderNotConfigured
		}
		ref, err := u.payments.CreateReference(ctx, assessment.Amount, assessment.Currency, app.ID)
		if err != nil {
			log.Printf("[application][usecase] payment reference failed id=%s err=%v", app.ID, err)
			return entities.Application{}, err
		}
		payment = &entities.Payment{
			Amount:          assessment.Amount,
			Currency:        assessment.Currency,
			ReferenceNumber: ref.ReferenceNumber,
			QRPayload:       ref.QRPayload,
		}
	}

	updated, err := u.machine.Submit(app, actor, payment)
	if err != nil {
		return entities.Application{}, err
	}
	saved, err := u.save(ctx, updated)
	if err != nil {
		return entities.Application{}, err
	}
	log.Printf("[application][usecase] submitted id=%s count=%d status=%s", saved.ID, saved.SubmissionCount, saved.Status)
	u.notifyStatus(ctx, saved)
	return saved, nil
}

func (u *ApplicationUseCase) AttachPaymentSlip(ctx context.Context, id string, actor entities.Actor, slipRef string) (entities.Application, error) {
	slipRef = strings.TrimSpace(slipRef)
	if slipRef == "" {
		return entities.Application{}, lifecycle.NewValidation("a payment slip reference is required")
	}
	app, err := u.load(ctx, id, actor, false)
	if err != nil {
		return entities.Application{}, err
	}
	updated, err := u.machine.AttachPaymentSlip(app, slipRef)
	if err != nil {
		return entities.Application{}, err
	}
	return u.save(ctx, updated)
}

func (u *ApplicationUseCase) ConfirmPayment(ctx context.Context, id string, actor entities.Actor) (entities.Application, error) {
	app, err := u.load(ctx, id, actor, true)
	if err != nil {
		return entities.Application{}, err
	}
	updated, err := u.machine.ConfirmPayment(app, actor)
	if err != nil {
		return entities.Application{}, err
	}
	saved, err := u.save(ctx, updated)
	if err != nil {
		return entities.Application{}, err
	}
	u.notifyStatus(ctx, saved)
	return saved, nil
}

func (u *ApplicationUseCase) RejectPaymentSlip(ctx context.Context, id string, actor entities.Actor, note string) (entities.Application, error) {
	app, err := u.load(ctx, id, actor, true)
	if err != nil {
		return entities.Application{}, err
	}
	updated, err := u.machine.RejectPaymentSlip(app, note)
	if err != nil {
		return entities.Application{}, err
	}
	return u.save(ctx, updated)
}

func (u *ApplicationUseCase) Approve(ctx context.Context, id string, actor entities.Actor) (entities.Application, error) {
	app, err := u.load(ctx, id, actor, true)
	if err != nil {
		return entities.Application{}, err
	}
	updated, err := u.machine.Approve(app, actor)
	if err != nil {
		return entities.Application{}, err
	}
	saved, err := u.save(ctx, updated)
	if err != nil {
		return entities.Application{}, err
	}
	log.Printf("[application][usecase] approved id=%s by=%s", saved.ID, actor.ID)
	u.notifyStatus(ctx, saved)
	return saved, nil
}

func (u *ApplicationUseCase) Reject(ctx context.Context, id string, actor entities.Actor, reason string) (entities.Application, error) {
	app, err := u.load(ctx, id, actor, true)
	if err != nil {
		return entities.Application{}, err
	}
	updated, err := u.machine.Reject(app, actor, strings.TrimSpace(reason))
	if err != nil {
		return entities.Application{}, err
	}
	saved, err := u.save(ctx, updated)
	if err != nil {
		return entities.Application{}, err
	}
	u.notifyStatus(ctx, saved)
	return saved, nil
}

func (u *ApplicationUseCase) Cancel(ctx context.Context, id string, actor entities.Actor, reason string) (entities.Application, error) {
	app, err := u.load(ctx, id, actor, false)
	if err != nil {
		return entities.Application{}, err
	}
	updated, err := u.machine.Cancel(app, actor, strings.TrimSpace(reason))
	if err != nil {
		return entities.Application{}, err
	}
	saved, err := u.save(ctx, updated)
	if err != nil {
		return entities.Application{}, err
	}
	log.Printf("[application][usecase] cancelled id=%s by=%s", saved.ID, actor.ID)
	u.notifyStatus(ctx, saved)
	return saved, nil
}

// load fetches the aggregate and enforces the access rule: officers see
// everything, applicants only their own; officerOnly gates the
// officer-exclusive transitions.
func (u *ApplicationUseCase) load(ctx context.Context, id string, actor entities.Actor, officerOnly bool) (entities.Application, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Application{}, lifecycle.NewValidation("application id is required")
	}
	if officerOnly && actor.Role != entities.RoleOfficer {
		return entities.Application{}, lifecycle.NewForbidden("this operation requires the officer role")
	}

	app, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Application{}, err
	}
	if app.ID == "" {
		return entities.Application{}, lifecycle.NewNotFound("application not found")
	}
	if actor.Role != entities.RoleOfficer && app.ApplicantID != actor.ID {
		return entities.Application{}, lifecycle.NewForbidden("application belongs to another applicant")
	}
	return app, nil
}

func (u *ApplicationUseCase) save(ctx context.Context, app entities.Application) (entities.Application, error) {
	saved, err := u.repo.Save(ctx, app)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.Application{}, lifecycle.NewConflict("application was modified concurrently; re-fetch and retry", app.ID)
		}
		return entities.Application{}, err
	}
	return saved, nil
}

func (u *ApplicationUseCase) notifyStatus(ctx context.Context, app entities.Application) {
	if u.notifier == nil {
		return
	}
	u.notifier.Notify(ctx, interfaces.Notification{
		Topic:       "application",
		AggregateID: app.ID,
		Status:      string(app.CurrentStatus()),
		Recipient:   app.ApplicantID,
	})
}
