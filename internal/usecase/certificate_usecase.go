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

// certificateSequence is the sequence bucket for certificate numbers.
const certificateSequence = "certificates"

// Verification is the public validity answer for a certificate number.
type Verification struct {
	CertificateNumber string                     `json:"certificate_number"`
	Status            entities.CertificateStatus `json:"status"`
	Valid             bool                       `json:"valid"`
	ExpiresAt         time.Time                  `json:"expires_at"`
}

// ICertificateUseCase exposes issuance and the certificate state machine.
// Expiry is refreshed lazily on every read path; an expired-on-read
// certificate is written back before being returned.

type ICertificateUseCase interface {
	Issue(ctx context.Context, applicationID string, actor entities.Actor) (entities.Certificate, error)
	GetByID(ctx context.Context, id string) (entities.Certificate, error)
	VerifyByNumber(ctx context.Context, certificateNumber string) (Verification, error)
	Suspend(ctx context.Context, id string, actor entities.Actor, reason string) (entities.Certificate, error)
	Reinstate(ctx context.Context, id string, actor entities.Actor) (entities.Certificate, error)
	Revoke(ctx context.Context, id string, actor entities.Actor, reason string) (entities.Certificate, error)
	Renew(ctx context.Context, id string, actor entities.Actor) (entities.Certificate, error)
	ListExpiring(ctx context.Context, thresholdDays int) ([]entities.Certificate, error)
}

type CertificateUseCase struct {
	repo     interfaces.ICertificateRepository
	apps     interfaces.IApplicationRepository
	seq      interfaces.ISequenceRepository
	notifier interfaces.INotifier
	machine  *lifecycle.CertificateMachine
	region   string
}

var _ ICertificateUseCase = (*CertificateUseCase)(nil)

func NewCertificateUseCase(
	repo interfaces.ICertificateRepository,
	apps interfaces.IApplicationRepository,
	seq interfaces.ISequenceRepository,
	notifier interfaces.INotifier,
	region string,
) *CertificateUseCase {
	return &CertificateUseCase{
		repo:     repo,
		apps:     apps,
		seq:      seq,
		notifier: notifier,
		machine:  lifecycle.NewCertificateMachine(),
		region:   region,
	}
}

// Issue creates the certificate for an approved application. Re-issuance
// while a live (non-revoked, non-expired, non-renewed) certificate exists
// for the same application is rejected.
func (u *CertificateUseCase) Issue(ctx context.Context, applicationID string, actor entities.Actor) (entities.Certificate, error) {
	if actor.Role != entities.RoleOfficer {
		return entities.Certificate{}, lifecycle.NewForbidden("issuance requires the officer role")
	}
	applicationID = strings.TrimSpace(applicationID)
	if applicationID == "" {
		return entities.Certificate{}, lifecycle.NewValidation("application id is required")
	}

	app, err := u.apps.GetByID(ctx, applicationID)
	if err != nil {
		return entities.Certificate{}, err
	}
	if app.ID == "" {
		return entities.Certificate{}, lifecycle.NewNotFound("application not found")
	}

	existing, err := u.repo.ListByApplicationID(ctx, applicationID)
	if err != nil {
		return entities.Certificate{}, err
	}
	now := time.Now().UTC()
	for _, c := range existing {
		if c.IsLive(now) {
			return entities.Certificate{}, lifecycle.NewLimitReached(
				"a live certificate already exists for this application: " + c.CertificateNumber)
		}
	}

	cert, err := u.newCertificate(ctx, app)
	if err != nil {
		return entities.Certificate{}, err
	}
	created, err := u.repo.Create(ctx, cert)
	if err != nil {
		return entities.Certificate{}, err
	}
	log.Printf("[certificate][usecase] issued id=%s number=%s application=%s", created.ID, created.CertificateNumber, applicationID)
	u.notify(ctx, created)
	return created, nil
}

func (u *CertificateUseCase) GetByID(ctx context.Context, id string) (entities.Certificate, error) {
	cert, err := u.loadCert(ctx, id)
	if err != nil {
		return entities.Certificate{}, err
	}
	return u.refreshExpiry(ctx, cert)
}

// VerifyByNumber is the public validity check: holders and buyers can
// confirm a certificate without seeing the full record.
func (u *CertificateUseCase) VerifyByNumber(ctx context.Context, certificateNumber string) (Verification, error) {
	certificateNumber = strings.TrimSpace(certificateNumber)
	if certificateNumber == "" {
		return Verification{}, lifecycle.NewValidation("certificate number is required")
	}

	cert, err := u.repo.GetByNumber(ctx, certificateNumber)
	if err != nil {
		return Verification{}, err
	}
	if cert.ID == "" {
		return Verification{}, lifecycle.NewNotFound("certificate not found")
	}
	cert, err = u.refreshExpiry(ctx, cert)
	if err != nil {
		return Verification{}, err
	}
	return Verification{
		CertificateNumber: cert.CertificateNumber,
		Status:            cert.Status,
		Valid:             cert.IsValid(time.Now().UTC()),
		ExpiresAt:         cert.ExpiresAt,
	}, nil
}

func (u *CertificateUseCase) Suspend(ctx context.Context, id string, actor entities.Actor, reason string) (entities.Certificate, error) {
	return u.mutate(ctx, id, actor, func(cert entities.Certificate) (entities.Certificate, error) {
		return u.machine.Suspend(cert, actor, strings.TrimSpace(reason))
	})
}

func (u *CertificateUseCase) Reinstate(ctx context.Context, id string, actor entities.Actor) (entities.Certificate, error) {
	return u.mutate(ctx, id, actor, func(cert entities.Certificate) (entities.Certificate, error) {
		return u.machine.Reinstate(cert, actor)
	})
}

func (u *CertificateUseCase) Revoke(ctx context.Context, id string, actor entities.Actor, reason string) (entities.Certificate, error) {
	return u.mutate(ctx, id, actor, func(cert entities.Certificate) (entities.Certificate, error) {
		return u.machine.Revoke(cert, actor, strings.TrimSpace(reason))
	})
}

// Renew supersedes an active certificate with a fresh one for the same
// application. The old record becomes renewed (not valid for current-use
// checks); the successor carries the new validity period.
func (u *CertificateUseCase) Renew(ctx context.Context, id string, actor entities.Actor) (entities.Certificate, error) {
	if actor.Role != entities.RoleOfficer {
		return entities.Certificate{}, lifecycle.NewForbidden("renewal requires the officer role")
	}
	cert, err := u.loadCert(ctx, id)
	if err != nil {
		return entities.Certificate{}, err
	}
	cert, err = u.refreshExpiry(ctx, cert)
	if err != nil {
		return entities.Certificate{}, err
	}

	app, err := u.apps.GetByID(ctx, cert.ApplicationID)
	if err != nil {
		return entities.Certificate{}, err
	}
	if app.ID == "" {
		return entities.Certificate{}, lifecycle.NewNotFound("application not found for this certificate")
	}

	successor, err := u.newCertificate(ctx, app)
	if err != nil {
		return entities.Certificate{}, err
	}

	renewed, err := u.machine.Renew(cert, successor.ID)
	if err != nil {
		return entities.Certificate{}, err
	}

	// The old record is retired first, under its CAS condition. Creating
	// the successor before that write commits could leave two active
	// certificates for the application if the write loses a race.
	if _, err := u.saveCert(ctx, renewed); err != nil {
		return entities.Certificate{}, err
	}
	created, err := u.repo.Create(ctx, successor)
	if err != nil {
		return entities.Certificate{}, err
	}
	log.Printf("[certificate][usecase] renewed old=%s successor=%s", renewed.CertificateNumber, created.CertificateNumber)
	u.notify(ctx, created)
	return created, nil
}

// ListExpiring returns active certificates inside the expiring-soon
// window. Already-expired records are excluded by definition.
func (u *CertificateUseCase) ListExpiring(ctx context.Context, thresholdDays int) ([]entities.Certificate, error) {
	if thresholdDays <= 0 {
		return nil, lifecycle.NewValidation("a positive threshold in days is required")
	}
	now := time.Now().UTC()
	candidates, err := u.repo.ListActiveExpiringBefore(ctx, now.AddDate(0, 0, thresholdDays))
	if err != nil {
		return nil, err
	}
	out := make([]entities.Certificate, 0, len(candidates))
	for _, c := range candidates {
		if c.IsExpiringSoon(now, thresholdDays) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (u *CertificateUseCase) newCertificate(ctx context.Context, app entities.Application) (entities.Certificate, error) {
	year := time.Now().UTC().Year()
	seq, err := u.seq.Next(ctx, certificateSequence, year)
	if err != nil {
		return entities.Certificate{}, err
	}
	number := lifecycle.FormatCertificateNumber(u.region, year, seq)
	return u.machine.Issue(app, uuid.NewString(), number)
}

func (u *CertificateUseCase) mutate(ctx context.Context, id string, actor entities.Actor, op func(entities.Certificate) (entities.Certificate, error)) (entities.Certificate, error) {
	if actor.Role != entities.RoleOfficer {
		return entities.Certificate{}, lifecycle.NewForbidden("this operation requires the officer role")
	}
	cert, err := u.loadCert(ctx, id)
	if err != nil {
		return entities.Certificate{}, err
	}
	cert, err = u.refreshExpiry(ctx, cert)
	if err != nil {
		return entities.Certificate{}, err
	}
	updated, err := op(cert)
	if err != nil {
		return entities.Certificate{}, err
	}
	saved, err := u.saveCert(ctx, updated)
	if err != nil {
		return entities.Certificate{}, err
	}
	log.Printf("[certificate][usecase] %s number=%s by=%s", saved.Status, saved.CertificateNumber, actor.ID)
	u.notify(ctx, saved)
	return saved, nil
}

// refreshExpiry applies the lazy expired-on-read rule and persists the
// flip when one happened.
func (u *CertificateUseCase) refreshExpiry(ctx context.Context, cert entities.Certificate) (entities.Certificate, error) {
	refreshed, changed := u.machine.RefreshExpiry(cert)
	if !changed {
		return cert, nil
	}
	saved, err := u.saveCert(ctx, refreshed)
	if err != nil {
		// A concurrent reader may have flipped it first; the refreshed
		// view is still correct for this caller.
		if rej, ok := lifecycle.AsRejection(err); ok && rej.Kind == lifecycle.RejectionConflict {
			return refreshed, nil
		}
		return entities.Certificate{}, err
	}
	return saved, nil
}

func (u *CertificateUseCase) loadCert(ctx context.Context, id string) (entities.Certificate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Certificate{}, lifecycle.NewValidation("certificate id is required")
	}
	cert, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Certificate{}, err
	}
	if cert.ID == "" {
		return entities.Certificate{}, lifecycle.NewNotFound("certificate not found")
	}
	return cert, nil
}

func (u *CertificateUseCase) saveCert(ctx context.Context, cert entities.Certificate) (entities.Certificate, error) {
	saved, err := u.repo.Save(ctx, cert)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.Certificate{}, lifecycle.NewConflict("certificate was modified concurrently; re-fetch and retry", cert.ID)
		}
		return entities.Certificate{}, err
	}
	return saved, nil
}

func (u *CertificateUseCase) notify(ctx context.Context, cert entities.Certificate) {
	if u.notifier == nil {
		return
	}
	u.notifier.Notify(ctx, interfaces.Notification{
		Topic:       "certificate",
		AggregateID: cert.ID,
		Status:      string(cert.Status),
		Recipient:   cert.HolderID,
	})
}
