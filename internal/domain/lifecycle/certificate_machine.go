package lifecycle

import (
	"fmt"
	"time"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
)

const (
	// DefaultValidityYears is the fixed certificate validity period.
	DefaultValidityYears = 3
	// DefaultAppealWindowDays is how long a holder may contest a
	// revocation.
	DefaultAppealWindowDays = 30
)

// CertificateMachine governs issuance and the
// active/suspended/revoked/expired/renewed transitions. Expiry is detected
// lazily on read via RefreshExpiry; there is no background sweep.
type CertificateMachine struct {
	ValidityYears    int
	AppealWindowDays int
	Clock            func() time.Time
}

// NewCertificateMachine returns a machine with the default validity and
// appeal window.
func NewCertificateMachine() *CertificateMachine {
	return &CertificateMachine{
		ValidityYears:    DefaultValidityYears,
		AppealWindowDays: DefaultAppealWindowDays,
		Clock:            time.Now,
	}
}

// FormatCertificateNumber derives the immutable certificate number from
// issuing region, year and sequence.
func FormatCertificateNumber(region string, year int, seq int64) string {
	return fmt.Sprintf("GACP-%s-%d-%05d", region, year, seq)
}

// FormatApplicationNumber derives the human-readable application number.
func FormatApplicationNumber(year int, seq int64) string {
	return fmt.Sprintf("APP-%d-%06d", year, seq)
}

// Issue creates the certificate for an approved application. The caller is
// responsible for the no-live-duplicate check against the repository; this
// method guards the application state and computes expiry.
func (m *CertificateMachine) Issue(app entities.Application, id, certificateNumber string) (entities.Certificate, error) {
	if status := app.CurrentStatus(); status != entities.ApplicationStatusApproved {
		return entities.Certificate{}, newPrecondition(string(status),
			"certificates are issued only for approved applications", "approved_application")
	}

	now := m.Clock().UTC()
	return entities.Certificate{
		ID:                id,
		CertificateNumber: certificateNumber,
		ApplicationID:     app.ID,
		HolderID:          app.ApplicantID,
		Status:            entities.CertificateStatusActive,
		IssuedAt:          now,
		ExpiresAt:         now.AddDate(m.ValidityYears, 0, 0),
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// Suspend moves an active certificate to suspended and appends a
// suspension record.
func (m *CertificateMachine) Suspend(cert entities.Certificate, actor entities.Actor, reason string) (entities.Certificate, error) {
	if reason == "" {
		return cert, NewValidation("a suspension reason is required")
	}
	if cert.Status != entities.CertificateStatusActive {
		return cert, newInvalidTransition(string(cert.Status), string(entities.CertificateStatusSuspended),
			certificateValidNext(cert.Status))
	}

	now := m.Clock().UTC()
	cert.Status = entities.CertificateStatusSuspended
	cert.SuspensionHistory = append(cert.SuspensionHistory, entities.SuspensionRecord{
		SuspendedAt: now,
		SuspendedBy: actor.ID,
		Reason:      reason,
	})
	cert.UpdatedAt = now
	return cert, nil
}

// Reinstate lifts the current suspension and returns the certificate to
// active. The open suspension record gets its lifted timestamp; history is
// never rewritten.
func (m *CertificateMachine) Reinstate(cert entities.Certificate, actor entities.Actor) (entities.Certificate, error) {
	if cert.Status != entities.CertificateStatusSuspended {
		return cert, newInvalidTransition(string(cert.Status), string(entities.CertificateStatusActive),
			certificateValidNext(cert.Status))
	}

	now := m.Clock().UTC()
	history := make([]entities.SuspensionRecord, len(cert.SuspensionHistory))
	copy(history, cert.SuspensionHistory)
	if n := len(history); n > 0 && history[n-1].LiftedAt == nil {
		lifted := now
		history[n-1].LiftedAt = &lifted
		history[n-1].LiftedBy = actor.ID
	}
	cert.SuspensionHistory = history
	cert.Status = entities.CertificateStatusActive
	cert.UpdatedAt = now
	return cert, nil
}

// Revoke terminally revokes an active certificate and opens the appeal
// window.
func (m *CertificateMachine) Revoke(cert entities.Certificate, actor entities.Actor, reason string) (entities.Certificate, error) {
	if reason == "" {
		return cert, NewValidation("a revocation reason is required")
	}
	if cert.Status != entities.CertificateStatusActive {
		return cert, newInvalidTransition(string(cert.Status), string(entities.CertificateStatusRevoked),
			certificateValidNext(cert.Status))
	}

	now := m.Clock().UTC()
	cert.Status = entities.CertificateStatusRevoked
	cert.Revocation = &entities.RevocationInfo{
		RevokedAt:      now,
		RevokedBy:      actor.ID,
		Reason:         reason,
		AppealDeadline: now.AddDate(0, 0, m.AppealWindowDays),
	}
	cert.UpdatedAt = now
	return cert, nil
}

// Renew marks the certificate as superseded by its successor record. The
// renewed record itself is no longer valid for current-use checks.
func (m *CertificateMachine) Renew(cert entities.Certificate, successorID string) (entities.Certificate, error) {
	if successorID == "" {
		return cert, NewValidation("a successor certificate id is required")
	}
	if cert.Status != entities.CertificateStatusActive {
		return cert, newInvalidTransition(string(cert.Status), string(entities.CertificateStatusRenewed),
			certificateValidNext(cert.Status))
	}

	cert.Status = entities.CertificateStatusRenewed
	cert.RenewedBy = successorID
	cert.UpdatedAt = m.Clock().UTC()
	return cert, nil
}

// RefreshExpiry flips an active certificate past its expiry date to
// expired. Invoked on every read path; reports whether a write-back is
// needed.
func (m *CertificateMachine) RefreshExpiry(cert entities.Certificate) (entities.Certificate, bool) {
	if cert.Status != entities.CertificateStatusActive {
		return cert, false
	}
	now := m.Clock().UTC()
	if !now.After(cert.ExpiresAt) {
		return cert, false
	}
	cert.Status = entities.CertificateStatusExpired
	cert.UpdatedAt = now
	return cert, true
}

func certificateValidNext(from entities.CertificateStatus) []string {
	switch from {
	case entities.CertificateStatusActive:
		return []string{
			string(entities.CertificateStatusSuspended),
			string(entities.CertificateStatusRevoked),
			string(entities.CertificateStatusExpired),
			string(entities.CertificateStatusRenewed),
		}
	case entities.CertificateStatusSuspended:
		return []string{string(entities.CertificateStatusActive)}
	}
	return nil
}
