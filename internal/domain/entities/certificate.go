package entities

import "time"

// CertificateStatus represents the issued certificate lifecycle.
//
// Domain notes:
//   - revoked is terminal; an appeal window opens at revocation.
//   - renewed marks a superseded record. A renewed certificate is NOT
//     valid for current-use checks; validity always refers to the active
//     successor.

type CertificateStatus string

const (
	CertificateStatusActive    CertificateStatus = "active"
	CertificateStatusSuspended CertificateStatus = "suspended"
	CertificateStatusRevoked   CertificateStatus = "revoked"
	CertificateStatusExpired   CertificateStatus = "expired"
	CertificateStatusRenewed   CertificateStatus = "renewed"
)

// SuspensionRecord is one append-only suspension log entry. LiftedAt is set
// when the certificate is reinstated.
type SuspensionRecord struct {
	SuspendedAt time.Time  `json:"suspended_at"`
	SuspendedBy string     `json:"suspended_by"`
	Reason      string     `json:"reason"`
	LiftedAt    *time.Time `json:"lifted_at,omitempty"`
	LiftedBy    string     `json:"lifted_by,omitempty"`
}

// RevocationInfo records the terminal revocation decision.
type RevocationInfo struct {
	RevokedAt      time.Time `json:"revoked_at"`
	RevokedBy      string    `json:"revoked_by"`
	Reason         string    `json:"reason"`
	AppealDeadline time.Time `json:"appeal_deadline"`
}

// Certificate is issued one-to-one from an approved application.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (application_id-index): application_id
//   - GSI2 (certificate_number-index): certificate_number
type Certificate struct {
	ID                string             `json:"id"`
	CertificateNumber string             `json:"certificate_number"`
	ApplicationID     string             `json:"application_id"`
	HolderID          string             `json:"holder_id"`
	Status            CertificateStatus  `json:"status"`
	IssuedAt          time.Time          `json:"issued_at"`
	ExpiresAt         time.Time          `json:"expires_at"`
	SuspensionHistory []SuspensionRecord `json:"suspension_history,omitempty"`
	Revocation        *RevocationInfo    `json:"revocation,omitempty"`
	RenewedBy         string             `json:"renewed_by,omitempty"`
	Version           int64              `json:"version"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// IsValid reports whether the certificate can back a current-use check:
// active and not past expiry. Suspended, revoked, expired and renewed
// certificates are all invalid.
func (c Certificate) IsValid(now time.Time) bool {
	return c.Status == CertificateStatusActive && !now.After(c.ExpiresAt)
}

// IsExpiringSoon is true only while the certificate is still active and
// within thresholdDays of expiry. An already-expired certificate is
// invalid, not expiring-soon; callers that conflate the two lose the
// renewal-reminder window.
func (c Certificate) IsExpiringSoon(now time.Time, thresholdDays int) bool {
	if !c.IsValid(now) {
		return false
	}
	remaining := c.ExpiresAt.Sub(now)
	return remaining > 0 && remaining <= time.Duration(thresholdDays)*24*time.Hour
}

// IsLive reports whether this record still occupies its application's
// certificate slot. Issuance for the same application is blocked while a
// live certificate exists.
func (c Certificate) IsLive(now time.Time) bool {
	switch c.Status {
	case CertificateStatusRevoked, CertificateStatusExpired, CertificateStatusRenewed:
		return false
	}
	return !now.After(c.ExpiresAt)
}
