package entities

import "time"

// ApplicationStatus represents the certification application lifecycle.
//
// Domain notes:
//   - The certification-service is the source of truth for application state.
//   - Transitions are validated by the lifecycle package; nothing else may
//     write Status directly.

type ApplicationStatus string

const (
	ApplicationStatusDraft             ApplicationStatus = "draft"
	ApplicationStatusSubmitted         ApplicationStatus = "submitted"
	ApplicationStatusPendingPayment    ApplicationStatus = "pending_payment"
	ApplicationStatusPaymentConfirmed  ApplicationStatus = "payment_confirmed"
	ApplicationStatusUnderReview       ApplicationStatus = "under_review"
	ApplicationStatusApproved          ApplicationStatus = "approved"
	ApplicationStatusRejected          ApplicationStatus = "rejected"
	ApplicationStatusPendingInspection ApplicationStatus = "pending_inspection"
	ApplicationStatusCancelled         ApplicationStatus = "cancelled"
)

// ApplicantCategory determines the required document set.

type ApplicantCategory string

const (
	CategoryIndividual          ApplicantCategory = "individual"
	CategoryCommunityEnterprise ApplicantCategory = "community_enterprise"
	CategoryLegalEntity         ApplicantCategory = "legal_entity"
)

// Role of the acting identity, supplied by the identity provider.

type Role string

const (
	RoleApplicant Role = "applicant"
	RoleOfficer   Role = "officer"
	RoleInspector Role = "inspector"
)

// Actor is the authenticated identity performing an operation. It is passed
// explicitly into every transition; the core never reads ambient request
// state.
type Actor struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

// StatusHistoryEntry is one immutable entry of the application's status log.
// The log is append-only; current status is the projection of the last
// entry.
type StatusHistoryEntry struct {
	Status    ApplicationStatus `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Actor     string            `json:"actor"`
	Reason    string            `json:"reason,omitempty"`
}

// PaymentStatus of the resubmission-fee payment sub-record.

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Payment is created when the application enters pending_payment. The QR
// payload and reference come from the payment-reference provider; the core
// stores them and never talks to the gateway during a transition.
type Payment struct {
	Amount          float64       `json:"amount"`
	Currency        string        `json:"currency"`
	Status          PaymentStatus `json:"status"`
	ReferenceNumber string        `json:"reference_number"`
	QRPayload       string        `json:"qr_payload,omitempty"`
	SlipRef         string        `json:"slip_ref,omitempty"`
	Note            string        `json:"note,omitempty"`
}

// Consent is recorded once, before submission.
type Consent struct {
	AcceptedBy    string    `json:"accepted_by"`
	AcceptedAt    time.Time `json:"accepted_at"`
	PolicyVersion string    `json:"policy_version"`
}

// Application is the certification request aggregate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (applicant_id-index): applicant_id
//
// Concurrency:
//   - Version is a compare-and-swap attribute; every write is a Put
//     conditional on the version read, so SubmissionCount and the status
//     log can never be advanced from a stale snapshot.
type Application struct {
	ID                string               `json:"id"`
	ApplicationNumber string               `json:"application_number"`
	ApplicantID       string               `json:"applicant_id"`
	Category          ApplicantCategory    `json:"category"`
	Status            ApplicationStatus    `json:"status"`
	StatusHistory     []StatusHistoryEntry `json:"status_history"`
	SubmissionCount   int                  `json:"submission_count"`
	Documents         []Document           `json:"documents"`
	Payment           *Payment             `json:"payment,omitempty"`
	Consent           *Consent             `json:"consent,omitempty"`
	Version           int64                `json:"version"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

// CurrentStatus projects the status from the history log. The denormalized
// Status field exists for querying; the log is the source of truth.
func (a Application) CurrentStatus() ApplicationStatus {
	if len(a.StatusHistory) == 0 {
		return a.Status
	}
	return a.StatusHistory[len(a.StatusHistory)-1].Status
}

// HasConsent reports whether the applicant's consent has been recorded.
func (a Application) HasConsent() bool {
	return a.Consent != nil && !a.Consent.AcceptedAt.IsZero()
}

// ActiveDocuments returns the documents that count toward completeness,
// i.e. everything not rejected.
func (a Application) ActiveDocuments() []Document {
	out := make([]Document, 0, len(a.Documents))
	for _, d := range a.Documents {
		if d.VerificationStatus != DocumentStatusRejected {
			out = append(out, d)
		}
	}
	return out
}

// IsTerminal reports whether the application can never transition again
// except through explicitly modeled edges (resubmission from rejected is
// modeled, so rejected is not terminal).
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusApproved || s == ApplicationStatusCancelled
}
