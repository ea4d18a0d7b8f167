package response

import (
	"time"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
)

type StatusHistoryEntryResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Actor     string    `json:"actor"`
	Reason    string    `json:"reason,omitempty"`
}

type DocumentResponse struct {
	ID                 string    `json:"id"`
	Type               string    `json:"type"`
	VerificationStatus string    `json:"verification_status"`
	UploadedBy         string    `json:"uploaded_by"`
	StorageRef         string    `json:"storage_ref"`
	Checksum           string    `json:"checksum,omitempty"`
	UploadedAt         time.Time `json:"uploaded_at"`
	ReviewNote         string    `json:"review_note,omitempty"`
}

type PaymentResponse struct {
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	Status          string  `json:"status"`
	ReferenceNumber string  `json:"reference_number"`
	QRPayload       string  `json:"qr_payload,omitempty"`
	SlipRef         string  `json:"slip_ref,omitempty"`
	Note            string  `json:"note,omitempty"`
}

type ConsentResponse struct {
	AcceptedBy    string    `json:"accepted_by"`
	AcceptedAt    time.Time `json:"accepted_at"`
	PolicyVersion string    `json:"policy_version"`
}

type ApplicationResponse struct {
	ID                string                       `json:"id"`
	ApplicationNumber string                       `json:"application_number"`
	ApplicantID       string                       `json:"applicant_id"`
	Category          string                       `json:"category"`
	Status            string                       `json:"status"`
	StatusHistory     []StatusHistoryEntryResponse `json:"status_history"`
	SubmissionCount   int                          `json:"submission_count"`
	Documents         []DocumentResponse           `json:"documents"`
	Payment           *PaymentResponse             `json:"payment,omitempty"`
	Consent           *ConsentResponse             `json:"consent,omitempty"`
	CreatedAt         time.Time                    `json:"created_at"`
	UpdatedAt         time.Time                    `json:"updated_at"`
}

type MissingDocumentsResponse struct {
	ApplicationID string   `json:"application_id"`
	Complete      bool     `json:"complete"`
	Missing       []string `json:"missing"`
}

func FromApplication(app entities.Application) ApplicationResponse {
	history := make([]StatusHistoryEntryResponse, len(app.StatusHistory))
	for i, h := range app.StatusHistory {
		history[i] = StatusHistoryEntryResponse{
			Status:    string(h.Status),
			Timestamp: h.Timestamp,
			Actor:     h.Actor,
			Reason:    h.Reason,
		}
	}

	docs := make([]DocumentResponse, len(app.Documents))
	for i, d := range app.Documents {
		docs[i] = DocumentResponse{
			ID:                 d.ID,
			Type:               string(d.Type),
			VerificationStatus: string(d.VerificationStatus),
			UploadedBy:         d.UploadedBy,
			StorageRef:         d.StorageRef,
			Checksum:           d.Checksum,
			UploadedAt:         d.UploadedAt,
			ReviewNote:         d.ReviewNote,
		}
	}

	resp := ApplicationResponse{
		ID:                app.ID,
		ApplicationNumber: app.ApplicationNumber,
		ApplicantID:       app.ApplicantID,
		Category:          string(app.Category),
		Status:            string(app.CurrentStatus()),
		StatusHistory:     history,
		SubmissionCount:   app.SubmissionCount,
		Documents:         docs,
		CreatedAt:         app.CreatedAt,
		UpdatedAt:         app.UpdatedAt,
	}
	if app.Payment != nil {
		resp.Payment = &PaymentResponse{
			Amount:          app.Payment.Amount,
			Currency:        app.Payment.Currency,
			Status:          string(app.Payment.Status),
			ReferenceNumber: app.Payment.ReferenceNumber,
			QRPayload:       app.Payment.QRPayload,
			SlipRef:         app.Payment.SlipRef,
			Note:            app.Payment.Note,
		}
	}
	if app.Consent != nil {
		resp.Consent = &ConsentResponse{
			AcceptedBy:    app.Consent.AcceptedBy,
			AcceptedAt:    app.Consent.AcceptedAt,
			PolicyVersion: app.Consent.PolicyVersion,
		}
	}
	return resp
}

func FromApplications(apps []entities.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, len(apps))
	for i, app := range apps {
		out[i] = FromApplication(app)
	}
	return out
}

func FromMissingDocuments(applicationID string, missing []entities.DocumentType) MissingDocumentsResponse {
	types := make([]string, len(missing))
	for i, t := range missing {
		types[i] = string(t)
	}
	return MissingDocumentsResponse{
		ApplicationID: applicationID,
		Complete:      len(types) == 0,
		Missing:       types,
	}
}
