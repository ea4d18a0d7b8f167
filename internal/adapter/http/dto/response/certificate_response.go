package response

import (
	"time"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/usecase"
)

type SuspensionRecordResponse struct {
	SuspendedAt time.Time  `json:"suspended_at"`
	SuspendedBy string     `json:"suspended_by"`
	Reason      string     `json:"reason"`
	LiftedAt    *time.Time `json:"lifted_at,omitempty"`
	LiftedBy    string     `json:"lifted_by,omitempty"`
}

type RevocationResponse struct {
	RevokedAt      time.Time `json:"revoked_at"`
	RevokedBy      string    `json:"revoked_by"`
	Reason         string    `json:"reason"`
	AppealDeadline time.Time `json:"appeal_deadline"`
}

type CertificateResponse struct {
	ID                string                     `json:"id"`
	CertificateNumber string                     `json:"certificate_number"`
	ApplicationID     string                     `json:"application_id"`
	HolderID          string                     `json:"holder_id"`
	Status            string                     `json:"status"`
	IssuedAt          time.Time                  `json:"issued_at"`
	ExpiresAt         time.Time                  `json:"expires_at"`
	SuspensionHistory []SuspensionRecordResponse `json:"suspension_history,omitempty"`
	Revocation        *RevocationResponse        `json:"revocation,omitempty"`
	RenewedBy         string                     `json:"renewed_by,omitempty"`
	CreatedAt         time.Time                  `json:"created_at"`
	UpdatedAt         time.Time                  `json:"updated_at"`
}

type VerificationResponse struct {
	CertificateNumber string    `json:"certificate_number"`
	Status            string    `json:"status"`
	Valid             bool      `json:"valid"`
	ExpiresAt         time.Time `json:"expires_at"`
}

func FromCertificate(cert entities.Certificate) CertificateResponse {
	suspensions := make([]SuspensionRecordResponse, len(cert.SuspensionHistory))
	for i, s := range cert.SuspensionHistory {
		suspensions[i] = SuspensionRecordResponse{
			SuspendedAt: s.SuspendedAt,
			SuspendedBy: s.SuspendedBy,
			Reason:      s.Reason,
			LiftedAt:    s.LiftedAt,
			LiftedBy:    s.LiftedBy,
		}
	}

	resp := CertificateResponse{
		ID:                cert.ID,
		CertificateNumber: cert.CertificateNumber,
		ApplicationID:     cert.ApplicationID,
		HolderID:          cert.HolderID,
		Status:            string(cert.Status),
		IssuedAt:          cert.IssuedAt,
		ExpiresAt:         cert.ExpiresAt,
		SuspensionHistory: suspensions,
		RenewedBy:         cert.RenewedBy,
		CreatedAt:         cert.CreatedAt,
		UpdatedAt:         cert.UpdatedAt,
	}
	if cert.Revocation != nil {
		resp.Revocation = &RevocationResponse{
			RevokedAt:      cert.Revocation.RevokedAt,
			RevokedBy:      cert.Revocation.RevokedBy,
			Reason:         cert.Revocation.Reason,
			AppealDeadline: cert.Revocation.AppealDeadline,
		}
	}
	return resp
}

func FromCertificates(certs []entities.Certificate) []CertificateResponse {
	out := make([]CertificateResponse, len(certs))
	for i, cert := range certs {
		out[i] = FromCertificate(cert)
	}
	return out
}

func FromVerification(v usecase.Verification) VerificationResponse {
	return VerificationResponse{
		CertificateNumber: v.CertificateNumber,
		Status:            string(v.Status),
		Valid:             v.Valid,
		ExpiresAt:         v.ExpiresAt,
	}
}
