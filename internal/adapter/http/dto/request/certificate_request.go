package request

import "strings"

// IssueCertificateRequest issues a certificate for an approved application.
type IssueCertificateRequest struct {
	ApplicationID string `json:"application_id" binding:"required"`
}

func (r IssueCertificateRequest) ResolveApplicationID() string {
	return strings.TrimSpace(r.ApplicationID)
}
