package request

import "strings"

// CreateApplicationRequest opens a draft application for the calling
// applicant.
type CreateApplicationRequest struct {
	Category string `json:"category" binding:"required"`
}

func (r CreateApplicationRequest) ResolveCategory() string {
	return strings.TrimSpace(r.Category)
}

// ConsentRequest records the applicant's PDPA consent before submission.
type ConsentRequest struct {
	PolicyVersion string `json:"policy_version" binding:"required"`
}

func (r ConsentRequest) ResolvePolicyVersion() string {
	return strings.TrimSpace(r.PolicyVersion)
}

// DocumentUploadRequest attaches one document to a draft application.
type DocumentUploadRequest struct {
	Type       string `json:"type" binding:"required"`
	StorageRef string `json:"storage_ref" binding:"required"`
	Checksum   string `json:"checksum"`
}

func (r DocumentUploadRequest) ResolveType() string {
	return strings.TrimSpace(r.Type)
}

func (r DocumentUploadRequest) ResolveStorageRef() string {
	return strings.TrimSpace(r.StorageRef)
}

// DocumentReviewRequest approves or rejects one uploaded document.
// Approve is a pointer so "false" binds distinguishably from "absent".
type DocumentReviewRequest struct {
	Approve *bool  `json:"approve" binding:"required"`
	Note    string `json:"note"`
}

// PaymentSlipRequest attaches the applicant's transfer-slip reference.
type PaymentSlipRequest struct {
	SlipRef string `json:"slip_ref" binding:"required"`
}

func (r PaymentSlipRequest) ResolveSlipRef() string {
	return strings.TrimSpace(r.SlipRef)
}

// ReasonRequest carries a free-text reason for reject, cancel, suspend and
// revoke operations.
type ReasonRequest struct {
	Reason string `json:"reason"`
}

func (r ReasonRequest) ResolveReason() string {
	return strings.TrimSpace(r.Reason)
}
