package entities

import "time"

// DocumentStatus is the verification outcome recorded by a reviewing
// officer. Rejected documents stay in the log but never count toward
// completeness.

type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusApproved DocumentStatus = "approved"
	DocumentStatusRejected DocumentStatus = "rejected"
)

// DocumentType is the fixed vocabulary of required document kinds. Uploads
// with an unrecognized type are normalized to DocumentTypeOther and never
// satisfy a required slot.

type DocumentType string

const (
	DocumentTypeNationalID             DocumentType = "national_id"
	DocumentTypeLandDeed               DocumentType = "land_deed"
	DocumentTypeSitePlan               DocumentType = "site_plan"
	DocumentTypeProductionPlan         DocumentType = "production_plan"
	DocumentTypeEnterpriseRegistration DocumentType = "enterprise_registration"
	DocumentTypeCompanyRegistration    DocumentType = "company_registration"
	DocumentTypeBoardResolution        DocumentType = "board_resolution"
	DocumentTypeOther                  DocumentType = "other"
)

// NormalizeDocumentType maps free-form input onto the fixed vocabulary.
func NormalizeDocumentType(raw string) DocumentType {
	switch t := DocumentType(raw); t {
	case DocumentTypeNationalID, DocumentTypeLandDeed, DocumentTypeSitePlan,
		DocumentTypeProductionPlan, DocumentTypeEnterpriseRegistration,
		DocumentTypeCompanyRegistration, DocumentTypeBoardResolution:
		return t
	}
	return DocumentTypeOther
}

// Document is one uploaded file reference. Documents are append-only: a
// replacement is a new upload, a bad one is rejected, nothing is removed.
// The core stores only the storage reference and checksum returned by the
// document-storage collaborator.
type Document struct {
	ID                 string         `json:"id"`
	Type               DocumentType   `json:"type"`
	VerificationStatus DocumentStatus `json:"verification_status"`
	UploadedBy         string         `json:"uploaded_by"`
	StorageRef         string         `json:"storage_ref"`
	Checksum           string         `json:"checksum,omitempty"`
	UploadedAt         time.Time      `json:"uploaded_at"`
	ReviewNote         string         `json:"review_note,omitempty"`
}
