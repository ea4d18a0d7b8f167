package lifecycle

import (
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
)

// Checklist maps each applicant category to its fixed required document
// set. Completeness gates the submit transition: while MissingTypes is
// non-empty the application cannot leave draft (or rejected).
type Checklist struct {
	required map[entities.ApplicantCategory][]entities.DocumentType
}

// DefaultChecklist returns the certification body's required-type lists.
// Legal entities carry the most types because they additionally prove
// organizational registration and signing authority.
func DefaultChecklist() Checklist {
	base := []entities.DocumentType{
		entities.DocumentTypeNationalID,
		entities.DocumentTypeLandDeed,
		entities.DocumentTypeSitePlan,
		entities.DocumentTypeProductionPlan,
	}
	return Checklist{required: map[entities.ApplicantCategory][]entities.DocumentType{
		entities.CategoryIndividual: base,
		entities.CategoryCommunityEnterprise: append(append([]entities.DocumentType{}, base...),
			entities.DocumentTypeEnterpriseRegistration,
		),
		entities.CategoryLegalEntity: append(append([]entities.DocumentType{}, base...),
			entities.DocumentTypeCompanyRegistration,
			entities.DocumentTypeBoardResolution,
		),
	}}
}

// RequiredTypes returns the required set for a category. Unknown
// categories get the individual baseline.
func (c Checklist) RequiredTypes(category entities.ApplicantCategory) []entities.DocumentType {
	if types, ok := c.required[category]; ok {
		return types
	}
	return c.required[entities.CategoryIndividual]
}

// MissingTypes returns the required types not yet covered by a
// non-rejected document. Pure over the current document state; documents
// normalized to the "other" bucket never satisfy a slot.
func (c Checklist) MissingTypes(category entities.ApplicantCategory, docs []entities.Document) []entities.DocumentType {
	present := make(map[entities.DocumentType]bool, len(docs))
	for _, d := range docs {
		if d.VerificationStatus == entities.DocumentStatusRejected {
			continue
		}
		if d.Type == entities.DocumentTypeOther {
			continue
		}
		present[d.Type] = true
	}

	var missing []entities.DocumentType
	for _, t := range c.RequiredTypes(category) {
		if !present[t] {
			missing = append(missing, t)
		}
	}
	return missing
}
