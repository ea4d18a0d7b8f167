package interfaces

import (
	"context"
	"errors"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
)

// ErrVersionConflict is returned by Save when the aggregate's version no
// longer matches the one read, i.e. a concurrent transition won. Callers
// re-fetch and retry; the write is rejected, never overwritten.
var ErrVersionConflict = errors.New("aggregate version conflict")

// IApplicationRepository abstracts DynamoDB persistence for Application.
//
// Conventions shared by every repository in this package:
//   - GetByID returns the zero value, nil error when the item is missing.
//   - Save is a conditional write on the version attribute read into the
//     aggregate; it bumps the version on success and returns
//     ErrVersionConflict when the condition fails.
type IApplicationRepository interface {
	Create(ctx context.Context, app entities.Application) (entities.Application, error)
	GetByID(ctx context.Context, id string) (entities.Application, error)
	Save(ctx context.Context, app entities.Application) (entities.Application, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]entities.Application, error)
}
