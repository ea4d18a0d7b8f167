package interfaces

import (
	"context"
	"time"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
)

// ICertificateRepository abstracts DynamoDB persistence for Certificate.
type ICertificateRepository interface {
	Create(ctx context.Context, cert entities.Certificate) (entities.Certificate, error)
	GetByID(ctx context.Context, id string) (entities.Certificate, error)
	GetByNumber(ctx context.Context, certificateNumber string) (entities.Certificate, error)
	ListByApplicationID(ctx context.Context, applicationID string) ([]entities.Certificate, error)
	Save(ctx context.Context, cert entities.Certificate) (entities.Certificate, error)
	ListActiveExpiringBefore(ctx context.Context, before time.Time) ([]entities.Certificate, error)
}
