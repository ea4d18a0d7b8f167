package repository

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/usecase/interfaces"
)

const (
	defaultCertificatesTableName = "certificates"
	certificatesApplicationIndex = "application_id-index"
	certificatesNumberIndex      = "certificate_number-index"
)

type suspensionItem struct {
	SuspendedAt string `dynamodbav:"suspended_at"`
	SuspendedBy string `dynamodbav:"suspended_by"`
	Reason      string `dynamodbav:"reason"`
	LiftedAt    string `dynamodbav:"lifted_at,omitempty"`
	LiftedBy    string `dynamodbav:"lifted_by,omitempty"`
}

type revocationItem struct {
	RevokedAt      string `dynamodbav:"revoked_at"`
	RevokedBy      string `dynamodbav:"revoked_by"`
	Reason         string `dynamodbav:"reason"`
	AppealDeadline string `dynamodbav:"appeal_deadline"`
}

type certificateItem struct {
	ID                string           `dynamodbav:"id"`
	CertificateNumber string           `dynamodbav:"certificate_number"`
	ApplicationID     string           `dynamodbav:"application_id"`
	HolderID          string           `dynamodbav:"holder_id"`
	Status            string           `dynamodbav:"status"`
	IssuedAt          string           `dynamodbav:"issued_at"`
	ExpiresAt         string           `dynamodbav:"expires_at"`
	SuspensionHistory []suspensionItem `dynamodbav:"suspension_history,omitempty"`
	Revocation        *revocationItem  `dynamodbav:"revocation,omitempty"`
	RenewedBy         string           `dynamodbav:"renewed_by,omitempty"`
	Version           int64            `dynamodbav:"version"`
	CreatedAt         string           `dynamodbav:"created_at"`
	UpdatedAt         string           `dynamodbav:"updated_at"`
}

// CertificateDynamoRepository persists Certificate aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: application_id-index (PK: application_id)
//   - GSI: certificate_number-index (PK: certificate_number)

type CertificateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICertificateRepository = (*CertificateDynamoRepository)(nil)

func NewCertificateDynamoRepository(ddb *dynamodb.Client) *CertificateDynamoRepository {
	return &CertificateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CERTIFICATES_TABLE", defaultCertificatesTableName),
	}
}

func (r *CertificateDynamoRepository) Create(ctx context.Context, cert entities.Certificate) (entities.Certificate, error) {
	cert.Version = 1
	av, err := attributevalue.MarshalMap(toCertificateItem(cert))
	if err != nil {
		return entities.Certificate{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Certificate{}, err
	}
	return cert, nil
}

func (r *CertificateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Certificate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Certificate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Certificate{}, nil
	}

	var it certificateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Certificate{}, err
	}
	return fromCertificateItem(it), nil
}

func (r *CertificateDynamoRepository) GetByNumber(ctx context.Context, certificateNumber string) (entities.Certificate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(certificatesNumberIndex),
		KeyConditionExpression: aws.String("certificate_number = :num"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":num": &types.AttributeValueMemberS{Value: certificateNumber},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Certificate{}, err
	}
	if len(out.Items) == 0 {
		return entities.Certificate{}, nil
	}

	var it certificateItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Certificate{}, err
	}
	return fromCertificateItem(it), nil
}

func (r *CertificateDynamoRepository) ListByApplicationID(ctx context.Context, applicationID string) ([]entities.Certificate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(certificatesApplicationIndex),
		KeyConditionExpression: aws.String("application_id = :aid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid": &types.AttributeValueMemberS{Value: applicationID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalCertificates(out.Items)
}

func (r *CertificateDynamoRepository) Save(ctx context.Context, cert entities.Certificate) (entities.Certificate, error) {
	expected := cert.Version
	cert.Version = expected + 1
	av, err := attributevalue.MarshalMap(toCertificateItem(cert))
	if err != nil {
		return entities.Certificate{}, err
	}
	if err := putVersioned(ctx, r.ddb, r.tableName, av, expected); err != nil {
		return entities.Certificate{}, err
	}
	return cert, nil
}

// ListActiveExpiringBefore scans for active certificates expiring before
// the cutoff. Expiry reminders are a low-volume batch read; a scan with a
// filter is adequate here.
func (r *CertificateDynamoRepository) ListActiveExpiringBefore(ctx context.Context, before time.Time) ([]entities.Certificate, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#status = :active AND expires_at <= :before"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberS{Value: string(entities.CertificateStatusActive)},
			":before": &types.AttributeValueMemberS{Value: timeToString(before)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalCertificates(out.Items)
}

func unmarshalCertificates(raw []map[string]types.AttributeValue) ([]entities.Certificate, error) {
	certs := make([]entities.Certificate, 0, len(raw))
	for _, item := range raw {
		var it certificateItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		certs = append(certs, fromCertificateItem(it))
	}
	return certs, nil
}

func toCertificateItem(cert entities.Certificate) certificateItem {
	suspensions := make([]suspensionItem, len(cert.SuspensionHistory))
	for i, s := range cert.SuspensionHistory {
		suspensions[i] = suspensionItem{
			SuspendedAt: timeToString(s.SuspendedAt),
			SuspendedBy: s.SuspendedBy,
			Reason:      s.Reason,
			LiftedAt:    timePtrToString(s.LiftedAt),
			LiftedBy:    s.LiftedBy,
		}
	}

	it := certificateItem{
		ID:                cert.ID,
		CertificateNumber: cert.CertificateNumber,
		ApplicationID:     cert.ApplicationID,
		HolderID:          cert.HolderID,
		Status:            string(cert.Status),
		IssuedAt:          timeToString(cert.IssuedAt),
		ExpiresAt:         timeToString(cert.ExpiresAt),
		SuspensionHistory: suspensions,
		RenewedBy:         cert.RenewedBy,
		Version:           cert.Version,
		CreatedAt:         timeToString(cert.CreatedAt),
		UpdatedAt:         timeToString(cert.UpdatedAt),
	}
	if cert.Revocation != nil {
		it.Revocation = &revocationItem{
			RevokedAt:      timeToString(cert.Revocation.RevokedAt),
			RevokedBy:      cert.Revocation.RevokedBy,
			Reason:         cert.Revocation.Reason,
			AppealDeadline: timeToString(cert.Revocation.AppealDeadline),
		}
	}
	return it
}

func fromCertificateItem(it certificateItem) entities.Certificate {
	suspensions := make([]entities.SuspensionRecord, len(it.SuspensionHistory))
	for i, s := range it.SuspensionHistory {
		suspensions[i] = entities.SuspensionRecord{
			SuspendedAt: stringToTime(s.SuspendedAt),
			SuspendedBy: s.SuspendedBy,
			Reason:      s.Reason,
			LiftedAt:    stringToTimePtr(s.LiftedAt),
			LiftedBy:    s.LiftedBy,
		}
	}

	cert := entities.Certificate{
		ID:                it.ID,
		CertificateNumber: it.CertificateNumber,
		ApplicationID:     it.ApplicationID,
		HolderID:          it.HolderID,
		Status:            entities.CertificateStatus(it.Status),
		IssuedAt:          stringToTime(it.IssuedAt),
		ExpiresAt:         stringToTime(it.ExpiresAt),
		SuspensionHistory: suspensions,
		RenewedBy:         it.RenewedBy,
		Version:           it.Version,
		CreatedAt:         stringToTime(it.CreatedAt),
		UpdatedAt:         stringToTime(it.UpdatedAt),
	}
	if it.Revocation != nil {
		cert.Revocation = &entities.RevocationInfo{
			RevokedAt:      stringToTime(it.Revocation.RevokedAt),
			RevokedBy:      it.Revocation.RevokedBy,
			Reason:         it.Revocation.Reason,
			AppealDeadline: stringToTime(it.Revocation.AppealDeadline),
		}
	}
	return cert
}
