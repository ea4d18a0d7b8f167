package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/usecase/interfaces"
)

const (
	defaultApplicationsTableName = "applications"
	applicationsApplicantIndex   = "applicant_id-index"
)

type statusHistoryItem struct {
	Status    string `dynamodbav:"status"`
	Timestamp string `dynamodbav:"timestamp"`
	Actor     string `dynamodbav:"actor"`
	Reason    string `dynamodbav:"reason,omitempty"`
}

type documentItem struct {
	ID                 string `dynamodbav:"id"`
	Type               string `dynamodbav:"type"`
	VerificationStatus string `dynamodbav:"verification_status"`
	UploadedBy         string `dynamodbav:"uploaded_by"`
	StorageRef         string `dynamodbav:"storage_ref"`
	Checksum           string `dynamodbav:"checksum,omitempty"`
	UploadedAt         string `dynamodbav:"uploaded_at"`
	ReviewNote         string `dynamodbav:"review_note,omitempty"`
}

type paymentItem struct {
	Amount          string `dynamodbav:"amount"`
	Currency        string `dynamodbav:"currency"`
	Status          string `dynamodbav:"status"`
	ReferenceNumber string `dynamodbav:"reference_number"`
	QRPayload       string `dynamodbav:"qr_payload,omitempty"`
	SlipRef         string `dynamodbav:"slip_ref,omitempty"`
	Note            string `dynamodbav:"note,omitempty"`
}

type consentItem struct {
	AcceptedBy    string `dynamodbav:"accepted_by"`
	AcceptedAt    string `dynamodbav:"accepted_at"`
	PolicyVersion string `dynamodbav:"policy_version,omitempty"`
}

type applicationItem struct {
	ID                string              `dynamodbav:"id"`
	ApplicationNumber string              `dynamodbav:"application_number"`
	ApplicantID       string              `dynamodbav:"applicant_id"`
	Category          string              `dynamodbav:"category"`
	Status            string              `dynamodbav:"status"`
	StatusHistory     []statusHistoryItem `dynamodbav:"status_history"`
	SubmissionCount   int                 `dynamodbav:"submission_count"`
	Documents         []documentItem      `dynamodbav:"documents,omitempty"`
	Payment           *paymentItem        `dynamodbav:"payment,omitempty"`
	Consent           *consentItem        `dynamodbav:"consent,omitempty"`
	Version           int64               `dynamodbav:"version"`
	CreatedAt         string              `dynamodbav:"created_at"`
	UpdatedAt         string              `dynamodbav:"updated_at"`
}

// ApplicationDynamoRepository persists Application aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: applicant_id-index (PK: applicant_id)
//
// The version attribute carries the compare-and-swap condition: every Save
// is conditional on the version the caller read, so a stale transition is
// rejected instead of overwriting a newer one. History/document appends
// and counter increments ride the same conditional write.

type ApplicationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IApplicationRepository = (*ApplicationDynamoRepository)(nil)

func NewApplicationDynamoRepository(ddb *dynamodb.Client) *ApplicationDynamoRepository {
	return &ApplicationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APPLICATIONS_TABLE", defaultApplicationsTableName),
	}
}

func (r *ApplicationDynamoRepository) Create(ctx context.Context, app entities.Application) (entities.Application, error) {
	app.Version = 1
	av, err := attributevalue.MarshalMap(toApplicationItem(app))
	if err != nil {
		return entities.Application{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Application{}, err
	}
	return app, nil
}

func (r *ApplicationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Application, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Application{}, err
	}
	if len(out.Item) == 0 {
		return entities.Application{}, nil
	}

	var it applicationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Application{}, err
	}
	return fromApplicationItem(it), nil
}

func (r *ApplicationDynamoRepository) Save(ctx context.Context, app entities.Application) (entities.Application, error) {
	expected := app.Version
	app.Version = expected + 1
	av, err := attributevalue.MarshalMap(toApplicationItem(app))
	if err != nil {
		return entities.Application{}, err
	}
	if err := putVersioned(ctx, r.ddb, r.tableName, av, expected); err != nil {
		return entities.Application{}, err
	}
	return app, nil
}

func (r *ApplicationDynamoRepository) ListByApplicant(ctx context.Context, applicantID string) ([]entities.Application, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(applicationsApplicantIndex),
		KeyConditionExpression: aws.String("applicant_id = :aid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid": &types.AttributeValueMemberS{Value: applicantID},
		},
	})
	if err != nil {
		return nil, err
	}

	apps := make([]entities.Application, 0, len(out.Items))
	for _, raw := range out.Items {
		var it applicationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		apps = append(apps, fromApplicationItem(it))
	}
	return apps, nil
}

func toApplicationItem(app entities.Application) applicationItem {
	history := make([]statusHistoryItem, len(app.StatusHistory))
	for i, h := range app.StatusHistory {
		history[i] = statusHistoryItem{
			Status:    string(h.Status),
			Timestamp: timeToString(h.Timestamp),
			Actor:     h.Actor,
			Reason:    h.Reason,
		}
	}

	docs := make([]documentItem, len(app.Documents))
	for i, d := range app.Documents {
		docs[i] = documentItem{
			ID:                 d.ID,
			Type:               string(d.Type),
			VerificationStatus: string(d.VerificationStatus),
			UploadedBy:         d.UploadedBy,
			StorageRef:         d.StorageRef,
			Checksum:           d.Checksum,
			UploadedAt:         timeToString(d.UploadedAt),
			ReviewNote:         d.ReviewNote,
		}
	}

	it := applicationItem{
		ID:                app.ID,
		ApplicationNumber: app.ApplicationNumber,
		ApplicantID:       app.ApplicantID,
		Category:          string(app.Category),
		Status:            string(app.Status),
		StatusHistory:     history,
		SubmissionCount:   app.SubmissionCount,
		Documents:         docs,
		Version:           app.Version,
		CreatedAt:         timeToString(app.CreatedAt),
		UpdatedAt:         timeToString(app.UpdatedAt),
	}
	if app.Payment != nil {
		it.Payment = &paymentItem{
			Amount:          floatToString(app.Payment.Amount),
			Currency:        app.Payment.Currency,
			Status:          string(app.Payment.Status),
			ReferenceNumber: app.Payment.ReferenceNumber,
			QRPayload:       app.Payment.QRPayload,
			SlipRef:         app.Payment.SlipRef,
			Note:            app.Payment.Note,
		}
	}
	if app.Consent != nil {
		it.Consent = &consentItem{
			AcceptedBy:    app.Consent.AcceptedBy,
			AcceptedAt:    timeToString(app.Consent.AcceptedAt),
			PolicyVersion: app.Consent.PolicyVersion,
		}
	}
	return it
}

func fromApplicationItem(it applicationItem) entities.Application {
	history := make([]entities.StatusHistoryEntry, len(it.StatusHistory))
	for i, h := range it.StatusHistory {
		history[i] = entities.StatusHistoryEntry{
			Status:    entities.ApplicationStatus(h.Status),
			Timestamp: stringToTime(h.Timestamp),
			Actor:     h.Actor,
			Reason:    h.Reason,
		}
	}

	docs := make([]entities.Document, len(it.Documents))
	for i, d := range it.Documents {
		docs[i] = entities.Document{
			ID:                 d.ID,
			Type:               entities.DocumentType(d.Type),
			VerificationStatus: entities.DocumentStatus(d.VerificationStatus),
			UploadedBy:         d.UploadedBy,
			StorageRef:         d.StorageRef,
			Checksum:           d.Checksum,
			UploadedAt:         stringToTime(d.UploadedAt),
			ReviewNote:         d.ReviewNote,
		}
	}

	app := entities.Application{
		ID:                it.ID,
		ApplicationNumber: it.ApplicationNumber,
		ApplicantID:       it.ApplicantID,
		Category:          entities.ApplicantCategory(it.Category),
		Status:            entities.ApplicationStatus(it.Status),
		StatusHistory:     history,
		SubmissionCount:   it.SubmissionCount,
		Documents:         docs,
		Version:           it.Version,
		CreatedAt:         stringToTime(it.CreatedAt),
		UpdatedAt:         stringToTime(it.UpdatedAt),
	}
	if it.Payment != nil {
		amount := 0.0
		if it.Payment.Amount != "" {
			amount = parseFloat(it.Payment.Amount)
		}
		app.Payment = &entities.Payment{
			Amount:          amount,
			Currency:        it.Payment.Currency,
			Status:          entities.PaymentStatus(it.Payment.Status),
			ReferenceNumber: it.Payment.ReferenceNumber,
			QRPayload:       it.Payment.QRPayload,
			SlipRef:         it.Payment.SlipRef,
			Note:            it.Payment.Note,
		}
	}
	if it.Consent != nil {
		app.Consent = &entities.Consent{
			AcceptedBy:    it.Consent.AcceptedBy,
			AcceptedAt:    stringToTime(it.Consent.AcceptedAt),
			PolicyVersion: it.Consent.PolicyVersion,
		}
	}
	return app
}
