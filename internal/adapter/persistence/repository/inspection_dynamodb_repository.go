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
	defaultInspectionsTableName = "inspections"
	inspectionsInspectorIndex   = "inspector_id-index"
	inspectionsApplicationIndex = "application_id-index"
)

type inspectionItem struct {
	ID              string  `dynamodbav:"id"`
	ApplicationID   string  `dynamodbav:"application_id"`
	InspectorID     string  `dynamodbav:"inspector_id"`
	WindowStart     string  `dynamodbav:"window_start"`
	WindowEnd       string  `dynamodbav:"window_end"`
	Status          string  `dynamodbav:"status"`
	ComplianceScore *string `dynamodbav:"compliance_score,omitempty"`
	RescheduleCount int     `dynamodbav:"reschedule_count"`
	Version         int64   `dynamodbav:"version"`
	CreatedAt       string  `dynamodbav:"created_at"`
	UpdatedAt       string  `dynamodbav:"updated_at"`
}

// InspectionDynamoRepository persists Inspection bookings in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: inspector_id-index (PK: inspector_id, SK: window_start)
//   - GSI: application_id-index (PK: application_id)
//
// window_start is stored as fixed-width RFC3339 UTC so the GSI sort key
// orders chronologically.

type InspectionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInspectionRepository = (*InspectionDynamoRepository)(nil)

func NewInspectionDynamoRepository(ddb *dynamodb.Client) *InspectionDynamoRepository {
	return &InspectionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INSPECTIONS_TABLE", defaultInspectionsTableName),
	}
}

func (r *InspectionDynamoRepository) Create(ctx context.Context, booking entities.Inspection) (entities.Inspection, error) {
	booking.Version = 1
	av, err := attributevalue.MarshalMap(toInspectionItem(booking))
	if err != nil {
		return entities.Inspection{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Inspection{}, err
	}
	return booking, nil
}

func (r *InspectionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Inspection, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Inspection{}, err
	}
	if len(out.Item) == 0 {
		return entities.Inspection{}, nil
	}

	var it inspectionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Inspection{}, err
	}
	return fromInspectionItem(it), nil
}

func (r *InspectionDynamoRepository) Save(ctx context.Context, booking entities.Inspection) (entities.Inspection, error) {
	expected := booking.Version
	booking.Version = expected + 1
	av, err := attributevalue.MarshalMap(toInspectionItem(booking))
	if err != nil {
		return entities.Inspection{}, err
	}
	if err := putVersioned(ctx, r.ddb, r.tableName, av, expected); err != nil {
		return entities.Inspection{}, err
	}
	return booking, nil
}

func (r *InspectionDynamoRepository) ListByInspectorBetween(ctx context.Context, inspectorID string, from, to time.Time) ([]entities.Inspection, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(inspectionsInspectorIndex),
		KeyConditionExpression: aws.String("inspector_id = :iid AND window_start BETWEEN :from AND :to"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid":  &types.AttributeValueMemberS{Value: inspectorID},
			":from": &types.AttributeValueMemberS{Value: timeToString(from)},
			":to":   &types.AttributeValueMemberS{Value: timeToString(to)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalInspections(out.Items)
}

func (r *InspectionDynamoRepository) ListByApplicationID(ctx context.Context, applicationID string) ([]entities.Inspection, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(inspectionsApplicationIndex),
		KeyConditionExpression: aws.String("application_id = :aid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid": &types.AttributeValueMemberS{Value: applicationID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalInspections(out.Items)
}

func unmarshalInspections(raw []map[string]types.AttributeValue) ([]entities.Inspection, error) {
	bookings := make([]entities.Inspection, 0, len(raw))
	for _, item := range raw {
		var it inspectionItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		bookings = append(bookings, fromInspectionItem(it))
	}
	return bookings, nil
}

func toInspectionItem(booking entities.Inspection) inspectionItem {
	it := inspectionItem{
		ID:              booking.ID,
		ApplicationID:   booking.ApplicationID,
		InspectorID:     booking.InspectorID,
		WindowStart:     timeToString(booking.WindowStart),
		WindowEnd:       timeToString(booking.WindowEnd),
		Status:          string(booking.Status),
		RescheduleCount: booking.RescheduleCount,
		Version:         booking.Version,
		CreatedAt:       timeToString(booking.CreatedAt),
		UpdatedAt:       timeToString(booking.UpdatedAt),
	}
	if booking.ComplianceScore != nil {
		s := floatToString(*booking.ComplianceScore)
		it.ComplianceScore = &s
	}
	return it
}

func fromInspectionItem(it inspectionItem) entities.Inspection {
	booking := entities.Inspection{
		ID:              it.ID,
		ApplicationID:   it.ApplicationID,
		InspectorID:     it.InspectorID,
		WindowStart:     stringToTime(it.WindowStart),
		WindowEnd:       stringToTime(it.WindowEnd),
		Status:          entities.InspectionStatus(it.Status),
		RescheduleCount: it.RescheduleCount,
		Version:         it.Version,
		CreatedAt:       stringToTime(it.CreatedAt),
		UpdatedAt:       stringToTime(it.UpdatedAt),
	}
	if it.ComplianceScore != nil {
		score := parseFloat(*it.ComplianceScore)
		booking.ComplianceScore = &score
	}
	return booking
}
