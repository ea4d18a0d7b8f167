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
	defaultWorkItemsTableName = "work_items"
	workItemsAssigneeIndex    = "assignee_id-index"
)

type workItemItem struct {
	ID           string `dynamodbav:"id"`
	Kind         string `dynamodbav:"kind"`
	AssigneeID   string `dynamodbav:"assignee_id"`
	AssigneeRole string `dynamodbav:"assignee_role"`
	RefID        string `dynamodbav:"ref_id,omitempty"`
	DueAt        string `dynamodbav:"due_at"`
	Status       string `dynamodbav:"status"`
	CompletedAt  string `dynamodbav:"completed_at,omitempty"`
	Version      int64  `dynamodbav:"version"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// WorkItemDynamoRepository persists SLA-tracked work items in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: assignee_id-index (PK: assignee_id)

type WorkItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkItemRepository = (*WorkItemDynamoRepository)(nil)

func NewWorkItemDynamoRepository(ddb *dynamodb.Client) *WorkItemDynamoRepository {
	return &WorkItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORK_ITEMS_TABLE", defaultWorkItemsTableName),
	}
}

func (r *WorkItemDynamoRepository) Create(ctx context.Context, item entities.WorkItem) (entities.WorkItem, error) {
	item.Version = 1
	av, err := attributevalue.MarshalMap(toWorkItemItem(item))
	if err != nil {
		return entities.WorkItem{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.WorkItem{}, err
	}
	return item, nil
}

func (r *WorkItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkItem{}, nil
	}

	var it workItemItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkItem{}, err
	}
	return fromWorkItemItem(it), nil
}

func (r *WorkItemDynamoRepository) Save(ctx context.Context, item entities.WorkItem) (entities.WorkItem, error) {
	expected := item.Version
	item.Version = expected + 1
	av, err := attributevalue.MarshalMap(toWorkItemItem(item))
	if err != nil {
		return entities.WorkItem{}, err
	}
	if err := putVersioned(ctx, r.ddb, r.tableName, av, expected); err != nil {
		return entities.WorkItem{}, err
	}
	return item, nil
}

func (r *WorkItemDynamoRepository) ListByAssignee(ctx context.Context, assigneeID string) ([]entities.WorkItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(workItemsAssigneeIndex),
		KeyConditionExpression: aws.String("assignee_id = :aid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid": &types.AttributeValueMemberS{Value: assigneeID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalWorkItems(out.Items)
}

// ListDueBetween scans for items whose due timestamps fall in [from, to).
// The stats rollup is a low-volume read; a filtered scan is adequate.
func (r *WorkItemDynamoRepository) ListDueBetween(ctx context.Context, from, to time.Time) ([]entities.WorkItem, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("due_at >= :from AND due_at < :to"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: timeToString(from)},
			":to":   &types.AttributeValueMemberS{Value: timeToString(to)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalWorkItems(out.Items)
}

func unmarshalWorkItems(raw []map[string]types.AttributeValue) ([]entities.WorkItem, error) {
	items := make([]entities.WorkItem, 0, len(raw))
	for _, rawItem := range raw {
		var it workItemItem
		if err := attributevalue.UnmarshalMap(rawItem, &it); err != nil {
			return nil, err
		}
		items = append(items, fromWorkItemItem(it))
	}
	return items, nil
}

func toWorkItemItem(item entities.WorkItem) workItemItem {
	return workItemItem{
		ID:           item.ID,
		Kind:         string(item.Kind),
		AssigneeID:   item.AssigneeID,
		AssigneeRole: string(item.AssigneeRole),
		RefID:        item.RefID,
		DueAt:        timeToString(item.DueAt),
		Status:       string(item.Status),
		CompletedAt:  timePtrToString(item.CompletedAt),
		Version:      item.Version,
		CreatedAt:    timeToString(item.CreatedAt),
		UpdatedAt:    timeToString(item.UpdatedAt),
	}
}

func fromWorkItemItem(it workItemItem) entities.WorkItem {
	return entities.WorkItem{
		ID:           it.ID,
		Kind:         entities.WorkItemKind(it.Kind),
		AssigneeID:   it.AssigneeID,
		AssigneeRole: entities.Role(it.AssigneeRole),
		RefID:        it.RefID,
		DueAt:        stringToTime(it.DueAt),
		Status:       entities.WorkItemStatus(it.Status),
		CompletedAt:  stringToTimePtr(it.CompletedAt),
		Version:      it.Version,
		CreatedAt:    stringToTime(it.CreatedAt),
		UpdatedAt:    stringToTime(it.UpdatedAt),
	}
}
