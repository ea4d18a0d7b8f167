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
	defaultCalendarEventsTableName = "calendar_events"
	calendarEventsOrganizerIndex   = "organizer_id-index"
)

type attendeeItem struct {
	UserID string `dynamodbav:"user_id"`
	RSVP   string `dynamodbav:"rsvp"`
}

type recurrenceItem struct {
	Frequency string `dynamodbav:"frequency"`
	Interval  int    `dynamodbav:"interval"`
	Until     string `dynamodbav:"until,omitempty"`
	Count     int    `dynamodbav:"count,omitempty"`
}

type calendarEventItem struct {
	ID          string          `dynamodbav:"id"`
	Title       string          `dynamodbav:"title"`
	OrganizerID string          `dynamodbav:"organizer_id"`
	Attendees   []attendeeItem  `dynamodbav:"attendees,omitempty"`
	Start       string          `dynamodbav:"start"`
	End         string          `dynamodbav:"end"`
	Recurrence  *recurrenceItem `dynamodbav:"recurrence,omitempty"`
	Version     int64           `dynamodbav:"version"`
	CreatedAt   string          `dynamodbav:"created_at"`
	UpdatedAt   string          `dynamodbav:"updated_at"`
}

// CalendarEventDynamoRepository persists CalendarEvent records in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: organizer_id-index (PK: organizer_id)

type CalendarEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICalendarEventRepository = (*CalendarEventDynamoRepository)(nil)

func NewCalendarEventDynamoRepository(ddb *dynamodb.Client) *CalendarEventDynamoRepository {
	return &CalendarEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CALENDAR_EVENTS_TABLE", defaultCalendarEventsTableName),
	}
}

func (r *CalendarEventDynamoRepository) Create(ctx context.Context, event entities.CalendarEvent) (entities.CalendarEvent, error) {
	event.Version = 1
	av, err := attributevalue.MarshalMap(toCalendarEventItem(event))
	if err != nil {
		return entities.CalendarEvent{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.CalendarEvent{}, err
	}
	return event, nil
}

func (r *CalendarEventDynamoRepository) GetByID(ctx context.Context, id string) (entities.CalendarEvent, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CalendarEvent{}, err
	}
	if len(out.Item) == 0 {
		return entities.CalendarEvent{}, nil
	}

	var it calendarEventItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CalendarEvent{}, err
	}
	return fromCalendarEventItem(it), nil
}

func (r *CalendarEventDynamoRepository) Save(ctx context.Context, event entities.CalendarEvent) (entities.CalendarEvent, error) {
	expected := event.Version
	event.Version = expected + 1
	av, err := attributevalue.MarshalMap(toCalendarEventItem(event))
	if err != nil {
		return entities.CalendarEvent{}, err
	}
	if err := putVersioned(ctx, r.ddb, r.tableName, av, expected); err != nil {
		return entities.CalendarEvent{}, err
	}
	return event, nil
}

func (r *CalendarEventDynamoRepository) ListByOrganizer(ctx context.Context, organizerID string) ([]entities.CalendarEvent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(calendarEventsOrganizerIndex),
		KeyConditionExpression: aws.String("organizer_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: organizerID},
		},
	})
	if err != nil {
		return nil, err
	}

	events := make([]entities.CalendarEvent, 0, len(out.Items))
	for _, raw := range out.Items {
		var it calendarEventItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		events = append(events, fromCalendarEventItem(it))
	}
	return events, nil
}

func toCalendarEventItem(event entities.CalendarEvent) calendarEventItem {
	attendees := make([]attendeeItem, len(event.Attendees))
	for i, a := range event.Attendees {
		attendees[i] = attendeeItem{UserID: a.UserID, RSVP: string(a.RSVP)}
	}

	it := calendarEventItem{
		ID:          event.ID,
		Title:       event.Title,
		OrganizerID: event.OrganizerID,
		Attendees:   attendees,
		Start:       timeToString(event.Start),
		End:         timeToString(event.End),
		Version:     event.Version,
		CreatedAt:   timeToString(event.CreatedAt),
		UpdatedAt:   timeToString(event.UpdatedAt),
	}
	if event.Recurrence != nil {
		it.Recurrence = &recurrenceItem{
			Frequency: string(event.Recurrence.Frequency),
			Interval:  event.Recurrence.Interval,
			Until:     timePtrToString(event.Recurrence.Until),
			Count:     event.Recurrence.Count,
		}
	}
	return it
}

func fromCalendarEventItem(it calendarEventItem) entities.CalendarEvent {
	attendees := make([]entities.Attendee, len(it.Attendees))
	for i, a := range it.Attendees {
		attendees[i] = entities.Attendee{UserID: a.UserID, RSVP: entities.RSVPStatus(a.RSVP)}
	}

	event := entities.CalendarEvent{
		ID:          it.ID,
		Title:       it.Title,
		OrganizerID: it.OrganizerID,
		Attendees:   attendees,
		Start:       stringToTime(it.Start),
		End:         stringToTime(it.End),
		Version:     it.Version,
		CreatedAt:   stringToTime(it.CreatedAt),
		UpdatedAt:   stringToTime(it.UpdatedAt),
	}
	if it.Recurrence != nil {
		event.Recurrence = &entities.RecurrenceRule{
			Frequency: entities.RecurrenceFrequency(it.Recurrence.Frequency),
			Interval:  it.Recurrence.Interval,
			Until:     stringToTimePtr(it.Recurrence.Until),
			Count:     it.Recurrence.Count,
		}
	}
	return event
}
