package repository

import (
	"context"
	"time"

	"waste_pickup/internal/domain/entities"
	"waste_pickup/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultNotificationsTableName = "notifications"
	notificationsStatusIndex      = "status-index"
	notificationsUserIDIndex      = "user_id-index"
)

type notificationItem struct {
	ID        string            `dynamodbav:"id"`
	UserID    string            `dynamodbav:"user_id"`
	Channel   string            `dynamodbav:"channel"`
	Title     string            `dynamodbav:"title"`
	Body      string            `dynamodbav:"body"`
	Meta      map[string]string `dynamodbav:"meta,omitempty"`
	Status    string            `dynamodbav:"status"`
	SentAt    string            `dynamodbav:"sent_at,omitempty"`
	CreatedAt string            `dynamodbav:"created_at"`
}

// NotificationDynamoRepository stores the notification queue.
//
// Table requirements:
//   - PK: id (string)
//   - GSI status-index (PK: status, SK: created_at)
//   - GSI user_id-index (PK: user_id, SK: created_at)
type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) Queue(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	av, err := attributevalue.MarshalMap(toNotificationItem(n))
	if err != nil {
		return entities.Notification{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Notification{}, err
	}
	return n, nil
}

// FindQueued returns the oldest queued notifications first.
func (r *NotificationDynamoRepository) FindQueued(ctx context.Context, limit int) ([]entities.Notification, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsStatusIndex),
		KeyConditionExpression: aws.String("#status = :queued"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":queued": &types.AttributeValueMemberS{Value: string(entities.NotificationStatusQueued)},
		},
		ScanIndexForward: aws.Bool(true),
	}, limit)
}

// MarkSent moves a queued notification to sent or failed. A notification that
// already left the queue is left untouched.
func (r *NotificationDynamoRepository) MarkSent(ctx context.Context, id string, success bool, at time.Time) error {
	status := entities.NotificationStatusFailed
	if success {
		status = entities.NotificationStatusSent
	}
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("#status = :queued"),
		UpdateExpression:    aws.String("SET #status = :status, #sent_at = :sent_at"),
		ExpressionAttributeNames: map[string]string{
			"#status":  "status",
			"#sent_at": "sent_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":queued":  &types.AttributeValueMemberS{Value: string(entities.NotificationStatusQueued)},
			":status":  &types.AttributeValueMemberS{Value: string(status)},
			":sent_at": &types.AttributeValueMemberS{Value: formatTime(at)},
		},
	})
	if _, ok := conditionFailed(err); ok {
		return nil
	}
	return err
}

func (r *NotificationDynamoRepository) ListByUser(ctx context.Context, userID string, limit int) ([]entities.Notification, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
	}, limit)
}

func (r *NotificationDynamoRepository) query(ctx context.Context, input *dynamodb.QueryInput, limit int) ([]entities.Notification, error) {
	if limit > 0 {
		input.Limit = aws.Int32(int32(limit))
	}
	out := []entities.Notification{}
	paginator := dynamodb.NewQueryPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []notificationItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromNotificationItem(it))
		}
		if limit > 0 && len(out) >= limit {
			return out[:limit], nil
		}
	}
	return out, nil
}

func toNotificationItem(n entities.Notification) notificationItem {
	it := notificationItem{
		ID:        n.ID,
		UserID:    n.UserID,
		Channel:   string(n.Channel),
		Title:     n.Title,
		Body:      n.Body,
		Meta:      n.Meta,
		Status:    string(n.Status),
		CreatedAt: formatTime(n.CreatedAt),
	}
	if n.SentAt != nil {
		it.SentAt = formatTime(*n.SentAt)
	}
	return it
}

func fromNotificationItem(it notificationItem) entities.Notification {
	n := entities.Notification{
		ID:        it.ID,
		UserID:    it.UserID,
		Channel:   entities.NotificationChannel(it.Channel),
		Title:     it.Title,
		Body:      it.Body,
		Meta:      it.Meta,
		Status:    entities.NotificationStatus(it.Status),
		CreatedAt: parseTime(it.CreatedAt),
	}
	if n.Meta == nil {
		n.Meta = map[string]string{}
	}
	if it.SentAt != "" {
		t := parseTime(it.SentAt)
		n.SentAt = &t
	}
	return n
}
