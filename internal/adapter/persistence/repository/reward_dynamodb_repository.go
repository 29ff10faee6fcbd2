package repository

import (
	"context"

	"waste_pickup/internal/domain/entities"
	"waste_pickup/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRewardsTableName = "rewards"
	rewardsUserIDIndex      = "user_id-index"
)

type rewardItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	RequestID string `dynamodbav:"request_id"`
	Points    int    `dynamodbav:"points"`
	Reason    string `dynamodbav:"reason"`
	CreatedAt string `dynamodbav:"created_at"`
}

// RewardDynamoRepository stores reward grants. Grants are immutable.
//
// Table requirements:
//   - PK: id (string)
//   - GSI user_id-index (PK: user_id, SK: created_at)
type RewardDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRewardRepository = (*RewardDynamoRepository)(nil)

func NewRewardDynamoRepository(ddb *dynamodb.Client) *RewardDynamoRepository {
	return &RewardDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REWARDS_TABLE", defaultRewardsTableName),
	}
}

func (r *RewardDynamoRepository) Grant(ctx context.Context, reward entities.Reward) (entities.Reward, error) {
	av, err := attributevalue.MarshalMap(rewardItem{
		ID:        reward.ID,
		UserID:    reward.UserID,
		RequestID: reward.RequestID,
		Points:    reward.Points,
		Reason:    reward.Reason,
		CreatedAt: formatTime(reward.CreatedAt),
	})
	if err != nil {
		return entities.Reward{}, err
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
		if _, ok := conditionFailed(err); ok {
			return entities.Reward{}, interfaces.ErrRewardExists
		}
		return entities.Reward{}, err
	}
	return reward, nil
}

func (r *RewardDynamoRepository) TotalPoints(ctx context.Context, userID string) (int, error) {
	rewards, err := r.query(ctx, userID, 0)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, rw := range rewards {
		total += rw.Points
	}
	return total, nil
}

func (r *RewardDynamoRepository) ListRecent(ctx context.Context, userID string, limit int) ([]entities.Reward, error) {
	return r.query(ctx, userID, limit)
}

// query walks the user's grants newest first; limit <= 0 reads everything.
func (r *RewardDynamoRepository) query(ctx context.Context, userID string, limit int) ([]entities.Reward, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(rewardsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
	}
	if limit > 0 {
		input.Limit = aws.Int32(int32(limit))
	}

	out := []entities.Reward{}
	paginator := dynamodb.NewQueryPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []rewardItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, entities.Reward{
				ID:        it.ID,
				UserID:    it.UserID,
				RequestID: it.RequestID,
				Points:    it.Points,
				Reason:    it.Reason,
				CreatedAt: parseTime(it.CreatedAt),
			})
		}
		if limit > 0 && len(out) >= limit {
			return out[:limit], nil
		}
	}
	return out, nil
}
