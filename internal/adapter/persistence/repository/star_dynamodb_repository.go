package repository

import (
	"context"

	"inhouse/internal/domain/entities"
	"inhouse/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultStarsTableName = "stars"

type starItem struct {
	Owner    string `dynamodbav:"owner"`
	ObjectID string `dynamodbav:"object_id"`
	UserID   string `dynamodbav:"user_id"`
	Kind     string `dynamodbav:"kind"`
	Created  string `dynamodbav:"created"`
}

// StarDynamoRepository stores starred items.
//
// Table requirements:
//   - PK: owner (string), "<user_id>#<kind>"
//   - SK: object_id (string)

type StarDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IStarRepository = (*StarDynamoRepository)(nil)

func NewStarDynamoRepository(ddb DynamoAPI) *StarDynamoRepository {
	return &StarDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STARS_TABLE", defaultStarsTableName),
	}
}

func starOwner(userID string, kind entities.StarKind) string {
	return userID + "#" + string(kind)
}

func starKey(userID string, kind entities.StarKind, objectID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"owner":     &types.AttributeValueMemberS{Value: starOwner(userID, kind)},
		"object_id": &types.AttributeValueMemberS{Value: objectID},
	}
}

// Add keeps the first star of an object; starring again is a no-op.
func (r *StarDynamoRepository) Add(ctx context.Context, item entities.StarredItem) error {
	_, err := putNew(ctx, r.ddb, r.tableName, "owner", starItem{
		Owner:    starOwner(item.UserID, item.Kind),
		ObjectID: item.ObjectID,
		UserID:   item.UserID,
		Kind:     string(item.Kind),
		Created:  formatTime(item.Created),
	})
	return err
}

func (r *StarDynamoRepository) Remove(ctx context.Context, userID string, kind entities.StarKind, objectID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       starKey(userID, kind, objectID),
	})
	return err
}

func (r *StarDynamoRepository) Exists(ctx context.Context, userID string, kind entities.StarKind, objectID string) (bool, error) {
	_, found, err := getItem[starItem](ctx, r.ddb, r.tableName, starKey(userID, kind, objectID))
	return found, err
}

func (r *StarDynamoRepository) List(ctx context.Context, userID string, kind entities.StarKind) ([]entities.StarredItem, error) {
	items, err := queryAll[starItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#owner = :owner"),
		ExpressionAttributeNames: map[string]string{
			"#owner": "owner",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: starOwner(userID, kind)},
		},
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.StarredItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.StarredItem{
			Kind:     entities.StarKind(it.Kind),
			ObjectID: it.ObjectID,
			UserID:   it.UserID,
			Created:  parseTime(it.Created),
		})
	}
	return out, nil
}
