package repository

import (
	"context"
	"strconv"

	"inhouse/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPositionsTableName = "positions"

type positionItem struct {
	Scope    string `dynamodbav:"scope"`
	Position int    `dynamodbav:"position"`
	OwnerID  string `dynamodbav:"owner_id"`
}

// PositionDynamoRepository keeps one claim item per handed out position.
//
// Table requirements:
//   - PK: scope (string)
//   - SK: position (number)
//
// Claims are written in the same transaction as the record that owns the
// position, so a (scope, position) pair can only be taken once.

type PositionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPositionRepository = (*PositionDynamoRepository)(nil)

func NewPositionDynamoRepository(ddb DynamoAPI) *PositionDynamoRepository {
	return &PositionDynamoRepository{
		ddb:       ddb,
		tableName: positionsTableName(),
	}
}

func positionsTableName() string {
	return getenvDefault("POSITIONS_TABLE", defaultPositionsTableName)
}

func (r *PositionDynamoRepository) MaxPosition(ctx context.Context, scope string) (int, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#scope = :scope"),
		ExpressionAttributeNames: map[string]string{
			"#scope": "scope",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":scope": &types.AttributeValueMemberS{Value: scope},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
		ConsistentRead:   aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	if len(out.Items) == 0 {
		return 0, nil
	}
	n, ok := out.Items[0]["position"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, nil
	}
	return strconv.Atoi(n.Value)
}

func (r *PositionDynamoRepository) ListClaims(ctx context.Context, scope string) ([]int, error) {
	items, err := queryAll[positionItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#scope = :scope"),
		ExpressionAttributeNames: map[string]string{
			"#scope": "scope",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":scope": &types.AttributeValueMemberS{Value: scope},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(items))
	for _, it := range items {
		out = append(out, it.Position)
	}
	return out, nil
}

// claimPosition builds the transactional put that reserves position in
// scope for ownerID.
func claimPosition(scope string, position int, ownerID string) (types.TransactWriteItem, error) {
	return newPut(positionsTableName(), "scope", positionItem{Scope: scope, Position: position, OwnerID: ownerID})
}

// createWithClaim writes item and its position claim atomically. A failed
// claim is reported as ErrPositionTaken and an existing item as
// ErrAlreadyExists.
func createWithClaim(ctx context.Context, ddb DynamoAPI, table, pk string, item any, scope string, position int, ownerID string) error {
	put, err := newPut(table, pk, item)
	if err != nil {
		return err
	}
	claim, err := claimPosition(scope, position, ownerID)
	if err != nil {
		return err
	}

	_, err = ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{put, claim},
	})
	if err == nil {
		return nil
	}
	failed, ok := canceledAt(err)
	if !ok {
		return err
	}
	for _, i := range failed {
		if i == 1 {
			return interfaces.ErrPositionTaken
		}
	}
	if len(failed) > 0 {
		return interfaces.ErrAlreadyExists
	}
	return err
}
