package repository

import (
	"context"
	"errors"
	"time"

	"inhouse/internal/domain/entities"
	"inhouse/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDaysTableName = "days"

type dayItem struct {
	ID     string `dynamodbav:"id"`
	UserID string `dynamodbav:"user_id"`
	Date   string `dynamodbav:"date"`
	Locked bool   `dynamodbav:"locked"`
	auditItem
}

// DayDynamoRepository persists Day entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string), "<user_id>#<YYYY-MM-DD>"
//
// Deriving the id from user and date makes the conditional put enough to
// keep one day per user and date.

type DayDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IDayRepository = (*DayDynamoRepository)(nil)

func NewDayDynamoRepository(ddb DynamoAPI) *DayDynamoRepository {
	return &DayDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DAYS_TABLE", defaultDaysTableName),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// GetOrCreate stores d unless the day already exists and returns the
// stored day.
func (r *DayDynamoRepository) GetOrCreate(ctx context.Context, d entities.Day) (entities.Day, error) {
	if d.Created.IsZero() {
		d.Touch(d.UserID, r.now())
	}
	created, err := putNew(ctx, r.ddb, r.tableName, "id", toDayItem(d))
	if err != nil {
		return entities.Day{}, err
	}
	if created {
		return d, nil
	}
	return r.GetByID(ctx, d.ID)
}

func (r *DayDynamoRepository) GetByID(ctx context.Context, id string) (entities.Day, error) {
	it, found, err := getItem[dayItem](ctx, r.ddb, r.tableName, stringKey("id", id))
	if err != nil || !found {
		return entities.Day{}, err
	}
	return fromDayItem(it), nil
}

func (r *DayDynamoRepository) Lock(ctx context.Context, id string, actor string) (entities.Day, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("id", id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #locked = :locked, #modified = :modified, #modified_by = :modified_by"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#locked":      "locked",
			"#modified":    "modified",
			"#modified_by": "modified_by",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":locked":      &types.AttributeValueMemberBOOL{Value: true},
			":modified":    &types.AttributeValueMemberS{Value: formatTime(r.now())},
			":modified_by": &types.AttributeValueMemberS{Value: actor},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Day{}, nil
		}
		return entities.Day{}, err
	}
	var it dayItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Day{}, err
	}
	return fromDayItem(it), nil
}

func toDayItem(d entities.Day) dayItem {
	return dayItem{
		ID:        d.ID,
		UserID:    d.UserID,
		Date:      formatDate(d.Date),
		Locked:    d.Locked,
		auditItem: toAuditItem(d.Audit),
	}
}

func fromDayItem(it dayItem) entities.Day {
	return entities.Day{
		ID:     it.ID,
		UserID: it.UserID,
		Date:   parseDate(it.Date),
		Locked: it.Locked,
		Audit:  fromAuditItem(it.auditItem),
	}
}
