package repository

import (
	"context"
	"errors"
	"time"

	"inhouse/internal/domain/entities"
	"inhouse/internal/domain/timesheet"
	"inhouse/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBookingsTableName = "bookings"
	bookingsDayIDIndex       = "day_id-index"
	bookingsProjectIDIndex   = "project_id-index"
	bookingsInvoiceIDIndex   = "invoice_id-index"
)

type bookingItem struct {
	ID                  string `dynamodbav:"id"`
	DayID               string `dynamodbav:"day_id"`
	ProjectID           string `dynamodbav:"project_id"`
	StepID              string `dynamodbav:"step_id,omitempty"`
	InvoiceID           string `dynamodbav:"invoice_id,omitempty"`
	Title               string `dynamodbav:"title"`
	Description         string `dynamodbav:"description,omitempty"`
	Position            int    `dynamodbav:"position"`
	FromTime            string `dynamodbav:"from_time,omitempty"`
	ToTime              string `dynamodbav:"to_time,omitempty"`
	Location            string `dynamodbav:"location,omitempty"`
	Duration            string `dynamodbav:"duration"`
	Coefficient         string `dynamodbav:"coefficient,omitempty"`
	ExternalCoefficient string `dynamodbav:"external_coefficient,omitempty"`
	auditItem
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: day_id-index (PK: day_id, SK: position)
//   - GSI: project_id-index (PK: project_id)
//   - GSI: invoice_id-index (PK: invoice_id), sparse
//
// Positions are claimed in the positions table under the day scope.

type BookingDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb DynamoAPI) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	err := createWithClaim(ctx, r.ddb, r.tableName, "id", toBookingItem(b), timesheet.DayScope(b.DayID), b.Position, b.ID)
	if err != nil {
		return entities.Booking{}, err
	}
	return b, nil
}

// Update replaces an unsettled booking. A settled or missing booking yields
// a zero value.
func (r *BookingDynamoRepository) Update(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return entities.Booking{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#invoice_id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#invoice_id": "invoice_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Booking{}, nil
		}
		return entities.Booking{}, err
	}
	return b, nil
}

// Delete removes the booking. Its position claim is kept.
func (r *BookingDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       stringKey("id", id),
	})
	return err
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	it, found, err := getItem[bookingItem](ctx, r.ddb, r.tableName, stringKey("id", id))
	if err != nil || !found {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) ListByDay(ctx context.Context, dayID string) ([]entities.Booking, error) {
	return r.listByIndex(ctx, bookingsDayIDIndex, "day_id", dayID)
}

func (r *BookingDynamoRepository) ListByProject(ctx context.Context, projectID string) ([]entities.Booking, error) {
	return r.listByIndex(ctx, bookingsProjectIDIndex, "project_id", projectID)
}

func (r *BookingDynamoRepository) ListByInvoice(ctx context.Context, invoiceID string) ([]entities.Booking, error) {
	return r.listByIndex(ctx, bookingsInvoiceIDIndex, "invoice_id", invoiceID)
}

func (r *BookingDynamoRepository) ListAll(ctx context.Context) ([]entities.Booking, error) {
	items, err := scanAll[bookingItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return fromBookingItems(items), nil
}

// Settle attaches invoiceID to an unsettled booking. It returns
// ErrAlreadySettled when the booking carries an invoice and a zero value
// when it does not exist.
func (r *BookingDynamoRepository) Settle(ctx context.Context, bookingID, invoiceID, actor string) (entities.Booking, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("id", bookingID),
		ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#invoice_id)"),
		UpdateExpression:    aws.String("SET #invoice_id = :invoice_id, #modified = :modified, #modified_by = :modified_by"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#invoice_id":  "invoice_id",
			"#modified":    "modified",
			"#modified_by": "modified_by",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":invoice_id":  &types.AttributeValueMemberS{Value: invoiceID},
			":modified":    &types.AttributeValueMemberS{Value: formatTime(r.now())},
			":modified_by": &types.AttributeValueMemberS{Value: actor},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if !errors.As(err, &cfe) {
			return entities.Booking{}, err
		}
		existing, err := r.GetByID(ctx, bookingID)
		if err != nil || existing.ID == "" {
			return entities.Booking{}, err
		}
		return entities.Booking{}, interfaces.ErrAlreadySettled
	}
	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) listByIndex(ctx context.Context, index, attr, value string) ([]entities.Booking, error) {
	items, err := queryIndex[bookingItem](ctx, r.ddb, r.tableName, index, attr, value)
	if err != nil {
		return nil, err
	}
	return fromBookingItems(items), nil
}

func fromBookingItems(items []bookingItem) []entities.Booking {
	out := make([]entities.Booking, 0, len(items))
	for _, it := range items {
		out = append(out, fromBookingItem(it))
	}
	return out
}

func toBookingItem(b entities.Booking) bookingItem {
	return bookingItem{
		ID:                  b.ID,
		DayID:               b.DayID,
		ProjectID:           b.ProjectID,
		StepID:              b.StepID,
		InvoiceID:           b.InvoiceID,
		Title:               b.Title,
		Description:         b.Description,
		Position:            b.Position,
		FromTime:            b.FromTime,
		ToTime:              b.ToTime,
		Location:            b.Location,
		Duration:            b.Duration.String(),
		Coefficient:         formatNullDecimal(b.Coefficient),
		ExternalCoefficient: formatNullDecimal(b.ExternalCoefficient),
		auditItem:           toAuditItem(b.Audit),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	return entities.Booking{
		ID:                  it.ID,
		DayID:               it.DayID,
		ProjectID:           it.ProjectID,
		StepID:              it.StepID,
		InvoiceID:           it.InvoiceID,
		Title:               it.Title,
		Description:         it.Description,
		Position:            it.Position,
		FromTime:            it.FromTime,
		ToTime:              it.ToTime,
		Location:            it.Location,
		Duration:            parseDecimal(it.Duration),
		Coefficient:         parseNullDecimal(it.Coefficient),
		ExternalCoefficient: parseNullDecimal(it.ExternalCoefficient),
		Audit:               fromAuditItem(it.auditItem),
	}
}
