package repository

import (
	"context"
	"strings"

	"inhouse/internal/domain/entities"
	"inhouse/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCustomersTableName = "customers"
	customerNamesPrefix       = "names#"
)

type customerItem struct {
	ID            string             `dynamodbav:"id"`
	Name1         string             `dynamodbav:"name1"`
	Name2         string             `dynamodbav:"name2,omitempty"`
	Name3         string             `dynamodbav:"name3,omitempty"`
	Address       addressItem        `dynamodbav:"address"`
	Communication *communicationItem `dynamodbav:"communication,omitempty"`
	DailyRate     string             `dynamodbav:"daily_rate,omitempty"`
	auditItem
}

// customerNamesItem reserves a (name1, name2, name3) combination.
type customerNamesItem struct {
	ID         string `dynamodbav:"id"`
	CustomerID string `dynamodbav:"customer_id"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Every customer is written together with a "names#..." marker item so
// that the name combination stays unique.

type CustomerDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb DynamoAPI) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func customerNamesKey(c entities.Customer) string {
	return customerNamesPrefix + strings.Join([]string{c.Name1, c.Name2, c.Name3}, "|")
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	put, err := newPut(r.tableName, "id", toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
	}
	marker, err := newPut(r.tableName, "id", customerNamesItem{ID: customerNamesKey(c), CustomerID: c.ID})
	if err != nil {
		return entities.Customer{}, err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{put, marker},
	})
	if err != nil {
		if failed, ok := canceledAt(err); ok && len(failed) > 0 {
			return entities.Customer{}, interfaces.ErrAlreadyExists
		}
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	if strings.HasPrefix(id, customerNamesPrefix) {
		return entities.Customer{}, nil
	}
	it, found, err := getItem[customerItem](ctx, r.ddb, r.tableName, stringKey("id", id))
	if err != nil || !found {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func toCustomerItem(c entities.Customer) customerItem {
	it := customerItem{
		ID:        c.ID,
		Name1:     c.Name1,
		Name2:     c.Name2,
		Name3:     c.Name3,
		Address:   toAddressItem(c.Address),
		DailyRate: formatNullDecimal(c.DailyRate),
		auditItem: toAuditItem(c.Audit),
	}
	if c.Communication != nil {
		comm := toCommunicationItem(*c.Communication)
		it.Communication = &comm
	}
	return it
}

func fromCustomerItem(it customerItem) entities.Customer {
	c := entities.Customer{
		ID:        it.ID,
		Name1:     it.Name1,
		Name2:     it.Name2,
		Name3:     it.Name3,
		Address:   fromAddressItem(it.Address),
		DailyRate: parseNullDecimal(it.DailyRate),
		Audit:     fromAuditItem(it.auditItem),
	}
	if it.Communication != nil {
		comm := fromCommunicationItem(*it.Communication)
		c.Communication = &comm
	}
	return c
}
