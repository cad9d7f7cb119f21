package repository

import (
	"context"
	"sort"

	"inhouse/internal/domain/entities"
	"inhouse/internal/domain/timesheet"
	"inhouse/internal/usecase/interfaces"
)

const (
	defaultInvoicesTableName = "invoices"
	invoicesProjectIDIndex   = "project_id-index"
)

type invoiceItem struct {
	ID         string `dynamodbav:"id"`
	ProjectID  string `dynamodbav:"project_id"`
	No         string `dynamodbav:"no,omitempty"`
	InternalNo int    `dynamodbav:"internal_no"`
	ValidFrom  string `dynamodbav:"valid_from"`
	ValidUntil string `dynamodbav:"valid_until"`
	auditItem
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
//
// Internal numbers are claimed in the positions table under the invoice
// scope of the project.

type InvoiceDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb DynamoAPI) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	err := createWithClaim(ctx, r.ddb, r.tableName, "id", toInvoiceItem(inv), timesheet.InvoiceScope(inv.ProjectID), inv.InternalNo, inv.ID)
	if err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	it, found, err := getItem[invoiceItem](ctx, r.ddb, r.tableName, stringKey("id", id))
	if err != nil || !found {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) ListByProject(ctx context.Context, projectID string) ([]entities.Invoice, error) {
	items, err := queryIndex[invoiceItem](ctx, r.ddb, r.tableName, invoicesProjectIDIndex, "project_id", projectID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Invoice, 0, len(items))
	for _, it := range items {
		out = append(out, fromInvoiceItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InternalNo < out[j].InternalNo })
	return out, nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	return invoiceItem{
		ID:         inv.ID,
		ProjectID:  inv.ProjectID,
		No:         intPtrToString(inv.No),
		InternalNo: inv.InternalNo,
		ValidFrom:  formatDate(inv.ValidFrom),
		ValidUntil: formatDate(inv.ValidUntil),
		auditItem:  toAuditItem(inv.Audit),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	return entities.Invoice{
		ID:         it.ID,
		ProjectID:  it.ProjectID,
		No:         stringToIntPtr(it.No),
		InternalNo: it.InternalNo,
		ValidFrom:  parseDate(it.ValidFrom),
		ValidUntil: parseDate(it.ValidUntil),
		Audit:      fromAuditItem(it.auditItem),
	}
}
