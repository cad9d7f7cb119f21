package interfaces

import (
	"context"
	"inhouse/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// Create claims the internal number within the project and fails with
// ErrPositionTaken when it is already used.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.Invoice, error)
}
