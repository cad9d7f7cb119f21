package interfaces

import (
	"context"
	"inhouse/internal/domain/entities"
)

// IDayRepository abstracts DynamoDB persistence for Day.

type IDayRepository interface {
	GetOrCreate(ctx context.Context, d entities.Day) (entities.Day, error)
	GetByID(ctx context.Context, id string) (entities.Day, error)
	Lock(ctx context.Context, id string, actor string) (entities.Day, error)
}
