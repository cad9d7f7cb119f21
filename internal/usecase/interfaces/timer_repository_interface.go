package interfaces

import (
	"context"
	"inhouse/internal/domain/entities"
)

// ITimerRepository abstracts DynamoDB persistence for Timer.

type ITimerRepository interface {
	Create(ctx context.Context, t entities.Timer) (entities.Timer, error)
	Update(ctx context.Context, t entities.Timer) (entities.Timer, error)
	GetByID(ctx context.Context, id string) (entities.Timer, error)
}
