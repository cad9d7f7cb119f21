package interfaces

import (
	"context"
	"inhouse/internal/domain/entities"
)

// IProjectStepRepository abstracts DynamoDB persistence for ProjectStep.
//
// Create claims the step position within its project and fails with
// ErrPositionTaken when the position is already used.

type IProjectStepRepository interface {
	Create(ctx context.Context, s entities.ProjectStep) (entities.ProjectStep, error)
	Update(ctx context.Context, s entities.ProjectStep) (entities.ProjectStep, error)
	GetByID(ctx context.Context, id string) (entities.ProjectStep, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.ProjectStep, error)
	ListAll(ctx context.Context) ([]entities.ProjectStep, error)
}
