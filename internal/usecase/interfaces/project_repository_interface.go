package interfaces

import (
	"context"
	"inhouse/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project.
//
// Getters return a zero value (empty ID) when nothing is found. Create fails
// with ErrKeyTaken or ErrNameTaken when another project uses the key or name.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	GetByKey(ctx context.Context, key string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	Count(ctx context.Context) (int, error)
}
