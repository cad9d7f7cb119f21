package interfaces

import (
	"context"
	"inhouse/internal/domain/entities"
)

// IStarRepository stores starred items keyed by (user, kind, object id).
//
// Add is idempotent; Remove of a missing star is not an error.

type IStarRepository interface {
	Add(ctx context.Context, item entities.StarredItem) error
	Remove(ctx context.Context, userID string, kind entities.StarKind, objectID string) error
	Exists(ctx context.Context, userID string, kind entities.StarKind, objectID string) (bool, error)
	List(ctx context.Context, userID string, kind entities.StarKind) ([]entities.StarredItem, error)
}
