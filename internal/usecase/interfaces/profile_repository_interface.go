package interfaces

import (
	"context"
	"inhouse/internal/domain/entities"
)

// IUserProfileRepository abstracts DynamoDB persistence for UserProfile.
//
// Create fails with ErrAlreadyExists when the user already has a profile.

type IUserProfileRepository interface {
	Create(ctx context.Context, p entities.UserProfile) (entities.UserProfile, error)
	GetByUserID(ctx context.Context, userID string) (entities.UserProfile, error)
}
