package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"inhouse/internal/domain/entities"
	"inhouse/internal/usecase/interfaces"
)

var (
	ErrInvalidStarKind = errors.New("invalid star kind")
	ErrInvalidObjectID = errors.New("invalid object id")
)

type IStarUseCase interface {
	Add(ctx context.Context, userID string, kind entities.StarKind, objectID string) error
	Remove(ctx context.Context, userID string, kind entities.StarKind, objectID string) error
	IsStarred(ctx context.Context, userID string, kind entities.StarKind, objectID string) (bool, error)
	List(ctx context.Context, userID string, kind entities.StarKind) ([]string, error)
}

type StarUseCase struct {
	repo interfaces.IStarRepository
	now  func() time.Time
}

var _ IStarUseCase = (*StarUseCase)(nil)

func NewStarUseCase(repo interfaces.IStarRepository) *StarUseCase {
	return &StarUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// Add stars objectID for userID. Starring twice is not an error.
func (u *StarUseCase) Add(ctx context.Context, userID string, kind entities.StarKind, objectID string) error {
	userID, objectID, err := validateStar(userID, kind, objectID)
	if err != nil {
		return err
	}
	return u.repo.Add(ctx, entities.StarredItem{
		Kind:     kind,
		ObjectID: objectID,
		UserID:   userID,
		Created:  u.now(),
	})
}

func (u *StarUseCase) Remove(ctx context.Context, userID string, kind entities.StarKind, objectID string) error {
	userID, objectID, err := validateStar(userID, kind, objectID)
	if err != nil {
		return err
	}
	return u.repo.Remove(ctx, userID, kind, objectID)
}

func (u *StarUseCase) IsStarred(ctx context.Context, userID string, kind entities.StarKind, objectID string) (bool, error) {
	userID, objectID, err := validateStar(userID, kind, objectID)
	if err != nil {
		return false, err
	}
	return u.repo.Exists(ctx, userID, kind, objectID)
}

// List returns the ids of every object of kind starred by userID.
func (u *StarUseCase) List(ctx context.Context, userID string, kind entities.StarKind) ([]string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidActor
	}
	if !kind.Valid() {
		return nil, ErrInvalidStarKind
	}
	items, err := u.repo.List(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ObjectID)
	}
	return ids, nil
}

func validateStar(userID string, kind entities.StarKind, objectID string) (string, string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", "", ErrInvalidActor
	}
	if !kind.Valid() {
		return "", "", ErrInvalidStarKind
	}
	objectID = strings.TrimSpace(objectID)
	if objectID == "" {
		return "", "", ErrInvalidObjectID
	}
	return userID, objectID, nil
}
