package usecase

import (
	"context"
	"errors"
	"testing"

	"inhouse/internal/domain/entities"
	mock_interfaces "inhouse/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestStarUseCase(t *testing.T) {
	t.Run("invalid kind", func(t *testing.T) {
		uc := NewStarUseCase(nil)
		if err := uc.Add(context.Background(), "u1", "invoice", "i1"); !errors.Is(err, ErrInvalidStarKind) {
			t.Fatalf("expected ErrInvalidStarKind, got %v", err)
		}
		if _, err := uc.List(context.Background(), "u1", "day"); !errors.Is(err, ErrInvalidStarKind) {
			t.Fatalf("expected ErrInvalidStarKind, got %v", err)
		}
	})

	t.Run("missing user", func(t *testing.T) {
		uc := NewStarUseCase(nil)
		if _, err := uc.IsStarred(context.Background(), "", entities.StarKindProject, "p1"); !errors.Is(err, ErrInvalidActor) {
			t.Fatalf("expected ErrInvalidActor, got %v", err)
		}
	})

	t.Run("missing object", func(t *testing.T) {
		uc := NewStarUseCase(nil)
		if err := uc.Remove(context.Background(), "u1", entities.StarKindProject, " "); !errors.Is(err, ErrInvalidObjectID) {
			t.Fatalf("expected ErrInvalidObjectID, got %v", err)
		}
	})

	t.Run("add remove and list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStarRepository(ctrl)
		uc := NewStarUseCase(repo)

		repo.EXPECT().Add(gomock.Any(), gomock.AssignableToTypeOf(entities.StarredItem{})).DoAndReturn(
			func(_ context.Context, it entities.StarredItem) error {
				if it.UserID != "u1" || it.Kind != entities.StarKindBooking || it.ObjectID != "b1" || it.Created.IsZero() {
					t.Fatalf("unexpected item: %+v", it)
				}
				return nil
			},
		)
		repo.EXPECT().Exists(gomock.Any(), "u1", entities.StarKindBooking, "b1").Return(true, nil)
		repo.EXPECT().Remove(gomock.Any(), "u1", entities.StarKindBooking, "b1").Return(nil)
		repo.EXPECT().List(gomock.Any(), "u1", entities.StarKindBooking).Return([]entities.StarredItem{
			{ObjectID: "b1"}, {ObjectID: "b7"},
		}, nil)

		if err := uc.Add(context.Background(), "u1", entities.StarKindBooking, " b1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ok, err := uc.IsStarred(context.Background(), "u1", entities.StarKindBooking, "b1")
		if err != nil || !ok {
			t.Fatalf("expected starred, got %v %v", ok, err)
		}
		if err := uc.Remove(context.Background(), "u1", entities.StarKindBooking, "b1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ids, err := uc.List(context.Background(), "u1", entities.StarKindBooking)
		if err != nil || len(ids) != 2 || ids[1] != "b7" {
			t.Fatalf("unexpected list %v %v", ids, err)
		}
	})
}
