package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"inhouse/internal/domain/entities"
	mock_interfaces "inhouse/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTimerUseCase(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("create requires user", func(t *testing.T) {
		uc := NewTimerUseCase(nil)
		_, err := uc.Create(context.Background(), " ", "Support")
		if !errors.Is(err, ErrInvalidActor) {
			t.Fatalf("expected ErrInvalidActor, got %v", err)
		}
	})

	t.Run("create idle timer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITimerRepository(ctrl)
		uc := NewTimerUseCase(repo)
		uc.now = fixedClock(now)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tm entities.Timer) (entities.Timer, error) { return tm, nil },
		)

		st, err := uc.Create(context.Background(), "u1", " Support ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if st.Timer.Active || st.Timer.UserID != "u1" || st.Timer.Title != "Support" || st.Elapsed != 0 {
			t.Fatalf("unexpected timer: %+v", st)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITimerRepository(ctrl)
		uc := NewTimerUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "t1").Return(entities.Timer{}, nil)

		_, err := uc.Get(context.Background(), "t1")
		if !errors.Is(err, ErrTimerNotFound) {
			t.Fatalf("expected ErrTimerNotFound, got %v", err)
		}
	})

	t.Run("get running timer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITimerRepository(ctrl)
		uc := NewTimerUseCase(repo)
		uc.now = fixedClock(now)

		start := now.Add(-90 * time.Minute)
		repo.EXPECT().GetByID(gomock.Any(), "t1").Return(entities.Timer{ID: "t1", StartTime: &start, Active: true, Duration: 4380}, nil)

		st, err := uc.Get(context.Background(), "t1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if st.Elapsed != 4380+5400 || st.ElapsedDisplay != "02:43" {
			t.Fatalf("unexpected elapsed: %d %q", st.Elapsed, st.ElapsedDisplay)
		}
		if st.Hours != 1 || st.Minutes != 15 {
			t.Fatalf("unexpected tuple: %d:%d", st.Hours, st.Minutes)
		}
	})

	t.Run("start then stop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITimerRepository(ctrl)
		uc := NewTimerUseCase(repo)
		uc.now = fixedClock(now)

		stored := entities.Timer{ID: "t1", UserID: "u1", Title: "Support"}
		repo.EXPECT().GetByID(gomock.Any(), "t1").DoAndReturn(
			func(context.Context, string) (entities.Timer, error) { return stored, nil },
		).Times(2)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tm entities.Timer) (entities.Timer, error) {
				stored = tm
				return tm, nil
			},
		).Times(2)

		st, err := uc.Start(context.Background(), "u1", "t1", "Hotline")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !st.Timer.Active || st.Timer.Title != "Hotline" {
			t.Fatalf("expected running timer, got %+v", st.Timer)
		}

		uc.now = fixedClock(now.Add(20 * time.Minute))
		st, err = uc.Stop(context.Background(), "u1", "t1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if st.Timer.Active || st.Timer.Duration != 1200 {
			t.Fatalf("unexpected stopped timer: %+v", st.Timer)
		}
		if st.Hours != 0 || st.Minutes != 15 {
			t.Fatalf("unexpected tuple: %d:%d", st.Hours, st.Minutes)
		}
	})

	t.Run("stop never started resets", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITimerRepository(ctrl)
		uc := NewTimerUseCase(repo)
		uc.now = fixedClock(now)

		repo.EXPECT().GetByID(gomock.Any(), "t1").Return(entities.Timer{ID: "t1", Duration: 500}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tm entities.Timer) (entities.Timer, error) { return tm, nil },
		)

		st, err := uc.Stop(context.Background(), "u1", "t1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if st.Timer.Duration != 0 {
			t.Fatalf("expected reset duration, got %d", st.Timer.Duration)
		}
	})

	t.Run("clear", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITimerRepository(ctrl)
		uc := NewTimerUseCase(repo)
		uc.now = fixedClock(now)

		start := now.Add(-time.Hour)
		repo.EXPECT().GetByID(gomock.Any(), "t1").Return(entities.Timer{ID: "t1", StartTime: &start, Active: true, Duration: 900}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Timer{}, nil)

		_, err := uc.Clear(context.Background(), "u1", "t1")
		if !errors.Is(err, ErrTimerNotFound) {
			t.Fatalf("expected ErrTimerNotFound for vanished timer, got %v", err)
		}
	})
}
