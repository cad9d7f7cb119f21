package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"inhouse/internal/domain/entities"
	"inhouse/internal/domain/timesheet"
	"inhouse/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTimerNotFound  = errors.New("timer not found")
	ErrInvalidTimerID = errors.New("invalid timer id")
)

// TimerStatus is a timer as seen at a point in time.
type TimerStatus struct {
	Timer          entities.Timer
	Elapsed        int64
	ElapsedDisplay string
	Hours          int64
	Minutes        int64
}

type ITimerUseCase interface {
	Create(ctx context.Context, actor, title string) (TimerStatus, error)
	Get(ctx context.Context, id string) (TimerStatus, error)
	Start(ctx context.Context, actor, id, title string) (TimerStatus, error)
	Stop(ctx context.Context, actor, id string) (TimerStatus, error)
	Clear(ctx context.Context, actor, id string) (TimerStatus, error)
}

type TimerUseCase struct {
	repo interfaces.ITimerRepository
	now  func() time.Time
}

var _ ITimerUseCase = (*TimerUseCase)(nil)

func NewTimerUseCase(repo interfaces.ITimerRepository) *TimerUseCase {
	return &TimerUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *TimerUseCase) Create(ctx context.Context, actor, title string) (TimerStatus, error) {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return TimerStatus{}, ErrInvalidActor
	}
	t := entities.Timer{
		ID:     uuid.NewString(),
		UserID: actor,
		Title:  strings.TrimSpace(title),
	}
	t.Touch(actor, u.now())
	created, err := u.repo.Create(ctx, t)
	if err != nil {
		return TimerStatus{}, err
	}
	return u.status(created), nil
}

func (u *TimerUseCase) Get(ctx context.Context, id string) (TimerStatus, error) {
	t, err := u.load(ctx, id)
	if err != nil {
		return TimerStatus{}, err
	}
	return u.status(t), nil
}

func (u *TimerUseCase) Start(ctx context.Context, actor, id, title string) (TimerStatus, error) {
	return u.apply(ctx, actor, id, func(t *entities.Timer, now time.Time) {
		t.Start(now, strings.TrimSpace(title))
	})
}

func (u *TimerUseCase) Stop(ctx context.Context, actor, id string) (TimerStatus, error) {
	return u.apply(ctx, actor, id, func(t *entities.Timer, now time.Time) {
		t.Stop(now)
	})
}

func (u *TimerUseCase) Clear(ctx context.Context, actor, id string) (TimerStatus, error) {
	return u.apply(ctx, actor, id, func(t *entities.Timer, _ time.Time) {
		t.Clear()
	})
}

func (u *TimerUseCase) apply(ctx context.Context, actor, id string, fn func(*entities.Timer, time.Time)) (TimerStatus, error) {
	t, err := u.load(ctx, id)
	if err != nil {
		return TimerStatus{}, err
	}
	now := u.now()
	fn(&t, now)
	t.Touch(actor, now)
	updated, err := u.repo.Update(ctx, t)
	if err != nil {
		return TimerStatus{}, err
	}
	if updated.ID == "" {
		return TimerStatus{}, ErrTimerNotFound
	}
	return u.status(updated), nil
}

func (u *TimerUseCase) load(ctx context.Context, id string) (entities.Timer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Timer{}, ErrInvalidTimerID
	}
	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Timer{}, err
	}
	if t.ID == "" {
		return entities.Timer{}, ErrTimerNotFound
	}
	return t, nil
}

func (u *TimerUseCase) status(t entities.Timer) TimerStatus {
	elapsed := t.ElapsedTime(u.now())
	h, m := t.TimeTuple()
	return TimerStatus{
		Timer:          t,
		Elapsed:        elapsed,
		ElapsedDisplay: timesheet.FormatMinutes(int(elapsed / 60)),
		Hours:          h,
		Minutes:        m,
	}
}
