package usecase

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"inhouse/internal/domain/entities"
	"inhouse/internal/domain/timesheet"
	"inhouse/internal/usecase/interfaces"
)

// MinutesPerDay is the booking sum above which a day sheet is flagged.
const MinutesPerDay = 24 * 60

// DaySheet is a day with its bookings ordered by position.
type DaySheet struct {
	Day          entities.Day
	Bookings     []entities.Booking
	TotalMinutes int
	Total        string
	OverLimit    bool
}

type IDayUseCase interface {
	GetSheet(ctx context.Context, userID string, date time.Time) (DaySheet, error)
	Lock(ctx context.Context, actor, userID string, date time.Time) (entities.Day, error)
}

type DayUseCase struct {
	repo        interfaces.IDayRepository
	bookingRepo interfaces.IBookingRepository
}

var _ IDayUseCase = (*DayUseCase)(nil)

func NewDayUseCase(repo interfaces.IDayRepository, bookingRepo interfaces.IBookingRepository) *DayUseCase {
	return &DayUseCase{repo: repo, bookingRepo: bookingRepo}
}

// GetSheet returns the sheet of userID on date. A day without bookings is
// returned unsaved.
func (u *DayUseCase) GetSheet(ctx context.Context, userID string, date time.Time) (DaySheet, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return DaySheet{}, ErrInvalidActor
	}
	if date.IsZero() {
		return DaySheet{}, ErrInvalidDate
	}
	want := entities.NewDay(userID, date)
	day, err := u.repo.GetByID(ctx, want.ID)
	if err != nil {
		return DaySheet{}, err
	}
	if day.ID == "" {
		day = want
	}

	bookings, err := u.bookingRepo.ListByDay(ctx, day.ID)
	if err != nil {
		return DaySheet{}, err
	}
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].Position < bookings[j].Position
	})

	total := 0
	for _, b := range bookings {
		total += b.DurationMinutes()
	}
	return DaySheet{
		Day:          day,
		Bookings:     bookings,
		TotalMinutes: total,
		Total:        timesheet.FormatMinutes(total),
		OverLimit:    total > MinutesPerDay,
	}, nil
}

// Lock locks the day of userID on date, creating it when needed. Locking a
// locked day is a no-op.
func (u *DayUseCase) Lock(ctx context.Context, actor, userID string, date time.Time) (entities.Day, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Day{}, ErrInvalidActor
	}
	if date.IsZero() {
		return entities.Day{}, ErrInvalidDate
	}
	day, err := u.repo.GetOrCreate(ctx, entities.NewDay(userID, date))
	if err != nil {
		return entities.Day{}, err
	}
	if day.Locked {
		return day, nil
	}
	locked, err := u.repo.Lock(ctx, day.ID, actor)
	if err != nil {
		return entities.Day{}, err
	}
	log.Printf("[day][usecase] locked day_id=%s by=%s", locked.ID, actor)
	return locked, nil
}
