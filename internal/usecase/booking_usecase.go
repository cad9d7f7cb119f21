package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"inhouse/internal/domain/billing"
	"inhouse/internal/domain/entities"
	"inhouse/internal/domain/timesheet"
	"inhouse/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const timeOfDayLayout = "15:04"

var maxBookingHours = decimal.NewFromInt(24)

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrDayNotFound         = errors.New("day not found")
	ErrInvalidBookingID    = errors.New("invalid booking id")
	ErrInvalidBookingTitle = errors.New("invalid booking title")
	ErrInvalidDuration     = errors.New("invalid booking duration")
	ErrInvalidTimeRange    = errors.New("invalid booking time range")
	ErrInvalidDate         = errors.New("invalid date")
	ErrStepNotInProject    = errors.New("project step does not belong to project")
)

type CreateBookingInput struct {
	UserID              string
	Date                time.Time
	ProjectID           string
	StepID              string
	Title               string
	Description         string
	Position            int
	FromTime            string
	ToTime              string
	Location            string
	Duration            decimal.Decimal
	Coefficient         decimal.NullDecimal
	ExternalCoefficient decimal.NullDecimal
}

// UpdateBookingInput carries the fields to change. Nil fields are kept.
type UpdateBookingInput struct {
	Title       *string
	Description *string
	Duration    *decimal.Decimal
	FromTime    *string
	ToTime      *string
	Location    *string
}

// BookingDetails is a booking with its editability and billing multiplier.
type BookingDetails struct {
	Booking        entities.Booking
	Day            entities.Day
	Project        entities.Project
	Step           *entities.ProjectStep
	IsOpen         bool
	ClosingReasons []string
	Coefficient    decimal.Decimal
}

// IBookingUseCase records work on days. Closed bookings cannot be created,
// changed or deleted; the refusal carries the closing reasons.

type IBookingUseCase interface {
	Create(ctx context.Context, actor string, in CreateBookingInput) (entities.Booking, error)
	GetDetails(ctx context.Context, id string) (BookingDetails, error)
	Update(ctx context.Context, actor, id string, in UpdateBookingInput) (entities.Booking, error)
	Delete(ctx context.Context, actor, id string) error
}

type BookingUseCase struct {
	repo        interfaces.IBookingRepository
	dayRepo     interfaces.IDayRepository
	projectRepo interfaces.IProjectRepository
	stepRepo    interfaces.IProjectStepRepository
	sequencer   *timesheet.Sequencer
	resolver    *billing.CoefficientResolver
	now         func() time.Time
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(
	repo interfaces.IBookingRepository,
	dayRepo interfaces.IDayRepository,
	projectRepo interfaces.IProjectRepository,
	stepRepo interfaces.IProjectStepRepository,
	positions interfaces.IPositionRepository,
	resolver *billing.CoefficientResolver,
) *BookingUseCase {
	return &BookingUseCase{
		repo:        repo,
		dayRepo:     dayRepo,
		projectRepo: projectRepo,
		stepRepo:    stepRepo,
		sequencer:   timesheet.NewSequencer(positions),
		resolver:    resolver,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (u *BookingUseCase) Create(ctx context.Context, actor string, in CreateBookingInput) (entities.Booking, error) {
	userID := strings.TrimSpace(in.UserID)
	if userID == "" {
		return entities.Booking{}, ErrInvalidActor
	}
	if in.Date.IsZero() {
		return entities.Booking{}, ErrInvalidDate
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return entities.Booking{}, ErrInvalidBookingTitle
	}
	if err := validateDuration(in.Duration); err != nil {
		return entities.Booking{}, err
	}
	if err := validateTimes(in.FromTime, in.ToTime); err != nil {
		return entities.Booking{}, err
	}
	if in.Position < 0 {
		return entities.Booking{}, ErrInvalidPosition
	}
	if negative(in.Coefficient) || negative(in.ExternalCoefficient) {
		return entities.Booking{}, ErrInvalidCoefficient
	}

	projectID := strings.TrimSpace(in.ProjectID)
	if projectID == "" {
		return entities.Booking{}, ErrInvalidProjectID
	}
	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return entities.Booking{}, err
	}
	if project.ID == "" {
		return entities.Booking{}, ErrProjectNotFound
	}
	step, err := u.loadStep(ctx, strings.TrimSpace(in.StepID))
	if err != nil {
		return entities.Booking{}, err
	}
	if step != nil && step.ProjectID != project.ID {
		return entities.Booking{}, ErrStepNotInProject
	}

	day, err := u.dayRepo.GetOrCreate(ctx, entities.NewDay(userID, in.Date))
	if err != nil {
		return entities.Booking{}, err
	}

	b := entities.Booking{
		ID:                  uuid.NewString(),
		DayID:               day.ID,
		ProjectID:           project.ID,
		Title:               title,
		Description:         strings.TrimSpace(in.Description),
		Position:            in.Position,
		FromTime:            in.FromTime,
		ToTime:              in.ToTime,
		Location:            strings.TrimSpace(in.Location),
		Duration:            in.Duration,
		Coefficient:         in.Coefficient,
		ExternalCoefficient: in.ExternalCoefficient,
	}
	if step != nil {
		b.StepID = step.ID
	}

	g := timesheet.BookingGraph{Booking: b, Day: day, Project: project, Step: step}
	if reasons := timesheet.ClosingReasons(g); len(reasons) > 0 {
		log.Printf("[booking][usecase] create refused day_id=%s reasons=%q", day.ID, reasons)
		return entities.Booking{}, &BookingClosedError{Reasons: reasons}
	}

	if b.Position == 0 {
		b.Position, err = u.sequencer.Next(ctx, timesheet.DayScope(day.ID))
		if err != nil {
			return entities.Booking{}, err
		}
	}
	b.Touch(actor, u.now())

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		if errors.Is(err, interfaces.ErrPositionTaken) {
			log.Printf("[booking][usecase] position conflict day_id=%s position=%d", day.ID, b.Position)
			return entities.Booking{}, ErrPositionConflict
		}
		return entities.Booking{}, err
	}
	log.Printf("[booking][usecase] created booking_id=%s day_id=%s position=%d", created.ID, created.DayID, created.Position)
	return created, nil
}

func (u *BookingUseCase) GetDetails(ctx context.Context, id string) (BookingDetails, error) {
	g, err := u.loadGraph(ctx, id)
	if err != nil {
		return BookingDetails{}, err
	}
	day := g.Day
	reasons := timesheet.ClosingReasons(g)
	return BookingDetails{
		Booking:        g.Booking,
		Day:            g.Day,
		Project:        g.Project,
		Step:           g.Step,
		IsOpen:         len(reasons) == 0,
		ClosingReasons: reasons,
		Coefficient:    u.resolver.Resolve(g.Project, g.Step, &day),
	}, nil
}

func (u *BookingUseCase) Update(ctx context.Context, actor, id string, in UpdateBookingInput) (entities.Booking, error) {
	g, err := u.loadGraph(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if reasons := timesheet.ClosingReasons(g); len(reasons) > 0 {
		return entities.Booking{}, &BookingClosedError{Reasons: reasons}
	}

	b := g.Booking
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return entities.Booking{}, ErrInvalidBookingTitle
		}
		b.Title = title
	}
	if in.Description != nil {
		b.Description = strings.TrimSpace(*in.Description)
	}
	if in.Duration != nil {
		if err := validateDuration(*in.Duration); err != nil {
			return entities.Booking{}, err
		}
		b.Duration = *in.Duration
	}
	if in.FromTime != nil {
		b.FromTime = *in.FromTime
	}
	if in.ToTime != nil {
		b.ToTime = *in.ToTime
	}
	if err := validateTimes(b.FromTime, b.ToTime); err != nil {
		return entities.Booking{}, err
	}
	if in.Location != nil {
		b.Location = strings.TrimSpace(*in.Location)
	}
	b.Touch(actor, u.now())

	updated, err := u.repo.Update(ctx, b)
	if err != nil {
		return entities.Booking{}, err
	}
	if updated.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return updated, nil
}

func (u *BookingUseCase) Delete(ctx context.Context, actor, id string) error {
	g, err := u.loadGraph(ctx, id)
	if err != nil {
		return err
	}
	if reasons := timesheet.ClosingReasons(g); len(reasons) > 0 {
		return &BookingClosedError{Reasons: reasons}
	}
	if err := u.repo.Delete(ctx, g.Booking.ID); err != nil {
		return err
	}
	log.Printf("[booking][usecase] deleted booking_id=%s by=%s", g.Booking.ID, actor)
	return nil
}

func (u *BookingUseCase) loadGraph(ctx context.Context, id string) (timesheet.BookingGraph, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return timesheet.BookingGraph{}, ErrInvalidBookingID
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return timesheet.BookingGraph{}, err
	}
	if b.ID == "" {
		return timesheet.BookingGraph{}, ErrBookingNotFound
	}
	day, err := u.dayRepo.GetByID(ctx, b.DayID)
	if err != nil {
		return timesheet.BookingGraph{}, err
	}
	if day.ID == "" {
		return timesheet.BookingGraph{}, ErrDayNotFound
	}
	project, err := u.projectRepo.GetByID(ctx, b.ProjectID)
	if err != nil {
		return timesheet.BookingGraph{}, err
	}
	if project.ID == "" {
		return timesheet.BookingGraph{}, ErrProjectNotFound
	}
	step, err := u.loadStep(ctx, b.StepID)
	if err != nil {
		return timesheet.BookingGraph{}, err
	}
	return timesheet.BookingGraph{Booking: b, Day: day, Project: project, Step: step}, nil
}

func (u *BookingUseCase) loadStep(ctx context.Context, id string) (*entities.ProjectStep, error) {
	if id == "" {
		return nil, nil
	}
	s, err := u.stepRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.ID == "" {
		return nil, ErrStepNotFound
	}
	return &s, nil
}

func validateDuration(d decimal.Decimal) error {
	if !d.IsPositive() || d.GreaterThan(maxBookingHours) {
		return ErrInvalidDuration
	}
	return nil
}

// validateTimes accepts empty values; when both are set from must not be
// after to.
func validateTimes(from, to string) error {
	var start, end time.Time
	var err error
	if from != "" {
		if start, err = time.Parse(timeOfDayLayout, from); err != nil {
			return ErrInvalidTimeRange
		}
	}
	if to != "" {
		if end, err = time.Parse(timeOfDayLayout, to); err != nil {
			return ErrInvalidTimeRange
		}
	}
	if from != "" && to != "" && start.After(end) {
		return ErrInvalidTimeRange
	}
	return nil
}
