package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"inhouse/internal/domain/billing"
	"inhouse/internal/domain/entities"
	"inhouse/internal/domain/timesheet"
	"inhouse/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvoiceNotFound  = errors.New("invoice not found")
	ErrInvalidInvoiceID = errors.New("invalid invoice id")
	ErrInvalidPeriod    = errors.New("invalid invoice period")
	ErrInvalidInvoiceNo = errors.New("invalid invoice number")
)

type CreateInvoiceInput struct {
	ProjectID  string
	No         *int
	ValidFrom  time.Time
	ValidUntil time.Time
}

// InvoiceDetails is an invoice with its priced lines.
type InvoiceDetails struct {
	Invoice entities.Invoice
	Label   string
	Lines   []billing.Line
	Total   decimal.Decimal
}

// IInvoiceUseCase creates invoices for a project period. Creating an invoice
// settles the open bookings of the period, which freezes them. Creating it
// again for the same period settles what a failed attempt left open.

type IInvoiceUseCase interface {
	Create(ctx context.Context, actor string, in CreateInvoiceInput) (InvoiceDetails, error)
	GetDetails(ctx context.Context, id string) (InvoiceDetails, error)
}

type InvoiceUseCase struct {
	repo        interfaces.IInvoiceRepository
	projectRepo interfaces.IProjectRepository
	bookingRepo interfaces.IBookingRepository
	dayRepo     interfaces.IDayRepository
	stepRepo    interfaces.IProjectStepRepository
	sequencer   *timesheet.Sequencer
	resolver    *billing.CoefficientResolver
	now         func() time.Time
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	repo interfaces.IInvoiceRepository,
	projectRepo interfaces.IProjectRepository,
	bookingRepo interfaces.IBookingRepository,
	dayRepo interfaces.IDayRepository,
	stepRepo interfaces.IProjectStepRepository,
	positions interfaces.IPositionRepository,
	resolver *billing.CoefficientResolver,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		repo:        repo,
		projectRepo: projectRepo,
		bookingRepo: bookingRepo,
		dayRepo:     dayRepo,
		stepRepo:    stepRepo,
		sequencer:   timesheet.NewSequencer(positions),
		resolver:    resolver,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (u *InvoiceUseCase) Create(ctx context.Context, actor string, in CreateInvoiceInput) (InvoiceDetails, error) {
	if in.ValidFrom.IsZero() || in.ValidUntil.IsZero() || in.ValidFrom.After(in.ValidUntil) {
		return InvoiceDetails{}, ErrInvalidPeriod
	}
	if in.No != nil && *in.No <= 0 {
		return InvoiceDetails{}, ErrInvalidInvoiceNo
	}
	projectID := strings.TrimSpace(in.ProjectID)
	if projectID == "" {
		return InvoiceDetails{}, ErrInvalidProjectID
	}
	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return InvoiceDetails{}, err
	}
	if project.ID == "" {
		return InvoiceDetails{}, ErrProjectNotFound
	}

	period := entities.Invoice{
		ProjectID:  project.ID,
		No:         in.No,
		ValidFrom:  truncateDate(in.ValidFrom),
		ValidUntil: truncateDate(in.ValidUntil),
	}
	pending, err := u.pendingBookings(ctx, period)
	if err != nil {
		return InvoiceDetails{}, err
	}
	inv, err := u.invoiceForPeriod(ctx, actor, period)
	if err != nil {
		return InvoiceDetails{}, err
	}

	settled := 0
	for _, b := range pending {
		if _, err := u.bookingRepo.Settle(ctx, b.ID, inv.ID, actor); err != nil {
			if errors.Is(err, interfaces.ErrAlreadySettled) {
				continue
			}
			log.Printf("[invoice][usecase] settle failed invoice_id=%s booking_id=%s settled=%d err=%v", inv.ID, b.ID, settled, err)
			return InvoiceDetails{Invoice: inv}, fmt.Errorf("settle bookings of invoice %s: %w", inv.ID, err)
		}
		settled++
	}
	log.Printf("[invoice][usecase] created invoice_id=%s project_id=%s internal_no=%d settled=%d",
		inv.ID, project.ID, inv.InternalNo, settled)

	return u.details(ctx, inv, project)
}

// pendingBookings returns the unsettled bookings of the project whose day
// falls into the period of inv.
func (u *InvoiceUseCase) pendingBookings(ctx context.Context, inv entities.Invoice) ([]entities.Booking, error) {
	bookings, err := u.bookingRepo.ListByProject(ctx, inv.ProjectID)
	if err != nil {
		return nil, err
	}
	var pending []entities.Booking
	for _, b := range bookings {
		if b.IsSettled() {
			continue
		}
		day, err := u.dayRepo.GetByID(ctx, b.DayID)
		if err != nil {
			return nil, err
		}
		if day.ID == "" || !inv.Covers(day.Date) {
			continue
		}
		pending = append(pending, b)
	}
	return pending, nil
}

// invoiceForPeriod returns the invoice of the project covering exactly the
// period of inv, creating it when there is none. An interrupted settlement
// is resumed by creating the same invoice again.
func (u *InvoiceUseCase) invoiceForPeriod(ctx context.Context, actor string, inv entities.Invoice) (entities.Invoice, error) {
	existing, err := u.repo.ListByProject(ctx, inv.ProjectID)
	if err != nil {
		return entities.Invoice{}, err
	}
	for _, e := range existing {
		if e.ValidFrom.Equal(inv.ValidFrom) && e.ValidUntil.Equal(inv.ValidUntil) {
			log.Printf("[invoice][usecase] resuming invoice_id=%s project_id=%s", e.ID, e.ProjectID)
			return e, nil
		}
	}

	inv.InternalNo, err = u.sequencer.Next(ctx, timesheet.InvoiceScope(inv.ProjectID))
	if err != nil {
		return entities.Invoice{}, err
	}
	inv.ID = uuid.NewString()
	inv.Touch(actor, u.now())

	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		if errors.Is(err, interfaces.ErrPositionTaken) {
			return entities.Invoice{}, ErrPositionConflict
		}
		return entities.Invoice{}, err
	}
	return created, nil
}

func (u *InvoiceUseCase) GetDetails(ctx context.Context, id string) (InvoiceDetails, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return InvoiceDetails{}, ErrInvalidInvoiceID
	}
	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return InvoiceDetails{}, err
	}
	if inv.ID == "" {
		return InvoiceDetails{}, ErrInvoiceNotFound
	}
	project, err := u.projectRepo.GetByID(ctx, inv.ProjectID)
	if err != nil {
		return InvoiceDetails{}, err
	}
	return u.details(ctx, inv, project)
}

func (u *InvoiceUseCase) details(ctx context.Context, inv entities.Invoice, project entities.Project) (InvoiceDetails, error) {
	bookings, err := u.bookingRepo.ListByInvoice(ctx, inv.ID)
	if err != nil {
		return InvoiceDetails{}, err
	}
	steps := map[string]*entities.ProjectStep{}
	items := make([]billing.Item, 0, len(bookings))
	for _, b := range bookings {
		day, err := u.dayRepo.GetByID(ctx, b.DayID)
		if err != nil {
			return InvoiceDetails{}, err
		}
		var step *entities.ProjectStep
		if b.StepID != "" {
			s, ok := steps[b.StepID]
			if !ok {
				found, err := u.stepRepo.GetByID(ctx, b.StepID)
				if err != nil {
					return InvoiceDetails{}, err
				}
				if found.ID != "" {
					s = &found
				}
				steps[b.StepID] = s
			}
			step = s
		}
		items = append(items, billing.Item{Booking: b, Day: day, Step: step})
	}
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].Day.Date.Equal(items[j].Day.Date) {
			return items[i].Day.Date.Before(items[j].Day.Date)
		}
		return items[i].Booking.Position < items[j].Booking.Position
	})
	lines, total := u.resolver.BuildLines(project, items)
	return InvoiceDetails{
		Invoice: inv,
		Label:   inv.Label(project.Key),
		Lines:   lines,
		Total:   total,
	}, nil
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
