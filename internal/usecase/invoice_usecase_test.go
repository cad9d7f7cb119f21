package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"inhouse/internal/domain/entities"
	"inhouse/internal/usecase/interfaces"
	mock_interfaces "inhouse/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type invoiceMocks struct {
	repo      *mock_interfaces.MockIInvoiceRepository
	projects  *mock_interfaces.MockIProjectRepository
	bookings  *mock_interfaces.MockIBookingRepository
	days      *mock_interfaces.MockIDayRepository
	steps     *mock_interfaces.MockIProjectStepRepository
	positions *mock_interfaces.MockIPositionRepository
}

func newInvoiceUseCase(ctrl *gomock.Controller) (*InvoiceUseCase, invoiceMocks) {
	m := invoiceMocks{
		repo:      mock_interfaces.NewMockIInvoiceRepository(ctrl),
		projects:  mock_interfaces.NewMockIProjectRepository(ctrl),
		bookings:  mock_interfaces.NewMockIBookingRepository(ctrl),
		days:      mock_interfaces.NewMockIDayRepository(ctrl),
		steps:     mock_interfaces.NewMockIProjectStepRepository(ctrl),
		positions: mock_interfaces.NewMockIPositionRepository(ctrl),
	}
	return NewInvoiceUseCase(m.repo, m.projects, m.bookings, m.days, m.steps, m.positions, testResolver()), m
}

func date(y int, mo time.Month, d int) time.Time {
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

func TestInvoiceUseCase_Create(t *testing.T) {
	t.Run("invalid period", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil, nil, nil, nil, nil, testResolver())
		_, err := uc.Create(context.Background(), "alice", CreateInvoiceInput{
			ProjectID: "p1", ValidFrom: date(2024, 2, 1), ValidUntil: date(2024, 1, 1),
		})
		if !errors.Is(err, ErrInvalidPeriod) {
			t.Fatalf("expected ErrInvalidPeriod, got %v", err)
		}
	})

	t.Run("project not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInvoiceUseCase(ctrl)

		m.projects.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Project{}, nil)

		_, err := uc.Create(context.Background(), "alice", CreateInvoiceInput{
			ProjectID: "p1", ValidFrom: date(2024, 1, 1), ValidUntil: date(2024, 1, 31),
		})
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("settles open bookings of the period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInvoiceUseCase(ctrl)

		days := map[string]entities.Day{
			"d-in":    entities.NewDay("u1", date(2024, 1, 6)),
			"d-out":   entities.NewDay("u1", date(2024, 2, 1)),
			"d-again": entities.NewDay("u1", date(2024, 1, 8)),
		}
		m.days.EXPECT().GetByID(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
			func(_ context.Context, id string) (entities.Day, error) { return days[id], nil },
		)
		m.projects.EXPECT().GetByID(gomock.Any(), "p1").Return(openProject(), nil)
		m.repo.EXPECT().ListByProject(gomock.Any(), "p1").Return(nil, nil)
		m.positions.EXPECT().MaxPosition(gomock.Any(), "invoice#p1").Return(2, nil)
		var invoiceID string
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Invoice{})).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.InternalNo != 3 || inv.ProjectID != "p1" {
					t.Fatalf("unexpected invoice: %+v", inv)
				}
				invoiceID = inv.ID
				return inv, nil
			},
		)
		m.bookings.EXPECT().ListByProject(gomock.Any(), "p1").Return([]entities.Booking{
			{ID: "b-in", DayID: "d-in", Duration: decimal.NewFromInt(2)},
			{ID: "b-settled", DayID: "d-in", InvoiceID: "old"},
			{ID: "b-out", DayID: "d-out"},
			{ID: "b-race", DayID: "d-again"},
		}, nil)
		m.bookings.EXPECT().Settle(gomock.Any(), "b-in", gomock.Any(), "alice").DoAndReturn(
			func(_ context.Context, bookingID, invID, _ string) (entities.Booking, error) {
				if invID != invoiceID {
					t.Fatalf("settled with wrong invoice %s", invID)
				}
				return entities.Booking{ID: bookingID, InvoiceID: invID}, nil
			},
		)
		m.bookings.EXPECT().Settle(gomock.Any(), "b-race", gomock.Any(), "alice").Return(entities.Booking{}, interfaces.ErrAlreadySettled)
		m.bookings.EXPECT().ListByInvoice(gomock.Any(), gomock.Any()).Return([]entities.Booking{
			{ID: "b-in", DayID: "d-in", Title: "Work", Duration: decimal.NewFromInt(2)},
		}, nil)

		res, err := uc.Create(context.Background(), "alice", CreateInvoiceInput{
			ProjectID: "p1", ValidFrom: date(2024, 1, 1), ValidUntil: date(2024, 1, 31),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Label != "WEB-3" {
			t.Fatalf("unexpected label %q", res.Label)
		}
		if len(res.Lines) != 1 || !res.Total.Equal(decimal.NewFromInt(3)) {
			t.Fatalf("unexpected lines %+v total %s", res.Lines, res.Total)
		}
	})
	t.Run("failed settlement is resumed on the same invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInvoiceUseCase(ctrl)

		day := entities.NewDay("u1", date(2024, 1, 6))
		m.days.EXPECT().GetByID(gomock.Any(), day.ID).AnyTimes().Return(day, nil)
		m.projects.EXPECT().GetByID(gomock.Any(), "p1").Times(2).Return(openProject(), nil)

		settled := map[string]string{}
		listBookings := func(context.Context, string) ([]entities.Booking, error) {
			return []entities.Booking{
				{ID: "b1", DayID: day.ID, InvoiceID: settled["b1"]},
				{ID: "b2", DayID: day.ID, InvoiceID: settled["b2"]},
			}, nil
		}
		m.bookings.EXPECT().ListByProject(gomock.Any(), "p1").Times(2).DoAndReturn(listBookings)

		var stored []entities.Invoice
		m.repo.EXPECT().ListByProject(gomock.Any(), "p1").Times(2).DoAndReturn(
			func(context.Context, string) ([]entities.Invoice, error) { return stored, nil },
		)
		m.positions.EXPECT().MaxPosition(gomock.Any(), "invoice#p1").Return(0, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Invoice{})).Times(1).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				stored = append(stored, inv)
				return inv, nil
			},
		)

		transportErr := errors.New("connection reset")
		gomock.InOrder(
			m.bookings.EXPECT().Settle(gomock.Any(), "b1", gomock.Any(), "alice").DoAndReturn(
				func(_ context.Context, bookingID, invID, _ string) (entities.Booking, error) {
					settled[bookingID] = invID
					return entities.Booking{ID: bookingID, InvoiceID: invID}, nil
				},
			),
			m.bookings.EXPECT().Settle(gomock.Any(), "b2", gomock.Any(), "alice").Return(entities.Booking{}, transportErr),
			m.bookings.EXPECT().Settle(gomock.Any(), "b2", gomock.Any(), "alice").DoAndReturn(
				func(_ context.Context, bookingID, invID, _ string) (entities.Booking, error) {
					settled[bookingID] = invID
					return entities.Booking{ID: bookingID, InvoiceID: invID}, nil
				},
			),
		)
		m.bookings.EXPECT().ListByInvoice(gomock.Any(), gomock.Any()).Return(nil, nil)

		in := CreateInvoiceInput{ProjectID: "p1", ValidFrom: date(2024, 1, 1), ValidUntil: date(2024, 1, 31)}
		res, err := uc.Create(context.Background(), "alice", in)
		if !errors.Is(err, transportErr) {
			t.Fatalf("expected transport error, got %v", err)
		}
		if len(stored) != 1 || res.Invoice.ID != stored[0].ID {
			t.Fatalf("expected the stored invoice with the error, got %+v", res.Invoice)
		}
		if settled["b1"] != stored[0].ID || settled["b2"] != "" {
			t.Fatalf("unexpected settlement after failure: %v", settled)
		}

		res, err = uc.Create(context.Background(), "alice", in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(stored) != 1 || res.Invoice.ID != stored[0].ID || res.Label != "WEB-1" {
			t.Fatalf("expected retry to reuse invoice, got %+v", res)
		}
		if settled["b1"] != stored[0].ID || settled["b2"] != stored[0].ID {
			t.Fatalf("expected all bookings on one invoice, got %v", settled)
		}
	})

	t.Run("lookup failure stores nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInvoiceUseCase(ctrl)

		lookupErr := errors.New("timeout")
		m.projects.EXPECT().GetByID(gomock.Any(), "p1").Return(openProject(), nil)
		m.bookings.EXPECT().ListByProject(gomock.Any(), "p1").Return([]entities.Booking{{ID: "b1", DayID: "d1"}}, nil)
		m.days.EXPECT().GetByID(gomock.Any(), "d1").Return(entities.Day{}, lookupErr)

		_, err := uc.Create(context.Background(), "alice", CreateInvoiceInput{
			ProjectID: "p1", ValidFrom: date(2024, 1, 1), ValidUntil: date(2024, 1, 31),
		})
		if !errors.Is(err, lookupErr) {
			t.Fatalf("expected lookup error, got %v", err)
		}
	})
}

func TestInvoiceUseCase_GetDetails(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInvoiceUseCase(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "i1").Return(entities.Invoice{}, nil)

		_, err := uc.GetDetails(context.Background(), "i1")
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("lines ordered by date with step coefficient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInvoiceUseCase(ctrl)

		inv := entities.Invoice{ID: "i1", ProjectID: "p1", InternalNo: 1}
		m.repo.EXPECT().GetByID(gomock.Any(), "i1").Return(inv, nil)
		m.projects.EXPECT().GetByID(gomock.Any(), "p1").Return(openProject(), nil)
		m.bookings.EXPECT().ListByInvoice(gomock.Any(), "i1").Return([]entities.Booking{
			{ID: "b2", DayID: "d2", StepID: "s1", Duration: decimal.NewFromInt(1)},
			{ID: "b1", DayID: "d1", StepID: "s1", Duration: decimal.NewFromInt(1)},
		}, nil)
		m.days.EXPECT().GetByID(gomock.Any(), "d2").Return(entities.NewDay("u1", date(2024, 1, 9)), nil)
		m.days.EXPECT().GetByID(gomock.Any(), "d1").Return(entities.NewDay("u1", date(2024, 1, 8)), nil)
		m.steps.EXPECT().GetByID(gomock.Any(), "s1").Times(1).Return(entities.ProjectStep{
			ID: "s1", Coefficient: decimal.NewNullDecimal(decimal.RequireFromString("1.5")),
		}, nil)

		res, err := uc.GetDetails(context.Background(), "i1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Lines) != 2 || res.Lines[0].BookingID != "b1" || res.Lines[1].BookingID != "b2" {
			t.Fatalf("unexpected lines %+v", res.Lines)
		}
		if !res.Total.Equal(decimal.NewFromInt(3)) {
			t.Fatalf("expected total 3, got %s", res.Total)
		}
	})
}
