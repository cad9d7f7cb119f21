package interfaces

import (
	"context"
	"inhouse/internal/domain/entities"
)

// IBookingRepository abstracts DynamoDB persistence for Booking.
//
// Create claims the booking position within its day and fails with
// ErrPositionTaken when the position is already used. Settle attaches an
// invoice and fails with ErrAlreadySettled for settled bookings.

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	Update(ctx context.Context, b entities.Booking) (entities.Booking, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	ListByDay(ctx context.Context, dayID string) ([]entities.Booking, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.Booking, error)
	ListByInvoice(ctx context.Context, invoiceID string) ([]entities.Booking, error)
	ListAll(ctx context.Context) ([]entities.Booking, error)
	Settle(ctx context.Context, bookingID, invoiceID, actor string) (entities.Booking, error)
}
