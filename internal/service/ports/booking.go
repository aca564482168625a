package ports

import (
	"context"

	"github.com/trainops/coursedesk/internal/domain"
)

type BookingRepo interface {
	// Create persists the booking, its customer rows, and every
	// LPO-backed entitlement decrement in one transaction, allocating the
	// next course number from the per-(type, year) sequence. On any
	// failure the whole transaction rolls back; no partial booking is
	// ever visible.
	Create(ctx context.Context, b *domain.Booking, customers []domain.CustomerSeats) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListCustomers(ctx context.Context, bookingID string) ([]*domain.BookingCustomer, error)
	ListByCenter(ctx context.Context, cctx domain.CenterContext) ([]*domain.Booking, error)
	// UpdateStatus performs a conditional update guarded on the current
	// status; a lost race surfaces as domain.ErrConcurrencyConflict.
	UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) error
	// Cancel credits back every LPO-backed customer allocation and marks
	// the booking cancelled in one transaction. Re-cancelling returns
	// domain.ErrInvalidStatusTransition without touching the ledger.
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
}
