package ports

import (
	"context"
	"time"

	"github.com/trainops/coursedesk/internal/domain"
)

type LedgerRepo interface {
	CreateOrder(ctx context.Context, o *domain.LPOOrder) error
	GetOrder(ctx context.Context, id string) (*domain.LPOOrder, error)
	GetOrderDetails(ctx context.Context, id string) (*domain.OrderDetails, error)
	ListOrders(ctx context.Context) ([]*domain.LPOOrder, error)
	// AddLineItem inserts the line item and bumps the parent order's
	// total by quantity * unit price in one transaction.
	AddLineItem(ctx context.Context, li *domain.LPOLineItem) error
	GetLineItem(ctx context.Context, id string) (*domain.LPOLineItem, error)
	// UseQuantity atomically decrements remaining / increments used,
	// guarded on remaining >= qty, and appends a usage record. A failed
	// guard returns domain.ErrInsufficientEntitlement with no change.
	UseQuantity(ctx context.Context, lineItemID string, qty int, bookingID *string) error
	// CreditBack is the inverse of UseQuantity, guarded on used >= qty.
	CreditBack(ctx context.Context, lineItemID string, qty int, bookingID *string) error
	// DeriveOrderStatus recomputes the cached order status from the
	// line-item quantity sums and returns the derived value.
	DeriveOrderStatus(ctx context.Context, orderID string) (domain.OrderStatus, error)
	// ScanExpiring returns orders whose valid_until is exactly
	// thresholdDays after asOf, still usable, and not yet notified on
	// asOf's calendar day.
	ScanExpiring(ctx context.Context, asOf time.Time, thresholdDays int) ([]*domain.LPOOrder, error)
	// LogNotification records the notification attempt that makes
	// ScanExpiring idempotent for the rest of the calendar day.
	LogNotification(ctx context.Context, orderID, notificationType string, day time.Time) error
}
