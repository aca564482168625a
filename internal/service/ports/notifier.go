package ports

import (
	"context"

	"github.com/trainops/coursedesk/internal/domain"
)

// Notifier is a best-effort side channel. Implementations log failures
// and never propagate them; a committed booking or ledger change is
// never rolled back because a notification could not be delivered.
type Notifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking, recipients []string)
	NotifyEntitlementExpiry(ctx context.Context, o *domain.LPOOrder, recipients []string, daysLeft int)
}
