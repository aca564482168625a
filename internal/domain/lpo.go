package domain

import "time"

type OrderStatus string

const (
	OrderStatusConfirmed     OrderStatus = "confirmed"
	OrderStatusPartiallyUsed OrderStatus = "partially_used"
	OrderStatusFullyUsed     OrderStatus = "fully_used"
	OrderStatusCancelled     OrderStatus = "cancelled"
)

// LPOOrder is a customer's prepaid purchase order. Status is always
// derived from the line items; the stored column is only a denormalized
// cache kept consistent on every quantity mutation.
type LPOOrder struct {
	ID               string      `json:"id"`
	CustomerID       string      `json:"customer_id"`
	CreatedByCenter  string      `json:"created_by_center_id"`
	Status           OrderStatus `json:"status"`
	ValidUntil       time.Time   `json:"valid_until"`
	TotalAmountCents int64       `json:"total_amount_cents"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// Expired reports whether the order is no longer usable as of the given
// calendar day.
func (o *LPOOrder) Expired(asOf time.Time) bool {
	return DateOnly(o.ValidUntil).Before(DateOnly(asOf))
}

type LineItemStatus string

const (
	LineItemActive        LineItemStatus = "active"
	LineItemPartiallyUsed LineItemStatus = "partially_used"
	LineItemFullyUsed     LineItemStatus = "fully_used"
)

// LPOLineItem is one (category, level) entitlement slice of an order.
// Invariant, with no exceptions: QuantityRemaining + QuantityUsed ==
// QuantityOrdered and QuantityRemaining >= 0. Quantities change only via
// use/credit-back, both implemented as guarded conditional updates.
type LPOLineItem struct {
	ID                string    `json:"id"`
	OrderID           string    `json:"order_id"`
	CategoryID        string    `json:"category_id"`
	LevelID           string    `json:"level_id"`
	QuantityOrdered   int       `json:"quantity_ordered"`
	QuantityRemaining int       `json:"quantity_remaining"`
	QuantityUsed      int       `json:"quantity_used"`
	UnitPriceCents    int64     `json:"unit_price_cents"`
	CreatedAt         time.Time `json:"created_at"`
}

// Status derives the line-item state from its quantities.
func (li *LPOLineItem) Status() LineItemStatus {
	switch {
	case li.QuantityRemaining == 0:
		return LineItemFullyUsed
	case li.QuantityRemaining < li.QuantityOrdered:
		return LineItemPartiallyUsed
	default:
		return LineItemActive
	}
}

type UsageKind string

const (
	UsageConsumed   UsageKind = "consumed"
	UsageCreditBack UsageKind = "credit_back"
)

// LPOUsageRecord is the append-only audit trail of every consumption and
// credit-back against a line item. Rows are only ever inserted.
type LPOUsageRecord struct {
	ID                   string    `json:"id"`
	LineItemID           string    `json:"line_item_id"`
	BookingID            *string   `json:"booking_id,omitempty"`
	Kind                 UsageKind `json:"kind"`
	QuantityBooked       int       `json:"quantity_booked"`
	QuantityAttended     int       `json:"quantity_attended"`
	QuantityPassed       int       `json:"quantity_passed"`
	QuantityFailed       int       `json:"quantity_failed"`
	QuantityNoShow       int       `json:"quantity_no_show"`
	QuantityCreditedBack int       `json:"quantity_credited_back"`
	CreatedAt            time.Time `json:"created_at"`
}

type AllocateLineItemInput struct {
	CategoryID     string
	LevelID        string
	Quantity       int
	UnitPriceCents int64
}

type CreateOrderInput struct {
	CustomerID string
	ValidUntil time.Time
}

// NotificationTypeExpiry keys the same-day idempotency log for expiry
// notifications: one row per (order, type, calendar day).
const NotificationTypeExpiry = "entitlement_expiry"

// OrderDetails bundles an order with its line items and usage history
// for the head-center detail view.
type OrderDetails struct {
	Order     LPOOrder         `json:"order"`
	LineItems []LPOLineItem    `json:"line_items"`
	Usage     []LPOUsageRecord `json:"usage"`
}
