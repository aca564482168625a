package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/trainops/coursedesk/internal/domain"
	"github.com/trainops/coursedesk/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// LedgerService owns the LPO order and line-item lifecycle. Only the
// head center may create or view LPOs; branch centers have zero
// visibility into them.
type LedgerService struct {
	ledgerRepo  ports.LedgerRepo
	catalogRepo ports.CatalogRepo
	notifier    ports.Notifier
	recipients  []string
	logger      logger.Logger
}

func NewLedgerService(
	ledgerRepo ports.LedgerRepo,
	catalogRepo ports.CatalogRepo,
	notifier ports.Notifier,
	recipients []string,
	logger logger.Logger,
) *LedgerService {
	return &LedgerService{
		ledgerRepo:  ledgerRepo,
		catalogRepo: catalogRepo,
		notifier:    notifier,
		recipients:  recipients,
		logger:      logger,
	}
}

func (s *LedgerService) CreateOrder(ctx context.Context, cctx domain.CenterContext, input domain.CreateOrderInput) (*domain.LPOOrder, error) {
	if !cctx.IsHead() {
		return nil, fmt.Errorf("%w: only the head center may create LPO orders", domain.ErrCenterNotPermitted)
	}
	if input.CustomerID == "" {
		return nil, fmt.Errorf("%w: customer_id is required", domain.ErrValidation)
	}
	if input.ValidUntil.IsZero() {
		return nil, fmt.Errorf("%w: valid_until is required", domain.ErrValidation)
	}
	if domain.DateOnly(input.ValidUntil).Before(domain.DateOnly(time.Now().UTC())) {
		return nil, fmt.Errorf("%w: valid_until is in the past", domain.ErrValidation)
	}

	now := time.Now().UTC()
	order := &domain.LPOOrder{
		ID:              uuid.New().String(),
		CustomerID:      input.CustomerID,
		CreatedByCenter: cctx.CenterID,
		Status:          domain.OrderStatusConfirmed,
		ValidUntil:      domain.DateOnly(input.ValidUntil),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.ledgerRepo.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.logger.Info("LPO order created",
		logger.String("order_id", order.ID),
		logger.String("customer_id", order.CustomerID),
	)

	return order, nil
}

// AllocateLineItem adds a (category, level) entitlement slice with
// remaining == ordered and bumps the parent order's total.
func (s *LedgerService) AllocateLineItem(ctx context.Context, cctx domain.CenterContext, orderID string, input domain.AllocateLineItemInput) (*domain.LPOLineItem, error) {
	if !cctx.IsHead() {
		return nil, fmt.Errorf("%w: only the head center may allocate entitlements", domain.ErrCenterNotPermitted)
	}
	if input.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive, got %d", domain.ErrValidation, input.Quantity)
	}
	if input.UnitPriceCents < 0 {
		return nil, fmt.Errorf("%w: unit price must not be negative", domain.ErrValidation)
	}

	if _, err := s.ledgerRepo.GetOrder(ctx, orderID); err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if _, err := s.catalogRepo.GetLevel(ctx, input.CategoryID, input.LevelID); err != nil {
		return nil, fmt.Errorf("check level: %w", err)
	}

	li := &domain.LPOLineItem{
		ID:                uuid.New().String(),
		OrderID:           orderID,
		CategoryID:        input.CategoryID,
		LevelID:           input.LevelID,
		QuantityOrdered:   input.Quantity,
		QuantityRemaining: input.Quantity,
		QuantityUsed:      0,
		UnitPriceCents:    input.UnitPriceCents,
		CreatedAt:         time.Now().UTC(),
	}
	if err := s.ledgerRepo.AddLineItem(ctx, li); err != nil {
		return nil, fmt.Errorf("add line item: %w", err)
	}

	return li, nil
}

func (s *LedgerService) GetOrder(ctx context.Context, cctx domain.CenterContext, id string) (*domain.OrderDetails, error) {
	if !cctx.IsHead() {
		return nil, fmt.Errorf("%w: LPO orders are visible to the head center only", domain.ErrCenterNotPermitted)
	}
	return s.ledgerRepo.GetOrderDetails(ctx, id)
}

func (s *LedgerService) ListOrders(ctx context.Context, cctx domain.CenterContext) ([]*domain.LPOOrder, error) {
	if !cctx.IsHead() {
		return nil, fmt.Errorf("%w: LPO orders are visible to the head center only", domain.ErrCenterNotPermitted)
	}
	return s.ledgerRepo.ListOrders(ctx)
}

// UseQuantity consumes entitlement outside the booking path, e.g.
// post-course reconciliation adjustments.
func (s *LedgerService) UseQuantity(ctx context.Context, lineItemID string, qty int, bookingID *string) error {
	if qty <= 0 {
		return fmt.Errorf("%w: quantity must be positive, got %d", domain.ErrValidation, qty)
	}
	if err := s.ledgerRepo.UseQuantity(ctx, lineItemID, qty, bookingID); err != nil {
		return fmt.Errorf("use quantity: %w", err)
	}
	return nil
}

// CreditBack returns previously consumed quantity, e.g. no-show
// reconciliation after course completion.
func (s *LedgerService) CreditBack(ctx context.Context, lineItemID string, qty int, bookingID *string) error {
	if qty <= 0 {
		return fmt.Errorf("%w: quantity must be positive, got %d", domain.ErrValidation, qty)
	}
	if err := s.ledgerRepo.CreditBack(ctx, lineItemID, qty, bookingID); err != nil {
		return fmt.Errorf("credit back: %w", err)
	}
	return nil
}

// ExpiringOrders is the pure scan: orders whose validity ends exactly
// thresholdDays after asOf and which have not been notified today.
func (s *LedgerService) ExpiringOrders(ctx context.Context, asOf time.Time, thresholdDays int) ([]*domain.LPOOrder, error) {
	return s.ledgerRepo.ScanExpiring(ctx, asOf, thresholdDays)
}

// NotifyExpiring runs the scan, dispatches an expiry notification per
// candidate, and logs each attempt so a re-run on the same calendar day
// sends nothing. Safe to invoke from the scheduler and the ops endpoint
// concurrently.
func (s *LedgerService) NotifyExpiring(ctx context.Context, asOf time.Time, thresholdDays int) ([]*domain.LPOOrder, error) {
	candidates, err := s.ledgerRepo.ScanExpiring(ctx, asOf, thresholdDays)
	if err != nil {
		return nil, fmt.Errorf("scan expiring: %w", err)
	}

	notified := make([]*domain.LPOOrder, 0, len(candidates))
	for _, order := range candidates {
		// Log first: a duplicate log insert means another run got here
		// on the same day, so skip without resending.
		if err := s.ledgerRepo.LogNotification(ctx, order.ID, domain.NotificationTypeExpiry, asOf); err != nil {
			s.logger.Error("failed to log expiry notification",
				logger.String("order_id", order.ID),
				logger.String("error", err.Error()),
			)
			continue
		}

		s.notifier.NotifyEntitlementExpiry(ctx, order, s.recipients, thresholdDays)
		notified = append(notified, order)
	}

	if len(notified) > 0 {
		s.logger.Info("expiry notifications dispatched",
			logger.Int("count", len(notified)),
		)
	}

	return notified, nil
}
