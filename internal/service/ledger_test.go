package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trainops/coursedesk/internal/domain"
	"github.com/trainops/coursedesk/internal/service/ports/mocks"
)

type ledgerMocks struct {
	ledgerRepo  *mocks.MockLedgerRepo
	catalogRepo *mocks.MockCatalogRepo
	notifier    *mocks.MockNotifier
}

func newLedgerService(t *testing.T) (*LedgerService, ledgerMocks) {
	m := ledgerMocks{
		ledgerRepo:  mocks.NewMockLedgerRepo(t),
		catalogRepo: mocks.NewMockCatalogRepo(t),
		notifier:    mocks.NewMockNotifier(t),
	}
	svc := NewLedgerService(
		m.ledgerRepo, m.catalogRepo, m.notifier,
		[]string{"backoffice@example.com"}, newTestLogger(t),
	)
	return svc, m
}

func TestLedgerService_CreateOrder_Success(t *testing.T) {
	svc, m := newLedgerService(t)

	validUntil := domain.DateOnly(time.Now().UTC()).AddDate(0, 6, 0)
	m.ledgerRepo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil)

	order, err := svc.CreateOrder(context.Background(), headCtx, domain.CreateOrderInput{
		CustomerID: "cust-1",
		ValidUntil: validUntil,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusConfirmed, order.Status)
	assert.Equal(t, "head", order.CreatedByCenter)
	assert.Equal(t, validUntil, order.ValidUntil)
	assert.NotEmpty(t, order.ID)
}

func TestLedgerService_CreateOrder_BranchForbidden(t *testing.T) {
	svc, _ := newLedgerService(t)

	_, err := svc.CreateOrder(context.Background(), branchCtx, domain.CreateOrderInput{
		CustomerID: "cust-1",
		ValidUntil: time.Now().UTC().AddDate(1, 0, 0),
	})

	assert.ErrorIs(t, err, domain.ErrCenterNotPermitted)
}

func TestLedgerService_CreateOrder_Validation(t *testing.T) {
	svc, _ := newLedgerService(t)

	_, err := svc.CreateOrder(context.Background(), headCtx, domain.CreateOrderInput{
		ValidUntil: time.Now().UTC().AddDate(1, 0, 0),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.CreateOrder(context.Background(), headCtx, domain.CreateOrderInput{
		CustomerID: "cust-1",
		ValidUntil: time.Now().UTC().AddDate(0, 0, -2),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLedgerService_AllocateLineItem_Success(t *testing.T) {
	svc, m := newLedgerService(t)

	m.ledgerRepo.EXPECT().GetOrder(mock.Anything, "ord-1").Return(&domain.LPOOrder{ID: "ord-1"}, nil)
	m.catalogRepo.EXPECT().GetLevel(mock.Anything, "cat-1", "lvl-1").
		Return(&domain.CourseCategoryLevel{ID: "lvl-1"}, nil)
	m.ledgerRepo.EXPECT().AddLineItem(mock.Anything, mock.Anything).Return(nil)

	li, err := svc.AllocateLineItem(context.Background(), headCtx, "ord-1", domain.AllocateLineItemInput{
		CategoryID:     "cat-1",
		LevelID:        "lvl-1",
		Quantity:       20,
		UnitPriceCents: 150_00,
	})

	require.NoError(t, err)
	assert.Equal(t, 20, li.QuantityOrdered)
	assert.Equal(t, 20, li.QuantityRemaining)
	assert.Equal(t, 0, li.QuantityUsed)
	assert.Equal(t, domain.LineItemActive, li.Status())
}

func TestLedgerService_AllocateLineItem_Validation(t *testing.T) {
	svc, _ := newLedgerService(t)

	_, err := svc.AllocateLineItem(context.Background(), headCtx, "ord-1", domain.AllocateLineItemInput{
		CategoryID: "cat-1", LevelID: "lvl-1", Quantity: 0,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.AllocateLineItem(context.Background(), headCtx, "ord-1", domain.AllocateLineItemInput{
		CategoryID: "cat-1", LevelID: "lvl-1", Quantity: 5, UnitPriceCents: -1,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.AllocateLineItem(context.Background(), branchCtx, "ord-1", domain.AllocateLineItemInput{
		CategoryID: "cat-1", LevelID: "lvl-1", Quantity: 5,
	})
	assert.ErrorIs(t, err, domain.ErrCenterNotPermitted)
}

func TestLedgerService_OrderVisibility_HeadOnly(t *testing.T) {
	svc, _ := newLedgerService(t)

	_, err := svc.GetOrder(context.Background(), branchCtx, "ord-1")
	assert.ErrorIs(t, err, domain.ErrCenterNotPermitted)

	_, err = svc.ListOrders(context.Background(), branchCtx)
	assert.ErrorIs(t, err, domain.ErrCenterNotPermitted)
}

func TestLedgerService_UseQuantity_RejectsNonPositive(t *testing.T) {
	svc, _ := newLedgerService(t)

	err := svc.UseQuantity(context.Background(), "li-1", 0, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = svc.CreditBack(context.Background(), "li-1", -3, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLedgerService_NotifyExpiring_SendsAndLogs(t *testing.T) {
	svc, m := newLedgerService(t)

	asOf := time.Date(2024, time.July, 1, 9, 0, 0, 0, time.UTC)
	orders := []*domain.LPOOrder{
		{ID: "ord-1", CustomerID: "cust-1"},
		{ID: "ord-2", CustomerID: "cust-2"},
	}

	m.ledgerRepo.EXPECT().ScanExpiring(mock.Anything, asOf, 15).Return(orders, nil)
	m.ledgerRepo.EXPECT().LogNotification(mock.Anything, "ord-1", domain.NotificationTypeExpiry, asOf).Return(nil)
	m.ledgerRepo.EXPECT().LogNotification(mock.Anything, "ord-2", domain.NotificationTypeExpiry, asOf).Return(nil)
	m.notifier.EXPECT().NotifyEntitlementExpiry(mock.Anything, orders[0], mock.Anything, 15).Return()
	m.notifier.EXPECT().NotifyEntitlementExpiry(mock.Anything, orders[1], mock.Anything, 15).Return()

	notified, err := svc.NotifyExpiring(context.Background(), asOf, 15)

	require.NoError(t, err)
	assert.Len(t, notified, 2)
}

func TestLedgerService_NotifyExpiring_SkipsAlreadyLogged(t *testing.T) {
	svc, m := newLedgerService(t)

	asOf := time.Date(2024, time.July, 1, 9, 0, 0, 0, time.UTC)
	orders := []*domain.LPOOrder{
		{ID: "ord-1"},
		{ID: "ord-2"},
	}

	m.ledgerRepo.EXPECT().ScanExpiring(mock.Anything, asOf, 15).Return(orders, nil)
	// ord-1 was already logged by a concurrent run; only ord-2 goes out.
	m.ledgerRepo.EXPECT().LogNotification(mock.Anything, "ord-1", domain.NotificationTypeExpiry, asOf).
		Return(domain.ErrConcurrencyConflict)
	m.ledgerRepo.EXPECT().LogNotification(mock.Anything, "ord-2", domain.NotificationTypeExpiry, asOf).Return(nil)
	m.notifier.EXPECT().NotifyEntitlementExpiry(mock.Anything, orders[1], mock.Anything, 15).Return()

	notified, err := svc.NotifyExpiring(context.Background(), asOf, 15)

	require.NoError(t, err)
	require.Len(t, notified, 1)
	assert.Equal(t, "ord-2", notified[0].ID)
}

func TestLedgerService_NotifyExpiring_NothingDue(t *testing.T) {
	svc, m := newLedgerService(t)

	asOf := time.Now().UTC()
	m.ledgerRepo.EXPECT().ScanExpiring(mock.Anything, asOf, 15).Return(nil, nil)

	notified, err := svc.NotifyExpiring(context.Background(), asOf, 15)

	require.NoError(t, err)
	assert.Empty(t, notified)
}
