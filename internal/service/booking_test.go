package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trainops/coursedesk/internal/domain"
	"github.com/trainops/coursedesk/internal/service/ports/mocks"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// futureWeekday returns a weekday at least a week out, so start-date
// validation never trips on "in the past" or "weekend".
func futureWeekday() time.Time {
	d := domain.DateOnly(time.Now().UTC()).AddDate(0, 0, 7)
	for domain.IsWeekend(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func futureSaturday() time.Time {
	d := domain.DateOnly(time.Now().UTC()).AddDate(0, 0, 7)
	for d.Weekday() != time.Saturday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

type bookingMocks struct {
	bookingRepo    *mocks.MockBookingRepo
	catalogRepo    *mocks.MockCatalogRepo
	instructorRepo *mocks.MockInstructorRepo
	ledgerRepo     *mocks.MockLedgerRepo
	notifier       *mocks.MockNotifier
}

func newBookingService(t *testing.T) (*BookingService, bookingMocks) {
	m := bookingMocks{
		bookingRepo:    mocks.NewMockBookingRepo(t),
		catalogRepo:    mocks.NewMockCatalogRepo(t),
		instructorRepo: mocks.NewMockInstructorRepo(t),
		ledgerRepo:     mocks.NewMockLedgerRepo(t),
		notifier:       mocks.NewMockNotifier(t),
	}
	svc := NewBookingService(
		m.bookingRepo, m.catalogRepo, m.instructorRepo, m.ledgerRepo,
		m.notifier, []string{"ops@example.com"}, newTestLogger(t),
	)
	return svc, m
}

var (
	headCtx   = domain.CenterContext{CenterID: "head", Scope: domain.ScopeHead}
	branchCtx = domain.CenterContext{CenterID: "branch-1", Scope: domain.ScopeBranch}
)

func validInput() domain.CreateBookingInput {
	return domain.CreateBookingInput{
		CourseType:           domain.CourseTypeInternational,
		CategoryID:           "cat-1",
		LevelID:              "lvl-1",
		DeliveryMode:         domain.DeliveryOnSite,
		StartDate:            futureWeekday(),
		ActualInstructorID:   "ins-1",
		DocumentInstructorID: "ins-2",
		Customers: []domain.CustomerSeats{
			{CustomerID: "cust-1", ParticipantsCount: 5},
		},
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	svc, m := newBookingService(t)

	category := &domain.CourseCategory{ID: "cat-1", DurationDays: 5, MaxParticipants: 12}
	level := &domain.CourseCategoryLevel{ID: "lvl-1", CategoryID: "cat-1", Ordinal: 1}

	m.catalogRepo.EXPECT().GetCategory(mock.Anything, "cat-1").Return(category, nil)
	m.catalogRepo.EXPECT().GetLevel(mock.Anything, "cat-1", "lvl-1").Return(level, nil)
	m.instructorRepo.EXPECT().GetByID(mock.Anything, "ins-1").Return(&domain.Instructor{ID: "ins-1"}, nil)
	m.instructorRepo.EXPECT().GetByID(mock.Anything, "ins-2").Return(&domain.Instructor{ID: "ins-2"}, nil)
	m.instructorRepo.EXPECT().CountConflicts(mock.Anything, "ins-1", mock.Anything, mock.Anything, "").Return(0, nil)
	m.instructorRepo.EXPECT().CountConflicts(mock.Anything, "ins-2", mock.Anything, mock.Anything, "").Return(0, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, b *domain.Booking, _ []domain.CustomerSeats) (*domain.Booking, error) {
			created := *b
			created.CourseNumber = "I-001"
			return &created, nil
		})
	m.notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, mock.Anything).Return()

	booking, err := svc.Create(context.Background(), branchCtx, validInput())

	require.NoError(t, err)
	assert.Equal(t, "I-001", booking.CourseNumber)
	assert.Equal(t, domain.BookingStatusNotStarted, booking.Status)
	assert.Equal(t, "branch-1", booking.CreatedByCenterID)
	assert.Equal(t, 5, booking.DurationDays)
	assert.Equal(t, 12, booking.MaxParticipants)
	// Five weekdays starting on a weekday: end never before start.
	assert.False(t, booking.EndDate.Before(booking.StartDate))

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_SameInstructorBothRoles(t *testing.T) {
	svc, m := newBookingService(t)

	input := validInput()
	input.DocumentInstructorID = input.ActualInstructorID

	m.catalogRepo.EXPECT().GetCategory(mock.Anything, "cat-1").
		Return(&domain.CourseCategory{ID: "cat-1", DurationDays: 3, MaxParticipants: 10}, nil)
	m.catalogRepo.EXPECT().GetLevel(mock.Anything, "cat-1", "lvl-1").
		Return(&domain.CourseCategoryLevel{ID: "lvl-1"}, nil)
	// A single instructor in both roles is checked exactly once.
	m.instructorRepo.EXPECT().GetByID(mock.Anything, "ins-1").Return(&domain.Instructor{ID: "ins-1"}, nil).Times(1)
	m.instructorRepo.EXPECT().CountConflicts(mock.Anything, "ins-1", mock.Anything, mock.Anything, "").Return(0, nil).Times(1)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, b *domain.Booking, _ []domain.CustomerSeats) (*domain.Booking, error) {
			return b, nil
		})
	m.notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, mock.Anything).Return()

	_, err := svc.Create(context.Background(), branchCtx, input)

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Create_ValidationErrors(t *testing.T) {
	svc, _ := newBookingService(t)

	tests := []struct {
		name   string
		mutate func(*domain.CreateBookingInput)
	}{
		{"unknown course type", func(in *domain.CreateBookingInput) { in.CourseType = "regional" }},
		{"missing category", func(in *domain.CreateBookingInput) { in.CategoryID = "" }},
		{"missing level", func(in *domain.CreateBookingInput) { in.LevelID = "" }},
		{"unknown delivery mode", func(in *domain.CreateBookingInput) { in.DeliveryMode = "hybrid" }},
		{"missing actual instructor", func(in *domain.CreateBookingInput) { in.ActualInstructorID = "" }},
		{"missing document instructor", func(in *domain.CreateBookingInput) { in.DocumentInstructorID = "" }},
		{"no customers", func(in *domain.CreateBookingInput) { in.Customers = nil }},
		{"zero participants", func(in *domain.CreateBookingInput) {
			in.Customers = []domain.CustomerSeats{{CustomerID: "c1", ParticipantsCount: 0}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			_, err := svc.Create(context.Background(), headCtx, input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBookingService_Create_DomesticRequiresHeadCenter(t *testing.T) {
	svc, _ := newBookingService(t)

	input := validInput()
	input.CourseType = domain.CourseTypeDomestic

	_, err := svc.Create(context.Background(), branchCtx, input)

	assert.ErrorIs(t, err, domain.ErrCenterNotPermitted)
}

func TestBookingService_Create_WeekendStartRejected(t *testing.T) {
	svc, m := newBookingService(t)

	input := validInput()
	input.StartDate = futureSaturday()

	m.catalogRepo.EXPECT().GetCategory(mock.Anything, "cat-1").
		Return(&domain.CourseCategory{ID: "cat-1", DurationDays: 5, MaxParticipants: 12}, nil)
	m.catalogRepo.EXPECT().GetLevel(mock.Anything, "cat-1", "lvl-1").
		Return(&domain.CourseCategoryLevel{ID: "lvl-1"}, nil)

	_, err := svc.Create(context.Background(), branchCtx, input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_PastStartRejected(t *testing.T) {
	svc, m := newBookingService(t)

	input := validInput()
	input.StartDate = domain.DateOnly(time.Now().UTC()).AddDate(0, 0, -14)

	m.catalogRepo.EXPECT().GetCategory(mock.Anything, "cat-1").
		Return(&domain.CourseCategory{ID: "cat-1", DurationDays: 5, MaxParticipants: 12}, nil)
	m.catalogRepo.EXPECT().GetLevel(mock.Anything, "cat-1", "lvl-1").
		Return(&domain.CourseCategoryLevel{ID: "lvl-1"}, nil)

	_, err := svc.Create(context.Background(), branchCtx, input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_InstructorConflict(t *testing.T) {
	svc, m := newBookingService(t)

	m.catalogRepo.EXPECT().GetCategory(mock.Anything, "cat-1").
		Return(&domain.CourseCategory{ID: "cat-1", DurationDays: 5, MaxParticipants: 12}, nil)
	m.catalogRepo.EXPECT().GetLevel(mock.Anything, "cat-1", "lvl-1").
		Return(&domain.CourseCategoryLevel{ID: "lvl-1"}, nil)
	m.instructorRepo.EXPECT().GetByID(mock.Anything, "ins-1").Return(&domain.Instructor{ID: "ins-1"}, nil)
	m.instructorRepo.EXPECT().CountConflicts(mock.Anything, "ins-1", mock.Anything, mock.Anything, "").Return(2, nil)

	_, err := svc.Create(context.Background(), branchCtx, validInput())

	assert.ErrorIs(t, err, domain.ErrInstructorConflict)
}

func TestBookingService_Create_CapacityExceeded(t *testing.T) {
	svc, m := newBookingService(t)

	input := validInput()
	input.Customers = []domain.CustomerSeats{
		{CustomerID: "cust-1", ParticipantsCount: 8},
		{CustomerID: "cust-2", ParticipantsCount: 7},
	}

	m.catalogRepo.EXPECT().GetCategory(mock.Anything, "cat-1").
		Return(&domain.CourseCategory{ID: "cat-1", DurationDays: 5, MaxParticipants: 12}, nil)
	m.catalogRepo.EXPECT().GetLevel(mock.Anything, "cat-1", "lvl-1").
		Return(&domain.CourseCategoryLevel{ID: "lvl-1"}, nil)
	m.instructorRepo.EXPECT().GetByID(mock.Anything, mock.Anything).Return(&domain.Instructor{}, nil)
	m.instructorRepo.EXPECT().CountConflicts(mock.Anything, mock.Anything, mock.Anything, mock.Anything, "").Return(0, nil)

	_, err := svc.Create(context.Background(), branchCtx, input)

	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestBookingService_Create_InsufficientEntitlement(t *testing.T) {
	svc, m := newBookingService(t)

	liID := "li-1"
	input := validInput()
	input.Customers = []domain.CustomerSeats{
		{CustomerID: "cust-1", ParticipantsCount: 5, LPOLineItemID: &liID},
	}

	m.catalogRepo.EXPECT().GetCategory(mock.Anything, "cat-1").
		Return(&domain.CourseCategory{ID: "cat-1", DurationDays: 5, MaxParticipants: 12}, nil)
	m.catalogRepo.EXPECT().GetLevel(mock.Anything, "cat-1", "lvl-1").
		Return(&domain.CourseCategoryLevel{ID: "lvl-1"}, nil)
	m.instructorRepo.EXPECT().GetByID(mock.Anything, mock.Anything).Return(&domain.Instructor{}, nil)
	m.instructorRepo.EXPECT().CountConflicts(mock.Anything, mock.Anything, mock.Anything, mock.Anything, "").Return(0, nil)
	m.ledgerRepo.EXPECT().GetLineItem(mock.Anything, liID).Return(&domain.LPOLineItem{
		ID:                liID,
		OrderID:           "ord-1",
		CategoryID:        "cat-1",
		LevelID:           "lvl-1",
		QuantityOrdered:   10,
		QuantityRemaining: 3,
		QuantityUsed:      7,
	}, nil)

	_, err := svc.Create(context.Background(), branchCtx, input)

	assert.ErrorIs(t, err, domain.ErrInsufficientEntitlement)
}

func TestBookingService_Create_ExpiredEntitlement(t *testing.T) {
	svc, m := newBookingService(t)

	liID := "li-1"
	input := validInput()
	input.Customers = []domain.CustomerSeats{
		{CustomerID: "cust-1", ParticipantsCount: 2, LPOLineItemID: &liID},
	}

	m.catalogRepo.EXPECT().GetCategory(mock.Anything, "cat-1").
		Return(&domain.CourseCategory{ID: "cat-1", DurationDays: 5, MaxParticipants: 12}, nil)
	m.catalogRepo.EXPECT().GetLevel(mock.Anything, "cat-1", "lvl-1").
		Return(&domain.CourseCategoryLevel{ID: "lvl-1"}, nil)
	m.instructorRepo.EXPECT().GetByID(mock.Anything, mock.Anything).Return(&domain.Instructor{}, nil)
	m.instructorRepo.EXPECT().CountConflicts(mock.Anything, mock.Anything, mock.Anything, mock.Anything, "").Return(0, nil)
	m.ledgerRepo.EXPECT().GetLineItem(mock.Anything, liID).Return(&domain.LPOLineItem{
		ID:                liID,
		OrderID:           "ord-1",
		CategoryID:        "cat-1",
		LevelID:           "lvl-1",
		QuantityOrdered:   10,
		QuantityRemaining: 10,
	}, nil)
	m.ledgerRepo.EXPECT().GetOrder(mock.Anything, "ord-1").Return(&domain.LPOOrder{
		ID:         "ord-1",
		ValidUntil: domain.DateOnly(time.Now().UTC()).AddDate(0, 0, -1),
	}, nil)

	_, err := svc.Create(context.Background(), branchCtx, input)

	assert.ErrorIs(t, err, domain.ErrExpiredEntitlement)
}

func TestBookingService_Create_LineItemCategoryMismatch(t *testing.T) {
	svc, m := newBookingService(t)

	liID := "li-1"
	input := validInput()
	input.Customers = []domain.CustomerSeats{
		{CustomerID: "cust-1", ParticipantsCount: 2, LPOLineItemID: &liID},
	}

	m.catalogRepo.EXPECT().GetCategory(mock.Anything, "cat-1").
		Return(&domain.CourseCategory{ID: "cat-1", DurationDays: 5, MaxParticipants: 12}, nil)
	m.catalogRepo.EXPECT().GetLevel(mock.Anything, "cat-1", "lvl-1").
		Return(&domain.CourseCategoryLevel{ID: "lvl-1"}, nil)
	m.instructorRepo.EXPECT().GetByID(mock.Anything, mock.Anything).Return(&domain.Instructor{}, nil)
	m.instructorRepo.EXPECT().CountConflicts(mock.Anything, mock.Anything, mock.Anything, mock.Anything, "").Return(0, nil)
	m.ledgerRepo.EXPECT().GetLineItem(mock.Anything, liID).Return(&domain.LPOLineItem{
		ID:                liID,
		OrderID:           "ord-1",
		CategoryID:        "other-cat",
		LevelID:           "lvl-1",
		QuantityRemaining: 10,
	}, nil)

	_, err := svc.Create(context.Background(), branchCtx, input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// Declared participants_count is the unit of capacity and entitlement
// accounting: a booking filling capacity and a line item exactly is
// accepted on the declarations alone, and once created nothing
// re-validates the seat counts. Candidates attached to those seats later
// are a soft fill against the declaration.
func TestBookingService_DeclaredSeatsAreTheAccountingUnit(t *testing.T) {
	svc, m := newBookingService(t)

	liID := "li-1"
	input := validInput()
	input.Customers = []domain.CustomerSeats{
		{CustomerID: "cust-1", ParticipantsCount: 7, LPOLineItemID: &liID},
		{CustomerID: "cust-2", ParticipantsCount: 5},
	}

	m.catalogRepo.EXPECT().GetCategory(mock.Anything, "cat-1").
		Return(&domain.CourseCategory{ID: "cat-1", DurationDays: 5, MaxParticipants: 12}, nil)
	m.catalogRepo.EXPECT().GetLevel(mock.Anything, "cat-1", "lvl-1").
		Return(&domain.CourseCategoryLevel{ID: "lvl-1"}, nil)
	m.instructorRepo.EXPECT().GetByID(mock.Anything, mock.Anything).Return(&domain.Instructor{}, nil)
	m.instructorRepo.EXPECT().CountConflicts(mock.Anything, mock.Anything, mock.Anything, mock.Anything, "").Return(0, nil)
	m.ledgerRepo.EXPECT().GetLineItem(mock.Anything, liID).Return(&domain.LPOLineItem{
		ID:                liID,
		OrderID:           "ord-1",
		CategoryID:        "cat-1",
		LevelID:           "lvl-1",
		QuantityOrdered:   10,
		QuantityRemaining: 7,
		QuantityUsed:      3,
	}, nil)
	m.ledgerRepo.EXPECT().GetOrder(mock.Anything, "ord-1").Return(&domain.LPOOrder{
		ID:         "ord-1",
		ValidUntil: domain.DateOnly(time.Now().UTC()).AddDate(1, 0, 0),
	}, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, b *domain.Booking, seats []domain.CustomerSeats) (*domain.Booking, error) {
			// The declared counts flow through to the write untouched.
			require.Len(t, seats, 2)
			assert.Equal(t, 7, seats[0].ParticipantsCount)
			assert.Equal(t, 5, seats[1].ParticipantsCount)
			b.ID = "b1"
			return b, nil
		})
	m.notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, mock.Anything).Return()

	booking, err := svc.Create(context.Background(), branchCtx, input)
	require.NoError(t, err)
	assert.Equal(t, 12, input.TotalParticipants())

	// Moving the booking forward consults only the status. No catalog,
	// instructor, or ledger expectation is registered here, so any
	// re-check of the declared seats would fail this test.
	m.bookingRepo.EXPECT().GetByID(mock.Anything, booking.ID).Return(booking, nil)
	m.bookingRepo.EXPECT().UpdateStatus(mock.Anything, booking.ID, domain.BookingStatusNotStarted, domain.BookingStatusInProgress).Return(nil)

	require.NoError(t, svc.UpdateStatus(context.Background(), booking.ID, domain.BookingStatusInProgress))

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_ConcurrentInstructorConflictSurfaced(t *testing.T) {
	svc, m := newBookingService(t)

	m.catalogRepo.EXPECT().GetCategory(mock.Anything, "cat-1").
		Return(&domain.CourseCategory{ID: "cat-1", DurationDays: 5, MaxParticipants: 12}, nil)
	m.catalogRepo.EXPECT().GetLevel(mock.Anything, "cat-1", "lvl-1").
		Return(&domain.CourseCategoryLevel{ID: "lvl-1"}, nil)
	m.instructorRepo.EXPECT().GetByID(mock.Anything, mock.Anything).Return(&domain.Instructor{}, nil)
	m.instructorRepo.EXPECT().CountConflicts(mock.Anything, mock.Anything, mock.Anything, mock.Anything, "").Return(0, nil)
	// The pre-check saw a free calendar, but the in-transaction re-count
	// found a create that committed in between.
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrInstructorConflict)

	_, err := svc.Create(context.Background(), branchCtx, validInput())

	assert.ErrorIs(t, err, domain.ErrInstructorConflict)
}

func TestBookingService_UpdateStatus_Allowed(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.Booking{
		ID:     "b1",
		Status: domain.BookingStatusNotStarted,
	}, nil)
	m.bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusNotStarted, domain.BookingStatusInProgress).Return(nil)

	err := svc.UpdateStatus(context.Background(), "b1", domain.BookingStatusInProgress)

	require.NoError(t, err)
}

func TestBookingService_UpdateStatus_InvalidTransition(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.Booking{
		ID:     "b1",
		Status: domain.BookingStatusCompleted,
	}, nil)

	err := svc.UpdateStatus(context.Background(), "b1", domain.BookingStatusInProgress)

	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
}

func TestBookingService_UpdateStatus_UnknownStatus(t *testing.T) {
	svc, _ := newBookingService(t)

	err := svc.UpdateStatus(context.Background(), "b1", domain.BookingStatus("archived"))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_UpdateStatus_CancelRoutesThroughLedger(t *testing.T) {
	svc, m := newBookingService(t)

	// Cancelling via the status endpoint must hit the cancel path, which
	// is where the ledger credit-back transaction lives.
	m.bookingRepo.EXPECT().Cancel(mock.Anything, "b1").Return(&domain.Booking{
		ID:     "b1",
		Status: domain.BookingStatusCancelled,
	}, nil)

	err := svc.UpdateStatus(context.Background(), "b1", domain.BookingStatusCancelled)

	require.NoError(t, err)
}

func TestBookingService_Cancel_RepoError(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().Cancel(mock.Anything, "b1").
		Return(nil, domain.ErrInvalidStatusTransition)

	_, err := svc.Cancel(context.Background(), "b1")

	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
}

func TestBookingService_GetByID_BranchScope(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{ID: "b1", CreatedByCenterID: "branch-2"}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	// Another branch's booking reads as not found, not as forbidden.
	_, err := svc.GetByID(context.Background(), branchCtx, "b1")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_GetByID_HeadSeesAll(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{ID: "b1", CreatedByCenterID: "branch-2"}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	got, err := svc.GetByID(context.Background(), headCtx, "b1")

	require.NoError(t, err)
	assert.Equal(t, booking, got)
}

func TestBookingService_ListCustomers_ScopedThroughBooking(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").
		Return(nil, errors.New("db down"))

	_, err := svc.ListCustomers(context.Background(), headCtx, "b1")

	assert.Error(t, err)
}
