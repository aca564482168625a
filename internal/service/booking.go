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

// BookingService is the single entry point for booking mutations. It
// validates everything before the first write and delegates the write
// itself to one repository transaction.
type BookingService struct {
	bookingRepo    ports.BookingRepo
	catalogRepo    ports.CatalogRepo
	instructorRepo ports.InstructorRepo
	ledgerRepo     ports.LedgerRepo
	notifier       ports.Notifier
	recipients     []string
	logger         logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	catalogRepo ports.CatalogRepo,
	instructorRepo ports.InstructorRepo,
	ledgerRepo ports.LedgerRepo,
	notifier ports.Notifier,
	recipients []string,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:    bookingRepo,
		catalogRepo:    catalogRepo,
		instructorRepo: instructorRepo,
		ledgerRepo:     ledgerRepo,
		notifier:       notifier,
		recipients:     recipients,
		logger:         logger,
	}
}

func (s *BookingService) Create(ctx context.Context, cctx domain.CenterContext, input domain.CreateBookingInput) (*domain.Booking, error) {
	if err := validateBookingInput(input); err != nil {
		return nil, err
	}

	if input.CourseType == domain.CourseTypeDomestic && !cctx.CanCreateDomestic() {
		return nil, fmt.Errorf("%w: center %s may not create domestic courses", domain.ErrCenterNotPermitted, cctx.CenterID)
	}

	category, err := s.catalogRepo.GetCategory(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if _, err = s.catalogRepo.GetLevel(ctx, input.CategoryID, input.LevelID); err != nil {
		return nil, fmt.Errorf("get level: %w", err)
	}

	start := domain.DateOnly(input.StartDate)
	today := domain.DateOnly(time.Now().UTC())
	if start.Before(today) {
		return nil, fmt.Errorf("%w: start date %s is in the past", domain.ErrValidation, start.Format("2006-01-02"))
	}
	if domain.IsWeekend(start) {
		return nil, fmt.Errorf("%w: start date %s falls on a weekend", domain.ErrValidation, start.Format("2006-01-02"))
	}
	end := domain.AddWeekdays(start, category.DurationDays)

	if err = s.checkInstructors(ctx, input, start, end); err != nil {
		return nil, err
	}

	total := input.TotalParticipants()
	if total > category.MaxParticipants {
		return nil, fmt.Errorf("%w: requested %d seats, capacity %d", domain.ErrCapacityExceeded, total, category.MaxParticipants)
	}

	if err = s.checkEntitlements(ctx, input, today); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:                   uuid.New().String(),
		CourseType:           input.CourseType,
		CategoryID:           input.CategoryID,
		LevelID:              input.LevelID,
		DeliveryMode:         input.DeliveryMode,
		StartDate:            start,
		EndDate:              end,
		DurationDays:         category.DurationDays,
		MaxParticipants:      category.MaxParticipants,
		ActualInstructorID:   input.ActualInstructorID,
		DocumentInstructorID: input.DocumentInstructorID,
		Status:               domain.BookingStatusNotStarted,
		CreatedByCenterID:    cctx.CenterID,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	created, err := s.bookingRepo.Create(ctx, booking, input.Customers)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", created.ID),
		logger.String("course_number", created.CourseNumber),
		logger.String("center_id", cctx.CenterID),
		logger.Int("participants", total),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), created, s.recipients)

	return created, nil
}

func validateBookingInput(input domain.CreateBookingInput) error {
	if !input.CourseType.Valid() {
		return fmt.Errorf("%w: course_type must be domestic or international", domain.ErrValidation)
	}
	if input.CategoryID == "" {
		return fmt.Errorf("%w: category_id is required", domain.ErrValidation)
	}
	if input.LevelID == "" {
		return fmt.Errorf("%w: level_id is required", domain.ErrValidation)
	}
	if !input.DeliveryMode.Valid() {
		return fmt.Errorf("%w: delivery_mode must be on_site or virtual", domain.ErrValidation)
	}
	if input.StartDate.IsZero() {
		return fmt.Errorf("%w: start_date is required", domain.ErrValidation)
	}
	if input.ActualInstructorID == "" {
		return fmt.Errorf("%w: actual_instructor_id is required", domain.ErrValidation)
	}
	if input.DocumentInstructorID == "" {
		return fmt.Errorf("%w: document_instructor_id is required", domain.ErrValidation)
	}
	if len(input.Customers) == 0 {
		return fmt.Errorf("%w: at least one customer is required", domain.ErrValidation)
	}
	for _, c := range input.Customers {
		if c.CustomerID == "" {
			return fmt.Errorf("%w: customer_id is required", domain.ErrValidation)
		}
		if c.ParticipantsCount <= 0 {
			return fmt.Errorf("%w: participants_count must be positive for customer %s", domain.ErrValidation, c.CustomerID)
		}
	}
	return nil
}

func (s *BookingService) checkInstructors(ctx context.Context, input domain.CreateBookingInput, start, end time.Time) error {
	ids := []string{input.ActualInstructorID}
	if input.DocumentInstructorID != input.ActualInstructorID {
		ids = append(ids, input.DocumentInstructorID)
	}

	for _, id := range ids {
		if _, err := s.instructorRepo.GetByID(ctx, id); err != nil {
			return fmt.Errorf("check instructor: %w", err)
		}
		conflicts, err := s.instructorRepo.CountConflicts(ctx, id, start, end, "")
		if err != nil {
			return fmt.Errorf("count conflicts: %w", err)
		}
		if conflicts > 0 {
			return fmt.Errorf("%w: instructor %s has %d overlapping booking(s)", domain.ErrInstructorConflict, id, conflicts)
		}
	}
	return nil
}

// checkEntitlements pre-validates every LPO-backed customer before the
// write. The transaction re-checks balances with a guarded decrement, so
// a concurrent consumer still cannot push a line item negative.
func (s *BookingService) checkEntitlements(ctx context.Context, input domain.CreateBookingInput, today time.Time) error {
	for _, c := range input.Customers {
		if c.LPOLineItemID == nil {
			continue
		}

		li, err := s.ledgerRepo.GetLineItem(ctx, *c.LPOLineItemID)
		if err != nil {
			return fmt.Errorf("get line item: %w", err)
		}
		if li.CategoryID != input.CategoryID || li.LevelID != input.LevelID {
			return fmt.Errorf("%w: line item %s covers a different category/level", domain.ErrValidation, li.ID)
		}
		if li.QuantityRemaining < c.ParticipantsCount {
			return fmt.Errorf("%w: requested %d seats, %d remaining on line item %s",
				domain.ErrInsufficientEntitlement, c.ParticipantsCount, li.QuantityRemaining, li.ID)
		}

		order, err := s.ledgerRepo.GetOrder(ctx, li.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if order.Expired(today) {
			return fmt.Errorf("%w: order %s expired on %s",
				domain.ErrExpiredEntitlement, order.ID, order.ValidUntil.Format("2006-01-02"))
		}
	}
	return nil
}

// UpdateStatus applies the enforced transition table. Transitions to
// cancelled go through Cancel so the ledger credit-back always happens.
func (s *BookingService) UpdateStatus(ctx context.Context, id string, newStatus domain.BookingStatus) error {
	if !newStatus.Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, newStatus)
	}
	if newStatus == domain.BookingStatusCancelled {
		_, err := s.Cancel(ctx, id)
		return err
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}
	if !booking.Status.CanTransitionTo(newStatus) {
		return fmt.Errorf("%w: cannot transition from %s to %s", domain.ErrInvalidStatusTransition, booking.Status, newStatus)
	}

	if err = s.bookingRepo.UpdateStatus(ctx, id, booking.Status, newStatus); err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	s.logger.Info("booking status updated",
		logger.String("booking_id", id),
		logger.String("from", string(booking.Status)),
		logger.String("to", string(newStatus)),
	)

	return nil
}

// Cancel credits every LPO-backed seat allocation back to its line item
// and marks the booking cancelled, all in one transaction. Re-cancelling
// is rejected and never double-credits.
func (s *BookingService) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	cancelled, err := s.bookingRepo.Cancel(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", cancelled.ID),
		logger.String("course_number", cancelled.CourseNumber),
	)

	return cancelled, nil
}

func (s *BookingService) GetByID(ctx context.Context, cctx domain.CenterContext, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !cctx.IsHead() && booking.CreatedByCenterID != cctx.CenterID {
		return nil, domain.ErrBookingNotFound
	}
	return booking, nil
}

func (s *BookingService) ListByCenter(ctx context.Context, cctx domain.CenterContext) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByCenter(ctx, cctx)
}

func (s *BookingService) ListCustomers(ctx context.Context, cctx domain.CenterContext, bookingID string) ([]*domain.BookingCustomer, error) {
	if _, err := s.GetByID(ctx, cctx, bookingID); err != nil {
		return nil, err
	}
	return s.bookingRepo.ListCustomers(ctx, bookingID)
}
