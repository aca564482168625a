package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/trainops/coursedesk/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create performs the whole booking write as one transaction: course
// number from the per-(type, year) sequence, the booking row, one row
// per customer, and a guarded entitlement decrement for every
// LPO-backed customer. Any failure rolls everything back.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking, customers []domain.CustomerSeats) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// The upsert takes a row lock on the counter, so concurrent inserts
	// for the same (type, year) serialize and numbers stay gap-free.
	seqQuery := `INSERT INTO course_number_sequences (course_type, year, counter)
				 VALUES ($1, $2, 1)
				 ON CONFLICT (course_type, year)
				 DO UPDATE SET counter = course_number_sequences.counter + 1
				 RETURNING counter`
	var seq int
	if err = tx.QueryRowContext(ctx, seqQuery, b.CourseType, b.StartDate.Year()).Scan(&seq); err != nil {
		return nil, fmt.Errorf("allocate course number: %w", mapLockErr(err))
	}
	b.CourseNumber = domain.FormatCourseNumber(b.CourseType, seq)

	// The service pre-checks conflicts before the transaction starts, but
	// two concurrent creates could both pass that check. Locking the
	// instructor rows serializes creates per instructor, which makes the
	// re-count below race-free.
	instructorIDs := []string{b.ActualInstructorID}
	if b.DocumentInstructorID != b.ActualInstructorID {
		instructorIDs = append(instructorIDs, b.DocumentInstructorID)
	}
	lockQuery := `SELECT id FROM instructors WHERE id = ANY($1) FOR UPDATE`
	if _, err = tx.ExecContext(ctx, lockQuery, pq.Array(instructorIDs)); err != nil {
		return nil, fmt.Errorf("lock instructors: %w", mapLockErr(err))
	}

	conflictQuery := `SELECT COUNT(*) FROM course_bookings
					  WHERE (actual_instructor_id = ANY($1) OR document_instructor_id = ANY($1))
					    AND status = ANY($2)
					    AND start_date <= $4
					    AND end_date >= $3`
	var conflicts int
	if err = tx.QueryRowContext(
		ctx, conflictQuery,
		pq.Array(instructorIDs), pq.Array(domain.ActiveBookingStatuses), b.StartDate, b.EndDate,
	).Scan(&conflicts); err != nil {
		return nil, fmt.Errorf("recheck instructor conflicts: %w", err)
	}
	if conflicts > 0 {
		return nil, fmt.Errorf("%w: instructor booked by a concurrent create", domain.ErrInstructorConflict)
	}

	bookingQuery := `INSERT INTO course_bookings
					 (id, course_number, course_type, category_id, level_id, delivery_mode,
					  start_date, end_date, duration_days, max_participants,
					  actual_instructor_id, document_instructor_id, status, created_by_center_id,
					  created_at, updated_at)
					 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	if _, err = tx.ExecContext(
		ctx, bookingQuery,
		b.ID, b.CourseNumber, b.CourseType, b.CategoryID, b.LevelID, b.DeliveryMode,
		b.StartDate, b.EndDate, b.DurationDays, b.MaxParticipants,
		b.ActualInstructorID, b.DocumentInstructorID, b.Status, b.CreatedByCenterID,
		b.CreatedAt, b.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	customerQuery := `INSERT INTO booking_customers (id, booking_id, customer_id, participants_count, lpo_line_item_id)
					  VALUES ($1, $2, $3, $4, $5)`
	touchedOrders := make(map[string]struct{})
	for _, c := range customers {
		if _, err = tx.ExecContext(
			ctx, customerQuery,
			uuid.New().String(), b.ID, c.CustomerID, c.ParticipantsCount, c.LPOLineItemID,
		); err != nil {
			return nil, fmt.Errorf("insert booking customer: %w", err)
		}

		if c.LPOLineItemID == nil {
			continue
		}
		if err = useQuantityTx(ctx, tx, *c.LPOLineItemID, c.ParticipantsCount, &b.ID); err != nil {
			return nil, err
		}
		orderID, err := lineItemOrderTx(ctx, tx, *c.LPOLineItemID)
		if err != nil {
			return nil, err
		}
		touchedOrders[orderID] = struct{}{}
	}

	for orderID := range touchedOrders {
		if _, err = deriveOrderStatusTx(ctx, tx, orderID); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", mapLockErr(err))
	}

	return b, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := selectBooking + ` WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.Booking
	if err = scanBooking(row.Scan, &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}

func (r *BookingRepository) ListCustomers(ctx context.Context, bookingID string) ([]*domain.BookingCustomer, error) {
	query := `SELECT id, booking_id, customer_id, participants_count, lpo_line_item_id
			  FROM booking_customers
			  WHERE booking_id = $1
			  ORDER BY id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list booking customers: %w", err)
	}
	defer rows.Close()

	var res []*domain.BookingCustomer
	for rows.Next() {
		var bc domain.BookingCustomer
		if err = rows.Scan(&bc.ID, &bc.BookingID, &bc.CustomerID, &bc.ParticipantsCount, &bc.LPOLineItemID); err != nil {
			return nil, fmt.Errorf("scan booking customer: %w", err)
		}
		res = append(res, &bc)
	}

	return res, rows.Err()
}

// ListByCenter returns every booking for head scope, and only the
// center's own bookings for branch scope.
func (r *BookingRepository) ListByCenter(ctx context.Context, cctx domain.CenterContext) ([]*domain.Booking, error) {
	query := selectBooking + `
			  WHERE ($1 OR created_by_center_id = $2)
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, cctx.IsHead(), cctx.CenterID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = scanBooking(rows.Scan, &b); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

// UpdateStatus is guarded on the current status so a concurrent
// transition loses cleanly instead of overwriting.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) error {
	query := `UPDATE course_bookings
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2`
	res, err := r.db.Master.ExecContext(ctx, query, id, from, to)
	if err != nil {
		return fmt.Errorf("update status: %w", mapLockErr(err))
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("status rows affected: %w", err)
	}
	if rows == 0 {
		var exists bool
		checkQuery := `SELECT true FROM course_bookings WHERE id = $1`
		if scanErr := r.db.Master.QueryRowContext(ctx, checkQuery, id).Scan(&exists); scanErr != nil {
			return domain.ErrBookingNotFound
		}
		// The row exists but the status moved underneath us.
		return domain.ErrConcurrencyConflict
	}

	return nil
}

// Cancel locks the booking row, rejects anything past in_progress
// (including a second cancel), then credits back every LPO-backed
// customer allocation and flips the status in the same transaction.
func (r *BookingRepository) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var b domain.Booking
	lockQuery := selectBooking + ` WHERE id = $1 FOR UPDATE`
	if err = scanBooking(tx.QueryRowContext(ctx, lockQuery, id).Scan, &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("lock booking: %w", mapLockErr(err))
	}

	if !b.Status.CanTransitionTo(domain.BookingStatusCancelled) {
		return nil, fmt.Errorf("%w: cannot cancel a %s booking", domain.ErrInvalidStatusTransition, b.Status)
	}

	customersQuery := `SELECT customer_id, participants_count, lpo_line_item_id
					   FROM booking_customers
					   WHERE booking_id = $1`
	rows, err := tx.QueryContext(ctx, customersQuery, id)
	if err != nil {
		return nil, fmt.Errorf("list booking customers: %w", err)
	}

	var seats []domain.CustomerSeats
	for rows.Next() {
		var c domain.CustomerSeats
		if err = rows.Scan(&c.CustomerID, &c.ParticipantsCount, &c.LPOLineItemID); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan booking customer: %w", err)
		}
		seats = append(seats, c)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	touchedOrders := make(map[string]struct{})
	for _, c := range seats {
		if c.LPOLineItemID == nil {
			continue
		}
		if err = creditBackTx(ctx, tx, *c.LPOLineItemID, c.ParticipantsCount, &b.ID); err != nil {
			return nil, err
		}
		orderID, err := lineItemOrderTx(ctx, tx, *c.LPOLineItemID)
		if err != nil {
			return nil, err
		}
		touchedOrders[orderID] = struct{}{}
	}
	for orderID := range touchedOrders {
		if _, err = deriveOrderStatusTx(ctx, tx, orderID); err != nil {
			return nil, err
		}
	}

	statusQuery := `UPDATE course_bookings
					SET status = $2, updated_at = now()
					WHERE id = $1`
	if _, err = tx.ExecContext(ctx, statusQuery, id, domain.BookingStatusCancelled); err != nil {
		return nil, fmt.Errorf("set cancelled: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", mapLockErr(err))
	}

	b.Status = domain.BookingStatusCancelled
	return &b, nil
}

const selectBooking = `SELECT id, course_number, course_type, category_id, level_id, delivery_mode,
							  start_date, end_date, duration_days, max_participants,
							  actual_instructor_id, document_instructor_id, status, created_by_center_id,
							  created_at, updated_at
					   FROM course_bookings`

func scanBooking(scan func(...any) error, b *domain.Booking) error {
	return scan(
		&b.ID, &b.CourseNumber, &b.CourseType, &b.CategoryID, &b.LevelID, &b.DeliveryMode,
		&b.StartDate, &b.EndDate, &b.DurationDays, &b.MaxParticipants,
		&b.ActualInstructorID, &b.DocumentInstructorID, &b.Status, &b.CreatedByCenterID,
		&b.CreatedAt, &b.UpdatedAt,
	)
}
