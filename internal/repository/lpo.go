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

type LPORepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewLPORepo(db *dbpg.DB) *LPORepository {
	return &LPORepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *LPORepository) CreateOrder(ctx context.Context, o *domain.LPOOrder) error {
	query := `INSERT INTO lpo_orders (id, customer_id, created_by_center_id, status, valid_until, total_amount_cents, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		o.ID, o.CustomerID, o.CreatedByCenter, o.Status, o.ValidUntil, o.TotalAmountCents, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	return nil
}

func (r *LPORepository) GetOrder(ctx context.Context, id string) (*domain.LPOOrder, error) {
	query := `SELECT id, customer_id, created_by_center_id, status, valid_until, total_amount_cents, created_at, updated_at
			  FROM lpo_orders
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	var o domain.LPOOrder
	if err = scanOrder(row.Scan, &o); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}

	return &o, nil
}

func (r *LPORepository) ListOrders(ctx context.Context) ([]*domain.LPOOrder, error) {
	query := `SELECT id, customer_id, created_by_center_id, status, valid_until, total_amount_cents, created_at, updated_at
			  FROM lpo_orders
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var res []*domain.LPOOrder
	for rows.Next() {
		var o domain.LPOOrder
		if err = scanOrder(rows.Scan, &o); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		res = append(res, &o)
	}

	return res, rows.Err()
}

func (r *LPORepository) GetOrderDetails(ctx context.Context, id string) (*domain.OrderDetails, error) {
	order, err := r.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &domain.OrderDetails{Order: *order}

	liQuery := `SELECT id, order_id, category_id, level_id, quantity_ordered, quantity_remaining, quantity_used, unit_price_cents, created_at
				FROM lpo_line_items
				WHERE order_id = $1
				ORDER BY created_at`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, liQuery, id)
	if err != nil {
		return nil, fmt.Errorf("list line items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var li domain.LPOLineItem
		if err = scanLineItem(rows.Scan, &li); err != nil {
			return nil, fmt.Errorf("scan line item: %w", err)
		}
		details.LineItems = append(details.LineItems, li)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	usageQuery := `SELECT u.id, u.line_item_id, u.booking_id, u.kind,
						  u.quantity_booked, u.quantity_attended, u.quantity_passed,
						  u.quantity_failed, u.quantity_no_show, u.quantity_credited_back, u.created_at
				   FROM lpo_usage_records u
				   JOIN lpo_line_items li ON li.id = u.line_item_id
				   WHERE li.order_id = $1
				   ORDER BY u.created_at`
	usageRows, err := r.db.QueryWithRetry(ctx, r.strategy, usageQuery, id)
	if err != nil {
		return nil, fmt.Errorf("list usage records: %w", err)
	}
	defer usageRows.Close()

	for usageRows.Next() {
		var u domain.LPOUsageRecord
		if err = usageRows.Scan(
			&u.ID, &u.LineItemID, &u.BookingID, &u.Kind,
			&u.QuantityBooked, &u.QuantityAttended, &u.QuantityPassed,
			&u.QuantityFailed, &u.QuantityNoShow, &u.QuantityCreditedBack, &u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan usage record: %w", err)
		}
		details.Usage = append(details.Usage, u)
	}

	return details, usageRows.Err()
}

func (r *LPORepository) AddLineItem(ctx context.Context, li *domain.LPOLineItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO lpo_line_items (id, order_id, category_id, level_id, quantity_ordered, quantity_remaining, quantity_used, unit_price_cents, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err = tx.ExecContext(
		ctx, query,
		li.ID, li.OrderID, li.CategoryID, li.LevelID,
		li.QuantityOrdered, li.QuantityRemaining, li.QuantityUsed, li.UnitPriceCents, li.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert line item: %w", err)
	}

	totalQuery := `UPDATE lpo_orders
				   SET total_amount_cents = total_amount_cents + $2, updated_at = now()
				   WHERE id = $1`
	res, err := tx.ExecContext(ctx, totalQuery, li.OrderID, int64(li.QuantityOrdered)*li.UnitPriceCents)
	if err != nil {
		return fmt.Errorf("update order total: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("order rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrOrderNotFound
	}

	return tx.Commit()
}

func (r *LPORepository) GetLineItem(ctx context.Context, id string) (*domain.LPOLineItem, error) {
	query := `SELECT id, order_id, category_id, level_id, quantity_ordered, quantity_remaining, quantity_used, unit_price_cents, created_at
			  FROM lpo_line_items
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get line item: %w", err)
	}

	var li domain.LPOLineItem
	if err = scanLineItem(row.Scan, &li); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLineItemNotFound
		}
		return nil, fmt.Errorf("scan line item: %w", err)
	}

	return &li, nil
}

func (r *LPORepository) UseQuantity(ctx context.Context, lineItemID string, qty int, bookingID *string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = useQuantityTx(ctx, tx, lineItemID, qty, bookingID); err != nil {
		return err
	}

	orderID, err := lineItemOrderTx(ctx, tx, lineItemID)
	if err != nil {
		return err
	}
	if _, err = deriveOrderStatusTx(ctx, tx, orderID); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", mapLockErr(err))
	}
	return nil
}

func (r *LPORepository) CreditBack(ctx context.Context, lineItemID string, qty int, bookingID *string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = creditBackTx(ctx, tx, lineItemID, qty, bookingID); err != nil {
		return err
	}

	orderID, err := lineItemOrderTx(ctx, tx, lineItemID)
	if err != nil {
		return err
	}
	if _, err = deriveOrderStatusTx(ctx, tx, orderID); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", mapLockErr(err))
	}
	return nil
}

func (r *LPORepository) DeriveOrderStatus(ctx context.Context, orderID string) (domain.OrderStatus, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	status, err := deriveOrderStatusTx(ctx, tx, orderID)
	if err != nil {
		return "", err
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return status, nil
}

// ScanExpiring selects orders whose valid_until lands exactly
// thresholdDays after asOf, still in a usable status, with no expiry
// notification logged on asOf's calendar day.
func (r *LPORepository) ScanExpiring(ctx context.Context, asOf time.Time, thresholdDays int) ([]*domain.LPOOrder, error) {
	query := `SELECT o.id, o.customer_id, o.created_by_center_id, o.status, o.valid_until, o.total_amount_cents, o.created_at, o.updated_at
			  FROM lpo_orders o
			  WHERE o.valid_until = $1::date + $2
			    AND o.status = ANY($3)
			    AND NOT EXISTS (
					SELECT 1 FROM lpo_notification_log l
					WHERE l.order_id = o.id
					  AND l.notification_type = $4
					  AND l.sent_on = $1::date
			    )
			  ORDER BY o.created_at`

	usable := []domain.OrderStatus{domain.OrderStatusConfirmed, domain.OrderStatusPartiallyUsed}
	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.DateOnly(asOf), thresholdDays, pq.Array(usable), domain.NotificationTypeExpiry,
	)
	if err != nil {
		return nil, fmt.Errorf("scan expiring: %w", err)
	}
	defer rows.Close()

	var res []*domain.LPOOrder
	for rows.Next() {
		var o domain.LPOOrder
		if err = scanOrder(rows.Scan, &o); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		res = append(res, &o)
	}

	return res, rows.Err()
}

// LogNotification is keyed on (order, type, day); a duplicate insert
// means another run already handled this order today.
func (r *LPORepository) LogNotification(ctx context.Context, orderID, notificationType string, day time.Time) error {
	query := `INSERT INTO lpo_notification_log (id, order_id, notification_type, sent_on, created_at)
			  VALUES ($1, $2, $3, $4, now())`
	_, err := r.db.Master.ExecContext(ctx, query, uuid.New().String(), orderID, notificationType, domain.DateOnly(day))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: notification already logged for %s", domain.ErrConcurrencyConflict, orderID)
		}
		return fmt.Errorf("insert notification log: %w", err)
	}

	return nil
}

func scanOrder(scan func(...any) error, o *domain.LPOOrder) error {
	return scan(&o.ID, &o.CustomerID, &o.CreatedByCenter, &o.Status, &o.ValidUntil, &o.TotalAmountCents, &o.CreatedAt, &o.UpdatedAt)
}

func scanLineItem(scan func(...any) error, li *domain.LPOLineItem) error {
	return scan(&li.ID, &li.OrderID, &li.CategoryID, &li.LevelID,
		&li.QuantityOrdered, &li.QuantityRemaining, &li.QuantityUsed, &li.UnitPriceCents, &li.CreatedAt)
}

// useQuantityTx is the atomic conditional decrement: the WHERE clause
// guard is what keeps two concurrent consumers from overdrawing a line
// item, so remaining can never go negative.
func useQuantityTx(ctx context.Context, tx *sql.Tx, lineItemID string, qty int, bookingID *string) error {
	query := `UPDATE lpo_line_items
			  SET quantity_remaining = quantity_remaining - $2,
			      quantity_used = quantity_used + $2
			  WHERE id = $1 AND quantity_remaining >= $2`
	res, err := tx.ExecContext(ctx, query, lineItemID, qty)
	if err != nil {
		return fmt.Errorf("decrement line item: %w", mapLockErr(err))
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("line item rows affected: %w", err)
	}
	if rows == 0 {
		var remaining int
		checkQuery := `SELECT quantity_remaining FROM lpo_line_items WHERE id = $1`
		if scanErr := tx.QueryRowContext(ctx, checkQuery, lineItemID).Scan(&remaining); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				return domain.ErrLineItemNotFound
			}
			return fmt.Errorf("check line item: %w", scanErr)
		}
		return fmt.Errorf("%w: requested %d seats, %d remaining on line item %s",
			domain.ErrInsufficientEntitlement, qty, remaining, lineItemID)
	}

	usage := `INSERT INTO lpo_usage_records (id, line_item_id, booking_id, kind, quantity_booked, created_at)
			  VALUES ($1, $2, $3, $4, $5, now())`
	if _, err = tx.ExecContext(ctx, usage, uuid.New().String(), lineItemID, bookingID, domain.UsageConsumed, qty); err != nil {
		return fmt.Errorf("insert usage record: %w", err)
	}

	return nil
}

// creditBackTx is the inverse, guarded so used never goes below zero and
// remaining never exceeds ordered.
func creditBackTx(ctx context.Context, tx *sql.Tx, lineItemID string, qty int, bookingID *string) error {
	query := `UPDATE lpo_line_items
			  SET quantity_remaining = quantity_remaining + $2,
			      quantity_used = quantity_used - $2
			  WHERE id = $1 AND quantity_used >= $2`
	res, err := tx.ExecContext(ctx, query, lineItemID, qty)
	if err != nil {
		return fmt.Errorf("credit line item: %w", mapLockErr(err))
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("line item rows affected: %w", err)
	}
	if rows == 0 {
		var used int
		checkQuery := `SELECT quantity_used FROM lpo_line_items WHERE id = $1`
		if scanErr := tx.QueryRowContext(ctx, checkQuery, lineItemID).Scan(&used); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				return domain.ErrLineItemNotFound
			}
			return fmt.Errorf("check line item: %w", scanErr)
		}
		return fmt.Errorf("%w: cannot credit %d seats, only %d used on line item %s",
			domain.ErrValidation, qty, used, lineItemID)
	}

	usage := `INSERT INTO lpo_usage_records (id, line_item_id, booking_id, kind, quantity_credited_back, created_at)
			  VALUES ($1, $2, $3, $4, $5, now())`
	if _, err = tx.ExecContext(ctx, usage, uuid.New().String(), lineItemID, bookingID, domain.UsageCreditBack, qty); err != nil {
		return fmt.Errorf("insert usage record: %w", err)
	}

	return nil
}

func lineItemOrderTx(ctx context.Context, tx *sql.Tx, lineItemID string) (string, error) {
	var orderID string
	query := `SELECT order_id FROM lpo_line_items WHERE id = $1`
	if err := tx.QueryRowContext(ctx, query, lineItemID).Scan(&orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrLineItemNotFound
		}
		return "", fmt.Errorf("get line item order: %w", err)
	}
	return orderID, nil
}

// deriveOrderStatusTx recomputes the cached status from the line-item
// quantity sums. Cancelled orders keep their status.
func deriveOrderStatusTx(ctx context.Context, tx *sql.Tx, orderID string) (domain.OrderStatus, error) {
	var remaining, ordered int
	sumQuery := `SELECT COALESCE(SUM(quantity_remaining), 0), COALESCE(SUM(quantity_ordered), 0)
				 FROM lpo_line_items
				 WHERE order_id = $1`
	if err := tx.QueryRowContext(ctx, sumQuery, orderID).Scan(&remaining, &ordered); err != nil {
		return "", fmt.Errorf("sum line items: %w", err)
	}

	var status domain.OrderStatus
	switch {
	case ordered > 0 && remaining == 0:
		status = domain.OrderStatusFullyUsed
	case remaining < ordered:
		status = domain.OrderStatusPartiallyUsed
	default:
		status = domain.OrderStatusConfirmed
	}

	query := `UPDATE lpo_orders
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status <> $3`
	res, err := tx.ExecContext(ctx, query, orderID, status, domain.OrderStatusCancelled)
	if err != nil {
		return "", fmt.Errorf("update order status: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT true FROM lpo_orders WHERE id = $1`, orderID).Scan(&exists); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return "", domain.ErrOrderNotFound
			}
			return "", fmt.Errorf("check order: %w", err)
		}
		return domain.OrderStatusCancelled, nil
	}

	return status, nil
}
