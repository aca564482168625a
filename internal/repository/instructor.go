package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/trainops/coursedesk/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type InstructorRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewInstructorRepo(db *dbpg.DB) *InstructorRepository {
	return &InstructorRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *InstructorRepository) GetByID(ctx context.Context, id string) (*domain.Instructor, error) {
	query := `SELECT id, name, center_id, secondary_center_id, created_at
			  FROM instructors
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get instructor: %w", err)
	}

	var ins domain.Instructor
	if err = row.Scan(&ins.ID, &ins.Name, &ins.CenterID, &ins.SecondaryCenterID, &ins.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInstructorNotFound
		}
		return nil, fmt.Errorf("scan instructor: %w", err)
	}

	return &ins, nil
}

// CountConflicts applies the inclusive interval-intersection test
// (s1 <= e2 AND s2 <= e1) across both instructor roles on bookings that
// still occupy the calendar.
func (r *InstructorRepository) CountConflicts(ctx context.Context, instructorID string, start, end time.Time, excludeBookingID string) (int, error) {
	query := `SELECT COUNT(*) FROM course_bookings
			  WHERE (actual_instructor_id = $1 OR document_instructor_id = $1)
			    AND status = ANY($2)
			    AND start_date <= $4
			    AND end_date >= $3
			    AND ($5 = '' OR id <> $5)`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		instructorID, pq.Array(domain.ActiveBookingStatuses), start, end, excludeBookingID,
	)
	if err != nil {
		return 0, fmt.Errorf("count conflicts: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan conflict count: %w", err)
	}

	return count, nil
}

// ListQualified restricts to instructors holding a qualification for the
// category at or above the level ordinal. Head scope sees every
// instructor; branch scope sees only instructors primarily or
// secondarily assigned to that center.
func (r *InstructorRepository) ListQualified(ctx context.Context, categoryID string, levelOrdinal int, cctx domain.CenterContext) ([]*domain.Instructor, error) {
	query := `SELECT i.id, i.name, i.center_id, i.secondary_center_id, i.created_at
			  FROM instructors i
			  JOIN instructor_qualifications q ON q.instructor_id = i.id
			  WHERE q.category_id = $1
			    AND q.max_level_ordinal >= $2
			    AND ($3 OR i.center_id = $4 OR i.secondary_center_id = $4)
			  ORDER BY i.name`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		categoryID, levelOrdinal, cctx.IsHead(), cctx.CenterID,
	)
	if err != nil {
		return nil, fmt.Errorf("list qualified: %w", err)
	}
	defer rows.Close()

	var res []*domain.Instructor
	for rows.Next() {
		var ins domain.Instructor
		if err = rows.Scan(&ins.ID, &ins.Name, &ins.CenterID, &ins.SecondaryCenterID, &ins.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan instructor: %w", err)
		}
		res = append(res, &ins)
	}

	return res, rows.Err()
}
