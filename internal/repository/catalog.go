package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/trainops/coursedesk/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CatalogRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCatalogRepo(db *dbpg.DB) *CatalogRepository {
	return &CatalogRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CatalogRepository) GetCategory(ctx context.Context, id string) (*domain.CourseCategory, error) {
	query := `SELECT id, name, duration_days, max_participants, created_at, updated_at
			  FROM course_categories
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	var c domain.CourseCategory
	if err = row.Scan(&c.ID, &c.Name, &c.DurationDays, &c.MaxParticipants, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("scan category: %w", err)
	}

	return &c, nil
}

func (r *CatalogRepository) GetLevel(ctx context.Context, categoryID, levelID string) (*domain.CourseCategoryLevel, error) {
	query := `SELECT id, category_id, name, ordinal, created_at
			  FROM course_category_levels
			  WHERE id = $1 AND category_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, levelID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("get level: %w", err)
	}

	var l domain.CourseCategoryLevel
	if err = row.Scan(&l.ID, &l.CategoryID, &l.Name, &l.Ordinal, &l.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLevelNotFound
		}
		return nil, fmt.Errorf("scan level: %w", err)
	}

	return &l, nil
}

func (r *CatalogRepository) ListLevels(ctx context.Context, categoryID string) ([]*domain.CourseCategoryLevel, error) {
	query := `SELECT id, category_id, name, ordinal, created_at
			  FROM course_category_levels
			  WHERE category_id = $1
			  ORDER BY ordinal`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list levels: %w", err)
	}
	defer rows.Close()

	var res []*domain.CourseCategoryLevel
	for rows.Next() {
		var l domain.CourseCategoryLevel
		if err = rows.Scan(&l.ID, &l.CategoryID, &l.Name, &l.Ordinal, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan level: %w", err)
		}
		res = append(res, &l)
	}

	return res, rows.Err()
}
