package ports

import (
	"context"

	"github.com/trainops/coursedesk/internal/domain"
)

type CatalogRepo interface {
	GetCategory(ctx context.Context, id string) (*domain.CourseCategory, error)
	// GetLevel validates that the level belongs to the category.
	GetLevel(ctx context.Context, categoryID, levelID string) (*domain.CourseCategoryLevel, error)
	ListLevels(ctx context.Context, categoryID string) ([]*domain.CourseCategoryLevel, error)
}
