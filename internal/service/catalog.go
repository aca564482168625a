package service

import (
	"context"

	"github.com/trainops/coursedesk/internal/domain"
	"github.com/trainops/coursedesk/internal/service/ports"
)

// CatalogService is a pure reader; category and level metadata is
// advisory input to the booking orchestrator.
type CatalogService struct {
	repo ports.CatalogRepo
}

func NewCatalogService(repo ports.CatalogRepo) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) GetCategory(ctx context.Context, id string) (*domain.CourseCategory, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *CatalogService) GetLevel(ctx context.Context, categoryID, levelID string) (*domain.CourseCategoryLevel, error) {
	return s.repo.GetLevel(ctx, categoryID, levelID)
}

func (s *CatalogService) ListLevels(ctx context.Context, categoryID string) ([]*domain.CourseCategoryLevel, error) {
	if _, err := s.repo.GetCategory(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.repo.ListLevels(ctx, categoryID)
}
