package service

import (
	"context"
	"fmt"
	"time"

	"github.com/trainops/coursedesk/internal/domain"
	"github.com/trainops/coursedesk/internal/service/ports"
)

// InstructorService answers date-range conflict questions for
// instructors across both booking roles.
type InstructorService struct {
	instructorRepo ports.InstructorRepo
	catalogRepo    ports.CatalogRepo
}

func NewInstructorService(instructorRepo ports.InstructorRepo, catalogRepo ports.CatalogRepo) *InstructorService {
	return &InstructorService{
		instructorRepo: instructorRepo,
		catalogRepo:    catalogRepo,
	}
}

// IsAvailable checks the instructor for overlapping active bookings in
// [start, end], bounds inclusive. excludeBookingID lets a booking
// re-validate itself during edits.
func (s *InstructorService) IsAvailable(ctx context.Context, instructorID string, start, end time.Time, excludeBookingID string) (domain.Availability, error) {
	if end.Before(start) {
		return domain.Availability{}, fmt.Errorf("%w: end date precedes start date", domain.ErrValidation)
	}
	if _, err := s.instructorRepo.GetByID(ctx, instructorID); err != nil {
		return domain.Availability{}, fmt.Errorf("check instructor: %w", err)
	}

	conflicts, err := s.instructorRepo.CountConflicts(ctx, instructorID, start, end, excludeBookingID)
	if err != nil {
		return domain.Availability{}, fmt.Errorf("count conflicts: %w", err)
	}

	return domain.Availability{Available: conflicts == 0, ConflictCount: conflicts}, nil
}

// ListAvailable returns instructors qualified for the category at the
// required level, visible under the center context, with conflicted
// instructors filtered out.
func (s *InstructorService) ListAvailable(ctx context.Context, categoryID, levelID string, start, end time.Time, cctx domain.CenterContext) ([]*domain.Instructor, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date precedes start date", domain.ErrValidation)
	}

	level, err := s.catalogRepo.GetLevel(ctx, categoryID, levelID)
	if err != nil {
		return nil, fmt.Errorf("get level: %w", err)
	}

	qualified, err := s.instructorRepo.ListQualified(ctx, categoryID, level.Ordinal, cctx)
	if err != nil {
		return nil, fmt.Errorf("list qualified: %w", err)
	}

	available := make([]*domain.Instructor, 0, len(qualified))
	for _, ins := range qualified {
		conflicts, err := s.instructorRepo.CountConflicts(ctx, ins.ID, start, end, "")
		if err != nil {
			return nil, fmt.Errorf("count conflicts for %s: %w", ins.ID, err)
		}
		if conflicts == 0 {
			available = append(available, ins)
		}
	}

	return available, nil
}
