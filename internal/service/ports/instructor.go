package ports

import (
	"context"
	"time"

	"github.com/trainops/coursedesk/internal/domain"
)

type InstructorRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Instructor, error)
	// CountConflicts counts active bookings holding the instructor in
	// either role whose [start_date, end_date] range overlaps the given
	// range (bounds inclusive). excludeBookingID may be empty.
	CountConflicts(ctx context.Context, instructorID string, start, end time.Time, excludeBookingID string) (int, error)
	// ListQualified returns instructors qualified for the category at or
	// above the given level ordinal, restricted to those visible under
	// the center context.
	ListQualified(ctx context.Context, categoryID string, levelOrdinal int, cctx domain.CenterContext) ([]*domain.Instructor, error)
}
