package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trainops/coursedesk/internal/domain"
	"github.com/trainops/coursedesk/internal/service/ports/mocks"
)

func TestInstructorService_IsAvailable(t *testing.T) {
	instructorRepo := mocks.NewMockInstructorRepo(t)
	catalogRepo := mocks.NewMockCatalogRepo(t)
	svc := NewInstructorService(instructorRepo, catalogRepo)

	start := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC)

	instructorRepo.EXPECT().GetByID(mock.Anything, "ins-1").Return(&domain.Instructor{ID: "ins-1"}, nil)
	instructorRepo.EXPECT().CountConflicts(mock.Anything, "ins-1", start, end, "").Return(0, nil)

	got, err := svc.IsAvailable(context.Background(), "ins-1", start, end, "")

	require.NoError(t, err)
	assert.True(t, got.Available)
	assert.Zero(t, got.ConflictCount)
}

func TestInstructorService_IsAvailable_Conflicted(t *testing.T) {
	instructorRepo := mocks.NewMockInstructorRepo(t)
	catalogRepo := mocks.NewMockCatalogRepo(t)
	svc := NewInstructorService(instructorRepo, catalogRepo)

	start := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC)

	instructorRepo.EXPECT().GetByID(mock.Anything, "ins-1").Return(&domain.Instructor{ID: "ins-1"}, nil)
	instructorRepo.EXPECT().CountConflicts(mock.Anything, "ins-1", start, end, "b7").Return(1, nil)

	got, err := svc.IsAvailable(context.Background(), "ins-1", start, end, "b7")

	require.NoError(t, err)
	assert.False(t, got.Available)
	assert.Equal(t, 1, got.ConflictCount)
}

func TestInstructorService_IsAvailable_InvalidRange(t *testing.T) {
	svc := NewInstructorService(mocks.NewMockInstructorRepo(t), mocks.NewMockCatalogRepo(t))

	start := time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.IsAvailable(context.Background(), "ins-1", start, end, "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestInstructorService_ListAvailable_FiltersConflicted(t *testing.T) {
	instructorRepo := mocks.NewMockInstructorRepo(t)
	catalogRepo := mocks.NewMockCatalogRepo(t)
	svc := NewInstructorService(instructorRepo, catalogRepo)

	start := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC)

	catalogRepo.EXPECT().GetLevel(mock.Anything, "cat-1", "lvl-2").
		Return(&domain.CourseCategoryLevel{ID: "lvl-2", Ordinal: 2}, nil)
	instructorRepo.EXPECT().ListQualified(mock.Anything, "cat-1", 2, headCtx).Return([]*domain.Instructor{
		{ID: "ins-1", Name: "Avery"},
		{ID: "ins-2", Name: "Blake"},
	}, nil)
	instructorRepo.EXPECT().CountConflicts(mock.Anything, "ins-1", start, end, "").Return(1, nil)
	instructorRepo.EXPECT().CountConflicts(mock.Anything, "ins-2", start, end, "").Return(0, nil)

	available, err := svc.ListAvailable(context.Background(), "cat-1", "lvl-2", start, end, headCtx)

	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "ins-2", available[0].ID)
}
