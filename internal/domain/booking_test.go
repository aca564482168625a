package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusTransitions(t *testing.T) {
	tests := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{BookingStatusNotStarted, BookingStatusInProgress, true},
		{BookingStatusNotStarted, BookingStatusCancelled, true},
		{BookingStatusNotStarted, BookingStatusCompleted, false},
		{BookingStatusInProgress, BookingStatusCompleted, true},
		{BookingStatusInProgress, BookingStatusCancelled, true},
		{BookingStatusInProgress, BookingStatusNotStarted, false},
		{BookingStatusCompleted, BookingStatusCancelled, false},
		{BookingStatusCompleted, BookingStatusInProgress, false},
		{BookingStatusCancelled, BookingStatusNotStarted, false},
		{BookingStatusCancelled, BookingStatusCancelled, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestBookingStatusValid(t *testing.T) {
	assert.True(t, BookingStatusNotStarted.Valid())
	assert.True(t, BookingStatusCancelled.Valid())
	assert.False(t, BookingStatus("archived").Valid())
}

func TestFormatCourseNumber(t *testing.T) {
	assert.Equal(t, "D-007", FormatCourseNumber(CourseTypeDomestic, 7))
	assert.Equal(t, "I-012", FormatCourseNumber(CourseTypeInternational, 12))
	assert.Equal(t, "D-1000", FormatCourseNumber(CourseTypeDomestic, 1000))
}

func TestCreateBookingInput_TotalParticipants(t *testing.T) {
	in := CreateBookingInput{
		Customers: []CustomerSeats{
			{CustomerID: "c1", ParticipantsCount: 3},
			{CustomerID: "c2", ParticipantsCount: 4},
		},
	}
	assert.Equal(t, 7, in.TotalParticipants())
}
