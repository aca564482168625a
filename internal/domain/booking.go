package domain

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingStatusNotStarted BookingStatus = "not_started"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// ActiveBookingStatuses are the statuses that occupy an instructor's
// calendar and count against capacity.
var ActiveBookingStatuses = []BookingStatus{BookingStatusNotStarted, BookingStatusInProgress}

var allowedTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusNotStarted: {BookingStatusInProgress, BookingStatusCancelled},
	BookingStatusInProgress: {BookingStatusCompleted, BookingStatusCancelled},
	// completed and cancelled are terminal
	BookingStatusCompleted: {},
	BookingStatusCancelled: {},
}

func (s BookingStatus) Valid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransitionTo reports whether the transition s -> next is allowed.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type CourseType string

const (
	CourseTypeDomestic      CourseType = "domestic"
	CourseTypeInternational CourseType = "international"
)

func (t CourseType) Valid() bool {
	return t == CourseTypeDomestic || t == CourseTypeInternational
}

// NumberPrefix is the course number prefix for the type: "D" or "I".
func (t CourseType) NumberPrefix() string {
	if t == CourseTypeDomestic {
		return "D"
	}
	return "I"
}

// FormatCourseNumber renders the per-(type, year) sequence value, e.g.
// "D-007" for the 7th domestic course of the year.
func FormatCourseNumber(t CourseType, seq int) string {
	return fmt.Sprintf("%s-%03d", t.NumberPrefix(), seq)
}

type DeliveryMode string

const (
	DeliveryOnSite  DeliveryMode = "on_site"
	DeliveryVirtual DeliveryMode = "virtual"
)

func (m DeliveryMode) Valid() bool {
	return m == DeliveryOnSite || m == DeliveryVirtual
}

// Booking is a scheduled course instance. DurationDays and
// MaxParticipants are copied from the category at creation time.
type Booking struct {
	ID                   string        `json:"id"`
	CourseNumber         string        `json:"course_number"`
	CourseType           CourseType    `json:"course_type"`
	CategoryID           string        `json:"category_id"`
	LevelID              string        `json:"level_id"`
	DeliveryMode         DeliveryMode  `json:"delivery_mode"`
	StartDate            time.Time     `json:"start_date"`
	EndDate              time.Time     `json:"end_date"`
	DurationDays         int           `json:"duration_days"`
	MaxParticipants      int           `json:"max_participants"`
	ActualInstructorID   string        `json:"actual_instructor_id"`
	DocumentInstructorID string        `json:"document_instructor_id"`
	Status               BookingStatus `json:"status"`
	CreatedByCenterID    string        `json:"created_by_center_id"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

// BookingCustomer is a customer's seat allocation within a booking.
// ParticipantsCount is the declared allocation; individual candidates
// attached later are a soft fill against it, not re-checked here.
type BookingCustomer struct {
	ID                string  `json:"id"`
	BookingID         string  `json:"booking_id"`
	CustomerID        string  `json:"customer_id"`
	ParticipantsCount int     `json:"participants_count"`
	LPOLineItemID     *string `json:"lpo_line_item_id,omitempty"`
}

type CustomerSeats struct {
	CustomerID        string
	ParticipantsCount int
	LPOLineItemID     *string
}

type CreateBookingInput struct {
	CourseType           CourseType
	CategoryID           string
	LevelID              string
	DeliveryMode         DeliveryMode
	StartDate            time.Time
	ActualInstructorID   string
	DocumentInstructorID string
	Customers            []CustomerSeats
}

// TotalParticipants sums the declared seat counts across all customers.
func (in CreateBookingInput) TotalParticipants() int {
	var total int
	for _, c := range in.Customers {
		total += c.ParticipantsCount
	}
	return total
}
