package domain

import "time"

// CourseCategory defines the shape of every course booked against it.
// DurationDays and MaxParticipants are snapshotted into the booking at
// creation time, so later category edits never affect existing bookings.
type CourseCategory struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	DurationDays    int       `json:"duration_days"`
	MaxParticipants int       `json:"max_participants"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CourseCategoryLevel is one ordered level within a category. A level
// with Ordinal N has the category's level N-1 as prerequisite.
type CourseCategoryLevel struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"category_id"`
	Name       string    `json:"name"`
	Ordinal    int       `json:"ordinal"`
	CreatedAt  time.Time `json:"created_at"`
}
