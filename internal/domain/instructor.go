package domain

import "time"

// InstructorQualification caps the level an instructor may teach within
// a category.
type InstructorQualification struct {
	CategoryID      string `json:"category_id"`
	MaxLevelOrdinal int    `json:"max_level_ordinal"`
}

// Instructor participates in bookings via the actual or the document
// role; both roles are subject to the same non-overlap rule.
type Instructor struct {
	ID                string                    `json:"id"`
	Name              string                    `json:"name"`
	CenterID          string                    `json:"center_id"`
	SecondaryCenterID *string                   `json:"secondary_center_id,omitempty"`
	Qualifications    []InstructorQualification `json:"qualifications,omitempty"`
	CreatedAt         time.Time                 `json:"created_at"`
}

// Availability is the result of a conflict check over a date range.
type Availability struct {
	Available     bool `json:"available"`
	ConflictCount int  `json:"conflict_count"`
}
