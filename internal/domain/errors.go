package domain

import "errors"

var (
	ErrCategoryNotFound   = errors.New("course category not found")
	ErrLevelNotFound      = errors.New("course level not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrOrderNotFound      = errors.New("LPO order not found")
	ErrLineItemNotFound   = errors.New("LPO line item not found")
	ErrInstructorNotFound = errors.New("instructor not found")
)

var (
	ErrCapacityExceeded        = errors.New("course capacity exceeded")
	ErrInstructorConflict      = errors.New("instructor has a conflicting booking")
	ErrInsufficientEntitlement = errors.New("insufficient entitlement balance")
	ErrExpiredEntitlement      = errors.New("entitlement has expired")
	ErrInvalidStatusTransition = errors.New("invalid booking status transition")
	ErrCenterNotPermitted      = errors.New("center is not permitted to perform this operation")
)

// ErrConcurrencyConflict is surfaced when a transaction loses a lock race
// (deadlock, lock timeout). Nothing was committed; the caller may retry
// the whole operation.
var ErrConcurrencyConflict = errors.New("concurrent modification conflict")

var ErrValidation = errors.New("validation error")
