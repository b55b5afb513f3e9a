package service

import (
	"errors"
	"fmt"

	"emprius-backend/internal/booking"
	"emprius-backend/internal/domain"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrToolNotFound    = errors.New("tool not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrUnauthorized    = errors.New("user is not allowed to perform this action")
	ErrToolUnavailable = errors.New("tool is not available")
	ErrReturnBeforeEnd = errors.New("loan end date has not passed yet")
	ErrNotReturned     = errors.New("only returned bookings can be rated")
	ErrAlreadyRated    = errors.New("booking already rated by this user")
	ErrInvalidRating   = fmt.Errorf("rating must be between %d and %d", domain.MinRatingScore, domain.MaxRatingScore)
	ErrInvalidInput    = errors.New("invalid input")
	// ErrStaleBooking means the booking changed status while the request was in flight.
	ErrStaleBooking = errors.New("booking was modified concurrently, reload and retry")
)

// EligibilityError carries the reason a user may not book a tool.
type EligibilityError struct {
	Reason booking.Reason
}

func (e *EligibilityError) Error() string {
	return fmt.Sprintf("user cannot book this tool: %s", e.Reason)
}
