package booking

import (
	"fmt"

	"emprius-backend/internal/domain"
)

// ConflictError reports the reserved range a proposed booking collides with.
type ConflictError struct {
	Reserved domain.DateRange
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("dates overlap an existing reservation from %s to %s",
		e.Reserved.Start().Format(domain.CalendarDateLayout),
		e.Reserved.End().Format(domain.CalendarDateLayout))
}

// Overlaps reports whether proposed intersects reserved. Both bounds are inclusive.
func Overlaps(proposed, reserved domain.DateRange) bool {
	s, e := proposed.From, proposed.To
	a, b := reserved.From, reserved.To

	return (s >= a && s <= b) ||
		(e >= a && e <= b) ||
		(s <= a && e >= b)
}

// FindConflict returns the first reserved range proposed overlaps.
func FindConflict(proposed domain.DateRange, reserved []domain.DateRange) (domain.DateRange, bool) {
	for _, r := range reserved {
		if Overlaps(proposed, r) {
			return r, true
		}
	}
	return domain.DateRange{}, false
}

// CheckConflict returns a *ConflictError when proposed overlaps any reserved range.
func CheckConflict(proposed domain.DateRange, reserved []domain.DateRange) error {
	if r, ok := FindConflict(proposed, reserved); ok {
		return &ConflictError{Reserved: r}
	}
	return nil
}
