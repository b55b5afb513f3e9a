// Package booking holds the pure rules of the booking lifecycle: the status
// transition table, booking eligibility, reservation conflicts and the actions
// each party may take on a booking. Nothing here performs I/O.
package booking

import (
	"fmt"

	"emprius-backend/internal/domain"
)

var transitions = map[domain.BookingStatus][]domain.BookingStatus{
	domain.BookingStatusPending: {
		domain.BookingStatusAccepted,
		domain.BookingStatusRejected,
		domain.BookingStatusCancelled,
		domain.BookingStatusLapsed,
	},
	domain.BookingStatusAccepted: {
		domain.BookingStatusPicked,
		domain.BookingStatusCancelled,
		domain.BookingStatusLapsed,
	},
	domain.BookingStatusPicked: {
		domain.BookingStatusReturned,
	},
}

// TransitionError reports a status change the lifecycle does not allow.
type TransitionError struct {
	From domain.BookingStatus
	To   domain.BookingStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("booking cannot move from %s to %s", e.From, e.To)
}

// CanTransition reports whether a booking in status from may move to status to.
func CanTransition(from, to domain.BookingStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateTransition returns a *TransitionError when from -> to is not allowed.
func ValidateTransition(from, to domain.BookingStatus) error {
	if !CanTransition(from, to) {
		return &TransitionError{From: from, To: to}
	}
	return nil
}

// IsTerminal reports whether no transition leaves status s.
func IsTerminal(s domain.BookingStatus) bool {
	return len(transitions[s]) == 0
}

// IsReserving reports whether a booking in status s holds the tool for its dates.
func IsReserving(s domain.BookingStatus) bool {
	return s == domain.BookingStatusAccepted || s == domain.BookingStatusPicked
}

// ParseStatus converts a wire value into a BookingStatus.
func ParseStatus(s string) (domain.BookingStatus, error) {
	for _, st := range domain.AllBookingStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown booking status %q", s)
}
