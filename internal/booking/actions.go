package booking

import (
	"time"

	"emprius-backend/internal/domain"
)

// Role is the viewer's side of a booking.
type Role string

const (
	// RoleRequest is the owner or holder reviewing an incoming booking.
	RoleRequest Role = "request"
	// RolePetition is the requester following their own booking.
	RolePetition Role = "petition"
)

type ActionKind string

const (
	ActionApprove ActionKind = "approve"
	ActionDeny    ActionKind = "deny"
	ActionCancel  ActionKind = "cancel"
	ActionReturn  ActionKind = "return"
	ActionRate    ActionKind = "rate"
)

// WarningLoanNotEnded is attached to a return action offered before the loan's end date.
const WarningLoanNotEnded = "loan end date has not passed yet"

type Action struct {
	Kind                 ActionKind `json:"kind"`
	Disabled             bool       `json:"disabled"`
	RequiresConfirmation bool       `json:"requiresConfirmation"`
	Warning              string     `json:"warning,omitempty"`
}

// RoleFor returns the role userID plays in b. ok is false for outsiders.
func RoleFor(b *domain.Booking, userID int32) (Role, bool) {
	switch userID {
	case b.ToUserID:
		return RoleRequest, true
	case b.FromUserID:
		return RolePetition, true
	}
	return "", false
}

// Actions lists what a viewer in role may do with b. b.IsRated must already
// reflect whether this viewer rated the booking.
func Actions(b *domain.Booking, role Role, now time.Time) []Action {
	switch {
	case b.Status == domain.BookingStatusPending && role == RoleRequest:
		return []Action{{Kind: ActionApprove}, {Kind: ActionDeny}}

	case b.Status == domain.BookingStatusPending && role == RolePetition:
		return []Action{{Kind: ActionCancel}}

	case b.Status == domain.BookingStatusAccepted && role == RoleRequest:
		a := Action{Kind: ActionReturn, RequiresConfirmation: true}
		if now.Unix() < b.EndDate {
			a.Warning = WarningLoanNotEnded
		}
		return []Action{a}

	case b.Status == domain.BookingStatusReturned && (role == RoleRequest || role == RolePetition):
		return []Action{{Kind: ActionRate, Disabled: b.IsRated}}
	}
	return nil
}
