package booking

import (
	"time"

	"emprius-backend/internal/domain"
)

// Reason explains why a user may not book a tool.
type Reason string

const (
	ReasonIsOwner          Reason = "isOwner"
	ReasonIsActualUser     Reason = "isActualUser"
	ReasonIsNotInCommunity Reason = "isNotInCommunity"
	ReasonIsTooFarAway     Reason = "isTooFarAway"
	ReasonIsNomadicBooked  Reason = "isNomadicBooked"
)

// Eligibility is the outcome of CanUserBookTool. Why is nil when CanBook is true.
type Eligibility struct {
	CanBook bool    `json:"canBook"`
	Why     *Reason `json:"why"`
}

func eligible() Eligibility {
	return Eligibility{CanBook: true}
}

func denied(r Reason) Eligibility {
	return Eligibility{CanBook: false, Why: &r}
}

// Reason returns the denial reason, or "" when the user can book.
func (e Eligibility) Reason() Reason {
	if e.Why == nil {
		return ""
	}
	return *e.Why
}

// CanUserBookTool decides whether user may request a booking of tool at time now.
// Rules are evaluated in order and the first match wins, so ownership reasons
// are reported before community and distance reasons.
func CanUserBookTool(tool *domain.Tool, user *domain.User, now time.Time) Eligibility {
	holder := tool.ActualUserID

	if !tool.IsNomadic && tool.UserID == user.ID {
		return denied(ReasonIsOwner)
	}
	if tool.IsNomadic && holder != nil && *holder == user.ID {
		return denied(ReasonIsActualUser)
	}
	if tool.IsNomadic && holder == nil && tool.UserID == user.ID {
		return denied(ReasonIsOwner)
	}
	if len(tool.Communities) > 0 && !sharesCommunity(tool.Communities, user.Communities) {
		return denied(ReasonIsNotInCommunity)
	}
	if tool.MaxDistance > 0 {
		// Without a viewer location the tool cannot be shown to be in range.
		if user.Location == nil || DistanceKm(*user.Location, tool.Location) > tool.MaxDistance {
			return denied(ReasonIsTooFarAway)
		}
	}
	if tool.IsNomadic && hasFutureReservation(tool.ReservedDates, now) {
		return denied(ReasonIsNomadicBooked)
	}
	return eligible()
}

func sharesCommunity(toolCommunities []int32, userCommunities []domain.Community) bool {
	for _, uc := range userCommunities {
		for _, id := range toolCommunities {
			if uc.ID == id {
				return true
			}
		}
	}
	return false
}

func hasFutureReservation(reserved []domain.DateRange, now time.Time) bool {
	ts := now.Unix()
	for _, r := range reserved {
		if r.To >= ts {
			return true
		}
	}
	return false
}
