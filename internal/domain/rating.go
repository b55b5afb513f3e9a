package domain

import "github.com/shopspring/decimal"

type RatingRole string

const (
	RatingRoleRequester RatingRole = "requester"
	RatingRoleOwner     RatingRole = "owner"
)

const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

// RatingEntry is the one-sided rating a party submits for a returned booking.
type RatingEntry struct {
	ID         int32      `json:"id"`
	BookingID  int32      `json:"bookingId"`
	FromUserID int32      `json:"fromUserId"`
	ToUserID   int32      `json:"toUserId"`
	Role       RatingRole `json:"role"`
	Rating     int32      `json:"rating"`
	Comment    string     `json:"comment,omitempty"`
	Images     []string   `json:"images,omitempty"`
	CreatedOn  int64      `json:"createdOn"`
}

// Rating pairs both sides of a booking's ratings.
type Rating struct {
	BookingID int32        `json:"bookingId"`
	Requester *RatingEntry `json:"requester,omitempty"`
	Owner     *RatingEntry `json:"owner,omitempty"`
}

// RatedBy reports whether userID already submitted its side.
func (r *Rating) RatedBy(userID int32) bool {
	if r == nil {
		return false
	}
	return (r.Requester != nil && r.Requester.FromUserID == userID) ||
		(r.Owner != nil && r.Owner.FromUserID == userID)
}

type RatingSummary struct {
	UserID  int32           `json:"userId"`
	Count   int32           `json:"count"`
	Average decimal.Decimal `json:"average"`
}
