package domain

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Tool struct {
	ID          int32  `json:"id"`
	UserID      int32  `json:"userId"` // owner
	Name        string `json:"name"`
	Description string `json:"description"`
	IsAvailable bool   `json:"isAvailable"`
	IsNomadic   bool   `json:"isNomadic"`
	// ActualUserID is the current holder of a nomadic tool, nil while it sits with the owner.
	ActualUserID *int32 `json:"actualUserId,omitempty"`
	// Communities scopes who may book the tool. Empty means open to everyone.
	Communities []int32 `json:"communities"`
	// MaxDistance is in kilometers. Zero means no limit.
	MaxDistance   float64     `json:"maxDistance,omitempty"`
	Location      Location    `json:"location"`
	ReservedDates []DateRange `json:"reservedDates"`
	CreatedOn     int64       `json:"createdOn"`
	DeletedOn     *int64      `json:"deletedOn,omitempty"`
}

// Holder returns the user currently in possession of the tool.
func (t *Tool) Holder() int32 {
	if t.IsNomadic && t.ActualUserID != nil {
		return *t.ActualUserID
	}
	return t.UserID
}
