package domain

type Community struct {
	ID          int32  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	OwnerID     int32  `json:"ownerId,omitempty"`
	MemberCount int32  `json:"memberCount,omitempty"`
}
