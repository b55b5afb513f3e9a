package domain

type User struct {
	ID          int32       `json:"id"`
	Email       string      `json:"email"`
	Name        string      `json:"name"`
	AvatarURL   string      `json:"avatarUrl,omitempty"`
	Location    *Location   `json:"location,omitempty"`
	Communities []Community `json:"communities"`
	// PushToken is the device registration token for push notifications.
	PushToken string `json:"-"`
	CreatedOn int64  `json:"createdOn"`
	UpdatedOn int64  `json:"updatedOn"`
}

// CommunityIDs returns the ids of the communities the user belongs to.
func (u *User) CommunityIDs() []int32 {
	ids := make([]int32, 0, len(u.Communities))
	for _, c := range u.Communities {
		ids = append(ids, c.ID)
	}
	return ids
}
