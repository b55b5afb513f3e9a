package domain

type Notification struct {
	ID         int32             `json:"id"`
	UserID     int32             `json:"userId"`
	Title      string            `json:"title"`
	Message    string            `json:"message"`
	IsRead     bool              `json:"isRead"`
	Attributes map[string]string `json:"attributes"`
	CreatedOn  int64             `json:"createdOn"`
}
