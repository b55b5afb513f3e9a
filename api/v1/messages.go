package apiv1

type Empty struct{}

type DateRange struct {
	From int64 `json:"from"`
	To   int64 `json:"to"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Booking struct {
	Id            int32  `json:"id"`
	ToolId        int32  `json:"toolId"`
	FromUserId    int32  `json:"fromUserId"`
	ToUserId      int32  `json:"toUserId"`
	StartDate     int64  `json:"startDate"`
	EndDate       int64  `json:"endDate"`
	BookingStatus string `json:"bookingStatus"`
	Contact       string `json:"contact,omitempty"`
	Comments      string `json:"comments,omitempty"`
	IsRated       bool   `json:"isRated"`
	IsNomadic     bool   `json:"isNomadic"`
	PickedOn      int64  `json:"pickedOn,omitempty"`
	ReturnedOn    int64  `json:"returnedOn,omitempty"`
	CreatedAt     int64  `json:"createdAt"`
	UpdatedAt     int64  `json:"updatedAt"`
}

type Tool struct {
	Id            int32        `json:"id"`
	UserId        int32        `json:"userId"`
	Name          string       `json:"name"`
	Description   string       `json:"description,omitempty"`
	IsAvailable   bool         `json:"isAvailable"`
	IsNomadic     bool         `json:"isNomadic"`
	ActualUserId  int32        `json:"actualUserId,omitempty"`
	Communities   []int32      `json:"communities"`
	MaxDistance   float64      `json:"maxDistance,omitempty"`
	Location      *Location    `json:"location,omitempty"`
	ReservedDates []*DateRange `json:"reservedDates"`
}

type Community struct {
	Id   int32  `json:"id"`
	Name string `json:"name"`
}

type RatingSummary struct {
	Count   int32  `json:"count"`
	Average string `json:"average"`
}

type User struct {
	Id          int32          `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	AvatarUrl   string         `json:"avatarUrl,omitempty"`
	Location    *Location      `json:"location,omitempty"`
	Communities []*Community   `json:"communities"`
	Rating      *RatingSummary `json:"rating,omitempty"`
}

type RatingEntry struct {
	Id         int32    `json:"id"`
	BookingId  int32    `json:"bookingId"`
	FromUserId int32    `json:"fromUserId"`
	ToUserId   int32    `json:"toUserId"`
	Role       string   `json:"role"`
	Rating     int32    `json:"rating"`
	Comment    string   `json:"comment,omitempty"`
	Images     []string `json:"images,omitempty"`
	CreatedAt  int64    `json:"createdAt"`
}

type Rating struct {
	BookingId int32        `json:"bookingId"`
	Requester *RatingEntry `json:"requester,omitempty"`
	Owner     *RatingEntry `json:"owner,omitempty"`
}

type Action struct {
	Kind                 string `json:"kind"`
	Disabled             bool   `json:"disabled"`
	RequiresConfirmation bool   `json:"requiresConfirmation"`
	Warning              string `json:"warning,omitempty"`
}

type Notification struct {
	Id         int32             `json:"id"`
	Title      string            `json:"title"`
	Message    string            `json:"message"`
	IsRead     bool              `json:"isRead"`
	Attributes map[string]string `json:"attributes,omitempty"`
	CreatedAt  int64             `json:"createdAt"`
}

// BookingService messages

type CreateBookingRequest struct {
	ToolId    int32  `json:"toolId"`
	StartDate int64  `json:"startDate"`
	EndDate   int64  `json:"endDate"`
	Contact   string `json:"contact"`
	Comments  string `json:"comments"`
}

type BookingIdRequest struct {
	BookingId int32 `json:"bookingId"`
}

type ReturnBookingRequest struct {
	BookingId int32 `json:"bookingId"`
	Force     bool  `json:"force"`
}

type BookingResponse struct {
	Booking *Booking `json:"booking"`
}

type ListBookingsRequest struct {
	Statuses []string `json:"statuses,omitempty"`
	Page     int32    `json:"page"`
	PageSize int32    `json:"pageSize"`
}

type ListBookingsResponse struct {
	Bookings   []*Booking `json:"bookings"`
	TotalCount int32      `json:"totalCount"`
}

type GetBookingActionsResponse struct {
	Role    string    `json:"role"`
	Actions []*Action `json:"actions"`
}

type CheckEligibilityRequest struct {
	ToolId int32 `json:"toolId"`
}

type CheckEligibilityResponse struct {
	CanBook bool    `json:"canBook"`
	Why     *string `json:"why"`
}

type SubmitRatingRequest struct {
	BookingId int32    `json:"bookingId"`
	Rating    int32    `json:"rating"`
	Comment   string   `json:"comment"`
	Images    []string `json:"images,omitempty"`
}

type SubmitRatingResponse struct {
	Entry *RatingEntry `json:"entry"`
}

type GetRatingResponse struct {
	Rating *Rating `json:"rating"`
}

type RatingImageUploadRequest struct {
	BookingId   int32  `json:"bookingId"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
}

type RatingImageUploadResponse struct {
	Key       string `json:"key"`
	UploadUrl string `json:"uploadUrl"`
}

type RatingImageUrlRequest struct {
	Key string `json:"key"`
}

type RatingImageUrlResponse struct {
	DownloadUrl string `json:"downloadUrl"`
}

// ToolService messages

type ToolIdRequest struct {
	ToolId int32 `json:"toolId"`
}

type ToolResponse struct {
	Tool *Tool `json:"tool"`
}

type ReservedDatesResponse struct {
	ReservedDates []*DateRange `json:"reservedDates"`
}

type ListCommunityToolsRequest struct {
	CommunityId int32 `json:"communityId"`
	Page        int32 `json:"page"`
	PageSize    int32 `json:"pageSize"`
}

type PageRequest struct {
	Page     int32 `json:"page"`
	PageSize int32 `json:"pageSize"`
}

type ListToolsResponse struct {
	Tools      []*Tool `json:"tools"`
	TotalCount int32   `json:"totalCount"`
}

type SetAvailabilityRequest struct {
	ToolId      int32 `json:"toolId"`
	IsAvailable bool  `json:"isAvailable"`
}

// UserService messages

type UserResponse struct {
	User *User `json:"user"`
}

type UpdateLocationRequest struct {
	Location *Location `json:"location"`
}

type RegisterPushTokenRequest struct {
	Token string `json:"token"`
}

// NotificationService messages

type ListNotificationsResponse struct {
	Notifications []*Notification `json:"notifications"`
	TotalCount    int32           `json:"totalCount"`
}

type MarkNotificationReadRequest struct {
	NotificationId int32 `json:"notificationId"`
}
