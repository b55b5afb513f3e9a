package service

import (
	"context"

	"emprius-backend/internal/booking"
	"emprius-backend/internal/domain"
	"emprius-backend/internal/repository"
)

// CreateBookingInput carries a requester's booking form.
type CreateBookingInput struct {
	ToolID    int32
	StartDate int64
	EndDate   int64
	Contact   string
	Comments  string
}

// RatingInput carries one party's rating of a returned booking. Images are
// storage keys obtained from RatingImageService.
type RatingInput struct {
	Rating  int32
	Comment string
	Images  []string
}

type BookingService interface {
	CreateBooking(ctx context.Context, userID int32, in CreateBookingInput) (*domain.Booking, error)
	AcceptBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error)
	DenyBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error)
	CancelBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error)
	PickBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error)
	// ReturnBooking marks the tool as back with its holder. Returning before the
	// end date fails with ErrReturnBeforeEnd unless force is set.
	ReturnBooking(ctx context.Context, userID, bookingID int32, force bool) (*domain.Booking, error)
	SubmitRating(ctx context.Context, userID, bookingID int32, in RatingInput) (*domain.RatingEntry, error)
	GetBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error)
	GetRating(ctx context.Context, userID, bookingID int32) (*domain.Rating, error)
	// ListPetitions lists the bookings userID requested.
	ListPetitions(ctx context.Context, userID int32, filter repository.BookingFilter) ([]domain.Booking, int32, error)
	// ListRequests lists the bookings addressed to userID as owner or holder.
	ListRequests(ctx context.Context, userID int32, filter repository.BookingFilter) ([]domain.Booking, int32, error)
	GetBookingActions(ctx context.Context, userID, bookingID int32) ([]booking.Action, error)
	CheckEligibility(ctx context.Context, userID, toolID int32) (booking.Eligibility, error)
}

type ToolService interface {
	GetTool(ctx context.Context, toolID int32) (*domain.Tool, error)
	GetReservedDates(ctx context.Context, toolID int32) ([]domain.DateRange, error)
	ListByCommunity(ctx context.Context, userID, communityID int32, page, pageSize int32) ([]domain.Tool, int32, error)
	ListMyTools(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Tool, int32, error)
	SetAvailability(ctx context.Context, userID, toolID int32, available bool) (*domain.Tool, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID int32) (*domain.User, *domain.RatingSummary, error)
	UpdateLocation(ctx context.Context, userID int32, loc domain.Location) error
	RegisterPushToken(ctx context.Context, userID int32, token string) error
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type RatingImageService interface {
	// RequestUpload reserves a storage key for an image attached to the
	// caller's rating of bookingID and returns where to upload it.
	RequestUpload(ctx context.Context, userID, bookingID int32, filename, contentType string) (key, uploadURL string, err error)
	DownloadURL(ctx context.Context, key string) (string, error)
}

// Message is a user-facing notification about a booking event.
type Message struct {
	Title      string
	Body       string
	Attributes map[string]string
}

// Notifier delivers messages outside the application. Delivery is best effort.
type Notifier interface {
	Name() string
	Notify(ctx context.Context, to *domain.User, msg Message) error
}
