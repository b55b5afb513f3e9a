package repository

import (
	"context"
	"errors"

	"emprius-backend/internal/domain"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrStaleStatus is returned when a status update lost a race: the row was no
	// longer in the expected status when the write ran.
	ErrStaleStatus = errors.New("booking status changed concurrently")
	ErrDuplicate   = errors.New("record already exists")
)

// BookingFilter narrows booking listings. Zero values mean "any".
type BookingFilter struct {
	Statuses []domain.BookingStatus
	Page     int32
	PageSize int32
}

// HandOver moves a nomadic tool to the requester of the loan being returned.
type HandOver struct {
	HolderID int32
	Location domain.Location
}

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
	// UpdateStatus moves a booking from status `from` to b.Status and persists
	// the pickup/return timestamps. It returns ErrStaleStatus when the stored
	// status is no longer `from`.
	UpdateStatus(ctx context.Context, b *domain.Booking, from domain.BookingStatus) error
	// AcceptLocked is UpdateStatus guarded by a reservation check that runs while
	// the tool row is locked, so two accepts of overlapping bookings serialize.
	AcceptLocked(ctx context.Context, b *domain.Booking, from domain.BookingStatus, guard func(reserved []domain.DateRange) error) error
	// Return persists a RETURNED booking coming from status `from` in one
	// transaction. A non-nil handOver moves the tool to its new holder in the
	// same transaction and points the tool's open bookings at that holder.
	Return(ctx context.Context, b *domain.Booking, from domain.BookingStatus, handOver *HandOver) error
	ListByRequester(ctx context.Context, userID int32, filter BookingFilter) ([]domain.Booking, int32, error)
	ListByHolder(ctx context.Context, userID int32, filter BookingFilter) ([]domain.Booking, int32, error)
	// ReservedRanges returns the date ranges of ACCEPTED and PICKED bookings of a tool.
	ReservedRanges(ctx context.Context, toolID int32, excludeBookingID int32) ([]domain.DateRange, error)
}

type ToolRepository interface {
	Create(ctx context.Context, tool *domain.Tool) error
	GetByID(ctx context.Context, id int32) (*domain.Tool, error)
	Update(ctx context.Context, tool *domain.Tool) error
	SetAvailability(ctx context.Context, id int32, available bool) error
	ListByCommunity(ctx context.Context, communityID int32, page, pageSize int32) ([]domain.Tool, int32, error)
	ListByOwner(ctx context.Context, ownerID int32, page, pageSize int32) ([]domain.Tool, int32, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	ListCommunities(ctx context.Context, userID int32) ([]domain.Community, error)
	UpdateLocation(ctx context.Context, userID int32, loc domain.Location) error
	UpdatePushToken(ctx context.Context, userID int32, token string) error
}

type RatingRepository interface {
	Create(ctx context.Context, entry *domain.RatingEntry) error
	GetByBooking(ctx context.Context, bookingID int32) (*domain.Rating, error)
	RatedBookings(ctx context.Context, userID int32, bookingIDs []int32) (map[int32]bool, error)
	Summary(ctx context.Context, userID int32) (*domain.RatingSummary, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}
