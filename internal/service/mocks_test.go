package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"emprius-backend/internal/domain"
	"emprius-backend/internal/repository"
)

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if args.Error(0) == nil {
		b.ID = 100
	}
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// Services mutate the booking they load, hand out a copy.
	b := *args.Get(0).(*domain.Booking)
	return &b, args.Error(1)
}
func (m *MockBookingRepo) UpdateStatus(ctx context.Context, b *domain.Booking, from domain.BookingStatus) error {
	args := m.Called(ctx, b.Status, from)
	return args.Error(0)
}
func (m *MockBookingRepo) AcceptLocked(ctx context.Context, b *domain.Booking, from domain.BookingStatus, guard func([]domain.DateRange) error) error {
	args := m.Called(ctx, b.ID, from)
	if reserved, ok := args.Get(0).([]domain.DateRange); ok {
		if err := guard(reserved); err != nil {
			return err
		}
	}
	return args.Error(1)
}
func (m *MockBookingRepo) Return(ctx context.Context, b *domain.Booking, from domain.BookingStatus, handOver *repository.HandOver) error {
	args := m.Called(ctx, b.Status, from, handOver)
	return args.Error(0)
}
func (m *MockBookingRepo) ListByRequester(ctx context.Context, userID int32, filter repository.BookingFilter) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]domain.Booking), int32(args.Int(1)), args.Error(2)
}
func (m *MockBookingRepo) ListByHolder(ctx context.Context, userID int32, filter repository.BookingFilter) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]domain.Booking), int32(args.Int(1)), args.Error(2)
}
func (m *MockBookingRepo) ReservedRanges(ctx context.Context, toolID int32, excludeBookingID int32) ([]domain.DateRange, error) {
	args := m.Called(ctx, toolID, excludeBookingID)
	return args.Get(0).([]domain.DateRange), args.Error(1)
}

// MockToolRepo
type MockToolRepo struct {
	mock.Mock
}

func (m *MockToolRepo) Create(ctx context.Context, tool *domain.Tool) error {
	args := m.Called(ctx, tool)
	return args.Error(0)
}
func (m *MockToolRepo) GetByID(ctx context.Context, id int32) (*domain.Tool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	t := *args.Get(0).(*domain.Tool)
	return &t, args.Error(1)
}
func (m *MockToolRepo) Update(ctx context.Context, tool *domain.Tool) error {
	args := m.Called(ctx, tool)
	return args.Error(0)
}
func (m *MockToolRepo) SetAvailability(ctx context.Context, id int32, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}
func (m *MockToolRepo) ListByCommunity(ctx context.Context, communityID int32, page, pageSize int32) ([]domain.Tool, int32, error) {
	args := m.Called(ctx, communityID, page, pageSize)
	return args.Get(0).([]domain.Tool), int32(args.Int(1)), args.Error(2)
}
func (m *MockToolRepo) ListByOwner(ctx context.Context, ownerID int32, page, pageSize int32) ([]domain.Tool, int32, error) {
	args := m.Called(ctx, ownerID, page, pageSize)
	return args.Get(0).([]domain.Tool), int32(args.Int(1)), args.Error(2)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) ListCommunities(ctx context.Context, userID int32) ([]domain.Community, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Community), args.Error(1)
}
func (m *MockUserRepo) UpdateLocation(ctx context.Context, userID int32, loc domain.Location) error {
	args := m.Called(ctx, userID, loc)
	return args.Error(0)
}
func (m *MockUserRepo) UpdatePushToken(ctx context.Context, userID int32, token string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

// MockRatingRepo
type MockRatingRepo struct {
	mock.Mock
}

func (m *MockRatingRepo) Create(ctx context.Context, entry *domain.RatingEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockRatingRepo) GetByBooking(ctx context.Context, bookingID int32) (*domain.Rating, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rating), args.Error(1)
}
func (m *MockRatingRepo) RatedBookings(ctx context.Context, userID int32, bookingIDs []int32) (map[int32]bool, error) {
	args := m.Called(ctx, userID, bookingIDs)
	return args.Get(0).(map[int32]bool), args.Error(1)
}
func (m *MockRatingRepo) Summary(ctx context.Context, userID int32) (*domain.RatingSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RatingSummary), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), int32(args.Int(1)), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockNotifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Name() string { return "mock" }
func (m *MockNotifier) Notify(ctx context.Context, to *domain.User, msg Message) error {
	args := m.Called(ctx, to.ID, msg.Title)
	return args.Error(0)
}
