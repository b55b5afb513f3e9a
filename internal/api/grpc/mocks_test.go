package grpc_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"emprius-backend/internal/booking"
	"emprius-backend/internal/domain"
	"emprius-backend/internal/repository"
	"emprius-backend/internal/service"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) booking(args mock.Arguments) (*domain.Booking, error) {
	if b, ok := args.Get(0).(*domain.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingService) CreateBooking(ctx context.Context, userID int32, in service.CreateBookingInput) (*domain.Booking, error) {
	return m.booking(m.Called(ctx, userID, in))
}
func (m *MockBookingService) AcceptBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error) {
	return m.booking(m.Called(ctx, userID, bookingID))
}
func (m *MockBookingService) DenyBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error) {
	return m.booking(m.Called(ctx, userID, bookingID))
}
func (m *MockBookingService) CancelBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error) {
	return m.booking(m.Called(ctx, userID, bookingID))
}
func (m *MockBookingService) PickBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error) {
	return m.booking(m.Called(ctx, userID, bookingID))
}
func (m *MockBookingService) ReturnBooking(ctx context.Context, userID, bookingID int32, force bool) (*domain.Booking, error) {
	return m.booking(m.Called(ctx, userID, bookingID, force))
}
func (m *MockBookingService) GetBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error) {
	return m.booking(m.Called(ctx, userID, bookingID))
}
func (m *MockBookingService) SubmitRating(ctx context.Context, userID, bookingID int32, in service.RatingInput) (*domain.RatingEntry, error) {
	args := m.Called(ctx, userID, bookingID, in)
	if e, ok := args.Get(0).(*domain.RatingEntry); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockBookingService) GetRating(ctx context.Context, userID, bookingID int32) (*domain.Rating, error) {
	args := m.Called(ctx, userID, bookingID)
	if r, ok := args.Get(0).(*domain.Rating); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockBookingService) ListPetitions(ctx context.Context, userID int32, filter repository.BookingFilter) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookingService) ListRequests(ctx context.Context, userID int32, filter repository.BookingFilter) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookingService) GetBookingActions(ctx context.Context, userID, bookingID int32) ([]booking.Action, error) {
	args := m.Called(ctx, userID, bookingID)
	return args.Get(0).([]booking.Action), args.Error(1)
}
func (m *MockBookingService) CheckEligibility(ctx context.Context, userID, toolID int32) (booking.Eligibility, error) {
	args := m.Called(ctx, userID, toolID)
	return args.Get(0).(booking.Eligibility), args.Error(1)
}

type MockToolService struct {
	mock.Mock
}

func (m *MockToolService) tool(args mock.Arguments) (*domain.Tool, error) {
	if t, ok := args.Get(0).(*domain.Tool); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockToolService) GetTool(ctx context.Context, toolID int32) (*domain.Tool, error) {
	return m.tool(m.Called(ctx, toolID))
}
func (m *MockToolService) GetReservedDates(ctx context.Context, toolID int32) ([]domain.DateRange, error) {
	args := m.Called(ctx, toolID)
	return args.Get(0).([]domain.DateRange), args.Error(1)
}
func (m *MockToolService) ListByCommunity(ctx context.Context, userID, communityID int32, page, pageSize int32) ([]domain.Tool, int32, error) {
	args := m.Called(ctx, userID, communityID, page, pageSize)
	return args.Get(0).([]domain.Tool), args.Get(1).(int32), args.Error(2)
}
func (m *MockToolService) ListMyTools(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Tool, int32, error) {
	args := m.Called(ctx, userID, page, pageSize)
	return args.Get(0).([]domain.Tool), args.Get(1).(int32), args.Error(2)
}
func (m *MockToolService) SetAvailability(ctx context.Context, userID, toolID int32, available bool) (*domain.Tool, error) {
	return m.tool(m.Called(ctx, userID, toolID, available))
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetProfile(ctx context.Context, userID int32) (*domain.User, *domain.RatingSummary, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*domain.User)
	s, _ := args.Get(1).(*domain.RatingSummary)
	return u, s, args.Error(2)
}
func (m *MockUserService) UpdateLocation(ctx context.Context, userID int32, loc domain.Location) error {
	return m.Called(ctx, userID, loc).Error(0)
}
func (m *MockUserService) RegisterPushToken(ctx context.Context, userID int32, token string) error {
	return m.Called(ctx, userID, token).Error(0)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, page, pageSize)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationService) MarkAsRead(ctx context.Context, userID, notificationID int32) error {
	return m.Called(ctx, userID, notificationID).Error(0)
}

type MockRatingImageService struct {
	mock.Mock
}

func (m *MockRatingImageService) RequestUpload(ctx context.Context, userID, bookingID int32, filename, contentType string) (string, string, error) {
	args := m.Called(ctx, userID, bookingID, filename, contentType)
	return args.String(0), args.String(1), args.Error(2)
}
func (m *MockRatingImageService) DownloadURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}
