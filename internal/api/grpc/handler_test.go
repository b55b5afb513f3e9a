package grpc_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "emprius-backend/api/v1"
	"emprius-backend/internal/api/grpc"
	"emprius-backend/internal/booking"
	"emprius-backend/internal/domain"
	"emprius-backend/internal/repository"
	"emprius-backend/internal/service"
	"emprius-backend/internal/storage"
)

func userCtx(id string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs("user-id", id))
}

func TestBookingHandler_CreateBooking(t *testing.T) {
	svc := new(MockBookingService)
	handler := grpc.NewBookingHandler(svc, new(MockRatingImageService))
	ctx := userCtx("7")

	t.Run("Success", func(t *testing.T) {
		in := service.CreateBookingInput{ToolID: 3, StartDate: 1717977600, EndDate: 1718150400, Contact: "call me"}
		svc.On("CreateBooking", ctx, int32(7), in).Return(&domain.Booking{
			ID: 11, ToolID: 3, FromUserID: 7, ToUserID: 2,
			StartDate: in.StartDate, EndDate: in.EndDate,
			Status: domain.BookingStatusPending,
		}, nil).Once()

		res, err := handler.CreateBooking(ctx, &pb.CreateBookingRequest{
			ToolId: 3, StartDate: in.StartDate, EndDate: in.EndDate, Contact: "call me",
		})
		require.NoError(t, err)
		assert.Equal(t, int32(11), res.Booking.Id)
		assert.Equal(t, "PENDING", res.Booking.BookingStatus)
	})

	t.Run("Conflict", func(t *testing.T) {
		svc.On("CreateBooking", ctx, int32(7), mock.Anything).
			Return(nil, &booking.ConflictError{Reserved: domain.DateRange{From: 1717977600, To: 1718150400}}).Once()

		_, err := handler.CreateBooking(ctx, &pb.CreateBookingRequest{ToolId: 3})
		assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	})

	t.Run("MissingUser", func(t *testing.T) {
		_, err := handler.CreateBooking(context.Background(), &pb.CreateBookingRequest{ToolId: 3})
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})
}

func TestBookingHandler_Transitions(t *testing.T) {
	svc := new(MockBookingService)
	handler := grpc.NewBookingHandler(svc, new(MockRatingImageService))
	ctx := userCtx("2")

	accepted := &domain.Booking{ID: 11, ToUserID: 2, Status: domain.BookingStatusAccepted}
	svc.On("AcceptBooking", ctx, int32(2), int32(11)).Return(accepted, nil)
	svc.On("DenyBooking", ctx, int32(2), int32(12)).Return(nil, service.ErrUnauthorized)
	svc.On("PickBooking", ctx, int32(2), int32(13)).Return(nil, service.ErrStaleBooking)
	svc.On("ReturnBooking", ctx, int32(2), int32(14), false).Return(nil, service.ErrReturnBeforeEnd)
	svc.On("CancelBooking", ctx, int32(2), int32(15)).Return(nil, service.ErrBookingNotFound)

	res, err := handler.AcceptBooking(ctx, &pb.BookingIdRequest{BookingId: 11})
	require.NoError(t, err)
	assert.Equal(t, "ACCEPTED", res.Booking.BookingStatus)

	_, err = handler.DenyBooking(ctx, &pb.BookingIdRequest{BookingId: 12})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = handler.PickBooking(ctx, &pb.BookingIdRequest{BookingId: 13})
	assert.Equal(t, codes.Aborted, status.Code(err))

	_, err = handler.ReturnBooking(ctx, &pb.ReturnBookingRequest{BookingId: 14})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = handler.CancelBooking(ctx, &pb.BookingIdRequest{BookingId: 15})
	assert.Equal(t, codes.NotFound, status.Code(err))

	svc.AssertExpectations(t)
}

func TestBookingHandler_ListPetitions(t *testing.T) {
	svc := new(MockBookingService)
	handler := grpc.NewBookingHandler(svc, new(MockRatingImageService))
	ctx := userCtx("7")

	t.Run("DefaultsPaging", func(t *testing.T) {
		svc.On("ListPetitions", ctx, int32(7), mock.MatchedBy(func(f repository.BookingFilter) bool {
			return f.Page == 1 && f.PageSize == 20 &&
				len(f.Statuses) == 1 && f.Statuses[0] == domain.BookingStatusPending
		})).Return([]domain.Booking{{ID: 1}, {ID: 2}}, int32(2), nil).Once()

		res, err := handler.ListPetitions(ctx, &pb.ListBookingsRequest{Statuses: []string{"PENDING"}})
		require.NoError(t, err)
		assert.Len(t, res.Bookings, 2)
		assert.Equal(t, int32(2), res.TotalCount)
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		_, err := handler.ListPetitions(ctx, &pb.ListBookingsRequest{Statuses: []string{"LOST"}})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestBookingHandler_GetBookingActions(t *testing.T) {
	svc := new(MockBookingService)
	handler := grpc.NewBookingHandler(svc, new(MockRatingImageService))
	ctx := userCtx("7")

	b := &domain.Booking{ID: 11, FromUserID: 7, ToUserID: 2, Status: domain.BookingStatusPending}
	svc.On("GetBooking", ctx, int32(7), int32(11)).Return(b, nil)
	svc.On("GetBookingActions", ctx, int32(7), int32(11)).
		Return([]booking.Action{{Kind: booking.ActionCancel}}, nil)

	res, err := handler.GetBookingActions(ctx, &pb.BookingIdRequest{BookingId: 11})
	require.NoError(t, err)
	assert.Equal(t, "petition", res.Role)
	require.Len(t, res.Actions, 1)
	assert.Equal(t, "cancel", res.Actions[0].Kind)
}

func TestBookingHandler_CheckEligibility(t *testing.T) {
	svc := new(MockBookingService)
	handler := grpc.NewBookingHandler(svc, new(MockRatingImageService))
	ctx := userCtx("7")

	reason := booking.ReasonIsTooFarAway
	svc.On("CheckEligibility", ctx, int32(7), int32(3)).
		Return(booking.Eligibility{CanBook: false, Why: &reason}, nil)

	res, err := handler.CheckEligibility(ctx, &pb.CheckEligibilityRequest{ToolId: 3})
	require.NoError(t, err)
	assert.False(t, res.CanBook)
	require.NotNil(t, res.Why)
	assert.Equal(t, "isTooFarAway", *res.Why)
}

func TestBookingHandler_SubmitRating(t *testing.T) {
	svc := new(MockBookingService)
	handler := grpc.NewBookingHandler(svc, new(MockRatingImageService))
	ctx := userCtx("7")

	t.Run("Success", func(t *testing.T) {
		in := service.RatingInput{Rating: 5, Comment: "great"}
		svc.On("SubmitRating", ctx, int32(7), int32(11), in).Return(&domain.RatingEntry{
			ID: 1, BookingID: 11, FromUserID: 7, ToUserID: 2,
			Role: domain.RatingRoleRequester, Rating: 5, Comment: "great",
		}, nil).Once()

		res, err := handler.SubmitRating(ctx, &pb.SubmitRatingRequest{BookingId: 11, Rating: 5, Comment: "great"})
		require.NoError(t, err)
		assert.Equal(t, "requester", res.Entry.Role)
	})

	t.Run("AlreadyRated", func(t *testing.T) {
		svc.On("SubmitRating", ctx, int32(7), int32(12), mock.Anything).Return(nil, service.ErrAlreadyRated).Once()

		_, err := handler.SubmitRating(ctx, &pb.SubmitRatingRequest{BookingId: 12, Rating: 4})
		assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	})

	t.Run("InvalidScore", func(t *testing.T) {
		svc.On("SubmitRating", ctx, int32(7), int32(13), mock.Anything).Return(nil, service.ErrInvalidRating).Once()

		_, err := handler.SubmitRating(ctx, &pb.SubmitRatingRequest{BookingId: 13, Rating: 9})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestBookingHandler_RatingImages(t *testing.T) {
	images := new(MockRatingImageService)
	handler := grpc.NewBookingHandler(new(MockBookingService), images)
	ctx := userCtx("7")

	images.On("RequestUpload", ctx, int32(7), int32(11), "photo.png", "image/png").
		Return("ratings/11/abc.png", "http://localhost/api/v1/upload/abc", nil)
	images.On("DownloadURL", ctx, "../etc/passwd").Return("", fmt.Errorf("download url: %w", storage.ErrInvalidKey))

	res, err := handler.RequestRatingImageUpload(ctx, &pb.RatingImageUploadRequest{
		BookingId: 11, Filename: "photo.png", ContentType: "image/png",
	})
	require.NoError(t, err)
	assert.Equal(t, "ratings/11/abc.png", res.Key)

	_, err = handler.GetRatingImageUrl(ctx, &pb.RatingImageUrlRequest{Key: "../etc/passwd"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestToolHandler(t *testing.T) {
	svc := new(MockToolService)
	handler := grpc.NewToolHandler(svc)
	ctx := userCtx("7")

	t.Run("GetReservedDatesWithoutSession", func(t *testing.T) {
		svc.On("GetReservedDates", context.Background(), int32(3)).
			Return([]domain.DateRange{{From: 1717977600, To: 1718150400}}, nil).Once()

		res, err := handler.GetReservedDates(context.Background(), &pb.ToolIdRequest{ToolId: 3})
		require.NoError(t, err)
		require.Len(t, res.ReservedDates, 1)
		assert.Equal(t, int64(1718150400), res.ReservedDates[0].To)
	})

	t.Run("ListCommunityTools", func(t *testing.T) {
		svc.On("ListByCommunity", ctx, int32(7), int32(4), int32(2), int32(10)).
			Return([]domain.Tool{{ID: 3, Name: "Drill"}}, int32(11), nil).Once()

		res, err := handler.ListCommunityTools(ctx, &pb.ListCommunityToolsRequest{CommunityId: 4, Page: 2, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, "Drill", res.Tools[0].Name)
		assert.Equal(t, int32(11), res.TotalCount)
	})

	t.Run("SetAvailabilityNotOwner", func(t *testing.T) {
		svc.On("SetAvailability", ctx, int32(7), int32(3), false).Return(nil, service.ErrUnauthorized).Once()

		_, err := handler.SetAvailability(ctx, &pb.SetAvailabilityRequest{ToolId: 3})
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})

	t.Run("GetToolNotFound", func(t *testing.T) {
		svc.On("GetTool", ctx, int32(99)).Return(nil, service.ErrToolNotFound).Once()

		_, err := handler.GetTool(ctx, &pb.ToolIdRequest{ToolId: 99})
		assert.Equal(t, codes.NotFound, status.Code(err))
	})
}

func TestUserHandler(t *testing.T) {
	svc := new(MockUserService)
	handler := grpc.NewUserHandler(svc)
	ctx := userCtx("7")

	t.Run("UpdateLocationRequiresLocation", func(t *testing.T) {
		_, err := handler.UpdateLocation(ctx, &pb.UpdateLocationRequest{})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("UpdateLocation", func(t *testing.T) {
		loc := domain.Location{Latitude: 41.38, Longitude: 2.17}
		svc.On("UpdateLocation", ctx, int32(7), loc).Return(nil).Once()

		_, err := handler.UpdateLocation(ctx, &pb.UpdateLocationRequest{Location: &pb.Location{Latitude: 41.38, Longitude: 2.17}})
		assert.NoError(t, err)
	})

	t.Run("RegisterPushToken", func(t *testing.T) {
		svc.On("RegisterPushToken", ctx, int32(7), "fcm-token").Return(nil).Once()

		_, err := handler.RegisterPushToken(ctx, &pb.RegisterPushTokenRequest{Token: "fcm-token"})
		assert.NoError(t, err)
	})

	svc.AssertExpectations(t)
}

func TestNotificationHandler(t *testing.T) {
	svc := new(MockNotificationService)
	handler := grpc.NewNotificationHandler(svc)
	ctx := userCtx("7")

	svc.On("GetNotifications", ctx, int32(7), int32(1), int32(20)).Return([]domain.Notification{
		{ID: 1, Title: "New booking request", Attributes: map[string]string{"booking_id": "11"}},
	}, int32(1), nil)
	svc.On("MarkAsRead", ctx, int32(7), int32(5)).Return(service.ErrNotificationNotFound)

	res, err := handler.ListNotifications(ctx, &pb.PageRequest{})
	require.NoError(t, err)
	require.Len(t, res.Notifications, 1)
	assert.Equal(t, "11", res.Notifications[0].Attributes["booking_id"])

	_, err = handler.MarkNotificationRead(ctx, &pb.MarkNotificationReadRequest{NotificationId: 5})
	assert.Equal(t, codes.NotFound, status.Code(err))
}
