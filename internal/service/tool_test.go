package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"emprius-backend/internal/domain"
	"emprius-backend/internal/repository"
)

func TestToolService_GetTool(t *testing.T) {
	ctx := context.Background()
	toolRepo, bookingRepo, userRepo := new(MockToolRepo), new(MockBookingRepo), new(MockUserRepo)
	svc := NewToolService(toolRepo, bookingRepo, userRepo)

	reserved := []domain.DateRange{{From: day10, To: day11}}
	toolRepo.On("GetByID", ctx, int32(2)).Return(communityTool(), nil)
	bookingRepo.On("ReservedRanges", ctx, int32(2), int32(0)).Return(reserved, nil)

	tool, err := svc.GetTool(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, reserved, tool.ReservedDates)

	dates, err := svc.GetReservedDates(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, reserved, dates)
}

func TestToolService_ListByCommunity(t *testing.T) {
	ctx := context.Background()
	toolRepo, bookingRepo, userRepo := new(MockToolRepo), new(MockBookingRepo), new(MockUserRepo)
	svc := NewToolService(toolRepo, bookingRepo, userRepo)
	userRepo.On("ListCommunities", ctx, int32(3)).Return([]domain.Community{{ID: 1}}, nil)

	t.Run("Member", func(t *testing.T) {
		toolRepo.On("ListByCommunity", ctx, int32(1), int32(1), int32(20)).Return([]domain.Tool{*communityTool()}, 1, nil)

		tools, count, err := svc.ListByCommunity(ctx, 3, 1, 1, 20)
		require.NoError(t, err)
		assert.Equal(t, int32(1), count)
		assert.Len(t, tools, 1)
	})

	t.Run("NotMember", func(t *testing.T) {
		_, _, err := svc.ListByCommunity(ctx, 3, 7, 1, 20)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestToolService_SetAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner", func(t *testing.T) {
		toolRepo := new(MockToolRepo)
		svc := NewToolService(toolRepo, new(MockBookingRepo), new(MockUserRepo))
		toolRepo.On("GetByID", ctx, int32(2)).Return(communityTool(), nil)
		toolRepo.On("SetAvailability", ctx, int32(2), false).Return(nil)

		tool, err := svc.SetAvailability(ctx, 10, 2, false)
		require.NoError(t, err)
		assert.False(t, tool.IsAvailable)
	})

	t.Run("NotOwner", func(t *testing.T) {
		toolRepo := new(MockToolRepo)
		svc := NewToolService(toolRepo, new(MockBookingRepo), new(MockUserRepo))
		toolRepo.On("GetByID", ctx, int32(2)).Return(communityTool(), nil)

		_, err := svc.SetAvailability(ctx, 3, 2, false)
		assert.ErrorIs(t, err, ErrUnauthorized)
		toolRepo.AssertNotCalled(t, "SetAvailability", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing", func(t *testing.T) {
		toolRepo := new(MockToolRepo)
		svc := NewToolService(toolRepo, new(MockBookingRepo), new(MockUserRepo))
		toolRepo.On("GetByID", ctx, int32(2)).Return(nil, repository.ErrNotFound)

		_, err := svc.SetAvailability(ctx, 10, 2, false)
		assert.ErrorIs(t, err, ErrToolNotFound)
	})
}

func TestUserService_GetProfile(t *testing.T) {
	ctx := context.Background()
	userRepo, ratingRepo := new(MockUserRepo), new(MockRatingRepo)
	svc := NewUserService(userRepo, ratingRepo)

	userRepo.On("GetByID", ctx, int32(3)).Return(member(3), nil)
	ratingRepo.On("Summary", ctx, int32(3)).Return(&domain.RatingSummary{UserID: 3, Count: 2, Average: decimal.RequireFromString("4.5")}, nil)

	user, summary, err := svc.GetProfile(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
	assert.Equal(t, "4.5", summary.Average.String())

	userRepo.On("GetByID", ctx, int32(9)).Return(nil, repository.ErrNotFound)
	_, _, err = svc.GetProfile(ctx, 9)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_UpdateLocation(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepo)
	svc := NewUserService(userRepo, new(MockRatingRepo))

	loc := domain.Location{Latitude: 41.38, Longitude: 2.17}
	userRepo.On("UpdateLocation", ctx, int32(3), loc).Return(nil)
	assert.NoError(t, svc.UpdateLocation(ctx, 3, loc))

	assert.ErrorIs(t, svc.UpdateLocation(ctx, 3, domain.Location{Latitude: 91}), ErrInvalidInput)
}

func TestNotificationService(t *testing.T) {
	ctx := context.Background()
	noteRepo := new(MockNotificationRepo)
	svc := NewNotificationService(noteRepo)

	noteRepo.On("List", ctx, int32(3), int32(10), int32(10)).Return([]domain.Notification{{ID: 1}}, 11, nil)
	notes, count, err := svc.GetNotifications(ctx, 3, 2, 10)
	require.NoError(t, err)
	assert.Len(t, notes, 1)
	assert.Equal(t, int32(11), count)

	noteRepo.On("MarkAsRead", ctx, int32(5), int32(3)).Return(repository.ErrNotFound)
	assert.ErrorIs(t, svc.MarkAsRead(ctx, 3, 5), ErrNotificationNotFound)
}
