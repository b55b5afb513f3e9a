package service

import (
	"context"
	"errors"

	"emprius-backend/internal/domain"
	"emprius-backend/internal/repository"
)

type userService struct {
	userRepo   repository.UserRepository
	ratingRepo repository.RatingRepository
}

func NewUserService(userRepo repository.UserRepository, ratingRepo repository.RatingRepository) UserService {
	return &userService{userRepo: userRepo, ratingRepo: ratingRepo}
}

func (s *userService) GetProfile(ctx context.Context, userID int32) (*domain.User, *domain.RatingSummary, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}
	summary, err := s.ratingRepo.Summary(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return user, summary, nil
}

func (s *userService) UpdateLocation(ctx context.Context, userID int32, loc domain.Location) error {
	if loc.Latitude < -90 || loc.Latitude > 90 || loc.Longitude < -180 || loc.Longitude > 180 {
		return ErrInvalidInput
	}
	return s.userRepo.UpdateLocation(ctx, userID, loc)
}

func (s *userService) RegisterPushToken(ctx context.Context, userID int32, token string) error {
	return s.userRepo.UpdatePushToken(ctx, userID, token)
}
