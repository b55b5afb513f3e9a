package service

import (
	"context"
	"errors"
	"slices"

	"emprius-backend/internal/domain"
	"emprius-backend/internal/repository"
)

type toolService struct {
	toolRepo    repository.ToolRepository
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
}

func NewToolService(toolRepo repository.ToolRepository, bookingRepo repository.BookingRepository, userRepo repository.UserRepository) ToolService {
	return &toolService{toolRepo: toolRepo, bookingRepo: bookingRepo, userRepo: userRepo}
}

func (s *toolService) GetTool(ctx context.Context, toolID int32) (*domain.Tool, error) {
	return loadToolWithReservations(ctx, s.toolRepo, s.bookingRepo, toolID)
}

func (s *toolService) GetReservedDates(ctx context.Context, toolID int32) ([]domain.DateRange, error) {
	tool, err := s.GetTool(ctx, toolID)
	if err != nil {
		return nil, err
	}
	return tool.ReservedDates, nil
}

// ListByCommunity lists the tools shared with a community the caller belongs to.
func (s *toolService) ListByCommunity(ctx context.Context, userID, communityID int32, page, pageSize int32) ([]domain.Tool, int32, error) {
	communities, err := s.userRepo.ListCommunities(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	member := slices.ContainsFunc(communities, func(c domain.Community) bool { return c.ID == communityID })
	if !member {
		return nil, 0, ErrUnauthorized
	}
	return s.toolRepo.ListByCommunity(ctx, communityID, page, pageSize)
}

func (s *toolService) ListMyTools(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Tool, int32, error) {
	return s.toolRepo.ListByOwner(ctx, userID, page, pageSize)
}

func (s *toolService) SetAvailability(ctx context.Context, userID, toolID int32, available bool) (*domain.Tool, error) {
	tool, err := s.toolRepo.GetByID(ctx, toolID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrToolNotFound
		}
		return nil, err
	}
	if tool.UserID != userID {
		return nil, ErrUnauthorized
	}
	if err := s.toolRepo.SetAvailability(ctx, toolID, available); err != nil {
		return nil, err
	}
	tool.IsAvailable = available
	return tool, nil
}
