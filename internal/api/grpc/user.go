package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "emprius-backend/api/v1"
	"emprius-backend/internal/domain"
	"emprius-backend/internal/service"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func (h *UserHandler) GetProfile(ctx context.Context, req *pb.Empty) (*pb.UserResponse, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	user, summary, err := h.userSvc.GetProfile(ctx, userID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.UserResponse{User: MapDomainUserToProto(user, summary)}, nil
}

func (h *UserHandler) UpdateLocation(ctx context.Context, req *pb.UpdateLocationRequest) (*pb.Empty, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.Location == nil {
		return nil, status.Error(codes.InvalidArgument, "location is required")
	}
	loc := domain.Location{Latitude: req.Location.Latitude, Longitude: req.Location.Longitude}
	if err := h.userSvc.UpdateLocation(ctx, userID, loc); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (h *UserHandler) RegisterPushToken(ctx context.Context, req *pb.RegisterPushTokenRequest) (*pb.Empty, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.userSvc.RegisterPushToken(ctx, userID, req.Token); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}
