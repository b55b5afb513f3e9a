package grpc

import (
	"context"

	pb "emprius-backend/api/v1"
	"emprius-backend/internal/service"
)

type NotificationHandler struct {
	noteSvc service.NotificationService
}

func NewNotificationHandler(noteSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{noteSvc: noteSvc}
}

func (h *NotificationHandler) ListNotifications(ctx context.Context, req *pb.PageRequest) (*pb.ListNotificationsResponse, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	page, pageSize := normalizePage(req.Page, req.PageSize)
	notes, count, err := h.noteSvc.GetNotifications(ctx, userID, page, pageSize)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListNotificationsResponse{
		Notifications: MapDomainNotificationsToProto(notes),
		TotalCount:    count,
	}, nil
}

func (h *NotificationHandler) MarkNotificationRead(ctx context.Context, req *pb.MarkNotificationReadRequest) (*pb.Empty, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.noteSvc.MarkAsRead(ctx, userID, req.NotificationId); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}
