package grpc

import (
	"context"

	pb "emprius-backend/api/v1"
	"emprius-backend/internal/service"
)

type ToolHandler struct {
	toolSvc service.ToolService
}

func NewToolHandler(toolSvc service.ToolService) *ToolHandler {
	return &ToolHandler{toolSvc: toolSvc}
}

func (h *ToolHandler) GetTool(ctx context.Context, req *pb.ToolIdRequest) (*pb.ToolResponse, error) {
	if _, err := GetUserIDFromContext(ctx); err != nil {
		return nil, err
	}
	tool, err := h.toolSvc.GetTool(ctx, req.ToolId)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ToolResponse{Tool: MapDomainToolToProto(tool)}, nil
}

// GetReservedDates is public so the booking calendar can render without a session.
func (h *ToolHandler) GetReservedDates(ctx context.Context, req *pb.ToolIdRequest) (*pb.ReservedDatesResponse, error) {
	dates, err := h.toolSvc.GetReservedDates(ctx, req.ToolId)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ReservedDatesResponse{ReservedDates: MapDomainDateRangesToProto(dates)}, nil
}

func (h *ToolHandler) ListCommunityTools(ctx context.Context, req *pb.ListCommunityToolsRequest) (*pb.ListToolsResponse, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	page, pageSize := normalizePage(req.Page, req.PageSize)
	tools, count, err := h.toolSvc.ListByCommunity(ctx, userID, req.CommunityId, page, pageSize)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListToolsResponse{Tools: MapDomainToolsToProto(tools), TotalCount: count}, nil
}

func (h *ToolHandler) ListMyTools(ctx context.Context, req *pb.PageRequest) (*pb.ListToolsResponse, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	page, pageSize := normalizePage(req.Page, req.PageSize)
	tools, count, err := h.toolSvc.ListMyTools(ctx, userID, page, pageSize)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListToolsResponse{Tools: MapDomainToolsToProto(tools), TotalCount: count}, nil
}

func (h *ToolHandler) SetAvailability(ctx context.Context, req *pb.SetAvailabilityRequest) (*pb.ToolResponse, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	tool, err := h.toolSvc.SetAvailability(ctx, userID, req.ToolId, req.IsAvailable)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ToolResponse{Tool: MapDomainToolToProto(tool)}, nil
}
