package apiv1

import (
	"context"

	"google.golang.org/grpc"
)

const (
	ToolService_GetTool_FullMethodName            = "/emprius.api.v1.ToolService/GetTool"
	ToolService_GetReservedDates_FullMethodName   = "/emprius.api.v1.ToolService/GetReservedDates"
	ToolService_ListCommunityTools_FullMethodName = "/emprius.api.v1.ToolService/ListCommunityTools"
	ToolService_ListMyTools_FullMethodName        = "/emprius.api.v1.ToolService/ListMyTools"
	ToolService_SetAvailability_FullMethodName    = "/emprius.api.v1.ToolService/SetAvailability"
)

// ToolServiceServer is the server API for ToolService.
type ToolServiceServer interface {
	GetTool(context.Context, *ToolIdRequest) (*ToolResponse, error)
	GetReservedDates(context.Context, *ToolIdRequest) (*ReservedDatesResponse, error)
	ListCommunityTools(context.Context, *ListCommunityToolsRequest) (*ListToolsResponse, error)
	ListMyTools(context.Context, *PageRequest) (*ListToolsResponse, error)
	SetAvailability(context.Context, *SetAvailabilityRequest) (*ToolResponse, error)
}

func RegisterToolServiceServer(s grpc.ServiceRegistrar, srv ToolServiceServer) {
	s.RegisterService(&ToolService_ServiceDesc, srv)
}

var ToolService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "emprius.api.v1.ToolService",
	HandlerType: (*ToolServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetTool", Handler: unary(ToolService_GetTool_FullMethodName, ToolServiceServer.GetTool)},
		{MethodName: "GetReservedDates", Handler: unary(ToolService_GetReservedDates_FullMethodName, ToolServiceServer.GetReservedDates)},
		{MethodName: "ListCommunityTools", Handler: unary(ToolService_ListCommunityTools_FullMethodName, ToolServiceServer.ListCommunityTools)},
		{MethodName: "ListMyTools", Handler: unary(ToolService_ListMyTools_FullMethodName, ToolServiceServer.ListMyTools)},
		{MethodName: "SetAvailability", Handler: unary(ToolService_SetAvailability_FullMethodName, ToolServiceServer.SetAvailability)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "emprius/api/v1",
}

// ToolServiceClient is the client API for ToolService.
type ToolServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewToolServiceClient(cc grpc.ClientConnInterface) *ToolServiceClient {
	return &ToolServiceClient{cc: cc}
}

func (c *ToolServiceClient) GetTool(ctx context.Context, in *ToolIdRequest, opts ...grpc.CallOption) (*ToolResponse, error) {
	return invoke[ToolResponse](ctx, c.cc, ToolService_GetTool_FullMethodName, in, opts)
}

func (c *ToolServiceClient) GetReservedDates(ctx context.Context, in *ToolIdRequest, opts ...grpc.CallOption) (*ReservedDatesResponse, error) {
	return invoke[ReservedDatesResponse](ctx, c.cc, ToolService_GetReservedDates_FullMethodName, in, opts)
}

func (c *ToolServiceClient) ListCommunityTools(ctx context.Context, in *ListCommunityToolsRequest, opts ...grpc.CallOption) (*ListToolsResponse, error) {
	return invoke[ListToolsResponse](ctx, c.cc, ToolService_ListCommunityTools_FullMethodName, in, opts)
}

func (c *ToolServiceClient) ListMyTools(ctx context.Context, in *PageRequest, opts ...grpc.CallOption) (*ListToolsResponse, error) {
	return invoke[ListToolsResponse](ctx, c.cc, ToolService_ListMyTools_FullMethodName, in, opts)
}

func (c *ToolServiceClient) SetAvailability(ctx context.Context, in *SetAvailabilityRequest, opts ...grpc.CallOption) (*ToolResponse, error) {
	return invoke[ToolResponse](ctx, c.cc, ToolService_SetAvailability_FullMethodName, in, opts)
}
