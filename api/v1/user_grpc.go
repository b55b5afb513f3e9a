package apiv1

import (
	"context"

	"google.golang.org/grpc"
)

const (
	UserService_GetProfile_FullMethodName        = "/emprius.api.v1.UserService/GetProfile"
	UserService_UpdateLocation_FullMethodName    = "/emprius.api.v1.UserService/UpdateLocation"
	UserService_RegisterPushToken_FullMethodName = "/emprius.api.v1.UserService/RegisterPushToken"
)

// UserServiceServer is the server API for UserService.
type UserServiceServer interface {
	GetProfile(context.Context, *Empty) (*UserResponse, error)
	UpdateLocation(context.Context, *UpdateLocationRequest) (*Empty, error)
	RegisterPushToken(context.Context, *RegisterPushTokenRequest) (*Empty, error)
}

func RegisterUserServiceServer(s grpc.ServiceRegistrar, srv UserServiceServer) {
	s.RegisterService(&UserService_ServiceDesc, srv)
}

var UserService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "emprius.api.v1.UserService",
	HandlerType: (*UserServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetProfile", Handler: unary(UserService_GetProfile_FullMethodName, UserServiceServer.GetProfile)},
		{MethodName: "UpdateLocation", Handler: unary(UserService_UpdateLocation_FullMethodName, UserServiceServer.UpdateLocation)},
		{MethodName: "RegisterPushToken", Handler: unary(UserService_RegisterPushToken_FullMethodName, UserServiceServer.RegisterPushToken)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "emprius/api/v1",
}
