package apiv1

import (
	"context"

	"google.golang.org/grpc"
)

const (
	NotificationService_ListNotifications_FullMethodName    = "/emprius.api.v1.NotificationService/ListNotifications"
	NotificationService_MarkNotificationRead_FullMethodName = "/emprius.api.v1.NotificationService/MarkNotificationRead"
)

// NotificationServiceServer is the server API for NotificationService.
type NotificationServiceServer interface {
	ListNotifications(context.Context, *PageRequest) (*ListNotificationsResponse, error)
	MarkNotificationRead(context.Context, *MarkNotificationReadRequest) (*Empty, error)
}

func RegisterNotificationServiceServer(s grpc.ServiceRegistrar, srv NotificationServiceServer) {
	s.RegisterService(&NotificationService_ServiceDesc, srv)
}

var NotificationService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "emprius.api.v1.NotificationService",
	HandlerType: (*NotificationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListNotifications", Handler: unary(NotificationService_ListNotifications_FullMethodName, NotificationServiceServer.ListNotifications)},
		{MethodName: "MarkNotificationRead", Handler: unary(NotificationService_MarkNotificationRead_FullMethodName, NotificationServiceServer.MarkNotificationRead)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "emprius/api/v1",
}
