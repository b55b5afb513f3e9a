package apiv1

import (
	"context"

	"google.golang.org/grpc"
)

const (
	BookingService_CreateBooking_FullMethodName            = "/emprius.api.v1.BookingService/CreateBooking"
	BookingService_AcceptBooking_FullMethodName            = "/emprius.api.v1.BookingService/AcceptBooking"
	BookingService_DenyBooking_FullMethodName              = "/emprius.api.v1.BookingService/DenyBooking"
	BookingService_CancelBooking_FullMethodName            = "/emprius.api.v1.BookingService/CancelBooking"
	BookingService_PickBooking_FullMethodName              = "/emprius.api.v1.BookingService/PickBooking"
	BookingService_ReturnBooking_FullMethodName            = "/emprius.api.v1.BookingService/ReturnBooking"
	BookingService_GetBooking_FullMethodName               = "/emprius.api.v1.BookingService/GetBooking"
	BookingService_ListPetitions_FullMethodName            = "/emprius.api.v1.BookingService/ListPetitions"
	BookingService_ListRequests_FullMethodName             = "/emprius.api.v1.BookingService/ListRequests"
	BookingService_GetBookingActions_FullMethodName        = "/emprius.api.v1.BookingService/GetBookingActions"
	BookingService_CheckEligibility_FullMethodName         = "/emprius.api.v1.BookingService/CheckEligibility"
	BookingService_SubmitRating_FullMethodName             = "/emprius.api.v1.BookingService/SubmitRating"
	BookingService_GetRating_FullMethodName                = "/emprius.api.v1.BookingService/GetRating"
	BookingService_RequestRatingImageUpload_FullMethodName = "/emprius.api.v1.BookingService/RequestRatingImageUpload"
	BookingService_GetRatingImageUrl_FullMethodName        = "/emprius.api.v1.BookingService/GetRatingImageUrl"
)

// BookingServiceServer is the server API for BookingService.
type BookingServiceServer interface {
	CreateBooking(context.Context, *CreateBookingRequest) (*BookingResponse, error)
	AcceptBooking(context.Context, *BookingIdRequest) (*BookingResponse, error)
	DenyBooking(context.Context, *BookingIdRequest) (*BookingResponse, error)
	CancelBooking(context.Context, *BookingIdRequest) (*BookingResponse, error)
	PickBooking(context.Context, *BookingIdRequest) (*BookingResponse, error)
	ReturnBooking(context.Context, *ReturnBookingRequest) (*BookingResponse, error)
	GetBooking(context.Context, *BookingIdRequest) (*BookingResponse, error)
	ListPetitions(context.Context, *ListBookingsRequest) (*ListBookingsResponse, error)
	ListRequests(context.Context, *ListBookingsRequest) (*ListBookingsResponse, error)
	GetBookingActions(context.Context, *BookingIdRequest) (*GetBookingActionsResponse, error)
	CheckEligibility(context.Context, *CheckEligibilityRequest) (*CheckEligibilityResponse, error)
	SubmitRating(context.Context, *SubmitRatingRequest) (*SubmitRatingResponse, error)
	GetRating(context.Context, *BookingIdRequest) (*GetRatingResponse, error)
	RequestRatingImageUpload(context.Context, *RatingImageUploadRequest) (*RatingImageUploadResponse, error)
	GetRatingImageUrl(context.Context, *RatingImageUrlRequest) (*RatingImageUrlResponse, error)
}

func RegisterBookingServiceServer(s grpc.ServiceRegistrar, srv BookingServiceServer) {
	s.RegisterService(&BookingService_ServiceDesc, srv)
}

var BookingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "emprius.api.v1.BookingService",
	HandlerType: (*BookingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateBooking", Handler: unary(BookingService_CreateBooking_FullMethodName, BookingServiceServer.CreateBooking)},
		{MethodName: "AcceptBooking", Handler: unary(BookingService_AcceptBooking_FullMethodName, BookingServiceServer.AcceptBooking)},
		{MethodName: "DenyBooking", Handler: unary(BookingService_DenyBooking_FullMethodName, BookingServiceServer.DenyBooking)},
		{MethodName: "CancelBooking", Handler: unary(BookingService_CancelBooking_FullMethodName, BookingServiceServer.CancelBooking)},
		{MethodName: "PickBooking", Handler: unary(BookingService_PickBooking_FullMethodName, BookingServiceServer.PickBooking)},
		{MethodName: "ReturnBooking", Handler: unary(BookingService_ReturnBooking_FullMethodName, BookingServiceServer.ReturnBooking)},
		{MethodName: "GetBooking", Handler: unary(BookingService_GetBooking_FullMethodName, BookingServiceServer.GetBooking)},
		{MethodName: "ListPetitions", Handler: unary(BookingService_ListPetitions_FullMethodName, BookingServiceServer.ListPetitions)},
		{MethodName: "ListRequests", Handler: unary(BookingService_ListRequests_FullMethodName, BookingServiceServer.ListRequests)},
		{MethodName: "GetBookingActions", Handler: unary(BookingService_GetBookingActions_FullMethodName, BookingServiceServer.GetBookingActions)},
		{MethodName: "CheckEligibility", Handler: unary(BookingService_CheckEligibility_FullMethodName, BookingServiceServer.CheckEligibility)},
		{MethodName: "SubmitRating", Handler: unary(BookingService_SubmitRating_FullMethodName, BookingServiceServer.SubmitRating)},
		{MethodName: "GetRating", Handler: unary(BookingService_GetRating_FullMethodName, BookingServiceServer.GetRating)},
		{MethodName: "RequestRatingImageUpload", Handler: unary(BookingService_RequestRatingImageUpload_FullMethodName, BookingServiceServer.RequestRatingImageUpload)},
		{MethodName: "GetRatingImageUrl", Handler: unary(BookingService_GetRatingImageUrl_FullMethodName, BookingServiceServer.GetRatingImageUrl)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "emprius/api/v1",
}

// BookingServiceClient is the client API for BookingService.
type BookingServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBookingServiceClient(cc grpc.ClientConnInterface) *BookingServiceClient {
	return &BookingServiceClient{cc: cc}
}

func (c *BookingServiceClient) CreateBooking(ctx context.Context, in *CreateBookingRequest, opts ...grpc.CallOption) (*BookingResponse, error) {
	return invoke[BookingResponse](ctx, c.cc, BookingService_CreateBooking_FullMethodName, in, opts)
}

func (c *BookingServiceClient) AcceptBooking(ctx context.Context, in *BookingIdRequest, opts ...grpc.CallOption) (*BookingResponse, error) {
	return invoke[BookingResponse](ctx, c.cc, BookingService_AcceptBooking_FullMethodName, in, opts)
}

func (c *BookingServiceClient) DenyBooking(ctx context.Context, in *BookingIdRequest, opts ...grpc.CallOption) (*BookingResponse, error) {
	return invoke[BookingResponse](ctx, c.cc, BookingService_DenyBooking_FullMethodName, in, opts)
}

func (c *BookingServiceClient) CancelBooking(ctx context.Context, in *BookingIdRequest, opts ...grpc.CallOption) (*BookingResponse, error) {
	return invoke[BookingResponse](ctx, c.cc, BookingService_CancelBooking_FullMethodName, in, opts)
}

func (c *BookingServiceClient) PickBooking(ctx context.Context, in *BookingIdRequest, opts ...grpc.CallOption) (*BookingResponse, error) {
	return invoke[BookingResponse](ctx, c.cc, BookingService_PickBooking_FullMethodName, in, opts)
}

func (c *BookingServiceClient) ReturnBooking(ctx context.Context, in *ReturnBookingRequest, opts ...grpc.CallOption) (*BookingResponse, error) {
	return invoke[BookingResponse](ctx, c.cc, BookingService_ReturnBooking_FullMethodName, in, opts)
}

func (c *BookingServiceClient) GetBooking(ctx context.Context, in *BookingIdRequest, opts ...grpc.CallOption) (*BookingResponse, error) {
	return invoke[BookingResponse](ctx, c.cc, BookingService_GetBooking_FullMethodName, in, opts)
}

func (c *BookingServiceClient) ListPetitions(ctx context.Context, in *ListBookingsRequest, opts ...grpc.CallOption) (*ListBookingsResponse, error) {
	return invoke[ListBookingsResponse](ctx, c.cc, BookingService_ListPetitions_FullMethodName, in, opts)
}

func (c *BookingServiceClient) ListRequests(ctx context.Context, in *ListBookingsRequest, opts ...grpc.CallOption) (*ListBookingsResponse, error) {
	return invoke[ListBookingsResponse](ctx, c.cc, BookingService_ListRequests_FullMethodName, in, opts)
}

func (c *BookingServiceClient) GetBookingActions(ctx context.Context, in *BookingIdRequest, opts ...grpc.CallOption) (*GetBookingActionsResponse, error) {
	return invoke[GetBookingActionsResponse](ctx, c.cc, BookingService_GetBookingActions_FullMethodName, in, opts)
}

func (c *BookingServiceClient) CheckEligibility(ctx context.Context, in *CheckEligibilityRequest, opts ...grpc.CallOption) (*CheckEligibilityResponse, error) {
	return invoke[CheckEligibilityResponse](ctx, c.cc, BookingService_CheckEligibility_FullMethodName, in, opts)
}

func (c *BookingServiceClient) SubmitRating(ctx context.Context, in *SubmitRatingRequest, opts ...grpc.CallOption) (*SubmitRatingResponse, error) {
	return invoke[SubmitRatingResponse](ctx, c.cc, BookingService_SubmitRating_FullMethodName, in, opts)
}

func (c *BookingServiceClient) GetRating(ctx context.Context, in *BookingIdRequest, opts ...grpc.CallOption) (*GetRatingResponse, error) {
	return invoke[GetRatingResponse](ctx, c.cc, BookingService_GetRating_FullMethodName, in, opts)
}

func (c *BookingServiceClient) RequestRatingImageUpload(ctx context.Context, in *RatingImageUploadRequest, opts ...grpc.CallOption) (*RatingImageUploadResponse, error) {
	return invoke[RatingImageUploadResponse](ctx, c.cc, BookingService_RequestRatingImageUpload_FullMethodName, in, opts)
}

func (c *BookingServiceClient) GetRatingImageUrl(ctx context.Context, in *RatingImageUrlRequest, opts ...grpc.CallOption) (*RatingImageUrlResponse, error) {
	return invoke[RatingImageUrlResponse](ctx, c.cc, BookingService_GetRatingImageUrl_FullMethodName, in, opts)
}
