package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "emprius-backend/api/v1"
	"emprius-backend/internal/booking"
	"emprius-backend/internal/domain"
	"emprius-backend/internal/repository"
	"emprius-backend/internal/service"
)

const defaultPageSize = 20

type BookingHandler struct {
	bookingSvc service.BookingService
	imageSvc   service.RatingImageService
}

func NewBookingHandler(bookingSvc service.BookingService, imageSvc service.RatingImageService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc, imageSvc: imageSvc}
}

func (h *BookingHandler) CreateBooking(ctx context.Context, req *pb.CreateBookingRequest) (*pb.BookingResponse, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	b, err := h.bookingSvc.CreateBooking(ctx, userID, service.CreateBookingInput{
		ToolID:    req.ToolId,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Contact:   req.Contact,
		Comments:  req.Comments,
	})
	return bookingResponse(b, err)
}

func (h *BookingHandler) AcceptBooking(ctx context.Context, req *pb.BookingIdRequest) (*pb.BookingResponse, error) {
	return h.mutate(ctx, req.BookingId, h.bookingSvc.AcceptBooking)
}

func (h *BookingHandler) DenyBooking(ctx context.Context, req *pb.BookingIdRequest) (*pb.BookingResponse, error) {
	return h.mutate(ctx, req.BookingId, h.bookingSvc.DenyBooking)
}

func (h *BookingHandler) CancelBooking(ctx context.Context, req *pb.BookingIdRequest) (*pb.BookingResponse, error) {
	return h.mutate(ctx, req.BookingId, h.bookingSvc.CancelBooking)
}

func (h *BookingHandler) PickBooking(ctx context.Context, req *pb.BookingIdRequest) (*pb.BookingResponse, error) {
	return h.mutate(ctx, req.BookingId, h.bookingSvc.PickBooking)
}

func (h *BookingHandler) GetBooking(ctx context.Context, req *pb.BookingIdRequest) (*pb.BookingResponse, error) {
	return h.mutate(ctx, req.BookingId, h.bookingSvc.GetBooking)
}

func (h *BookingHandler) ReturnBooking(ctx context.Context, req *pb.ReturnBookingRequest) (*pb.BookingResponse, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	b, err := h.bookingSvc.ReturnBooking(ctx, userID, req.BookingId, req.Force)
	return bookingResponse(b, err)
}

func (h *BookingHandler) mutate(ctx context.Context, bookingID int32, op func(ctx context.Context, userID, bookingID int32) (*domain.Booking, error)) (*pb.BookingResponse, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	b, err := op(ctx, userID, bookingID)
	return bookingResponse(b, err)
}

func bookingResponse(b *domain.Booking, err error) (*pb.BookingResponse, error) {
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.BookingResponse{Booking: MapDomainBookingToProto(b)}, nil
}

func (h *BookingHandler) ListPetitions(ctx context.Context, req *pb.ListBookingsRequest) (*pb.ListBookingsResponse, error) {
	return h.list(ctx, req, h.bookingSvc.ListPetitions)
}

func (h *BookingHandler) ListRequests(ctx context.Context, req *pb.ListBookingsRequest) (*pb.ListBookingsResponse, error) {
	return h.list(ctx, req, h.bookingSvc.ListRequests)
}

func (h *BookingHandler) list(ctx context.Context, req *pb.ListBookingsRequest, op func(context.Context, int32, repository.BookingFilter) ([]domain.Booking, int32, error)) (*pb.ListBookingsResponse, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	statuses, err := MapProtoStatuses(req.Statuses)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	page, pageSize := normalizePage(req.Page, req.PageSize)

	bookings, count, err := op(ctx, userID, repository.BookingFilter{
		Statuses: statuses,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListBookingsResponse{
		Bookings:   MapDomainBookingsToProto(bookings),
		TotalCount: count,
	}, nil
}

func (h *BookingHandler) GetBookingActions(ctx context.Context, req *pb.BookingIdRequest) (*pb.GetBookingActionsResponse, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	b, err := h.bookingSvc.GetBooking(ctx, userID, req.BookingId)
	if err != nil {
		return nil, toStatus(err)
	}
	actions, err := h.bookingSvc.GetBookingActions(ctx, userID, req.BookingId)
	if err != nil {
		return nil, toStatus(err)
	}
	role, _ := booking.RoleFor(b, userID)
	return &pb.GetBookingActionsResponse{
		Role:    string(role),
		Actions: MapActionsToProto(actions),
	}, nil
}

func (h *BookingHandler) CheckEligibility(ctx context.Context, req *pb.CheckEligibilityRequest) (*pb.CheckEligibilityResponse, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	e, err := h.bookingSvc.CheckEligibility(ctx, userID, req.ToolId)
	if err != nil {
		return nil, toStatus(err)
	}
	return MapEligibilityToProto(e), nil
}

func (h *BookingHandler) SubmitRating(ctx context.Context, req *pb.SubmitRatingRequest) (*pb.SubmitRatingResponse, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	entry, err := h.bookingSvc.SubmitRating(ctx, userID, req.BookingId, service.RatingInput{
		Rating:  req.Rating,
		Comment: req.Comment,
		Images:  req.Images,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.SubmitRatingResponse{Entry: MapDomainRatingEntryToProto(entry)}, nil
}

func (h *BookingHandler) GetRating(ctx context.Context, req *pb.BookingIdRequest) (*pb.GetRatingResponse, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	rating, err := h.bookingSvc.GetRating(ctx, userID, req.BookingId)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetRatingResponse{Rating: MapDomainRatingToProto(rating)}, nil
}

func (h *BookingHandler) RequestRatingImageUpload(ctx context.Context, req *pb.RatingImageUploadRequest) (*pb.RatingImageUploadResponse, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	key, url, err := h.imageSvc.RequestUpload(ctx, userID, req.BookingId, req.Filename, req.ContentType)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.RatingImageUploadResponse{Key: key, UploadUrl: url}, nil
}

func (h *BookingHandler) GetRatingImageUrl(ctx context.Context, req *pb.RatingImageUrlRequest) (*pb.RatingImageUrlResponse, error) {
	if _, err := GetUserIDFromContext(ctx); err != nil {
		return nil, err
	}
	url, err := h.imageSvc.DownloadURL(ctx, req.Key)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.RatingImageUrlResponse{DownloadUrl: url}, nil
}

func normalizePage(page, pageSize int32) (int32, int32) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = defaultPageSize
	}
	return page, pageSize
}
