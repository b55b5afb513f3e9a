package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"emprius-backend/internal/booking"
	"emprius-backend/internal/domain"
	"emprius-backend/internal/logger"
	"emprius-backend/internal/service"
	"emprius-backend/internal/storage"
)

// toStatus translates service errors into gRPC status errors. Errors that are
// already statuses pass through unchanged.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var (
		eligErr       *service.EligibilityError
		conflictErr   *booking.ConflictError
		transitionErr *booking.TransitionError
	)
	switch {
	case errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrToolNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrNotificationNotFound),
		errors.Is(err, storage.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, service.ErrStaleBooking):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, storage.ErrInvalidKey):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.As(err, &eligErr),
		errors.As(err, &conflictErr),
		errors.As(err, &transitionErr),
		errors.Is(err, service.ErrToolUnavailable),
		errors.Is(err, service.ErrReturnBeforeEnd),
		errors.Is(err, service.ErrNotReturned),
		errors.Is(err, service.ErrAlreadyRated):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	logger.Error("Unhandled service error", "error", err)
	return status.Error(codes.Internal, "internal error")
}
