package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"emprius-backend/internal/booking"
	"emprius-backend/internal/domain"
	"emprius-backend/internal/logger"
	"emprius-backend/internal/repository"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	toolRepo    repository.ToolRepository
	userRepo    repository.UserRepository
	ratingRepo  repository.RatingRepository
	dispatcher  *Dispatcher
	now         func() time.Time
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	toolRepo repository.ToolRepository,
	userRepo repository.UserRepository,
	ratingRepo repository.RatingRepository,
	dispatcher *Dispatcher,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		toolRepo:    toolRepo,
		userRepo:    userRepo,
		ratingRepo:  ratingRepo,
		dispatcher:  dispatcher,
		now:         time.Now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID int32, in CreateBookingInput) (*domain.Booking, error) {
	logger.EnterMethod("bookingService.CreateBooking", "userID", userID, "toolID", in.ToolID)

	proposed := domain.DateRange{From: in.StartDate, To: in.EndDate}
	if err := proposed.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	tool, err := s.loadTool(ctx, in.ToolID)
	if err != nil {
		return nil, err
	}
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if e := booking.CanUserBookTool(tool, user, s.now()); !e.CanBook {
		logger.Warn("Booking rejected by eligibility", "userID", userID, "toolID", tool.ID, "reason", e.Reason())
		return nil, &EligibilityError{Reason: e.Reason()}
	}
	if !tool.IsAvailable {
		return nil, ErrToolUnavailable
	}
	if err := booking.CheckConflict(proposed, tool.ReservedDates); err != nil {
		logger.Warn("Booking rejected by date conflict", "userID", userID, "toolID", tool.ID, "error", err)
		return nil, err
	}

	b := &domain.Booking{
		ToolID:     tool.ID,
		FromUserID: userID,
		ToUserID:   tool.Holder(),
		StartDate:  proposed.From,
		EndDate:    proposed.To,
		Status:     domain.BookingStatusPending,
		Contact:    in.Contact,
		Comments:   in.Comments,
		IsNomadic:  tool.IsNomadic,
	}
	if err := s.bookingRepo.Create(ctx, b); err != nil {
		logger.ExitMethodWithError("bookingService.CreateBooking", err)
		return nil, err
	}

	s.notify(ctx, b.ToUserID, Message{
		Title: "New booking request",
		Body:  fmt.Sprintf("%s wants to borrow %s", user.Name, tool.Name),
	}, b, "BOOKING_REQUESTED")

	logger.ExitMethod("bookingService.CreateBooking", "bookingID", b.ID)
	return b, nil
}

func (s *bookingService) AcceptBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error) {
	b, err := s.loadForHolder(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	from := b.Status
	if err := booking.ValidateTransition(from, domain.BookingStatusAccepted); err != nil {
		return nil, err
	}

	b.Status = domain.BookingStatusAccepted
	err = s.bookingRepo.AcceptLocked(ctx, b, from, func(reserved []domain.DateRange) error {
		return booking.CheckConflict(b.Range(), reserved)
	})
	if err != nil {
		return nil, s.writeError(err)
	}
	logger.BookingTransition(b.ID, string(from), string(b.Status), userID)

	s.notify(ctx, b.FromUserID, Message{
		Title: "Booking accepted",
		Body:  "Your booking request was accepted",
	}, b, "BOOKING_ACCEPTED")
	return b, nil
}

func (s *bookingService) DenyBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error) {
	b, err := s.loadForHolder(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.transition(ctx, b, domain.BookingStatusRejected, userID); err != nil {
		return nil, err
	}

	s.notify(ctx, b.FromUserID, Message{
		Title: "Booking denied",
		Body:  "Your booking request was denied",
	}, b, "BOOKING_REJECTED")
	return b, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error) {
	b, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.FromUserID != userID {
		return nil, ErrUnauthorized
	}
	if err := s.transition(ctx, b, domain.BookingStatusCancelled, userID); err != nil {
		return nil, err
	}

	s.notify(ctx, b.ToUserID, Message{
		Title: "Booking cancelled",
		Body:  "A booking request for your tool was cancelled",
	}, b, "BOOKING_CANCELLED")
	return b, nil
}

func (s *bookingService) PickBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error) {
	b, err := s.loadForHolder(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.pick(ctx, b, userID); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *bookingService) pick(ctx context.Context, b *domain.Booking, actorID int32) error {
	picked := s.now().Unix()
	b.PickedOn = &picked
	if err := s.transition(ctx, b, domain.BookingStatusPicked, actorID); err != nil {
		b.PickedOn = nil
		return err
	}
	return nil
}

func (s *bookingService) ReturnBooking(ctx context.Context, userID, bookingID int32, force bool) (*domain.Booking, error) {
	logger.EnterMethod("bookingService.ReturnBooking", "userID", userID, "bookingID", bookingID, "force", force)

	b, err := s.loadForHolder(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != domain.BookingStatusAccepted && b.Status != domain.BookingStatusPicked {
		return nil, booking.ValidateTransition(b.Status, domain.BookingStatusReturned)
	}

	now := s.now()
	if now.Unix() < b.EndDate && !force {
		return nil, ErrReturnBeforeEnd
	}

	// A loan handed over without an explicit pickup is picked on return, in
	// the same write that returns it.
	from := b.Status
	stamp := now.Unix()
	if b.PickedOn == nil {
		b.PickedOn = &stamp
	}
	b.ReturnedOn = &stamp
	b.Status = domain.BookingStatusReturned

	var h *repository.HandOver
	if b.IsNomadic {
		if h, err = s.handOver(ctx, b); err != nil {
			logger.ExitMethodWithError("bookingService.ReturnBooking", err, "bookingID", b.ID)
			return nil, err
		}
	}
	if err := s.bookingRepo.Return(ctx, b, from, h); err != nil {
		logger.ExitMethodWithError("bookingService.ReturnBooking", err, "bookingID", b.ID)
		return nil, s.writeError(err)
	}
	if from == domain.BookingStatusAccepted {
		logger.BookingTransition(b.ID, string(from), string(domain.BookingStatusPicked), userID)
		from = domain.BookingStatusPicked
	}
	logger.BookingTransition(b.ID, string(from), string(b.Status), userID)

	s.notify(ctx, b.FromUserID, Message{
		Title: "Booking returned",
		Body:  "Your loan is complete, you can now rate it",
	}, b, "BOOKING_RETURNED")

	logger.ExitMethod("bookingService.ReturnBooking", "bookingID", b.ID)
	return b, nil
}

// handOver makes the requester of a returned nomadic booking the tool's new
// holder. The tool follows the requester's location when one is known.
func (s *bookingService) handOver(ctx context.Context, b *domain.Booking) (*repository.HandOver, error) {
	tool, err := s.getTool(ctx, b.ToolID)
	if err != nil {
		return nil, err
	}
	requester, err := s.loadUser(ctx, b.FromUserID)
	if err != nil {
		return nil, err
	}
	h := &repository.HandOver{HolderID: b.FromUserID, Location: tool.Location}
	if requester.Location != nil {
		h.Location = *requester.Location
	}
	return h, nil
}

func (s *bookingService) SubmitRating(ctx context.Context, userID, bookingID int32, in RatingInput) (*domain.RatingEntry, error) {
	if in.Rating < domain.MinRatingScore || in.Rating > domain.MaxRatingScore {
		return nil, ErrInvalidRating
	}

	b, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	entry := &domain.RatingEntry{
		BookingID:  b.ID,
		FromUserID: userID,
		Rating:     in.Rating,
		Comment:    in.Comment,
		Images:     in.Images,
	}
	switch userID {
	case b.FromUserID:
		entry.Role = domain.RatingRoleRequester
		entry.ToUserID = b.ToUserID
	case b.ToUserID:
		entry.Role = domain.RatingRoleOwner
		entry.ToUserID = b.FromUserID
	default:
		return nil, ErrUnauthorized
	}
	if b.Status != domain.BookingStatusReturned {
		return nil, ErrNotReturned
	}
	for _, key := range in.Images {
		if !isRatingImageKey(b.ID, key) {
			return nil, fmt.Errorf("%w: image %q does not belong to this booking", ErrInvalidInput, key)
		}
	}

	if err := s.ratingRepo.Create(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyRated
		}
		return nil, err
	}

	s.notify(ctx, entry.ToUserID, Message{
		Title: "New rating",
		Body:  fmt.Sprintf("You received a %d star rating", entry.Rating),
	}, b, "BOOKING_RATED")
	return entry, nil
}

func (s *bookingService) GetBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error) {
	b, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if _, ok := booking.RoleFor(b, userID); !ok {
		return nil, ErrUnauthorized
	}
	if err := s.markRated(ctx, userID, []*domain.Booking{b}); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *bookingService) GetRating(ctx context.Context, userID, bookingID int32) (*domain.Rating, error) {
	b, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if _, ok := booking.RoleFor(b, userID); !ok {
		return nil, ErrUnauthorized
	}
	return s.ratingRepo.GetByBooking(ctx, b.ID)
}

func (s *bookingService) ListPetitions(ctx context.Context, userID int32, filter repository.BookingFilter) ([]domain.Booking, int32, error) {
	bookings, count, err := s.bookingRepo.ListByRequester(ctx, userID, filter)
	if err != nil {
		return nil, 0, err
	}
	return bookings, count, s.markRatedList(ctx, userID, bookings)
}

func (s *bookingService) ListRequests(ctx context.Context, userID int32, filter repository.BookingFilter) ([]domain.Booking, int32, error) {
	bookings, count, err := s.bookingRepo.ListByHolder(ctx, userID, filter)
	if err != nil {
		return nil, 0, err
	}
	return bookings, count, s.markRatedList(ctx, userID, bookings)
}

func (s *bookingService) GetBookingActions(ctx context.Context, userID, bookingID int32) ([]booking.Action, error) {
	b, err := s.GetBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	role, _ := booking.RoleFor(b, userID)
	return booking.Actions(b, role, s.now()), nil
}

func (s *bookingService) CheckEligibility(ctx context.Context, userID, toolID int32) (booking.Eligibility, error) {
	tool, err := s.loadTool(ctx, toolID)
	if err != nil {
		return booking.Eligibility{}, err
	}
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return booking.Eligibility{}, err
	}
	return booking.CanUserBookTool(tool, user, s.now()), nil
}

// transition validates and persists a user-driven status change of b.
func (s *bookingService) transition(ctx context.Context, b *domain.Booking, to domain.BookingStatus, actorID int32) error {
	from := b.Status
	if err := booking.ValidateTransition(from, to); err != nil {
		return err
	}
	b.Status = to
	if err := s.bookingRepo.UpdateStatus(ctx, b, from); err != nil {
		b.Status = from
		return s.writeError(err)
	}
	logger.BookingTransition(b.ID, string(from), string(to), actorID)
	return nil
}

func (s *bookingService) writeError(err error) error {
	switch {
	case errors.Is(err, repository.ErrStaleStatus):
		return ErrStaleBooking
	case errors.Is(err, repository.ErrNotFound):
		return ErrBookingNotFound
	}
	return err
}

func (s *bookingService) markRatedList(ctx context.Context, userID int32, bookings []domain.Booking) error {
	ptrs := make([]*domain.Booking, len(bookings))
	for i := range bookings {
		ptrs[i] = &bookings[i]
	}
	return s.markRated(ctx, userID, ptrs)
}

// markRated sets IsRated on returned bookings the viewer has already rated.
func (s *bookingService) markRated(ctx context.Context, userID int32, bookings []*domain.Booking) error {
	var ids []int32
	for _, b := range bookings {
		if b.Status == domain.BookingStatusReturned {
			ids = append(ids, b.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	rated, err := s.ratingRepo.RatedBookings(ctx, userID, ids)
	if err != nil {
		return err
	}
	for _, b := range bookings {
		b.IsRated = rated[b.ID]
	}
	return nil
}

func (s *bookingService) loadBooking(ctx context.Context, id int32) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *bookingService) loadForHolder(ctx context.Context, userID, bookingID int32) (*domain.Booking, error) {
	b, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	// A nomadic tool changes hands, so its bookings answer to the current holder.
	if b.IsNomadic {
		tool, err := s.getTool(ctx, b.ToolID)
		if err != nil {
			return nil, err
		}
		b.ToUserID = tool.Holder()
	}
	if b.ToUserID != userID {
		return nil, ErrUnauthorized
	}
	return b, nil
}

func (s *bookingService) getTool(ctx context.Context, id int32) (*domain.Tool, error) {
	tool, err := s.toolRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrToolNotFound
		}
		return nil, err
	}
	return tool, nil
}

// loadTool returns the tool with its current reservations filled in.
func (s *bookingService) loadTool(ctx context.Context, id int32) (*domain.Tool, error) {
	return loadToolWithReservations(ctx, s.toolRepo, s.bookingRepo, id)
}

func (s *bookingService) loadUser(ctx context.Context, id int32) (*domain.User, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *bookingService) notify(ctx context.Context, userID int32, msg Message, b *domain.Booking, event string) {
	msg.Attributes = map[string]string{
		"type":       event,
		"booking_id": strconv.Itoa(int(b.ID)),
		"tool_id":    strconv.Itoa(int(b.ToolID)),
	}
	s.dispatcher.Dispatch(ctx, userID, msg)
}

func loadToolWithReservations(ctx context.Context, toolRepo repository.ToolRepository, bookingRepo repository.BookingRepository, id int32) (*domain.Tool, error) {
	tool, err := toolRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrToolNotFound
		}
		return nil, err
	}
	reserved, err := bookingRepo.ReservedRanges(ctx, id, 0)
	if err != nil {
		return nil, err
	}
	tool.ReservedDates = reserved
	return tool, nil
}
