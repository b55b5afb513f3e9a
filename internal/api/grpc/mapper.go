package grpc

import (
	pb "emprius-backend/api/v1"
	"emprius-backend/internal/booking"
	"emprius-backend/internal/domain"
)

func MapDomainBookingToProto(b *domain.Booking) *pb.Booking {
	if b == nil {
		return nil
	}
	out := &pb.Booking{
		Id:            b.ID,
		ToolId:        b.ToolID,
		FromUserId:    b.FromUserID,
		ToUserId:      b.ToUserID,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		BookingStatus: string(b.Status),
		Contact:       b.Contact,
		Comments:      b.Comments,
		IsRated:       b.IsRated,
		IsNomadic:     b.IsNomadic,
		CreatedAt:     b.CreatedOn,
		UpdatedAt:     b.UpdatedOn,
	}
	if b.PickedOn != nil {
		out.PickedOn = *b.PickedOn
	}
	if b.ReturnedOn != nil {
		out.ReturnedOn = *b.ReturnedOn
	}
	return out
}

func MapDomainBookingsToProto(bookings []domain.Booking) []*pb.Booking {
	out := make([]*pb.Booking, 0, len(bookings))
	for i := range bookings {
		out = append(out, MapDomainBookingToProto(&bookings[i]))
	}
	return out
}

func MapDomainDateRangesToProto(ranges []domain.DateRange) []*pb.DateRange {
	out := make([]*pb.DateRange, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, &pb.DateRange{From: r.From, To: r.To})
	}
	return out
}

func MapDomainToolToProto(t *domain.Tool) *pb.Tool {
	if t == nil {
		return nil
	}
	out := &pb.Tool{
		Id:            t.ID,
		UserId:        t.UserID,
		Name:          t.Name,
		Description:   t.Description,
		IsAvailable:   t.IsAvailable,
		IsNomadic:     t.IsNomadic,
		Communities:   t.Communities,
		MaxDistance:   t.MaxDistance,
		Location:      &pb.Location{Latitude: t.Location.Latitude, Longitude: t.Location.Longitude},
		ReservedDates: MapDomainDateRangesToProto(t.ReservedDates),
	}
	if t.ActualUserID != nil {
		out.ActualUserId = *t.ActualUserID
	}
	if out.Communities == nil {
		out.Communities = []int32{}
	}
	return out
}

func MapDomainToolsToProto(tools []domain.Tool) []*pb.Tool {
	out := make([]*pb.Tool, 0, len(tools))
	for i := range tools {
		out = append(out, MapDomainToolToProto(&tools[i]))
	}
	return out
}

func MapDomainUserToProto(u *domain.User, summary *domain.RatingSummary) *pb.User {
	if u == nil {
		return nil
	}
	out := &pb.User{
		Id:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		AvatarUrl:   u.AvatarURL,
		Communities: make([]*pb.Community, 0, len(u.Communities)),
	}
	if u.Location != nil {
		out.Location = &pb.Location{Latitude: u.Location.Latitude, Longitude: u.Location.Longitude}
	}
	for _, c := range u.Communities {
		out.Communities = append(out.Communities, &pb.Community{Id: c.ID, Name: c.Name})
	}
	if summary != nil {
		out.Rating = &pb.RatingSummary{Count: summary.Count, Average: summary.Average.StringFixed(2)}
	}
	return out
}

func MapDomainRatingEntryToProto(e *domain.RatingEntry) *pb.RatingEntry {
	if e == nil {
		return nil
	}
	return &pb.RatingEntry{
		Id:         e.ID,
		BookingId:  e.BookingID,
		FromUserId: e.FromUserID,
		ToUserId:   e.ToUserID,
		Role:       string(e.Role),
		Rating:     e.Rating,
		Comment:    e.Comment,
		Images:     e.Images,
		CreatedAt:  e.CreatedOn,
	}
}

func MapDomainRatingToProto(r *domain.Rating) *pb.Rating {
	if r == nil {
		return nil
	}
	return &pb.Rating{
		BookingId: r.BookingID,
		Requester: MapDomainRatingEntryToProto(r.Requester),
		Owner:     MapDomainRatingEntryToProto(r.Owner),
	}
}

func MapActionsToProto(actions []booking.Action) []*pb.Action {
	out := make([]*pb.Action, 0, len(actions))
	for _, a := range actions {
		out = append(out, &pb.Action{
			Kind:                 string(a.Kind),
			Disabled:             a.Disabled,
			RequiresConfirmation: a.RequiresConfirmation,
			Warning:              a.Warning,
		})
	}
	return out
}

func MapEligibilityToProto(e booking.Eligibility) *pb.CheckEligibilityResponse {
	out := &pb.CheckEligibilityResponse{CanBook: e.CanBook}
	if e.Why != nil {
		why := string(*e.Why)
		out.Why = &why
	}
	return out
}

func MapDomainNotificationsToProto(notes []domain.Notification) []*pb.Notification {
	out := make([]*pb.Notification, 0, len(notes))
	for _, n := range notes {
		out = append(out, &pb.Notification{
			Id:         n.ID,
			Title:      n.Title,
			Message:    n.Message,
			IsRead:     n.IsRead,
			Attributes: n.Attributes,
			CreatedAt:  n.CreatedOn,
		})
	}
	return out
}

// MapProtoStatuses parses a status filter, rejecting unknown names.
func MapProtoStatuses(statuses []string) ([]domain.BookingStatus, error) {
	out := make([]domain.BookingStatus, 0, len(statuses))
	for _, s := range statuses {
		st, err := booking.ParseStatus(s)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}
