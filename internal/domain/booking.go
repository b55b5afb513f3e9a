package domain

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusAccepted  BookingStatus = "ACCEPTED"
	BookingStatusRejected  BookingStatus = "REJECTED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusPicked    BookingStatus = "PICKED"
	BookingStatusReturned  BookingStatus = "RETURNED"
	// BookingStatusLapsed is written only by the expiry job.
	BookingStatusLapsed BookingStatus = "LAPSED"
)

// AllBookingStatuses lists every status in lifecycle order.
var AllBookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusAccepted,
	BookingStatusRejected,
	BookingStatusCancelled,
	BookingStatusPicked,
	BookingStatusReturned,
	BookingStatusLapsed,
}

type Booking struct {
	ID         int32         `json:"id"`
	ToolID     int32         `json:"toolId"`
	FromUserID int32         `json:"fromUserId"` // requester
	ToUserID   int32         `json:"toUserId"`   // owner, or current holder of a nomadic tool
	StartDate  int64         `json:"startDate"`  // epoch seconds
	EndDate    int64         `json:"endDate"`    // epoch seconds
	Status     BookingStatus `json:"bookingStatus"`
	Contact    string        `json:"contact,omitempty"`
	Comments   string        `json:"comments,omitempty"`
	IsNomadic  bool          `json:"isNomadic"`
	// IsRated is derived for the viewing user and never persisted.
	IsRated    bool   `json:"isRated"`
	PickedOn   *int64 `json:"pickedOn,omitempty"`
	ReturnedOn *int64 `json:"returnedOn,omitempty"`
	CreatedOn  int64  `json:"createdOn"`
	UpdatedOn  int64  `json:"updatedOn"`
}

// Range returns the reserved interval of the booking.
func (b *Booking) Range() DateRange {
	return DateRange{From: b.StartDate, To: b.EndDate}
}
