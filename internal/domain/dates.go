package domain

import (
	"errors"
	"fmt"
	"time"
)

// CalendarDateLayout is the layout of dates held in date-picker form state.
const CalendarDateLayout = "2006-01-02"

var ErrInvalidDateRange = errors.New("start date must be before end date")

// DateRange is a reserved interval in epoch seconds.
type DateRange struct {
	From int64 `json:"from"`
	To   int64 `json:"to"`
}

// Validate checks that From precedes To.
func (r DateRange) Validate() error {
	if r.From >= r.To {
		return ErrInvalidDateRange
	}
	return nil
}

func (r DateRange) Start() time.Time { return time.Unix(r.From, 0).UTC() }

func (r DateRange) End() time.Time { return time.Unix(r.To, 0).UTC() }

// ParseCalendarDate converts an ISO calendar date to epoch seconds at UTC midnight.
func ParseCalendarDate(s string) (int64, error) {
	t, err := time.Parse(CalendarDateLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid calendar date %q: %w", s, err)
	}
	return t.Unix(), nil
}

// NewDateRangeFromCalendar builds a validated range from two ISO calendar dates.
func NewDateRangeFromCalendar(start, end string) (DateRange, error) {
	from, err := ParseCalendarDate(start)
	if err != nil {
		return DateRange{}, err
	}
	to, err := ParseCalendarDate(end)
	if err != nil {
		return DateRange{}, err
	}
	r := DateRange{From: from, To: to}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}
