package jobs

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"emprius-backend/internal/domain"
	"emprius-backend/internal/logger"
	"emprius-backend/internal/service"
)

const day = 24 * time.Hour

// MarkLapsedBookings expires bookings nobody acted on in time: PENDING ones
// whose start day is over, and ACCEPTED ones never picked up and still not
// returned once the lapse grace after their end has run out.
func (jr *JobRunner) MarkLapsedBookings() {
	jr.runWithRecovery("MarkLapsedBookings", func(ctx context.Context) error {
		_, err := jr.markLapsedBookings(ctx)
		return err
	})
}

type lapsedBooking struct {
	id         int32
	toolID     int32
	fromUserID int32
	toolName   string
}

func (jr *JobRunner) markLapsedBookings(ctx context.Context) (int, error) {
	now := jr.now()
	cutoff := now.Add(-day).Unix()
	grace := time.Duration(jr.config.Booking.LapseGraceHours) * time.Hour
	abandoned := now.Add(-grace).Unix()

	query := `
		UPDATE bookings b
		SET status = 'LAPSED',
		    updated_on = $1
		FROM tools t
		WHERE t.id = b.tool_id
		  AND ((b.status = 'PENDING' AND b.start_date < $2)
		    OR (b.status = 'ACCEPTED' AND b.picked_on IS NULL AND b.end_date < $3))
		RETURNING b.id, b.tool_id, b.from_user_id, t.name
	`
	logger.DatabaseCall("UPDATE", "bookings", "cutoff", cutoff, "abandoned", abandoned)
	rows, err := jr.db.QueryContext(ctx, query, now.Unix(), cutoff, abandoned)
	if err != nil {
		return 0, fmt.Errorf("failed to mark lapsed bookings: %w", err)
	}
	defer rows.Close()

	var lapsed []lapsedBooking
	for rows.Next() {
		var b lapsedBooking
		if err := rows.Scan(&b.id, &b.toolID, &b.fromUserID, &b.toolName); err != nil {
			return 0, fmt.Errorf("failed to scan lapsed booking: %w", err)
		}
		lapsed = append(lapsed, b)
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("error iterating lapsed bookings: %w", err)
	}
	logger.DatabaseResult("UPDATE", int64(len(lapsed)), nil)

	for _, b := range lapsed {
		logger.Debug("Marked booking as lapsed", "booking_id", b.id, "tool_id", b.toolID)
		jr.dispatcher.Dispatch(ctx, b.fromUserID, service.Message{
			Title: "Booking expired",
			Body:  fmt.Sprintf("Your booking for %s expired before it took place", b.toolName),
			Attributes: map[string]string{
				"type":       "BOOKING_LAPSED",
				"booking_id": strconv.Itoa(int(b.id)),
				"tool_id":    strconv.Itoa(int(b.toolID)),
			},
		})
	}

	logger.Info("Marked bookings as lapsed", "count", len(lapsed))
	return len(lapsed), nil
}

// SendReturnReminders nudges requesters of loans still open after their end.
// A loan is open once ACCEPTED, whether or not its pickup was recorded.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func(ctx context.Context) error {
		_, err := jr.sendReturnReminders(ctx)
		return err
	})
}

func (jr *JobRunner) sendReturnReminders(ctx context.Context) (int, error) {
	grace := time.Duration(jr.config.Booking.ReminderGraceHours) * time.Hour
	cutoff := jr.now().Add(-grace).Unix()

	query := `
		SELECT b.id, b.tool_id, b.from_user_id, b.end_date, t.name
		FROM bookings b
		JOIN tools t ON t.id = b.tool_id
		WHERE b.status IN ($1, $2)
		  AND b.end_date < $3
		ORDER BY b.end_date
	`
	rows, err := jr.db.QueryContext(ctx, query,
		string(domain.BookingStatusAccepted), string(domain.BookingStatusPicked), cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to query overdue bookings: %w", err)
	}
	defer rows.Close()

	type overdue struct {
		lapsedBooking
		endDate int64
	}
	var due []overdue
	for rows.Next() {
		var o overdue
		if err := rows.Scan(&o.id, &o.toolID, &o.fromUserID, &o.endDate, &o.toolName); err != nil {
			return 0, fmt.Errorf("failed to scan overdue booking: %w", err)
		}
		due = append(due, o)
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("error iterating overdue bookings: %w", err)
	}

	for _, o := range due {
		endDay := time.Unix(o.endDate, 0).UTC().Format(domain.CalendarDateLayout)
		jr.dispatcher.Dispatch(ctx, o.fromUserID, service.Message{
			Title: "Return reminder",
			Body:  fmt.Sprintf("Your loan of %s ended on %s, please return it", o.toolName, endDay),
			Attributes: map[string]string{
				"type":       "RETURN_REMINDER",
				"booking_id": strconv.Itoa(int(o.id)),
				"tool_id":    strconv.Itoa(int(o.toolID)),
			},
		})
	}

	logger.Info("Sent return reminders", "count", len(due))
	return len(due), nil
}
