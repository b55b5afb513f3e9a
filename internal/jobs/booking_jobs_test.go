package jobs

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emprius-backend/internal/config"
	"emprius-backend/internal/service"
)

type sentMessage struct {
	userID int32
	msg    service.Message
}

type fakeDispatcher struct {
	sent []sentMessage
}

func (f *fakeDispatcher) Dispatch(_ context.Context, userID int32, msg service.Message) {
	f.sent = append(f.sent, sentMessage{userID: userID, msg: msg})
}

var jobNow = time.Date(2024, 6, 12, 3, 0, 0, 0, time.UTC)

func newRunner(t *testing.T) (*JobRunner, sqlmock.Sqlmock, *fakeDispatcher) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	d := &fakeDispatcher{}
	cfg := &config.Config{Booking: config.BookingConfig{ReminderGraceHours: 24, LapseGraceHours: 720}}
	jr := NewJobRunner(db, d, cfg)
	jr.now = func() time.Time { return jobNow }
	return jr, mock, d
}

func TestMarkLapsedBookings(t *testing.T) {
	jr, mock, d := newRunner(t)

	cutoff := jobNow.Add(-24 * time.Hour).Unix()
	abandoned := jobNow.Add(-720 * time.Hour).Unix()
	mock.ExpectQuery(`UPDATE bookings b\s+SET status = 'LAPSED'`).
		WithArgs(jobNow.Unix(), cutoff, abandoned).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tool_id", "from_user_id", "name"}).
			AddRow(11, 3, 7, "Drill").
			AddRow(12, 4, 8, "Ladder"))

	n, err := jr.markLapsedBookings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.Len(t, d.sent, 2)
	assert.Equal(t, int32(7), d.sent[0].userID)
	assert.Equal(t, "BOOKING_LAPSED", d.sent[0].msg.Attributes["type"])
	assert.Equal(t, "11", d.sent[0].msg.Attributes["booking_id"])
	assert.Contains(t, d.sent[1].msg.Body, "Ladder")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A late return of an unpicked loan must stay possible: only PENDING bookings
// use the one day cutoff, ACCEPTED ones wait for the lapse grace and are never
// lapsed once picked.
func TestMarkLapsedBookings_AcceptedWaitsForGrace(t *testing.T) {
	jr, mock, d := newRunner(t)

	pending := regexp.QuoteMeta(`(b.status = 'PENDING' AND b.start_date < $2)`)
	accepted := regexp.QuoteMeta(`(b.status = 'ACCEPTED' AND b.picked_on IS NULL AND b.end_date < $3)`)
	mock.ExpectQuery(pending+`\s+OR `+accepted).
		WithArgs(jobNow.Unix(), jobNow.Add(-day).Unix(), jobNow.Add(-30*day).Unix()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tool_id", "from_user_id", "name"}))

	n, err := jr.markLapsedBookings(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, d.sent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkLapsedBookings_QueryError(t *testing.T) {
	jr, mock, d := newRunner(t)

	mock.ExpectQuery(`UPDATE bookings b`).WillReturnError(errors.New("connection reset"))

	_, err := jr.markLapsedBookings(context.Background())
	assert.Error(t, err)
	assert.Empty(t, d.sent)

	// The scheduled wrapper logs instead of propagating.
	mock.ExpectQuery(`UPDATE bookings b`).WillReturnError(errors.New("connection reset"))
	assert.NotPanics(t, jr.MarkLapsedBookings)
}

func TestSendReturnReminders(t *testing.T) {
	jr, mock, d := newRunner(t)

	end := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC).Unix()
	mock.ExpectQuery(`SELECT b.id, b.tool_id, b.from_user_id, b.end_date, t.name`).
		WithArgs("ACCEPTED", "PICKED", jobNow.Add(-24*time.Hour).Unix()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tool_id", "from_user_id", "end_date", "name"}).
			AddRow(21, 3, 7, end, "Drill"))

	n, err := jr.sendReturnReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.Len(t, d.sent, 1)
	assert.Equal(t, int32(7), d.sent[0].userID)
	assert.Equal(t, "RETURN_REMINDER", d.sent[0].msg.Attributes["type"])
	assert.Contains(t, d.sent[0].msg.Body, "2024-06-10")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendReturnReminders_CoversUnpickedLoans(t *testing.T) {
	jr, mock, d := newRunner(t)

	end := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC).Unix()
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE b.status IN ($1, $2)`)).
		WithArgs("ACCEPTED", "PICKED", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tool_id", "from_user_id", "end_date", "name"}).
			AddRow(22, 4, 8, end, "Ladder"))

	n, err := jr.sendReturnReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, d.sent, 1)
	assert.Equal(t, int32(8), d.sent[0].userID)
	assert.Contains(t, d.sent[0].msg.Body, "Ladder")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunUnknownJob(t *testing.T) {
	jr, _, _ := newRunner(t)
	assert.Error(t, jr.Run("billing"))
}
