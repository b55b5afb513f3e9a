package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"emprius-backend/internal/domain"
	"emprius-backend/internal/logger"
	"emprius-backend/internal/repository"
)

const bookingColumns = `id, tool_id, from_user_id, to_user_id, start_date, end_date, status, contact, comments, is_nomadic, picked_on, returned_on, created_on, updated_on`

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func scanBooking(s scanner) (*domain.Booking, error) {
	b := &domain.Booking{}
	err := s.Scan(&b.ID, &b.ToolID, &b.FromUserID, &b.ToUserID, &b.StartDate, &b.EndDate, &b.Status,
		&b.Contact, &b.Comments, &b.IsNomadic, &b.PickedOn, &b.ReturnedOn, &b.CreatedOn, &b.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (tool_id, from_user_id, to_user_id, start_date, end_date, status, contact, comments, is_nomadic, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	now := time.Now().Unix()
	b.CreatedOn = now
	b.UpdatedOn = now

	logger.DatabaseCall("INSERT", "bookings", "toolID", b.ToolID, "fromUserID", b.FromUserID)
	err := r.db.QueryRowContext(ctx, query, b.ToolID, b.FromUserID, b.ToUserID, b.StartDate, b.EndDate, b.Status,
		b.Contact, b.Comments, b.IsNomadic, b.CreatedOn, b.UpdatedOn).Scan(&b.ID)
	logger.DatabaseResult("INSERT", 1, err, "bookingID", b.ID)
	return err
}

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	b, err := scanBooking(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	return b, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, b *domain.Booking, from domain.BookingStatus) error {
	return updateStatus(ctx, r.db, b, from)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func updateStatus(ctx context.Context, db execer, b *domain.Booking, from domain.BookingStatus) error {
	query := `UPDATE bookings SET status = $1, picked_on = $2, returned_on = $3, updated_on = $4 WHERE id = $5 AND status = $6`
	b.UpdatedOn = time.Now().Unix()

	logger.DatabaseCall("UPDATE", "bookings", "bookingID", b.ID, "from", from, "to", b.Status)
	res, err := db.ExecContext(ctx, query, b.Status, b.PickedOn, b.ReturnedOn, b.UpdatedOn, b.ID, from)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err)
		return err
	}
	n, err := res.RowsAffected()
	logger.DatabaseResult("UPDATE", n, err)
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrStaleStatus
	}
	return nil
}

// AcceptLocked serializes acceptance per tool: it locks the tool row, hands the
// tool's current reservations to guard and, when guard passes, performs the
// status update. A guard error aborts the transaction unchanged.
func (r *bookingRepository) AcceptLocked(ctx context.Context, b *domain.Booking, from domain.BookingStatus, guard func(reserved []domain.DateRange) error) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var toolID int32
		if err := tx.QueryRowContext(ctx, `SELECT id FROM tools WHERE id = $1 FOR UPDATE`, b.ToolID).Scan(&toolID); err != nil {
			return notFound(err)
		}

		reserved, err := reservedRanges(ctx, tx, b.ToolID, b.ID)
		if err != nil {
			return err
		}
		if err := guard(reserved); err != nil {
			return err
		}
		return updateStatus(ctx, tx, b, from)
	})
}

// Return commits the RETURNED write together with the nomadic hand-over, so a
// failed move leaves the booking in its previous status.
func (r *bookingRepository) Return(ctx context.Context, b *domain.Booking, from domain.BookingStatus, h *repository.HandOver) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := updateStatus(ctx, tx, b, from); err != nil {
			return err
		}
		if h == nil {
			return nil
		}
		return handOver(ctx, tx, b, h)
	})
}

// handOver moves the tool to its new holder. Open requests the new holder made
// for the tool are cancelled, every other open booking now answers to them.
func handOver(ctx context.Context, tx *sql.Tx, b *domain.Booking, h *repository.HandOver) error {
	logger.DatabaseCall("UPDATE", "tools", "toolID", b.ToolID, "holderID", h.HolderID)
	res, err := tx.ExecContext(ctx, `UPDATE tools SET actual_user_id = $1, latitude = $2, longitude = $3 WHERE id = $4 AND is_nomadic`,
		h.HolderID, h.Location.Latitude, h.Location.Longitude, b.ToolID)
	if err = requireRow(res, err); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `UPDATE bookings SET status = 'CANCELLED', updated_on = $1
	          WHERE tool_id = $2 AND from_user_id = $3 AND status IN ('PENDING', 'ACCEPTED')`,
		b.UpdatedOn, b.ToolID, h.HolderID)
	if err != nil {
		return err
	}

	res, err = tx.ExecContext(ctx, `UPDATE bookings SET to_user_id = $1, updated_on = $2
	          WHERE tool_id = $3 AND status IN ('PENDING', 'ACCEPTED')`,
		h.HolderID, b.UpdatedOn, b.ToolID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	logger.DatabaseResult("UPDATE", n, err, "reassignedTo", h.HolderID)
	return err
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func reservedRanges(ctx context.Context, q querier, toolID, excludeBookingID int32) ([]domain.DateRange, error) {
	query := `SELECT start_date, end_date FROM bookings
	          WHERE tool_id = $1 AND id <> $2 AND status IN ('ACCEPTED', 'PICKED')
	          ORDER BY start_date`
	rows, err := q.QueryContext(ctx, query, toolID, excludeBookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ranges := []domain.DateRange{}
	for rows.Next() {
		var dr domain.DateRange
		if err := rows.Scan(&dr.From, &dr.To); err != nil {
			return nil, err
		}
		ranges = append(ranges, dr)
	}
	return ranges, rows.Err()
}

func (r *bookingRepository) ReservedRanges(ctx context.Context, toolID int32, excludeBookingID int32) ([]domain.DateRange, error) {
	return reservedRanges(ctx, r.db, toolID, excludeBookingID)
}

func (r *bookingRepository) ListByRequester(ctx context.Context, userID int32, filter repository.BookingFilter) ([]domain.Booking, int32, error) {
	return r.list(ctx, "from_user_id", userID, filter)
}

func (r *bookingRepository) ListByHolder(ctx context.Context, userID int32, filter repository.BookingFilter) ([]domain.Booking, int32, error) {
	return r.list(ctx, "to_user_id", userID, filter)
}

func (r *bookingRepository) list(ctx context.Context, column string, userID int32, filter repository.BookingFilter) ([]domain.Booking, int32, error) {
	where := fmt.Sprintf(" FROM bookings WHERE %s = $1", column)
	args := []interface{}{userID}
	argIdx := 2

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		where += fmt.Sprintf(" AND status = ANY($%d)", argIdx)
		args = append(args, pq.Array(statuses))
		argIdx++
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, "SELECT count(*)"+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + bookingColumns + where +
		fmt.Sprintf(" ORDER BY start_date DESC, id DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.PageSize, pageOffset(filter.Page, filter.PageSize))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	bookings := []domain.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, count, rows.Err()
}
