package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"emprius-backend/internal/domain"
	"emprius-backend/internal/logger"
	"emprius-backend/internal/repository"
)

type ratingRepository struct {
	db *sql.DB
}

func NewRatingRepository(db *sql.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(ctx context.Context, e *domain.RatingEntry) error {
	query := `INSERT INTO ratings (booking_id, from_user_id, to_user_id, role, rating, comment, images, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	e.CreatedOn = time.Now().Unix()
	images := e.Images
	if images == nil {
		images = []string{}
	}

	logger.DatabaseCall("INSERT", "ratings", "bookingID", e.BookingID, "fromUserID", e.FromUserID)
	err := r.db.QueryRowContext(ctx, query, e.BookingID, e.FromUserID, e.ToUserID, e.Role, e.Rating, e.Comment,
		pq.Array(images), e.CreatedOn).Scan(&e.ID)
	logger.DatabaseResult("INSERT", 1, err, "ratingID", e.ID)
	if isUniqueViolation(err) {
		return repository.ErrDuplicate
	}
	return err
}

func (r *ratingRepository) GetByBooking(ctx context.Context, bookingID int32) (*domain.Rating, error) {
	query := `SELECT id, booking_id, from_user_id, to_user_id, role, rating, COALESCE(comment, ''), images, created_on
	          FROM ratings WHERE booking_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rating := &domain.Rating{BookingID: bookingID}
	for rows.Next() {
		e := &domain.RatingEntry{}
		var images pq.StringArray
		if err := rows.Scan(&e.ID, &e.BookingID, &e.FromUserID, &e.ToUserID, &e.Role, &e.Rating, &e.Comment, &images, &e.CreatedOn); err != nil {
			return nil, err
		}
		e.Images = []string(images)
		switch e.Role {
		case domain.RatingRoleRequester:
			rating.Requester = e
		case domain.RatingRoleOwner:
			rating.Owner = e
		}
	}
	return rating, rows.Err()
}

func (r *ratingRepository) RatedBookings(ctx context.Context, userID int32, bookingIDs []int32) (map[int32]bool, error) {
	rated := make(map[int32]bool, len(bookingIDs))
	if len(bookingIDs) == 0 {
		return rated, nil
	}

	rows, err := r.db.QueryContext(ctx, `SELECT booking_id FROM ratings WHERE from_user_id = $1 AND booking_id = ANY($2)`,
		userID, pq.Array(bookingIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		rated[id] = true
	}
	return rated, rows.Err()
}

// Summary aggregates the ratings a user received, averaged to two decimals.
func (r *ratingRepository) Summary(ctx context.Context, userID int32) (*domain.RatingSummary, error) {
	var count int32
	var sum int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*), COALESCE(SUM(rating), 0) FROM ratings WHERE to_user_id = $1`, userID).Scan(&count, &sum)
	if err != nil {
		return nil, err
	}

	summary := &domain.RatingSummary{UserID: userID, Count: count, Average: decimal.Zero}
	if count > 0 {
		summary.Average = decimal.NewFromInt(sum).DivRound(decimal.NewFromInt32(count), 2)
	}
	return summary, nil
}
