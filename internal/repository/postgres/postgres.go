package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"emprius-backend/internal/repository"
)

type Store struct {
	db *sql.DB
	repository.BookingRepository
	repository.ToolRepository
	repository.UserRepository
	repository.RatingRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		BookingRepository:      NewBookingRepository(db),
		ToolRepository:         NewToolRepository(db),
		UserRepository:         NewUserRepository(db),
		RatingRepository:       NewRatingRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}

// DB exposes the underlying handle for jobs that run set-based statements.
func (s *Store) DB() *sql.DB {
	return s.db
}

// withTx runs fn inside a transaction, rolling back when fn fails.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// notFound maps sql.ErrNoRows to repository.ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	return err
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

type scanner interface {
	Scan(dest ...any) error
}

func pageOffset(page, pageSize int32) int32 {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}
