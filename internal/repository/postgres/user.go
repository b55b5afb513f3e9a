package postgres

import (
	"context"
	"database/sql"
	"time"

	"emprius-backend/internal/domain"
	"emprius-backend/internal/logger"
	"emprius-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	var lat, lng sql.NullFloat64
	query := `SELECT id, email, name, COALESCE(avatar_url, ''), latitude, longitude, COALESCE(push_token, ''), created_on, updated_on FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Email, &u.Name, &u.AvatarURL, &lat, &lng, &u.PushToken, &u.CreatedOn, &u.UpdatedOn)
	if err != nil {
		return nil, notFound(err)
	}
	if lat.Valid && lng.Valid {
		u.Location = &domain.Location{Latitude: lat.Float64, Longitude: lng.Float64}
	}

	communities, err := r.ListCommunities(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Communities = communities
	return u, nil
}

func (r *userRepository) ListCommunities(ctx context.Context, userID int32) ([]domain.Community, error) {
	query := `SELECT c.id, c.name, COALESCE(c.description, ''), c.owner_id,
	                 (SELECT count(*) FROM community_members m2 WHERE m2.community_id = c.id)
	          FROM communities c
	          JOIN community_members m ON m.community_id = c.id
	          WHERE m.user_id = $1
	          ORDER BY c.id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	communities := []domain.Community{}
	for rows.Next() {
		var c domain.Community
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.OwnerID, &c.MemberCount); err != nil {
			return nil, err
		}
		communities = append(communities, c)
	}
	return communities, rows.Err()
}

func (r *userRepository) UpdateLocation(ctx context.Context, userID int32, loc domain.Location) error {
	logger.DatabaseCall("UPDATE", "users", "userID", userID)
	res, err := r.db.ExecContext(ctx, `UPDATE users SET latitude = $1, longitude = $2, updated_on = $3 WHERE id = $4`,
		loc.Latitude, loc.Longitude, time.Now().Unix(), userID)
	return requireRow(res, err)
}

func (r *userRepository) UpdatePushToken(ctx context.Context, userID int32, token string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET push_token = $1, updated_on = $2 WHERE id = $3`,
		token, time.Now().Unix(), userID)
	return requireRow(res, err)
}
