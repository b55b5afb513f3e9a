package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"emprius-backend/internal/domain"
	"emprius-backend/internal/logger"
	"emprius-backend/internal/repository"
)

const toolColumns = `id, user_id, name, COALESCE(description, ''), is_available, is_nomadic, actual_user_id, communities, max_distance_km, latitude, longitude, created_on, deleted_on`

type toolRepository struct {
	db *sql.DB
}

func NewToolRepository(db *sql.DB) repository.ToolRepository {
	return &toolRepository{db: db}
}

func scanTool(s scanner) (*domain.Tool, error) {
	t := &domain.Tool{}
	var actualUserID sql.NullInt32
	communities := pq.Int32Array{}
	err := s.Scan(&t.ID, &t.UserID, &t.Name, &t.Description, &t.IsAvailable, &t.IsNomadic, &actualUserID,
		&communities, &t.MaxDistance, &t.Location.Latitude, &t.Location.Longitude, &t.CreatedOn, &t.DeletedOn)
	if err != nil {
		return nil, err
	}
	if actualUserID.Valid {
		id := actualUserID.Int32
		t.ActualUserID = &id
	}
	t.Communities = []int32(communities)
	if t.Communities == nil {
		t.Communities = []int32{}
	}
	return t, nil
}

func (r *toolRepository) Create(ctx context.Context, t *domain.Tool) error {
	query := `INSERT INTO tools (user_id, name, description, is_available, is_nomadic, communities, max_distance_km, latitude, longitude, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	t.CreatedOn = time.Now().Unix()
	logger.DatabaseCall("INSERT", "tools", "userID", t.UserID, "name", t.Name)
	err := r.db.QueryRowContext(ctx, query, t.UserID, t.Name, t.Description, t.IsAvailable, t.IsNomadic,
		pq.Array(t.Communities), t.MaxDistance, t.Location.Latitude, t.Location.Longitude, t.CreatedOn).Scan(&t.ID)
	logger.DatabaseResult("INSERT", 1, err, "toolID", t.ID)
	return err
}

func (r *toolRepository) GetByID(ctx context.Context, id int32) (*domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools WHERE id = $1 AND deleted_on IS NULL`
	t, err := scanTool(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	return t, nil
}

func (r *toolRepository) Update(ctx context.Context, t *domain.Tool) error {
	query := `UPDATE tools SET name=$1, description=$2, is_available=$3, is_nomadic=$4, communities=$5, max_distance_km=$6, latitude=$7, longitude=$8 WHERE id=$9 AND deleted_on IS NULL`
	res, err := r.db.ExecContext(ctx, query, t.Name, t.Description, t.IsAvailable, t.IsNomadic,
		pq.Array(t.Communities), t.MaxDistance, t.Location.Latitude, t.Location.Longitude, t.ID)
	return requireRow(res, err)
}

func (r *toolRepository) SetAvailability(ctx context.Context, id int32, available bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE tools SET is_available = $1 WHERE id = $2 AND deleted_on IS NULL`, available, id)
	return requireRow(res, err)
}

func (r *toolRepository) ListByCommunity(ctx context.Context, communityID int32, page, pageSize int32) ([]domain.Tool, int32, error) {
	where := ` FROM tools WHERE $1 = ANY(communities) AND deleted_on IS NULL`
	return r.list(ctx, where, communityID, page, pageSize)
}

func (r *toolRepository) ListByOwner(ctx context.Context, ownerID int32, page, pageSize int32) ([]domain.Tool, int32, error) {
	where := ` FROM tools WHERE user_id = $1 AND deleted_on IS NULL`
	return r.list(ctx, where, ownerID, page, pageSize)
}

func (r *toolRepository) list(ctx context.Context, where string, arg int32, page, pageSize int32) ([]domain.Tool, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*)`+where, arg).Scan(&count); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT `+toolColumns+where+` ORDER BY id LIMIT $2 OFFSET $3`,
		arg, pageSize, pageOffset(page, pageSize))
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	tools := []domain.Tool{}
	for rows.Next() {
		t, err := scanTool(rows)
		if err != nil {
			return nil, 0, err
		}
		tools = append(tools, *t)
	}
	return tools, count, rows.Err()
}

// requireRow turns a statement that touched no rows into ErrNotFound.
func requireRow(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
