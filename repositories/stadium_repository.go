package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/footylab/league-system/models"
)

var (
	ErrStadiumNotFound       = errors.New("stadium not found")
	ErrStadiumManagerInvalid = errors.New("stadium manager conflict or invalid")
)

type StadiumRepository interface {
	Create(ctx context.Context, stadium *models.Stadium) error
	GetByID(ctx context.Context, id int) (*models.Stadium, error)
	List(ctx context.Context) ([]*models.Stadium, error)
	ListByManager(ctx context.Context, managerID int) ([]*models.Stadium, error)
	Update(ctx context.Context, stadium *models.Stadium) error
	UpdatePhotoKey(ctx context.Context, id int, photoKey *string) error
}

type postgresStadiumRepository struct {
	db *sql.DB
}

func NewPostgresStadiumRepository(db *sql.DB) StadiumRepository {
	return &postgresStadiumRepository{db: db}
}

func (r *postgresStadiumRepository) Create(ctx context.Context, stadium *models.Stadium) error {
	query := `
		INSERT INTO stadiums (name, location, capacity, manager_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		stadium.Name,
		stadium.Location,
		stadium.Capacity,
		stadium.ManagerID,
	).Scan(&stadium.ID)

	return r.handleStadiumError(err)
}

func (r *postgresStadiumRepository) GetByID(ctx context.Context, id int) (*models.Stadium, error) {
	query := `
		SELECT id, name, location, capacity, manager_id, photo_key
		FROM stadiums
		WHERE id = $1`

	stadium := &models.Stadium{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&stadium.ID,
		&stadium.Name,
		&stadium.Location,
		&stadium.Capacity,
		&stadium.ManagerID,
		&stadium.PhotoKey,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStadiumNotFound
		}
		return nil, err
	}
	return stadium, nil
}

func (r *postgresStadiumRepository) List(ctx context.Context) ([]*models.Stadium, error) {
	query := `
		SELECT id, name, location, capacity, manager_id, photo_key
		FROM stadiums
		ORDER BY id ASC`

	return r.queryMany(ctx, query)
}

func (r *postgresStadiumRepository) ListByManager(ctx context.Context, managerID int) ([]*models.Stadium, error) {
	query := `
		SELECT id, name, location, capacity, manager_id, photo_key
		FROM stadiums
		WHERE manager_id = $1
		ORDER BY id ASC`

	return r.queryMany(ctx, query, managerID)
}

func (r *postgresStadiumRepository) Update(ctx context.Context, stadium *models.Stadium) error {
	query := `
		UPDATE stadiums
		SET name = $1, location = $2, capacity = $3
		WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query,
		stadium.Name, stadium.Location, stadium.Capacity, stadium.ID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrStadiumNotFound)
}

func (r *postgresStadiumRepository) UpdatePhotoKey(ctx context.Context, id int, photoKey *string) error {
	query := `UPDATE stadiums SET photo_key = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, photoKey, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrStadiumNotFound)
}

func (r *postgresStadiumRepository) queryMany(ctx context.Context, query string, args ...interface{}) ([]*models.Stadium, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stadiums := make([]*models.Stadium, 0)
	for rows.Next() {
		stadium := &models.Stadium{}
		if scanErr := rows.Scan(
			&stadium.ID,
			&stadium.Name,
			&stadium.Location,
			&stadium.Capacity,
			&stadium.ManagerID,
			&stadium.PhotoKey,
		); scanErr != nil {
			return nil, scanErr
		}
		stadiums = append(stadiums, stadium)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return stadiums, nil
}

func (r *postgresStadiumRepository) handleStadiumError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		if pqErr.Code == "23503" && pqErr.Constraint == "stadiums_manager_id_fkey" {
			return ErrStadiumManagerInvalid
		}
	}
	return err
}
