package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/footylab/league-system/models"
)

var (
	ErrTeamNotFound       = errors.New("team not found")
	ErrTeamNameConflict   = errors.New("team name is already in use")
	ErrTeamManagerInvalid = errors.New("team manager conflict or invalid")
)

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id int) (*models.Team, error)
	List(ctx context.Context) ([]*models.Team, error)
	Update(ctx context.Context, team *models.Team) error
	UpdateCrestKey(ctx context.Context, id int, crestKey *string) error
	Delete(ctx context.Context, id int) error
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func (r *postgresTeamRepository) Create(ctx context.Context, team *models.Team) error {
	query := `
		INSERT INTO teams (name, manager_id, formation, strategy)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		team.Name,
		team.ManagerID,
		team.Formation,
		team.Strategy,
	).Scan(&team.ID, &team.CreatedAt)

	return r.handleTeamError(err)
}

func (r *postgresTeamRepository) GetByID(ctx context.Context, id int) (*models.Team, error) {
	query := `
		SELECT id, name, manager_id, formation, strategy, crest_key, created_at
		FROM teams
		WHERE id = $1`

	team := &models.Team{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&team.ID,
		&team.Name,
		&team.ManagerID,
		&team.Formation,
		&team.Strategy,
		&team.CrestKey,
		&team.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return team, nil
}

func (r *postgresTeamRepository) List(ctx context.Context) ([]*models.Team, error) {
	query := `
		SELECT id, name, manager_id, formation, strategy, crest_key, created_at
		FROM teams
		ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]*models.Team, 0)
	for rows.Next() {
		team := &models.Team{}
		if scanErr := rows.Scan(
			&team.ID,
			&team.Name,
			&team.ManagerID,
			&team.Formation,
			&team.Strategy,
			&team.CrestKey,
			&team.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		teams = append(teams, team)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *postgresTeamRepository) Update(ctx context.Context, team *models.Team) error {
	query := `
		UPDATE teams
		SET name = $1, formation = $2, strategy = $3
		WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query, team.Name, team.Formation, team.Strategy, team.ID)
	if err != nil {
		return r.handleTeamError(err)
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) UpdateCrestKey(ctx context.Context, id int, crestKey *string) error {
	query := `UPDATE teams SET crest_key = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, crestKey, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM teams WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) handleTeamError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505": // unique_violation
			if pqErr.Constraint == "teams_name_key" {
				return ErrTeamNameConflict
			}
		case "23503": // foreign_key_violation
			if pqErr.Constraint == "teams_manager_id_fkey" {
				return ErrTeamManagerInvalid
			}
		}
	}
	return err
}
