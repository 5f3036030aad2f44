package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/footylab/league-system/models"
)

var (
	ErrPlayerNotFound    = errors.New("player not found")
	ErrPlayerUserInvalid = errors.New("player user conflict or invalid")
	ErrPlayerTeamInvalid = errors.New("player team conflict or invalid")
)

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id int) (*models.Player, error)
	GetByUserID(ctx context.Context, userID int) (*models.Player, error)
	List(ctx context.Context) ([]*models.Player, error)
	ListByTeam(ctx context.Context, teamID int) ([]*models.Player, error)
	UpdateProfile(ctx context.Context, player *models.Player) error
	UpdateTeam(ctx context.Context, id int, teamID *int) error
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

const playerSelect = `
	SELECT p.id, p.user_id, p.team_id, p.position, p.age, p.height, p.weight,
	       u.name, u.username, u.email, t.name
	FROM players p
	LEFT JOIN users u ON p.user_id = u.id
	LEFT JOIN teams t ON p.team_id = t.id`

func (r *postgresPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	query := `
		INSERT INTO players (user_id, team_id, position, age, height, weight)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		player.UserID,
		player.TeamID,
		player.Position,
		player.Age,
		player.Height,
		player.Weight,
	).Scan(&player.ID)

	return r.handlePlayerError(err)
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, id int) (*models.Player, error) {
	return r.queryOne(ctx, playerSelect+" WHERE p.id = $1", id)
}

func (r *postgresPlayerRepository) GetByUserID(ctx context.Context, userID int) (*models.Player, error) {
	return r.queryOne(ctx, playerSelect+" WHERE p.user_id = $1", userID)
}

func (r *postgresPlayerRepository) List(ctx context.Context) ([]*models.Player, error) {
	return r.queryMany(ctx, playerSelect+" ORDER BY p.id ASC")
}

func (r *postgresPlayerRepository) ListByTeam(ctx context.Context, teamID int) ([]*models.Player, error) {
	return r.queryMany(ctx, playerSelect+" WHERE p.team_id = $1 ORDER BY p.id ASC", teamID)
}

func (r *postgresPlayerRepository) UpdateProfile(ctx context.Context, player *models.Player) error {
	query := `
		UPDATE players
		SET position = $1, age = $2, height = $3, weight = $4
		WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query,
		player.Position, player.Age, player.Height, player.Weight, player.ID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) UpdateTeam(ctx context.Context, id int, teamID *int) error {
	query := `UPDATE players SET team_id = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, teamID, id)
	if err != nil {
		return r.handlePlayerError(err)
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) queryOne(ctx context.Context, query string, args ...interface{}) (*models.Player, error) {
	player, err := scanPlayer(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return player, nil
}

func (r *postgresPlayerRepository) queryMany(ctx context.Context, query string, args ...interface{}) ([]*models.Player, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]*models.Player, 0)
	for rows.Next() {
		player, scanErr := scanPlayer(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		players = append(players, player)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return players, nil
}

func scanPlayer(rowScanner interface{ Scan(...interface{}) error }) (*models.Player, error) {
	player := &models.Player{}
	var name, username, email sql.NullString
	err := rowScanner.Scan(
		&player.ID,
		&player.UserID,
		&player.TeamID,
		&player.Position,
		&player.Age,
		&player.Height,
		&player.Weight,
		&name,
		&username,
		&email,
		&player.TeamName,
	)
	if err != nil {
		return nil, err
	}
	player.Name = name.String
	player.Username = username.String
	player.Email = email.String
	return player, nil
}

func (r *postgresPlayerRepository) handlePlayerError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		if pqErr.Code == "23503" { // foreign_key_violation
			switch pqErr.Constraint {
			case "players_user_id_fkey":
				return ErrPlayerUserInvalid
			case "players_team_id_fkey":
				return ErrPlayerTeamInvalid
			}
		}
	}
	return err
}
