package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/footylab/league-system/models"
)

var (
	ErrMatchNotFound       = errors.New("match not found")
	ErrMatchTeamInvalid    = errors.New("match team conflict or invalid")
	ErrMatchStadiumInvalid = errors.New("match stadium conflict or invalid")
	ErrMatchRefereeInvalid = errors.New("match referee conflict or invalid")
)

// MatchFilter narrows List results. Zero value lists everything ordered by
// match date ascending.
type MatchFilter struct {
	RefereeID  *int
	After      *time.Time // match_date strictly after
	Until      *time.Time // match_date at or before
	Descending bool
}

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	List(ctx context.Context, filter MatchFilter) ([]*models.Match, error)
	UpdateScore(ctx context.Context, id int, homeScore, awayScore int, status models.MatchStatus) (*models.Match, error)
	Delete(ctx context.Context, id int) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

const matchSelect = `
	SELECT m.id, m.home_team_id, m.away_team_id, m.stadium_id, m.referee_id,
	       m.match_date, m.home_score, m.away_score, m.status,
	       ht.name, at.name, s.name, u.name
	FROM matches m
	JOIN teams ht ON m.home_team_id = ht.id
	JOIN teams at ON m.away_team_id = at.id
	JOIN stadiums s ON m.stadium_id = s.id
	LEFT JOIN users u ON m.referee_id = u.id`

func (r *postgresMatchRepository) Create(ctx context.Context, match *models.Match) error {
	query := `
		INSERT INTO matches (home_team_id, away_team_id, stadium_id, referee_id, match_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	if match.Status == "" {
		match.Status = models.MatchStatusScheduled
	}

	err := r.db.QueryRowContext(ctx, query,
		match.HomeTeamID,
		match.AwayTeamID,
		match.StadiumID,
		match.RefereeID,
		match.MatchDate,
		match.Status,
	).Scan(&match.ID)

	return r.handleMatchError(err)
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	match, err := scanMatch(r.db.QueryRowContext(ctx, matchSelect+" WHERE m.id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return match, nil
}

func (r *postgresMatchRepository) List(ctx context.Context, filter MatchFilter) ([]*models.Match, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(matchSelect)

	args := make([]interface{}, 0, 3)
	conditions := make([]string, 0, 3)
	placeholderIndex := 1

	if filter.RefereeID != nil {
		conditions = append(conditions, "m.referee_id = $"+strconv.Itoa(placeholderIndex))
		args = append(args, *filter.RefereeID)
		placeholderIndex++
	}
	if filter.After != nil {
		conditions = append(conditions, "m.match_date > $"+strconv.Itoa(placeholderIndex))
		args = append(args, *filter.After)
		placeholderIndex++
	}
	if filter.Until != nil {
		conditions = append(conditions, "m.match_date <= $"+strconv.Itoa(placeholderIndex))
		args = append(args, *filter.Until)
		placeholderIndex++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}

	if filter.Descending {
		queryBuilder.WriteString(" ORDER BY m.match_date DESC")
	} else {
		queryBuilder.WriteString(" ORDER BY m.match_date ASC")
	}

	rows, err := r.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]*models.Match, 0)
	for rows.Next() {
		match, scanErr := scanMatch(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		matches = append(matches, match)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *postgresMatchRepository) UpdateScore(ctx context.Context, id int, homeScore, awayScore int, status models.MatchStatus) (*models.Match, error) {
	query := `
		UPDATE matches
		SET home_score = $1, away_score = $2, status = $3
		WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query, homeScore, awayScore, status, id)
	if err != nil {
		return nil, r.handleMatchError(err)
	}
	if err := checkAffectedRows(result, ErrMatchNotFound); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *postgresMatchRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM matches WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func scanMatch(rowScanner interface{ Scan(...interface{}) error }) (*models.Match, error) {
	match := &models.Match{}
	err := rowScanner.Scan(
		&match.ID,
		&match.HomeTeamID,
		&match.AwayTeamID,
		&match.StadiumID,
		&match.RefereeID,
		&match.MatchDate,
		&match.HomeScore,
		&match.AwayScore,
		&match.Status,
		&match.HomeTeam,
		&match.AwayTeam,
		&match.Stadium,
		&match.RefereeName,
	)
	if err != nil {
		return nil, err
	}
	return match, nil
}

func (r *postgresMatchRepository) handleMatchError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		if pqErr.Code == "23503" { // foreign_key_violation
			switch pqErr.Constraint {
			case "matches_home_team_id_fkey", "matches_away_team_id_fkey":
				return ErrMatchTeamInvalid
			case "matches_stadium_id_fkey":
				return ErrMatchStadiumInvalid
			case "matches_referee_id_fkey":
				return ErrMatchRefereeInvalid
			}
		}
	}
	return err
}
