package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/footylab/league-system/models"
	"github.com/footylab/league-system/repositories"
)

type CreateMatchInput struct {
	HomeTeamID int        `json:"home_team_id"`
	AwayTeamID int        `json:"away_team_id"`
	StadiumID  int        `json:"stadium_id"`
	RefereeID  *int       `json:"referee_id"`
	MatchDate  *time.Time `json:"match_date"`
}

type UpdateScoreInput struct {
	HomeScore int                `json:"home_score"`
	AwayScore int                `json:"away_score"`
	Status    models.MatchStatus `json:"status"`
}

// MatchTimeFrame selects a slice of the schedule relative to now.
type MatchTimeFrame string

const (
	TimeFrameAll      MatchTimeFrame = ""
	TimeFrameUpcoming MatchTimeFrame = "upcoming"
	TimeFramePast     MatchTimeFrame = "past"
)

type MatchService interface {
	Create(ctx context.Context, input CreateMatchInput) (*models.Match, error)
	GetByID(ctx context.Context, id int) (*models.Match, error)
	List(ctx context.Context, frame MatchTimeFrame) ([]*models.Match, error)
	ListByReferee(ctx context.Context, refereeID int, frame MatchTimeFrame) ([]*models.Match, error)
	UpdateScore(ctx context.Context, id int, input UpdateScoreInput) (*models.Match, error)
	Delete(ctx context.Context, id int) error
}

type matchService struct {
	matchRepo repositories.MatchRepository
}

func NewMatchService(matchRepo repositories.MatchRepository) MatchService {
	return &matchService{matchRepo: matchRepo}
}

func (s *matchService) Create(ctx context.Context, input CreateMatchInput) (*models.Match, error) {
	if input.HomeTeamID == input.AwayTeamID {
		return nil, ErrMatchTeamsIdentical
	}
	if input.MatchDate == nil {
		return nil, ErrMatchDateRequired
	}

	match := &models.Match{
		HomeTeamID: input.HomeTeamID,
		AwayTeamID: input.AwayTeamID,
		StadiumID:  input.StadiumID,
		RefereeID:  input.RefereeID,
		MatchDate:  *input.MatchDate,
		Status:     models.MatchStatusScheduled,
	}

	if err := s.matchRepo.Create(ctx, match); err != nil {
		switch {
		case errors.Is(err, repositories.ErrMatchTeamInvalid):
			return nil, ErrTeamNotFound
		case errors.Is(err, repositories.ErrMatchStadiumInvalid):
			return nil, ErrStadiumNotFound
		case errors.Is(err, repositories.ErrMatchRefereeInvalid):
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return s.GetByID(ctx, match.ID)
}

func (s *matchService) GetByID(ctx context.Context, id int) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match %d: %w", id, err)
	}
	return match, nil
}

func (s *matchService) List(ctx context.Context, frame MatchTimeFrame) ([]*models.Match, error) {
	matches, err := s.matchRepo.List(ctx, filterForFrame(frame, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

func (s *matchService) ListByReferee(ctx context.Context, refereeID int, frame MatchTimeFrame) ([]*models.Match, error) {
	matches, err := s.matchRepo.List(ctx, filterForFrame(frame, &refereeID))
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for referee %d: %w", refereeID, err)
	}
	return matches, nil
}

func (s *matchService) UpdateScore(ctx context.Context, id int, input UpdateScoreInput) (*models.Match, error) {
	if input.HomeScore < 0 || input.AwayScore < 0 {
		return nil, ErrScoreNegative
	}
	status := input.Status
	if status == "" {
		status = models.MatchStatusCompleted
	}
	if status != models.MatchStatusScheduled && status != models.MatchStatusCompleted {
		return nil, ErrInvalidMatchStatus
	}

	match, err := s.matchRepo.UpdateScore(ctx, id, input.HomeScore, input.AwayScore, status)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to update score of match %d: %w", id, err)
	}
	return match, nil
}

func (s *matchService) Delete(ctx context.Context, id int) error {
	if err := s.matchRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return ErrMatchNotFound
		}
		return fmt.Errorf("failed to delete match %d: %w", id, err)
	}
	return nil
}

func filterForFrame(frame MatchTimeFrame, refereeID *int) repositories.MatchFilter {
	filter := repositories.MatchFilter{RefereeID: refereeID}
	now := time.Now()
	switch frame {
	case TimeFrameUpcoming:
		filter.After = &now
	case TimeFramePast:
		filter.Until = &now
		filter.Descending = true
	}
	return filter
}
