package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/footylab/league-system/models"
	"github.com/footylab/league-system/repositories"
	"github.com/footylab/league-system/standings"
)

// TeamStatisticsResult is the payload of GET /teams/{id}/statistics.
type TeamStatisticsResult struct {
	Team    *models.Team          `json:"team"`
	Matches []*models.MatchResult `json:"matches"`
	Stats   *models.TeamStats     `json:"stats"`
}

// PlayerStatisticsResult is the payload of GET /players/{id}/statistics. The
// statistics are those of the player's current team; a player without a team
// gets the zero summary and an empty match list.
type PlayerStatisticsResult struct {
	Player  *models.Player        `json:"player"`
	Matches []*models.MatchResult `json:"matches"`
	Stats   *models.TeamStats     `json:"stats"`
}

type StatisticsService interface {
	PointsTable(ctx context.Context) ([]*models.StandingsRow, error)
	TeamStatistics(ctx context.Context, requester Requester, teamID int) (*TeamStatisticsResult, error)
	PlayerStatistics(ctx context.Context, requester Requester, playerID int) (*PlayerStatisticsResult, error)
}

type statisticsService struct {
	teamRepo   repositories.TeamRepository
	playerRepo repositories.PlayerRepository
	matchRepo  repositories.MatchRepository
	engine     *standings.Engine
}

func NewStatisticsService(
	teamRepo repositories.TeamRepository,
	playerRepo repositories.PlayerRepository,
	matchRepo repositories.MatchRepository,
	engine *standings.Engine,
) StatisticsService {
	return &statisticsService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		engine:     engine,
	}
}

func (s *statisticsService) PointsTable(ctx context.Context) ([]*models.StandingsRow, error) {
	var (
		teams   []*models.Team
		matches []*models.Match
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		teams, err = s.teamRepo.List(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		matches, err = s.matchRepo.List(gCtx, repositories.MatchFilter{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load points table snapshot: %w", err)
	}

	return s.engine.PointsTable(teams, matches), nil
}

func (s *statisticsService) TeamStatistics(ctx context.Context, requester Requester, teamID int) (*TeamStatisticsResult, error) {
	var (
		team    *models.Team
		matches []*models.Match
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		team, err = s.teamRepo.GetByID(gCtx, teamID)
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return err
	})
	g.Go(func() error {
		var err error
		matches, err = s.matchRepo.List(gCtx, repositories.MatchFilter{})
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load statistics snapshot for team %d: %w", teamID, err)
	}

	if err := s.mayViewTeam(requester, team); err != nil {
		return nil, err
	}

	stats, history := s.engine.TeamStatistics(teamID, matches)
	return &TeamStatisticsResult{Team: team, Matches: history, Stats: stats}, nil
}

func (s *statisticsService) PlayerStatistics(ctx context.Context, requester Requester, playerID int) (*PlayerStatisticsResult, error) {
	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player %d: %w", playerID, err)
	}

	// Players may view their own statistics; league admins anyone's.
	if !requester.IsLeagueAdmin() && player.UserID != requester.UserID {
		return nil, ErrForbiddenOperation
	}

	// Unassigned players have no matches to aggregate.
	if player.TeamID == nil {
		stats, history := s.engine.TeamStatistics(0, nil)
		return &PlayerStatisticsResult{Player: player, Matches: history, Stats: stats}, nil
	}

	matches, err := s.matchRepo.List(ctx, repositories.MatchFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load statistics snapshot for player %d: %w", playerID, err)
	}

	stats, history := s.engine.TeamStatistics(*player.TeamID, matches)
	return &PlayerStatisticsResult{Player: player, Matches: history, Stats: stats}, nil
}

func (s *statisticsService) mayViewTeam(requester Requester, team *models.Team) error {
	if requester.IsLeagueAdmin() {
		return nil
	}
	if requester.Role == models.RoleTeamManager &&
		team.ManagerID != nil && *team.ManagerID == requester.UserID {
		return nil
	}
	return ErrForbiddenOperation
}
