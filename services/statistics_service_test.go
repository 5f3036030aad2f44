package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/footylab/league-system/models"
	"github.com/footylab/league-system/repositories"
	"github.com/footylab/league-system/standings"
)

func intPtr(v int) *int { return &v }

type fakeTeamRepo struct {
	teams map[int]*models.Team
}

func (f *fakeTeamRepo) Create(ctx context.Context, team *models.Team) error { return nil }

func (f *fakeTeamRepo) GetByID(ctx context.Context, id int) (*models.Team, error) {
	team, ok := f.teams[id]
	if !ok {
		return nil, repositories.ErrTeamNotFound
	}
	return team, nil
}

func (f *fakeTeamRepo) List(ctx context.Context) ([]*models.Team, error) {
	teams := make([]*models.Team, 0, len(f.teams))
	for _, team := range f.teams {
		teams = append(teams, team)
	}
	return teams, nil
}

func (f *fakeTeamRepo) Update(ctx context.Context, team *models.Team) error { return nil }

func (f *fakeTeamRepo) UpdateCrestKey(ctx context.Context, id int, crestKey *string) error {
	return nil
}

func (f *fakeTeamRepo) Delete(ctx context.Context, id int) error { return nil }

type fakePlayerRepo struct {
	players map[int]*models.Player
}

func (f *fakePlayerRepo) Create(ctx context.Context, player *models.Player) error { return nil }

func (f *fakePlayerRepo) GetByID(ctx context.Context, id int) (*models.Player, error) {
	player, ok := f.players[id]
	if !ok {
		return nil, repositories.ErrPlayerNotFound
	}
	return player, nil
}

func (f *fakePlayerRepo) GetByUserID(ctx context.Context, userID int) (*models.Player, error) {
	for _, player := range f.players {
		if player.UserID == userID {
			return player, nil
		}
	}
	return nil, repositories.ErrPlayerNotFound
}

func (f *fakePlayerRepo) List(ctx context.Context) ([]*models.Player, error) { return nil, nil }

func (f *fakePlayerRepo) ListByTeam(ctx context.Context, teamID int) ([]*models.Player, error) {
	return nil, nil
}

func (f *fakePlayerRepo) UpdateProfile(ctx context.Context, player *models.Player) error {
	return nil
}

func (f *fakePlayerRepo) UpdateTeam(ctx context.Context, id int, teamID *int) error { return nil }

type fakeMatchRepo struct {
	matches []*models.Match
	listErr error
}

func (f *fakeMatchRepo) Create(ctx context.Context, match *models.Match) error { return nil }

func (f *fakeMatchRepo) GetByID(ctx context.Context, id int) (*models.Match, error) {
	return nil, repositories.ErrMatchNotFound
}

func (f *fakeMatchRepo) List(ctx context.Context, filter repositories.MatchFilter) ([]*models.Match, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.matches, nil
}

func (f *fakeMatchRepo) UpdateScore(ctx context.Context, id int, homeScore, awayScore int, status models.MatchStatus) (*models.Match, error) {
	return nil, repositories.ErrMatchNotFound
}

func (f *fakeMatchRepo) Delete(ctx context.Context, id int) error { return nil }

func newStatsService(teamRepo repositories.TeamRepository, playerRepo repositories.PlayerRepository, matchRepo repositories.MatchRepository) StatisticsService {
	engine := standings.NewEngine(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewStatisticsService(teamRepo, playerRepo, matchRepo, engine)
}

func statsFixture() (*fakeTeamRepo, *fakePlayerRepo, *fakeMatchRepo) {
	teamRepo := &fakeTeamRepo{teams: map[int]*models.Team{
		1: {ID: 1, Name: "River Rovers", ManagerID: intPtr(10)},
		2: {ID: 2, Name: "Harbour City", ManagerID: intPtr(11)},
	}}
	playerRepo := &fakePlayerRepo{players: map[int]*models.Player{
		5: {ID: 5, UserID: 50, TeamID: intPtr(1)},
		6: {ID: 6, UserID: 60, TeamID: nil},
	}}
	kickoff := time.Date(2026, time.March, 7, 15, 0, 0, 0, time.UTC)
	matchRepo := &fakeMatchRepo{matches: []*models.Match{
		{
			ID: 1, HomeTeamID: 1, AwayTeamID: 2, StadiumID: 1,
			HomeScore: intPtr(2), AwayScore: intPtr(0),
			MatchDate: kickoff, Status: models.MatchStatusCompleted,
		},
		{
			ID: 2, HomeTeamID: 2, AwayTeamID: 1, StadiumID: 1,
			MatchDate: kickoff.Add(7 * 24 * time.Hour), Status: models.MatchStatusScheduled,
		},
	}}
	return teamRepo, playerRepo, matchRepo
}

func TestStatisticsServicePointsTable(t *testing.T) {
	teamRepo, playerRepo, matchRepo := statsFixture()
	svc := newStatsService(teamRepo, playerRepo, matchRepo)

	rows, err := svc.PointsTable(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "River Rovers", rows[0].TeamName)
	assert.Equal(t, 3, rows[0].Points)
	assert.Equal(t, 0, rows[1].Points)
}

func TestStatisticsServiceTeamStatisticsAuthorization(t *testing.T) {
	teamRepo, playerRepo, matchRepo := statsFixture()
	svc := newStatsService(teamRepo, playerRepo, matchRepo)
	ctx := context.Background()

	t.Run("league admin may view any team", func(t *testing.T) {
		result, err := svc.TeamStatistics(ctx, Requester{UserID: 1, Role: models.RoleLeagueAdmin}, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Stats.Wins)
		assert.Len(t, result.Matches, 1)
	})

	t.Run("owning manager may view their team", func(t *testing.T) {
		result, err := svc.TeamStatistics(ctx, Requester{UserID: 10, Role: models.RoleTeamManager}, 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"W"}, result.Stats.RecentForm)
	})

	t.Run("other managers are rejected", func(t *testing.T) {
		_, err := svc.TeamStatistics(ctx, Requester{UserID: 11, Role: models.RoleTeamManager}, 1)
		assert.ErrorIs(t, err, ErrForbiddenOperation)
	})

	t.Run("unknown team", func(t *testing.T) {
		_, err := svc.TeamStatistics(ctx, Requester{UserID: 1, Role: models.RoleLeagueAdmin}, 99)
		assert.ErrorIs(t, err, ErrTeamNotFound)
	})
}

func TestStatisticsServicePlayerStatistics(t *testing.T) {
	teamRepo, playerRepo, matchRepo := statsFixture()
	svc := newStatsService(teamRepo, playerRepo, matchRepo)
	ctx := context.Background()

	t.Run("player sees own statistics", func(t *testing.T) {
		result, err := svc.PlayerStatistics(ctx, Requester{UserID: 50, Role: models.RolePlayer}, 5)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Stats.TotalMatches)
		assert.Equal(t, 3, result.Stats.Points)
	})

	t.Run("player cannot see another player", func(t *testing.T) {
		_, err := svc.PlayerStatistics(ctx, Requester{UserID: 50, Role: models.RolePlayer}, 6)
		assert.ErrorIs(t, err, ErrForbiddenOperation)
	})

	t.Run("teamless player gets the zero summary", func(t *testing.T) {
		result, err := svc.PlayerStatistics(ctx, Requester{UserID: 1, Role: models.RoleLeagueAdmin}, 6)
		require.NoError(t, err)
		assert.Equal(t, 0, result.Stats.TotalMatches)
		assert.Empty(t, result.Matches)
		assert.Empty(t, result.Stats.RecentForm)
	})

	t.Run("unknown player", func(t *testing.T) {
		_, err := svc.PlayerStatistics(ctx, Requester{UserID: 1, Role: models.RoleLeagueAdmin}, 99)
		assert.ErrorIs(t, err, ErrPlayerNotFound)
	})
}

func TestStatisticsServicePointsTableRepositoryError(t *testing.T) {
	teamRepo, playerRepo, matchRepo := statsFixture()
	matchRepo.listErr = errors.New("connection reset")
	svc := newStatsService(teamRepo, playerRepo, matchRepo)

	_, err := svc.PointsTable(context.Background())
	assert.Error(t, err)
}
