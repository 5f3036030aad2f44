package standings

import (
	"io"
	"log/slog"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/footylab/league-system/models"
)

var day = 24 * time.Hour

func intPtr(v int) *int { return &v }

func completedMatch(id, homeID, awayID, homeScore, awayScore int, date time.Time) *models.Match {
	return &models.Match{
		ID:         id,
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		HomeScore:  intPtr(homeScore),
		AwayScore:  intPtr(awayScore),
		MatchDate:  date,
		Status:     models.MatchStatusCompleted,
	}
}

func testTeams() []*models.Team {
	return []*models.Team{
		{ID: 1, Name: "Alpha"},
		{ID: 2, Name: "Bravo"},
		{ID: 3, Name: "Charlie"},
		{ID: 4, Name: "Delta"},
	}
}

func newTestEngine() *Engine {
	return NewEngine(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPointsTableEmptyMatchList(t *testing.T) {
	engine := newTestEngine()
	teams := []*models.Team{{ID: 7, Name: "Gamma"}, {ID: 3, Name: "Omega"}, {ID: 5, Name: "Sigma"}}

	rows := engine.PointsTable(teams, nil)

	require.Len(t, rows, 3)
	// With nothing to rank, input team order is preserved.
	assert.Equal(t, []int{7, 3, 5}, []int{rows[0].TeamID, rows[1].TeamID, rows[2].TeamID})
	for _, row := range rows {
		assert.Zero(t, row.Played)
		assert.Zero(t, row.Wins)
		assert.Zero(t, row.Draws)
		assert.Zero(t, row.Losses)
		assert.Zero(t, row.GoalsFor)
		assert.Zero(t, row.GoalsAgainst)
		assert.Zero(t, row.GoalDifference)
		assert.Zero(t, row.Points)
	}
}

func TestPointsTableAggregationAndOrdering(t *testing.T) {
	engine := newTestEngine()
	base := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)

	matches := []*models.Match{
		completedMatch(1, 1, 2, 2, 0, base),            // Alpha beats Bravo
		completedMatch(2, 3, 1, 1, 1, base.Add(day)),   // Charlie draws Alpha
		completedMatch(3, 1, 4, 0, 3, base.Add(2*day)), // Delta beats Alpha
		completedMatch(4, 2, 3, 1, 2, base.Add(3*day)), // Charlie beats Bravo
		{ID: 5, HomeTeamID: 2, AwayTeamID: 4, MatchDate: base.Add(4 * day), Status: models.MatchStatusScheduled},
	}

	rows := engine.PointsTable(testTeams(), matches)
	require.Len(t, rows, 4)

	byTeam := map[int]*models.StandingsRow{}
	for _, r := range rows {
		byTeam[r.TeamID] = r
	}

	alpha := byTeam[1]
	assert.Equal(t, 3, alpha.Played)
	assert.Equal(t, 1, alpha.Wins)
	assert.Equal(t, 1, alpha.Draws)
	assert.Equal(t, 1, alpha.Losses)
	assert.Equal(t, 3, alpha.GoalsFor)
	assert.Equal(t, 4, alpha.GoalsAgainst)
	assert.Equal(t, -1, alpha.GoalDifference)
	assert.Equal(t, 4, alpha.Points)

	bravo := byTeam[2]
	assert.Equal(t, 2, bravo.Played)
	assert.Equal(t, 0, bravo.Points)

	// Ordering invariant: no row is lexicographically below its successor on
	// (points, goal difference, goals for).
	for i := 0; i < len(rows)-1; i++ {
		cur, next := rows[i], rows[i+1]
		if cur.Points != next.Points {
			assert.Greater(t, cur.Points, next.Points)
			continue
		}
		if cur.GoalDifference != next.GoalDifference {
			assert.Greater(t, cur.GoalDifference, next.GoalDifference)
			continue
		}
		assert.GreaterOrEqual(t, cur.GoalsFor, next.GoalsFor)
	}

	// Per-team points identity.
	for _, r := range rows {
		assert.Equal(t, r.Wins*3+r.Draws, r.Points)
		assert.Equal(t, r.GoalsFor-r.GoalsAgainst, r.GoalDifference)
	}
}

func TestPointsTableStableOnFullTies(t *testing.T) {
	engine := newTestEngine()
	base := time.Date(2025, 4, 5, 15, 0, 0, 0, time.UTC)

	// Two identical 1-1 draws: Alpha/Bravo and Charlie/Delta end up fully tied.
	matches := []*models.Match{
		completedMatch(1, 1, 2, 1, 1, base),
		completedMatch(2, 3, 4, 1, 1, base),
	}

	rows := engine.PointsTable(testTeams(), matches)
	require.Len(t, rows, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, []int{rows[0].TeamID, rows[1].TeamID, rows[2].TeamID, rows[3].TeamID})
}

func TestPointsTableExcludesInvalidRows(t *testing.T) {
	engine := newTestEngine()
	base := time.Date(2025, 5, 1, 20, 0, 0, 0, time.UTC)

	matches := []*models.Match{
		// Completed but score missing: data-integrity anomaly, skipped.
		{ID: 1, HomeTeamID: 1, AwayTeamID: 2, MatchDate: base, Status: models.MatchStatusCompleted, HomeScore: intPtr(2)},
		// Team paired against itself: skipped.
		completedMatch(2, 3, 3, 4, 0, base.Add(day)),
		// The one countable match.
		completedMatch(3, 1, 2, 1, 0, base.Add(2*day)),
	}

	rows := engine.PointsTable(testTeams(), matches)

	byTeam := map[int]*models.StandingsRow{}
	for _, r := range rows {
		byTeam[r.TeamID] = r
	}
	assert.Equal(t, 1, byTeam[1].Played)
	assert.Equal(t, 1, byTeam[2].Played)
	assert.Equal(t, 0, byTeam[3].Played)
}

func TestTeamStatisticsScenario(t *testing.T) {
	engine := newTestEngine()
	base := time.Date(2025, 2, 10, 18, 0, 0, 0, time.UTC)

	// Team 1: beat Bravo 2-0 at home, drew Charlie 1-1 away, lost 0-3 to
	// Delta at home (most recent).
	matches := []*models.Match{
		completedMatch(1, 1, 2, 2, 0, base),
		completedMatch(2, 3, 1, 1, 1, base.Add(day)),
		completedMatch(3, 1, 4, 0, 3, base.Add(2*day)),
		completedMatch(4, 2, 3, 5, 0, base.Add(3*day)), // not team 1's match
	}
	matches[0].AwayTeam = "Bravo"
	matches[1].HomeTeam = "Charlie"
	matches[2].AwayTeam = "Delta"

	stats, history := engine.TeamStatistics(1, matches)

	assert.Equal(t, 3, stats.TotalMatches)
	assert.Equal(t, 1, stats.Wins)
	assert.Equal(t, 1, stats.Draws)
	assert.Equal(t, 1, stats.Losses)
	assert.Equal(t, 3, stats.GoalsFor)
	assert.Equal(t, 4, stats.GoalsAgainst)
	assert.Equal(t, -1, stats.GoalDifference)
	assert.Equal(t, 4, stats.Points)
	assert.InDelta(t, 33.33, stats.WinPercentage, 0.001)
	assert.InDelta(t, 33.33, stats.DrawPercentage, 0.001)
	assert.InDelta(t, 33.33, stats.LossPercentage, 0.001)
	assert.InDelta(t, 1.0, stats.AverageGoalsScored, 0.001)
	assert.InDelta(t, 1.33, stats.AverageGoalsConceded, 0.001)
	assert.Equal(t, []string{"L", "D", "W"}, stats.RecentForm)

	require.Len(t, history, 3)
	// Most recent first.
	assert.Equal(t, 3, history[0].MatchID)
	assert.Equal(t, VenueHome, history[0].Venue)
	assert.Equal(t, ResultLoss, history[0].Result)
	assert.Equal(t, "Delta", history[0].Opponent)
	assert.Equal(t, 2, history[1].MatchID)
	assert.Equal(t, VenueAway, history[1].Venue)
	assert.Equal(t, ResultDraw, history[1].Result)
	assert.Equal(t, "Charlie", history[1].Opponent)
	assert.Equal(t, 1, history[2].MatchID)
	assert.Equal(t, ResultWin, history[2].Result)
	assert.Equal(t, "Bravo", history[2].Opponent)
}

func TestTeamStatisticsNoMatches(t *testing.T) {
	engine := newTestEngine()

	stats, history := engine.TeamStatistics(9, nil)

	assert.Zero(t, stats.TotalMatches)
	assert.Zero(t, stats.WinPercentage)
	assert.Zero(t, stats.DrawPercentage)
	assert.Zero(t, stats.LossPercentage)
	assert.Zero(t, stats.AverageGoalsScored)
	assert.Zero(t, stats.AverageGoalsConceded)
	assert.Empty(t, stats.RecentForm)
	assert.Empty(t, history)
}

func TestTeamStatisticsRecentFormWindow(t *testing.T) {
	engine := newTestEngine()
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	matches := make([]*models.Match, 0, 7)
	for i := 0; i < 7; i++ {
		// Alternate wins and losses; the newest match has the highest id.
		home, away := 2, 0
		if i%2 == 1 {
			home, away = 0, 1
		}
		matches = append(matches, completedMatch(i+1, 1, 2, home, away, base.Add(time.Duration(i)*day)))
	}

	stats, history := engine.TeamStatistics(1, matches)

	assert.Equal(t, 7, stats.TotalMatches)
	require.Len(t, stats.RecentForm, recentFormLimit)
	// Match 7 (i=6) is a win, match 6 a loss, and so on backwards.
	assert.Equal(t, []string{"W", "L", "W", "L", "W"}, stats.RecentForm)
	assert.Len(t, history, 7)
}

func TestTeamStatisticsDeterministic(t *testing.T) {
	engine := newTestEngine()
	base := time.Date(2025, 6, 1, 17, 0, 0, 0, time.UTC)

	matches := []*models.Match{
		completedMatch(1, 1, 2, 2, 2, base),
		completedMatch(2, 4, 1, 0, 1, base.Add(day)),
		completedMatch(3, 1, 3, 3, 1, base.Add(2*day)),
	}

	stats1, history1 := engine.TeamStatistics(1, matches)
	stats2, history2 := engine.TeamStatistics(1, matches)

	assert.True(t, reflect.DeepEqual(stats1, stats2), "summary should be identical across runs")
	assert.True(t, reflect.DeepEqual(history1, history2), "history should be identical across runs")
}
