package standings

import (
	"log/slog"
	"math"
	"sort"

	"github.com/footylab/league-system/models"
)

// recentFormLimit caps the form sequence at the last five completed matches.
const recentFormLimit = 5

const (
	VenueHome = "home"
	VenueAway = "away"

	ResultWin  = "win"
	ResultDraw = "draw"
	ResultLoss = "loss"
)

// Engine derives the league points table and per-team statistics from a
// snapshot of match records. It holds no state across calls and performs no
// I/O, so a single instance is safe for concurrent use. For identical
// snapshots the output is identical.
type Engine struct {
	logger *slog.Logger
}

func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// PointsTable aggregates every countable match into a ranked table. Each
// match is visited once and credited to both participating teams, ordered by
// points, then goal difference, then goals scored, all descending. Ties
// beyond that keep the input team order. Teams without completed matches get
// an all-zero row.
func (e *Engine) PointsTable(teams []*models.Team, matches []*models.Match) []*models.StandingsRow {
	rows := make([]*models.StandingsRow, 0, len(teams))
	byTeam := make(map[int]*models.StandingsRow, len(teams))
	for _, t := range teams {
		row := &models.StandingsRow{TeamID: t.ID, TeamName: t.Name}
		rows = append(rows, row)
		byTeam[t.ID] = row
	}

	for _, m := range matches {
		if !e.countable(m) {
			continue
		}
		home, away := byTeam[m.HomeTeamID], byTeam[m.AwayTeamID]
		if home == nil || away == nil {
			e.logger.Warn("match references a team missing from the snapshot",
				slog.Int("match_id", m.ID),
				slog.Int("home_team_id", m.HomeTeamID),
				slog.Int("away_team_id", m.AwayTeamID))
			continue
		}
		applyResult(home, *m.HomeScore, *m.AwayScore)
		applyResult(away, *m.AwayScore, *m.HomeScore)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].GoalDifference != rows[j].GoalDifference {
			return rows[i].GoalDifference > rows[j].GoalDifference
		}
		return rows[i].GoalsFor > rows[j].GoalsFor
	})

	return rows
}

// TeamStatistics derives the statistics summary and annotated match history
// for one team from a match snapshot. The history holds every countable match
// the team took part in, ordered by match date descending; the recent-form
// sequence covers at most the five most recent of those.
func (e *Engine) TeamStatistics(teamID int, matches []*models.Match) (*models.TeamStats, []*models.MatchResult) {
	history := make([]*models.MatchResult, 0)
	for _, m := range matches {
		if m.HomeTeamID != teamID && m.AwayTeamID != teamID {
			continue
		}
		if !e.countable(m) {
			continue
		}
		history = append(history, annotate(m, teamID))
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].MatchDate.After(history[j].MatchDate)
	})

	stats := &models.TeamStats{RecentForm: make([]string, 0, recentFormLimit)}
	for _, r := range history {
		scored, conceded := r.HomeScore, r.AwayScore
		if r.Venue == VenueAway {
			scored, conceded = conceded, scored
		}

		stats.TotalMatches++
		stats.GoalsFor += scored
		stats.GoalsAgainst += conceded
		switch r.Result {
		case ResultWin:
			stats.Wins++
		case ResultDraw:
			stats.Draws++
		default:
			stats.Losses++
		}

		if len(stats.RecentForm) < recentFormLimit {
			stats.RecentForm = append(stats.RecentForm, formCode(r.Result))
		}
	}

	stats.GoalDifference = stats.GoalsFor - stats.GoalsAgainst
	stats.Points = stats.Wins*3 + stats.Draws
	if stats.TotalMatches > 0 {
		total := float64(stats.TotalMatches)
		stats.WinPercentage = round2(float64(stats.Wins) / total * 100)
		stats.DrawPercentage = round2(float64(stats.Draws) / total * 100)
		stats.LossPercentage = round2(float64(stats.Losses) / total * 100)
		stats.AverageGoalsScored = round2(float64(stats.GoalsFor) / total)
		stats.AverageGoalsConceded = round2(float64(stats.GoalsAgainst) / total)
	}

	return stats, history
}

// countable reports whether a match may enter any aggregation. A completed
// match with missing scores, or one pairing a team against itself, violates
// the storage invariant; such rows are excluded and flagged instead of
// failing the whole computation.
func (e *Engine) countable(m *models.Match) bool {
	if m.Status != models.MatchStatusCompleted {
		return false
	}
	if m.HomeScore == nil || m.AwayScore == nil {
		e.logger.Warn("completed match has missing scores, excluding from aggregation",
			slog.Int("match_id", m.ID))
		return false
	}
	if m.HomeTeamID == m.AwayTeamID {
		e.logger.Warn("match pairs a team against itself, excluding from aggregation",
			slog.Int("match_id", m.ID),
			slog.Int("team_id", m.HomeTeamID))
		return false
	}
	return true
}

func applyResult(row *models.StandingsRow, scored, conceded int) {
	row.Played++
	row.GoalsFor += scored
	row.GoalsAgainst += conceded
	row.GoalDifference = row.GoalsFor - row.GoalsAgainst
	switch {
	case scored > conceded:
		row.Wins++
	case scored == conceded:
		row.Draws++
	default:
		row.Losses++
	}
	row.Points = row.Wins*3 + row.Draws
}

func annotate(m *models.Match, teamID int) *models.MatchResult {
	r := &models.MatchResult{
		MatchID:   m.ID,
		MatchDate: m.MatchDate,
		HomeScore: *m.HomeScore,
		AwayScore: *m.AwayScore,
		Stadium:   m.Stadium,
	}

	if m.HomeTeamID == teamID {
		r.Venue = VenueHome
		r.Opponent = m.AwayTeam
	} else {
		r.Venue = VenueAway
		r.Opponent = m.HomeTeam
	}

	scored, conceded := r.HomeScore, r.AwayScore
	if r.Venue == VenueAway {
		scored, conceded = conceded, scored
	}
	switch {
	case scored > conceded:
		r.Result = ResultWin
	case scored == conceded:
		r.Result = ResultDraw
	default:
		r.Result = ResultLoss
	}

	return r
}

func formCode(result string) string {
	switch result {
	case ResultWin:
		return "W"
	case ResultDraw:
		return "D"
	default:
		return "L"
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
