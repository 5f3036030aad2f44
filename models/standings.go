package models

import "time"

// StandingsRow is one line of the league points table. Derived on demand,
// never persisted.
type StandingsRow struct {
	TeamID         int    `json:"team_id"`
	TeamName       string `json:"team_name"`
	Played         int    `json:"played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

// MatchResult is a completed match annotated from one team's perspective.
type MatchResult struct {
	MatchID   int       `json:"id"`
	MatchDate time.Time `json:"match_date"`
	HomeScore int       `json:"home_score"`
	AwayScore int       `json:"away_score"`
	Venue     string    `json:"venue"`  // "home" or "away"
	Result    string    `json:"result"` // "win", "draw" or "loss"
	Opponent  string    `json:"opponent"`
	Stadium   string    `json:"stadium"`
}

// TeamStats is the aggregated statistics summary for a single team (or for a
// player via the player's current team).
type TeamStats struct {
	TotalMatches         int      `json:"totalMatches"`
	Wins                 int      `json:"wins"`
	Draws                int      `json:"draws"`
	Losses               int      `json:"losses"`
	GoalsFor             int      `json:"goalsFor"`
	GoalsAgainst         int      `json:"goalsAgainst"`
	GoalDifference       int      `json:"goalDifference"`
	WinPercentage        float64  `json:"winPercentage"`
	DrawPercentage       float64  `json:"drawPercentage"`
	LossPercentage       float64  `json:"lossPercentage"`
	AverageGoalsScored   float64  `json:"averageGoalsScored"`
	AverageGoalsConceded float64  `json:"averageGoalsConceded"`
	Points               int      `json:"points"`
	RecentForm           []string `json:"recentForm"` // "W"/"D"/"L", most recent first, at most 5
}
