package models

import "time"

type MatchStatus string

const (
	MatchStatusScheduled MatchStatus = "scheduled"
	MatchStatusCompleted MatchStatus = "completed"
)

type Match struct {
	ID         int         `json:"id" db:"id"`
	HomeTeamID int         `json:"home_team_id" db:"home_team_id"`
	AwayTeamID int         `json:"away_team_id" db:"away_team_id"`
	StadiumID  int         `json:"stadium_id" db:"stadium_id"`
	RefereeID  *int        `json:"referee_id,omitempty" db:"referee_id"`
	MatchDate  time.Time   `json:"match_date" db:"match_date"`
	HomeScore  *int        `json:"home_score,omitempty" db:"home_score"`
	AwayScore  *int        `json:"away_score,omitempty" db:"away_score"`
	Status     MatchStatus `json:"status" db:"status"`

	// Joined names, populated by the repository list queries.
	HomeTeam    string  `json:"home_team,omitempty" db:"-"`
	AwayTeam    string  `json:"away_team,omitempty" db:"-"`
	Stadium     string  `json:"stadium,omitempty" db:"-"`
	RefereeName *string `json:"referee_name,omitempty" db:"-"`
}

// Completed reports whether the match counts for standings: status completed
// with both scores recorded.
func (m *Match) Completed() bool {
	return m.Status == MatchStatusCompleted && m.HomeScore != nil && m.AwayScore != nil
}
