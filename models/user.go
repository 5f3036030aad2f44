package models

import "time"

type UserRole string

const (
	RoleLeagueAdmin    UserRole = "league_admin"
	RoleTeamManager    UserRole = "team_manager"
	RolePlayer         UserRole = "player"
	RoleReferee        UserRole = "referee"
	RoleStadiumManager UserRole = "stadium_manager"
)

// ValidRole reports whether r is one of the known league roles.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleLeagueAdmin, RoleTeamManager, RolePlayer, RoleReferee, RoleStadiumManager:
		return true
	}
	return false
}

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Role         UserRole  `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
