package services

import "github.com/footylab/league-system/models"

// Requester identifies the authenticated caller of a role-sensitive
// operation. Handlers construct it from verified token claims; services never
// read identity from ambient state.
type Requester struct {
	UserID int
	Role   models.UserRole
}

func (r Requester) IsLeagueAdmin() bool {
	return r.Role == models.RoleLeagueAdmin
}
