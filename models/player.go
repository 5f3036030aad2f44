package models

type Player struct {
	ID       int    `json:"id" db:"id"`
	UserID   int    `json:"user_id" db:"user_id"`
	TeamID   *int   `json:"team_id,omitempty" db:"team_id"`
	Position string `json:"position" db:"position"`
	Age      int    `json:"age" db:"age"`
	Height   int    `json:"height" db:"height"`
	Weight   int    `json:"weight" db:"weight"`

	// Joined from users/teams for list and detail views.
	Name     string  `json:"name,omitempty" db:"-"`
	Username string  `json:"username,omitempty" db:"-"`
	Email    string  `json:"email,omitempty" db:"-"`
	TeamName *string `json:"team_name,omitempty" db:"-"`
}
