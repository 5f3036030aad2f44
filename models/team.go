package models

import "time"

type Team struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	ManagerID *int      `json:"manager_id,omitempty" db:"manager_id"`
	Formation string    `json:"formation" db:"formation"`
	Strategy  string    `json:"strategy" db:"strategy"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	Manager *User    `json:"manager,omitempty" db:"-"`
	Players []Player `json:"players,omitempty" db:"-"`

	CrestKey *string `json:"-" db:"crest_key"`
	CrestURL *string `json:"crest_url,omitempty" db:"-"`
}
