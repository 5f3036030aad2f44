package models

type Stadium struct {
	ID        int    `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Location  string `json:"location" db:"location"`
	Capacity  int    `json:"capacity" db:"capacity"`
	ManagerID *int   `json:"manager_id,omitempty" db:"manager_id"`

	PhotoKey *string `json:"-" db:"photo_key"`
	PhotoURL *string `json:"photo_url,omitempty" db:"-"`
}
