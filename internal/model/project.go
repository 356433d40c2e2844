package model

import "time"

// Project is a candidate record fetched from the tracker's project store.
// The search engine only reads it; project CRUD lives in the host app.
type Project struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	OwnerID     string     `json:"owner_id,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	TeamSize    int        `json:"team_size"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
