// File: models/team.go
package models

import "time"

// Team is a club within a league. (Name, League) is unique.
type Team struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	League    string    `json:"league"`
	Players   []Player  `json:"players"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
