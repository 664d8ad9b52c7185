// Package models defines data structures used across the application.
// File: models/game.go
package models

import "time"

// ----------------------- game status -----------------------

// GameStatus is the lifecycle stage of a fixture. Transitions are admin-driven
// and not enforced as a state machine.
type GameStatus string

const (
	StatusUpcoming GameStatus = "upcoming"
	StatusLive     GameStatus = "live"
	StatusFinished GameStatus = "finished"
)

// Valid reports whether s is one of the known statuses.
func (s GameStatus) Valid() bool {
	switch s {
	case StatusUpcoming, StatusLive, StatusFinished:
		return true
	}
	return false
}

// ----------------------- player model -----------------------

// Player is a roster entry on a team or on one side of a game.
type Player struct {
	Name     string `json:"name"`
	Position string `json:"position"`
}

// ------------------------ game model -----------------------

// Game is a scheduled fixture between two teams.
// HomeScore and AwayScore are only set while Status is finished.
type Game struct {
	ID          string     `json:"id"`
	League      string     `json:"league"`
	HomeTeam    string     `json:"homeTeam"`
	AwayTeam    string     `json:"awayTeam"`
	HomePlayers []Player   `json:"homePlayers"`
	AwayPlayers []Player   `json:"awayPlayers"`
	GameDate    string     `json:"gameDate"` // YYYY-MM-DD, compared as a string
	GameTime    string     `json:"gameTime"` // HH:MM, compared as a string
	Status      GameStatus `json:"status"`
	HomeScore   *int       `json:"homeScore,omitempty"`
	AwayScore   *int       `json:"awayScore,omitempty"`
	Hot         bool       `json:"hot"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// AllPlayers returns the home roster followed by the away roster.
func (g Game) AllPlayers() []Player {
	all := make([]Player, 0, len(g.HomePlayers)+len(g.AwayPlayers))
	all = append(all, g.HomePlayers...)
	return append(all, g.AwayPlayers...)
}

// Fixture is the public projection of a Game used by the matchday hub.
type Fixture struct {
	ID       string     `json:"id"`
	League   string     `json:"league"`
	HomeTeam string     `json:"homeTeam"`
	AwayTeam string     `json:"awayTeam"`
	GameDate string     `json:"gameDate"`
	GameTime string     `json:"gameTime"`
	Hot      bool       `json:"hot"`
	Status   GameStatus `json:"status"`
}

// Fixture projects g for the public hub.
func (g Game) Fixture() Fixture {
	return Fixture{
		ID:       g.ID,
		League:   g.League,
		HomeTeam: g.HomeTeam,
		AwayTeam: g.AwayTeam,
		GameDate: g.GameDate,
		GameTime: g.GameTime,
		Hot:      g.Hot,
		Status:   g.Status,
	}
}
