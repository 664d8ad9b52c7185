// File: models/matchday.go
package models

import "time"

// MatchdayRating is one anonymous fan submission for a game: a rating per
// player name plus a Man of the Match vote. Records are append-only.
type MatchdayRating struct {
	ID        string         `json:"id"`
	GameID    string         `json:"gameId"`
	Ratings   map[string]int `json:"ratings"`
	MomVote   string         `json:"momVote"`
	CreatedAt time.Time      `json:"createdAt"`
}
