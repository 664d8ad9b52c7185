// File: store/clone.go
package store

import "fanconnect/models"

// The memory store hands out copies so callers never share backing arrays
// or maps with stored records.

func clonePlayers(in []models.Player) []models.Player {
	if in == nil {
		return []models.Player{}
	}
	out := make([]models.Player, len(in))
	copy(out, in)
	return out
}

func cloneRatings(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneGame(g models.Game) models.Game {
	g.HomePlayers = clonePlayers(g.HomePlayers)
	g.AwayPlayers = clonePlayers(g.AwayPlayers)
	g.HomeScore = cloneInt(g.HomeScore)
	g.AwayScore = cloneInt(g.AwayScore)
	return g
}

func cloneTeam(t models.Team) models.Team {
	t.Players = clonePlayers(t.Players)
	return t
}

func cloneRating(r models.MatchdayRating) models.MatchdayRating {
	r.Ratings = cloneRatings(r.Ratings)
	return r
}
