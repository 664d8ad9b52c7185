// File: store/validate.go
package store

import (
	"fmt"
	"sort"
	"strings"

	"fanconnect/models"
)

func required(fields map[string]string) error {
	var missing []string
	for name, v := range fields {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("%w: missing %s", ErrInvalid, strings.Join(missing, ", "))
}

func validateUser(u *models.User) error {
	return required(map[string]string{
		"username": u.Username,
		"email":    u.Email,
		"password": u.Password,
	})
}

func validateTeam(t *models.Team) error {
	if err := required(map[string]string{"name": t.Name, "league": t.League}); err != nil {
		return err
	}
	for i, p := range t.Players {
		if p.Name == "" || p.Position == "" {
			return fmt.Errorf("%w: player %d needs a name and position", ErrInvalid, i)
		}
	}
	return nil
}

func validateGame(g *models.Game) error {
	if err := required(map[string]string{
		"league":   g.League,
		"homeTeam": g.HomeTeam,
		"awayTeam": g.AwayTeam,
		"gameDate": g.GameDate,
		"gameTime": g.GameTime,
	}); err != nil {
		return err
	}
	if !g.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalid, g.Status)
	}
	return nil
}

func validateRating(r *models.MatchdayRating) error {
	return required(map[string]string{"gameId": r.GameID, "momVote": r.MomVote})
}
