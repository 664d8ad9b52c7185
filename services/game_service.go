// File: services/game_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"fanconnect/logger"
	"fanconnect/models"
	"fanconnect/store"
)

// CreateGameRequest is the admin form for scheduling a fixture.
type CreateGameRequest struct {
	League      string          `json:"league"`
	HomeTeam    string          `json:"homeTeam"`
	AwayTeam    string          `json:"awayTeam"`
	HomePlayers []models.Player `json:"homePlayers"`
	AwayPlayers []models.Player `json:"awayPlayers"`
	GameDate    string          `json:"gameDate"`
	GameTime    string          `json:"gameTime"`
}

// UpdateGameRequest overwrites the mutable fields of a fixture. Scores are
// only kept when Status is finished.
type UpdateGameRequest struct {
	GameDate  string `json:"gameDate"`
	GameTime  string `json:"gameTime"`
	Status    string `json:"status"`
	HomeScore Score  `json:"homeScore"`
	AwayScore Score  `json:"awayScore"`
	Hot       bool   `json:"hot"`
}

// HubSection is one league block of the public matchday hub.
type HubSection struct {
	League   string           `json:"league"`
	Title    string           `json:"title"`
	Fixtures []models.Fixture `json:"fixtures"`
}

// MatchdayHub is the public fixture page: hot matches first, then the
// featured leagues. Hot fixtures are not repeated in their league.
type MatchdayHub struct {
	Hot      []models.Fixture `json:"hot"`
	Sections []HubSection     `json:"sections"`
}

// hubLeagues are the leagues featured on the matchday hub, in display order.
var hubLeagues = []struct{ League, Title string }{
	{"Premier League", "Premier League"},
	{"La Liga", "La Liga"},
	{"UCL", "UEFA Champions League"},
}

// GameServiceInterface covers fixture administration and the public feed.
type GameServiceInterface interface {
	CreateGame(ctx context.Context, req CreateGameRequest) (*models.Game, error)
	ListGames(ctx context.Context) ([]models.Game, error)
	GetGame(ctx context.Context, id string) (*models.Game, error)
	UpdateGame(ctx context.Context, id string, req UpdateGameRequest) (*models.Game, error)
	ListFixtures(ctx context.Context) ([]models.Fixture, error)
	MatchdayHub(ctx context.Context) (*MatchdayHub, error)
}

// GameService manages fixtures.
type GameService struct {
	games          store.GameRepository
	leaguePriority []string
}

var _ GameServiceInterface = (*GameService)(nil)

// NewGameService creates a GameService. leaguePriority orders the admin
// game list; leagues not in it sort last.
func NewGameService(games store.GameRepository, leaguePriority []string) *GameService {
	return &GameService{
		games:          games,
		leaguePriority: append([]string(nil), leaguePriority...),
	}
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// CreateGame schedules a new upcoming fixture.
func (s *GameService) CreateGame(ctx context.Context, req CreateGameRequest) (*models.Game, error) {
	if blank(req.League) || blank(req.HomeTeam) || blank(req.AwayTeam) ||
		blank(req.GameDate) || blank(req.GameTime) || req.HomeTeam == req.AwayTeam {
		logger.Warn.Printf("[GameService.CreateGame] invalid game %q vs %q", req.HomeTeam, req.AwayTeam)
		return nil, ErrInvalidGame
	}

	game := &models.Game{
		League:      req.League,
		HomeTeam:    req.HomeTeam,
		AwayTeam:    req.AwayTeam,
		HomePlayers: req.HomePlayers,
		AwayPlayers: req.AwayPlayers,
		GameDate:    req.GameDate,
		GameTime:    req.GameTime,
		Status:      models.StatusUpcoming,
	}
	if err := s.games.CreateGame(ctx, game); err != nil {
		logger.Error.Printf("[GameService.CreateGame] %v", err)
		return nil, fmt.Errorf("create game: %w", err)
	}

	logger.Info.Printf("[GameService.CreateGame] created %s: %s vs %s on %s %s",
		game.ID, game.HomeTeam, game.AwayTeam, game.GameDate, game.GameTime)
	return game, nil
}

// ListGames returns every fixture ordered by league priority, then date,
// then kick-off time. Dates and times compare as plain strings.
func (s *GameService) ListGames(ctx context.Context) ([]models.Game, error) {
	games, err := s.games.ListGames(ctx)
	if err != nil {
		logger.Error.Printf("[GameService.ListGames] %v", err)
		return nil, fmt.Errorf("list games: %w", err)
	}
	SortByLeaguePriority(games, s.leaguePriority)
	return games, nil
}

// SortByLeaguePriority orders games by their league's position in priority
// (unknown leagues last), then GameDate, then GameTime.
func SortByLeaguePriority(games []models.Game, priority []string) {
	rank := make(map[string]int, len(priority))
	for i, league := range priority {
		if _, seen := rank[league]; !seen {
			rank[league] = i
		}
	}
	rankOf := func(league string) int {
		if r, ok := rank[league]; ok {
			return r
		}
		return len(priority)
	}

	sort.SliceStable(games, func(i, j int) bool {
		a, b := games[i], games[j]
		if ra, rb := rankOf(a.League), rankOf(b.League); ra != rb {
			return ra < rb
		}
		if a.GameDate != b.GameDate {
			return a.GameDate < b.GameDate
		}
		return a.GameTime < b.GameTime
	})
}

// GetGame returns one fixture with its rosters.
func (s *GameService) GetGame(ctx context.Context, id string) (*models.Game, error) {
	game, err := s.games.GetGame(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		logger.Error.Printf("[GameService.GetGame] %s: %v", id, err)
		return nil, fmt.Errorf("get game: %w", err)
	}
	return game, nil
}

// UpdateGame overwrites date, time, status and the hot flag. Scores are
// parsed when the status is finished and cleared otherwise.
func (s *GameService) UpdateGame(ctx context.Context, id string, req UpdateGameRequest) (*models.Game, error) {
	status := models.GameStatus(req.Status)
	if !status.Valid() || blank(req.GameDate) || blank(req.GameTime) {
		logger.Warn.Printf("[GameService.UpdateGame] invalid update for %s: status=%q", id, req.Status)
		return nil, ErrInvalidGame
	}

	var home, away *int
	if status == models.StatusFinished {
		h, errH := req.HomeScore.Int()
		a, errA := req.AwayScore.Int()
		if errH != nil || errA != nil {
			logger.Warn.Printf("[GameService.UpdateGame] unreadable score %q-%q for %s", req.HomeScore, req.AwayScore, id)
			return nil, ErrInvalidGame
		}
		home, away = &h, &a
	}

	game, err := s.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	game.GameDate = req.GameDate
	game.GameTime = req.GameTime
	game.Status = status
	game.Hot = req.Hot
	game.HomeScore, game.AwayScore = home, away

	if err := s.games.SaveGame(ctx, game); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrGameNotFound
		}
		logger.Error.Printf("[GameService.UpdateGame] %s: %v", id, err)
		return nil, fmt.Errorf("update game: %w", err)
	}

	logger.Info.Printf("[GameService.UpdateGame] %s now %s on %s %s (hot=%v)",
		id, game.Status, game.GameDate, game.GameTime, game.Hot)
	return game, nil
}

// ListFixtures returns the public projection of every fixture ordered by
// date then time.
func (s *GameService) ListFixtures(ctx context.Context) ([]models.Fixture, error) {
	games, err := s.games.ListGames(ctx)
	if err != nil {
		logger.Error.Printf("[GameService.ListFixtures] %v", err)
		return nil, fmt.Errorf("list fixtures: %w", err)
	}

	sort.SliceStable(games, func(i, j int) bool {
		if games[i].GameDate != games[j].GameDate {
			return games[i].GameDate < games[j].GameDate
		}
		return games[i].GameTime < games[j].GameTime
	})

	fixtures := make([]models.Fixture, 0, len(games))
	for _, g := range games {
		fixtures = append(fixtures, g.Fixture())
	}
	return fixtures, nil
}

// NormalizeLeague maps free-form league names onto the hub leagues.
func NormalizeLeague(raw string) string {
	l := strings.ToLower(raw)
	switch {
	case strings.Contains(l, "premier"):
		return "Premier League"
	case strings.Contains(l, "la liga"):
		return "La Liga"
	case strings.Contains(l, "champions"):
		return "UCL"
	}
	return raw
}

// MatchdayHub groups the fixtures for the public hub page. Fixtures from
// leagues outside the featured list only appear when hot.
func (s *GameService) MatchdayHub(ctx context.Context) (*MatchdayHub, error) {
	fixtures, err := s.ListFixtures(ctx)
	if err != nil {
		return nil, err
	}

	hub := &MatchdayHub{Hot: []models.Fixture{}}
	byLeague := make(map[string][]models.Fixture)
	for _, f := range fixtures {
		f.League = NormalizeLeague(f.League)
		if f.Hot {
			hub.Hot = append(hub.Hot, f)
			continue
		}
		byLeague[f.League] = append(byLeague[f.League], f)
	}

	for _, l := range hubLeagues {
		if len(byLeague[l.League]) == 0 {
			continue
		}
		hub.Sections = append(hub.Sections, HubSection{
			League:   l.League,
			Title:    l.Title,
			Fixtures: byLeague[l.League],
		})
	}
	return hub, nil
}
