// File: services/team_service.go
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

// unknownLeague groups teams saved without a league.
const unknownLeague = "Unknown"

// CreateTeamRequest is the admin form for a new team.
type CreateTeamRequest struct {
	Name    string          `json:"name"`
	League  string          `json:"league"`
	Players []models.Player `json:"players"`
}

// TeamDirectory is the admin team list: teams grouped by league, each group
// sorted by name, with the league keys sorted for rendering.
type TeamDirectory struct {
	Leagues []string                 `json:"leagues"`
	Grouped map[string][]models.Team `json:"grouped"`
}

// TeamServiceInterface covers team and roster administration.
type TeamServiceInterface interface {
	CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	ListTeamsByLeague(ctx context.Context) (*TeamDirectory, error)
	GetTeam(ctx context.Context, id string) (*models.Team, error)
	AddPlayer(ctx context.Context, teamID string, player models.Player) (*models.Team, error)
	RenamePlayer(ctx context.Context, teamID, oldName, newName string) (*models.Team, error)
	RemovePlayer(ctx context.Context, teamID, name string) (*models.Team, error)
}

// TeamService manages teams. Writes are last-writer-wins.
type TeamService struct {
	teams store.TeamRepository
}

var _ TeamServiceInterface = (*TeamService)(nil)

// NewTeamService creates a TeamService.
func NewTeamService(teams store.TeamRepository) *TeamService {
	return &TeamService{teams: teams}
}

// CreateTeam stores a new team unless one with the same name already
// exists in that league.
func (s *TeamService) CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error) {
	if blank(req.Name) || blank(req.League) {
		return nil, ErrInvalidTeam
	}
	for _, p := range req.Players {
		if blank(p.Name) || blank(p.Position) {
			logger.Warn.Printf("[TeamService.CreateTeam] player without name or position in %s", req.Name)
			return nil, ErrInvalidPlayer
		}
	}

	_, err := s.teams.FindTeam(ctx, req.Name, req.League)
	switch {
	case err == nil:
		logger.Warn.Printf("[TeamService.CreateTeam] %s already exists in %s", req.Name, req.League)
		return nil, ErrDuplicateTeam
	case !errors.Is(err, store.ErrNotFound):
		logger.Error.Printf("[TeamService.CreateTeam] lookup %s/%s: %v", req.Name, req.League, err)
		return nil, fmt.Errorf("find team: %w", err)
	}

	team := &models.Team{Name: req.Name, League: req.League, Players: req.Players}
	if err := s.teams.CreateTeam(ctx, team); err != nil {
		logger.Error.Printf("[TeamService.CreateTeam] %v", err)
		return nil, fmt.Errorf("create team: %w", err)
	}

	logger.Info.Printf("[TeamService.CreateTeam] created %s (%s) with %d players", team.Name, team.League, len(team.Players))
	return team, nil
}

// ListTeams returns every team ordered by league then name.
func (s *TeamService) ListTeams(ctx context.Context) ([]models.Team, error) {
	teams, err := s.teams.ListTeams(ctx)
	if err != nil {
		logger.Error.Printf("[TeamService.ListTeams] %v", err)
		return nil, fmt.Errorf("list teams: %w", err)
	}
	sort.SliceStable(teams, func(i, j int) bool {
		if teams[i].League != teams[j].League {
			return teams[i].League < teams[j].League
		}
		return teams[i].Name < teams[j].Name
	})
	return teams, nil
}

// ListTeamsByLeague groups teams by league with each group sorted by name.
func (s *TeamService) ListTeamsByLeague(ctx context.Context) (*TeamDirectory, error) {
	teams, err := s.teams.ListTeams(ctx)
	if err != nil {
		logger.Error.Printf("[TeamService.ListTeamsByLeague] %v", err)
		return nil, fmt.Errorf("list teams: %w", err)
	}

	dir := &TeamDirectory{Leagues: []string{}, Grouped: make(map[string][]models.Team)}
	for _, t := range teams {
		league := t.League
		if league == "" {
			league = unknownLeague
		}
		if _, ok := dir.Grouped[league]; !ok {
			dir.Leagues = append(dir.Leagues, league)
		}
		dir.Grouped[league] = append(dir.Grouped[league], t)
	}

	sort.Slice(dir.Leagues, func(i, j int) bool { return lessFold(dir.Leagues[i], dir.Leagues[j]) })
	for _, group := range dir.Grouped {
		sort.SliceStable(group, func(i, j int) bool { return lessFold(group[i].Name, group[j].Name) })
	}
	return dir, nil
}

// lessFold compares case-insensitively, falling back to byte order.
func lessFold(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}

// GetTeam returns one team with its roster.
func (s *TeamService) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	team, err := s.teams.GetTeam(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrTeamNotFound
	}
	if err != nil {
		logger.Error.Printf("[TeamService.GetTeam] %s: %v", id, err)
		return nil, fmt.Errorf("get team: %w", err)
	}
	return team, nil
}

// AddPlayer appends a player unless the name is already on the roster,
// ignoring case.
func (s *TeamService) AddPlayer(ctx context.Context, teamID string, player models.Player) (*models.Team, error) {
	if blank(player.Name) || blank(player.Position) {
		return nil, ErrInvalidPlayer
	}
	team, err := s.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	lower := strings.ToLower(player.Name)
	for _, p := range team.Players {
		if strings.ToLower(p.Name) == lower {
			logger.Warn.Printf("[TeamService.AddPlayer] %s already on %s", player.Name, team.Name)
			return nil, ErrDuplicatePlayer
		}
	}

	team.Players = append(team.Players, player)
	if err := s.save(ctx, "AddPlayer", team); err != nil {
		return nil, err
	}
	logger.Info.Printf("[TeamService.AddPlayer] added %s (%s) to %s", player.Name, player.Position, team.Name)
	return team, nil
}

// RenamePlayer renames the first player whose name matches oldName exactly.
func (s *TeamService) RenamePlayer(ctx context.Context, teamID, oldName, newName string) (*models.Team, error) {
	if blank(oldName) || blank(newName) {
		return nil, ErrInvalidPlayer
	}
	team, err := s.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, p := range team.Players {
		if p.Name == oldName {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrPlayerNotFound
	}

	team.Players[idx].Name = newName
	if err := s.save(ctx, "RenamePlayer", team); err != nil {
		return nil, err
	}
	logger.Info.Printf("[TeamService.RenamePlayer] %s renamed to %s on %s", oldName, newName, team.Name)
	return team, nil
}

// RemovePlayer drops every player named exactly name. Removing a name that
// is not on the roster succeeds without changes.
func (s *TeamService) RemovePlayer(ctx context.Context, teamID, name string) (*models.Team, error) {
	if blank(name) {
		return nil, ErrInvalidPlayer
	}
	team, err := s.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	kept := make([]models.Player, 0, len(team.Players))
	for _, p := range team.Players {
		if p.Name != name {
			kept = append(kept, p)
		}
	}
	removed := len(team.Players) - len(kept)
	team.Players = kept

	if err := s.save(ctx, "RemovePlayer", team); err != nil {
		return nil, err
	}
	logger.Info.Printf("[TeamService.RemovePlayer] removed %d player(s) named %s from %s", removed, name, team.Name)
	return team, nil
}

func (s *TeamService) save(ctx context.Context, op string, team *models.Team) error {
	err := s.teams.SaveTeam(ctx, team)
	if errors.Is(err, store.ErrNotFound) {
		return ErrTeamNotFound
	}
	if err != nil {
		logger.Error.Printf("[TeamService.%s] saving %s: %v", op, team.ID, err)
		return fmt.Errorf("save team: %w", err)
	}
	return nil
}
