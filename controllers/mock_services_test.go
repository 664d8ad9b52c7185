// file: controllers/mock_services_test.go
package controllers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fanconnect/models"
	"fanconnect/services"
)

// MockMatchdayService implements services.MatchdayServiceInterface for testing.
type MockMatchdayService struct {
	mock.Mock
}

func (m *MockMatchdayService) SubmitRating(ctx context.Context, req services.SubmitRatingRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// MockGameService implements services.GameServiceInterface for testing.
type MockGameService struct {
	mock.Mock
}

func (m *MockGameService) CreateGame(ctx context.Context, req services.CreateGameRequest) (*models.Game, error) {
	args := m.Called(ctx, req)
	game, _ := args.Get(0).(*models.Game)
	return game, args.Error(1)
}

func (m *MockGameService) ListGames(ctx context.Context) ([]models.Game, error) {
	args := m.Called(ctx)
	games, _ := args.Get(0).([]models.Game)
	return games, args.Error(1)
}

func (m *MockGameService) GetGame(ctx context.Context, id string) (*models.Game, error) {
	args := m.Called(ctx, id)
	game, _ := args.Get(0).(*models.Game)
	return game, args.Error(1)
}

func (m *MockGameService) UpdateGame(ctx context.Context, id string, req services.UpdateGameRequest) (*models.Game, error) {
	args := m.Called(ctx, id, req)
	game, _ := args.Get(0).(*models.Game)
	return game, args.Error(1)
}

func (m *MockGameService) ListFixtures(ctx context.Context) ([]models.Fixture, error) {
	args := m.Called(ctx)
	fixtures, _ := args.Get(0).([]models.Fixture)
	return fixtures, args.Error(1)
}

func (m *MockGameService) MatchdayHub(ctx context.Context) (*services.MatchdayHub, error) {
	args := m.Called(ctx)
	hub, _ := args.Get(0).(*services.MatchdayHub)
	return hub, args.Error(1)
}

// MockTeamService implements services.TeamServiceInterface for testing.
type MockTeamService struct {
	mock.Mock
}

func (m *MockTeamService) CreateTeam(ctx context.Context, req services.CreateTeamRequest) (*models.Team, error) {
	args := m.Called(ctx, req)
	team, _ := args.Get(0).(*models.Team)
	return team, args.Error(1)
}

func (m *MockTeamService) ListTeams(ctx context.Context) ([]models.Team, error) {
	args := m.Called(ctx)
	teams, _ := args.Get(0).([]models.Team)
	return teams, args.Error(1)
}

func (m *MockTeamService) ListTeamsByLeague(ctx context.Context) (*services.TeamDirectory, error) {
	args := m.Called(ctx)
	dir, _ := args.Get(0).(*services.TeamDirectory)
	return dir, args.Error(1)
}

func (m *MockTeamService) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	args := m.Called(ctx, id)
	team, _ := args.Get(0).(*models.Team)
	return team, args.Error(1)
}

func (m *MockTeamService) AddPlayer(ctx context.Context, teamID string, player models.Player) (*models.Team, error) {
	args := m.Called(ctx, teamID, player)
	team, _ := args.Get(0).(*models.Team)
	return team, args.Error(1)
}

func (m *MockTeamService) RenamePlayer(ctx context.Context, teamID, oldName, newName string) (*models.Team, error) {
	args := m.Called(ctx, teamID, oldName, newName)
	team, _ := args.Get(0).(*models.Team)
	return team, args.Error(1)
}

func (m *MockTeamService) RemovePlayer(ctx context.Context, teamID, name string) (*models.Team, error) {
	args := m.Called(ctx, teamID, name)
	team, _ := args.Get(0).(*models.Team)
	return team, args.Error(1)
}

var (
	_ services.MatchdayServiceInterface = (*MockMatchdayService)(nil)
	_ services.GameServiceInterface     = (*MockGameService)(nil)
	_ services.TeamServiceInterface     = (*MockTeamService)(nil)
)
