// Package controllers provides HTTP handlers for the admin console API.
// File: controllers/admin_controller.go
package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fanconnect/logger"
	"fanconnect/models"
	"fanconnect/services"
)

// ---------------- Admin Controller ----------------

// AdminController provides admin operations for managing games and teams.
type AdminController struct {
	Games services.GameServiceInterface
	Teams services.TeamServiceInterface
}

// NewAdminController initializes a new instance of AdminController
func NewAdminController(games services.GameServiceInterface, teams services.TeamServiceInterface) *AdminController {
	return &AdminController{Games: games, Teams: teams}
}

// ---------------- game management ----------------

// ListGames handles GET /games, ordered by league priority.
func (ac *AdminController) ListGames(c *gin.Context) {
	games, err := ac.Games.ListGames(c.Request.Context())
	if err != nil {
		fail(c, "AdminController.ListGames", err, "Failed to fetch games")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "games": games})
}

// CreateGame handles POST /games.
func (ac *AdminController) CreateGame(c *gin.Context) {
	var req services.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "AdminController.CreateGame", services.ErrInvalidGame, "")
		return
	}

	game, err := ac.Games.CreateGame(c.Request.Context(), req)
	if err != nil {
		fail(c, "AdminController.CreateGame", err, "Server error")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "game": game})
}

// UpdateGame handles PUT /games/:id.
func (ac *AdminController) UpdateGame(c *gin.Context) {
	var req services.UpdateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "AdminController.UpdateGame", services.ErrInvalidGame, "")
		return
	}

	game, err := ac.Games.UpdateGame(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		fail(c, "AdminController.UpdateGame", err, "Failed to update game")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "game": game})
}

// ---------------- team management ----------------

// ListTeams handles GET /teams: the flat list plus the league grouping.
func (ac *AdminController) ListTeams(c *gin.Context) {
	ctx := c.Request.Context()
	teams, err := ac.Teams.ListTeams(ctx)
	if err != nil {
		fail(c, "AdminController.ListTeams", err, "Failed to fetch teams")
		return
	}
	dir, err := ac.Teams.ListTeamsByLeague(ctx)
	if err != nil {
		fail(c, "AdminController.ListTeams", err, "Failed to fetch teams")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "teams": teams, "leagues": dir.Leagues, "grouped": dir.Grouped})
}

// CreateTeam handles POST /teams.
func (ac *AdminController) CreateTeam(c *gin.Context) {
	var req services.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "AdminController.CreateTeam", services.ErrInvalidTeam, "")
		return
	}

	team, err := ac.Teams.CreateTeam(c.Request.Context(), req)
	if err != nil {
		fail(c, "AdminController.CreateTeam", err, "Something went wrong")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "team": team})
}

// ---------------- roster management ----------------

type renamePlayerRequest struct {
	OldPlayerName string `json:"oldPlayerName"`
	NewPlayerName string `json:"newPlayerName"`
}

// AddPlayer handles POST /teams/:id/players with body {name, position}.
func (ac *AdminController) AddPlayer(c *gin.Context) {
	var player models.Player
	if err := c.ShouldBindJSON(&player); err != nil {
		fail(c, "AdminController.AddPlayer", services.ErrInvalidPlayer, "")
		return
	}

	team, err := ac.Teams.AddPlayer(c.Request.Context(), c.Param("id"), player)
	if err != nil {
		fail(c, "AdminController.AddPlayer", err, "Update failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Player added", "team": team})
}

// RenamePlayer handles PUT /teams/:id/players with body
// {oldPlayerName, newPlayerName}.
func (ac *AdminController) RenamePlayer(c *gin.Context) {
	var req renamePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "AdminController.RenamePlayer", services.ErrInvalidPlayer, "")
		return
	}

	team, err := ac.Teams.RenamePlayer(c.Request.Context(), c.Param("id"), req.OldPlayerName, req.NewPlayerName)
	if err != nil {
		fail(c, "AdminController.RenamePlayer", err, "Update failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Player updated", "team": team})
}

// RemovePlayer handles DELETE /teams/:id/players/*name. The name is the
// rest of the path so it may contain slashes.
func (ac *AdminController) RemovePlayer(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("name"), "/")
	team, err := ac.Teams.RemovePlayer(c.Request.Context(), c.Param("id"), name)
	if err != nil {
		fail(c, "AdminController.RemovePlayer", err, "Update failed")
		return
	}
	logger.Debug.Printf("[AdminController.RemovePlayer] %s now has %d players", team.Name, len(team.Players))
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Player removed", "team": team})
}
