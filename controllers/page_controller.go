// Package controllers file: controllers/page_controller.go
package controllers

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"fanconnect/logger"
	"fanconnect/middleware"
	"fanconnect/models"
	"fanconnect/services"
)

// TemplateFuncs are the helpers available to every page template.
var TemplateFuncs = template.FuncMap{
	"slug": services.Slugify,
	"matchPath": func(f models.Fixture) string {
		return services.MatchPath(models.Game{ID: f.ID, HomeTeam: f.HomeTeam, AwayTeam: f.AwayTeam})
	},
}

// PageController renders the server-side pages.
type PageController struct {
	Games          services.GameServiceInterface
	Teams          services.TeamServiceInterface
	ApplicationURL string
	SecureCookies  bool
}

// NewPageController creates a PageController.
func NewPageController(games services.GameServiceInterface, teams services.TeamServiceInterface, appURL string, secureCookies bool) *PageController {
	return &PageController{Games: games, Teams: teams, ApplicationURL: appURL, SecureCookies: secureCookies}
}

// Health reports liveness for the load balancer.
func Health(c *gin.Context) {
	logger.Debug.Println("Health: Health check requested")
	c.String(http.StatusOK, "OK")
}

// page adds the signed-in user to the template data.
func page(c *gin.Context, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	if user, ok := middleware.CurrentUser(c); ok {
		data["User"] = user
	}
	return data
}

// ------------------------- public pages -------------------------

// Home renders the landing page.
func (pc *PageController) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", page(c, nil))
}

// Matchday renders the hub: hot fixtures first, then the featured leagues.
func (pc *PageController) Matchday(c *gin.Context) {
	hub, err := pc.Games.MatchdayHub(c.Request.Context())
	if err != nil {
		logger.Error.Printf("[PageController.Matchday] %v", err)
		c.HTML(http.StatusInternalServerError, "matchday.html", page(c, gin.H{"Error": "Failed to fetch matchday games."}))
		return
	}
	c.HTML(http.StatusOK, "matchday.html", page(c, gin.H{"Hub": hub}))
}

// Match renders the rating and vote form for /matchday/:slug?game=<id>.
// The slug is cosmetic; the game query parameter selects the fixture.
func (pc *PageController) Match(c *gin.Context) {
	id := c.Query("game")
	if id == "" {
		c.HTML(http.StatusNotFound, "not_found.html", page(c, nil))
		return
	}

	game, err := pc.Games.GetGame(c.Request.Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		c.HTML(http.StatusNotFound, "not_found.html", page(c, nil))
		return
	}
	if err != nil {
		logger.Error.Printf("[PageController.Match] %s: %v", id, err)
		c.HTML(http.StatusInternalServerError, "not_found.html", page(c, gin.H{"Error": "Server error"}))
		return
	}

	c.HTML(http.StatusOK, "match.html", page(c, gin.H{
		"Game":     game,
		"Slug":     c.Param("slug"),
		"ShareURL": services.MatchURL(pc.ApplicationURL, *game),
	}))
}

// ShowLoginPage renders the sign-in form, or sends signed-in users to
// their profile.
func (pc *PageController) ShowLoginPage(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/profile")
		return
	}
	c.HTML(http.StatusOK, "login.html", page(c, nil))
}

// ShowRegisterPage renders the sign-up form.
func (pc *PageController) ShowRegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", page(c, nil))
}

// Logout clears the session and redirects home.
func (pc *PageController) Logout(c *gin.Context) {
	_ = clearSession(c, pc.SecureCookies)
	c.Redirect(http.StatusFound, "/")
}

// ------------------------- signed-in pages -------------------------

// Profile shows the signed-in account.
func (pc *PageController) Profile(c *gin.Context) {
	c.HTML(http.StatusOK, "profile.html", page(c, nil))
}

// Admin renders the console landing page.
func (pc *PageController) Admin(c *gin.Context) {
	c.HTML(http.StatusOK, "admin.html", page(c, nil))
}

// AdminGames lists every game for editing.
func (pc *PageController) AdminGames(c *gin.Context) {
	games, err := pc.Games.ListGames(c.Request.Context())
	if err != nil {
		logger.Error.Printf("[PageController.AdminGames] %v", err)
		c.HTML(http.StatusInternalServerError, "admin_games.html", page(c, gin.H{"Error": "Failed to fetch games"}))
		return
	}
	c.HTML(http.StatusOK, "admin_games.html", page(c, gin.H{
		"Games":    games,
		"Statuses": []models.GameStatus{models.StatusUpcoming, models.StatusLive, models.StatusFinished},
	}))
}

// AdminGameCreate renders the new-game form with every team's roster so
// players can be picked.
func (pc *PageController) AdminGameCreate(c *gin.Context) {
	teams, err := pc.Teams.ListTeams(c.Request.Context())
	if err != nil {
		logger.Error.Printf("[PageController.AdminGameCreate] %v", err)
		c.HTML(http.StatusInternalServerError, "admin_game_create.html", page(c, gin.H{"Error": "Failed to fetch teams"}))
		return
	}
	c.HTML(http.StatusOK, "admin_game_create.html", page(c, gin.H{"Teams": teams}))
}

// AdminTeams lists teams grouped by league.
func (pc *PageController) AdminTeams(c *gin.Context) {
	dir, err := pc.Teams.ListTeamsByLeague(c.Request.Context())
	if err != nil {
		logger.Error.Printf("[PageController.AdminTeams] %v", err)
		c.HTML(http.StatusInternalServerError, "admin_teams.html", page(c, gin.H{"Error": "Failed to fetch teams"}))
		return
	}
	c.HTML(http.StatusOK, "admin_teams.html", page(c, gin.H{"Directory": dir}))
}

// AdminTeamCreate renders the new-team form.
func (pc *PageController) AdminTeamCreate(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_team_create.html", page(c, nil))
}
