// File: controllers/routes.go
package controllers

import (
	"github.com/gin-gonic/gin"

	"fanconnect/middleware"
)

// RouterConfig holds the handlers mounted by RegisterRoutes.
type RouterConfig struct {
	Matchday *MatchdayController
	Admin    *AdminController
	Auth     *AuthController
	Pages    *PageController
}

// RegisterRoutes mounts the JSON API and the pages. Session and user
// resolution middleware must already be installed on r.
func RegisterRoutes(r *gin.Engine, h *RouterConfig) {
	r.GET("/health", Health)

	// Public API
	r.POST("/submissions", h.Matchday.SubmitRating)
	r.GET("/fixtures", h.Matchday.ListFixtures)
	r.GET("/games/:id", h.Matchday.GetGame)
	r.GET("/games/:id/qrcode", h.Matchday.GetQRCode)

	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)
	}

	// Admin API
	api := r.Group("/", middleware.APIAuthRequired)
	{
		api.GET("/games", h.Admin.ListGames)
		api.POST("/games", h.Admin.CreateGame)
		api.PUT("/games/:id", h.Admin.UpdateGame)

		api.GET("/teams", h.Admin.ListTeams)
		api.POST("/teams", h.Admin.CreateTeam)
		api.POST("/teams/:id/players", h.Admin.AddPlayer)
		api.PUT("/teams/:id/players", h.Admin.RenamePlayer)
		api.DELETE("/teams/:id/players/*name", h.Admin.RemovePlayer)
	}

	// Public pages
	r.GET("/", h.Pages.Home)
	r.GET("/matchday", h.Pages.Matchday)
	r.GET("/matchday/:slug", h.Pages.Match)
	r.GET("/login", h.Pages.ShowLoginPage)
	r.GET("/register", h.Pages.ShowRegisterPage)
	r.GET("/logout", h.Pages.Logout)

	// Signed-in pages
	r.GET("/profile", middleware.AuthRequired, h.Pages.Profile)
	admin := r.Group("/admin", middleware.AuthRequired)
	{
		admin.GET("", h.Pages.Admin)
		admin.GET("/games", h.Pages.AdminGames)
		admin.GET("/games/create", h.Pages.AdminGameCreate)
		admin.GET("/teams", h.Pages.AdminTeams)
		admin.GET("/teams/create", h.Pages.AdminTeamCreate)
	}
}
