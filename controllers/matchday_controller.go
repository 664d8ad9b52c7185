// File: controllers/matchday_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fanconnect/logger"
	"fanconnect/services"
)

// qrSize is the edge length of the share QR code in pixels.
const qrSize = 300

// MatchdayController serves the public fan endpoints.
type MatchdayController struct {
	Matchday       services.MatchdayServiceInterface
	Games          services.GameServiceInterface
	ApplicationURL string
	Encode         services.QRCodeEncoder
}

// NewMatchdayController creates a MatchdayController.
func NewMatchdayController(matchday services.MatchdayServiceInterface, games services.GameServiceInterface, appURL string, encode services.QRCodeEncoder) *MatchdayController {
	return &MatchdayController{Matchday: matchday, Games: games, ApplicationURL: appURL, Encode: encode}
}

// SubmitRating handles POST /submissions.
func (mc *MatchdayController) SubmitRating(c *gin.Context) {
	var req services.SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn.Printf("[MatchdayController.SubmitRating] bad body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": services.ErrInvalidSubmission.Msg})
		return
	}

	if err := mc.Matchday.SubmitRating(c.Request.Context(), req); err != nil {
		fail(c, "MatchdayController.SubmitRating", err, "Failed to save ratings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListFixtures handles GET /fixtures, the public hub feed.
func (mc *MatchdayController) ListFixtures(c *gin.Context) {
	fixtures, err := mc.Games.ListFixtures(c.Request.Context())
	if err != nil {
		fail(c, "MatchdayController.ListFixtures", err, "Failed to fetch matchday games.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "games": fixtures})
}

// GetGame handles GET /games/:id.
func (mc *MatchdayController) GetGame(c *gin.Context) {
	game, err := mc.Games.GetGame(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, "MatchdayController.GetGame", err, "Server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "game": game})
}

// GetQRCode handles GET /games/:id/qrcode: a PNG linking to the match page.
func (mc *MatchdayController) GetQRCode(c *gin.Context) {
	game, err := mc.Games.GetGame(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, "MatchdayController.GetQRCode", err, "Server error")
		return
	}

	png, err := services.GenerateQRCode(services.MatchURL(mc.ApplicationURL, *game), qrSize, mc.Encode)
	if err != nil {
		logger.Error.Printf("[MatchdayController.GetQRCode] %s: %v", game.ID, err)
		c.String(http.StatusInternalServerError, "QR generation failed")
		return
	}

	c.Header("Content-Disposition", `inline; filename="match-qrcode.png"`)
	c.Data(http.StatusOK, "image/png", png)
}
