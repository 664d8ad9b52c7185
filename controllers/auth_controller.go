// Package controllers controllers/auth_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"fanconnect/logger"
	"fanconnect/middleware"
	"fanconnect/services"
)

// SessionOptions are the cookie settings for signed-in sessions.
func SessionOptions(secure bool) sessions.Options {
	return sessions.Options{
		Path:     "/",
		MaxAge:   int(middleware.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// AuthController issues and clears cookie sessions.
type AuthController struct {
	Auth          services.AuthServiceInterface
	SecureCookies bool
}

// NewAuthController creates an AuthController. secureCookies must match the
// session store's options so the logout cookie replaces the login cookie.
func NewAuthController(auth services.AuthServiceInterface, secureCookies bool) *AuthController {
	return &AuthController{Auth: auth, SecureCookies: secureCookies}
}

// Register handles POST /auth/register.
func (ac *AuthController) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failAuth(c, "AuthController.Register", services.ErrInvalidRegistration, "")
		return
	}

	if _, err := ac.Auth.Register(c.Request.Context(), req); err != nil {
		failAuth(c, "AuthController.Register", err, "Internal Server Error")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully."})
}

// Login handles POST /auth/login. The session cookie is only written on
// success.
func (ac *AuthController) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failAuth(c, "AuthController.Login", services.ErrInvalidLogin, "")
		return
	}

	user, err := ac.Auth.Login(c.Request.Context(), req)
	if err != nil {
		failAuth(c, "AuthController.Login", err, "Something went wrong")
		return
	}

	session := sessions.Default(c)
	middleware.StartSession(session, user)
	if err := session.Save(); err != nil {
		logger.Error.Printf("[AuthController.Login] saving session for %s: %v", user.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful"})
}

// Logout handles POST /auth/logout.
func (ac *AuthController) Logout(c *gin.Context) {
	if err := clearSession(c, ac.SecureCookies); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// clearSession empties the session and expires its cookie with the same
// attributes it was issued with.
func clearSession(c *gin.Context, secure bool) error {
	session := sessions.Default(c)
	email := session.Get(middleware.SessionEmail)
	session.Clear()
	opts := SessionOptions(secure)
	opts.MaxAge = -1
	session.Options(opts)
	if err := session.Save(); err != nil {
		logger.Error.Printf("[clearSession] Error saving session during logout: %v", err)
		return err
	}
	logger.Info.Printf("[clearSession] session cleared for %v", email)
	return nil
}
