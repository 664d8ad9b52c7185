// Package middleware provides request filters and security checks for the application.
// File: middleware/auth.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"fanconnect/logger"
	"fanconnect/models"
	"fanconnect/services"
	"fanconnect/store"
)

// Session keys written at login.
const (
	SessionUserID   = "userID"
	SessionEmail    = "email"
	SessionIssuedAt = "issuedAt"
)

// SessionTTL is how long a login stays valid. The cookie's MaxAge only tells
// the browser; ResolveUser enforces it against SessionIssuedAt.
const SessionTTL = 7 * 24 * time.Hour

// contextUserKey is where ResolveUser stores the signed-in user.
const contextUserKey = "user"

// UserLoader looks up the account behind a session.
type UserLoader interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// -------------- session resolution --------------

// StartSession records a fresh login for user on session. The caller saves it.
func StartSession(session sessions.Session, user *models.User) {
	session.Set(SessionUserID, user.ID)
	session.Set(SessionEmail, user.Email)
	session.Set(SessionIssuedAt, time.Now().Unix())
}

// sessionExpired reports whether the login recorded at issuedAt is older
// than SessionTTL. Sessions without a timestamp are treated as expired.
func sessionExpired(issuedAt any, now time.Time) bool {
	ts, ok := issuedAt.(int64)
	if !ok {
		return true
	}
	return now.Sub(time.Unix(ts, 0)) > SessionTTL
}

// ResolveUser loads the account named by the session's userID, if any, and
// stores it on the context. A missing, expired or unreadable session leaves
// the request anonymous. Expired sessions and sessions for deleted accounts
// are cleared; a failed lookup leaves the session alone.
func ResolveUser(users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		id, _ := session.Get(SessionUserID).(string)
		if id == "" {
			c.Next()
			return
		}

		if sessionExpired(session.Get(SessionIssuedAt), time.Now()) {
			logger.Info.Printf("[ResolveUser] session for %s has expired", id)
			dropSession(session)
			c.Next()
			return
		}

		user, err := users.GetUser(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) || errors.Is(err, store.ErrNotFound) {
				logger.Warn.Printf("[ResolveUser] dropping session for %s: %v", id, err)
				dropSession(session)
			} else {
				logger.Error.Printf("[ResolveUser] loading user %s: %v", id, err)
			}
			c.Next()
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

func dropSession(session sessions.Session) {
	session.Clear()
	if err := session.Save(); err != nil {
		logger.Error.Printf("[ResolveUser] failed to clear session: %v", err)
	}
}

// CurrentUser returns the user set by ResolveUser.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}

// -------------- authentication middleware --------------

// AuthRequired is a middleware that ensures the user is logged in.
// Anonymous page requests are redirected to /login.
//
//	admin := router.Group("/admin", AuthRequired)
func AuthRequired(c *gin.Context) {
	if _, ok := CurrentUser(c); !ok {
		logger.Warn.Printf("[AuthRequired] anonymous request to %s, redirecting to login", c.Request.URL.Path)
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}

	logger.Debug.Println("[AuthRequired] User authenticated - proceeding with request")
	c.Next()
}

// APIAuthRequired is AuthRequired for JSON endpoints: anonymous callers get 401.
func APIAuthRequired(c *gin.Context) {
	if _, ok := CurrentUser(c); !ok {
		logger.Warn.Printf("[APIAuthRequired] anonymous %s %s", c.Request.Method, c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.Next()
}
