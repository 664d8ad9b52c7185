// file: controllers/test_helpers_test.go
package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"fanconnect/middleware"
	"fanconnect/models"
	"fanconnect/store"
)

const testSessionName = "testsession"

// stubUsers resolves session user ids for ResolveUser.
type stubUsers map[string]*models.User

func (s stubUsers) GetUser(_ context.Context, id string) (*models.User, error) {
	if u, ok := s[id]; ok {
		return u, nil
	}
	return nil, store.ErrNotFound
}

var testAdmin = &models.User{ID: "admin-1", Username: "admin", Email: "admin@example.com"}

// setupTestRouter creates a new Gin engine with session middleware, user
// resolution and fake HTML templates.
func setupTestRouter(t *testing.T, users middleware.UserLoader) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	// Set up sessions with cookie store.
	sessionStore := cookie.NewStore([]byte("test-secret"))
	sessionStore.Options(SessionOptions(false))
	router.Use(sessions.Sessions(testSessionName, sessionStore))
	router.Use(middleware.ResolveUser(users))

	// Create minimal templates to avoid panics during testing.
	tmpDir := t.TempDir()
	if err := createDummyTemplates(tmpDir); err != nil {
		t.Fatalf("Failed to create dummy templates: %v", err)
	}

	router.SetFuncMap(TemplateFuncs)
	router.LoadHTMLGlob(filepath.Join(tmpDir, "*.html"))
	return router
}

// createDummyTemplates writes a set of minimal HTML templates to the provided directory.
func createDummyTemplates(dir string) error {
	user := `{{with .User}}[{{.Username}}]{{end}}`
	templates := map[string]string{
		"home.html":              `home ` + user,
		"login.html":             `login`,
		"register.html":          `register`,
		"profile.html":           `profile {{.User.Username}} {{.User.Email}}`,
		"not_found.html":         `not found{{.Error}}`,
		"matchday.html":          `matchday {{with .Hub}}{{range .Hot}}hot:{{matchPath .}} {{end}}{{range .Sections}}{{.Title}}:{{len .Fixtures}} {{end}}{{end}}{{.Error}}`,
		"match.html":             `match {{.Game.HomeTeam}} vs {{.Game.AwayTeam}} {{.ShareURL}} {{range .Game.HomePlayers}}{{.Name}},{{end}}`,
		"admin.html":             `admin ` + user,
		"admin_games.html":       `games {{range .Games}}{{.League}}/{{.HomeTeam}};{{end}}{{.Error}}`,
		"admin_game_create.html": `create game {{range .Teams}}{{.Name}};{{end}}{{.Error}}`,
		"admin_teams.html":       `teams {{with .Directory}}{{range .Leagues}}{{.}};{{end}}{{end}}{{.Error}}`,
		"admin_team_create.html": `create team`,
	}

	for name, content := range templates {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}

// SetSession sets the given key/value pairs in the session using a helper route
// and returns the session cookie that can be attached to subsequent test requests.
func SetSession(router *gin.Engine, route string, data map[string]interface{}) *http.Cookie {
	router.GET(route, func(c *gin.Context) {
		session := sessions.Default(c)
		for key, value := range data {
			session.Set(key, value)
		}
		if err := session.Save(); err != nil {
			c.String(http.StatusInternalServerError, "session save failed")
			return
		}
		c.String(http.StatusOK, "session set")
	})

	req, _ := http.NewRequest("GET", route, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return findCookie(w)
}

// loginAs returns a session cookie for user.
func loginAs(router *gin.Engine, user *models.User) *http.Cookie {
	return SetSession(router, "/test/session/"+user.ID, map[string]interface{}{
		middleware.SessionUserID:   user.ID,
		middleware.SessionEmail:    user.Email,
		middleware.SessionIssuedAt: time.Now().Unix(),
	})
}

func findCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == testSessionName {
			return c
		}
	}
	return nil
}

// perform sends a request with an optional JSON body and session cookie.
func perform(router *gin.Engine, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
