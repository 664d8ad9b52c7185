// main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"fanconnect/config"
	"fanconnect/controllers"
	"fanconnect/logger"
	"fanconnect/metrics"
	"fanconnect/middleware"
	"fanconnect/services"
	"fanconnect/store"
)

// app bundles what setupRouter needs from main.
type app struct {
	cfg       *config.Config
	store     store.Store
	publisher metrics.Publisher
	templates string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitLogger(cfg.LogDir); err != nil {
		log.Fatalf("Failed to initialise logger: %v", err)
	}
	logger.SetLogLevel(cfg.Environment)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	st, err := store.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Error.Fatalf("[main] Failed to open store: %v", err)
	}

	var pub metrics.Publisher = metrics.NopPublisher{}
	if cfg.MetricsEnabled {
		cw, err := metrics.NewCloudWatchPublisher(cfg.AWSRegion)
		if err != nil {
			logger.Error.Fatalf("[main] Failed to create CloudWatch publisher: %v", err)
		}
		pub = cw
	}

	// Determine the absolute path to the templates directory
	_, b, _, _ := runtime.Caller(0)
	basepath := filepath.Dir(b)

	router := setupRouter(&app{
		cfg:       cfg,
		store:     st,
		publisher: pub,
		templates: filepath.Join(basepath, "templates", "*.html"),
	})
	router.Static("/static", filepath.Join(basepath, "static"))

	var handler http.Handler = router
	if cfg.XRayEnabled {
		handler = xray.Handler(xray.NewFixedSegmentNamer("fanconnect"), router)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info.Printf("[main] listening on %s (%s)", srv.Addr, cfg.ApplicationURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error.Fatalf("[main] Failed to run server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info.Println("[main] shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error.Printf("[main] graceful shutdown failed: %v", err)
	}
	if err := st.Close(); err != nil {
		logger.Error.Printf("[main] closing store: %v", err)
	}
}

// setupRouter wires services and controllers over a.store and mounts every
// route.
func setupRouter(a *app) *gin.Engine {
	cfg := a.cfg

	auth := services.NewAuthService(a.store, cfg.BcryptCost)
	games := services.NewGameService(a.store, cfg.LeaguePriority)
	teams := services.NewTeamService(a.store)
	matchday := services.NewMatchdayService(a.store)

	router := gin.Default()

	// Set X-Frame-Options header
	router.Use(middleware.FrameOptions("SAMEORIGIN"))

	// Initialize session store
	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	sessionStore.Options(controllers.SessionOptions(cfg.SecureCookies))
	router.Use(sessions.Sessions(cfg.SessionName, sessionStore))
	router.Use(middleware.ResolveUser(auth))
	router.Use(middleware.RequestMetrics(a.publisher))

	// Load HTML templates
	logger.Debug.Println("[setupRouter] Templates Path:", a.templates)
	router.SetFuncMap(controllers.TemplateFuncs)
	router.LoadHTMLGlob(a.templates)

	controllers.RegisterRoutes(router, &controllers.RouterConfig{
		Matchday: controllers.NewMatchdayController(matchday, games, cfg.ApplicationURL, qrcode.Encode),
		Admin:    controllers.NewAdminController(games, teams),
		Auth:     controllers.NewAuthController(auth, cfg.SecureCookies),
		Pages:    controllers.NewPageController(games, teams, cfg.ApplicationURL, cfg.SecureCookies),
	})
	return router
}
