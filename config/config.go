// Package config reads runtime settings from the environment.
// File: config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const devSessionSecret = "fanconnect-dev-secret"

// DefaultLeaguePriority is the admin game-list ordering used when
// LEAGUE_PRIORITY is unset.
var DefaultLeaguePriority = []string{"EPL", "La Liga", "UCL"}

// Config holds every setting main needs to wire the application.
type Config struct {
	Port           string
	ApplicationURL string
	Environment    string

	DatabaseURL string

	SessionName   string
	SessionSecret string
	SecureCookies bool

	LeaguePriority []string
	BcryptCost     int

	LogDir         string
	MetricsEnabled bool
	XRayEnabled    bool
	AWSRegion      string
}

// IsProduction reports whether APP_ENV is "production".
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, applying defaults.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Port:           get("PORT", "8080"),
		ApplicationURL: strings.TrimRight(get("APPLICATION_URL", "http://localhost:8080"), "/"),
		Environment:    get("APP_ENV", "development"),
		DatabaseURL:    get("DATABASE_URL", ""),
		SessionName:    get("SESSION_NAME", "fanconnect"),
		SessionSecret:  get("SESSION_SECRET", ""),
		LogDir:         get("LOG_DIR", ""),
		AWSRegion:      get("AWS_REGION", "ap-southeast-2"),
		LeaguePriority: splitList(get("LEAGUE_PRIORITY", "")),
	}
	if len(cfg.LeaguePriority) == 0 {
		cfg.LeaguePriority = append([]string(nil), DefaultLeaguePriority...)
	}

	if cfg.SessionSecret == "" {
		if cfg.IsProduction() {
			return nil, errors.New("SESSION_SECRET is required in production")
		}
		cfg.SessionSecret = devSessionSecret
	}

	var err error
	if cfg.SecureCookies, err = parseBool(get("SECURE_COOKIES", strconv.FormatBool(cfg.IsProduction()))); err != nil {
		return nil, fmt.Errorf("SECURE_COOKIES: %w", err)
	}
	if cfg.MetricsEnabled, err = parseBool(get("METRICS_ENABLED", "false")); err != nil {
		return nil, fmt.Errorf("METRICS_ENABLED: %w", err)
	}
	if cfg.XRayEnabled, err = parseBool(get("XRAY_ENABLED", "false")); err != nil {
		return nil, fmt.Errorf("XRAY_ENABLED: %w", err)
	}
	if cfg.BcryptCost, err = strconv.Atoi(get("BCRYPT_COST", "10")); err != nil {
		return nil, fmt.Errorf("BCRYPT_COST: %w", err)
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return nil, fmt.Errorf("BCRYPT_COST: %d out of range 4-31", cfg.BcryptCost)
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("PORT: %w", err)
	}

	return cfg, nil
}

func parseBool(v string) (bool, error) {
	return strconv.ParseBool(strings.ToLower(v))
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
