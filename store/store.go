// Package store persists users, teams, games and matchday ratings.
// File: store/store.go
package store

import (
	"context"
	"errors"

	"fanconnect/logger"
	"fanconnect/models"
)

var (
	// ErrNotFound is returned when a lookup by id or key misses.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique field is already taken.
	ErrDuplicate = errors.New("duplicate record")
	// ErrInvalid is returned when a record fails field validation.
	ErrInvalid = errors.New("invalid record")
)

// UserRepository stores registered fans.
type UserRepository interface {
	CreateUser(ctx context.Context, u *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// TeamRepository stores teams and their rosters.
type TeamRepository interface {
	CreateTeam(ctx context.Context, t *models.Team) error
	FindTeam(ctx context.Context, name, league string) (*models.Team, error)
	GetTeam(ctx context.Context, id string) (*models.Team, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	SaveTeam(ctx context.Context, t *models.Team) error
}

// GameRepository stores fixtures.
type GameRepository interface {
	CreateGame(ctx context.Context, g *models.Game) error
	GetGame(ctx context.Context, id string) (*models.Game, error)
	ListGames(ctx context.Context) ([]models.Game, error)
	SaveGame(ctx context.Context, g *models.Game) error
}

// RatingRepository appends matchday submissions.
type RatingRepository interface {
	CreateRating(ctx context.Context, r *models.MatchdayRating) error
}

// Store is the full persistence layer handed to the services.
type Store interface {
	UserRepository
	TeamRepository
	GameRepository
	RatingRepository
	Close() error
}

// Open returns an in-memory store for an empty DSN and a postgres-backed
// store otherwise.
func Open(dsn string) (Store, error) {
	if dsn == "" {
		logger.Warn.Println("[store.Open] DATABASE_URL not set, using in-memory store")
		return NewMemoryStore(), nil
	}
	return OpenGorm(dsn)
}
