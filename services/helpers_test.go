// file: services/helpers_test.go
package services

import (
	"context"
	"errors"

	"fanconnect/models"
	"fanconnect/store"
)

var errStorageDown = errors.New("connection refused")

// brokenStore fails every write and listing; reads by id still work.
type brokenStore struct {
	*store.MemoryStore
}

func newBrokenStore() *brokenStore {
	return &brokenStore{MemoryStore: store.NewMemoryStore()}
}

func (b *brokenStore) CreateRating(context.Context, *models.MatchdayRating) error {
	return errStorageDown
}

func (b *brokenStore) ListGames(context.Context) ([]models.Game, error) {
	return nil, errStorageDown
}

func (b *brokenStore) FindTeam(context.Context, string, string) (*models.Team, error) {
	return nil, errStorageDown
}

func (b *brokenStore) FindUserByEmail(context.Context, string) (*models.User, error) {
	return nil, errStorageDown
}

// racingStore hides existing emails from the first lookup, as if another
// registration committed between the lookup and the insert.
type racingStore struct {
	*store.MemoryStore
	lookups int
}

func (r *racingStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	r.lookups++
	if r.lookups == 1 {
		return nil, store.ErrNotFound
	}
	return r.MemoryStore.FindUserByEmail(ctx, email)
}

func seedGame(s store.GameRepository, league, home, away, date, kickoff string) models.Game {
	g := &models.Game{League: league, HomeTeam: home, AwayTeam: away, GameDate: date, GameTime: kickoff}
	if err := s.CreateGame(context.Background(), g); err != nil {
		panic(err)
	}
	return *g
}
