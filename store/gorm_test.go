// file: store/gorm_test.go
package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"fanconnect/models"
)

// newTestGormStore runs the gorm store over a private in-memory sqlite
// database. A single connection keeps every query on the same database.
func newTestGormStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Discard,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	s, err := NewGormStore(db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestGormStore_Users(t *testing.T) {
	ctx := context.Background()
	s := newTestGormStore(t)

	u := &models.User{Username: "gooner", Email: "fan@example.com", Password: "hash"}
	require.NoError(t, s.CreateUser(ctx, u))
	_, err := uuid.Parse(u.ID)
	assert.NoError(t, err)

	found, err := s.FindUserByEmail(ctx, "fan@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)
	assert.Equal(t, "hash", found.Password)

	byID, err := s.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "gooner", byID.Username)

	_, err = s.FindUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetUser(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetUser(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormStore_DuplicateUsersAreTranslated(t *testing.T) {
	ctx := context.Background()
	s := newTestGormStore(t)

	require.NoError(t, s.CreateUser(ctx, &models.User{Username: "gooner", Email: "fan@example.com", Password: "hash"}))

	sameEmail := &models.User{Username: "other", Email: "fan@example.com", Password: "hash"}
	assert.ErrorIs(t, s.CreateUser(ctx, sameEmail), ErrDuplicate)

	sameName := &models.User{Username: "gooner", Email: "other@example.com", Password: "hash"}
	assert.ErrorIs(t, s.CreateUser(ctx, sameName), ErrDuplicate)

	err := s.CreateUser(ctx, &models.User{Email: "a@b.c"})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestGormStore_Teams(t *testing.T) {
	ctx := context.Background()
	s := newTestGormStore(t)

	team := &models.Team{Name: "Arsenal", League: "EPL", Players: []models.Player{{Name: "Saka", Position: "RW"}}}
	require.NoError(t, s.CreateTeam(ctx, team))
	require.NoError(t, s.CreateTeam(ctx, &models.Team{Name: "Barcelona", League: "La Liga"}))

	stored, err := s.GetTeam(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.Player{{Name: "Saka", Position: "RW"}}, stored.Players)

	stored.Players = append(stored.Players, models.Player{Name: "AC/DC", Position: "CM"})
	require.NoError(t, s.SaveTeam(ctx, stored))

	again, err := s.FindTeam(ctx, "Arsenal", "EPL")
	require.NoError(t, err)
	assert.Len(t, again.Players, 2)
	assert.Equal(t, "AC/DC", again.Players[1].Name)

	_, err = s.FindTeam(ctx, "Arsenal", "La Liga")
	assert.ErrorIs(t, err, ErrNotFound)

	teams, err := s.ListTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	names := []string{teams[0].Name, teams[1].Name}
	assert.ElementsMatch(t, []string{"Arsenal", "Barcelona"}, names)
	for _, tm := range teams {
		assert.NotNil(t, tm.Players)
	}
}

func TestGormStore_SaveUnknownTeam(t *testing.T) {
	ctx := context.Background()
	s := newTestGormStore(t)

	unknown := &models.Team{ID: uuid.NewString(), Name: "x", League: "y"}
	assert.ErrorIs(t, s.SaveTeam(ctx, unknown), ErrNotFound)

	malformed := &models.Team{ID: "nope", Name: "x", League: "y"}
	assert.ErrorIs(t, s.SaveTeam(ctx, malformed), ErrNotFound)

	_, err := s.GetTeam(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormStore_Games(t *testing.T) {
	ctx := context.Background()
	s := newTestGormStore(t)

	g := &models.Game{
		League: "EPL", HomeTeam: "Arsenal", AwayTeam: "Chelsea",
		HomePlayers: []models.Player{{Name: "Saka", Position: "RW"}},
		GameDate:    "2025-05-01", GameTime: "15:00",
	}
	require.NoError(t, s.CreateGame(ctx, g))
	assert.Equal(t, models.StatusUpcoming, g.Status)

	stored, err := s.GetGame(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Arsenal", stored.HomeTeam)
	assert.Equal(t, "Saka", stored.HomePlayers[0].Name)
	assert.NotNil(t, stored.AwayPlayers)
	assert.Nil(t, stored.HomeScore)

	home, away := 2, 1
	stored.Status = models.StatusFinished
	stored.HomeScore, stored.AwayScore = &home, &away
	stored.Hot = true
	require.NoError(t, s.SaveGame(ctx, stored))

	finished, err := s.GetGame(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFinished, finished.Status)
	require.NotNil(t, finished.HomeScore)
	assert.Equal(t, 2, *finished.HomeScore)
	assert.Equal(t, 1, *finished.AwayScore)
	assert.True(t, finished.Hot)

	games, err := s.ListGames(ctx)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, g.ID, games[0].ID)
}

func TestGormStore_UpcomingUpdateClearsScores(t *testing.T) {
	ctx := context.Background()
	s := newTestGormStore(t)

	home, away := 3, 0
	g := &models.Game{
		League: "EPL", HomeTeam: "Arsenal", AwayTeam: "Chelsea",
		GameDate: "2025-05-01", GameTime: "15:00",
		Status: models.StatusLive, HomeScore: &home, AwayScore: &away,
		Hot: true,
	}
	require.NoError(t, s.CreateGame(ctx, g))

	g.Status = models.StatusUpcoming
	g.HomeScore, g.AwayScore = nil, nil
	g.Hot = false
	require.NoError(t, s.SaveGame(ctx, g))

	stored, err := s.GetGame(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusUpcoming, stored.Status)
	assert.Nil(t, stored.HomeScore)
	assert.Nil(t, stored.AwayScore)
	assert.False(t, stored.Hot)
}

func TestGormStore_SaveUnknownGame(t *testing.T) {
	ctx := context.Background()
	s := newTestGormStore(t)

	g := &models.Game{
		ID: uuid.NewString(), League: "EPL", HomeTeam: "A", AwayTeam: "B",
		GameDate: "2025-05-01", GameTime: "15:00", Status: models.StatusUpcoming,
	}
	assert.ErrorIs(t, s.SaveGame(ctx, g), ErrNotFound)

	g.ID = "missing"
	assert.ErrorIs(t, s.SaveGame(ctx, g), ErrNotFound)

	_, err := s.GetGame(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	g.Status = "postponed"
	assert.ErrorIs(t, s.CreateGame(ctx, g), ErrInvalid)
}

func TestGormStore_Ratings(t *testing.T) {
	ctx := context.Background()
	s := newTestGormStore(t)

	gameID := uuid.NewString()
	r := &models.MatchdayRating{GameID: gameID, Ratings: map[string]int{"Saka": 9}, MomVote: "Saka"}
	require.NoError(t, s.CreateRating(ctx, r))
	require.NoError(t, s.CreateRating(ctx, &models.MatchdayRating{GameID: gameID, MomVote: "Rice"}))
	assert.NotEmpty(t, r.ID)

	var count int64
	require.NoError(t, s.db.Model(&ratingRecord{}).Where("game_id = ?", gameID).Count(&count).Error)
	assert.EqualValues(t, 2, count)

	var rec ratingRecord
	require.NoError(t, s.db.First(&rec, "id = ?", r.ID).Error)
	var ratings map[string]int
	require.NoError(t, json.Unmarshal(rec.Ratings, &ratings))
	assert.Equal(t, map[string]int{"Saka": 9}, ratings)
	assert.Equal(t, "Saka", rec.MomVote)

	err := s.CreateRating(ctx, &models.MatchdayRating{GameID: gameID})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, translate(gorm.ErrDuplicatedKey), ErrDuplicate)
	assert.ErrorIs(t, translate(gorm.ErrInvalidData), gorm.ErrInvalidData)
}
