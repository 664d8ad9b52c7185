// File: store/records.go
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"fanconnect/models"
)

// Rosters and rating maps are nested documents; they live in JSON columns
// rather than child tables.

type userRecord struct {
	ID         string `gorm:"type:uuid;primaryKey"`
	Username   string `gorm:"uniqueIndex;not null"`
	Email      string `gorm:"uniqueIndex;not null"`
	Password   string `gorm:"not null"`
	IsVerified bool   `gorm:"not null;default:false"`
	CreatedAt  time.Time
}

func (userRecord) TableName() string { return "users" }

type teamRecord struct {
	ID        string         `gorm:"type:uuid;primaryKey"`
	Name      string         `gorm:"not null;index:idx_teams_name_league"`
	League    string         `gorm:"not null;index:idx_teams_name_league"`
	Players   datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (teamRecord) TableName() string { return "teams" }

type gameRecord struct {
	ID          string         `gorm:"type:uuid;primaryKey"`
	League      string         `gorm:"not null;index"`
	HomeTeam    string         `gorm:"not null"`
	AwayTeam    string         `gorm:"not null"`
	HomePlayers datatypes.JSON `gorm:"not null"`
	AwayPlayers datatypes.JSON `gorm:"not null"`
	GameDate    string         `gorm:"not null"`
	GameTime    string         `gorm:"not null"`
	Status      string         `gorm:"not null;default:upcoming"`
	HomeScore   *int
	AwayScore   *int
	Hot         bool `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (gameRecord) TableName() string { return "games" }

type ratingRecord struct {
	ID        string         `gorm:"type:uuid;primaryKey"`
	GameID    string         `gorm:"not null;index"`
	Ratings   datatypes.JSON `gorm:"not null"`
	MomVote   string         `gorm:"not null"`
	CreatedAt time.Time
}

func (ratingRecord) TableName() string { return "matchday_ratings" }

// ------------------- converters -------------------

func encodeJSON(v any) (datatypes.JSON, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func decodePlayers(raw datatypes.JSON) ([]models.Player, error) {
	players := []models.Player{}
	if len(raw) == 0 {
		return players, nil
	}
	if err := json.Unmarshal(raw, &players); err != nil {
		return nil, fmt.Errorf("decode players: %w", err)
	}
	return players, nil
}

func newUserRecord(u *models.User) userRecord {
	return userRecord{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Password:   u.Password,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}
}

func (r userRecord) model() *models.User {
	return &models.User{
		ID:         r.ID,
		Username:   r.Username,
		Email:      r.Email,
		Password:   r.Password,
		IsVerified: r.IsVerified,
		CreatedAt:  r.CreatedAt,
	}
}

func newTeamRecord(t *models.Team) (teamRecord, error) {
	players, err := encodeJSON(clonePlayers(t.Players))
	if err != nil {
		return teamRecord{}, err
	}
	return teamRecord{
		ID:        t.ID,
		Name:      t.Name,
		League:    t.League,
		Players:   players,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}, nil
}

func (r teamRecord) model() (*models.Team, error) {
	players, err := decodePlayers(r.Players)
	if err != nil {
		return nil, err
	}
	return &models.Team{
		ID:        r.ID,
		Name:      r.Name,
		League:    r.League,
		Players:   players,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

func newGameRecord(g *models.Game) (gameRecord, error) {
	home, err := encodeJSON(clonePlayers(g.HomePlayers))
	if err != nil {
		return gameRecord{}, err
	}
	away, err := encodeJSON(clonePlayers(g.AwayPlayers))
	if err != nil {
		return gameRecord{}, err
	}
	return gameRecord{
		ID:          g.ID,
		League:      g.League,
		HomeTeam:    g.HomeTeam,
		AwayTeam:    g.AwayTeam,
		HomePlayers: home,
		AwayPlayers: away,
		GameDate:    g.GameDate,
		GameTime:    g.GameTime,
		Status:      string(g.Status),
		HomeScore:   g.HomeScore,
		AwayScore:   g.AwayScore,
		Hot:         g.Hot,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}, nil
}

func (r gameRecord) model() (*models.Game, error) {
	home, err := decodePlayers(r.HomePlayers)
	if err != nil {
		return nil, err
	}
	away, err := decodePlayers(r.AwayPlayers)
	if err != nil {
		return nil, err
	}
	return &models.Game{
		ID:          r.ID,
		League:      r.League,
		HomeTeam:    r.HomeTeam,
		AwayTeam:    r.AwayTeam,
		HomePlayers: home,
		AwayPlayers: away,
		GameDate:    r.GameDate,
		GameTime:    r.GameTime,
		Status:      models.GameStatus(r.Status),
		HomeScore:   r.HomeScore,
		AwayScore:   r.AwayScore,
		Hot:         r.Hot,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}

func newRatingRecord(m *models.MatchdayRating) (ratingRecord, error) {
	ratings, err := encodeJSON(cloneRatings(m.Ratings))
	if err != nil {
		return ratingRecord{}, err
	}
	return ratingRecord{
		ID:        m.ID,
		GameID:    m.GameID,
		Ratings:   ratings,
		MomVote:   m.MomVote,
		CreatedAt: m.CreatedAt,
	}, nil
}
