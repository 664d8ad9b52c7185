// File: store/gorm.go
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"fanconnect/logger"
	"fanconnect/models"
)

// GormStore persists records in postgres through gorm.
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

// OpenGorm connects to postgres and migrates the four tables.
func OpenGorm(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(logger.Warn, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	s, err := NewGormStore(db)
	if err != nil {
		return nil, err
	}
	logger.Info.Println("[store.OpenGorm] postgres store ready")
	return s, nil
}

// NewGormStore wraps an open gorm handle and runs the migrations.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&userRecord{}, &teamRecord{}, &gameRecord{}, &ratingRecord{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &GormStore{db: db}, nil
}

// Close releases the connection pool.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return err
}

// ------------------- users -------------------

func (s *GormStore) CreateUser(ctx context.Context, u *models.User) error {
	if err := validateUser(u); err != nil {
		return err
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	rec := newUserRecord(u)
	return translate(s.db.WithContext(ctx).Create(&rec).Error)
}

func (s *GormStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var rec userRecord
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&rec).Error; err != nil {
		return nil, translate(err)
	}
	return rec.model(), nil
}

func (s *GormStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	var rec userRecord
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return rec.model(), nil
}

// ------------------- teams -------------------

func (s *GormStore) CreateTeam(ctx context.Context, t *models.Team) error {
	if err := validateTeam(t); err != nil {
		return err
	}
	now := time.Now().UTC()
	t.ID = uuid.NewString()
	t.Players = clonePlayers(t.Players)
	t.CreatedAt, t.UpdatedAt = now, now
	rec, err := newTeamRecord(t)
	if err != nil {
		return err
	}
	return translate(s.db.WithContext(ctx).Create(&rec).Error)
}

func (s *GormStore) FindTeam(ctx context.Context, name, league string) (*models.Team, error) {
	var rec teamRecord
	err := s.db.WithContext(ctx).Where("name = ? AND league = ?", name, league).First(&rec).Error
	if err != nil {
		return nil, translate(err)
	}
	return rec.model()
}

func (s *GormStore) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	var rec teamRecord
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return rec.model()
}

func (s *GormStore) ListTeams(ctx context.Context) ([]models.Team, error) {
	var recs []teamRecord
	if err := s.db.WithContext(ctx).Order("created_at").Find(&recs).Error; err != nil {
		return nil, translate(err)
	}
	out := make([]models.Team, 0, len(recs))
	for _, rec := range recs {
		t, err := rec.model()
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, nil
}

func (s *GormStore) SaveTeam(ctx context.Context, t *models.Team) error {
	if err := validateTeam(t); err != nil {
		return err
	}
	if _, err := uuid.Parse(t.ID); err != nil {
		return ErrNotFound
	}
	t.UpdatedAt = time.Now().UTC()
	rec, err := newTeamRecord(t)
	if err != nil {
		return err
	}
	res := s.db.WithContext(ctx).Model(&teamRecord{}).Where("id = ?", t.ID).
		Select("name", "league", "players", "updated_at").
		Updates(&rec)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ------------------- games -------------------

func (s *GormStore) CreateGame(ctx context.Context, g *models.Game) error {
	if g.Status == "" {
		g.Status = models.StatusUpcoming
	}
	if err := validateGame(g); err != nil {
		return err
	}
	now := time.Now().UTC()
	g.ID = uuid.NewString()
	g.HomePlayers = clonePlayers(g.HomePlayers)
	g.AwayPlayers = clonePlayers(g.AwayPlayers)
	g.CreatedAt, g.UpdatedAt = now, now
	rec, err := newGameRecord(g)
	if err != nil {
		return err
	}
	return translate(s.db.WithContext(ctx).Create(&rec).Error)
}

func (s *GormStore) GetGame(ctx context.Context, id string) (*models.Game, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	var rec gameRecord
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return rec.model()
}

func (s *GormStore) ListGames(ctx context.Context) ([]models.Game, error) {
	var recs []gameRecord
	if err := s.db.WithContext(ctx).Order("created_at").Find(&recs).Error; err != nil {
		return nil, translate(err)
	}
	out := make([]models.Game, 0, len(recs))
	for _, rec := range recs {
		g, err := rec.model()
		if err != nil {
			return nil, err
		}
		out = append(out, *g)
	}
	return out, nil
}

func (s *GormStore) SaveGame(ctx context.Context, g *models.Game) error {
	if err := validateGame(g); err != nil {
		return err
	}
	if _, err := uuid.Parse(g.ID); err != nil {
		return ErrNotFound
	}
	g.UpdatedAt = time.Now().UTC()
	rec, err := newGameRecord(g)
	if err != nil {
		return err
	}
	res := s.db.WithContext(ctx).Model(&gameRecord{}).Where("id = ?", g.ID).
		Select("league", "home_team", "away_team", "home_players", "away_players",
			"game_date", "game_time", "status", "home_score", "away_score", "hot", "updated_at").
		Updates(&rec)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ------------------- matchday ratings -------------------

func (s *GormStore) CreateRating(ctx context.Context, r *models.MatchdayRating) error {
	if err := validateRating(r); err != nil {
		return err
	}
	r.ID = uuid.NewString()
	r.CreatedAt = time.Now().UTC()
	rec, err := newRatingRecord(r)
	if err != nil {
		return err
	}
	return translate(s.db.WithContext(ctx).Create(&rec).Error)
}
