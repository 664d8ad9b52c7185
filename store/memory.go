// File: store/memory.go
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"fanconnect/models"
)

// MemoryStore keeps every record in process memory. It backs local
// development when no DATABASE_URL is configured, and the test suites.
type MemoryStore struct {
	mu      sync.Mutex
	now     func() time.Time
	users   map[string]models.User
	teams   map[string]models.Team
	games   map[string]models.Game
	ratings []models.MatchdayRating

	// insertion order for deterministic listing
	teamOrder []string
	gameOrder []string
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now:   time.Now,
		users: make(map[string]models.User),
		teams: make(map[string]models.Team),
		games: make(map[string]models.Game),
	}
}

var _ Store = (*MemoryStore)(nil)

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }

// ------------------- users -------------------

func (s *MemoryStore) CreateUser(_ context.Context, u *models.User) error {
	if err := validateUser(u); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email || existing.Username == u.Username {
			return ErrDuplicate
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = s.now().UTC()
	s.users[u.ID] = *u
	return nil
}

func (s *MemoryStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) GetUser(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

// ------------------- teams -------------------

func (s *MemoryStore) CreateTeam(_ context.Context, t *models.Team) error {
	if err := validateTeam(t); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	t.ID = uuid.NewString()
	t.Players = clonePlayers(t.Players)
	t.CreatedAt, t.UpdatedAt = now, now
	s.teams[t.ID] = cloneTeam(*t)
	s.teamOrder = append(s.teamOrder, t.ID)
	return nil
}

func (s *MemoryStore) FindTeam(_ context.Context, name, league string) (*models.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.teamOrder {
		t := s.teams[id]
		if t.Name == name && t.League == league {
			found := cloneTeam(t)
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) GetTeam(_ context.Context, id string) (*models.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.teams[id]
	if !ok {
		return nil, ErrNotFound
	}
	found := cloneTeam(t)
	return &found, nil
}

func (s *MemoryStore) ListTeams(_ context.Context) ([]models.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Team, 0, len(s.teamOrder))
	for _, id := range s.teamOrder {
		out = append(out, cloneTeam(s.teams[id]))
	}
	return out, nil
}

func (s *MemoryStore) SaveTeam(_ context.Context, t *models.Team) error {
	if err := validateTeam(t); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.teams[t.ID]
	if !ok {
		return ErrNotFound
	}
	t.CreatedAt = existing.CreatedAt
	t.UpdatedAt = s.now().UTC()
	s.teams[t.ID] = cloneTeam(*t)
	return nil
}

// ------------------- games -------------------

func (s *MemoryStore) CreateGame(_ context.Context, g *models.Game) error {
	if g.Status == "" {
		g.Status = models.StatusUpcoming
	}
	if err := validateGame(g); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	g.ID = uuid.NewString()
	g.HomePlayers = clonePlayers(g.HomePlayers)
	g.AwayPlayers = clonePlayers(g.AwayPlayers)
	g.CreatedAt, g.UpdatedAt = now, now
	s.games[g.ID] = cloneGame(*g)
	s.gameOrder = append(s.gameOrder, g.ID)
	return nil
}

func (s *MemoryStore) GetGame(_ context.Context, id string) (*models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	found := cloneGame(g)
	return &found, nil
}

func (s *MemoryStore) ListGames(_ context.Context) ([]models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Game, 0, len(s.gameOrder))
	for _, id := range s.gameOrder {
		out = append(out, cloneGame(s.games[id]))
	}
	return out, nil
}

func (s *MemoryStore) SaveGame(_ context.Context, g *models.Game) error {
	if err := validateGame(g); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.games[g.ID]
	if !ok {
		return ErrNotFound
	}
	g.CreatedAt = existing.CreatedAt
	g.UpdatedAt = s.now().UTC()
	s.games[g.ID] = cloneGame(*g)
	return nil
}

// ------------------- matchday ratings -------------------

func (s *MemoryStore) CreateRating(_ context.Context, r *models.MatchdayRating) error {
	if err := validateRating(r); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = uuid.NewString()
	r.CreatedAt = s.now().UTC()
	s.ratings = append(s.ratings, cloneRating(*r))
	return nil
}

// Ratings returns every stored submission for gameID in insertion order.
func (s *MemoryStore) Ratings(gameID string) []models.MatchdayRating {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.MatchdayRating
	for _, r := range s.ratings {
		if r.GameID == gameID {
			out = append(out, cloneRating(r))
		}
	}
	return out
}

// RatingCount returns the total number of stored submissions.
func (s *MemoryStore) RatingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ratings)
}
