// File: services/auth_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"fanconnect/logger"
	"fanconnect/models"
	"fanconnect/store"
)

// RegisterRequest is the sign-up form.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the sign-in form.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthServiceInterface covers account creation and credential checks.
// Session issuance is the HTTP layer's job.
type AuthServiceInterface interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req LoginRequest) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// AuthService stores bcrypt-hashed credentials.
type AuthService struct {
	users store.UserRepository
	cost  int
}

var _ AuthServiceInterface = (*AuthService)(nil)

// NewAuthService creates an AuthService hashing with the given bcrypt cost.
func NewAuthService(users store.UserRepository, cost int) *AuthService {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &AuthService{users: users, cost: cost}
}

// NormalizeEmail trims and lower-cases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ComparePasswords checks if the given password matches the hashed password.
func ComparePasswords(hashedPassword, plainPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword)) == nil
}

// Register creates an unverified account.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	email := NormalizeEmail(req.Email)
	if username == "" || email == "" || req.Password == "" {
		return nil, ErrInvalidRegistration
	}

	_, err := s.users.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		logger.Warn.Printf("[AuthService.Register] %s is already registered", email)
		return nil, ErrDuplicateUser
	case !errors.Is(err, store.ErrNotFound):
		logger.Error.Printf("[AuthService.Register] lookup %s: %v", email, err)
		return nil, fmt.Errorf("find user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{Username: username, Email: email, Password: string(hash)}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			// a concurrent registration may have claimed the email since the
			// lookup above
			if _, ferr := s.users.FindUserByEmail(ctx, email); ferr == nil {
				logger.Warn.Printf("[AuthService.Register] %s is already registered", email)
				return nil, ErrDuplicateUser
			}
			logger.Warn.Printf("[AuthService.Register] username %s is taken", username)
			return nil, ErrUsernameTaken
		}
		logger.Error.Printf("[AuthService.Register] create %s: %v", email, err)
		return nil, fmt.Errorf("create user: %w", err)
	}

	logger.Info.Printf("[AuthService.Register] registered %s (%s)", user.Username, user.ID)
	return user, nil
}

// Login verifies an email and password pair.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*models.User, error) {
	email := NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, ErrInvalidLogin
	}

	user, err := s.users.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		logger.Warn.Printf("[AuthService.Login] unknown email %s", email)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		logger.Error.Printf("[AuthService.Login] lookup %s: %v", email, err)
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !ComparePasswords(user.Password, req.Password) {
		logger.Warn.Printf("[AuthService.Login] wrong password for %s", email)
		return nil, ErrInvalidCredentials
	}

	logger.Info.Printf("[AuthService.Login] %s signed in", email)
	return user, nil
}

// GetUser loads an account by id.
func (s *AuthService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.GetUser(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
