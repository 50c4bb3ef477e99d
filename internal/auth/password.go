package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anirudhxmishra/swipe-hire-app/internal/api/model"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultBcryptCost = 12
	defaultSessionTTL = 24 * time.Hour
)

// UserStore is the persistence capability the password service needs.
// Lookup methods return nil without error when nothing matches. CreateUser
// returns ErrEmailTaken when the email is already registered.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	CreateSession(ctx context.Context, session *model.Session) error
	GetUserBySession(ctx context.Context, token string, now time.Time) (*model.User, error)
}

// PasswordService handles email/password registration, login, and the
// session tokens backing the request gate.
type PasswordService struct {
	store      UserStore
	cost       int
	sessionTTL time.Duration
	logger     *slog.Logger
}

// PasswordConfig holds password-login settings
type PasswordConfig struct {
	BcryptCost int
	SessionTTL time.Duration
}

// NewPasswordService creates a new PasswordService instance
func NewPasswordService(store UserStore, cfg *PasswordConfig, logger *slog.Logger) *PasswordService {
	cost := cfg.BcryptCost
	if cost <= 0 {
		cost = defaultBcryptCost
	}
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}

	return &PasswordService{
		store:      store,
		cost:       cost,
		sessionTTL: ttl,
		logger:     logger,
	}
}

// Register creates a new account with a bcrypt-hashed password
func (s *PasswordService) Register(ctx context.Context, email, password, fullName string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	existing, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User registered", slog.String("email", email))

	return user, nil
}

// Login verifies the credentials and issues a session token
func (s *PasswordService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	session := &model.Session{
		Token:     uuid.New().String(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}

	if err := s.store.CreateSession(ctx, session); err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("User logged in", slog.Int64("user_id", user.ID))

	return user, session.Token, nil
}

// Authenticate resolves a session token to its user. Missing or expired
// sessions yield ErrSessionNotFound.
func (s *PasswordService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	user, err := s.store.GetUserBySession(ctx, token, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}
	if user == nil {
		return nil, ErrSessionNotFound
	}

	return user, nil
}
