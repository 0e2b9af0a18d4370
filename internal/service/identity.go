// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/stockroom/stockroom/internal/auth"
	"github.com/stockroom/stockroom/internal/cache"
	"github.com/stockroom/stockroom/internal/metrics"
	"github.com/stockroom/stockroom/internal/model"
	"github.com/stockroom/stockroom/internal/repository"
)

// Identity service errors.
var (
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password
	// so callers cannot probe for account existence.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// MinPasswordLength is the minimum accepted password length.
// The HTTP layer enforces this too; the service re-checks because it
// owns the credential invariant.
const MinPasswordLength = 6

// Session bundles a user summary with a freshly issued token.
type Session struct {
	User  *model.User
	Token string
}

// IdentityService handles registration, login and profile lookup.
type IdentityService struct {
	repo    *repository.Repository
	cache   *cache.Cache
	tokens  *auth.TokenManager
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewIdentityService creates a new IdentityService.
func NewIdentityService(repo *repository.Repository, cache *cache.Cache, tokens *auth.TokenManager, logger *slog.Logger, recorder metrics.Recorder) *IdentityService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &IdentityService{
		repo:    repo,
		cache:   cache,
		tokens:  tokens,
		logger:  logger,
		metrics: recorder,
	}
}

// NormalizeEmail lowercases and trims an email address for storage
// and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user with a hashed password and issues a token.
// Returns ErrEmailTaken if the email is already registered; the unique
// index on email closes the race two concurrent registrations would
// otherwise win together.
func (s *IdentityService) Register(ctx context.Context, name, email, password string) (*Session, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)

	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrValidation)
	}
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLength)
	}

	// Fast-path duplicate check; the insert below still guards the race.
	if _, err := s.repo.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           ulid.Make().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.metrics.IncUserRegistered()

	// The hash stays behind; it is never part of the summary.
	user.PasswordHash = ""
	return &Session{User: user, Token: token}, nil
}

// Login verifies credentials and issues a token.
// Both unknown email and wrong password return ErrInvalidCredentials.
func (s *IdentityService) Login(ctx context.Context, email, password string) (*Session, error) {
	email = NormalizeEmail(email)

	user, err := s.repo.GetUserWithCredentials(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.metrics.IncLoginFailed()
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, auth.ErrHashMismatch) {
			s.metrics.IncLoginFailed()
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.metrics.IncLoginSucceeded()

	user.PasswordHash = ""
	return &Session{User: user, Token: token}, nil
}

// Me returns the profile of the authenticated user, served from the
// profile cache when possible.
func (s *IdentityService) Me(ctx context.Context, userID string) (*model.User, error) {
	if s.cache != nil {
		if cached, _ := s.cache.GetUserProfile(ctx, userID); cached != nil {
			s.metrics.IncProfileCacheHit()
			return cached, nil
		}
		s.metrics.IncProfileCacheMiss()
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetUserProfile(ctx, user); err != nil {
			s.logger.Warn("failed to cache user profile",
				slog.String("user_id", userID),
				slog.String("error", err.Error()),
			)
		}
	}

	return user, nil
}
