package usecase

import (
	"context"
	"fmt"
	"time"

	"seat-booking/internal/data/entity"
	"seat-booking/internal/data/repository"
	"seat-booking/pkg/utils"

	"go.uber.org/zap"
)

// AuthService is the identity and session manager.
type AuthService interface {
	// Authenticate checks the credentials and opens a session. Unknown
	// users and wrong secrets both yield ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, secret string) (*entity.Session, error)
	// Resolve returns the identity bound to a live session, or
	// ErrUnauthenticated.
	Resolve(ctx context.Context, token string) (*entity.Identity, error)
	// Invalidate ends the session. Unknown tokens are ignored.
	Invalidate(ctx context.Context, token string) error
	SessionTTL() time.Duration
}

type authService struct {
	users     repository.UserRepository
	sessions  repository.SessionRepository
	ttl       time.Duration
	dummyHash string
	now       func() time.Time
	log       *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return newAuthService(repo.User, repo.Session, config.Session.TTL(), config.Security.BcryptCost, time.Now, log)
}

func newAuthService(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	ttl time.Duration,
	bcryptCost int,
	now func() time.Time,
	log *zap.Logger,
) *authService {
	s := &authService{
		users:    users,
		sessions: sessions,
		ttl:      ttl,
		now:      now,
		log:      log.With(zap.String("service", "auth")),
	}

	// Compared against for unknown users so both failure paths cost a bcrypt round.
	if hash, err := utils.HashPassword("not-a-real-password", bcryptCost); err == nil {
		s.dummyHash = hash
	}

	return s
}

func (s *authService) SessionTTL() time.Duration {
	return s.ttl
}

func (s *authService) Authenticate(ctx context.Context, username, secret string) (*entity.Session, error) {
	if username == "" || secret == "" {
		return nil, ErrInvalidCredentials
	}

	// 1. Find user
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("find user: %w", err)
	}

	// 2. Check secret
	if user == nil {
		utils.CheckPasswordHash(secret, s.dummyHash)
		s.log.Warn("Login for unknown user", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(secret, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}

	// 3. Create session
	now := s.now()
	session := &entity.Session{
		Token:     utils.GenerateSessionToken(),
		Username:  user.Username,
		Name:      user.Name,
		IsAdmin:   user.IsAdmin,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("username", user.Username),
		zap.String("role", string(user.Role())),
		zap.Time("expires_at", session.ExpiresAt))

	return session, nil
}

func (s *authService) Resolve(ctx context.Context, token string) (*entity.Identity, error) {
	if !utils.IsSessionToken(token) {
		return nil, ErrUnauthenticated
	}

	session, err := s.sessions.FindValidSession(ctx, token)
	if err != nil {
		s.log.Error("Failed to validate session", zap.Error(err))
		return nil, fmt.Errorf("resolve session: %w", err)
	}
	if session == nil || session.ExpiredAt(s.now()) {
		return nil, ErrUnauthenticated
	}

	identity := session.Identity()
	return &identity, nil
}

func (s *authService) Invalidate(ctx context.Context, token string) error {
	if !utils.IsSessionToken(token) {
		return nil
	}

	if err := s.sessions.Revoke(ctx, token); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("invalidate session: %w", err)
	}

	s.log.Info("Session invalidated")
	return nil
}
