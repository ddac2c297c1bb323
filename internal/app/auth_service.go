package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/AnuragChougule/venuebook/internal/clock"
	"github.com/AnuragChougule/venuebook/internal/domain"
)

// SessionRepository stores server-side login sessions keyed by token.
type SessionRepository interface {
	CreateSession(ctx context.Context, session domain.Session) error
	FindByToken(ctx context.Context, token string) (*domain.Session, error)
	DeleteByToken(ctx context.Context, token string) error
}

type AuthService struct {
	users      UserRepository
	sessions   SessionRepository
	clock      clock.Clock
	sessionTTL time.Duration
}

const defaultSessionTTL = 24 * time.Hour

func NewAuthService(users UserRepository, sessions SessionRepository, clk clock.Clock, opts ...AuthServiceOption) *AuthService {
	svc := &AuthService{
		users:      users,
		sessions:   sessions,
		clock:      clk,
		sessionTTL: defaultSessionTTL,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

type AuthServiceOption func(*AuthService)

// WithSessionTTL overrides the default session lifetime.
func WithSessionTTL(d time.Duration) AuthServiceOption {
	return func(s *AuthService) {
		if d > 0 {
			s.sessionTTL = d
		}
	}
}

// Login verifies the credentials and opens a session. Unknown emails and
// wrong passwords report the same ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	if email == "" || password == "" {
		return domain.Session{}, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return domain.Session{}, err
	}
	if user == nil {
		return domain.Session{}, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.Session{}, domain.ErrInvalidCredentials
	}

	now := s.clock.Now()
	session := domain.Session{
		Token:     uuid.NewString(),
		UserEmail: user.Email,
		ExpiresAt: now.Add(s.sessionTTL),
		CreatedAt: now,
	}
	if err := s.sessions.CreateSession(ctx, session); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

// Logout drops the session. Logging out an unknown token is a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.DeleteByToken(ctx, token)
}

// Authenticate resolves a bearer token to the account email. Expired
// sessions are deleted on sight.
func (s *AuthService) Authenticate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", domain.ErrSessionNotFound
	}
	session, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		return "", err
	}
	if session == nil {
		return "", domain.ErrSessionNotFound
	}
	if !session.ExpiresAt.After(s.clock.Now()) {
		if err := s.sessions.DeleteByToken(ctx, token); err != nil {
			return "", err
		}
		return "", domain.ErrSessionNotFound
	}
	return session.UserEmail, nil
}

// GetProfile returns the account for email.
func (s *AuthService) GetProfile(ctx context.Context, email string) (domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}
	if user == nil {
		return domain.User{}, domain.ErrUserNotFound
	}
	return *user, nil
}

// UpdateUsername changes the display name on the caller's own account.
func (s *AuthService) UpdateUsername(ctx context.Context, email, username string) (domain.User, error) {
	if username == "" {
		return domain.User{}, domain.ErrUsernameRequired
	}
	user, err := s.users.UpdateUsername(ctx, email, username)
	if err != nil {
		return domain.User{}, err
	}
	return *user, nil
}
