package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tasktrail/task-api/internal/core/domain"
	"github.com/tasktrail/task-api/internal/core/ports"
)

// AuthService implements registration, login, and logout.
type AuthService struct {
	users    ports.UserRepository
	issuer   ports.TokenIssuer
	denylist ports.TokenDenylist
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, issuer ports.TokenIssuer, denylist ports.TokenDenylist, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, issuer: issuer, denylist: denylist, logger: logger}
}

// Register creates an account storing only a bcrypt hash of the password.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and issues a bearer token. A missing user
// and a wrong password are deliberately indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.Username)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", user.Username).Msg("login succeeded")
	return token, user, nil
}

// Logout denylists the token for the rest of its validity window, so it stops
// working immediately instead of at its expiry instant.
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	_, expiresAt, err := s.issuer.Decode(rawToken)
	if err != nil {
		return err
	}

	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil // already expired, nothing to revoke
	}

	if err := s.denylist.Revoke(ctx, rawToken, ttl); err != nil {
		return err
	}

	return nil
}
