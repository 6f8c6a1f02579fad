package ports

import (
	"context"

	"github.com/tasktrail/task-api/internal/core/domain"
)

// AuthService defines the registration, login, and logout use cases.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login returns a signed bearer token on success. Unknown username and
	// wrong password both surface as domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Logout revokes the raw token for its remaining validity.
	Logout(ctx context.Context, rawToken string) error
}
