package ports

import (
	"context"

	"github.com/tasktrail/task-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user and returns it with its assigned id.
	// Returns domain.ErrUserExists when the username is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByUsername returns domain.ErrUserNotFound when no account matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Delete removes a user and cascades to every task they own. No HTTP
	// route exposes this; it exists so orphaned tasks cannot outlive their owner.
	Delete(ctx context.Context, id int64) error
}
