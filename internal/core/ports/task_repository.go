package ports

import (
	"context"

	"github.com/tasktrail/task-api/internal/core/domain"
)

// ListTasksFilter carries the query parameters for listing tasks.
// OwnerID is always enforced; AfterID is the exclusive cursor.
type ListTasksFilter struct {
	OwnerID int64
	AfterID int64 // 0 = start from the beginning
	Limit   int64
}

// TaskRepository defines persistence operations for tasks. Every query other
// than Create filters by both task id and owner id, so a caller can never
// reach another user's task.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// List returns tasks with id > AfterID, ascending by id, at most Limit rows.
	List(ctx context.Context, filter ListTasksFilter) ([]*domain.Task, error)
	// Update applies the non-nil fields of patch. Returns domain.ErrTaskNotFound
	// when the (id, owner) pair matches nothing.
	Update(ctx context.Context, id, ownerID int64, patch domain.TaskPatch) (*domain.Task, error)
	// Delete removes the task. Same not-found rule as Update.
	Delete(ctx context.Context, id, ownerID int64) error
	// DeleteByOwner removes every task owned by ownerID (user-deletion cascade).
	DeleteByOwner(ctx context.Context, ownerID int64) error
}
