package ports

import (
	"context"

	"github.com/tasktrail/task-api/internal/core/domain"
)

// CreateTaskInput carries the data needed to create a task.
type CreateTaskInput struct {
	OwnerID     int64
	Title       string
	Description string
}

// ListTasksInput carries the parameters of the list endpoint.
// AfterID is the exclusive cursor; Limit defaults to 10 and is capped at 100.
type ListTasksInput struct {
	OwnerID int64
	AfterID int64
	Limit   int64
}

// TaskService defines the task use cases, all scoped to the acting owner.
type TaskService interface {
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	List(ctx context.Context, input ListTasksInput) ([]*domain.Task, error)
	Update(ctx context.Context, ownerID, taskID int64, patch domain.TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, ownerID, taskID int64) error
}
