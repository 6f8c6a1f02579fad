package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tasktrail/task-api/internal/core/domain"
	"github.com/tasktrail/task-api/internal/core/ports"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// TaskService implements the task use cases. Ownership is enforced at the
// repository layer: every read and write is filtered by owner id.
type TaskService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

// Create inserts a new task for the owner; completed starts false.
func (s *TaskService) Create(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	task, err := s.repo.Create(ctx, &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Completed:   false,
		OwnerID:     input.OwnerID,
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("owner_id", input.OwnerID).Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().Int64("task_id", task.ID).Int64("owner_id", task.OwnerID).Msg("task created")
	return task, nil
}

// List returns the owner's tasks with id greater than AfterID, ascending,
// truncated to Limit. The cursor is forward-only: stable under concurrent
// inserts at the tail, no jumping to an arbitrary page.
func (s *TaskService) List(ctx context.Context, input ports.ListTasksInput) ([]*domain.Task, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return s.repo.List(ctx, ports.ListTasksFilter{
		OwnerID: input.OwnerID,
		AfterID: input.AfterID,
		Limit:   limit,
	})
}

// Update applies a partial patch to the owner's task. Fields absent from the
// patch keep their current values.
func (s *TaskService) Update(ctx context.Context, ownerID, taskID int64, patch domain.TaskPatch) (*domain.Task, error) {
	task, err := s.repo.Update(ctx, taskID, ownerID, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("task_id", taskID).Int64("owner_id", ownerID).Msg("task updated")
	return task, nil
}

// Delete removes the owner's task.
func (s *TaskService) Delete(ctx context.Context, ownerID, taskID int64) error {
	if err := s.repo.Delete(ctx, taskID, ownerID); err != nil {
		return err
	}

	s.logger.Info().Int64("task_id", taskID).Int64("owner_id", ownerID).Msg("task deleted")
	return nil
}
