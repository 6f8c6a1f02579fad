package mongo

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/tasktrail/task-api/internal/core/domain"
	"github.com/tasktrail/task-api/internal/core/ports"
)

// recordingTaskRepo records cascade calls; everything else is unreachable
// from UserRepository.Delete.
type recordingTaskRepo struct {
	cascaded []int64
}

func (r *recordingTaskRepo) Create(context.Context, *domain.Task) (*domain.Task, error) {
	return nil, errors.New("not implemented")
}

func (r *recordingTaskRepo) List(context.Context, ports.ListTasksFilter) ([]*domain.Task, error) {
	return nil, errors.New("not implemented")
}

func (r *recordingTaskRepo) Update(context.Context, int64, int64, domain.TaskPatch) (*domain.Task, error) {
	return nil, errors.New("not implemented")
}

func (r *recordingTaskRepo) Delete(context.Context, int64, int64) error {
	return errors.New("not implemented")
}

func (r *recordingTaskRepo) DeleteByOwner(_ context.Context, ownerID int64) error {
	r.cascaded = append(r.cascaded, ownerID)
	return nil
}

func TestUserRepository_Delete_Cascade(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("deleting a user cascades to their tasks", func(mt *mtest.T) {
		tasks := &recordingTaskRepo{}
		repo := NewUserRepository(mt.DB, NewSequences(mt.DB), tasks)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		if err := repo.Delete(context.Background(), 7); err != nil {
			mt.Fatalf("delete: %v", err)
		}
		if len(tasks.cascaded) != 1 || tasks.cascaded[0] != 7 {
			mt.Fatalf("expected cascade for owner 7, got %v", tasks.cascaded)
		}
	})

	mt.Run("missing user does not cascade", func(mt *mtest.T) {
		tasks := &recordingTaskRepo{}
		repo := NewUserRepository(mt.DB, NewSequences(mt.DB), tasks)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		if err := repo.Delete(context.Background(), 7); !errors.Is(err, domain.ErrUserNotFound) {
			mt.Fatalf("expected ErrUserNotFound, got %v", err)
		}
		if len(tasks.cascaded) != 0 {
			mt.Fatalf("cascade must not run for a missing user: %v", tasks.cascaded)
		}
	})

	mt.Run("failed delete does not cascade", func(mt *mtest.T) {
		tasks := &recordingTaskRepo{}
		repo := NewUserRepository(mt.DB, NewSequences(mt.DB), tasks)

		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11600,
			Name:    "InterruptedAtShutdown",
			Message: "server is shutting down",
		}))

		err := repo.Delete(context.Background(), 7)
		if err == nil || errors.Is(err, domain.ErrUserNotFound) {
			mt.Fatalf("expected a store error, got %v", err)
		}
		if len(tasks.cascaded) != 0 {
			mt.Fatalf("cascade must not run when the user delete fails: %v", tasks.cascaded)
		}
	})
}
