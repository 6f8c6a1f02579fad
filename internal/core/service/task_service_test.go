package service

import (
	"context"
	"sort"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tasktrail/task-api/internal/core/domain"
	"github.com/tasktrail/task-api/internal/core/ports"
)

// stubTaskRepo is an in-memory TaskRepository honouring the same contract as
// the mongo implementation: ids grow monotonically and every operation other
// than Create is filtered by owner.
type stubTaskRepo struct {
	tasks      map[int64]*domain.Task
	nextID     int64
	lastFilter ports.ListTasksFilter
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[int64]*domain.Task)}
}

func (r *stubTaskRepo) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	r.nextID++
	created := *task
	created.ID = r.nextID
	r.tasks[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *stubTaskRepo) List(_ context.Context, filter ports.ListTasksFilter) ([]*domain.Task, error) {
	r.lastFilter = filter

	ids := make([]int64, 0, len(r.tasks))
	for id, t := range r.tasks {
		if t.OwnerID != filter.OwnerID || id <= filter.AfterID {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*domain.Task, 0, len(ids))
	for _, id := range ids {
		if int64(len(out)) >= filter.Limit {
			break
		}
		clone := *r.tasks[id]
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubTaskRepo) Update(_ context.Context, id, ownerID int64, patch domain.TaskPatch) (*domain.Task, error) {
	t, ok := r.tasks[id]
	if !ok || t.OwnerID != ownerID {
		return nil, domain.ErrTaskNotFound
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	clone := *t
	return &clone, nil
}

func (r *stubTaskRepo) Delete(_ context.Context, id, ownerID int64) error {
	t, ok := r.tasks[id]
	if !ok || t.OwnerID != ownerID {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *stubTaskRepo) DeleteByOwner(_ context.Context, ownerID int64) error {
	for id, t := range r.tasks {
		if t.OwnerID == ownerID {
			delete(r.tasks, id)
		}
	}
	return nil
}

func seedTask(t *testing.T, repo *stubTaskRepo, ownerID int64, title string) *domain.Task {
	t.Helper()
	task, err := repo.Create(context.Background(), &domain.Task{
		Title:       title,
		Description: "desc",
		OwnerID:     ownerID,
	})
	if err != nil {
		t.Fatalf("seed task: %v", err)
	}
	return task
}

func TestTaskService_Create_DefaultsIncomplete(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewTaskService(repo, zerolog.Nop())

	task, err := svc.Create(context.Background(), ports.CreateTaskInput{
		OwnerID:     1,
		Title:       "buy milk",
		Description: "2 liters",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if task.Completed {
		t.Fatalf("new task must start incomplete")
	}
	if task.OwnerID != 1 {
		t.Fatalf("unexpected owner: %d", task.OwnerID)
	}
}

func TestTaskService_List_CursorSkipsOtherOwners(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewTaskService(repo, zerolog.Nop())

	// ids 1,2 belong to owner 7; ids 3,4,5 to owner 8; ids 6,7,9 to owner 7 again.
	seedTask(t, repo, 7, "t1")
	seedTask(t, repo, 7, "t2")
	seedTask(t, repo, 8, "t3")
	seedTask(t, repo, 8, "t4")
	seedTask(t, repo, 8, "t5")
	seedTask(t, repo, 7, "t6")
	seedTask(t, repo, 7, "t7")
	seedTask(t, repo, 8, "t8")
	seedTask(t, repo, 7, "t9")

	tasks, err := svc.List(context.Background(), ports.ListTasksInput{
		OwnerID: 7,
		AfterID: 5,
		Limit:   2,
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != 6 || tasks[1].ID != 7 {
		t.Fatalf("expected ids [6 7], got [%d %d]", tasks[0].ID, tasks[1].ID)
	}
}

func TestTaskService_List_DefaultAndCappedLimit(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewTaskService(repo, zerolog.Nop())

	if _, err := svc.List(context.Background(), ports.ListTasksInput{OwnerID: 1}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if repo.lastFilter.Limit != defaultPageLimit {
		t.Fatalf("expected default limit %d, got %d", defaultPageLimit, repo.lastFilter.Limit)
	}

	if _, err := svc.List(context.Background(), ports.ListTasksInput{OwnerID: 1, Limit: 5000}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if repo.lastFilter.Limit != maxPageLimit {
		t.Fatalf("expected capped limit %d, got %d", maxPageLimit, repo.lastFilter.Limit)
	}
}

func TestTaskService_Update_PartialPatch(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewTaskService(repo, zerolog.Nop())

	seeded := seedTask(t, repo, 1, "original title")

	done := true
	updated, err := svc.Update(context.Background(), 1, seeded.ID, domain.TaskPatch{Completed: &done})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if !updated.Completed {
		t.Fatalf("completed not set")
	}
	if updated.Title != "original title" || updated.Description != "desc" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestTaskService_Update_OtherOwnersTaskIsNotFound(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewTaskService(repo, zerolog.Nop())

	seeded := seedTask(t, repo, 1, "mine")

	title := "hijacked"
	if _, err := svc.Update(context.Background(), 2, seeded.ID, domain.TaskPatch{Title: &title}); err != domain.ErrTaskNotFound {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	if repo.tasks[seeded.ID].Title != "mine" {
		t.Fatalf("task modified by non-owner")
	}
}

func TestTaskService_Delete(t *testing.T) {
	repo := newStubTaskRepo()
	svc := NewTaskService(repo, zerolog.Nop())

	seeded := seedTask(t, repo, 1, "to delete")

	// Non-owner delete is indistinguishable from a missing task.
	if err := svc.Delete(context.Background(), 2, seeded.ID); err != domain.ErrTaskNotFound {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}

	if err := svc.Delete(context.Background(), 1, seeded.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(context.Background(), 1, seeded.ID); err != domain.ErrTaskNotFound {
		t.Fatalf("expected ErrTaskNotFound after delete, got %v", err)
	}
}
