package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tasktrail/task-api/internal/core/domain"
	"github.com/tasktrail/task-api/internal/core/ports"
)

const tasksCollection = "tasks"

// TaskRepository persists tasks. Every query other than Create filters by
// both _id and owner_id, so ownership is enforced at the storage boundary.
type TaskRepository struct {
	coll *mongo.Collection
	seq  *Sequences
}

func NewTaskRepository(db *mongo.Database, seq *Sequences) *TaskRepository {
	return &TaskRepository{coll: db.Collection(tasksCollection), seq: seq}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.Next(ctx, tasksCollection)
	if err != nil {
		return nil, err
	}

	created := *task
	created.ID = id

	if _, err := r.coll.InsertOne(ctx, created); err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return &created, nil
}

func (r *TaskRepository) List(ctx context.Context, filter ports.ListTasksFilter) ([]*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"owner_id": filter.OwnerID}
	if filter.AfterID > 0 {
		query["_id"] = bson.M{"$gt": filter.AfterID}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(filter.Limit)

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer cur.Close(ctx)

	tasks := make([]*domain.Task, 0, filter.Limit)
	for cur.Next(ctx) {
		var t domain.Task
		if err := cur.Decode(&t); err != nil {
			return nil, fmt.Errorf("decode task: %w", err)
		}
		tasks = append(tasks, &t)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Update applies only the non-nil fields of patch and returns the updated
// document. A task owned by someone else is reported as not found.
func (r *TaskRepository) Update(ctx context.Context, id, ownerID int64, patch domain.TaskPatch) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"_id": id, "owner_id": ownerID}

	if patch.Empty() {
		// Nothing to change; still verify the task exists and is owned by the caller.
		var t domain.Task
		if err := r.coll.FindOne(ctx, query).Decode(&t); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, domain.ErrTaskNotFound
			}
			return nil, fmt.Errorf("find task: %w", err)
		}
		return &t, nil
	}

	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Completed != nil {
		set["completed"] = *patch.Completed
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var t domain.Task
	err := r.coll.FindOneAndUpdate(ctx, query, bson.M{"$set": set}, opts).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return &t, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id, ownerID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "owner_id": ownerID})
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// DeleteByOwner removes every task owned by ownerID. Used by the user
// deletion cascade.
func (r *TaskRepository) DeleteByOwner(ctx context.Context, ownerID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"owner_id": ownerID}); err != nil {
		return fmt.Errorf("delete tasks by owner: %w", err)
	}
	return nil
}

// EnsureIndexes creates the owner_id index used by every list query.
func (r *TaskRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "_id", Value: 1}},
	})
	return err
}
