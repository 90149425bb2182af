package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrTaskNotFound is returned when no task row matches the requested entity id.
var ErrTaskNotFound = errors.New("task not found")

// TaskReplayer republishes, resets and schedules tasks of one entity.
type TaskReplayer struct {
	store     TaskAdminStore
	publisher TaskPublisher
	entity    model.Entity
	queue     model.Queue
	newUID    func() string
	logger    *zap.Logger
}

// NewTaskReplayer builds a TaskReplayer publishing tasks of entity to queue.
func NewTaskReplayer(store TaskAdminStore, publisher TaskPublisher, entity model.Entity, queue model.Queue, logger *zap.Logger) (*TaskReplayer, error) {
	if store == nil {
		return nil, errors.New("task store is required")
	}
	if publisher == nil {
		return nil, errors.New("publisher is required")
	}

	return &TaskReplayer{
		store:     store,
		publisher: publisher,
		entity:    entity,
		queue:     queue,
		newUID:    uuid.NewString,
		logger:    logger.Named("taskReplayer").With(zap.String("entity", string(entity))),
	}, nil
}

// ReplayAll publishes every not processed task with an entity id greater than afterID, page by page.
func (r *TaskReplayer) ReplayAll(ctx context.Context, afterID int64) (int, error) {
	published := 0
	for {
		tasks, err := r.store.GetUnprocessedTasks(ctx, r.entity, afterID)
		if err != nil {
			return published, fmt.Errorf("unprocessed tasks after %d: %w", afterID, err)
		}
		if len(tasks) == 0 {
			return published, nil
		}

		for _, task := range tasks {
			if err := r.publisher.Publish(ctx, r.queue, task); err != nil {
				return published, err
			}
			published++
		}
		afterID = tasks[len(tasks)-1].EntityID
		r.logger.Info("page replayed", zap.Int("tasks", len(tasks)), zap.Int64("lastEntityID", afterID))
	}
}

// ReplayOne publishes the not processed task of entityID.
func (r *TaskReplayer) ReplayOne(ctx context.Context, entityID int64) error {
	task, err := r.store.GetUnprocessedTask(ctx, r.entity, entityID)
	if err != nil {
		return fmt.Errorf("unprocessed task %d: %w", entityID, err)
	}
	if task == nil {
		return fmt.Errorf("%w: not processed %s %d", ErrTaskNotFound, r.entity, entityID)
	}
	return r.publisher.Publish(ctx, r.queue, *task)
}

// Reset reopens the task of entityID under a fresh collect uid, dropping rows it produced, and publishes it.
func (r *TaskReplayer) Reset(ctx context.Context, entityID int64) (*model.ProcessingTask, error) {
	task, err := r.store.ResetTask(ctx, r.entity, entityID, r.newUID())
	if err != nil {
		return nil, fmt.Errorf("reset task %d: %w", entityID, err)
	}
	if task == nil {
		return nil, fmt.Errorf("%w: %s %d", ErrTaskNotFound, r.entity, entityID)
	}
	if err := r.publisher.Publish(ctx, r.queue, *task); err != nil {
		return task, err
	}
	r.logger.Info("task reset", zap.Int64("entityID", entityID), zap.String("collectUID", task.CollectUID))
	return task, nil
}

// NextEntityID returns the entity id following the newest task.
func (r *TaskReplayer) NextEntityID(ctx context.Context) (int64, error) {
	last, err := r.store.FindLastEntityID(ctx, r.entity)
	if err != nil {
		return 0, fmt.Errorf("last entity id: %w", err)
	}
	if last < 0 {
		return 0, nil
	}
	return last + 1, nil
}

// Schedule creates a task for entityID and publishes it. It reports false when the task already finished.
func (r *TaskReplayer) Schedule(ctx context.Context, entityID int64, data json.RawMessage) (bool, error) {
	added, err := r.store.AddProcessingTask(ctx, model.ProcessingTask{
		Entity:     r.entity,
		EntityID:   entityID,
		Status:     model.TaskNotProcessed,
		CollectUID: r.newUID(),
		Data:       data,
	})
	if err != nil {
		return false, fmt.Errorf("add task %d: %w", entityID, err)
	}
	if !added {
		r.logger.Info("task already handled", zap.Int64("entityID", entityID))
		return false, nil
	}

	// A pending row may predate this call and keeps its own collect uid.
	task, err := r.store.GetUnprocessedTask(ctx, r.entity, entityID)
	if err != nil {
		return false, fmt.Errorf("unprocessed task %d: %w", entityID, err)
	}
	if task == nil {
		return false, fmt.Errorf("%w: scheduled %s %d", ErrTaskNotFound, r.entity, entityID)
	}
	if err := r.publisher.Publish(ctx, r.queue, *task); err != nil {
		return false, err
	}
	return true, nil
}
