package queue

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/model"
	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/storage"
	"go.uber.org/zap"
)

// Outcome is how a delivered message ended.
type Outcome string

const (
	OutcomeProcessed      Outcome = "processed"
	OutcomeClaimSkipped   Outcome = "claim_skipped"
	OutcomeAlreadyHandled Outcome = "already_handled"
	OutcomeFailed         Outcome = "failed"
	OutcomeMalformed      Outcome = "malformed"
)

// Bridge turns at-least-once deliveries into exactly-once-effective task processing. The task row lock
// held by the job transaction is the only mutual exclusion between workers.
type Bridge struct {
	entity    model.Entity
	store     TaskStore
	beginner  TxBeginner
	processor Processor
	metrics   Metrics
	logger    *zap.Logger
}

// NewBridge builds a Bridge for tasks of the given entity.
func NewBridge(
	entity model.Entity,
	store TaskStore,
	beginner TxBeginner,
	processor Processor,
	metrics Metrics,
	logger *zap.Logger,
) (*Bridge, error) {
	if store == nil || beginner == nil {
		return nil, errors.New("task store is required")
	}
	if processor == nil {
		return nil, errors.New("processor is required")
	}
	if metrics == nil {
		return nil, errors.New("queue bridge metrics is required")
	}

	return &Bridge{
		entity:    entity,
		store:     store,
		beginner:  beginner,
		processor: processor,
		metrics:   metrics,
		logger:    logger.With(zap.String("entity", string(entity))),
	}, nil
}

// Handle runs one message through the claim protocol.
func (b *Bridge) Handle(ctx context.Context, body []byte) Outcome {
	started := time.Now()
	outcome := b.handle(ctx, body)
	b.metrics.ObserveMessage(string(outcome), started)
	return outcome
}

func (b *Bridge) handle(ctx context.Context, body []byte) Outcome {
	msg, err := DecodeMessage(body)
	if err != nil {
		b.logger.Error("malformed job message", zap.Error(err), zap.ByteString("body", body))
		return OutcomeMalformed
	}

	logger := b.logger.With(
		zap.Int64("entity_id", msg.EntityID),
		zap.String("collect_uid", msg.CollectUID),
	)

	if err := b.store.IncreaseAttempts(ctx, b.entity, msg.EntityID, msg.CollectUID); err != nil {
		logger.Error("increase attempts failed", zap.Error(err))
		return OutcomeFailed
	}

	tx, err := b.beginner.Begin(ctx)
	if err != nil {
		logger.Error("begin job transaction failed", zap.Error(err))
		return OutcomeFailed
	}

	task, err := b.store.ReadTaskAndLockRow(ctx, tx, b.entity, msg.EntityID, msg.CollectUID)
	if err != nil {
		b.rollback(ctx, tx, logger)
		logger.Error("lock task failed", zap.Error(err))
		return OutcomeFailed
	}
	if task == nil {
		if err := tx.Commit(ctx); err != nil {
			logger.Error("commit skipped claim failed", zap.Error(err))
			return OutcomeFailed
		}
		logger.Warn("task not claimed, message dropped")
		return OutcomeClaimSkipped
	}
	if task.Status != model.TaskNotProcessed {
		if err := tx.Commit(ctx); err != nil {
			logger.Error("commit handled claim failed", zap.Error(err))
			return OutcomeFailed
		}
		logger.Info("task already handled", zap.String("status", string(task.Status)))
		return OutcomeAlreadyHandled
	}

	ok, err := b.processor.Process(ctx, tx, *task)
	if err != nil {
		b.rollback(ctx, tx, logger)
		logger.Error("process task failed", zap.Error(err), zap.Int("attempts", task.Attempts))
		return OutcomeFailed
	}
	if !ok {
		b.rollback(ctx, tx, logger)
		logger.Warn("processor declined task", zap.Int("attempts", task.Attempts))
		return OutcomeFailed
	}

	if err := b.store.SetTaskRecordAsProcessed(ctx, tx, *task); err != nil {
		b.rollback(ctx, tx, logger)
		logger.Error("mark task processed failed", zap.Error(err))
		return OutcomeFailed
	}
	if err := tx.Commit(ctx); err != nil {
		logger.Error("commit job failed", zap.Error(err))
		return OutcomeFailed
	}

	if observer, ok := b.processor.(CommitObserver); ok {
		observer.Committed(ctx, *task)
	}
	logger.Info("task processed")
	return OutcomeProcessed
}

func (b *Bridge) rollback(ctx context.Context, tx storage.Tx, logger *zap.Logger) {
	// the job context may already be canceled
	if err := tx.Rollback(context.WithoutCancel(ctx)); err != nil {
		logger.Warn("rollback failed", zap.Error(err))
	}
}
