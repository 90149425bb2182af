package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/model"
	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/reward"
	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/storage"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RewardEngine interface {
		Compute(ctx context.Context, payoutBlockID uint64) (*reward.Distribution, error)
	}

	// StakingRepository writes the rows of a round inside the job transaction.
	StakingRepository interface {
		FindRoundStartBlockID(ctx context.Context, tx storage.Tx, roundID uint32) (uint64, error)
		SaveRound(ctx context.Context, tx storage.Tx, round model.Round) error
		SaveCollator(ctx context.Context, tx storage.Tx, collator model.Collator) error
		SaveDelegator(ctx context.Context, tx storage.Tx, delegator model.Delegator) error
	}

	// RoundExporter receives the rows of committed rounds.
	RoundExporter interface {
		Export(ctx context.Context, rows RoundRows) error
	}

	MirrorRepository interface {
		InsertRounds(ctx context.Context, rounds []model.Round) error
		InsertCollators(ctx context.Context, collators []model.Collator) error
		InsertDelegators(ctx context.Context, delegators []model.Delegator) error
	}

	ExporterMetrics interface {
		ObserveExport(err error, rounds int, started time.Time)
	}

	// MonitorSource reports gaps in the task and round ledgers.
	MonitorSource interface {
		StuckTasks(ctx context.Context, entity model.Entity, olderThan time.Duration, limit int) ([]model.ProcessingTask, error)
		MissingRounds(ctx context.Context, limit int) ([]int64, error)
	}

	TaskPublisher interface {
		Publish(ctx context.Context, queue model.Queue, task model.ProcessingTask) error
	}

	MonitorMetrics interface {
		SetStuckTasks(entity string, count int)
		SetMissingRounds(count int)
		ObserveCheck(err error, started time.Time)
	}

	// TaskAdminStore is the part of the task ledger used by operators.
	TaskAdminStore interface {
		FindLastEntityID(ctx context.Context, entity model.Entity) (int64, error)
		AddProcessingTask(ctx context.Context, task model.ProcessingTask) (bool, error)
		GetUnprocessedTasks(ctx context.Context, entity model.Entity, afterID int64) ([]model.ProcessingTask, error)
		GetUnprocessedTask(ctx context.Context, entity model.Entity, entityID int64) (*model.ProcessingTask, error)
		ResetTask(ctx context.Context, entity model.Entity, entityID int64, collectUID string) (*model.ProcessingTask, error)
	}
)

// RoundRows are the persisted rows of one round.
type RoundRows struct {
	Round      model.Round
	Collators  []model.Collator
	Delegators []model.Delegator
}
