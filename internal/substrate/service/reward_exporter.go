package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/model"
	"github.com/goodnatureofminers/parastake-indexer/pkg/batcher"
	"go.uber.org/zap"
)

const (
	defaultExportBatchSize     = 16
	defaultExportFlushInterval = 5 * time.Second
	defaultExportRPS           = 10
)

// ExporterConfig tunes the reward exporter batching.
type ExporterConfig struct {
	BatchSize     int
	FlushInterval time.Duration
	RPS           int
}

// RewardExporter mirrors committed rounds into the analytics store.
type RewardExporter struct {
	repo    MirrorRepository
	metrics ExporterMetrics
	batcher *batcher.Batcher[RoundRows]
	logger  *zap.Logger
}

// NewRewardExporter builds a RewardExporter. Zero cfg fields take their defaults.
func NewRewardExporter(repo MirrorRepository, metrics ExporterMetrics, cfg ExporterConfig, logger *zap.Logger) (*RewardExporter, error) {
	if repo == nil {
		return nil, errors.New("mirror repository is required")
	}
	if metrics == nil {
		return nil, errors.New("exporter metrics is required")
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultExportBatchSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = defaultExportFlushInterval
	}
	if cfg.RPS <= 0 {
		cfg.RPS = defaultExportRPS
	}

	e := &RewardExporter{
		repo:    repo,
		metrics: metrics,
		logger:  logger.Named("rewardExporter"),
	}
	b, err := batcher.New[RoundRows](batcher.Config{
		Size:     cfg.BatchSize,
		Interval: cfg.FlushInterval,
		RPS:      cfg.RPS,
	}, e.flush, e.logger.Named("batcher"))
	if err != nil {
		return nil, err
	}
	e.batcher = b
	return e, nil
}

// Start runs the batching loop until ctx is canceled or Stop is called.
func (e *RewardExporter) Start(ctx context.Context) {
	e.batcher.Start(ctx)
}

// Stop flushes buffered rounds.
func (e *RewardExporter) Stop() {
	e.batcher.Stop()
}

// Export queues the rows of a committed round.
func (e *RewardExporter) Export(ctx context.Context, rows RoundRows) error {
	return e.batcher.Add(ctx, rows)
}

// flush writes rounds last so a visible round implies its collators and delegators are present.
func (e *RewardExporter) flush(ctx context.Context, batch []RoundRows) (err error) {
	started := time.Now()
	defer func() {
		e.metrics.ObserveExport(err, len(batch), started)
	}()

	rounds := make([]model.Round, 0, len(batch))
	var (
		collators  []model.Collator
		delegators []model.Delegator
	)
	for _, rows := range batch {
		rounds = append(rounds, rows.Round)
		collators = append(collators, rows.Collators...)
		delegators = append(delegators, rows.Delegators...)
	}

	if len(delegators) > 0 {
		if err = e.repo.InsertDelegators(ctx, delegators); err != nil {
			return fmt.Errorf("insert delegators: %w", err)
		}
	}
	if len(collators) > 0 {
		if err = e.repo.InsertCollators(ctx, collators); err != nil {
			return fmt.Errorf("insert collators: %w", err)
		}
	}
	if err = e.repo.InsertRounds(ctx, rounds); err != nil {
		return fmt.Errorf("insert rounds: %w", err)
	}

	e.logger.Debug("rounds exported", zap.Int("rounds", len(rounds)), zap.Int("delegators", len(delegators)))
	return nil
}
