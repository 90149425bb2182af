package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/parastake-indexer/internal/clock"
	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/model"
	"go.uber.org/zap"
)

const (
	defaultMonitorInterval  = time.Minute
	defaultMonitorThreshold = 24 * time.Hour
	defaultMonitorLimit     = 10
	defaultMaxAttempts      = 5
)

// MonitorConfig tunes the task monitor.
type MonitorConfig struct {
	Entity    model.Entity
	Queue     model.Queue
	Interval  time.Duration
	Threshold time.Duration
	Limit     int
	// Replay republishes stuck tasks with their current collect uid.
	Replay bool
	// MaxAttempts stops the replay of a task that already failed that many times.
	MaxAttempts int
}

// TaskMonitor reports tasks that stayed unfinished longer than the threshold
// and, for rounds, round ids that have no stored round.
type TaskMonitor struct {
	source    MonitorSource
	publisher TaskPublisher
	metrics   MonitorMetrics
	cfg       MonitorConfig
	logger    *zap.Logger
}

// NewTaskMonitor builds a TaskMonitor. publisher is only required when cfg.Replay is set.
func NewTaskMonitor(source MonitorSource, publisher TaskPublisher, metrics MonitorMetrics, cfg MonitorConfig, logger *zap.Logger) (*TaskMonitor, error) {
	if source == nil {
		return nil, errors.New("monitor source is required")
	}
	if metrics == nil {
		return nil, errors.New("task monitor metrics is required")
	}
	if cfg.Replay && publisher == nil {
		return nil, errors.New("publisher is required to replay stuck tasks")
	}
	if cfg.Entity == "" {
		cfg.Entity = model.EntityRound
	}
	if cfg.Queue == "" {
		cfg.Queue = model.QueueStaking
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultMonitorInterval
	}
	if cfg.Threshold <= 0 {
		cfg.Threshold = defaultMonitorThreshold
	}
	if cfg.Limit <= 0 {
		cfg.Limit = defaultMonitorLimit
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}

	return &TaskMonitor{
		source:    source,
		publisher: publisher,
		metrics:   metrics,
		cfg:       cfg,
		logger:    logger.Named("taskMonitor").With(zap.String("entity", string(cfg.Entity))),
	}, nil
}

// Run checks for stuck tasks every interval until ctx is canceled.
func (m *TaskMonitor) Run(ctx context.Context) error {
	m.logger.Info("task monitor started",
		zap.Duration("interval", m.cfg.Interval),
		zap.Duration("threshold", m.cfg.Threshold),
	)
	return clock.Repeat(ctx, m.cfg.Interval, m.Check, func(err error) {
		m.logger.Warn("task monitor check failed", zap.Error(err))
	})
}

// Check runs a single scan.
func (m *TaskMonitor) Check(ctx context.Context) (err error) {
	started := time.Now()
	defer func() {
		m.metrics.ObserveCheck(err, started)
	}()

	err = m.checkStuckTasks(ctx)
	if m.cfg.Entity == model.EntityRound {
		err = errors.Join(err, m.checkMissingRounds(ctx))
	}
	return err
}

func (m *TaskMonitor) checkStuckTasks(ctx context.Context) error {
	tasks, err := m.source.StuckTasks(ctx, m.cfg.Entity, m.cfg.Threshold, m.cfg.Limit)
	if err != nil {
		return fmt.Errorf("stuck tasks: %w", err)
	}
	m.metrics.SetStuckTasks(string(m.cfg.Entity), len(tasks))

	var replayErr error
	for _, task := range tasks {
		m.logger.Warn("task is stuck",
			zap.Int64("entityID", task.EntityID),
			zap.String("collectUID", task.CollectUID),
			zap.String("status", string(task.Status)),
			zap.Int("attempts", task.Attempts),
			zap.Time("started", task.StartTimestamp),
		)
		if !m.cfg.Replay || task.Status != model.TaskNotProcessed {
			continue
		}
		if task.Attempts >= m.cfg.MaxAttempts {
			m.logger.Error("stuck task exhausted its attempts, not republished",
				zap.Int64("entityID", task.EntityID),
				zap.Int("attempts", task.Attempts),
			)
			continue
		}
		if err := m.publisher.Publish(ctx, m.cfg.Queue, task); err != nil {
			replayErr = errors.Join(replayErr, err)
			continue
		}
		m.logger.Info("stuck task republished", zap.Int64("entityID", task.EntityID))
	}
	return replayErr
}

func (m *TaskMonitor) checkMissingRounds(ctx context.Context) error {
	missing, err := m.source.MissingRounds(ctx, m.cfg.Limit)
	if err != nil {
		return fmt.Errorf("missing rounds: %w", err)
	}
	m.metrics.SetMissingRounds(len(missing))
	if len(missing) > 0 {
		m.logger.Warn("rounds are missing", zap.Int64s("roundIDs", missing))
	}
	return nil
}
