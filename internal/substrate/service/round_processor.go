package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/model"
	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/storage"
	"github.com/goodnatureofminers/parastake-indexer/pkg/safe"
	"go.uber.org/zap"
)

var (
	errMissingPayoutBlock = errors.New("round task has no payout_block_id")
	// ErrPayoutOutsideWindow is returned when the payout block does not follow the previous round's payout block.
	ErrPayoutOutsideWindow = errors.New("payout block is not after the previous round payout")
	// ErrRoundMismatch is returned when the payout block rewards a different round than the task names.
	ErrRoundMismatch = errors.New("payout block rewards another round")
)

// RoundProcessor computes and stores the reward distribution of a round task.
type RoundProcessor struct {
	engine   RewardEngine
	repo     StakingRepository
	exporter RoundExporter
	network  model.Network
	logger   *zap.Logger

	mu sync.Mutex
	// pending holds rows written by Process until the bridge reports the commit, keyed by task row id.
	pending map[int64]RoundRows
}

// NewRoundProcessor builds a RoundProcessor. exporter may be nil.
func NewRoundProcessor(
	engine RewardEngine,
	repo StakingRepository,
	exporter RoundExporter,
	network model.Network,
	logger *zap.Logger,
) (*RoundProcessor, error) {
	if engine == nil {
		return nil, errors.New("reward engine is required")
	}
	if repo == nil {
		return nil, errors.New("staking repository is required")
	}

	return &RoundProcessor{
		engine:   engine,
		repo:     repo,
		exporter: exporter,
		network:  network,
		logger:   logger.Named("roundProcessor"),
		pending:  make(map[int64]RoundRows),
	}, nil
}

// Process writes the round, every snapshot collator and every counted delegation in tx.
func (p *RoundProcessor) Process(ctx context.Context, tx storage.Tx, task model.ProcessingTask) (bool, error) {
	p.forget(task.RowID)

	data, err := task.RoundData()
	if err != nil {
		return false, err
	}
	if data.PayoutBlockID == 0 {
		return false, errMissingPayoutBlock
	}

	roundID, err := safe.Uint32(task.EntityID)
	if err != nil {
		return false, fmt.Errorf("round id %d: %w", task.EntityID, err)
	}

	previousPayout, err := p.repo.FindRoundStartBlockID(ctx, tx, roundID)
	if err != nil {
		return false, fmt.Errorf("find start block of round %d: %w", roundID, err)
	}
	if previousPayout != 0 && data.PayoutBlockID <= previousPayout {
		return false, fmt.Errorf("%w: round %d payout %d, previous payout %d",
			ErrPayoutOutsideWindow, roundID, data.PayoutBlockID, previousPayout)
	}

	dist, err := p.engine.Compute(ctx, data.PayoutBlockID)
	if err != nil {
		return false, fmt.Errorf("compute round %d: %w", roundID, err)
	}
	if dist.RoundID != roundID {
		return false, fmt.Errorf("%w: task round %d, payout block %d rewards round %d",
			ErrRoundMismatch, roundID, data.PayoutBlockID, dist.RoundID)
	}

	round, collators, delegators := dist.Rows(p.network.ID)
	if err := p.repo.SaveRound(ctx, tx, round); err != nil {
		return false, fmt.Errorf("save round %d: %w", roundID, err)
	}
	for _, c := range collators {
		if err := p.repo.SaveCollator(ctx, tx, c); err != nil {
			return false, fmt.Errorf("save collator %s of round %d: %w", c.AccountID, roundID, err)
		}
	}
	for _, d := range delegators {
		if err := p.repo.SaveDelegator(ctx, tx, d); err != nil {
			return false, fmt.Errorf("save delegator %s of round %d: %w", d.AccountID, roundID, err)
		}
	}

	p.logger.Info("round processed",
		zap.Uint32("round", roundID),
		zap.Uint64("payoutBlock", data.PayoutBlockID),
		zap.Int("collators", len(collators)),
		zap.Int("delegators", len(delegators)),
		zap.Int("mismatches", dist.Mismatches),
	)

	if p.exporter != nil {
		p.mu.Lock()
		p.pending[task.RowID] = RoundRows{Round: round, Collators: collators, Delegators: delegators}
		p.mu.Unlock()
	}
	return true, nil
}

// Committed hands the rows of a committed round to the exporter.
func (p *RoundProcessor) Committed(ctx context.Context, task model.ProcessingTask) {
	p.mu.Lock()
	rows, ok := p.pending[task.RowID]
	delete(p.pending, task.RowID)
	p.mu.Unlock()

	if !ok || p.exporter == nil {
		return
	}
	if err := p.exporter.Export(ctx, rows); err != nil {
		p.logger.Warn("round not exported",
			zap.Uint32("round", rows.Round.RoundID),
			zap.Error(err),
		)
	}
}

func (p *RoundProcessor) forget(rowID int64) {
	p.mu.Lock()
	delete(p.pending, rowID)
	p.mu.Unlock()
}
