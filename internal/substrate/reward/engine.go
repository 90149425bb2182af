package reward

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/chain"
	"github.com/goodnatureofminers/parastake-indexer/pkg/workerpool"
	"go.uber.org/zap"
)

// Engine reconstructs round reward distributions from chain state.
type Engine struct {
	provider chain.StateProvider
	metrics  Metrics
	logger   *zap.Logger
	cfg      Config
}

// NewEngine builds an Engine.
func NewEngine(provider chain.StateProvider, metrics Metrics, cfg Config, logger *zap.Logger) (*Engine, error) {
	if provider == nil {
		return nil, errors.New("chain state provider is required")
	}
	if metrics == nil {
		return nil, errors.New("reward engine metrics is required")
	}
	if cfg.RefreshWorkers <= 0 {
		cfg.RefreshWorkers = defaultRefreshWorkers
	}
	switch cfg.Reconciliation {
	case "":
		cfg.Reconciliation = ReconcileWarn
	case ReconcileWarn, ReconcileStrict:
	default:
		return nil, fmt.Errorf("unknown reconciliation mode %q", cfg.Reconciliation)
	}

	return &Engine{
		provider: provider,
		metrics:  metrics,
		logger:   logger.Named("rewardEngine"),
		cfg:      cfg,
	}, nil
}

// anchors are the blocks a round distribution is read at.
type anchors struct {
	latest            uint64
	now               uint64
	first             uint64
	firstHash         chain.Hash
	firstTime         time.Time
	priorRewardedHash chain.Hash
	originalRound     uint32
	originalBlock     uint64
	originalTime      time.Time
	originalPriorHash chain.Hash
	specVersion       uint32
}

// Compute reconstructs the distribution of the round paid out at payoutBlockID.
func (e *Engine) Compute(ctx context.Context, payoutBlockID uint64) (dist *Distribution, err error) {
	started := time.Now()
	defer func() {
		e.metrics.ObserveCompute(err, started)
	}()

	a, err := e.resolveAnchors(ctx, payoutBlockID)
	if err != nil {
		return nil, err
	}
	logger := e.logger.With(
		zap.Uint32("round", a.originalRound),
		zap.Uint64("payout_block", a.first),
		zap.Uint64("start_block", a.originalBlock),
	)
	logger.Info("rounds info", zap.Uint64("now_block", a.now), zap.Uint32("spec_version", a.specVersion))

	originalSpec, err := e.provider.SpecVersion(ctx, a.originalPriorHash)
	if err != nil {
		return nil, fmt.Errorf("read spec version at %d: %w", a.originalBlock-1, err)
	}
	originalCaps := e.cfg.Capabilities.At(originalSpec)
	rewardedCaps := e.cfg.Capabilities.At(a.specVersion)

	snapshot, err := e.loadSnapshot(ctx, a, originalCaps)
	if err != nil {
		return nil, err
	}
	logger.Info("snapshot loaded", zap.Int("collators", len(snapshot.Order)))

	if originalCaps.DelegatorState {
		if err := e.refreshDelegatorAmounts(ctx, a.originalPriorHash, snapshot); err != nil {
			return nil, err
		}
	}

	dist, err = e.distribute(ctx, a, snapshot, rewardedCaps, logger)
	if err != nil {
		return nil, err
	}
	return dist, nil
}

func (e *Engine) resolveAnchors(ctx context.Context, payoutBlockID uint64) (anchors, error) {
	a := anchors{now: payoutBlockID}

	latest, err := e.provider.LatestBlockNumber(ctx)
	if err != nil {
		return a, fmt.Errorf("read latest block: %w", err)
	}
	a.latest = latest

	nowHash, err := e.blockHash(ctx, payoutBlockID)
	if err != nil {
		return a, err
	}
	nowRound, err := e.provider.RoundInfo(ctx, nowHash)
	if err != nil {
		return a, fmt.Errorf("read round at %d: %w", payoutBlockID, err)
	}
	if nowRound.First == 0 {
		return a, fmt.Errorf("round %d at block %d has no first block", nowRound.Current, payoutBlockID)
	}
	a.first = nowRound.First

	if a.firstHash, err = e.blockHash(ctx, a.first); err != nil {
		return a, err
	}
	if a.priorRewardedHash, err = e.blockHash(ctx, a.first-1); err != nil {
		return a, err
	}
	if a.firstTime, err = e.provider.Timestamp(ctx, a.firstHash); err != nil {
		return a, fmt.Errorf("read timestamp at %d: %w", a.first, err)
	}
	if a.specVersion, err = e.provider.SpecVersion(ctx, a.firstHash); err != nil {
		return a, fmt.Errorf("read spec version at %d: %w", a.first, err)
	}

	delay, err := e.provider.RewardPaymentDelay(ctx, a.firstHash)
	if err != nil {
		return a, fmt.Errorf("read reward payment delay at %d: %w", a.first, err)
	}
	rewardRound, err := e.provider.RoundInfo(ctx, a.firstHash)
	if err != nil {
		return a, fmt.Errorf("read round at %d: %w", a.first, err)
	}
	if rewardRound.Current < delay {
		return a, fmt.Errorf("%w: round %d is within the payment delay %d", ErrOriginalRoundNotFound, rewardRound.Current, delay)
	}
	a.originalRound = rewardRound.Current - delay

	if a.originalBlock, err = e.findRoundStart(ctx, a.first, a.originalRound); err != nil {
		return a, err
	}
	if a.originalBlock == 0 {
		return a, fmt.Errorf("%w: round %d starts at genesis", ErrOriginalRoundNotFound, a.originalRound)
	}
	originalHash, err := e.blockHash(ctx, a.originalBlock)
	if err != nil {
		return a, err
	}
	if a.originalTime, err = e.provider.Timestamp(ctx, originalHash); err != nil {
		return a, fmt.Errorf("read timestamp at %d: %w", a.originalBlock, err)
	}
	if a.originalPriorHash, err = e.blockHash(ctx, a.originalBlock-1); err != nil {
		return a, err
	}
	return a, nil
}

// findRoundStart walks back round by round from block until it reaches round.
func (e *Engine) findRoundStart(ctx context.Context, block uint64, round uint32) (uint64, error) {
	for {
		hash, err := e.blockHash(ctx, block)
		if err != nil {
			return 0, err
		}
		info, err := e.provider.RoundInfo(ctx, hash)
		if err != nil {
			return 0, fmt.Errorf("read round at %d: %w", block, err)
		}
		if info.Current == round || uint64(info.Length) > block {
			return block, nil
		}
		if info.Current < round || info.Length == 0 {
			return 0, fmt.Errorf("%w: round %d, block %d is in round %d", ErrOriginalRoundNotFound, round, block, info.Current)
		}
		block -= uint64(info.Length)
	}
}

func (e *Engine) loadSnapshot(ctx context.Context, a anchors, caps chain.Capabilities) (*Snapshot, error) {
	entries, err := e.provider.AtStake(ctx, a.priorRewardedHash, a.originalRound)
	if err != nil {
		return nil, fmt.Errorf("read at stake for round %d: %w", a.originalRound, err)
	}

	snapshot := NewSnapshot()
	for _, entry := range entries {
		points, err := e.provider.AwardedPoints(ctx, a.priorRewardedHash, a.originalRound, entry.Collator)
		if err != nil {
			return nil, fmt.Errorf("read awarded points of %s: %w", entry.Collator, err)
		}

		delegations := entry.Delegations
		if caps.TopDelegations {
			top, err := e.provider.TopDelegations(ctx, a.originalPriorHash, entry.Collator)
			if err != nil {
				return nil, fmt.Errorf("read top delegations of %s: %w", entry.Collator, err)
			}
			delegations = intersectTop(delegations, top)
		}

		snapshot.AddCollator(entry.Collator, entry.Bond, entry.Total, points, delegations)
	}
	return snapshot, nil
}

// intersectTop keeps delegations whose owner is in the top set. An absent top set counts nothing.
func intersectTop(delegations []chain.Bond, top chain.Option[[]chain.Bond]) []chain.Bond {
	topBonds, _ := top.Get()
	owners := make(map[chain.AccountID]struct{}, len(topBonds))
	for _, b := range topBonds {
		owners[b.Owner] = struct{}{}
	}

	counted := make([]chain.Bond, 0, len(delegations))
	for _, d := range delegations {
		if _, ok := owners[d.Owner]; ok {
			counted = append(counted, d)
		}
	}
	return counted
}

// refreshDelegatorAmounts replaces snapshot amounts with delegatorState amounts.
// Each worker writes only the entries of its own delegator.
func (e *Engine) refreshDelegatorAmounts(ctx context.Context, at chain.Hash, snapshot *Snapshot) error {
	ids := snapshot.DelegatorIDs()
	if len(ids) == 0 {
		return nil
	}

	err := workerpool.Process(ctx, e.cfg.RefreshWorkers, ids, func(ctx context.Context, id chain.AccountID) error {
		state, err := e.provider.DelegatorState(ctx, at, id)
		if err != nil {
			return fmt.Errorf("read delegator state of %s: %w", id, err)
		}
		bonds, ok := state.Get()
		if !ok {
			return nil
		}
		for _, b := range bonds {
			sv, ok := snapshot.Collators[b.Owner]
			if !ok {
				continue
			}
			if stake, ok := sv.Delegators[id]; ok {
				stake.Amount = new(big.Int).Set(b.Amount)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("refresh delegator amounts: %w", err)
	}
	return nil
}

func (e *Engine) distribute(ctx context.Context, a anchors, snapshot *Snapshot, caps chain.Capabilities, logger *zap.Logger) (*Distribution, error) {
	at := a.priorRewardedHash

	bondInfo, err := e.provider.ParachainBondInfo(ctx, at)
	if err != nil {
		return nil, fmt.Errorf("read parachain bond info: %w", err)
	}
	totalStaked, err := e.provider.Staked(ctx, at, a.originalRound)
	if err != nil {
		return nil, fmt.Errorf("read staked: %w", err)
	}
	totalPoints, err := e.provider.Points(ctx, at, a.originalRound)
	if err != nil {
		return nil, fmt.Errorf("read points: %w", err)
	}
	inflation, err := e.provider.InflationConfig(ctx, at)
	if err != nil {
		return nil, fmt.Errorf("read inflation config: %w", err)
	}
	totalIssuance, err := e.provider.TotalIssuance(ctx, at)
	if err != nil {
		return nil, fmt.Errorf("read total issuance: %w", err)
	}
	commission, err := e.provider.CollatorCommission(ctx, at)
	if err != nil {
		return nil, fmt.Errorf("read collator commission: %w", err)
	}

	issuance := RoundIssuance(inflation, totalStaked, totalIssuance)
	commissionPool, bondRewardPool := CommissionSplit(issuance, commission)

	dist := &Distribution{
		RoundID:                         a.originalRound,
		PayoutBlockID:                   a.first,
		PayoutBlockTime:                 a.firstTime,
		StartBlockID:                    a.originalBlock,
		StartBlockTime:                  a.originalTime,
		SpecVersion:                     a.specVersion,
		TotalPoints:                     totalPoints,
		TotalStaked:                     totalStaked,
		RoundIssuance:                   issuance,
		CollatorCommissionPool:          commissionPool,
		BondRewardPool:                  bondRewardPool,
		TotalCollatorShare:              new(big.Int),
		TotalCollatorCommissionRewarded: new(big.Int),
		TotalRewardedAmount:             new(big.Int),
		TotalBondRewarded:               new(big.Int),
		Snapshot:                        snapshot,
	}
	reconcile := e.reconciler(dist, logger)

	firstEvents, err := e.provider.StakingEvents(ctx, a.firstHash)
	if err != nil {
		return nil, fmt.Errorf("read events at %d: %w", a.first, err)
	}
	reserved := reservedForParachainBond(firstEvents)
	stakingReward, treasuryShare := StakingReward(issuance, bondInfo.Percent, reserved)
	if reserved.Sign() != 0 {
		if err := reconcile("parachain_bond", bondInfo.Account, reserved, treasuryShare); err != nil {
			return nil, err
		}
	}
	dist.TotalStakingReward = stakingReward

	d := &distributor{
		snapshot:           snapshot,
		totalPoints:        new(big.Int).SetUint64(uint64(totalPoints)),
		totalStakingReward: stakingReward,
		commissionPool:     commissionPool,
		lossAccounting:     caps.BondRewardLossAccounting,
		reconcile:          reconcile,
	}
	if caps.BondRewardLossAccounting {
		dist.EstimatedBondRewardLoss = new(big.Int)
		dist.ActualBondRewardLoss = new(big.Int)
	}

	checks := maxRoundChecks(a.latest, a.now, snapshot.AwardedCount(), caps.SinglePayoutBlock)
	logger.Info("verifying payout blocks", zap.Uint64("blocks", checks), zap.Int("awarded", snapshot.AwardedCount()))

	for i := uint64(0); i < checks; i++ {
		blockID := a.first + i
		credits, err := e.blockCredits(ctx, blockID, firstEvents, i == 0)
		if err != nil {
			return nil, err
		}
		payouts, err := d.distributeBlock(credits)
		if err != nil {
			return nil, err
		}
		for _, p := range payouts {
			dist.TotalCollatorShare.Add(dist.TotalCollatorShare, p.PointsShare.Parts())
			dist.TotalCollatorCommissionRewarded.Add(dist.TotalCollatorCommissionRewarded, p.CommissionReward)
			dist.TotalRewardedAmount.Add(dist.TotalRewardedAmount, p.TotalCredited)
			dist.TotalBondRewarded.Add(dist.TotalBondRewarded, p.DistributedBondReward)
			if caps.BondRewardLossAccounting {
				dist.EstimatedBondRewardLoss.Add(dist.EstimatedBondRewardLoss, p.EstimatedBondRewardLoss)
				dist.ActualBondRewardLoss.Add(dist.ActualBondRewardLoss, p.ActualBondRewardLoss)
			}
		}
	}

	return dist, nil
}

func (e *Engine) blockCredits(ctx context.Context, blockID uint64, firstEvents []chain.StakingEvent, isFirst bool) (BlockCredits, error) {
	hash, err := e.blockHash(ctx, blockID)
	if err != nil {
		return BlockCredits{}, err
	}
	blockTime, err := e.provider.Timestamp(ctx, hash)
	if err != nil {
		return BlockCredits{}, fmt.Errorf("read timestamp at %d: %w", blockID, err)
	}

	events := firstEvents
	if !isFirst {
		if events, err = e.provider.StakingEvents(ctx, hash); err != nil {
			return BlockCredits{}, fmt.Errorf("read events at %d: %w", blockID, err)
		}
	}
	return BlockCredits{BlockID: blockID, BlockTime: blockTime, Credits: dedupeCredits(events)}, nil
}

func (e *Engine) reconciler(dist *Distribution, logger *zap.Logger) reconcileFunc {
	return func(kind string, account chain.AccountID, credited, expected *big.Int) error {
		if credited.Cmp(expected) == 0 {
			return nil
		}
		diff := new(big.Int).Sub(credited, expected)
		if e.cfg.Reconciliation == ReconcileStrict {
			return fmt.Errorf("%w: %s %s credited %s, expected %s", ErrMismatch, kind, account, credited, expected)
		}
		dist.Mismatches++
		e.metrics.ObserveMismatch(kind)
		logger.Warn("credited amount differs from computed reward",
			zap.String("kind", kind),
			zap.String("account", string(account)),
			zap.String("credited", credited.String()),
			zap.String("expected", expected.String()),
			zap.String("difference", diff.String()),
		)
		return nil
	}
}

func (e *Engine) blockHash(ctx context.Context, height uint64) (chain.Hash, error) {
	hash, err := e.provider.BlockHashByHeight(ctx, height)
	if err != nil {
		return "", fmt.Errorf("get block hash %d: %w", height, err)
	}
	return hash, nil
}

func reservedForParachainBond(events []chain.StakingEvent) *big.Int {
	for _, ev := range events {
		if ev.Phase == chain.PhaseInitialization && ev.Kind == chain.EventReservedForParachainBond && ev.Amount != nil {
			return new(big.Int).Set(ev.Amount)
		}
	}
	return new(big.Int)
}

// maxRoundChecks is the number of blocks scanned for Rewarded events after the first payout block.
func maxRoundChecks(latest, now uint64, awarded int, single bool) uint64 {
	if latest < now || awarded <= 0 {
		return 0
	}
	checks := latest - now + 1
	if uint64(awarded) < checks {
		checks = uint64(awarded)
	}
	if single && checks > 1 {
		checks = 1
	}
	return checks
}
