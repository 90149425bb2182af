// Package reward reconstructs the reward distribution of a parachain staking round.
package reward

import (
	"errors"
	"math/big"
	"time"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/chain"
	"github.com/goodnatureofminers/parastake-indexer/pkg/perthing"
)

var (
	// ErrInvalidKey is returned for a credited account that is neither a collator nor a delegator of the paid collator.
	ErrInvalidKey = errors.New("invalid key")
	// ErrDelegatorBeforeCollator is returned when a delegator is credited before any collator of the block.
	ErrDelegatorBeforeCollator = errors.New("collator was not paid before the delegator")
	// ErrMismatch is returned in strict reconciliation mode when a credited amount differs from the computed one.
	ErrMismatch = errors.New("reward reconciliation mismatch")
	// ErrOriginalRoundNotFound is returned when walking back from the payout round cannot reach the rewarded round.
	ErrOriginalRoundNotFound = errors.New("original round block not found")
)

// ReconciliationMode selects how credited/computed differences are handled.
type ReconciliationMode string

const (
	// ReconcileWarn logs and counts mismatches.
	ReconcileWarn ReconciliationMode = "warn"
	// ReconcileStrict fails the round on the first mismatch.
	ReconcileStrict ReconciliationMode = "strict"
)

const defaultRefreshWorkers = 50

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Metrics records engine outcomes.
type Metrics interface {
	ObserveCompute(err error, started time.Time)
	ObserveMismatch(kind string)
}

// Config tunes the engine.
type Config struct {
	// RefreshWorkers bounds concurrent delegatorState reads. Defaults to 50.
	RefreshWorkers int
	Reconciliation ReconciliationMode
	Capabilities   chain.CapabilityTable
}

// DelegatorStake is a delegation counted in a collator snapshot.
type DelegatorStake struct {
	ID chain.AccountID
	// Amount is refreshed from delegatorState when available.
	Amount *big.Int
	// FinalAmount is the amount recorded in the snapshot.
	FinalAmount *big.Int
	Reward      *big.Int
}

// StakedValue is the working set of one collator.
type StakedValue struct {
	ID         chain.AccountID
	Bond       *big.Int
	Total      *big.Int
	Points     uint32
	Delegators map[chain.AccountID]*DelegatorStake
	// DelegatorOrder keeps snapshot order of Delegators.
	DelegatorOrder []chain.AccountID
	Payout         *CollatorPayout
}

// Snapshot holds the staked value of every collator of a round.
type Snapshot struct {
	Collators map[chain.AccountID]*StakedValue
	// Order keeps atStake order of Collators.
	Order      []chain.AccountID
	delegators map[chain.AccountID]struct{}
}

// NewSnapshot returns an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Collators:  make(map[chain.AccountID]*StakedValue),
		delegators: make(map[chain.AccountID]struct{}),
	}
}

// AddCollator registers a collator and its counted delegations.
func (s *Snapshot) AddCollator(id chain.AccountID, bond, total *big.Int, points uint32, delegations []chain.Bond) *StakedValue {
	sv := &StakedValue{
		ID:         id,
		Bond:       new(big.Int).Set(bond),
		Total:      new(big.Int).Set(total),
		Points:     points,
		Delegators: make(map[chain.AccountID]*DelegatorStake, len(delegations)),
	}
	for _, d := range delegations {
		if _, ok := sv.Delegators[d.Owner]; !ok {
			sv.DelegatorOrder = append(sv.DelegatorOrder, d.Owner)
		}
		sv.Delegators[d.Owner] = &DelegatorStake{
			ID:          d.Owner,
			Amount:      new(big.Int).Set(d.Amount),
			FinalAmount: new(big.Int).Set(d.Amount),
			Reward:      new(big.Int),
		}
		s.delegators[d.Owner] = struct{}{}
	}
	if _, ok := s.Collators[id]; !ok {
		s.Order = append(s.Order, id)
	}
	s.Collators[id] = sv
	return sv
}

// IsDelegator reports whether the account delegates to any collator of the snapshot.
func (s *Snapshot) IsDelegator(id chain.AccountID) bool {
	_, ok := s.delegators[id]
	return ok
}

// DelegatorIDs returns every delegator of the snapshot once, in first-seen order.
func (s *Snapshot) DelegatorIDs() []chain.AccountID {
	seen := make(map[chain.AccountID]struct{}, len(s.delegators))
	ids := make([]chain.AccountID, 0, len(s.delegators))
	for _, c := range s.Order {
		for _, d := range s.Collators[c].DelegatorOrder {
			if _, ok := seen[d]; ok {
				continue
			}
			seen[d] = struct{}{}
			ids = append(ids, d)
		}
	}
	return ids
}

// AwardedCount is the number of collators with reward points in the round.
func (s *Snapshot) AwardedCount() int {
	n := 0
	for _, sv := range s.Collators {
		if sv.Points > 0 {
			n++
		}
	}
	return n
}

// Credit is one Rewarded event.
type Credit struct {
	Account chain.AccountID
	Amount  *big.Int
}

// BlockCredits are the deduplicated Rewarded events of a payout block in emission order.
type BlockCredits struct {
	BlockID   uint64
	BlockTime time.Time
	Credits   []Credit
}

// DelegatorPayout is the computed reward of a delegator.
type DelegatorPayout struct {
	Delegator chain.AccountID
	Credited  *big.Int
	Reward    *big.Int
}

// CollatorPayout is the computed reward breakdown of a collator paid in the round window.
type CollatorPayout struct {
	Collator         chain.AccountID
	PayoutBlockID    uint64
	PayoutBlockTime  time.Time
	PointsShare      perthing.Perthing
	GrossReward      *big.Int
	CommissionReward *big.Int
	BondReward       *big.Int
	OwnBondReward    *big.Int
	// Credited is the collator's own Rewarded amount.
	Credited *big.Int
	// TotalCredited sums the collator and its delegators' Rewarded amounts.
	TotalCredited *big.Int
	// DistributedBondReward sums the collator and delegator shares of BondReward.
	DistributedBondReward   *big.Int
	EstimatedBondRewardLoss *big.Int
	ActualBondRewardLoss    *big.Int
	Delegators              []DelegatorPayout
}

// Distribution is the reconstructed reward distribution of a round.
type Distribution struct {
	RoundID         uint32
	PayoutBlockID   uint64
	PayoutBlockTime time.Time
	StartBlockID    uint64
	StartBlockTime  time.Time
	SpecVersion     uint32

	TotalPoints            uint32
	TotalStaked            *big.Int
	RoundIssuance          *big.Int
	CollatorCommissionPool *big.Int
	BondRewardPool         *big.Int
	TotalStakingReward     *big.Int

	TotalCollatorShare              *big.Int
	TotalCollatorCommissionRewarded *big.Int
	TotalRewardedAmount             *big.Int
	TotalBondRewarded               *big.Int
	EstimatedBondRewardLoss         *big.Int
	ActualBondRewardLoss            *big.Int
	Mismatches                      int

	Snapshot *Snapshot
}
