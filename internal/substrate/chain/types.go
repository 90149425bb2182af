// Package chain defines the read-side view of parachain staking state used by the reward engine.
package chain

import (
	"context"
	"math/big"
	"time"
)

// AccountID is a lowercase 0x-prefixed account hex string.
type AccountID string

// Hash is a 0x-prefixed block hash.
type Hash string

// RoundInfo mirrors the parachainStaking.round storage value.
type RoundInfo struct {
	Current uint32
	First   uint64
	Length  uint32
}

// Bond is a delegation owner and its amount.
type Bond struct {
	Owner  AccountID
	Amount *big.Int
}

// CollatorSnapshot is one parachainStaking.atStake entry of a round.
type CollatorSnapshot struct {
	Collator    AccountID
	Bond        *big.Int
	Total       *big.Int
	Delegations []Bond
}

// AmountRange is a min/ideal/max triple of balances.
type AmountRange struct {
	Min   *big.Int
	Ideal *big.Int
	Max   *big.Int
}

// PerbillRange is a min/ideal/max triple of Perbill numerators.
type PerbillRange struct {
	Min   uint32
	Ideal uint32
	Max   uint32
}

// InflationConfig mirrors parachainStaking.inflationConfig.
type InflationConfig struct {
	Expect AmountRange
	Round  PerbillRange
}

// ParachainBondInfo mirrors parachainStaking.parachainBondInfo. Percent is a Percent numerator.
type ParachainBondInfo struct {
	Account AccountID
	Percent uint8
}

// EventPhase is the execution phase an event was emitted in.
type EventPhase string

const (
	PhaseInitialization EventPhase = "initialization"
	PhaseApplyExtrinsic EventPhase = "apply_extrinsic"
	PhaseFinalization   EventPhase = "finalization"
)

// StakingEventKind names the parachainStaking events the engine reads.
type StakingEventKind string

const (
	EventRewarded                 StakingEventKind = "Rewarded"
	EventReservedForParachainBond StakingEventKind = "ReservedForParachainBond"
)

// StakingEvent is a parachainStaking event of a block carrying an account and an amount.
type StakingEvent struct {
	Kind    StakingEventKind
	Phase   EventPhase
	Account AccountID
	Amount  *big.Int
}

// StateProvider reads chain state at a given block hash.
type StateProvider interface {
	BlockHashByHeight(ctx context.Context, height uint64) (Hash, error)
	LatestBlockNumber(ctx context.Context) (uint64, error)
	SpecVersion(ctx context.Context, at Hash) (uint32, error)
	Timestamp(ctx context.Context, at Hash) (time.Time, error)
	RoundInfo(ctx context.Context, at Hash) (RoundInfo, error)
	RewardPaymentDelay(ctx context.Context, at Hash) (uint32, error)
	AtStake(ctx context.Context, at Hash, round uint32) ([]CollatorSnapshot, error)
	AwardedPoints(ctx context.Context, at Hash, round uint32, collator AccountID) (uint32, error)
	TopDelegations(ctx context.Context, at Hash, collator AccountID) (Option[[]Bond], error)
	DelegatorState(ctx context.Context, at Hash, delegator AccountID) (Option[[]Bond], error)
	InflationConfig(ctx context.Context, at Hash) (InflationConfig, error)
	TotalIssuance(ctx context.Context, at Hash) (*big.Int, error)
	Staked(ctx context.Context, at Hash, round uint32) (*big.Int, error)
	Points(ctx context.Context, at Hash, round uint32) (uint32, error)
	CollatorCommission(ctx context.Context, at Hash) (uint32, error)
	ParachainBondInfo(ctx context.Context, at Hash) (ParachainBondInfo, error)
	// StakingEvents returns parachainStaking events of the block in emission order.
	StakingEvents(ctx context.Context, at Hash) ([]StakingEvent, error)
}
