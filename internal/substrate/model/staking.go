package model

import (
	"math/big"
	"time"
)

// Round is the aggregate result of one payout round.
type Round struct {
	RoundID                  uint32
	NetworkID                int
	PayoutBlockID            uint64
	PayoutBlockTime          time.Time
	StartBlockID             uint64
	StartBlockTime           time.Time
	TotalReward              *big.Int
	TotalStake               *big.Int
	TotalRewardPoints        uint32
	CollatorsCount           int
	Runtime                  uint32
	TotalCollatorCommission  *big.Int
	TotalBondReward          *big.Int
	EstimatedBondRewardLoss  *big.Int
	ActualBondRewardLoss     *big.Int
	ReconciliationMismatches int
}

// Collator is a collator's stake and reward within a round.
type Collator struct {
	RoundID           uint32
	NetworkID         int
	AccountID         string
	OwnStake          *big.Int
	TotalStake        *big.Int
	DelegatorsCount   int
	TotalRewardPoints uint32
	TotalReward       *big.Int
	CollatorReward    *big.Int
	// PayoutBlockID is zero when the collator was not paid in the round window.
	PayoutBlockID   uint64
	PayoutBlockTime *time.Time
}

// Delegator is a delegation's stake and reward within a round.
type Delegator struct {
	RoundID         uint32
	NetworkID       int
	AccountID       string
	CollatorID      string
	Amount          *big.Int
	FinalAmount     *big.Int
	Reward          *big.Int
	PayoutBlockID   uint64
	PayoutBlockTime *time.Time
}
