package clickhouse

import (
	"math/big"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/model"
	"github.com/shopspring/decimal"
)

func testRound(roundID uint32, reward *big.Int) model.Round {
	payout := time.Now().UTC().Truncate(time.Second)
	return model.Round{
		RoundID:           roundID,
		NetworkID:         2,
		PayoutBlockID:     uint64(roundID) * 1800,
		PayoutBlockTime:   payout,
		StartBlockID:      uint64(roundID-1) * 1800,
		StartBlockTime:    payout.Add(-6 * time.Hour),
		TotalReward:       reward,
		TotalStake:        big.NewInt(5_000_000),
		TotalRewardPoints: 400,
		CollatorsCount:    1,
		Runtime:           2801,
	}
}

func (s *RepositorySuite) TestInsertRoundsKeepsLargeAmounts() {
	huge, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	s.Require().True(ok)

	s.metrics.EXPECT().Observe("insert_rounds", gomock.Nil(), gomock.Any()).Times(1)
	s.Require().NoError(s.repo.InsertRounds(s.testCtx, []model.Round{testRound(10, huge)}))

	rows, err := s.repo.conn.Query(s.testCtx,
		`SELECT total_reward FROM staking_rounds FINAL WHERE network_id = ? AND round_id = ?`, uint32(2), uint32(10))
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(rows.Close())
	}()

	var got decimal.Decimal
	s.Require().True(rows.Next())
	s.Require().NoError(rows.Scan(&got))
	s.Equal(huge.String(), got.String())
}

func (s *RepositorySuite) TestReinsertedRoundIsReplaced() {
	s.metrics.EXPECT().Observe("insert_rounds", gomock.Nil(), gomock.Any()).Times(2)

	s.Require().NoError(s.repo.InsertRounds(s.testCtx, []model.Round{testRound(11, big.NewInt(1))}))
	time.Sleep(time.Second)
	s.Require().NoError(s.repo.InsertRounds(s.testCtx, []model.Round{testRound(11, big.NewInt(2))}))

	s.Equal(uint64(1), s.countRows(`SELECT count() FROM staking_rounds FINAL WHERE round_id = ?`, uint32(11)))
}

func (s *RepositorySuite) TestInsertCollatorsAndDelegators() {
	s.metrics.EXPECT().Observe("insert_collators", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("insert_delegators", gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertCollators(s.testCtx, []model.Collator{
		{RoundID: 12, NetworkID: 2, AccountID: "0xc1", OwnStake: big.NewInt(10), TotalStake: big.NewInt(30), DelegatorsCount: 2, TotalReward: big.NewInt(3), CollatorReward: big.NewInt(1), PayoutBlockID: 99},
		{RoundID: 12, NetworkID: 2, AccountID: "0xc2", OwnStake: big.NewInt(10), TotalStake: big.NewInt(10)},
	}))
	s.Require().NoError(s.repo.InsertDelegators(s.testCtx, []model.Delegator{
		{RoundID: 12, NetworkID: 2, AccountID: "0xd1", CollatorID: "0xc1", Amount: big.NewInt(10), FinalAmount: big.NewInt(10), Reward: big.NewInt(1), PayoutBlockID: 99},
		{RoundID: 12, NetworkID: 2, AccountID: "0xd2", CollatorID: "0xc1", Amount: big.NewInt(10), FinalAmount: big.NewInt(10), Reward: big.NewInt(1), PayoutBlockID: 99},
	}))

	s.Equal(uint64(2), s.countRows(`SELECT count() FROM staking_collators WHERE round_id = ?`, uint32(12)))
	s.Equal(uint64(2), s.countRows(`SELECT count() FROM staking_delegators WHERE collator_id = ?`, "0xc1"))
}

func (s *RepositorySuite) TestEmptyInsertsAreNoop() {
	s.metrics.EXPECT().Observe(gomock.Any(), gomock.Nil(), gomock.Any()).Times(3)

	s.Require().NoError(s.repo.InsertRounds(s.testCtx, nil))
	s.Require().NoError(s.repo.InsertCollators(s.testCtx, nil))
	s.Require().NoError(s.repo.InsertDelegators(s.testCtx, nil))
}
