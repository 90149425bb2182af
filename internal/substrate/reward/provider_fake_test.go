package reward

import (
	"context"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/chain"
)

// roundSpan is a round covering blocks [first, first+length).
type roundSpan struct {
	current uint32
	first   uint64
	length  uint32
}

// fakeProvider serves chain state derived from block heights.
type fakeProvider struct {
	mu sync.Mutex

	latest      uint64
	spec        uint32
	delay       uint32
	rounds      []roundSpan
	atStake     []chain.CollatorSnapshot
	points      map[chain.AccountID]uint32
	topSets     map[chain.AccountID]chain.Option[[]chain.Bond]
	states      map[chain.AccountID]chain.Option[[]chain.Bond]
	inflation   chain.InflationConfig
	issuance    *big.Int
	staked      *big.Int
	totalPoints uint32
	commission  uint32
	bondInfo    chain.ParachainBondInfo
	events      map[uint64][]chain.StakingEvent
	errs        map[string]error

	stateCalls int
}

func hashOf(height uint64) chain.Hash {
	return chain.Hash(fmt.Sprintf("0x%x", height))
}

func heightOf(h chain.Hash) uint64 {
	v, err := strconv.ParseUint(strings.TrimPrefix(string(h), "0x"), 16, 64)
	if err != nil {
		panic(err)
	}
	return v
}

func (f *fakeProvider) fail(method string) error {
	return f.errs[method]
}

func (f *fakeProvider) BlockHashByHeight(_ context.Context, height uint64) (chain.Hash, error) {
	if err := f.fail("BlockHashByHeight"); err != nil {
		return "", err
	}
	return hashOf(height), nil
}

func (f *fakeProvider) LatestBlockNumber(context.Context) (uint64, error) {
	return f.latest, f.fail("LatestBlockNumber")
}

func (f *fakeProvider) SpecVersion(context.Context, chain.Hash) (uint32, error) {
	return f.spec, f.fail("SpecVersion")
}

func (f *fakeProvider) Timestamp(_ context.Context, at chain.Hash) (time.Time, error) {
	return time.Unix(int64(heightOf(at))*12, 0).UTC(), f.fail("Timestamp")
}

func (f *fakeProvider) RoundInfo(_ context.Context, at chain.Hash) (chain.RoundInfo, error) {
	if err := f.fail("RoundInfo"); err != nil {
		return chain.RoundInfo{}, err
	}
	height := heightOf(at)
	for _, r := range f.rounds {
		if height >= r.first && height < r.first+uint64(r.length) {
			return chain.RoundInfo{Current: r.current, First: r.first, Length: r.length}, nil
		}
	}
	return chain.RoundInfo{}, fmt.Errorf("no round at %d", height)
}

func (f *fakeProvider) RewardPaymentDelay(context.Context, chain.Hash) (uint32, error) {
	return f.delay, f.fail("RewardPaymentDelay")
}

func (f *fakeProvider) AtStake(context.Context, chain.Hash, uint32) ([]chain.CollatorSnapshot, error) {
	return f.atStake, f.fail("AtStake")
}

func (f *fakeProvider) AwardedPoints(_ context.Context, _ chain.Hash, _ uint32, collator chain.AccountID) (uint32, error) {
	return f.points[collator], f.fail("AwardedPoints")
}

func (f *fakeProvider) TopDelegations(_ context.Context, _ chain.Hash, collator chain.AccountID) (chain.Option[[]chain.Bond], error) {
	return f.topSets[collator], f.fail("TopDelegations")
}

func (f *fakeProvider) DelegatorState(_ context.Context, _ chain.Hash, delegator chain.AccountID) (chain.Option[[]chain.Bond], error) {
	f.mu.Lock()
	f.stateCalls++
	f.mu.Unlock()
	return f.states[delegator], f.fail("DelegatorState")
}

func (f *fakeProvider) InflationConfig(context.Context, chain.Hash) (chain.InflationConfig, error) {
	return f.inflation, f.fail("InflationConfig")
}

func (f *fakeProvider) TotalIssuance(context.Context, chain.Hash) (*big.Int, error) {
	return f.issuance, f.fail("TotalIssuance")
}

func (f *fakeProvider) Staked(context.Context, chain.Hash, uint32) (*big.Int, error) {
	return f.staked, f.fail("Staked")
}

func (f *fakeProvider) Points(context.Context, chain.Hash, uint32) (uint32, error) {
	return f.totalPoints, f.fail("Points")
}

func (f *fakeProvider) CollatorCommission(context.Context, chain.Hash) (uint32, error) {
	return f.commission, f.fail("CollatorCommission")
}

func (f *fakeProvider) ParachainBondInfo(context.Context, chain.Hash) (chain.ParachainBondInfo, error) {
	return f.bondInfo, f.fail("ParachainBondInfo")
}

func (f *fakeProvider) StakingEvents(_ context.Context, at chain.Hash) ([]chain.StakingEvent, error) {
	return f.events[heightOf(at)], f.fail("StakingEvents")
}

const (
	collatorA  chain.AccountID = "0xc0"
	delegatorA chain.AccountID = "0xd0"
	delegatorB chain.AccountID = "0xd1"
)

func rewarded(account chain.AccountID, amount int64) chain.StakingEvent {
	return chain.StakingEvent{
		Kind:    chain.EventRewarded,
		Phase:   chain.PhaseInitialization,
		Account: account,
		Amount:  big.NewInt(amount),
	}
}

// syntheticProvider serves one collator (points 100, bond 1000, total 1500) with one delegator (500)
// for round 5, paid out from block 1000 with a staking reward of 1_000_000 and 10% commission.
func syntheticProvider() *fakeProvider {
	return &fakeProvider{
		latest: 1005,
		spec:   2000,
		delay:  2,
		rounds: []roundSpan{
			{current: 4, first: 700, length: 100},
			{current: 5, first: 800, length: 100},
			{current: 6, first: 900, length: 100},
			{current: 7, first: 1000, length: 100},
		},
		atStake: []chain.CollatorSnapshot{
			{
				Collator:    collatorA,
				Bond:        big.NewInt(1000),
				Total:       big.NewInt(1500),
				Delegations: []chain.Bond{{Owner: delegatorA, Amount: big.NewInt(500)}},
			},
		},
		points: map[chain.AccountID]uint32{collatorA: 100},
		topSets: map[chain.AccountID]chain.Option[[]chain.Bond]{
			collatorA: chain.Some([]chain.Bond{{Owner: delegatorA, Amount: big.NewInt(500)}}),
		},
		states: map[chain.AccountID]chain.Option[[]chain.Bond]{
			delegatorA: chain.Some([]chain.Bond{{Owner: collatorA, Amount: big.NewInt(500)}}),
		},
		inflation: chain.InflationConfig{
			Expect: chain.AmountRange{Min: big.NewInt(1000), Ideal: big.NewInt(1500), Max: big.NewInt(2000)},
			Round:  chain.PerbillRange{Min: 500_000, Ideal: 1_000_000, Max: 2_000_000},
		},
		issuance:    big.NewInt(1_000_000_000),
		staked:      big.NewInt(1500),
		totalPoints: 100,
		commission:  100_000_000,
		bondInfo:    chain.ParachainBondInfo{Account: "0xbb", Percent: 30},
		events: map[uint64][]chain.StakingEvent{
			1000: {rewarded(collatorA, 700_000), rewarded(delegatorA, 300_000)},
		},
		errs: map[string]error{},
	}
}
