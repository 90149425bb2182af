// Package chainstate reads parachain staking state from a Substrate node and a Substrate API Sidecar.
package chainstate

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/chain"
	"github.com/goodnatureofminers/parastake-indexer/pkg/workerpool"
	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	stakingPallet = "parachainStaking"
	keysPageSize  = 1000

	defaultHashCacheSize = 4096
	defaultSidecarRPS    = 50
	defaultWorkers       = 8
	defaultHTTPTimeout   = 30 * time.Second
)

// Config configures the node and Sidecar endpoints.
type Config struct {
	NodeURL       string
	SidecarURL    string
	SidecarRPS    int
	Workers       int
	HashCacheSize int
	HTTPTimeout   time.Duration
}

// Client implements chain.StateProvider.
type Client struct {
	node     NodeRPC
	sidecar  *sidecar
	hashes   *lru.Cache
	workers  int
	pageSize int
	metrics  Metrics
	logger   *zap.Logger
}

var _ chain.StateProvider = (*Client)(nil)

// Dial connects to the node JSON-RPC endpoint and builds a Client.
func Dial(ctx context.Context, cfg Config, metrics Metrics, logger *zap.Logger) (*Client, error) {
	node, err := rpc.DialContext(ctx, cfg.NodeURL)
	if err != nil {
		return nil, fmt.Errorf("dial node %s: %w", cfg.NodeURL, err)
	}
	c, err := NewClient(node, cfg, metrics, logger)
	if err != nil {
		node.Close()
		return nil, err
	}
	return c, nil
}

// NewClient builds a Client over an existing node connection.
func NewClient(node NodeRPC, cfg Config, metrics Metrics, logger *zap.Logger) (*Client, error) {
	if metrics == nil {
		return nil, errors.New("chain client metrics is required")
	}
	base, err := url.Parse(cfg.SidecarURL)
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("invalid sidecar url %q", cfg.SidecarURL)
	}
	if cfg.SidecarRPS <= 0 {
		cfg.SidecarRPS = defaultSidecarRPS
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	if cfg.HashCacheSize <= 0 {
		cfg.HashCacheSize = defaultHashCacheSize
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}

	hashes, err := lru.New(cfg.HashCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create hash cache: %w", err)
	}

	return &Client{
		node: node,
		sidecar: &sidecar{
			base:    base,
			http:    &http.Client{Timeout: cfg.HTTPTimeout},
			limiter: ratelimit.New(cfg.SidecarRPS),
		},
		hashes:   hashes,
		workers:  cfg.Workers,
		pageSize: keysPageSize,
		metrics:  metrics,
		logger:   logger.Named("chainClient"),
	}, nil
}

// Close closes the node connection.
func (c *Client) Close() {
	c.node.Close()
}

// BlockHashByHeight returns the canonical hash of the block.
func (c *Client) BlockHashByHeight(ctx context.Context, height uint64) (hash chain.Hash, err error) {
	if cached, ok := c.hashes.Get(height); ok {
		return cached.(chain.Hash), nil
	}

	started := time.Now()
	defer func() {
		c.metrics.Observe("block_hash", err, started)
	}()

	var result *string
	if err = c.node.CallContext(ctx, &result, "chain_getBlockHash", height); err != nil {
		return "", fmt.Errorf("chain_getBlockHash %d: %w", height, err)
	}
	if result == nil || *result == "" {
		err = fmt.Errorf("block %d: %w", height, ErrNotFound)
		return "", err
	}

	hash = chain.Hash(*result)
	c.hashes.Add(height, hash)
	return hash, nil
}

// LatestBlockNumber returns the height of the finalized head.
func (c *Client) LatestBlockNumber(ctx context.Context) (height uint64, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("latest_block_number", err, started)
	}()

	var head string
	if err = c.node.CallContext(ctx, &head, "chain_getFinalizedHead"); err != nil {
		return 0, fmt.Errorf("chain_getFinalizedHead: %w", err)
	}
	var header struct {
		Number hexutil.Uint64 `json:"number"`
	}
	if err = c.node.CallContext(ctx, &header, "chain_getHeader", head); err != nil {
		return 0, fmt.Errorf("chain_getHeader %s: %w", head, err)
	}
	return uint64(header.Number), nil
}

// SpecVersion returns the runtime spec version at the block.
func (c *Client) SpecVersion(ctx context.Context, at chain.Hash) (version uint32, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("spec_version", err, started)
	}()

	var spec specJSON
	if err = c.sidecar.get(ctx, "runtime/spec", url.Values{"at": {string(at)}}, &spec); err != nil {
		return 0, err
	}
	return spec.SpecVersion.uint32()
}

// Timestamp returns Timestamp.Now at the block.
func (c *Client) Timestamp(ctx context.Context, at chain.Hash) (ts time.Time, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("timestamp", err, started)
	}()

	var ms number
	if err = c.mustStorage(ctx, at, "timestamp", "now", &ms); err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(int64(ms)).UTC(), nil
}

// RoundInfo returns the parachainStaking round at the block.
func (c *Client) RoundInfo(ctx context.Context, at chain.Hash) (info chain.RoundInfo, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("round_info", err, started)
	}()

	var round roundJSON
	if err = c.mustStorage(ctx, at, stakingPallet, "round", &round); err != nil {
		return info, err
	}
	if info.Current, err = round.Current.uint32(); err != nil {
		return info, fmt.Errorf("round current: %w", err)
	}
	if info.Length, err = round.Length.uint32(); err != nil {
		return info, fmt.Errorf("round length: %w", err)
	}
	info.First = uint64(round.First)
	return info, nil
}

// RewardPaymentDelay returns the parachainStaking.rewardPaymentDelay constant at the block.
func (c *Client) RewardPaymentDelay(ctx context.Context, at chain.Hash) (delay uint32, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("reward_payment_delay", err, started)
	}()

	var v number
	if err = c.sidecar.constant(ctx, string(at), stakingPallet, "rewardPaymentDelay", &v); err != nil {
		return 0, err
	}
	return v.uint32()
}

// AtStake returns the collator snapshots of the round in storage key order.
func (c *Client) AtStake(ctx context.Context, at chain.Hash, round uint32) (snapshots []chain.CollatorSnapshot, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("at_stake", err, started)
	}()

	collators, err := c.atStakeCollators(ctx, at, round)
	if err != nil {
		return nil, err
	}

	roundKey := strconv.FormatUint(uint64(round), 10)
	snapshots, err = workerpool.Map(ctx, c.workers, collators, func(ctx context.Context, collator chain.AccountID) (chain.CollatorSnapshot, error) {
		var s snapshotJSON
		if err := c.mustStorage(ctx, at, stakingPallet, "atStake", &s, roundKey, string(collator)); err != nil {
			return chain.CollatorSnapshot{}, fmt.Errorf("at stake of %s: %w", collator, err)
		}
		return chain.CollatorSnapshot{
			Collator:    collator,
			Bond:        s.Bond.big(),
			Total:       s.Total.big(),
			Delegations: bonds(s.Delegations),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	c.logger.Debug("read at stake", zap.Uint32("round", round), zap.Int("collators", len(snapshots)))
	return snapshots, nil
}

// atStakeCollators pages through the AtStake keys of the round.
func (c *Client) atStakeCollators(ctx context.Context, at chain.Hash, round uint32) ([]chain.AccountID, error) {
	prefix := atStakeRoundPrefix(round)

	var (
		collators []chain.AccountID
		startKey  *string
	)
	for {
		var keys []string
		if err := c.node.CallContext(ctx, &keys, "state_getKeysPaged", prefix, c.pageSize, startKey, string(at)); err != nil {
			return nil, fmt.Errorf("state_getKeysPaged: %w", err)
		}
		for _, key := range keys {
			collator, err := accountFromKey(key, prefix)
			if err != nil {
				return nil, err
			}
			collators = append(collators, collator)
		}
		if len(keys) < c.pageSize {
			return collators, nil
		}
		last := keys[len(keys)-1]
		startKey = &last
	}
}

// AwardedPoints returns the points a collator earned in the round.
func (c *Client) AwardedPoints(ctx context.Context, at chain.Hash, round uint32, collator chain.AccountID) (points uint32, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("awarded_points", err, started)
	}()

	var v number
	found, err := c.sidecar.storage(ctx, string(at), stakingPallet, "awardedPts", &v, strconv.FormatUint(uint64(round), 10), string(collator))
	if err != nil || !found {
		return 0, err
	}
	return v.uint32()
}

// TopDelegations returns the top delegations of the collator, if stored.
func (c *Client) TopDelegations(ctx context.Context, at chain.Hash, collator chain.AccountID) (top chain.Option[[]chain.Bond], err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("top_delegations", err, started)
	}()

	var v delegationsJSON
	found, err := c.sidecar.storage(ctx, string(at), stakingPallet, "topDelegations", &v, string(collator))
	if err != nil || !found {
		return chain.None[[]chain.Bond](), err
	}
	return chain.Some(bonds(v.Delegations)), nil
}

// DelegatorState returns the delegations of the delegator, owner being the collator, if stored.
func (c *Client) DelegatorState(ctx context.Context, at chain.Hash, delegator chain.AccountID) (state chain.Option[[]chain.Bond], err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("delegator_state", err, started)
	}()

	var v delegationsJSON
	found, err := c.sidecar.storage(ctx, string(at), stakingPallet, "delegatorState", &v, string(delegator))
	if err != nil || !found {
		return chain.None[[]chain.Bond](), err
	}
	return chain.Some(bonds(v.Delegations)), nil
}

// InflationConfig returns the staking inflation config at the block.
func (c *Client) InflationConfig(ctx context.Context, at chain.Hash) (cfg chain.InflationConfig, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("inflation_config", err, started)
	}()

	var v inflationJSON
	if err = c.mustStorage(ctx, at, stakingPallet, "inflationConfig", &v); err != nil {
		return cfg, err
	}
	cfg.Expect = chain.AmountRange{Min: v.Expect.Min.big(), Ideal: v.Expect.Ideal.big(), Max: v.Expect.Max.big()}
	if cfg.Round.Min, err = v.Round.Min.uint32(); err != nil {
		return cfg, err
	}
	if cfg.Round.Ideal, err = v.Round.Ideal.uint32(); err != nil {
		return cfg, err
	}
	if cfg.Round.Max, err = v.Round.Max.uint32(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// TotalIssuance returns balances.totalIssuance at the block.
func (c *Client) TotalIssuance(ctx context.Context, at chain.Hash) (issuance *big.Int, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("total_issuance", err, started)
	}()

	var v amount
	if err = c.mustStorage(ctx, at, "balances", "totalIssuance", &v); err != nil {
		return nil, err
	}
	return v.big(), nil
}

// Staked returns the total staked snapshot of the round.
func (c *Client) Staked(ctx context.Context, at chain.Hash, round uint32) (staked *big.Int, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("staked", err, started)
	}()

	var v amount
	found, err := c.sidecar.storage(ctx, string(at), stakingPallet, "staked", &v, strconv.FormatUint(uint64(round), 10))
	if err != nil {
		return nil, err
	}
	if !found {
		return new(big.Int), nil
	}
	return v.big(), nil
}

// Points returns the total points awarded in the round.
func (c *Client) Points(ctx context.Context, at chain.Hash, round uint32) (points uint32, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("points", err, started)
	}()

	var v number
	found, err := c.sidecar.storage(ctx, string(at), stakingPallet, "points", &v, strconv.FormatUint(uint64(round), 10))
	if err != nil || !found {
		return 0, err
	}
	return v.uint32()
}

// CollatorCommission returns the commission Perbill numerator.
func (c *Client) CollatorCommission(ctx context.Context, at chain.Hash) (commission uint32, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("collator_commission", err, started)
	}()

	var v number
	if err = c.mustStorage(ctx, at, stakingPallet, "collatorCommission", &v); err != nil {
		return 0, err
	}
	return v.uint32()
}

// ParachainBondInfo returns the parachain bond reserve account and percent.
func (c *Client) ParachainBondInfo(ctx context.Context, at chain.Hash) (info chain.ParachainBondInfo, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("parachain_bond_info", err, started)
	}()

	var v bondInfoJSON
	if err = c.mustStorage(ctx, at, stakingPallet, "parachainBondInfo", &v); err != nil {
		return info, err
	}
	if v.Percent > 100 {
		err = fmt.Errorf("parachain bond percent %d above 100", v.Percent)
		return info, err
	}
	return chain.ParachainBondInfo{Account: account(v.Account), Percent: uint8(v.Percent)}, nil
}

// StakingEvents returns Rewarded and ReservedForParachainBond events of the block, tagged by phase.
func (c *Client) StakingEvents(ctx context.Context, at chain.Hash) (events []chain.StakingEvent, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("staking_events", err, started)
	}()

	var block blockJSON
	if err = c.sidecar.get(ctx, "blocks/"+string(at), nil, &block); err != nil {
		return nil, err
	}

	collect := func(phase chain.EventPhase, in []eventJSON) error {
		for _, e := range in {
			if e.Method.Pallet != stakingPallet {
				continue
			}
			kind := chain.StakingEventKind(e.Method.Method)
			if kind != chain.EventRewarded && kind != chain.EventReservedForParachainBond {
				continue
			}
			ev, err := stakingEvent(kind, phase, e)
			if err != nil {
				return err
			}
			events = append(events, ev)
		}
		return nil
	}

	if err = collect(chain.PhaseInitialization, block.OnInitialize.Events); err != nil {
		return nil, err
	}
	for _, ext := range block.Extrinsics {
		if err = collect(chain.PhaseApplyExtrinsic, ext.Events); err != nil {
			return nil, err
		}
	}
	if err = collect(chain.PhaseFinalization, block.OnFinalize.Events); err != nil {
		return nil, err
	}
	return events, nil
}

// mustStorage reads a storage value that always exists.
func (c *Client) mustStorage(ctx context.Context, at chain.Hash, pallet, item string, out any, keys ...string) error {
	found, err := c.sidecar.storage(ctx, string(at), pallet, item, out, keys...)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%s.%s at %s: %w", pallet, item, at, ErrNotFound)
	}
	return nil
}
