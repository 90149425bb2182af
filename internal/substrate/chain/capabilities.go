package chain

// Capabilities lists runtime dependent staking features.
type Capabilities struct {
	SpecVersion uint32
	// TopDelegations is set when only the top delegation set of a collator is rewarded.
	TopDelegations bool
	// DelegatorState is set when delegator amounts can be refreshed from delegatorState.
	DelegatorState bool
	// BondRewardLossAccounting enables rounding loss diagnostics.
	BondRewardLossAccounting bool
	// SinglePayoutBlock limits the reward scan to the first payout block.
	SinglePayoutBlock bool
}

// CapabilityTable maps runtime spec versions to Capabilities.
// A zero threshold disables the feature.
type CapabilityTable struct {
	DelegatorStateSince    uint32
	TopDelegationsSince    uint32
	BondRewardLossSince    uint32
	SinglePayoutBlockUntil uint32
}

// DefaultCapabilityTable matches the Moonbeam family runtimes.
var DefaultCapabilityTable = CapabilityTable{
	DelegatorStateSince:    1001,
	TopDelegationsSince:    1300,
	BondRewardLossSince:    1800,
	SinglePayoutBlockUntil: 1002,
}

// At returns the capabilities of a runtime spec version.
func (t CapabilityTable) At(specVersion uint32) Capabilities {
	return Capabilities{
		SpecVersion:              specVersion,
		DelegatorState:           since(t.DelegatorStateSince, specVersion),
		TopDelegations:           since(t.TopDelegationsSince, specVersion),
		BondRewardLossAccounting: since(t.BondRewardLossSince, specVersion),
		SinglePayoutBlock:        t.SinglePayoutBlockUntil != 0 && specVersion <= t.SinglePayoutBlockUntil,
	}
}

func since(threshold, specVersion uint32) bool {
	return threshold != 0 && specVersion >= threshold
}
