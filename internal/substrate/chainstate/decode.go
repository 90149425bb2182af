package chainstate

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/chain"
)

// Sidecar sends numbers as decimal strings; some runtimes expose hex encoded balances.

type amount struct {
	v *big.Int
}

func (a *amount) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	base := 10
	if strings.HasPrefix(s, "0x") {
		s, base = s[2:], 16
	}
	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return fmt.Errorf("invalid amount %s", b)
	}
	a.v = v
	return nil
}

func (a amount) big() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(a.v)
}

type number uint64

func (n *number) UnmarshalJSON(b []byte) error {
	v, err := strconv.ParseUint(strings.Trim(string(b), `"`), 0, 64)
	if err != nil {
		return fmt.Errorf("invalid number %s: %w", b, err)
	}
	*n = number(v)
	return nil
}

func (n number) uint32() (uint32, error) {
	if n > 1<<32-1 {
		return 0, fmt.Errorf("value %d out of uint32 range", n)
	}
	return uint32(n), nil
}

type roundJSON struct {
	Current number `json:"current"`
	First   number `json:"first"`
	Length  number `json:"length"`
}

type bondJSON struct {
	Owner  string `json:"owner"`
	Amount amount `json:"amount"`
}

type snapshotJSON struct {
	Bond        amount     `json:"bond"`
	Total       amount     `json:"total"`
	Delegations []bondJSON `json:"delegations"`
}

type delegationsJSON struct {
	Delegations []bondJSON `json:"delegations"`
}

type amountRangeJSON struct {
	Min   amount `json:"min"`
	Ideal amount `json:"ideal"`
	Max   amount `json:"max"`
}

type perbillRangeJSON struct {
	Min   number `json:"min"`
	Ideal number `json:"ideal"`
	Max   number `json:"max"`
}

type inflationJSON struct {
	Expect amountRangeJSON  `json:"expect"`
	Round  perbillRangeJSON `json:"round"`
}

type bondInfoJSON struct {
	Account string `json:"account"`
	Percent number `json:"percent"`
}

type specJSON struct {
	SpecVersion number `json:"specVersion"`
}

type eventJSON struct {
	Method struct {
		Pallet string `json:"pallet"`
		Method string `json:"method"`
	} `json:"method"`
	Data []json.RawMessage `json:"data"`
}

type eventsJSON struct {
	Events []eventJSON `json:"events"`
}

type blockJSON struct {
	OnInitialize eventsJSON   `json:"onInitialize"`
	Extrinsics   []eventsJSON `json:"extrinsics"`
	OnFinalize   eventsJSON   `json:"onFinalize"`
}

func account(s string) chain.AccountID {
	return chain.AccountID(strings.ToLower(s))
}

func bonds(in []bondJSON) []chain.Bond {
	out := make([]chain.Bond, 0, len(in))
	for _, b := range in {
		out = append(out, chain.Bond{Owner: account(b.Owner), Amount: b.Amount.big()})
	}
	return out
}

// stakingEvent converts an account/amount parachainStaking event.
func stakingEvent(kind chain.StakingEventKind, phase chain.EventPhase, e eventJSON) (chain.StakingEvent, error) {
	if len(e.Data) < 2 {
		return chain.StakingEvent{}, fmt.Errorf("%s event has %d data fields", kind, len(e.Data))
	}
	var who string
	if err := json.Unmarshal(e.Data[0], &who); err != nil {
		return chain.StakingEvent{}, fmt.Errorf("decode %s account: %w", kind, err)
	}
	var value amount
	if err := json.Unmarshal(e.Data[1], &value); err != nil {
		return chain.StakingEvent{}, fmt.Errorf("decode %s amount: %w", kind, err)
	}
	return chain.StakingEvent{
		Kind:    kind,
		Phase:   phase,
		Account: account(who),
		Amount:  value.big(),
	}, nil
}
