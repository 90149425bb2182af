package chainstate

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/chain"
)

// accountLen is the size of an H160 account id.
const accountLen = 20

// twox hashes data with xxhash64 under seeds 0..rounds-1, concatenating little endian digests.
func twox(data []byte, rounds int) []byte {
	out := make([]byte, 0, rounds*8)
	for seed := 0; seed < rounds; seed++ {
		d := xxhash.NewWithSeed(uint64(seed))
		_, _ = d.Write(data)
		out = binary.LittleEndian.AppendUint64(out, d.Sum64())
	}
	return out
}

func twox128(name string) []byte {
	return twox([]byte(name), 2)
}

func twox64Concat(data []byte) []byte {
	return append(twox(data, 1), data...)
}

// storagePrefix is the key prefix of a pallet storage item.
func storagePrefix(pallet, item string) []byte {
	return append(twox128(pallet), twox128(item)...)
}

// atStakeRoundPrefix is the key prefix of all ParachainStaking.AtStake entries of a round.
func atStakeRoundPrefix(round uint32) string {
	var encoded [4]byte
	binary.LittleEndian.PutUint32(encoded[:], round)
	key := append(storagePrefix("ParachainStaking", "AtStake"), twox64Concat(encoded[:])...)
	return hexutil.Encode(key)
}

// accountFromKey returns the account that closes a storage map key.
func accountFromKey(key string, prefix string) (chain.AccountID, error) {
	raw, err := hexutil.Decode(key)
	if err != nil {
		return "", fmt.Errorf("decode storage key %s: %w", key, err)
	}
	minLen := (len(prefix)-2)/2 + 8 + accountLen
	if len(raw) < minLen {
		return "", fmt.Errorf("storage key %s is shorter than %d bytes", key, minLen)
	}
	return chain.AccountID(hexutil.Encode(raw[len(raw)-accountLen:])), nil
}
