package postgres

import (
	"math/big"

	"github.com/goodnatureofminers/parastake-indexer/pkg/safe"
	"github.com/jackc/pgx/v5/pgtype"
)

// numeric maps an amount to NUMERIC. A nil amount is stored as NULL.
func numeric(v *big.Int) pgtype.Numeric {
	if v == nil {
		return pgtype.Numeric{}
	}
	return pgtype.Numeric{Int: new(big.Int).Set(v), Valid: true}
}

// blockID maps a block height to BIGINT.
func blockID(id uint64) (int64, error) {
	return safe.Int64(id)
}

// optionalBlockID maps a block height to a nullable BIGINT, zero meaning absent.
func optionalBlockID(id uint64) (*int64, error) {
	if id == 0 {
		return nil, nil
	}
	v, err := safe.Int64(id)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
