package main

import (
	"encoding/json"
	"errors"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/model"
)

func roundData(payoutBlock uint64) (json.RawMessage, error) {
	if payoutBlock == 0 {
		return nil, errors.New("payout block must be positive")
	}
	return json.Marshal(model.RoundTaskData{PayoutBlockID: payoutBlock})
}
