package chainstate

import (
	"context"
	"errors"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// ErrNotFound is returned when the node or Sidecar has no data for the request.
var ErrNotFound = errors.New("chain state not found")

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// NodeRPC is the node JSON-RPC transport. A go-ethereum *rpc.Client satisfies it.
	NodeRPC interface {
		CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
		Close()
	}
)
