package postgres

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Metrics observes repository operations.
type Metrics interface {
	Observe(operation string, err error, started time.Time)
}
