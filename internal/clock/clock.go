// Package clock holds context-aware waiting helpers.
package clock

import (
	"context"
	"time"
)

// Sleep waits for d or returns early with ctx.Err(). A non-positive d only checks ctx.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Repeat runs fn immediately and then every interval until ctx is done.
// An fn error is passed to onErr and does not stop the loop.
func Repeat(ctx context.Context, interval time.Duration, fn func(context.Context) error, onErr func(error)) error {
	for {
		if err := fn(ctx); err != nil && onErr != nil && ctx.Err() == nil {
			onErr(err)
		}
		if err := Sleep(ctx, interval); err != nil {
			return err
		}
	}
}
