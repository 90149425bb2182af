// Package batcher buffers items and hands them to a flush function in rate limited batches.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add once the batcher has been stopped.
var ErrStopped = errors.New("batcher stopped")

// FlushFunc writes one batch. The slice is owned by the callee.
type FlushFunc[T any] func(ctx context.Context, batch []T) error

// Config tunes a Batcher.
type Config struct {
	// Size flushes the buffer once it holds this many items.
	Size int
	// Interval flushes a non-empty buffer at least this often.
	Interval time.Duration
	// RPS caps flushes per second. Zero means unlimited.
	RPS int
}

// Batcher buffers items and flushes them either by size or interval.
type Batcher[T any] struct {
	flush   FlushFunc[T]
	items   chan T
	cfg     Config
	limiter ratelimit.Limiter
	logger  *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher.
func New[T any](cfg Config, flush FlushFunc[T], logger *zap.Logger) (*Batcher[T], error) {
	if flush == nil {
		return nil, errors.New("flush func is nil")
	}
	if cfg.Size <= 0 {
		return nil, errors.New("batch size must be positive")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("flush interval must be positive")
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}

	return &Batcher[T]{
		flush:   flush,
		items:   make(chan T, cfg.Size*2),
		cfg:     cfg,
		limiter: limiter,
		logger:  logger,
		stop:    make(chan struct{}),
	}, nil
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes what is buffered and waits for the loop to exit. It is safe to call more than once.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() { close(b.stop) })
	b.wg.Wait()
}

// Add queues an item, blocking while the buffer is full.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case b.items <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.cfg.Interval)
	defer ticker.Stop()

	buf := make([]T, 0, b.cfg.Size)
	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}
		b.limiter.Take()
		if err := b.flush(ctx, buf); err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = make([]T, 0, b.cfg.Size)
	}

	// shutdown drains queued items; the final flush must outlive the canceled context.
	shutdown := func() {
		final := context.WithoutCancel(ctx)
		for {
			select {
			case item := <-b.items:
				buf = append(buf, item)
				if len(buf) >= b.cfg.Size {
					flush(final)
				}
			default:
				flush(final)
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			shutdown()
			return
		case <-b.stop:
			shutdown()
			return
		case item := <-b.items:
			buf = append(buf, item)
			if len(buf) >= b.cfg.Size {
				flush(ctx)
			}
		case <-ticker.C:
			flush(ctx)
		}
	}
}
