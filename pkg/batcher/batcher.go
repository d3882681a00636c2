// Package batcher provides a generic buffered batch processor with rate limiting.
package batcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Batcher buffers items and flushes them either by size or interval.
type Batcher[T any] struct {
	flushCallback func(context.Context, []T) error
	itemsCh       chan T
	flushSize     int
	flushInterval time.Duration
	rl            ratelimit.Limiter
	logger        *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher. A non-positive rps disables rate limiting.
func New[T any](logger *zap.Logger, flushCallback func(context.Context, []T) error, flushSize int, flushInterval time.Duration, rps int) *Batcher[T] {
	if flushSize <= 0 {
		flushSize = 1
	}
	rl := ratelimit.NewUnlimited()
	if rps > 0 {
		rl = ratelimit.New(rps)
	}
	return &Batcher[T]{
		logger:        logger,
		flushCallback: flushCallback,
		itemsCh:       make(chan T, flushSize*2),
		flushSize:     flushSize,
		flushInterval: flushInterval,
		rl:            rl,
		stop:          make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes every queued item and stops the background loop. It blocks until the
// final flush returns and is safe to call more than once.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()
}

// Add queues an item for batching, respecting context cancellation.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return context.Canceled
	case b.itemsCh <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)

	flush := func() {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		err := b.flushCallback(ctx, buf)
		if err != nil {
			b.logger.Error("batch not flushed", zap.Error(err), zap.Int("size", len(buf)))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}

	// drain hands every queued item to the callback before the loop exits.
	drain := func() {
		for {
			select {
			case item := <-b.itemsCh:
				buf = append(buf, item)
				if len(buf) >= b.flushSize {
					flush()
				}
			default:
				flush()
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return

		case <-b.stop:
			drain()
			return

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.flushSize {
				flush()
			}

		case <-ticker.C:
			flush()
		}
	}
}
