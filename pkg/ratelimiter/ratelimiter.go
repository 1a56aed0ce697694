// Package ratelimiter paces outbound requests with a token bucket.
package ratelimiter

import (
	"context"
	"sync"
	"time"
)

// Limiter hands out one token per Wait and regains one every interval, up
// to burst. Stop ends the refill goroutine and unblocks every waiter.
type Limiter struct {
	tokens chan struct{}
	ticker *time.Ticker
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New builds a Limiter that starts full with burst tokens.
func New(interval time.Duration, burst int) *Limiter {
	if burst < 1 {
		burst = 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	l := &Limiter{
		tokens: make(chan struct{}, burst),
		ticker: time.NewTicker(interval),
		ctx:    ctx,
		cancel: cancel,
	}
	for i := 0; i < burst; i++ {
		l.tokens <- struct{}{}
	}

	l.wg.Add(1)
	go l.refill()
	return l
}

func (l *Limiter) refill() {
	defer l.wg.Done()
	defer l.ticker.Stop()

	for {
		select {
		case <-l.ticker.C:
			select {
			case l.tokens <- struct{}{}:
			default:
			}
		case <-l.ctx.Done():
			return
		}
	}
}

// Wait blocks until a token is available or either context ends.
func (l *Limiter) Wait(ctx context.Context) error {
	select {
	case <-l.tokens:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-l.ctx.Done():
		return l.ctx.Err()
	}
}

// Stop halts refills and releases every blocked Wait.
func (l *Limiter) Stop() {
	l.cancel()
	l.wg.Wait()
}
