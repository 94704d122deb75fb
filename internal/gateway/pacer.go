package gateway

import (
	"context"
	"sync"
	"time"
)

// Pacer enforces a process-wide minimum interval between requests. Each
// caller reserves the earliest free slot and blocks until it arrives, so
// concurrent callers serialize rather than fail. This mirrors the relay's
// original single-timestamp limiter: throughput is capped at one request
// per interval system-wide, with no per-client fairness.
type Pacer struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time
}

// NewPacer creates a pacer with the given minimum interval. A zero or
// negative interval disables pacing.
func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{interval: interval}
}

// Wait blocks until the caller's reserved slot arrives or ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	if p.interval <= 0 {
		return nil
	}

	p.mu.Lock()
	now := time.Now()
	slot := p.next
	if slot.Before(now) {
		slot = now
	}
	p.next = slot.Add(p.interval)
	p.mu.Unlock()

	wait := time.Until(slot)
	if wait <= 0 {
		return nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
