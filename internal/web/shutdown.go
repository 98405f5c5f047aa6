package web

import (
	"context"
	"time"

	"go.uber.org/atomic"
)

// ShutdownCoordinator owns the base context of every request and the draining
// flag the health check reports.
type ShutdownCoordinator struct {
	baseCtx     context.Context
	cancel      context.CancelFunc
	gracePeriod time.Duration
	draining    atomic.Bool
}

func NewShutdownCoordinator(gracePeriod time.Duration) *ShutdownCoordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &ShutdownCoordinator{
		baseCtx:     ctx,
		cancel:      cancel,
		gracePeriod: gracePeriod,
	}
}

// BaseContext is cancelled once shutdown begins.
func (sc *ShutdownCoordinator) BaseContext() context.Context {
	return sc.baseCtx
}

func (sc *ShutdownCoordinator) Draining() bool {
	return sc.draining.Load()
}

// InitiateShutdown marks the server as draining, cancels the base context and
// waits out the grace period so load balancers see the failing health check.
// It returns early if ctx is done.
func (sc *ShutdownCoordinator) InitiateShutdown(ctx context.Context) {
	if !sc.draining.CompareAndSwap(false, true) {
		return
	}
	sc.cancel()

	timer := time.NewTimer(sc.gracePeriod)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
