package resource

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits.
type Config struct {
	// MaxWorkers is the total number of search workers allowed to run at once
	// across all concurrent searches. If 0, unlimited.
	MaxWorkers int64

	// SearchesPerSec is the admission rate for new searches.
	// If 0, unlimited.
	SearchesPerSec float64

	// SearchBurst is the token bucket size for admission.
	// If 0, defaults to 1.
	SearchBurst int
}

// Controller governs how many workers run and how fast searches are admitted.
type Controller struct {
	cfg Config

	// Workers
	workerSem *semaphore.Weighted // nil if unlimited
	inFlight  atomic.Int64

	// Admission
	limiter *rate.Limiter // nil if unlimited
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.SearchBurst <= 0 {
		cfg.SearchBurst = 1
	}

	c := &Controller{cfg: cfg}

	if cfg.MaxWorkers > 0 {
		c.workerSem = semaphore.NewWeighted(cfg.MaxWorkers)
	}

	if cfg.SearchesPerSec > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.SearchesPerSec), cfg.SearchBurst)
	}

	return c
}

// clamp bounds a reservation to the budget so a single search wider than the
// budget runs alone instead of blocking forever.
func (c *Controller) clamp(n int64) int64 {
	if c.cfg.MaxWorkers > 0 && n > c.cfg.MaxWorkers {
		return c.cfg.MaxWorkers
	}
	return n
}

// AcquireWorkers reserves n worker slots, blocking until they are available.
func (c *Controller) AcquireWorkers(ctx context.Context, n int64) error {
	if c == nil || n <= 0 {
		return nil
	}

	if c.workerSem != nil {
		if err := c.workerSem.Acquire(ctx, c.clamp(n)); err != nil {
			return err
		}
	}

	c.inFlight.Add(n)
	return nil
}

// TryAcquireWorkers reserves n worker slots without blocking.
func (c *Controller) TryAcquireWorkers(n int64) bool {
	if c == nil || n <= 0 {
		return true
	}

	if c.workerSem != nil && !c.workerSem.TryAcquire(c.clamp(n)) {
		return false
	}

	c.inFlight.Add(n)
	return true
}

// ReleaseWorkers releases n worker slots.
func (c *Controller) ReleaseWorkers(n int64) {
	if c == nil || n <= 0 {
		return
	}

	if c.workerSem != nil {
		c.workerSem.Release(c.clamp(n))
	}
	c.inFlight.Add(-n)
}

// WorkersInFlight returns the number of reserved worker slots.
func (c *Controller) WorkersInFlight() int64 {
	if c == nil {
		return 0
	}
	return c.inFlight.Load()
}

// MaxWorkers returns the configured worker budget (0 if unlimited).
func (c *Controller) MaxWorkers() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.MaxWorkers
}

// AcquireSearch waits until the admission rate allows one more search.
// If the wait would outlast ctx's deadline it fails at once with an error
// matching context.DeadlineExceeded.
func (c *Controller) AcquireSearch(ctx context.Context) error {
	if c == nil || c.limiter == nil {
		return nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %w", context.DeadlineExceeded, err)
	}
	return nil
}

// TryAcquireSearch admits one search if a token is available right now.
func (c *Controller) TryAcquireSearch() bool {
	if c == nil || c.limiter == nil {
		return true
	}
	return c.limiter.Allow()
}
