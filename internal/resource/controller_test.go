package resource

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Workers(t *testing.T) {
	c := NewController(Config{MaxWorkers: 8})

	// Acquire 4
	require.NoError(t, c.AcquireWorkers(t.Context(), 4))
	assert.Equal(t, int64(4), c.WorkersInFlight())

	// Acquire 4 more
	require.NoError(t, c.AcquireWorkers(t.Context(), 4))
	assert.Equal(t, int64(8), c.WorkersInFlight())

	// Budget exhausted
	assert.False(t, c.TryAcquireWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.AcquireWorkers(ctx, 2), context.DeadlineExceeded)

	// Release 4
	c.ReleaseWorkers(4)
	assert.Equal(t, int64(4), c.WorkersInFlight())
	assert.True(t, c.TryAcquireWorkers(2))
	assert.Equal(t, int64(6), c.WorkersInFlight())
}

func TestController_WorkersClamped(t *testing.T) {
	c := NewController(Config{MaxWorkers: 2})

	// Wider than the budget: runs alone instead of blocking forever.
	require.NoError(t, c.AcquireWorkers(t.Context(), 16))
	assert.False(t, c.TryAcquireWorkers(1))

	c.ReleaseWorkers(16)
	assert.Equal(t, int64(0), c.WorkersInFlight())
	assert.True(t, c.TryAcquireWorkers(2))
	assert.Equal(t, int64(2), c.MaxWorkers())
}

func TestController_UnlimitedWorkers(t *testing.T) {
	c := NewController(Config{})

	require.NoError(t, c.AcquireWorkers(t.Context(), 1000))
	assert.True(t, c.TryAcquireWorkers(1000))
	assert.Equal(t, int64(2000), c.WorkersInFlight())

	c.ReleaseWorkers(1500)
	assert.Equal(t, int64(500), c.WorkersInFlight())
	assert.Equal(t, int64(0), c.MaxWorkers())
}

func TestController_Admission(t *testing.T) {
	c := NewController(Config{SearchesPerSec: 1, SearchBurst: 2})

	// Burst of 2
	assert.True(t, c.TryAcquireSearch())
	assert.True(t, c.TryAcquireSearch())
	assert.False(t, c.TryAcquireSearch())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.AcquireSearch(ctx), context.DeadlineExceeded)

	cancelled, cancelNow := context.WithCancel(context.Background())
	cancelNow()
	assert.ErrorIs(t, c.AcquireSearch(cancelled), context.Canceled)
}

func TestController_UnlimitedAdmission(t *testing.T) {
	c := NewController(Config{})
	for i := 0; i < 100; i++ {
		require.NoError(t, c.AcquireSearch(t.Context()))
	}
	assert.True(t, c.TryAcquireSearch())
}

func TestController_Nil(t *testing.T) {
	var c *Controller

	require.NoError(t, c.AcquireWorkers(t.Context(), 4))
	assert.True(t, c.TryAcquireWorkers(4))
	c.ReleaseWorkers(4)
	assert.Equal(t, int64(0), c.WorkersInFlight())
	assert.Equal(t, int64(0), c.MaxWorkers())

	require.NoError(t, c.AcquireSearch(t.Context()))
	assert.True(t, c.TryAcquireSearch())
}
