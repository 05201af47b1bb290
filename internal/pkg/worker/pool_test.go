package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRunsTask(t *testing.T) {
	pools, err := NewPools(context.Background(), DefaultPoolConfig())
	require.NoError(t, err)
	defer pools.Shutdown()

	done := make(chan struct{})
	err = pools.General.Submit(context.Background(), func(ctx context.Context) {
		close(done)
	})
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task did not run")
	}
}

func TestSubmitRejectsCancelledContext(t *testing.T) {
	pools, err := NewPools(context.Background(), DefaultPoolConfig())
	require.NoError(t, err)
	defer pools.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = pools.General.Submit(ctx, func(ctx context.Context) {
		t.Error("task must not run")
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDetachedTasksStopOnShutdown(t *testing.T) {
	pools, err := NewPools(context.Background(), DefaultPoolConfig())
	require.NoError(t, err)

	var mu sync.Mutex
	ran := 0

	err = pools.SubmitDetached(func(ctx context.Context) {
		mu.Lock()
		ran++
		mu.Unlock()
	})
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)
	pools.Shutdown()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, ran)
}

func TestMetricsShape(t *testing.T) {
	pools, err := NewPools(context.Background(), DefaultPoolConfig())
	require.NoError(t, err)
	defer pools.Shutdown()

	m := pools.Metrics()
	general, ok := m["general"].(map[string]int)
	require.True(t, ok)
	assert.Equal(t, 100, general["cap"])
}
