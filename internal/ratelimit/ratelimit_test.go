package ratelimit

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireUnderLimit(t *testing.T) {
	l := New(5, time.Minute)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 5; i++ {
		require.NoError(t, l.Acquire(ctx))
	}

	assert.Less(t, time.Since(start), 100*time.Millisecond, "acquisitions under the limit must not block")
	assert.Equal(t, 5, l.InFlight())
}

func TestAcquireBlocksWhenFull(t *testing.T) {
	l := New(2, 300*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, l.Acquire(ctx))
	require.NoError(t, l.Acquire(ctx))

	start := time.Now()
	require.NoError(t, l.Acquire(ctx))
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, 250*time.Millisecond, "third acquisition must wait for the window to slide")
}

func TestAcquireRespectsContextCancellation(t *testing.T) {
	l := New(1, time.Minute)
	require.NoError(t, l.Acquire(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := l.Acquire(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// TestSlidingWindowInvariant drives concurrent callers through a small window
// and verifies no trailing window ever contains more than max timestamps.
func TestSlidingWindowInvariant(t *testing.T) {
	const (
		max     = 3
		window  = 200 * time.Millisecond
		callers = 4
		perCall = 3
	)

	l := New(max, window)

	var (
		mu     sync.Mutex
		stamps []time.Time
		wg     sync.WaitGroup
	)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perCall; j++ {
				if err := l.Acquire(context.Background()); err != nil {
					return
				}
				mu.Lock()
				stamps = append(stamps, time.Now())
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, stamps, callers*perCall)
	sort.Slice(stamps, func(i, j int) bool { return stamps[i].Before(stamps[j]) })

	// Every run of max+1 consecutive acquisitions must span more than one window.
	for i := 0; i+max < len(stamps); i++ {
		span := stamps[i+max].Sub(stamps[i])
		assert.Greater(t, span, window,
			"acquisitions %d..%d landed inside a single window", i, i+max)
	}
}

func TestPruneDropsAgedStamps(t *testing.T) {
	l := New(2, time.Minute)

	base := time.Now()
	l.now = func() time.Time { return base }
	require.NoError(t, l.Acquire(context.Background()))
	require.NoError(t, l.Acquire(context.Background()))
	assert.Equal(t, 2, l.InFlight())

	l.now = func() time.Time { return base.Add(time.Minute + time.Second) }
	assert.Equal(t, 0, l.InFlight(), "stamps older than the window must be discarded")
}
