package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func TestSlidingWindowSixthAttemptDenied(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)}
	sw := NewSlidingWindow(5, 15*time.Minute).WithClock(clock.Now)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		ok, err := sw.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok, "attempt %d", i+1)
		clock.Advance(time.Minute)
	}

	ok, err := sw.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, _ = sw.Allow(ctx, "10.0.0.2")
	assert.True(t, ok, "other callers are not affected")
}

func TestSlidingWindowSlides(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)}
	sw := NewSlidingWindow(5, 15*time.Minute).WithClock(clock.Now)
	ctx := context.Background()

	// 10:00 x1, then 10:10 x4.
	ok, _ := sw.Allow(ctx, "ip")
	require.True(t, ok)
	clock.Advance(10 * time.Minute)
	for i := 0; i < 4; i++ {
		ok, _ = sw.Allow(ctx, "ip")
		require.True(t, ok)
	}

	ok, _ = sw.Allow(ctx, "ip")
	assert.False(t, ok)

	// 10:15 exactly: the 10:00 attempt leaves the window.
	clock.Advance(5 * time.Minute)
	ok, _ = sw.Allow(ctx, "ip")
	assert.True(t, ok)

	ok, _ = sw.Allow(ctx, "ip")
	assert.False(t, ok)
}

func TestSlidingWindowDeniedAttemptsDoNotExtendLockout(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)}
	sw := NewSlidingWindow(2, time.Minute).WithClock(clock.Now)
	ctx := context.Background()

	sw.Allow(ctx, "ip")
	sw.Allow(ctx, "ip")
	for i := 0; i < 10; i++ {
		clock.Advance(5 * time.Second)
		ok, _ := sw.Allow(ctx, "ip")
		require.False(t, ok)
	}

	clock.Advance(15 * time.Second)
	ok, _ := sw.Allow(ctx, "ip")
	assert.True(t, ok)
}

func TestSlidingWindowSweepsIdleKeys(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)}
	sw := NewSlidingWindow(5, time.Minute).WithClock(clock.Now)
	ctx := context.Background()

	sw.Allow(ctx, "a")
	sw.Allow(ctx, "b")
	assert.Equal(t, 2, sw.Len())

	clock.Advance(2 * time.Minute)
	sw.Allow(ctx, "c")
	assert.Equal(t, 1, sw.Len())
}

func TestSlidingWindowConcurrent(t *testing.T) {
	sw := NewSlidingWindow(50, time.Minute)
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := sw.Allow(ctx, "shared"); ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, allowed)
}
