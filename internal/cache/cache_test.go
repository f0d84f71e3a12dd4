package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBeforeExpiry(t *testing.T) {
	c := New(true)
	c.Set("games:bdl:2024-01-15", []string{"a", "b"}, time.Minute)

	v, ok := c.Get("games:bdl:2024-01-15")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, v)
}

func TestGetAtExpiryIsAbsent(t *testing.T) {
	c := New(true)
	base := time.Now()
	c.now = func() time.Time { return base }

	c.Set("k", "v", 10*time.Second)

	c.now = func() time.Time { return base.Add(10 * time.Second) }
	_, ok := c.Get("k")
	assert.False(t, ok, "entry must be absent at t == expiresAt")
}

func TestZeroTTLExpiresImmediately(t *testing.T) {
	c := New(true)
	c.Set("k", "v", 0)

	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestSetOverwritesUnconditionally(t *testing.T) {
	c := New(true)
	c.Set("k", "old", time.Minute)
	c.Set("k", "new", time.Minute)

	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "new", v)
}

func TestDisabledCacheAlwaysMisses(t *testing.T) {
	c := New(false)
	c.Set("k", "v", time.Minute)

	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestExpiredEntryPurgedOnAccess(t *testing.T) {
	c := New(true)
	base := time.Now()
	c.now = func() time.Time { return base }
	c.Set("k", "v", time.Second)

	c.now = func() time.Time { return base.Add(2 * time.Second) }
	_, ok := c.Get("k")
	require.False(t, ok)

	c.mu.RLock()
	_, stillThere := c.entries["k"]
	c.mu.RUnlock()
	assert.False(t, stillThere, "expired entry should be purged on access")
}

func TestTypedMismatchIsMiss(t *testing.T) {
	c := New(true)
	c.Set("k", 42, time.Minute)

	_, ok := Typed[string](c, "k")
	assert.False(t, ok)

	n, ok := Typed[int](c, "k")
	require.True(t, ok)
	assert.Equal(t, 42, n)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "games:bdl:2024-01-15", Key("games", "bdl", "2024-01-15"))
}

func TestCloseIsIdempotentAndLeavesEntriesReadable(t *testing.T) {
	c := New(true)
	c.Set("k", "v", time.Minute)

	c.Close()
	c.Close()

	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)

	// A disabled cache never started a sweeper; Close must still be safe.
	New(false).Close()
}

func TestComputeETagStable(t *testing.T) {
	a := ComputeETag([]byte(`{"x":1}`))
	b := ComputeETag([]byte(`{"x":1}`))
	assert.Equal(t, a, b)
	assert.True(t, CheckETagMatch(a, b))
	assert.True(t, CheckETagMatch("*", b))
	assert.False(t, CheckETagMatch("", b))
}
