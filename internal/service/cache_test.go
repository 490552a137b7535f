package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/menu-service/internal/service/cache"
)

func TestTTLCache_Get(t *testing.T) {
	tests := []struct {
		name          string
		setupCache    func() *ttlCache[string]
		key           string
		expectedValue string
		expectedFound bool
	}{
		{
			name: "returns value when exists and not expired",
			setupCache: func() *ttlCache[string] {
				c := newTTLCache[string]("test", 10, time.Minute)
				c.Set("m1", "Week 1")
				return c
			},
			key:           "m1",
			expectedValue: "Week 1",
			expectedFound: true,
		},
		{
			name: "returns false when key not found",
			setupCache: func() *ttlCache[string] {
				return newTTLCache[string]("test", 10, time.Minute)
			},
			key:           "missing",
			expectedFound: false,
		},
		{
			name: "returns false when expired",
			setupCache: func() *ttlCache[string] {
				c := newTTLCache[string]("test", 10, 50*time.Millisecond)
				c.Set("m1", "Week 1")
				time.Sleep(100 * time.Millisecond)
				return c
			},
			key:           "m1",
			expectedFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.setupCache()
			defer c.Stop()

			value, found := c.Get(tt.key)
			assert.Equal(t, tt.expectedFound, found)
			if tt.expectedFound {
				assert.Equal(t, tt.expectedValue, value)
			}
		})
	}
}

func TestTTLCache_Eviction(t *testing.T) {
	c := newTTLCache[int]("test", 3, time.Minute)
	defer c.Stop()

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	// a becomes the least recently used entry
	c.Get("b")
	c.Get("c")
	c.Set("d", 4)

	_, okA := c.Get("a")
	_, okB := c.Get("b")
	_, okC := c.Get("c")
	_, okD := c.Get("d")

	assert.False(t, okA, "entry a should be evicted")
	assert.True(t, okB)
	assert.True(t, okC)
	assert.True(t, okD)
	assert.Equal(t, int64(1), c.Metrics().Evictions)
}

func TestTTLCache_MoveToFront(t *testing.T) {
	c := newTTLCache[int]("test", 3, time.Minute)
	defer c.Stop()

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)
	c.Get("a")
	c.Set("d", 4)

	_, okA := c.Get("a")
	_, okB := c.Get("b")
	assert.True(t, okA, "accessed entry survives")
	assert.False(t, okB, "least recently used entry is evicted")
}

func TestTTLCache_UpdateExistingEntry(t *testing.T) {
	c := newTTLCache[int]("test", 10, time.Minute)
	defer c.Stop()

	c.Set("a", 1)
	c.Set("a", 2)

	value, found := c.Get("a")
	assert.True(t, found)
	assert.Equal(t, 2, value)
	assert.Equal(t, 1, c.Metrics().Size)
}

func TestTTLCache_InvalidateAndClear(t *testing.T) {
	c := newTTLCache[int]("test", 10, time.Minute)
	defer c.Stop()

	c.Set("a", 1)
	c.Set("b", 2)
	c.Invalidate("a")
	c.Invalidate("missing")

	_, found := c.Get("a")
	assert.False(t, found)

	c.Clear()
	m := c.Metrics()
	assert.Equal(t, 0, m.Size)
	assert.Equal(t, int64(0), m.Hits)
	assert.Equal(t, int64(0), m.Misses)
}

func TestTTLCache_Cleanup(t *testing.T) {
	c := newTTLCache[int]("test", 10, 50*time.Millisecond)
	defer c.Stop()

	c.Set("a", 1)
	c.Set("b", 2)

	// longer than TTL plus the cached clock interval
	time.Sleep(200 * time.Millisecond)
	c.cleanup()

	assert.Equal(t, 0, c.Metrics().Size)
}

func TestTTLCache_StopIsIdempotent(t *testing.T) {
	c := newTTLCache[int]("test", 10, time.Minute)
	assert.NotPanics(t, func() {
		c.Stop()
		c.Stop()
	})
}

func TestTTLCache_Concurrency(t *testing.T) {
	c := newTTLCache[int]("test", 100, time.Minute)
	defer c.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				key := fmt.Sprintf("%d-%d", worker, j)
				c.Set(key, j)
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 100, c.Metrics().Size)
}

func TestNewShardedCache(t *testing.T) {
	tests := []struct {
		name       string
		numShards  int
		wantShards int
	}{
		{"default shards when zero", 0, 16},
		{"default shards when negative", -1, 16},
		{"rounds up to power of 2", 3, 4},
		{"exact power of 2", 8, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewShardedCache[int]("test", 64, time.Minute, tt.numShards)
			defer c.Stop()
			assert.Len(t, c.shards, tt.wantShards)
		})
	}
}

func TestShardedCache_Operations(t *testing.T) {
	c := NewShardedCache[string]("test", 256, time.Minute, 4)
	defer c.Stop()

	var _ cache.CacheWithMetrics[string] = c

	for i := 0; i < 20; i++ {
		c.Set(fmt.Sprintf("menu-%d", i), fmt.Sprintf("Week %d", i))
	}

	value, found := c.Get("menu-7")
	assert.True(t, found)
	assert.Equal(t, "Week 7", value)

	c.Invalidate("menu-7")
	_, found = c.Get("menu-7")
	assert.False(t, found)

	m := c.Metrics()
	assert.Equal(t, 19, m.Size)
	assert.Equal(t, 256, m.Capacity)

	c.Clear()
	assert.Equal(t, 0, c.Metrics().Size)
}
