package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLCacheGetSet(t *testing.T) {
	cache := NewTTLCache(time.Minute)

	_, ok := cache.Get("missing")
	assert.False(t, ok)

	cache.Set("key", "value")
	got, ok := cache.Get("key")
	assert.True(t, ok)
	assert.Equal(t, "value", got)
}

func TestTTLCacheExpiry(t *testing.T) {
	cache := NewTTLCache(10 * time.Millisecond)

	cache.Set("key", 42)
	time.Sleep(20 * time.Millisecond)

	_, ok := cache.Get("key")
	assert.False(t, ok)
}

func TestTTLCacheDelete(t *testing.T) {
	cache := NewTTLCache(time.Minute)

	cache.Set("key", 1)
	cache.Delete("key")

	_, ok := cache.Get("key")
	assert.False(t, ok)
}

func TestTTLCacheSweep(t *testing.T) {
	cache := NewTTLCache(10 * time.Millisecond)

	cache.Set("old", 1)
	time.Sleep(20 * time.Millisecond)
	cache.Sweep()

	cache.mu.RLock()
	_, present := cache.entries["old"]
	cache.mu.RUnlock()
	assert.False(t, present)
}
