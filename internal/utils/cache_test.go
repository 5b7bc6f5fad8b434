package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLCacheSetGet(t *testing.T) {
	cache := NewTTLCache[string](10, time.Minute)

	cache.Set("key", "value")

	got, ok := cache.Get("key")
	assert.True(t, ok)
	assert.Equal(t, "value", got)

	_, ok = cache.Get("missing")
	assert.False(t, ok)
}

func TestTTLCacheOverwrite(t *testing.T) {
	cache := NewTTLCache[int](10, time.Minute)

	cache.Set("key", 1)
	cache.Set("key", 2)

	got, ok := cache.Get("key")
	assert.True(t, ok)
	assert.Equal(t, 2, got)
	assert.Equal(t, 1, cache.Len())
}

func TestTTLCacheExpiry(t *testing.T) {
	cache := NewTTLCache[string](10, 10*time.Millisecond)

	cache.Set("key", "value")
	time.Sleep(20 * time.Millisecond)

	_, ok := cache.Get("key")
	assert.False(t, ok)
	// 过期条目在读取时被清理
	assert.Equal(t, 0, cache.Len())
}

func TestTTLCacheEviction(t *testing.T) {
	cache := NewTTLCache[int](2, time.Minute)

	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Set("c", 3)

	// 最久未使用的条目被淘汰
	_, ok := cache.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 2, cache.Len())
}

func TestTTLCacheDelete(t *testing.T) {
	cache := NewTTLCache[string](10, time.Minute)

	cache.Set("key", "value")
	cache.Delete("key")

	_, ok := cache.Get("key")
	assert.False(t, ok)
}
