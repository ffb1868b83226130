package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_SetGet(t *testing.T) {
	t.Parallel()

	c := NewCache[int](8, time.Minute)
	c.Set("a", 1)

	got, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, got)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestCache_ExpiredEntryIsAbsent(t *testing.T) {
	t.Parallel()

	c := NewCache[string](8, 50*time.Millisecond)
	c.Set("a", "v")

	time.Sleep(120 * time.Millisecond)

	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestCache_ClearKey(t *testing.T) {
	t.Parallel()

	c := NewCache[int](8, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)

	c.ClearKey("a")

	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.True(t, ok)
}

func TestCache_ClearAll(t *testing.T) {
	t.Parallel()

	c := NewCache[int](8, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)

	c.ClearAll()

	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.False(t, ok)
}
