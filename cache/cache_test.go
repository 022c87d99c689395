package cache

import (
	"testing"
	"time"

	"concierge-server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomInfoCacheSetGet(t *testing.T) {
	c := NewRoomInfoCache(time.Minute)

	_, ok := c.Get("loft")
	assert.False(t, ok)

	c.Set("loft", entities.RoomInfo{Slug: "loft", Name: "The Loft"})

	info, ok := c.Get("loft")
	require.True(t, ok)
	assert.Equal(t, "The Loft", info.Name)
	assert.Equal(t, 1, c.Len())
}

func TestRoomInfoCacheExpiry(t *testing.T) {
	c := NewRoomInfoCache(10 * time.Millisecond)
	c.Set("loft", entities.RoomInfo{Slug: "loft"})

	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("loft")
	assert.False(t, ok)
}

func TestRoomInfoCacheInvalidate(t *testing.T) {
	c := NewRoomInfoCache(time.Minute)
	c.Set("loft", entities.RoomInfo{Slug: "loft"})

	c.Invalidate("loft")

	_, ok := c.Get("loft")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}
