package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The cache is exercised with nil textures: SDL_DestroyTexture(NULL) is a
// no-op, so eviction works without a live renderer.

func TestTextureCache_LRUEviction(t *testing.T) {
	c := NewTextureCacheWithSize(2)

	c.Set("a", nil)
	c.Set("b", nil)
	assert.Equal(t, []string{"a", "b"}, c.order)

	// Touching "a" makes "b" the eviction candidate.
	c.Get("a")
	assert.Equal(t, []string{"b", "a"}, c.order)

	c.Set("c", nil)
	assert.Equal(t, []string{"a", "c"}, c.order)

	_, evicted := c.textures["b"]
	assert.False(t, evicted)
	assert.Len(t, c.textures, 2)
}

func TestTextureCache_SetExistingMovesToEnd(t *testing.T) {
	c := NewTextureCacheWithSize(2)

	c.Set("a", nil)
	c.Set("b", nil)
	c.Set("a", nil)

	assert.Equal(t, []string{"b", "a"}, c.order, "re-setting refreshes recency without evicting")
	assert.Len(t, c.textures, 2)
}

func TestTextureCache_GetMiss(t *testing.T) {
	c := NewTextureCacheWithSize(2)

	assert.Nil(t, c.Get("nope"))
	assert.Empty(t, c.order, "misses do not disturb the order")
}

func TestTextureCache_DestroyKeepsCacheUsable(t *testing.T) {
	c := NewTextureCacheWithSize(4)
	c.Set("a", nil)
	c.Set("b", nil)

	c.Destroy()

	assert.Empty(t, c.textures)
	assert.Empty(t, c.order)

	c.Set("c", nil)
	assert.Equal(t, []string{"c"}, c.order)
}
