package internal

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/profilecard/pkg/profilecard/imageloader"
)

const defaultMaxCacheSize = 64

// TextureCache is an LRU of textures that destroys whatever it evicts.
type TextureCache struct {
	lru *imageloader.Cache[*sdl.Texture]
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{
		lru: imageloader.NewCache(maxSize, func(_ string, texture *sdl.Texture) {
			if texture != nil {
				texture.Destroy()
			}
		}),
	}
}

// Get returns the cached texture or nil.
func (c *TextureCache) Get(key string) *sdl.Texture {
	texture, _ := c.lru.Get(key)
	return texture
}

func (c *TextureCache) Set(key string, texture *sdl.Texture) {
	c.lru.Set(key, texture)
}

func (c *TextureCache) Len() int {
	return c.lru.Len()
}

// Destroy frees every texture and empties the cache.
func (c *TextureCache) Destroy() {
	c.lru.Purge()
}
