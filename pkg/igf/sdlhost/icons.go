package sdlhost

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

const defaultMaxIconCacheSize = 32

// iconCache is an LRU cache of rasterized icon textures keyed by SVG
// path, so each icon is rasterized at most once per eviction cycle.
type iconCache struct {
	textures map[string]*sdl.Texture
	order    []string // tracks insertion order for LRU eviction
	maxSize  int
}

func newIconCache() *iconCache {
	return &iconCache{
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, defaultMaxIconCacheSize),
		maxSize:  defaultMaxIconCacheSize,
	}
}

func (c *iconCache) get(key string) *sdl.Texture {
	if texture, exists := c.textures[key]; exists {
		c.moveToEnd(key)
		return texture
	}
	return nil
}

func (c *iconCache) set(key string, texture *sdl.Texture) {
	if _, exists := c.textures[key]; exists {
		c.textures[key] = texture
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

func (c *iconCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *iconCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		texture.Destroy()
		delete(c.textures, oldest)
	}
}

func (c *iconCache) destroy() {
	for _, texture := range c.textures {
		texture.Destroy()
	}
	c.textures = make(map[string]*sdl.Texture)
	c.order = c.order[:0]
}

// renderSVGTexture rasterizes an SVG file to a square texture of the
// given pixel size.
func renderSVGTexture(renderer *sdl.Renderer, path string, size int32) (*sdl.Texture, error) {
	icon, err := oksvg.ReadIcon(path, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("sdlhost: read icon %s: %w", path, err)
	}

	w, h := int(size), int(size)
	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		int32(w), int32(h),
		32, int32(rgba.Stride),
		sdl.PIXELFORMAT_ABGR8888,
	)
	if err != nil {
		return nil, fmt.Errorf("sdlhost: icon surface %s: %w", path, err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("sdlhost: icon texture %s: %w", path, err)
	}
	return texture, nil
}
