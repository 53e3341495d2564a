package pixelzero

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
)

// Filter selects how a texture is sampled between pixel centers.
type Filter int

const (
	// FilterNearest snaps to the nearest texel. This is the default:
	// pixel art stays crisp when scaled.
	FilterNearest Filter = iota

	// FilterBilinear blends the four surrounding texels.
	FilterBilinear
)

// Texture is a sampling view over a pixel buffer. Sample coordinates are
// normalized to [0,1] on each axis; in-range coordinates near the border
// are clamped to the edge texel, matching GL_CLAMP_TO_EDGE.
type Texture struct {
	pixmap *Pixmap
	filter Filter
}

// NewTexture wraps a pixmap in a texture with the given filter.
func NewTexture(pm *Pixmap, filter Filter) *Texture {
	return &Texture{pixmap: pm, filter: filter}
}

// LoadTexture decodes a PNG file into a nearest-filtered texture.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}
	return NewTexture(FromImage(img), FilterNearest), nil
}

// TextureFromImage wraps a decoded image in a nearest-filtered texture.
func TextureFromImage(img image.Image) *Texture {
	return NewTexture(FromImage(img), FilterNearest)
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int {
	return t.pixmap.Width()
}

// Height returns the texture height in pixels.
func (t *Texture) Height() int {
	return t.pixmap.Height()
}

// Pixmap returns the underlying pixel buffer.
func (t *Texture) Pixmap() *Pixmap {
	return t.pixmap
}

// Size returns the texture dimensions as a Vec2.
func (t *Texture) Size() Vec2 {
	return Vec2{X: float64(t.pixmap.Width()), Y: float64(t.pixmap.Height())}
}

// Sample returns the color at normalized coordinate uv.
// Callers are expected to pass uv within [0,1] on each axis; components
// outside that range clamp to the edge texel.
func (t *Texture) Sample(uv Vec2) RGBA {
	switch t.filter {
	case FilterBilinear:
		return t.sampleBilinear(uv)
	default:
		return t.sampleNearest(uv)
	}
}

func (t *Texture) sampleNearest(uv Vec2) RGBA {
	w := t.pixmap.Width()
	h := t.pixmap.Height()
	x := clampInt(int(uv.X*float64(w)), 0, w-1)
	y := clampInt(int(uv.Y*float64(h)), 0, h-1)
	return t.pixmap.GetPixel(x, y)
}

func (t *Texture) sampleBilinear(uv Vec2) RGBA {
	w := t.pixmap.Width()
	h := t.pixmap.Height()

	// Texel centers sit at (i+0.5)/w, so shift by half a texel before
	// splitting into integer and fractional parts.
	fx := uv.X*float64(w) - 0.5
	fy := uv.Y*float64(h) - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	x1 := clampInt(x0+1, 0, w-1)
	y1 := clampInt(y0+1, 0, h-1)
	x0 = clampInt(x0, 0, w-1)
	y0 = clampInt(y0, 0, h-1)

	top := t.pixmap.GetPixel(x0, y0).Lerp(t.pixmap.GetPixel(x1, y0), tx)
	bottom := t.pixmap.GetPixel(x0, y1).Lerp(t.pixmap.GetPixel(x1, y1), tx)
	return top.Lerp(bottom, ty)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
