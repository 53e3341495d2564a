package pixelzero

import (
	"errors"
	"fmt"
)

// ErrInvalidScreenSize is returned when a composite call is given
// non-positive output dimensions.
var ErrInvalidScreenSize = errors.New("pixelzero: screen dimensions must be positive")

// Compositor maps a rendered virtual frame onto a physical output surface,
// preserving the virtual frame's aspect ratio. Screen pixels outside the
// mapped region receive the configured letterbox color; the virtual frame
// is never sampled outside [0,1] on either axis.
//
// Compositor is stateless apart from its configuration and is safe for
// concurrent use.
type Compositor struct {
	cfg Config
}

// NewCompositor creates a compositor with the given options.
func NewCompositor(opts ...Option) *Compositor {
	return &Compositor{cfg: applyOptions(opts)}
}

// Config returns the compositor's configuration.
func (c *Compositor) Config() Config {
	return c.cfg
}

// MapUV remaps a screen-space coordinate uv (normalized to [0,1] over the
// output surface) into virtual-frame texture space for the given screen
// dimensions. The remap is centered: uv 0.5 maps to 0.5 for any scale.
//
// The second result is false when uv falls in a letterbox or pillarbox
// band; such coordinates must not be sampled.
func (c *Compositor) MapUV(uv Vec2, screen Vec2) (Vec2, bool) {
	targetAspect := c.cfg.TargetAspect()
	screenAspect := screen.X / screen.Y

	if screenAspect > targetAspect {
		// Screen relatively wider: pillarbox bands left and right.
		scale := screenAspect / targetAspect
		uv.X = (uv.X-0.5)/scale + 0.5
		if uv.X < 0 || uv.X > 1 {
			return Vec2{}, false
		}
		return uv, true
	}

	// Screen relatively taller: letterbox bands top and bottom. Equal
	// aspects land here with scale 1, a no-op remap.
	scale := targetAspect / screenAspect
	uv.Y = (uv.Y-0.5)/scale + 0.5
	if uv.Y < 0 || uv.Y > 1 {
		return Vec2{}, false
	}
	return uv, true
}

// CompositePixel produces the output color for a single screen pixel.
// Band pixels get the letterbox color; everything else is a plain sample
// of the virtual frame, unmodified (the virtual frame is assumed opaque,
// so no alpha test happens at this stage).
func (c *Compositor) CompositePixel(frame *Texture, uv, screen Vec2) RGBA {
	mapped, ok := c.MapUV(uv, screen)
	if !ok {
		return c.cfg.LetterboxColor
	}
	return frame.Sample(mapped)
}

// Composite renders the virtual frame onto dst, filling bands with the
// letterbox color. Sample coordinates are taken at pixel centers.
//
// Returns ErrInvalidScreenSize if dst has non-positive dimensions.
func (c *Compositor) Composite(frame *Texture, dst *Pixmap) error {
	w := dst.Width()
	h := dst.Height()
	if w <= 0 || h <= 0 {
		Logger().Warn("composite rejected", "width", w, "height", h)
		return fmt.Errorf("%w: %dx%d", ErrInvalidScreenSize, w, h)
	}

	screen := Vec2{X: float64(w), Y: float64(h)}
	for y := 0; y < h; y++ {
		v := (float64(y) + 0.5) / screen.Y
		for x := 0; x < w; x++ {
			u := (float64(x) + 0.5) / screen.X
			dst.SetPixel(x, y, c.CompositePixel(frame, Vec2{X: u, Y: v}, screen))
		}
	}

	Logger().Debug("composite",
		"virtual", fmt.Sprintf("%dx%d", c.cfg.VirtualWidth, c.cfg.VirtualHeight),
		"screen", fmt.Sprintf("%dx%d", w, h))
	return nil
}

// ContentRect returns the screen-pixel rectangle the virtual frame maps to
// for the given output dimensions, centered with bands outside it. GPU
// presenters use this to position the fullscreen pass without a per-pixel
// branch on the CPU.
func (c *Compositor) ContentRect(screenWidth, screenHeight int) (x, y, w, h int) {
	sw := float64(screenWidth)
	sh := float64(screenHeight)
	targetAspect := c.cfg.TargetAspect()
	screenAspect := sw / sh

	if screenAspect > targetAspect {
		scale := screenAspect / targetAspect
		cw := sw / scale
		x = int((sw - cw) / 2)
		return x, 0, int(cw), screenHeight
	}

	scale := targetAspect / screenAspect
	ch := sh / scale
	y = int((sh - ch) / 2)
	return 0, y, screenWidth, int(ch)
}
