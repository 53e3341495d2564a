package present

import (
	"errors"
	"fmt"
	"image"

	pixelzero "github.com/avitran0/pixel-zero"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"
)

// Common errors returned by Surface operations.
var (
	// ErrSurfaceClosed is returned when operations are attempted on a
	// closed surface.
	ErrSurfaceClosed = errors.New("present: surface is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("present: invalid dimensions")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("present: nil DeviceProvider")

	// ErrNilRenderer is returned when a nil Renderer is passed.
	ErrNilRenderer = errors.New("present: nil Renderer")

	// ErrInvalidDrawContext is returned when the draw context has no
	// texture creator.
	ErrInvalidDrawContext = errors.New("present: draw context has no TextureCreator")
)

// textureDestroyer is the interface for destroying host textures.
type textureDestroyer interface {
	Destroy()
}

// DrawContext is the subset of the host draw context the surface needs:
// a way to create textures from raw RGBA pixels and a way to draw them.
// Host frameworks built on gpucontext satisfy it directly.
type DrawContext interface {
	TextureCreator() gpucontext.TextureCreator
	DrawTexture(tex any, x, y float32) error
}

// Surface presents a renderer's virtual frame on a host GPU framework.
// It composes the frame at screen size with letterboxing, uploads the
// result as a host texture, and draws it full-screen.
//
// Surface is NOT safe for concurrent use. Create one Surface per
// goroutine, or use external synchronization.
type Surface struct {
	renderer *pixelzero.Renderer
	provider gpucontext.DeviceProvider

	screen     *pixelzero.Pixmap
	texture    any // lazy-created host texture
	oldTexture any // previous texture awaiting deferred destruction
	width      int
	height     int
	closed     bool
}

// New creates a Surface presenting renderer onto a width x height output.
// The provider should come from the host application's GPU context.
func New(provider gpucontext.DeviceProvider, renderer *pixelzero.Renderer, width, height int) (*Surface, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if renderer == nil {
		return nil, ErrNilRenderer
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	return &Surface{
		renderer: renderer,
		provider: provider,
		screen:   pixelzero.NewPixmap(width, height),
		width:    width,
		height:   height,
	}, nil
}

// Format returns the pixel format of uploaded frame textures.
func (s *Surface) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Size returns the output dimensions.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// Resize changes the output dimensions, e.g. on a window resize event.
// The next RenderTo composes and uploads at the new size.
func (s *Surface) Resize(width, height int) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if width == s.width && height == s.height {
		return nil
	}

	s.width = width
	s.height = height
	s.screen = pixelzero.NewPixmap(width, height)

	// The old texture has the wrong size; recreate on next upload.
	if s.texture != nil {
		s.oldTexture = s.texture
		s.texture = nil
	}
	return nil
}

// compose fills the screen pixmap: letterbox color everywhere, then the
// virtual frame scaled into its centered content rectangle. Scaling whole
// rows with a nearest-neighbor kernel is the integer-rect equivalent of
// the compositor's per-pixel remap.
func (s *Surface) compose() {
	cfg := s.renderer.Config()
	s.screen.Clear(cfg.LetterboxColor)

	x, y, w, h := s.renderer.Compositor().ContentRect(s.width, s.height)
	xdraw.NearestNeighbor.Scale(
		s.screen,
		image.Rect(x, y, x+w, y+h),
		s.renderer.VirtualFrame(),
		s.renderer.VirtualFrame().Bounds(),
		xdraw.Src,
		nil,
	)
}

// RenderTo composes the virtual frame and draws it to the host's draw
// context. Call after Renderer.Render each frame.
func (s *Surface) RenderTo(dc DrawContext) error {
	if s.closed {
		return ErrSurfaceClosed
	}

	s.compose()

	creator := dc.TextureCreator()
	if creator == nil {
		return ErrInvalidDrawContext
	}

	// Each frame is a fresh upload. NewTextureFromRGBA waits for the GPU
	// internally, so once it returns the previous texture is no longer in
	// use and can be destroyed safely.
	if s.texture != nil {
		s.oldTexture = s.texture
	}
	tex, err := creator.NewTextureFromRGBA(s.width, s.height, s.screen.Data())
	if err != nil {
		return fmt.Errorf("present: NewTextureFromRGBA failed: %w", err)
	}
	s.texture = tex

	if s.oldTexture != nil {
		if destroyer, ok := s.oldTexture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		s.oldTexture = nil
	}

	gpuTex, ok := s.texture.(gpucontext.Texture)
	if !ok {
		return ErrInvalidDrawContext
	}
	return dc.DrawTexture(gpuTex, 0, 0)
}

// Close releases the host textures. The surface cannot be used afterwards.
func (s *Surface) Close() {
	if s.closed {
		return
	}
	for _, t := range []any{s.texture, s.oldTexture} {
		if destroyer, ok := t.(textureDestroyer); ok {
			destroyer.Destroy()
		}
	}
	s.texture = nil
	s.oldTexture = nil
	s.closed = true
}
