package pixelzero

import (
	"github.com/avitran0/pixel-zero/internal/raster"
)

// unitQuad holds the local vertices of the unit quad in strip order.
// Sprite and line strokes are both built from it; for sprites the
// coordinates double as texture coordinates.
var unitQuad = [4]Vec2{
	{X: 0, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: 1, Y: 1},
}

// Renderer owns the virtual frame and runs recorded frames through the
// transform pipeline into it. Present composes the result onto an output
// surface with letterboxing.
//
// A Renderer is not safe for concurrent use; render one frame at a time.
type Renderer struct {
	cfg        Config
	frame      *Pixmap
	frameTex   *Texture
	compositor *Compositor
	proj       Mat4
}

// NewRenderer creates a renderer with the given options. The projection
// maps virtual-frame pixel space to clip space with +1 at the top.
func NewRenderer(opts ...Option) *Renderer {
	cfg := applyOptions(opts)
	frame := NewPixmap(cfg.VirtualWidth, cfg.VirtualHeight)
	return &Renderer{
		cfg:        cfg,
		frame:      frame,
		frameTex:   NewTexture(frame, FilterNearest),
		compositor: &Compositor{cfg: cfg},
		proj:       OrthoPixels(float64(cfg.VirtualWidth), float64(cfg.VirtualHeight)),
	}
}

// Config returns the renderer's configuration.
func (r *Renderer) Config() Config {
	return r.cfg
}

// VirtualFrame returns the virtual-resolution color buffer.
func (r *Renderer) VirtualFrame() *Pixmap {
	return r.frame
}

// Projection returns the projection matrix shared by the frame's draw calls.
func (r *Renderer) Projection() Mat4 {
	return r.proj
}

// Compositor returns the letterbox compositor sharing this renderer's
// configuration.
func (r *Renderer) Compositor() *Compositor {
	return r.compositor
}

// Render clears the virtual frame and replays the frame's draw commands
// into it.
func (r *Renderer) Render(f *Frame) {
	r.frame.Clear(f.clearColor)
	for _, cmd := range f.commands {
		cmd.execute(r)
	}
	Logger().Debug("frame rendered", "commands", len(f.commands))
}

// Present composes the virtual frame onto dst, letterboxed. The virtual
// frame must be fully rendered first; Render and Present are the single
// sequencing constraint of the pipeline.
func (r *Renderer) Present(dst *Pixmap) error {
	return r.compositor.Composite(r.frameTex, dst)
}

// frameAdapter exposes the virtual frame to the rasterizer.
type frameAdapter struct {
	pixmap *Pixmap
}

func (a frameAdapter) Width() int  { return a.pixmap.Width() }
func (a frameAdapter) Height() int { return a.pixmap.Height() }

func (a frameAdapter) BlendPixel(x, y int, c raster.RGBA) {
	a.pixmap.BlendPixel(x, y, RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}

// toScreen converts a clip-space vertex to a screen-space raster vertex
// for the virtual frame: NDC [-1,1] to pixels, +1 at the top.
func (r *Renderer) toScreen(v ClipVertex) raster.Vertex {
	w := float64(r.cfg.VirtualWidth)
	h := float64(r.cfg.VirtualHeight)
	return raster.Vertex{
		X: (v.Position.X + 1) / 2 * w,
		Y: (1 - v.Position.Y) / 2 * h,
		U: v.TexCoord.X,
		V: v.TexCoord.Y,
	}
}

func (r *Renderer) fillQuad(quad [4]ClipVertex, shade FragmentShader) {
	dst := frameAdapter{pixmap: r.frame}
	wrap := func(u, v float64) (raster.RGBA, bool) {
		c, ok := shade(Vec2{X: u, Y: v})
		if !ok {
			return raster.RGBA{}, false
		}
		return raster.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}, true
	}
	raster.FillQuad(dst, r.toScreen(quad[0]), r.toScreen(quad[1]),
		r.toScreen(quad[2]), r.toScreen(quad[3]), wrap)
}

func (r *Renderer) drawSprite(tex *Texture, placement SpritePlacement, tint Tint) {
	var quad [4]ClipVertex
	for i, local := range unitQuad {
		quad[i] = SpriteVertex(local, placement, r.proj)
	}
	r.fillQuad(quad, TextureFragment(tex, tint, r.cfg.AlphaThreshold))
}

func (r *Renderer) drawLine(placement LinePlacement, thickness float64, color RGBA) {
	if placement.Length == 0 {
		return
	}
	half := thickness / 2
	var quad [4]ClipVertex
	for i, local := range unitQuad {
		// Map the unit quad's y in {0,1} to {-half,+half}: local y is the
		// signed perpendicular offset in world units.
		local.Y = (local.Y*2 - 1) * half
		quad[i] = LineVertex(local, placement, r.proj)
	}
	r.fillQuad(quad, SolidFragment(color, r.cfg.AlphaThreshold))
}
