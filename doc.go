// Package pixelzero renders 2D game content at a fixed virtual resolution
// and composites it onto a physical display of arbitrary size.
//
// # Overview
//
// pixelzero draws sprites, lines, and text into an offscreen virtual frame
// (320x240 by default) and then presents that frame on the real display with
// pixel-accurate scaling, adding letterbox or pillarbox bands as needed to
// preserve the target aspect ratio.
//
// # Quick Start
//
//	import pixelzero "github.com/avitran0/pixel-zero"
//
//	r := pixelzero.NewRenderer()
//
//	frame := pixelzero.NewFrame()
//	frame.DrawSprite(sprite, pixelzero.V2(10, 20))
//	frame.DrawLine(pixelzero.V2(0, 0), pixelzero.V2(100, 50), 2, pixelzero.White)
//	r.Render(frame)
//
//	// Present onto an arbitrary-size output surface.
//	screen := pixelzero.NewPixmap(1920, 1080)
//	r.Present(screen)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Renderer, Frame, Compositor, the vertex/fragment stages,
//     Mat4, Vec2, RGBA, Pixmap, Texture
//   - Internal: raster (triangle rasterization with varying interpolation)
//   - Backends: backend/wgpu (GPU shader presenter), integration/present
//     (host framework glue)
//
// # Coordinate System
//
// Virtual-frame space has the origin (0,0) at the top-left, X increasing
// right and Y increasing down. Clip space follows the usual NDC convention
// with +1 at the top; the Ortho projection bridges the two.
package pixelzero

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
