package pixelzero

// Defaults for the configuration surface. These are the only externally
// meaningful tunables of the core: the virtual resolution, the color of
// the letterbox bands, and the alpha cutoff below which fragments are
// discarded instead of blended.
const (
	DefaultVirtualWidth   = 320
	DefaultVirtualHeight  = 240
	DefaultAlphaThreshold = 0.01
)

// DefaultLetterboxColor fills the bands outside the mapped virtual frame.
var DefaultLetterboxColor = RGBA{R: 0, G: 0, B: 0, A: 1}

// Config holds the fixed configuration of a Compositor or Renderer.
// It is set at construction time and never mutated afterwards.
type Config struct {
	// VirtualWidth and VirtualHeight are the dimensions of the virtual frame.
	VirtualWidth  int
	VirtualHeight int

	// LetterboxColor fills screen pixels outside the mapped virtual frame.
	LetterboxColor RGBA

	// AlphaThreshold is the cutoff below which sampled fragments are
	// discarded rather than written.
	AlphaThreshold float64
}

// DefaultConfig returns the default configuration: a 320x240 virtual frame,
// opaque black letterbox bands, and an alpha cutoff of 0.01.
func DefaultConfig() Config {
	return Config{
		VirtualWidth:   DefaultVirtualWidth,
		VirtualHeight:  DefaultVirtualHeight,
		LetterboxColor: DefaultLetterboxColor,
		AlphaThreshold: DefaultAlphaThreshold,
	}
}

// TargetAspect returns the aspect ratio of the virtual frame.
func (c Config) TargetAspect() float64 {
	return float64(c.VirtualWidth) / float64(c.VirtualHeight)
}

// Option configures a Compositor or Renderer during creation.
//
// Example:
//
//	// Default 320x240 virtual frame
//	r := pixelzero.NewRenderer()
//
//	// Widescreen virtual frame with dark gray bands
//	r := pixelzero.NewRenderer(
//	    pixelzero.WithVirtualSize(427, 240),
//	    pixelzero.WithLetterboxColor(pixelzero.RGB(0.1, 0.1, 0.1)),
//	)
type Option func(*Config)

// WithConfig replaces the entire configuration. Useful when a backend
// already holds a Config value and needs a matching compositor.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

// WithVirtualSize sets the virtual frame dimensions.
func WithVirtualSize(width, height int) Option {
	return func(c *Config) {
		c.VirtualWidth = width
		c.VirtualHeight = height
	}
}

// WithLetterboxColor sets the color of the letterbox/pillarbox bands.
func WithLetterboxColor(color RGBA) Option {
	return func(c *Config) {
		c.LetterboxColor = color
	}
}

// WithAlphaThreshold sets the alpha cutoff for fragment discard.
func WithAlphaThreshold(threshold float64) Option {
	return func(c *Config) {
		c.AlphaThreshold = threshold
	}
}

func applyOptions(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
