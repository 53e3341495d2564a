package pixelzero

// FragmentShader produces the color for one fragment given its interpolated
// texture coordinate. The boolean result reports whether the fragment is
// written: false means discard, leaving the destination untouched so
// blending against existing content stays correct.
type FragmentShader func(uv Vec2) (RGBA, bool)

// TextureFragment returns a fragment shader that samples tex and applies
// tint to the sampled color (alpha untouched). Fragments whose sampled
// alpha falls below threshold are discarded.
func TextureFragment(tex *Texture, tint Tint, threshold float64) FragmentShader {
	return func(uv Vec2) (RGBA, bool) {
		c := tex.Sample(uv)
		if c.A < threshold {
			return RGBA{}, false
		}
		return tint.Apply(c), true
	}
}

// SolidFragment returns a fragment shader that emits a constant color,
// still subject to the alpha-discard threshold. Used for untextured
// strokes and fills.
func SolidFragment(color RGBA, threshold float64) FragmentShader {
	return func(Vec2) (RGBA, bool) {
		if color.A < threshold {
			return RGBA{}, false
		}
		return color, true
	}
}
