package pixelzero

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextFace is the built-in bitmap font used by Frame.DrawText. At the
// virtual resolution there is no glyph shaping; text is a fixed grid of
// glyphs like the original hardware fonts.
var TextFace font.Face = basicfont.Face7x13

// MeasureText returns the advance width of text in virtual-frame pixels.
func MeasureText(text string) float64 {
	return float64(font.MeasureString(TextFace, text).Round())
}

func (r *Renderer) drawText(text string, position Vec2, color RGBA) {
	d := font.Drawer{
		Dst:  r.frame,
		Src:  image.NewUniform(color.Color()),
		Face: TextFace,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(position.X * 64),
			Y: fixed.Int26_6(position.Y * 64),
		},
	}
	d.DrawString(text)
}
