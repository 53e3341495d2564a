package pixelzero

import "testing"

// solidSprite returns a w x h texture filled with color.
func solidSprite(w, h int, c RGBA) *Texture {
	pm := NewPixmap(w, h)
	pm.Clear(c)
	return NewTexture(pm, FilterNearest)
}

func TestRendererDefaults(t *testing.T) {
	r := NewRenderer()
	if got := r.Config(); got != DefaultConfig() {
		t.Errorf("Config() = %+v, want defaults", got)
	}
	frame := r.VirtualFrame()
	if frame.Width() != DefaultVirtualWidth || frame.Height() != DefaultVirtualHeight {
		t.Errorf("virtual frame = %dx%d, want %dx%d",
			frame.Width(), frame.Height(), DefaultVirtualWidth, DefaultVirtualHeight)
	}
	if got := r.Compositor().Config(); got != r.Config() {
		t.Error("compositor config differs from renderer config")
	}
}

func TestRenderSprite(t *testing.T) {
	r := NewRenderer(WithVirtualSize(8, 8))
	red := RGB(1, 0, 0)

	f := NewFrame()
	f.DrawSprite(solidSprite(2, 2, red), V2(2, 2))
	r.Render(f)

	frame := r.VirtualFrame()
	for y := 2; y < 4; y++ {
		for x := 2; x < 4; x++ {
			if got := frame.GetPixel(x, y); got != red {
				t.Errorf("covered pixel (%d,%d) = %+v, want red", x, y, got)
			}
		}
	}
	outside := [][2]int{{0, 0}, {1, 2}, {4, 2}, {2, 4}, {7, 7}}
	for _, p := range outside {
		if got := frame.GetPixel(p[0], p[1]); got != Black {
			t.Errorf("outside pixel (%d,%d) = %+v, want clear color", p[0], p[1], got)
		}
	}
}

func TestRenderSpriteAlphaDiscard(t *testing.T) {
	// Transparent texels are discarded, leaving the clear color behind.
	r := NewRenderer(WithVirtualSize(8, 8))
	green := RGB(0, 1, 0)

	tex := NewPixmap(2, 1)
	tex.SetPixel(0, 0, RGB(1, 0, 0))
	tex.SetPixel(1, 0, Transparent)

	f := NewFrame()
	f.SetClearColor(green)
	f.DrawSprite(NewTexture(tex, FilterNearest), V2(0, 0))
	r.Render(f)

	frame := r.VirtualFrame()
	if got := frame.GetPixel(0, 0); got != RGB(1, 0, 0) {
		t.Errorf("opaque texel pixel = %+v, want red", got)
	}
	if got := frame.GetPixel(1, 0); got != green {
		t.Errorf("transparent texel pixel = %+v, want clear color", got)
	}
}

func TestRenderSpriteTint(t *testing.T) {
	const quantEps = 2.0 / 255

	r := NewRenderer(WithVirtualSize(4, 4))
	f := NewFrame()
	f.DrawSpriteEx(solidSprite(1, 1, White),
		SpritePlacement{Position: V2(0, 0), Size: V2(4, 4)},
		Tint{R: 1, G: 0.5, B: 0})
	r.Render(f)

	want := RGBA2(1, 0.5, 0, 1)
	if got := r.VirtualFrame().GetPixel(2, 2); !got.Approx(want, quantEps) {
		t.Errorf("tinted pixel = %+v, want %+v", got, want)
	}
}

func TestRenderLine(t *testing.T) {
	r := NewRenderer(WithVirtualSize(8, 8))
	blue := RGB(0, 0, 1)

	f := NewFrame()
	f.DrawLine(V2(1, 4), V2(7, 4), 2, blue)
	r.Render(f)

	// Thickness 2 around y=4 covers the pixel rows 3 and 4.
	frame := r.VirtualFrame()
	for _, y := range []int{3, 4} {
		for x := 1; x < 7; x++ {
			if got := frame.GetPixel(x, y); got != blue {
				t.Errorf("stroke pixel (%d,%d) = %+v, want blue", x, y, got)
			}
		}
	}
	for _, p := range [][2]int{{3, 1}, {3, 6}, {0, 4}, {7, 4}} {
		if got := frame.GetPixel(p[0], p[1]); got != Black {
			t.Errorf("outside pixel (%d,%d) = %+v, want clear color", p[0], p[1], got)
		}
	}
}

func TestRenderLineDegenerate(t *testing.T) {
	r := NewRenderer(WithVirtualSize(4, 4))
	f := NewFrame()
	f.DrawLine(V2(2, 2), V2(2, 2), 3, White)
	r.Render(f)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := r.VirtualFrame().GetPixel(x, y); got != Black {
				t.Errorf("pixel (%d,%d) = %+v, want untouched", x, y, got)
			}
		}
	}
}

func TestRenderText(t *testing.T) {
	r := NewRenderer(WithVirtualSize(32, 32))
	f := NewFrame()
	f.DrawText("A", V2(2, 16), White)
	r.Render(f)

	lit := 0
	frame := r.VirtualFrame()
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if frame.GetPixel(x, y) != Black {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("DrawText left the frame empty")
	}
}

func TestMeasureText(t *testing.T) {
	if got := MeasureText(""); got != 0 {
		t.Errorf("MeasureText(\"\") = %v, want 0", got)
	}
	one := MeasureText("a")
	if one <= 0 {
		t.Fatalf("MeasureText(\"a\") = %v, want positive", one)
	}
	// Fixed-advance font: width scales with rune count.
	if got := MeasureText("aaa"); abs(got-3*one) > epsilon {
		t.Errorf("MeasureText(\"aaa\") = %v, want %v", got, 3*one)
	}
}

func TestRenderClearsPreviousFrame(t *testing.T) {
	r := NewRenderer(WithVirtualSize(4, 4))

	f := NewFrame()
	f.DrawSprite(solidSprite(4, 4, White), V2(0, 0))
	r.Render(f)
	if got := r.VirtualFrame().GetPixel(1, 1); got != White {
		t.Fatalf("first frame pixel = %+v, want white", got)
	}

	f.Reset()
	r.Render(f)
	if got := r.VirtualFrame().GetPixel(1, 1); got != Black {
		t.Errorf("second frame pixel = %+v, want clear color", got)
	}
}

func TestPresent(t *testing.T) {
	r := NewRenderer(WithVirtualSize(2, 2))
	red := RGB(1, 0, 0)

	f := NewFrame()
	f.SetClearColor(red)
	r.Render(f)

	// Wider output: the centered remap still resolves every pixel to a
	// frame sample.
	dst := NewPixmap(4, 2)
	if err := r.Present(dst); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if got := dst.GetPixel(x, y); got != red {
				t.Errorf("pixel (%d,%d) = %+v, want red", x, y, got)
			}
		}
	}

	if err := r.Present(NewPixmap(0, 0)); err == nil {
		t.Error("Present to empty pixmap succeeded")
	}
}
