package pixelzero

import "testing"

// solidTexture returns a 1x1 texture filled with the given color.
func solidTexture(c RGBA) *Texture {
	pm := NewPixmap(1, 1)
	pm.SetPixel(0, 0, c)
	return NewTexture(pm, FilterNearest)
}

func TestTextureFragmentDiscard(t *testing.T) {
	// 8-bit storage quantizes alpha, so pick values that stay on the right
	// side of the threshold after the round trip.
	tests := []struct {
		name    string
		alpha   float64
		discard bool
	}{
		{"fully transparent", 0, true},
		{"just below threshold", 0.005, true},
		{"well above threshold", 0.5, false},
		{"opaque", 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tex := solidTexture(RGBA2(1, 1, 1, tt.alpha))
			shader := TextureFragment(tex, NoTint, DefaultAlphaThreshold)
			_, ok := shader(V2(0.5, 0.5))
			if ok == tt.discard {
				t.Errorf("alpha %v: discarded = %v, want %v", tt.alpha, !ok, tt.discard)
			}
		})
	}
}

func TestTextureFragmentTint(t *testing.T) {
	// The tint multiplies quantized components, so allow two 8-bit steps.
	const quantEps = 2.0 / 255

	tex := solidTexture(RGBA2(1, 0.5, 0.25, 0.8))
	shader := TextureFragment(tex, Tint{R: 0.5, G: 1, B: 2}, DefaultAlphaThreshold)

	got, ok := shader(V2(0.5, 0.5))
	if !ok {
		t.Fatal("fragment discarded")
	}
	want := RGBA2(0.5, 0.5, 0.5, 0.8)
	if !got.Approx(want, quantEps) {
		t.Errorf("tinted fragment = %+v, want %+v", got, want)
	}
}

func TestTextureFragmentNoTintIdentity(t *testing.T) {
	const quantEps = 1.0 / 255

	c := RGBA2(0.2, 0.4, 0.6, 1)
	shader := TextureFragment(solidTexture(c), NoTint, DefaultAlphaThreshold)

	got, ok := shader(V2(0.5, 0.5))
	if !ok {
		t.Fatal("fragment discarded")
	}
	if !got.Approx(c, quantEps) {
		t.Errorf("untinted fragment = %+v, want %+v", got, c)
	}
}

func TestSolidFragment(t *testing.T) {
	tests := []struct {
		name    string
		color   RGBA
		discard bool
	}{
		{"opaque", RGB(1, 0, 0), false},
		{"at threshold", RGBA2(1, 0, 0, 0.01), false},
		{"below threshold", RGBA2(1, 0, 0, 0.009), true},
		{"transparent", Transparent, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shader := SolidFragment(tt.color, DefaultAlphaThreshold)
			got, ok := shader(V2(0, 0))
			if ok == tt.discard {
				t.Errorf("discarded = %v, want %v", !ok, tt.discard)
			}
			if ok && got != tt.color {
				t.Errorf("color = %+v, want %+v", got, tt.color)
			}
		})
	}
}
