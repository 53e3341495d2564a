// Package raster rasterizes textured triangles into a pixel buffer.
//
// It is the bridge between the two pure pipeline stages: vertices arrive
// already transformed to screen space, texture coordinates are interpolated
// across each triangle with barycentric weights, and a fragment callback
// decides the color written at every covered pixel center.
package raster

import "math"

// RGBA represents a color (internal copy to avoid import cycle).
type RGBA struct {
	R, G, B, A float64
}

// Pixmap is an interface for writing pixels (avoids import cycle).
type Pixmap interface {
	Width() int
	Height() int
	BlendPixel(x, y int, c RGBA)
}

// Vertex is a screen-space position in pixels plus its texture coordinate.
type Vertex struct {
	X, Y float64
	U, V float64
}

// Shader produces the color for a fragment at interpolated texture
// coordinate (u, v). A false result discards the fragment: nothing is
// written and the destination pixel keeps its previous value.
type Shader func(u, v float64) (RGBA, bool)

// edge computes the signed area of the triangle (a, b, p) times two.
// The sign tells which side of edge ab the point p lies on.
func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// FillTriangle rasterizes one triangle. Pixel centers inside the triangle
// (either winding) are shaded; degenerate triangles cover nothing.
func FillTriangle(dst Pixmap, v0, v1, v2 Vertex, shade Shader) {
	area := edge(v0.X, v0.Y, v1.X, v1.Y, v2.X, v2.Y)
	if area == 0 {
		return
	}

	minX := int(math.Floor(min3(v0.X, v1.X, v2.X)))
	maxX := int(math.Ceil(max3(v0.X, v1.X, v2.X)))
	minY := int(math.Floor(min3(v0.Y, v1.Y, v2.Y)))
	maxY := int(math.Ceil(max3(v0.Y, v1.Y, v2.Y)))

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > dst.Width() {
		maxX = dst.Width()
	}
	if maxY > dst.Height() {
		maxY = dst.Height()
	}

	inv := 1 / area
	for y := minY; y < maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x < maxX; x++ {
			px := float64(x) + 0.5

			// Barycentric weights; all three share the sign of area
			// when the point is inside, whichever the winding.
			w0 := edge(v1.X, v1.Y, v2.X, v2.Y, px, py) * inv
			w1 := edge(v2.X, v2.Y, v0.X, v0.Y, px, py) * inv
			w2 := edge(v0.X, v0.Y, v1.X, v1.Y, px, py) * inv
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			u := w0*v0.U + w1*v1.U + w2*v2.U
			v := w0*v0.V + w1*v1.V + w2*v2.V
			c, ok := shade(u, v)
			if !ok {
				continue
			}
			dst.BlendPixel(x, y, c)
		}
	}
}

// FillQuad rasterizes the quad (v0, v1, v2, v3) given in strip order, the
// same vertex order the unit-quad buffers use: two triangles sharing the
// v1-v2 diagonal.
func FillQuad(dst Pixmap, v0, v1, v2, v3 Vertex, shade Shader) {
	FillTriangle(dst, v0, v1, v2, shade)
	FillTriangle(dst, v1, v3, v2, shade)
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
