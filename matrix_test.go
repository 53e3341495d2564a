package pixelzero

import (
	"math"
	"testing"
)

func TestMat4IdentityTransform(t *testing.T) {
	m := Mat4Identity()
	if !m.IsIdentity() {
		t.Fatal("Mat4Identity().IsIdentity() = false")
	}

	v := V4(1, -2, 3, 1)
	if got := m.TransformVec4(v); !got.Approx(v, epsilon) {
		t.Errorf("identity transform changed vector: got %+v, want %+v", got, v)
	}
}

func TestOrthoPixelsCorners(t *testing.T) {
	// 320x240 pixel space: top-left maps to (-1, +1), bottom-right to
	// (+1, -1), center to the origin. +1 is at the top.
	m := OrthoPixels(320, 240)

	tests := []struct {
		name string
		p    Vec2
		want Vec4
	}{
		{"top-left", V2(0, 0), V4(-1, 1, 0, 1)},
		{"top-right", V2(320, 0), V4(1, 1, 0, 1)},
		{"bottom-left", V2(0, 240), V4(-1, -1, 0, 1)},
		{"bottom-right", V2(320, 240), V4(1, -1, 0, 1)},
		{"center", V2(160, 120), V4(0, 0, 0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.TransformPoint(tt.p)
			if !got.Approx(tt.want, epsilon) {
				t.Errorf("TransformPoint(%+v) = %+v, want %+v", tt.p, got, tt.want)
			}
		})
	}
}

func TestMat4TransformPointW(t *testing.T) {
	// W stays 1 through any of the 2D matrices: no perspective.
	matrices := []Mat4{
		Mat4Identity(),
		OrthoPixels(320, 240),
		Mat4Translate(10, 20),
		Mat4Scale(3, 4),
		OrthoPixels(320, 240).Mul(Mat4Translate(10, 20)).Mul(Mat4Scale(3, 4)),
	}
	for _, m := range matrices {
		if got := m.TransformPoint(V2(5, 7)).W; math.Abs(got-1) > epsilon {
			t.Errorf("TransformPoint W = %v, want 1", got)
		}
	}
}

func TestMat4MulOrder(t *testing.T) {
	// m.Mul(other) applies other first: translate(10,20)*scale(2,3) maps
	// (1,1) to (12,23), not (22,63).
	m := Mat4Translate(10, 20).Mul(Mat4Scale(2, 3))
	got := m.TransformPoint(V2(1, 1))
	want := V4(12, 23, 0, 1)
	if !got.Approx(want, epsilon) {
		t.Errorf("translate*scale (1,1) = %+v, want %+v", got, want)
	}
}

func TestMat4MulIdentity(t *testing.T) {
	m := OrthoPixels(320, 240)
	if got := m.Mul(Mat4Identity()); got != m {
		t.Error("m * I != m")
	}
	if got := Mat4Identity().Mul(m); got != m {
		t.Error("I * m != m")
	}
}

func TestMat4Float32(t *testing.T) {
	m := Mat4Translate(10, 20)
	f := m.Float32()
	if f[12] != 10 || f[13] != 20 {
		t.Errorf("Float32 translation = (%v, %v), want (10, 20)", f[12], f[13])
	}
	if f[0] != 1 || f[5] != 1 || f[10] != 1 || f[15] != 1 {
		t.Error("Float32 diagonal not preserved")
	}
}
