package pixelzero

// Mat4 represents a 4x4 transformation matrix in column-major order,
// matching the memory layout GPU APIs expect. Element (row, col) is stored
// at index col*4+row.
//
// A Mat4 is shared by all draw calls in a frame as the projection matrix
// and must not be mutated mid-frame.
type Mat4 [16]float64

// Mat4Identity returns the identity matrix.
func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Ortho returns an orthographic projection mapping the box
// [left,right]x[bottom,top]x[near,far] to NDC [-1,1] on each axis.
func Ortho(left, right, bottom, top, near, far float64) Mat4 {
	rl := right - left
	tb := top - bottom
	fn := far - near
	return Mat4{
		2 / rl, 0, 0, 0,
		0, 2 / tb, 0, 0,
		0, 0, -2 / fn, 0,
		-(right + left) / rl, -(top + bottom) / tb, -(far + near) / fn, 1,
	}
}

// OrthoPixels returns the projection for a width x height pixel space with
// the origin at the top-left, Y increasing down, and +1 at the top of NDC.
func OrthoPixels(width, height float64) Mat4 {
	return Ortho(0, width, height, 0, -1, 1)
}

// Mat4Translate returns a translation matrix.
func Mat4Translate(x, y float64) Mat4 {
	m := Mat4Identity()
	m[12] = x
	m[13] = y
	return m
}

// Mat4Scale returns a scaling matrix.
func Mat4Scale(x, y float64) Mat4 {
	m := Mat4Identity()
	m[0] = x
	m[5] = y
	return m
}

// Mul returns the matrix product m * other. Applied to a vector, other's
// transform runs first. Callers use this to pre-compose a sprite placement
// into the projection: proj.Mul(Mat4Translate(...)).Mul(Mat4Scale(...)).
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * other[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// TransformVec4 applies the matrix to a 4-component vector.
func (m Mat4) TransformVec4(v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// TransformPoint applies the matrix to a 2D point extended to (x, y, 0, 1).
func (m Mat4) TransformPoint(p Vec2) Vec4 {
	return m.TransformVec4(Vec4{X: p.X, Y: p.Y, Z: 0, W: 1})
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Mat4) IsIdentity() bool {
	return m == Mat4Identity()
}

// Float32 returns the matrix as float32 values in column-major order,
// the layout uploaded to GPU uniform buffers.
func (m Mat4) Float32() [16]float32 {
	var out [16]float32
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}
