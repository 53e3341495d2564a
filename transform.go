package pixelzero

// ClipVertex is the output of a vertex stage: a clip-space position plus
// the texture coordinate carried to the fragment stage. W is always 1
// since no perspective is used.
type ClipVertex struct {
	Position Vec4
	TexCoord Vec2
}

// SpritePlacement defines an axis-aligned quad in the projection's
// coordinate space. Ephemeral, one per draw call.
type SpritePlacement struct {
	// Position is the top-left corner of the quad.
	Position Vec2

	// Size is the quad extent along each axis.
	Size Vec2
}

// LinePlacement defines an oriented stroke rectangle for a line segment.
//
// Unit and Normal must be unit-length and mutually perpendicular; the
// pipeline does not enforce this, and violating it skews the stroke.
type LinePlacement struct {
	// Position is the segment start point.
	Position Vec2

	// Unit is the unit vector along the segment.
	Unit Vec2

	// Normal is the unit vector perpendicular to Unit.
	Normal Vec2

	// Length is the segment length.
	Length float64
}

// LinePlacementFromPoints builds a placement for the segment from a to b.
// Degenerate segments (a == b) yield a zero unit vector and zero length.
func LinePlacementFromPoints(a, b Vec2) LinePlacement {
	d := b.Sub(a)
	unit := d.Normalize()
	return LinePlacement{
		Position: a,
		Unit:     unit,
		Normal:   unit.Perp(),
		Length:   d.Length(),
	}
}

// FullscreenVertex maps a vertex in [0,1]^2 straight to NDC (pos*2-1) with
// the texture coordinate passed through unchanged. Used by the compositor's
// vertex stage: the pass always covers the entire physical screen, so no
// projection matrix is involved.
func FullscreenVertex(v Vec2) ClipVertex {
	return ClipVertex{
		Position: Vec4{X: v.X*2 - 1, Y: v.Y*2 - 1, Z: 0, W: 1},
		TexCoord: v,
	}
}

// SpriteVertex transforms a local unit-quad vertex by a sprite placement:
// world = local*size + position, then clip = proj x (world, 0, 1).
func SpriteVertex(local Vec2, p SpritePlacement, proj Mat4) ClipVertex {
	world := local.MulVec(p.Size).Add(p.Position)
	return ClipVertex{
		Position: proj.TransformPoint(world),
		TexCoord: local,
	}
}

// TransformVertex is the alternative sprite call shape where the placement
// has been pre-composed into the matrix by the caller:
//
//	m := proj.Mul(Mat4Translate(x, y)).Mul(Mat4Scale(w, h))
//	v := TransformVertex(local, m)
//
// It is equivalent to SpriteVertex with the matching placement.
func TransformVertex(local Vec2, proj Mat4) ClipVertex {
	return ClipVertex{
		Position: proj.TransformPoint(local),
		TexCoord: local,
	}
}

// LineVertex transforms a local vertex of a line stroke. local.X in [0,1]
// parameterizes distance along the segment, local.Y is the signed
// perpendicular offset in world units (callers pass Y already scaled to the
// desired half-thickness, since Normal is unit length):
//
//	world = position + unit*(local.X*length) + normal*local.Y
func LineVertex(local Vec2, p LinePlacement, proj Mat4) ClipVertex {
	world := p.Position.
		Add(p.Unit.Mul(local.X * p.Length)).
		Add(p.Normal.Mul(local.Y))
	return ClipVertex{
		Position: proj.TransformPoint(world),
		TexCoord: local,
	}
}
