package transform

import (
	"github.com/vkosev/mathengine/fmath"
	"github.com/vkosev/mathengine/matrix"
	"github.com/vkosev/mathengine/vector"
)

// Transform is a 4×3 affine map stored column-major: columns 0–2 are the
// linear part, column 3 the translation; element (row r, col c) lives at
// index c*3+r. The homogeneous bottom row (0, 0, 0, 1) is implied.
type Transform [12]float32

// New builds a Transform from row-major arguments (the three stored rows of
// the 4×4 matrix it abbreviates):
//
//	| a  b  c  d |
//	| e  f  g  h |
//	| i  j  k  l |
//	| 0  0  0  1 |   (implied)
func New(a, b, c, d, e, f, g, h, i, j, k, l float32) Transform {
	return Transform{
		a, e, i, // column 0
		b, f, j, // column 1
		c, g, k, // column 2
		d, h, l, // column 3 (translation)
	}
}

// NewFromColumns builds a Transform from the three linear columns a, b, c
// and the translation p.
func NewFromColumns(a, b, c vector.Vector3, p vector.Point3) Transform {
	return Transform{
		a.X, a.Y, a.Z,
		b.X, b.Y, b.Z,
		c.X, c.Y, c.Z,
		p.X, p.Y, p.Z,
	}
}

// Identity returns the identity transform.
func Identity() Transform {
	return New(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
	)
}

// MakeRotation returns the transform rotating by angle radians about the
// unit axis a through the origin.
func MakeRotation(angle float32, a vector.Vector3) Transform {
	s, c := fmath.Sincos(angle)
	d := 1 - c

	x := a.X * d
	y := a.Y * d
	z := a.Z * d
	axay := x * a.Y
	axaz := x * a.Z
	ayaz := y * a.Z

	return New(
		c+x*a.X, axay-s*a.Z, axaz+s*a.Y, 0,
		axay+s*a.Z, c+y*a.Y, ayaz-s*a.X, 0,
		axaz-s*a.Y, ayaz+s*a.X, c+z*a.Z, 0,
	)
}

// MakeRotationX returns the transform rotating by angle radians about the
// X axis.
func MakeRotationX(angle float32) Transform {
	s, c := fmath.Sincos(angle)
	return New(
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
	)
}

// MakeRotationY returns the transform rotating by angle radians about the
// Y axis.
func MakeRotationY(angle float32) Transform {
	s, c := fmath.Sincos(angle)
	return New(
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
	)
}

// MakeRotationZ returns the transform rotating by angle radians about the
// Z axis.
func MakeRotationZ(angle float32) Transform {
	s, c := fmath.Sincos(angle)
	return New(
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
	)
}

// MakeScale returns the transform scaling by sx, sy, sz along the main axes.
func MakeScale(sx, sy, sz float32) Transform {
	return New(
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
	)
}

// MakeScaleX returns the transform scaling the X axis by sx.
func MakeScaleX(sx float32) Transform {
	return MakeScale(sx, 1, 1)
}

// MakeScaleY returns the transform scaling the Y axis by sy.
func MakeScaleY(sy float32) Transform {
	return MakeScale(1, sy, 1)
}

// MakeScaleZ returns the transform scaling the Z axis by sz.
func MakeScaleZ(sz float32) Transform {
	return MakeScale(1, 1, sz)
}

// MakeScaleAlong returns the transform scaling by factor s along the unit
// direction a.
func MakeScaleAlong(s float32, a vector.Vector3) Transform {
	d := s - 1
	x := a.X * d
	y := a.Y * d
	z := a.Z * d
	axay := x * a.Y
	axaz := x * a.Z
	ayaz := y * a.Z

	return New(
		x*a.X+1, axay, axaz, 0,
		axay, y*a.Y+1, ayaz, 0,
		axaz, ayaz, z*a.Z+1, 0,
	)
}

// MakeSkew returns the transform skewing by angle radians along the unit
// direction a, measured across the perpendicular unit direction b.
func MakeSkew(angle float32, a, b vector.Vector3) Transform {
	t := fmath.Tan(angle)
	x := a.X * t
	y := a.Y * t
	z := a.Z * t

	return New(
		x*b.X+1, x*b.Y, x*b.Z, 0,
		y*b.X, y*b.Y+1, y*b.Z, 0,
		z*b.X, z*b.Y, z*b.Z+1, 0,
	)
}

// MakeReflection returns the transform reflecting through the plane
// perpendicular to the unit vector n through the origin.
func MakeReflection(n vector.Vector3) Transform {
	x := n.X * -2
	y := n.Y * -2
	z := n.Z * -2
	nxny := x * n.Y
	nxnz := x * n.Z
	nynz := y * n.Z

	return New(
		x*n.X+1, nxny, nxnz, 0,
		nxny, y*n.Y+1, nynz, 0,
		nxnz, nynz, z*n.Z+1, 0,
	)
}

// MakePlaneReflection returns the transform reflecting through the plane
// with unit normal n and distance coefficient d ({p : n·p + d = 0}). Unlike
// MakeReflection the plane need not pass through the origin, so the
// translation column carries the offset.
func MakePlaneReflection(n vector.Vector3, d float32) Transform {
	x := n.X * -2
	y := n.Y * -2
	z := n.Z * -2
	nxny := x * n.Y
	nxnz := x * n.Z
	nynz := y * n.Z

	return New(
		x*n.X+1, nxny, nxnz, x*d,
		nxny, y*n.Y+1, nynz, y*d,
		nxnz, nynz, z*n.Z+1, z*d,
	)
}

// MakeInvolution returns the transform reflecting through the line spanned
// by the unit vector a.
func MakeInvolution(a vector.Vector3) Transform {
	x := a.X * 2
	y := a.Y * 2
	z := a.Z * 2
	axay := x * a.Y
	axaz := x * a.Z
	ayaz := y * a.Z

	return New(
		x*a.X-1, axay, axaz, 0,
		axay, y*a.Y-1, ayaz, 0,
		axaz, ayaz, z*a.Z-1, 0,
	)
}

// MakeTranslation returns the transform translating by v.
func MakeTranslation(v vector.Vector3) Transform {
	return New(
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
	)
}

// At returns element (row, col) of the stored 3×4 block. Panics if row is
// outside [0, 3) or col outside [0, 4).
func (h Transform) At(row, col int) float32 {
	if uint(row) >= 3 || uint(col) >= 4 {
		panic("transform: index out of range")
	}
	return h[col*3+row]
}

// Set assigns v to element (row, col). Panics if row is outside [0, 3) or
// col outside [0, 4).
func (h *Transform) Set(row, col int, v float32) {
	if uint(row) >= 3 || uint(col) >= 4 {
		panic("transform: index out of range")
	}
	h[col*3+row] = v
}

// Col returns column i as a vector; column 3 is the translation. Panics if
// i is outside [0, 4).
func (h Transform) Col(i int) vector.Vector3 {
	if uint(i) >= 4 {
		panic("transform: index out of range")
	}
	return vector.Vector3{X: h[i*3], Y: h[i*3+1], Z: h[i*3+2]}
}

// Translation returns the translation column as a position.
func (h Transform) Translation() vector.Point3 {
	return vector.Point3{X: h[9], Y: h[10], Z: h[11]}
}

// SetTranslation replaces the translation column with p.
func (h *Transform) SetTranslation(p vector.Point3) {
	h[9] = p.X
	h[10] = p.Y
	h[11] = p.Z
}

// Linear returns the upper-left 3×3 linear block.
func (h Transform) Linear() matrix.Matrix3 {
	return matrix.NewMatrix3FromColumns(h.Col(0), h.Col(1), h.Col(2))
}

// Determinant returns the determinant of the linear block; translation
// never affects volume scaling.
func (h Transform) Determinant() float32 {
	return h.Col(0).Cross(h.Col(1)).Dot(h.Col(2))
}

// Inverse computes the inverse with the same cross-product technique as the
// full Matrix4 inverse, minus the fourth-row terms the implied (0,0,0,1)
// row makes constant. The result's linear block inverts the original linear
// block and its translation is −L⁻¹·t. NaN/Inf-valued when the linear block
// is singular; use InverseChecked when that can happen.
func (h Transform) Inverse() Transform {
	a := h.Col(0)
	b := h.Col(1)
	c := h.Col(2)
	d := h.Col(3)

	s := a.Cross(b)
	t := c.Cross(d)

	inv := 1 / s.Dot(c)
	s = s.Scale(inv)
	t = t.Scale(inv)
	v := c.Scale(inv)

	r0 := b.Cross(v)
	r1 := v.Cross(a)

	return New(
		r0.X, r0.Y, r0.Z, -b.Dot(t),
		r1.X, r1.Y, r1.Z, a.Dot(t),
		s.X, s.Y, s.Z, -d.Dot(s),
	)
}

// InverseChecked returns the inverse, or matrix.ErrSingular when the linear
// block's determinant magnitude falls below fmath.MinNormal.
func (h Transform) InverseChecked() (Transform, error) {
	if fmath.Abs(h.Determinant()) < fmath.MinNormal {
		return Transform{}, matrix.ErrSingular
	}
	return h.Inverse(), nil
}

// Mul returns the composition h·o (o applied first). The result's linear
// block is the product of the linear blocks; its translation is
// h.linear·o.translation + h.translation.
func (h Transform) Mul(o Transform) Transform {
	var r Transform
	for c := 0; c < 4; c++ {
		for row := 0; row < 3; row++ {
			r[c*3+row] = h[row]*o[c*3] + h[3+row]*o[c*3+1] + h[6+row]*o[c*3+2]
		}
	}
	// Translation picks up h's own translation column (o's implied bottom
	// row contributes 1 there and 0 everywhere else).
	r[9] += h[9]
	r[10] += h[10]
	r[11] += h[11]
	return r
}

// MulMatrix3 returns the product of h's linear block with m.
func (h Transform) MulMatrix3(m matrix.Matrix3) matrix.Matrix3 {
	return h.Linear().Mul(m)
}

// MulScalar returns h with every stored element scaled by s.
func (h Transform) MulScalar(s float32) Transform {
	var r Transform
	for i := range h {
		r[i] = h[i] * s
	}
	return r
}

// Div returns h with every stored element divided by s.
func (h Transform) Div(s float32) Transform {
	return h.MulScalar(1 / s)
}

// TransformVec applies the linear block to the direction v; directions are
// translation-invariant.
func (h Transform) TransformVec(v vector.Vector3) vector.Vector3 {
	return vector.Vector3{
		X: h[0]*v.X + h[3]*v.Y + h[6]*v.Z,
		Y: h[1]*v.X + h[4]*v.Y + h[7]*v.Z,
		Z: h[2]*v.X + h[5]*v.Y + h[8]*v.Z,
	}
}

// TransformPoint applies the linear block to the position p, then adds the
// translation.
func (h Transform) TransformPoint(p vector.Point3) vector.Point3 {
	return vector.Point3{
		X: h[0]*p.X + h[3]*p.Y + h[6]*p.Z + h[9],
		Y: h[1]*p.X + h[4]*p.Y + h[7]*p.Z + h[10],
		Z: h[2]*p.X + h[5]*p.Y + h[8]*p.Z + h[11],
	}
}

// TransformVec2 applies the linear block to a direction in the XY plane,
// dropping the Z row.
func (h Transform) TransformVec2(v vector.Vector2) vector.Vector2 {
	return vector.Vector2{
		X: h[0]*v.X + h[3]*v.Y,
		Y: h[1]*v.X + h[4]*v.Y,
	}
}

// TransformPoint2 applies the linear block and translation to a position in
// the XY plane, dropping the Z row.
func (h Transform) TransformPoint2(p vector.Point2) vector.Point2 {
	return vector.Point2{
		X: h[0]*p.X + h[3]*p.Y + h[9],
		Y: h[1]*p.X + h[4]*p.Y + h[10],
	}
}

// Matrix4 expands h to the full 4×4 matrix, materializing the implied
// (0, 0, 0, 1) bottom row.
func (h Transform) Matrix4() matrix.Matrix4 {
	return matrix.NewMatrix4(
		h[0], h[3], h[6], h[9],
		h[1], h[4], h[7], h[10],
		h[2], h[5], h[8], h[11],
		0, 0, 0, 1,
	)
}
