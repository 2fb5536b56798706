package matrix

import (
	"github.com/vkosev/mathengine/fmath"
	"github.com/vkosev/mathengine/vector"
)

// Matrix3 is a 3×3 float32 matrix stored column-major: element (row r,
// col c) lives at index c*3+r.
type Matrix3 [9]float32

// NewMatrix3 builds a Matrix3 from row-major arguments:
//
//	| a  b  c |
//	| d  e  f |
//	| g  h  i |
func NewMatrix3(a, b, c, d, e, f, g, h, i float32) Matrix3 {
	return Matrix3{
		a, d, g, // column 0
		b, e, h, // column 1
		c, f, i, // column 2
	}
}

// NewMatrix3FromColumns builds a Matrix3 whose columns are a, b, and c.
func NewMatrix3FromColumns(a, b, c vector.Vector3) Matrix3 {
	return Matrix3{
		a.X, a.Y, a.Z,
		b.X, b.Y, b.Z,
		c.X, c.Y, c.Z,
	}
}

// Identity3 returns the 3×3 identity matrix.
func Identity3() Matrix3 {
	return NewMatrix3(
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	)
}

// Rotation3 returns the matrix rotating by angle radians about the unit
// axis a (Rodrigues' formula: I·cosθ + (1−cosθ)·a⊗a + sinθ·[a]ₓ).
func Rotation3(angle float32, a vector.Vector3) Matrix3 {
	s, c := fmath.Sincos(angle)
	d := 1 - c

	x := a.X * d
	y := a.Y * d
	z := a.Z * d
	axay := x * a.Y
	axaz := x * a.Z
	ayaz := y * a.Z

	return NewMatrix3(
		c+x*a.X, axay-s*a.Z, axaz+s*a.Y,
		axay+s*a.Z, c+y*a.Y, ayaz-s*a.X,
		axaz-s*a.Y, ayaz+s*a.X, c+z*a.Z,
	)
}

// RotationX3 returns the matrix rotating by angle radians about the X axis.
func RotationX3(angle float32) Matrix3 {
	s, c := fmath.Sincos(angle)
	return NewMatrix3(
		1, 0, 0,
		0, c, -s,
		0, s, c,
	)
}

// RotationY3 returns the matrix rotating by angle radians about the Y axis.
func RotationY3(angle float32) Matrix3 {
	s, c := fmath.Sincos(angle)
	return NewMatrix3(
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	)
}

// RotationZ3 returns the matrix rotating by angle radians about the Z axis.
func RotationZ3(angle float32) Matrix3 {
	s, c := fmath.Sincos(angle)
	return NewMatrix3(
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	)
}

// Scale3 returns the matrix scaling by sx, sy, sz along the main axes.
func Scale3(sx, sy, sz float32) Matrix3 {
	return NewMatrix3(
		sx, 0, 0,
		0, sy, 0,
		0, 0, sz,
	)
}

// ScaleX3 returns the matrix scaling the X axis by sx.
func ScaleX3(sx float32) Matrix3 {
	return Scale3(sx, 1, 1)
}

// ScaleY3 returns the matrix scaling the Y axis by sy.
func ScaleY3(sy float32) Matrix3 {
	return Scale3(1, sy, 1)
}

// ScaleZ3 returns the matrix scaling the Z axis by sz.
func ScaleZ3(sz float32) Matrix3 {
	return Scale3(1, 1, sz)
}

// UniformScale3 returns the matrix scaling all axes by s.
func UniformScale3(s float32) Matrix3 {
	return Scale3(s, s, s)
}

// ScaleAlong3 returns the matrix scaling by factor s along the unit
// direction a, leaving directions perpendicular to a unchanged.
func ScaleAlong3(s float32, a vector.Vector3) Matrix3 {
	d := s - 1
	x := a.X * d
	y := a.Y * d
	z := a.Z * d
	axay := x * a.Y
	axaz := x * a.Z
	ayaz := y * a.Z

	return NewMatrix3(
		x*a.X+1, axay, axaz,
		axay, y*a.Y+1, ayaz,
		axaz, ayaz, z*a.Z+1,
	)
}

// Skew3 returns the matrix skewing by angle radians along the unit direction
// a, measured across the unit direction b. a and b must be perpendicular.
func Skew3(angle float32, a, b vector.Vector3) Matrix3 {
	t := fmath.Tan(angle)
	x := a.X * t
	y := a.Y * t
	z := a.Z * t

	return NewMatrix3(
		x*b.X+1, x*b.Y, x*b.Z,
		y*b.X, y*b.Y+1, y*b.Z,
		z*b.X, z*b.Y, z*b.Z+1,
	)
}

// Reflection3 returns the matrix reflecting through the plane perpendicular
// to the unit vector a.
func Reflection3(a vector.Vector3) Matrix3 {
	x := a.X * -2
	y := a.Y * -2
	z := a.Z * -2
	axay := x * a.Y
	axaz := x * a.Z
	ayaz := y * a.Z

	return NewMatrix3(
		x*a.X+1, axay, axaz,
		axay, y*a.Y+1, ayaz,
		axaz, ayaz, z*a.Z+1,
	)
}

// Involution3 returns the matrix reflecting through the line spanned by the
// unit vector a. Applying it twice yields the identity.
func Involution3(a vector.Vector3) Matrix3 {
	x := a.X * 2
	y := a.Y * 2
	z := a.Z * 2
	axay := x * a.Y
	axaz := x * a.Z
	ayaz := y * a.Z

	return NewMatrix3(
		x*a.X-1, axay, axaz,
		axay, y*a.Y-1, ayaz,
		axaz, ayaz, z*a.Z-1,
	)
}

// At returns element (row, col). Panics if either index is outside [0, 3).
func (m Matrix3) At(row, col int) float32 {
	if uint(row) >= 3 || uint(col) >= 3 {
		panic("matrix: index out of range")
	}
	return m[col*3+row]
}

// Set assigns v to element (row, col). Panics if either index is outside
// [0, 3).
func (m *Matrix3) Set(row, col int, v float32) {
	if uint(row) >= 3 || uint(col) >= 3 {
		panic("matrix: index out of range")
	}
	m[col*3+row] = v
}

// Col returns column i as a vector. Panics if i is outside [0, 3).
func (m Matrix3) Col(i int) vector.Vector3 {
	if uint(i) >= 3 {
		panic("matrix: index out of range")
	}
	return vector.Vector3{X: m[i*3], Y: m[i*3+1], Z: m[i*3+2]}
}

// Determinant returns the scalar triple product of the columns,
// c2 · (c0 × c1), which equals the cofactor expansion.
func (m Matrix3) Determinant() float32 {
	return m.Col(0).Cross(m.Col(1)).Dot(m.Col(2))
}

// Inverse computes the inverse via the adjugate-transpose method: three
// cross products of the columns form the rows of the adjugate, scaled by the
// reciprocal determinant. The result is NaN/Inf-valued when m is singular;
// callers needing safety check Determinant first or use InverseChecked.
func (m Matrix3) Inverse() Matrix3 {
	a := m.Col(0)
	b := m.Col(1)
	c := m.Col(2)

	r0 := b.Cross(c)
	r1 := c.Cross(a)
	r2 := a.Cross(b)

	inv := 1 / r2.Dot(c)

	return NewMatrix3(
		r0.X*inv, r0.Y*inv, r0.Z*inv,
		r1.X*inv, r1.Y*inv, r1.Z*inv,
		r2.X*inv, r2.Y*inv, r2.Z*inv,
	)
}

// InverseChecked returns the inverse, or ErrSingular when the determinant's
// magnitude falls below fmath.MinNormal.
func (m Matrix3) InverseChecked() (Matrix3, error) {
	if fmath.Abs(m.Determinant()) < fmath.MinNormal {
		return Matrix3{}, ErrSingular
	}
	return m.Inverse(), nil
}

// Transpose returns m with rows and columns exchanged.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Mul returns the matrix product m·o. Composition is not commutative.
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	return Matrix3{
		m[0]*o[0] + m[3]*o[1] + m[6]*o[2],
		m[1]*o[0] + m[4]*o[1] + m[7]*o[2],
		m[2]*o[0] + m[5]*o[1] + m[8]*o[2],
		m[0]*o[3] + m[3]*o[4] + m[6]*o[5],
		m[1]*o[3] + m[4]*o[4] + m[7]*o[5],
		m[2]*o[3] + m[5]*o[4] + m[8]*o[5],
		m[0]*o[6] + m[3]*o[7] + m[6]*o[8],
		m[1]*o[6] + m[4]*o[7] + m[7]*o[8],
		m[2]*o[6] + m[5]*o[7] + m[8]*o[8],
	}
}

// MulScalar returns m with every element scaled by s.
func (m Matrix3) MulScalar(s float32) Matrix3 {
	var r Matrix3
	for i := range m {
		r[i] = m[i] * s
	}
	return r
}

// Div returns m with every element divided by s.
func (m Matrix3) Div(s float32) Matrix3 {
	return m.MulScalar(1 / s)
}

// Transform returns m·v.
func (m Matrix3) Transform(v vector.Vector3) vector.Vector3 {
	return vector.Vector3{
		X: m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		Y: m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		Z: m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}
