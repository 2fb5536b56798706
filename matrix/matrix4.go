package matrix

import (
	"github.com/vkosev/mathengine/fmath"
	"github.com/vkosev/mathengine/vector"
)

// Matrix4 is a 4×4 float32 matrix stored column-major: element (row r,
// col c) lives at index c*4+r.
type Matrix4 [16]float32

// NewMatrix4 builds a Matrix4 from row-major arguments:
//
//	| a  b  c  d |
//	| e  f  g  h |
//	| i  j  k  l |
//	| m  n  o  p |
func NewMatrix4(a, b, c, d, e, f, g, h, i, j, k, l, m, n, o, p float32) Matrix4 {
	return Matrix4{
		a, e, i, m, // column 0
		b, f, j, n, // column 1
		c, g, k, o, // column 2
		d, h, l, p, // column 3
	}
}

// NewMatrix4FromColumns builds a Matrix4 whose columns are a, b, c, and d.
func NewMatrix4FromColumns(a, b, c, d vector.Vector4) Matrix4 {
	return Matrix4{
		a.X, a.Y, a.Z, a.W,
		b.X, b.Y, b.Z, b.W,
		c.X, c.Y, c.Z, c.W,
		d.X, d.Y, d.Z, d.W,
	}
}

// Identity4 returns the 4×4 identity matrix.
func Identity4() Matrix4 {
	return NewMatrix4(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// At returns element (row, col). Panics if either index is outside [0, 4).
func (m Matrix4) At(row, col int) float32 {
	if uint(row) >= 4 || uint(col) >= 4 {
		panic("matrix: index out of range")
	}
	return m[col*4+row]
}

// Set assigns v to element (row, col). Panics if either index is outside
// [0, 4).
func (m *Matrix4) Set(row, col int, v float32) {
	if uint(row) >= 4 || uint(col) >= 4 {
		panic("matrix: index out of range")
	}
	m[col*4+row] = v
}

// Col returns column i as a vector. Panics if i is outside [0, 4).
func (m Matrix4) Col(i int) vector.Vector4 {
	if uint(i) >= 4 {
		panic("matrix: index out of range")
	}
	return vector.Vector4{X: m[i*4], Y: m[i*4+1], Z: m[i*4+2], W: m[i*4+3]}
}

// col3 returns the first three rows of column i. Internal fast path for the
// block-decomposition routines; no bounds check.
func (m Matrix4) col3(i int) vector.Vector3 {
	return vector.Vector3{X: m[i*4], Y: m[i*4+1], Z: m[i*4+2]}
}

// Determinant returns det(m), computed from the same 2×2-block
// decomposition the inverse uses: with columns split into upper parts
// a,b,c,d and fourth-row entries x,y,z,w,
//
//	det = (a×b)·(c·w − d·z) + (c×d)·(a·y − b·x)
func (m Matrix4) Determinant() float32 {
	a := m.col3(0)
	b := m.col3(1)
	c := m.col3(2)
	d := m.col3(3)

	x := m[3]
	y := m[7]
	z := m[11]
	w := m[15]

	s := a.Cross(b)
	t := c.Cross(d)
	u := a.Scale(y).Sub(b.Scale(x))
	v := c.Scale(w).Sub(d.Scale(z))

	return s.Dot(v) + t.Dot(u)
}

// Inverse computes the inverse via the 2×2-block (Cayley) decomposition:
// four cross products of the column parts combine into the rows of the
// result without ever forming the 4×4 cofactor matrix. The result is
// NaN/Inf-valued when m is singular; callers needing safety check
// Determinant first or use InverseChecked.
func (m Matrix4) Inverse() Matrix4 {
	a := m.col3(0)
	b := m.col3(1)
	c := m.col3(2)
	d := m.col3(3)

	x := m[3]
	y := m[7]
	z := m[11]
	w := m[15]

	s := a.Cross(b)
	t := c.Cross(d)
	u := a.Scale(y).Sub(b.Scale(x))
	v := c.Scale(w).Sub(d.Scale(z))

	inv := 1 / (s.Dot(v) + t.Dot(u))
	s = s.Scale(inv)
	t = t.Scale(inv)
	u = u.Scale(inv)
	v = v.Scale(inv)

	r0 := b.Cross(v).Add(t.Scale(y))
	r1 := v.Cross(a).Sub(t.Scale(x))
	r2 := d.Cross(u).Add(s.Scale(w))
	r3 := u.Cross(c).Sub(s.Scale(z))

	return NewMatrix4(
		r0.X, r0.Y, r0.Z, -b.Dot(t),
		r1.X, r1.Y, r1.Z, a.Dot(t),
		r2.X, r2.Y, r2.Z, -d.Dot(s),
		r3.X, r3.Y, r3.Z, c.Dot(s),
	)
}

// InverseChecked returns the inverse, or ErrSingular when the determinant's
// magnitude falls below fmath.MinNormal.
func (m Matrix4) InverseChecked() (Matrix4, error) {
	if fmath.Abs(m.Determinant()) < fmath.MinNormal {
		return Matrix4{}, ErrSingular
	}
	return m.Inverse(), nil
}

// Transpose returns m with rows and columns exchanged.
func (m Matrix4) Transpose() Matrix4 {
	return Matrix4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Mul returns the matrix product m·o. Composition is not commutative.
func (m Matrix4) Mul(o Matrix4) Matrix4 {
	var r Matrix4
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			r[c*4+row] = m[row]*o[c*4] +
				m[4+row]*o[c*4+1] +
				m[8+row]*o[c*4+2] +
				m[12+row]*o[c*4+3]
		}
	}
	return r
}

// MulScalar returns m with every element scaled by s.
func (m Matrix4) MulScalar(s float32) Matrix4 {
	var r Matrix4
	for i := range m {
		r[i] = m[i] * s
	}
	return r
}

// Div returns m with every element divided by s.
func (m Matrix4) Div(s float32) Matrix4 {
	return m.MulScalar(1 / s)
}

// Transform returns m·v.
func (m Matrix4) Transform(v vector.Vector4) vector.Vector4 {
	return vector.Vector4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// TransformVec extends v with w=0 (a direction) and returns m·v. The
// translation column does not contribute.
func (m Matrix4) TransformVec(v vector.Vector3) vector.Vector4 {
	return vector.Vector4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z,
	}
}

// TransformPoint extends p with w=1 (a position) and returns m·p, including
// the translation column.
func (m Matrix4) TransformPoint(p vector.Point3) vector.Vector4 {
	return vector.Vector4{
		X: m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12],
		Y: m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13],
		Z: m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14],
		W: m[3]*p.X + m[7]*p.Y + m[11]*p.Z + m[15],
	}
}
