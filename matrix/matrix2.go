package matrix

import (
	"github.com/vkosev/mathengine/fmath"
	"github.com/vkosev/mathengine/vector"
)

// Matrix2 is a 2×2 float32 matrix stored column-major: element (row r,
// col c) lives at index c*2+r.
type Matrix2 [4]float32

// NewMatrix2 builds a Matrix2 from row-major arguments:
//
//	| a  b |
//	| c  d |
func NewMatrix2(a, b, c, d float32) Matrix2 {
	return Matrix2{
		a, c, // column 0
		b, d, // column 1
	}
}

// NewMatrix2FromColumns builds a Matrix2 whose columns are a and b.
func NewMatrix2FromColumns(a, b vector.Vector2) Matrix2 {
	return Matrix2{a.X, a.Y, b.X, b.Y}
}

// Identity2 returns the 2×2 identity matrix.
func Identity2() Matrix2 {
	return NewMatrix2(
		1, 0,
		0, 1,
	)
}

// Rotation2 returns the matrix rotating the plane counterclockwise by angle
// radians.
func Rotation2(angle float32) Matrix2 {
	s, c := fmath.Sincos(angle)
	return NewMatrix2(
		c, -s,
		s, c,
	)
}

// Scale2 returns the matrix scaling by sx along X and sy along Y.
func Scale2(sx, sy float32) Matrix2 {
	return NewMatrix2(
		sx, 0,
		0, sy,
	)
}

// UniformScale2 returns the matrix scaling both axes by s.
func UniformScale2(s float32) Matrix2 {
	return Scale2(s, s)
}

// ScaleX2 returns the matrix scaling the X axis by sx.
func ScaleX2(sx float32) Matrix2 {
	return Scale2(sx, 1)
}

// ScaleY2 returns the matrix scaling the Y axis by sy.
func ScaleY2(sy float32) Matrix2 {
	return Scale2(1, sy)
}

// At returns element (row, col). Panics if either index is outside [0, 2).
func (m Matrix2) At(row, col int) float32 {
	if uint(row) >= 2 || uint(col) >= 2 {
		panic("matrix: index out of range")
	}
	return m[col*2+row]
}

// Set assigns v to element (row, col). Panics if either index is outside
// [0, 2).
func (m *Matrix2) Set(row, col int, v float32) {
	if uint(row) >= 2 || uint(col) >= 2 {
		panic("matrix: index out of range")
	}
	m[col*2+row] = v
}

// Col returns column i as a vector. Panics if i is outside [0, 2).
func (m Matrix2) Col(i int) vector.Vector2 {
	if uint(i) >= 2 {
		panic("matrix: index out of range")
	}
	return vector.Vector2{X: m[i*2], Y: m[i*2+1]}
}

// Determinant returns ad − bc.
func (m Matrix2) Determinant() float32 {
	return m[0]*m[3] - m[2]*m[1]
}

// Inverse returns the inverse via the adjugate formula. The result is
// NaN/Inf-valued when m is singular; callers needing safety check
// Determinant first or use InverseChecked.
func (m Matrix2) Inverse() Matrix2 {
	inv := 1 / m.Determinant()
	return NewMatrix2(
		m[3]*inv, -m[2]*inv,
		-m[1]*inv, m[0]*inv,
	)
}

// InverseChecked returns the inverse, or ErrSingular when the determinant's
// magnitude falls below fmath.MinNormal.
func (m Matrix2) InverseChecked() (Matrix2, error) {
	if fmath.Abs(m.Determinant()) < fmath.MinNormal {
		return Matrix2{}, ErrSingular
	}
	return m.Inverse(), nil
}

// Transpose returns m with rows and columns exchanged.
func (m Matrix2) Transpose() Matrix2 {
	return Matrix2{m[0], m[2], m[1], m[3]}
}

// Mul returns the matrix product m·o. Composition is not commutative.
func (m Matrix2) Mul(o Matrix2) Matrix2 {
	return Matrix2{
		m[0]*o[0] + m[2]*o[1],
		m[1]*o[0] + m[3]*o[1],
		m[0]*o[2] + m[2]*o[3],
		m[1]*o[2] + m[3]*o[3],
	}
}

// MulScalar returns m with every element scaled by s.
func (m Matrix2) MulScalar(s float32) Matrix2 {
	return Matrix2{m[0] * s, m[1] * s, m[2] * s, m[3] * s}
}

// Div returns m with every element divided by s.
func (m Matrix2) Div(s float32) Matrix2 {
	return m.MulScalar(1 / s)
}

// Transform returns m·v.
func (m Matrix2) Transform(v vector.Vector2) vector.Vector2 {
	return vector.Vector2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}
