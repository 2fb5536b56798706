package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkosev/mathengine/vector"
)

const eps = 1e-6

func TestVector3_Arithmetic(t *testing.T) {
	a := vector.NewVector3(1, 2, 3)
	b := vector.NewVector3(2, 3, 4)

	require.Equal(t, vector.NewVector3(3, 5, 7), a.Add(b))
	require.Equal(t, vector.NewVector3(-1, -1, -1), a.Sub(b))
	require.Equal(t, vector.NewVector3(2, 4, 6), a.Scale(2))
	require.Equal(t, vector.NewVector3(0.5, 1, 1.5), a.Div(2))
	require.Equal(t, vector.NewVector3(2, 6, 12), a.Mul(b))
	require.Equal(t, vector.NewVector3(-1, -2, -3), a.Neg())
}

func TestVector3_DotCross(t *testing.T) {
	x := vector.NewVector3(1, 0, 0)
	y := vector.NewVector3(0, 1, 0)
	z := vector.NewVector3(0, 0, 1)

	// Right-handed basis: x × y = z and cyclic permutations.
	require.Equal(t, z, x.Cross(y))
	require.Equal(t, x, y.Cross(z))
	require.Equal(t, y, z.Cross(x))

	// Anti-commutativity.
	a := vector.NewVector3(1, 2, 3)
	b := vector.NewVector3(-4, 5, 6)
	require.Equal(t, a.Cross(b), b.Cross(a).Neg())

	// The cross product is perpendicular to both operands.
	c := a.Cross(b)
	require.InDelta(t, 0, c.Dot(a), eps)
	require.InDelta(t, 0, c.Dot(b), eps)

	require.InDelta(t, 32, vector.NewVector3(1, 2, 3).Dot(vector.NewVector3(4, 5, 6)), eps)
}

func TestVector3_Magnitude(t *testing.T) {
	v := vector.NewVector3(2, 3, 6)
	require.InDelta(t, 7, v.Magnitude(), eps)
	require.InDelta(t, 49, v.MagnitudeSq(), eps)
}

func TestVector3_Normalize(t *testing.T) {
	v := vector.NewVector3(3, 0, 4)

	n := v.Normalized()
	require.InDelta(t, 1, n.Magnitude(), eps)
	require.InDelta(t, 0.6, n.X, eps)
	require.InDelta(t, 0.8, n.Z, eps)
	// Value variant leaves the receiver untouched.
	require.Equal(t, vector.NewVector3(3, 0, 4), v)

	// In-place variant mutates.
	v.Normalize()
	require.InDelta(t, 1, v.Magnitude(), eps)
	require.Equal(t, n, v)
}

func TestVector3_ProjectRejectReflect(t *testing.T) {
	n := vector.NewVector3(0, 1, 0)
	v := vector.NewVector3(3, 4, 5)

	proj := v.Project(n)
	rej := v.Reject(n)
	require.Equal(t, vector.NewVector3(0, 4, 0), proj)
	require.Equal(t, vector.NewVector3(3, 0, 5), rej)
	// Projection and rejection always reassemble the original vector.
	require.Equal(t, v, proj.Add(rej))

	// Reflection through the XZ plane flips the Y component only.
	require.Equal(t, vector.NewVector3(3, -4, 5), v.Reflect(n))
}

func TestVector3_At(t *testing.T) {
	v := vector.NewVector3(1, 2, 3)
	require.Equal(t, float32(1), v.At(0))
	require.Equal(t, float32(2), v.At(1))
	require.Equal(t, float32(3), v.At(2))
	require.Panics(t, func() { v.At(3) })
	require.Panics(t, func() { v.At(-1) })

	v.SetAt(1, 9)
	require.Equal(t, float32(9), v.Y)
	require.Panics(t, func() { v.SetAt(3, 0) })
}

func TestVector2_Basics(t *testing.T) {
	a := vector.NewVector2(3, 4)
	require.InDelta(t, 5, a.Magnitude(), eps)
	require.InDelta(t, 1, a.Normalized().Magnitude(), eps)
	require.InDelta(t, 11, a.Dot(vector.NewVector2(1, 2)), eps)
	require.Equal(t, vector.NewVector2(4, 6), a.Add(vector.NewVector2(1, 2)))
	require.Panics(t, func() { a.At(2) })

	n := vector.NewVector2(1, 0)
	require.Equal(t, vector.NewVector2(3, 0), a.Project(n))
	require.Equal(t, vector.NewVector2(0, 4), a.Reject(n))
}

func TestVector4_Basics(t *testing.T) {
	a := vector.NewVector4(1, 2, 3, 4)
	b := vector.NewVector4(2, 2, 2, 2)

	require.InDelta(t, 20, a.Dot(b), eps)
	require.Equal(t, vector.NewVector4(3, 4, 5, 6), a.Add(b))
	require.Equal(t, vector.NewVector3(1, 2, 3), a.XYZ())
	require.InDelta(t, 1, a.Normalized().Magnitude(), eps)
	require.Panics(t, func() { a.At(4) })
}

func TestPoint3_AffineAlgebra(t *testing.T) {
	p := vector.NewPoint3(1, 2, 3)
	q := vector.NewPoint3(4, 6, 8)
	v := vector.NewVector3(1, 1, 1)

	// Point − Point yields a direction.
	require.Equal(t, vector.NewVector3(3, 4, 5), q.Sub(p))
	// Point ± Vector stays a position.
	require.Equal(t, vector.NewPoint3(2, 3, 4), p.AddVec(v))
	require.Equal(t, vector.NewPoint3(0, 1, 2), p.SubVec(v))
	// Explicit conversions round-trip.
	require.Equal(t, p, p.Vec().Point())
}

func TestPoint2_AffineAlgebra(t *testing.T) {
	p := vector.NewPoint2(1, 2)
	q := vector.NewPoint2(3, 5)

	require.Equal(t, vector.NewVector2(2, 3), q.Sub(p))
	require.Equal(t, vector.NewPoint2(2, 4), p.AddVec(vector.NewVector2(1, 2)))
	require.Equal(t, vector.NewVector2(1, 2), p.Vec())
}
