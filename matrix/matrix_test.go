package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkosev/mathengine/matrix"
	"github.com/vkosev/mathengine/vector"
)

const eps = 1e-5

// well-conditioned non-singular fixtures used across the inverse and
// determinant tests (determinants: −2, 18, −40).
var (
	m2 = matrix.NewMatrix2(
		1, 2,
		3, 4,
	)
	m3 = matrix.NewMatrix3(
		2, 1, 0,
		1, 3, 1,
		0, 1, 4,
	)
	m4 = matrix.NewMatrix4(
		1, 2, 3, 4,
		0, 1, 4, 5,
		5, 6, 0, 7,
		1, 0, 2, 3,
	)
)

func requireMatrix2InDelta(t *testing.T, want, got matrix.Matrix2) {
	t.Helper()
	for i := range want {
		require.InDelta(t, want[i], got[i], eps, "element %d", i)
	}
}

func requireMatrix3InDelta(t *testing.T, want, got matrix.Matrix3) {
	t.Helper()
	for i := range want {
		require.InDelta(t, want[i], got[i], eps, "element %d", i)
	}
}

func requireMatrix4InDelta(t *testing.T, want, got matrix.Matrix4) {
	t.Helper()
	for i := range want {
		require.InDelta(t, want[i], got[i], eps, "element %d", i)
	}
}

// The layout cross-check from the package contract: row-major constructor
// arguments fed with the identity pattern must reproduce Identity exactly.
func TestNew_IdentityCrossCheck(t *testing.T) {
	require.Equal(t, matrix.Identity2(), matrix.NewMatrix2(1, 0, 0, 1))
	require.Equal(t, matrix.Identity3(), matrix.NewMatrix3(1, 0, 0, 0, 1, 0, 0, 0, 1))
	require.Equal(t, matrix.Identity4(),
		matrix.NewMatrix4(1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1))
}

func TestAt_RowMajorArguments(t *testing.T) {
	// NewMatrix3's arguments read left-to-right, top-to-bottom.
	m := matrix.NewMatrix3(
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)
	require.Equal(t, float32(2), m.At(0, 1))
	require.Equal(t, float32(4), m.At(1, 0))
	require.Equal(t, float32(9), m.At(2, 2))
	// Columns are stored contiguously.
	require.Equal(t, vector.NewVector3(1, 4, 7), m.Col(0))
	require.Equal(t, vector.NewVector3(3, 6, 9), m.Col(2))
}

func TestAt_PanicsOutOfRange(t *testing.T) {
	require.Panics(t, func() { m2.At(2, 0) })
	require.Panics(t, func() { m3.At(0, 3) })
	require.Panics(t, func() { m3.At(-1, 0) })
	require.Panics(t, func() { m4.At(4, 4) })
	require.Panics(t, func() { m3.Col(3) })
	require.Panics(t, func() {
		m := matrix.Identity3()
		m.Set(3, 0, 1)
	})
}

func TestDeterminant_ConcreteValues(t *testing.T) {
	// 1*4 − 2*3 = −2, the row-major argument convention in action.
	require.InDelta(t, -2, m2.Determinant(), eps)
	require.InDelta(t, 18, m3.Determinant(), eps)
	require.InDelta(t, -40, m4.Determinant(), eps)
	require.InDelta(t, 1, matrix.Identity4().Determinant(), eps)
}

func TestDeterminant_Multiplicative(t *testing.T) {
	a := matrix.NewMatrix3(
		1, 2, 0,
		0, 1, 3,
		4, 0, 1,
	)
	b := matrix.NewMatrix3(
		2, 0, 1,
		1, 1, 0,
		0, 2, 2,
	)
	require.InDelta(t, a.Determinant()*b.Determinant(), a.Mul(b).Determinant(), eps)
	require.InDelta(t, m4.Determinant()*m4.Determinant(), m4.Mul(m4).Determinant(), 1e-3)
}

func TestInverse_RoundTripsToIdentity(t *testing.T) {
	requireMatrix2InDelta(t, matrix.Identity2(), m2.Mul(m2.Inverse()))
	requireMatrix2InDelta(t, matrix.Identity2(), m2.Inverse().Mul(m2))

	requireMatrix3InDelta(t, matrix.Identity3(), m3.Mul(m3.Inverse()))
	requireMatrix3InDelta(t, matrix.Identity3(), m3.Inverse().Mul(m3))

	requireMatrix4InDelta(t, matrix.Identity4(), m4.Mul(m4.Inverse()))
	requireMatrix4InDelta(t, matrix.Identity4(), m4.Inverse().Mul(m4))
}

func TestInverse2_AdjugateFormula(t *testing.T) {
	// inverse of [[1,2],[3,4]] is [[-2,1],[1.5,-0.5]]
	requireMatrix2InDelta(t, matrix.NewMatrix2(-2, 1, 1.5, -0.5), m2.Inverse())
}

func TestInverseChecked_Singular(t *testing.T) {
	_, err := matrix.NewMatrix2(1, 2, 2, 4).InverseChecked()
	require.ErrorIs(t, err, matrix.ErrSingular)

	// Rank-deficient: third row is the sum of the first two.
	_, err = matrix.NewMatrix3(1, 0, 0, 0, 1, 0, 1, 1, 0).InverseChecked()
	require.ErrorIs(t, err, matrix.ErrSingular)

	var zero4 matrix.Matrix4
	_, err = zero4.InverseChecked()
	require.ErrorIs(t, err, matrix.ErrSingular)

	got, err := m3.InverseChecked()
	require.NoError(t, err)
	requireMatrix3InDelta(t, m3.Inverse(), got)
}

func TestTranspose_Involution(t *testing.T) {
	require.Equal(t, m2, m2.Transpose().Transpose())
	require.Equal(t, m3, m3.Transpose().Transpose())
	require.Equal(t, m4, m4.Transpose().Transpose())

	n := matrix.NewMatrix3(
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)
	require.Equal(t, n.At(0, 1), n.Transpose().At(1, 0))
	require.Equal(t, float32(4), n.Transpose().At(0, 1))
}

func TestIdentity_TransformIsNoop(t *testing.T) {
	v := vector.NewVector3(1.5, -2, 3.25)
	require.Equal(t, v, matrix.Identity3().Transform(v))

	v4 := vector.NewVector4(1, 2, 3, 4)
	require.Equal(t, v4, matrix.Identity4().Transform(v4))

	v2 := vector.NewVector2(-7, 2)
	require.Equal(t, v2, matrix.Identity2().Transform(v2))
}

func TestRotation2(t *testing.T) {
	r := matrix.Rotation2(math.Pi / 2)
	got := r.Transform(vector.NewVector2(1, 0))
	require.InDelta(t, 0, got.X, eps)
	require.InDelta(t, 1, got.Y, eps)
}

func TestRotation3_CardinalAxes(t *testing.T) {
	x := vector.NewVector3(1, 0, 0)
	y := vector.NewVector3(0, 1, 0)
	z := vector.NewVector3(0, 0, 1)

	tests := []struct {
		name string
		m    matrix.Matrix3
		in   vector.Vector3
		want vector.Vector3
	}{
		{"Z sends X to Y", matrix.RotationZ3(math.Pi / 2), x, y},
		{"X sends Y to Z", matrix.RotationX3(math.Pi / 2), y, z},
		{"Y sends Z to X", matrix.RotationY3(math.Pi / 2), z, x},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.m.Transform(tc.in)
			require.InDelta(t, tc.want.X, got.X, eps)
			require.InDelta(t, tc.want.Y, got.Y, eps)
			require.InDelta(t, tc.want.Z, got.Z, eps)
		})
	}
}

func TestRotation3_AxisAngleMatchesCardinal(t *testing.T) {
	// Rodrigues about ẑ must agree with the closed-form Z rotation.
	angle := float32(0.7)
	a := matrix.Rotation3(angle, vector.NewVector3(0, 0, 1))
	b := matrix.RotationZ3(angle)
	requireMatrix3InDelta(t, b, a)

	// A rotation never changes volume.
	axis := vector.NewVector3(1, 2, 2).Normalized()
	require.InDelta(t, 1, matrix.Rotation3(1.1, axis).Determinant(), eps)
}

func TestRotation3_ApplicationAssociativity(t *testing.T) {
	r1 := matrix.Rotation3(0.5, vector.NewVector3(1, 0, 0))
	r2 := matrix.Rotation3(1.2, vector.NewVector3(0, 1, 0))
	v := vector.NewVector3(1, 2, 3)

	left := r1.Mul(r2).Transform(v)
	right := r1.Transform(r2.Transform(v))
	require.InDelta(t, left.X, right.X, eps)
	require.InDelta(t, left.Y, right.Y, eps)
	require.InDelta(t, left.Z, right.Z, eps)
}

func TestScaleAlong3(t *testing.T) {
	// Scaling by 3 along x̂ stretches the X component only.
	m := matrix.ScaleAlong3(3, vector.NewVector3(1, 0, 0))
	requireMatrix3InDelta(t, matrix.Scale3(3, 1, 1), m)

	// Directions perpendicular to the scale axis are untouched.
	axis := vector.NewVector3(1, 1, 0).Normalized()
	perp := vector.NewVector3(0, 0, 1)
	got := matrix.ScaleAlong3(5, axis).Transform(perp)
	require.InDelta(t, perp.X, got.X, eps)
	require.InDelta(t, perp.Y, got.Y, eps)
	require.InDelta(t, perp.Z, got.Z, eps)
}

func TestReflection3_IsInvolution(t *testing.T) {
	n := vector.NewVector3(1, 2, -1).Normalized()
	r := matrix.Reflection3(n)

	requireMatrix3InDelta(t, matrix.Identity3(), r.Mul(r))
	// A reflection flips orientation.
	require.InDelta(t, -1, r.Determinant(), eps)
	// The normal itself is negated.
	got := r.Transform(n)
	require.InDelta(t, -n.X, got.X, eps)
	require.InDelta(t, -n.Y, got.Y, eps)
	require.InDelta(t, -n.Z, got.Z, eps)
}

func TestInvolution3_IsInvolution(t *testing.T) {
	a := vector.NewVector3(0, 1, 0)
	r := matrix.Involution3(a)

	requireMatrix3InDelta(t, matrix.Identity3(), r.Mul(r))
	// The axis is fixed, perpendicular directions are negated.
	require.Equal(t, a, r.Transform(a))
	got := r.Transform(vector.NewVector3(1, 0, 0))
	require.InDelta(t, -1, got.X, eps)
}

func TestSkew3(t *testing.T) {
	// Skew along x̂ across ŷ at 45°: (x, y, z) → (x + y, y, z).
	m := matrix.Skew3(math.Pi/4, vector.NewVector3(1, 0, 0), vector.NewVector3(0, 1, 0))
	got := m.Transform(vector.NewVector3(2, 3, 4))
	require.InDelta(t, 5, got.X, eps)
	require.InDelta(t, 3, got.Y, eps)
	require.InDelta(t, 4, got.Z, eps)
	// Shears preserve volume.
	require.InDelta(t, 1, m.Determinant(), eps)
}

func TestMatrix4_TransformVecAndPoint(t *testing.T) {
	// Pure translation embedded in a 4×4.
	m := matrix.NewMatrix4(
		1, 0, 0, 10,
		0, 1, 0, 20,
		0, 0, 1, 30,
		0, 0, 0, 1,
	)

	// Directions (w=0) ignore the translation column.
	v := m.TransformVec(vector.NewVector3(1, 2, 3))
	require.Equal(t, vector.NewVector4(1, 2, 3, 0), v)

	// Positions (w=1) pick it up.
	p := m.TransformPoint(vector.NewPoint3(1, 2, 3))
	require.Equal(t, vector.NewVector4(11, 22, 33, 1), p)
}

func TestMulScalarDiv(t *testing.T) {
	doubled := m3.MulScalar(2)
	require.InDelta(t, 2*m3.At(1, 1), doubled.At(1, 1), eps)
	requireMatrix3InDelta(t, m3, doubled.Div(2))

	requireMatrix2InDelta(t, m2, m2.MulScalar(4).Div(4))
	requireMatrix4InDelta(t, m4, m4.MulScalar(4).Div(4))
}

func TestNewFromColumns(t *testing.T) {
	a := vector.NewVector3(1, 2, 3)
	b := vector.NewVector3(4, 5, 6)
	c := vector.NewVector3(7, 8, 9)
	m := matrix.NewMatrix3FromColumns(a, b, c)

	require.Equal(t, a, m.Col(0))
	require.Equal(t, b, m.Col(1))
	require.Equal(t, c, m.Col(2))
	// Column i, row r — the transpose of the row-major reading.
	require.Equal(t, float32(4), m.At(0, 1))

	m2c := matrix.NewMatrix2FromColumns(vector.NewVector2(1, 2), vector.NewVector2(3, 4))
	require.Equal(t, vector.NewVector2(1, 2), m2c.Col(0))

	m4c := matrix.NewMatrix4FromColumns(
		vector.NewVector4(1, 2, 3, 4),
		vector.NewVector4(5, 6, 7, 8),
		vector.NewVector4(9, 10, 11, 12),
		vector.NewVector4(13, 14, 15, 16),
	)
	require.Equal(t, vector.NewVector4(5, 6, 7, 8), m4c.Col(1))
}
