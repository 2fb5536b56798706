package quaternion

import (
	"github.com/vkosev/mathengine/fmath"
	"github.com/vkosev/mathengine/matrix"
	"github.com/vkosev/mathengine/vector"
)

// Quaternion is a rotation quaternion: (X, Y, Z) is the vector part and W
// the scalar part.
type Quaternion struct {
	X, Y, Z, W float32
}

// New returns the quaternion with vector part (x, y, z) and scalar part w.
func New(x, y, z, w float32) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

// NewFromVector returns the quaternion with vector part v and scalar part s.
func NewFromVector(v vector.Vector3, s float32) Quaternion {
	return Quaternion{X: v.X, Y: v.Y, Z: v.Z, W: s}
}

// Identity returns the identity rotation.
func Identity() Quaternion {
	return Quaternion{W: 1}
}

// FromAxisAngle returns the unit quaternion rotating by angle radians about
// the unit axis a.
func FromAxisAngle(angle float32, a vector.Vector3) Quaternion {
	s, c := fmath.Sincos(angle / 2)
	return Quaternion{X: a.X * s, Y: a.Y * s, Z: a.Z * s, W: c}
}

// FromRotationMatrix returns the unit quaternion representing the rotation
// matrix m. See SetRotationMatrix for the algorithm.
func FromRotationMatrix(m matrix.Matrix3) Quaternion {
	var q Quaternion
	q.SetRotationMatrix(m)
	return q
}

// Vector returns the vector part of q.
func (q Quaternion) Vector() vector.Vector3 {
	return vector.Vector3{X: q.X, Y: q.Y, Z: q.Z}
}

// Norm returns the Euclidean norm √(x²+y²+z²+w²).
func (q Quaternion) Norm() float32 {
	return fmath.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalized returns q scaled to unit norm.
func (q Quaternion) Normalized() Quaternion {
	s := 1 / q.Norm()
	return Quaternion{X: q.X * s, Y: q.Y * s, Z: q.Z * s, W: q.W * s}
}

// Normalize scales q to unit norm in place.
func (q *Quaternion) Normalize() {
	*q = q.Normalized()
}

// Conjugate returns q with its vector part negated. For unit quaternions
// the conjugate is the inverse rotation.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Inverse returns the multiplicative inverse q⁻¹ = q̄ / |q|².
func (q Quaternion) Inverse() Quaternion {
	s := 1 / (q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	return Quaternion{X: -q.X * s, Y: -q.Y * s, Z: -q.Z * s, W: q.W * s}
}

// Mul returns the Hamilton product q·o. Composition is not commutative;
// q.Mul(o) applies o's rotation first, then q's, matching matrix
// composition order.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// RotationMatrix converts the unit quaternion q to a 3×3 rotation matrix.
func (q Quaternion) RotationMatrix() matrix.Matrix3 {
	x2 := q.X * q.X
	y2 := q.Y * q.Y
	z2 := q.Z * q.Z
	xy := q.X * q.Y
	xz := q.X * q.Z
	yz := q.Y * q.Z
	wx := q.W * q.X
	wy := q.W * q.Y
	wz := q.W * q.Z

	return matrix.NewMatrix3(
		1-2*(y2+z2), 2*(xy-wz), 2*(xz+wy),
		2*(xy+wz), 1-2*(x2+z2), 2*(yz-wx),
		2*(xz-wy), 2*(yz+wx), 1-2*(x2+y2),
	)
}

// SetRotationMatrix sets q from the rotation matrix m using Shepperd's
// method: branch on the largest of the diagonal entries, solve for that
// component first, and derive the remaining three by division. The branching
// keeps every divisor away from zero, which a w-first-only formula cannot
// guarantee near 180° rotations.
func (q *Quaternion) SetRotationMatrix(m matrix.Matrix3) {
	m00 := m.At(0, 0)
	m11 := m.At(1, 1)
	m22 := m.At(2, 2)
	sum := m00 + m11 + m22

	switch {
	case sum > 0:
		w := fmath.Sqrt(sum+1) * 0.5
		f := 0.25 / w
		q.X = (m.At(2, 1) - m.At(1, 2)) * f
		q.Y = (m.At(0, 2) - m.At(2, 0)) * f
		q.Z = (m.At(1, 0) - m.At(0, 1)) * f
		q.W = w
	case m00 > m11 && m00 > m22:
		x := fmath.Sqrt(m00-m11-m22+1) * 0.5
		f := 0.25 / x
		q.X = x
		q.Y = (m.At(1, 0) + m.At(0, 1)) * f
		q.Z = (m.At(0, 2) + m.At(2, 0)) * f
		q.W = (m.At(2, 1) - m.At(1, 2)) * f
	case m11 > m22:
		y := fmath.Sqrt(m11-m00-m22+1) * 0.5
		f := 0.25 / y
		q.X = (m.At(1, 0) + m.At(0, 1)) * f
		q.Y = y
		q.Z = (m.At(2, 1) + m.At(1, 2)) * f
		q.W = (m.At(0, 2) - m.At(2, 0)) * f
	default:
		z := fmath.Sqrt(m22-m00-m11+1) * 0.5
		f := 0.25 / z
		q.X = (m.At(0, 2) + m.At(2, 0)) * f
		q.Y = (m.At(2, 1) + m.At(1, 2)) * f
		q.Z = z
		q.W = (m.At(1, 0) - m.At(0, 1)) * f
	}
}

// Transform rotates v by the unit quaternion q without materializing a
// matrix: v·(w²−|b|²) + b·2(v·b) + (b×v)·2w, with b the vector part.
// Equivalent to RotationMatrix().Transform(v) but cheaper for a single
// vector.
func (q Quaternion) Transform(v vector.Vector3) vector.Vector3 {
	b := q.Vector()
	b2 := b.Dot(b)

	return v.Scale(q.W*q.W - b2).
		Add(b.Scale(2 * v.Dot(b))).
		Add(b.Cross(v).Scale(2 * q.W))
}
