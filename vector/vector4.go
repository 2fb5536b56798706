package vector

import "github.com/vkosev/mathengine/fmath"

// Vector4 is a four-dimensional vector with float32 components. It is the
// natural result type of full 4×4 matrix application, where the homogeneous
// coordinate is carried explicitly.
type Vector4 struct {
	X, Y, Z, W float32
}

// NewVector4 returns a vector with the components x, y, z, and w.
func NewVector4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// At returns component i (0 → X, 1 → Y, 2 → Z, 3 → W).
// Panics if i is out of range.
func (v Vector4) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	default:
		panic("vector: component index out of range")
	}
}

// SetAt assigns value f to component i. Panics if i is out of range.
func (v *Vector4) SetAt(i int, f float32) {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	case 2:
		v.Z = f
	case 3:
		v.W = f
	default:
		panic("vector: component index out of range")
	}
}

// Add returns v + o.
func (v Vector4) Add(o Vector4) Vector4 {
	return Vector4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Sub returns v − o.
func (v Vector4) Sub(o Vector4) Vector4 {
	return Vector4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// Scale returns v scaled by s.
func (v Vector4) Scale(s float32) Vector4 {
	return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Div returns v scaled by 1/s.
func (v Vector4) Div(s float32) Vector4 {
	return Vector4{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// Mul returns the component-wise product of v and o.
func (v Vector4) Mul(o Vector4) Vector4 {
	return Vector4{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}

// Dot returns the dot product v·o.
func (v Vector4) Dot(o Vector4) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// Magnitude returns the Euclidean length of v.
func (v Vector4) Magnitude() float32 {
	return fmath.Sqrt(v.Dot(v))
}

// Normalized returns v scaled to unit length.
// The result is NaN/Inf-valued when v is the zero vector.
func (v Vector4) Normalized() Vector4 {
	return v.Div(v.Magnitude())
}

// Normalize scales v to unit length in place.
func (v *Vector4) Normalize() {
	s := 1 / v.Magnitude()
	v.X *= s
	v.Y *= s
	v.Z *= s
	v.W *= s
}

// Project returns the projection of v onto the unit vector n.
func (v Vector4) Project(n Vector4) Vector4 {
	return n.Scale(v.Dot(n))
}

// Reject returns the component of v perpendicular to the unit vector n.
func (v Vector4) Reject(n Vector4) Vector4 {
	return v.Sub(n.Scale(v.Dot(n)))
}

// XYZ truncates v to its first three components.
func (v Vector4) XYZ() Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: v.Z}
}
