package vector

import "github.com/vkosev/mathengine/fmath"

// Vector3 is a three-dimensional direction vector with float32 components.
// Its homogeneous w coordinate is assumed to be 0, so affine transforms move
// a Vector3 by their linear part only and ignore translation.
type Vector3 struct {
	X, Y, Z float32
}

// NewVector3 returns a direction vector with the components x, y, and z.
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// At returns component i (0 → X, 1 → Y, 2 → Z).
// Panics if i is out of range.
func (v Vector3) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic("vector: component index out of range")
	}
}

// SetAt assigns value f to component i. Panics if i is out of range.
func (v *Vector3) SetAt(i int, f float32) {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	case 2:
		v.Z = f
	default:
		panic("vector: component index out of range")
	}
}

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v − o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vector3) Scale(s float32) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Div returns v scaled by 1/s.
func (v Vector3) Div(s float32) Vector3 {
	return Vector3{v.X / s, v.Y / s, v.Z / s}
}

// Neg returns −v.
func (v Vector3) Neg() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// Mul returns the component-wise product of v and o.
func (v Vector3) Mul(o Vector3) Vector3 {
	return Vector3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Dot returns the dot product v·o.
func (v Vector3) Dot(o Vector3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o. The result is perpendicular to both
// operands and follows the right-hand rule.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Magnitude returns the Euclidean length of v.
func (v Vector3) Magnitude() float32 {
	return fmath.Sqrt(v.Dot(v))
}

// MagnitudeSq returns the squared length of v, avoiding the square root.
func (v Vector3) MagnitudeSq() float32 {
	return v.Dot(v)
}

// Normalized returns v scaled to unit length.
// The result is NaN/Inf-valued when v is the zero vector.
func (v Vector3) Normalized() Vector3 {
	return v.Div(v.Magnitude())
}

// Normalize scales v to unit length in place.
func (v *Vector3) Normalize() {
	s := 1 / v.Magnitude()
	v.X *= s
	v.Y *= s
	v.Z *= s
}

// Project returns the projection of v onto n, assuming n has unit length.
func (v Vector3) Project(n Vector3) Vector3 {
	return n.Scale(v.Dot(n))
}

// Reject returns the component of v perpendicular to n, assuming n has unit
// length. Project and Reject always sum back to v.
func (v Vector3) Reject(n Vector3) Vector3 {
	return v.Sub(n.Scale(v.Dot(n)))
}

// Reflect returns v mirrored through the plane perpendicular to the unit
// vector n: v − n·2(v·n).
func (v Vector3) Reflect(n Vector3) Vector3 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Point returns v reinterpreted as a position (the point at origin + v).
func (v Vector3) Point() Point3 {
	return Point3{X: v.X, Y: v.Y, Z: v.Z}
}
