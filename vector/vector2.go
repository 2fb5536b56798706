package vector

import "github.com/vkosev/mathengine/fmath"

// Vector2 is a two-dimensional direction vector with float32 components.
// Its homogeneous w coordinate is assumed to be 0.
type Vector2 struct {
	X, Y float32
}

// NewVector2 returns a direction vector with the components x and y.
func NewVector2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// At returns component i (0 → X, 1 → Y).
// Panics if i is out of range; an invalid component index is a programmer
// error, not a recoverable condition.
func (v Vector2) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		panic("vector: component index out of range")
	}
}

// SetAt assigns value f to component i. Panics if i is out of range.
func (v *Vector2) SetAt(i int, f float32) {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	default:
		panic("vector: component index out of range")
	}
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v − o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vector2) Scale(s float32) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// Div returns v scaled by 1/s.
func (v Vector2) Div(s float32) Vector2 {
	return Vector2{v.X / s, v.Y / s}
}

// Neg returns −v.
func (v Vector2) Neg() Vector2 {
	return Vector2{-v.X, -v.Y}
}

// Mul returns the component-wise product of v and o.
func (v Vector2) Mul(o Vector2) Vector2 {
	return Vector2{v.X * o.X, v.Y * o.Y}
}

// Dot returns the dot product v·o.
func (v Vector2) Dot(o Vector2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// Magnitude returns the Euclidean length of v.
func (v Vector2) Magnitude() float32 {
	return fmath.Sqrt(v.Dot(v))
}

// MagnitudeSq returns the squared length of v, avoiding the square root.
func (v Vector2) MagnitudeSq() float32 {
	return v.Dot(v)
}

// Normalized returns v scaled to unit length.
// The result is NaN/Inf-valued when v is the zero vector.
func (v Vector2) Normalized() Vector2 {
	return v.Div(v.Magnitude())
}

// Normalize scales v to unit length in place.
func (v *Vector2) Normalize() {
	s := 1 / v.Magnitude()
	v.X *= s
	v.Y *= s
}

// Project returns the projection of v onto the unit vector n.
func (v Vector2) Project(n Vector2) Vector2 {
	return n.Scale(v.Dot(n))
}

// Reject returns the component of v perpendicular to the unit vector n.
func (v Vector2) Reject(n Vector2) Vector2 {
	return v.Sub(n.Scale(v.Dot(n)))
}
