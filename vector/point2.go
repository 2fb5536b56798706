package vector

// Point2 is a two-dimensional position with float32 components. Its
// homogeneous w coordinate is assumed to be 1, so affine transforms apply
// their translation to a Point2.
type Point2 struct {
	X, Y float32
}

// NewPoint2 returns a position with the coordinates x and y.
func NewPoint2(x, y float32) Point2 {
	return Point2{X: x, Y: y}
}

// AddVec returns the point reached by moving p along v.
func (p Point2) AddVec(v Vector2) Point2 {
	return Point2{p.X + v.X, p.Y + v.Y}
}

// SubVec returns the point reached by moving p against v.
func (p Point2) SubVec(v Vector2) Point2 {
	return Point2{p.X - v.X, p.Y - v.Y}
}

// Sub returns the direction from o to p.
func (p Point2) Sub(o Point2) Vector2 {
	return Vector2{p.X - o.X, p.Y - o.Y}
}

// Vec returns p reinterpreted as the direction from the origin to p.
func (p Point2) Vec() Vector2 {
	return Vector2{X: p.X, Y: p.Y}
}
