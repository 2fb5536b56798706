package vector

// Point3 is a three-dimensional position with float32 components. Its
// homogeneous w coordinate is assumed to be 1, distinguishing it from
// Vector3 under affine maps: transforms translate points but not vectors.
type Point3 struct {
	X, Y, Z float32
}

// NewPoint3 returns a position with the coordinates x, y, and z.
func NewPoint3(x, y, z float32) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// AddVec returns the point reached by moving p along v.
func (p Point3) AddVec(v Vector3) Point3 {
	return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// SubVec returns the point reached by moving p against v.
func (p Point3) SubVec(v Vector3) Point3 {
	return Point3{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// Sub returns the direction from o to p.
func (p Point3) Sub(o Point3) Vector3 {
	return Vector3{p.X - o.X, p.Y - o.Y, p.Z - o.Z}
}

// Vec returns p reinterpreted as the direction from the origin to p.
// This is the explicit escape hatch for feeding a position into linear
// (origin-dependent) algebra; there is no implicit conversion.
func (p Point3) Vec() Vector3 {
	return Vector3{X: p.X, Y: p.Y, Z: p.Z}
}
