package geometry

import (
	"github.com/vkosev/mathengine/fmath"
	"github.com/vkosev/mathengine/transform"
	"github.com/vkosev/mathengine/vector"
)

// Plane is the implicit surface {p : X·p.x + Y·p.y + Z·p.z + W = 0}.
// (X, Y, Z) is the plane normal and W the distance coefficient; both dot
// products read as signed distances only when the normal has unit length.
type Plane struct {
	X, Y, Z, W float32
}

// NewPlane returns the plane with normal (x, y, z) and distance
// coefficient w.
func NewPlane(x, y, z, w float32) Plane {
	return Plane{X: x, Y: y, Z: z, W: w}
}

// NewPlaneFromVector returns the plane with normal n and distance
// coefficient d.
func NewPlaneFromVector(n vector.Vector3, d float32) Plane {
	return Plane{X: n.X, Y: n.Y, Z: n.Z, W: d}
}

// NewPlaneFromPoint returns the plane through p with normal n.
func NewPlaneFromPoint(n vector.Vector3, p vector.Point3) Plane {
	return Plane{X: n.X, Y: n.Y, Z: n.Z, W: -n.Dot(p.Vec())}
}

// Normal returns the (X, Y, Z) normal of the plane.
func (f Plane) Normal() vector.Vector3 {
	return vector.Vector3{X: f.X, Y: f.Y, Z: f.Z}
}

// DotVector returns the dot product of the plane normal with the direction
// v. A result near zero means v runs parallel to the plane.
func (f Plane) DotVector(v vector.Vector3) float32 {
	return f.X*v.X + f.Y*v.Y + f.Z*v.Z
}

// DotPoint returns X·p.x + Y·p.y + Z·p.z + W: the signed distance from the
// plane to p when the normal is unit length.
func (f Plane) DotPoint(p vector.Point3) float32 {
	return f.X*p.X + f.Y*p.Y + f.Z*p.Z + f.W
}

// Normalized returns the plane scaled so its normal has unit length,
// leaving the represented surface unchanged.
func (f Plane) Normalized() Plane {
	s := 1 / f.Normal().Magnitude()
	return Plane{X: f.X * s, Y: f.Y * s, Z: f.Z * s, W: f.W * s}
}

// Reflection returns the transform reflecting through the plane, which is
// assumed to be normalized.
func (f Plane) Reflection() transform.Transform {
	return transform.MakePlaneReflection(f.Normal(), f.W)
}

// Transform returns the plane multiplied, as a row vector, by the 4×4
// matrix h abbreviates. Row-vector composition means this carries the plane
// of points q into the plane of points h⁻¹·q; to move a plane forward with
// a map, pass the map's inverse.
func (f Plane) Transform(h transform.Transform) Plane {
	return Plane{
		X: f.X*h.At(0, 0) + f.Y*h.At(1, 0) + f.Z*h.At(2, 0),
		Y: f.X*h.At(0, 1) + f.Y*h.At(1, 1) + f.Z*h.At(2, 1),
		Z: f.X*h.At(0, 2) + f.Y*h.At(1, 2) + f.Z*h.At(2, 2),
		W: f.X*h.At(0, 3) + f.Y*h.At(1, 3) + f.Z*h.At(2, 3) + f.W,
	}
}

// IntersectThreePlanes returns the point at which the planes f1, f2, and f3
// intersect. ok is false when the three normals are not linearly
// independent (two or more planes parallel or coincident), in which case no
// single intersection point exists.
//
// The 3×3 system is solved by Cramer's rule expressed with cross products:
// the determinant is (n1×n2)·n3.
func IntersectThreePlanes(f1, f2, f3 Plane) (p vector.Point3, ok bool) {
	n1 := f1.Normal()
	n2 := f2.Normal()
	n3 := f3.Normal()

	n1xn2 := n1.Cross(n2)
	det := n1xn2.Dot(n3)
	if fmath.Abs(det) <= fmath.MinNormal {
		return vector.Point3{}, false
	}

	v := n3.Cross(n2).Scale(f1.W).
		Add(n1.Cross(n3).Scale(f2.W)).
		Sub(n1xn2.Scale(f3.W)).
		Div(det)
	return v.Point(), true
}

// IntersectTwoPlanes returns the line at which the planes f1 and f2
// intersect, as a point on the line and the line's direction. ok is false
// when the planes are parallel.
func IntersectTwoPlanes(f1, f2 Plane) (p vector.Point3, v vector.Vector3, ok bool) {
	n1 := f1.Normal()
	n2 := f2.Normal()

	v = n1.Cross(n2)
	det := v.Dot(v)
	if fmath.Abs(det) <= fmath.MinNormal {
		return vector.Point3{}, vector.Vector3{}, false
	}

	w := v.Cross(n2).Scale(f1.W).
		Add(n1.Cross(v).Scale(f2.W)).
		Div(det)
	return w.Point(), v, true
}

// IntersectPlaneLine returns the point at which the line through p with
// direction v crosses the plane f. ok is false when v is parallel to the
// plane.
func IntersectPlaneLine(p vector.Point3, v vector.Vector3, f Plane) (vector.Point3, bool) {
	fv := f.DotVector(v)
	if fmath.Abs(fv) <= fmath.MinNormal {
		return vector.Point3{}, false
	}
	return p.SubVec(v.Scale(f.DotPoint(p) / fv)), true
}
