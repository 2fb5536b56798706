package geometry

import (
	"github.com/vkosev/mathengine/fmath"
	"github.com/vkosev/mathengine/matrix"
	"github.com/vkosev/mathengine/transform"
	"github.com/vkosev/mathengine/vector"
)

// Line is a line in homogeneous (Plücker) coordinates: a direction and a
// moment. For a line through the point p with direction v the moment is
// p × v, which is the same for every point on the line.
type Line struct {
	Direction vector.Vector3
	Moment    vector.Vector3
}

// NewLine returns the line with direction (vx, vy, vz) and moment
// (mx, my, mz).
func NewLine(vx, vy, vz, mx, my, mz float32) Line {
	return Line{
		Direction: vector.Vector3{X: vx, Y: vy, Z: vz},
		Moment:    vector.Vector3{X: mx, Y: my, Z: mz},
	}
}

// NewLineFromVectors returns the line with direction v and moment m.
func NewLineFromVectors(v, m vector.Vector3) Line {
	return Line{Direction: v, Moment: m}
}

// LineThroughPoint returns the line through p with direction v.
func LineThroughPoint(p vector.Point3, v vector.Vector3) Line {
	return Line{Direction: v, Moment: p.Vec().Cross(v)}
}

// LineThroughPoints returns the line through p1 and p2, directed from p1
// toward p2.
func LineThroughPoints(p1, p2 vector.Point3) Line {
	return LineThroughPoint(p1, p2.Sub(p1))
}

// Transform returns the line carried by h. The direction transforms as an
// ordinary vector; the moment transforms by the transposed adjugate of the
// linear part plus the translation's contribution t × v'.
func (l Line) Transform(h transform.Transform) Line {
	c0 := h.Col(0)
	c1 := h.Col(1)
	c2 := h.Col(2)
	adjT := matrix.NewMatrix3FromColumns(c1.Cross(c2), c2.Cross(c0), c0.Cross(c1))

	v := h.TransformVec(l.Direction)
	m := adjT.Transform(l.Moment).Add(h.Translation().Vec().Cross(v))
	return Line{Direction: v, Moment: m}
}

// PointLineDistance returns the distance from the point q to the line
// through p with direction v. ok is false when v is degenerate (near zero
// length).
func PointLineDistance(q vector.Point3, p vector.Point3, v vector.Vector3) (float32, bool) {
	vv := v.Dot(v)
	if fmath.Abs(vv) <= fmath.MinNormal {
		return 0, false
	}
	a := q.Sub(p).Cross(v)
	return fmath.Sqrt(a.Dot(a) / vv), true
}

// LineLineDistance returns the shortest distance between the line through
// p1 with direction v1 and the line through p2 with direction v2. Parallel
// lines are handled by falling back to the point-line distance from p2 to
// the first line. ok is false only when v1 is degenerate.
func LineLineDistance(p1 vector.Point3, v1 vector.Vector3, p2 vector.Point3, v2 vector.Vector3) (float32, bool) {
	dp := p2.Sub(p1)

	v12 := v1.Dot(v1)
	v22 := v2.Dot(v2)
	v1v2 := v1.Dot(v2)

	det := v1v2*v1v2 - v12*v22
	if fmath.Abs(det) <= fmath.MinNormal {
		// Parallel directions: every point of the second line is
		// equidistant from the first.
		if fmath.Abs(v12) <= fmath.MinNormal {
			return 0, false
		}
		a := dp.Cross(v1)
		return fmath.Sqrt(a.Dot(a) / v12), true
	}

	dpv1 := dp.Dot(v1)
	dpv2 := dp.Dot(v2)
	t1 := (v1v2*dpv2 - v22*dpv1) / det
	t2 := (v12*dpv2 - v1v2*dpv1) / det

	d := dp.Add(v2.Scale(t2)).Sub(v1.Scale(t1))
	return d.Magnitude(), true
}
