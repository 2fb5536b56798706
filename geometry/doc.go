// Package geometry builds planes and lines on top of the vector and
// transform packages, together with the intersection and distance routines
// between them.
//
// A Plane is the implicit surface {p : X·p.x + Y·p.y + Z·p.z + W = 0}. The
// (X, Y, Z) normal should be unit length for DotPoint to read as a signed
// distance; the type does not enforce that — call Normalized when the
// coefficients come from arbitrary sources.
//
// A Line is stored in Plücker form as a (direction, moment) pair with
// moment = p × direction for any point p on the line. The form transforms
// rigidly under an affine map without reconstructing two points.
//
// Degenerate configurations — parallel planes, a line parallel to a plane,
// linearly dependent normals — are expected outcomes in geometry code, not
// exceptional ones: every intersection routine reports them through a
// trailing ok result, and every near-zero comparison uses fmath.MinNormal,
// never exact equality.
package geometry
