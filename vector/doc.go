// Package vector defines the direction and position primitives at the bottom
// of mathengine's type pyramid: Vector2, Vector3, Vector4 (free directions)
// and Point2, Point3 (positions).
//
// Vectors and points are deliberately distinct types. A Vector has no fixed
// origin and an implicit homogeneous coordinate w=0; a Point is a location
// with implicit w=1. The type system therefore enforces the affine rules:
//
//	Point − Point → Vector
//	Point ± Vector → Point
//	Vector ± Vector → Vector
//
// Linear (origin-independent) combinations of points are not expressible
// without an explicit conversion through Vec/PointFromVector.
//
// All types are plain float32 structs with value semantics: operations return
// new values, equality (==) is exact component-wise float equality, and the
// only mutating methods are the in-place Normalize variants.
//
// Indexed access (At/SetAt) panics on an out-of-range component index; that
// is a programmer error, never a recoverable condition.
package vector
