// Package mathengine is a compact float32 linear-algebra kernel for
// graphics and geometry code: vectors, points, matrices, an affine
// transform, quaternions, planes, Plücker lines, and color tuples.
//
// 🚀 What is mathengine?
//
//	A small, allocation-free, value-semantics library that brings together:
//		• Vector/point primitives: Vector2/3/4 and Point2/3 with affine algebra
//		• Matrix kernel: Matrix2/3/4, column-major, with closed-form inverses
//		• Transform: a 4×3 affine map with a specialized fast inverse
//		• Quaternion: rotations, with stable matrix conversion both ways
//		• Geometry: planes, lines, intersections and distance queries
//		• Color: RGB/RGBA float tuples plus 8/32-bit integer forms
//
// ✨ Why choose mathengine?
//
//   - Predictable layout – one documented convention: column-major storage,
//     row-major constructor arguments, cross-checked by tests
//   - Value semantics – every type is a few floats on the stack; copy freely,
//     share across goroutines without locks
//   - Pure Go – no cgo, no hidden deps
//   - Explicit degeneracy handling – parallel planes and singular systems are
//     reported through ok-returns, never through panics or exceptions
//
// Everything is organized under topical subpackages:
//
//	fmath/      — float32 scalar helpers and the epsilon policy
//	vector/     — Vector2/3/4, Point2/3 primitives
//	matrix/     — Matrix2/3/4 kernel: determinant, inverse, factories
//	quaternion/ — rotation quaternions and matrix conversion
//	transform/  — 4×3 affine transform and its factory constructors
//	geometry/   — Plane, Line, intersection and distance routines
//	color/      — RGB/RGBA color tuples with clamping and conversion
//
// Quick example:
//
//	h := transform.MakeRotationZ(math.Pi / 2)
//	v := h.TransformVec(vector.NewVector3(1, 0, 0)) // ≈ (0, 1, 0)
//
// See each subpackage's doc.go for the full contract.
package mathengine
