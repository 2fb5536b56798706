// Package matrix implements the square-matrix kernel of mathengine:
// Matrix2, Matrix3, and Matrix4 with determinants, closed-form inverses,
// transposition, composition, and the factory constructors used to build
// rotations, scales, skews, reflections, and involutions.
//
// Layout convention (fixed library-wide, cross-checked by tests):
//
//   - Storage is COLUMN-MAJOR: a Matrix3 is a flat [9]float32 holding column
//     0, then column 1, then column 2; element (row r, col c) lives at
//     index c*3+r.
//   - Constructor arguments are ROW-MAJOR: NewMatrix3(a, b, c, d, e, f, g,
//     h, i) reads left-to-right, top-to-bottom, the way the matrix is
//     written on paper. The constructor reorders into columns.
//
// The asymmetry is deliberate (readable call sites, cache-friendly column
// access) and is guarded by the identity cross-check in the tests:
// NewMatrix3(1,0,0, 0,1,0, 0,0,1) == Identity3().
//
// Inverse contract:
//
//   - Inverse returns garbage (IEEE NaN/±Inf components) when the receiver is
//     singular; it never checks. Callers that may feed degenerate input either
//     check Determinant themselves or use InverseChecked, which reports
//     ErrSingular when |det| falls below fmath.MinNormal.
//
// At/Set panic on an out-of-range index; that is a programmer error, never a
// recoverable condition.
package matrix
