// Package transform implements the 4×3 affine transform: three linear
// columns (rotation/scale/skew) plus a translation column, with the
// homogeneous bottom row (0, 0, 0, 1) implied and never stored.
//
// A Transform always represents an affine map — projective transforms are
// not representable. That restriction is what pays for the specialized
// Inverse: the block decomposition the full Matrix4 inverse needs collapses
// because the fourth-row terms are known constants.
//
// Storage follows the library convention: column-major, twelve floats,
// element (row r, col c) at index c*3+r; constructor arguments are row-major
// (three rows of four values). Columns 0–2 are the linear part, column 3 the
// translation.
//
// Applying a Transform distinguishes directions from positions:
//
//	TransformVec(v)   — linear part only; directions ignore translation
//	TransformPoint(p) — linear part, then translation
//
// The factory constructors (MakeRotation*, MakeScale*, MakeSkew,
// MakeReflection*, MakeInvolution, MakeTranslation) mirror the Matrix3
// factories with a zero translation column, except MakeTranslation and
// MakePlaneReflection, whose translation column is the point of the
// exercise.
package transform
