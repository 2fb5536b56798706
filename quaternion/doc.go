// Package quaternion implements rotation quaternions and their conversion to
// and from 3×3 rotation matrices.
//
// A Quaternion is (X, Y, Z, W) with (X, Y, Z) the vector part and W the
// scalar part. For rotation use the quaternion must have unit norm
// (X²+Y²+Z²+W²=1); the type does not enforce this — normalize before calling
// RotationMatrix or Transform.
//
// Conventions (fixed, guarded by tests):
//
//   - RotationMatrix produces the matrix that rotates column vectors the same
//     way Transform does: q.Transform(v) == q.RotationMatrix().Transform(v).
//   - Composition order matches matrix composition order:
//     (q1.Mul(q2)).RotationMatrix() == q1.RotationMatrix().Mul(q2.RotationMatrix()),
//     so q1.Mul(q2) applies q2's rotation first, then q1's.
//   - FromRotationMatrix uses Shepperd's method, branching on the largest
//     diagonal entry so that no branch divides by a near-zero component; the
//     naive w-first formula breaks near 180° rotations. The recovered
//     quaternion may differ from the original by sign, which represents the
//     same rotation.
package quaternion
