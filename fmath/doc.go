// Package fmath provides the float32 scalar helpers shared by every other
// package in mathengine, and fixes the library-wide numeric policy in one
// place.
//
// The standard math package works in float64; fmath wraps the handful of
// functions the kernel needs (Sqrt, Sin, Cos, Tan, Abs) so that callers stay
// in float32 end to end.
//
// Numeric policy:
//
//   - MinNormal is the degeneracy threshold: every "is this configuration
//     parallel/singular?" test in the library compares a magnitude against
//     MinNormal, never against exact zero.
//   - ApproxEqual is the tolerance comparison used by tests and by callers
//     that need fuzzy equality; component-wise type equality (==) remains
//     exact.
package fmath
