// Package fmath: float32 wrappers over the standard math package plus the
// shared epsilon policy. All kernels MUST take their scalar functions from
// here so the float32 round-trip happens in exactly one place.
package fmath

import "math"

// MinNormal is the smallest positive normal float32 (2^-126).
// Degeneracy checks compare |x| against this threshold rather than zero, so
// that denormal leftovers of cancellation still count as "degenerate".
const MinNormal float32 = 1.1754943508222875e-38

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Sin returns the sine of the angle x, in radians.
func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

// Cos returns the cosine of the angle x, in radians.
func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

// Sincos returns Sin(x) and Cos(x) together; rotation factories use it so
// both values come from the same float64 evaluation.
func Sincos(x float32) (sin, cos float32) {
	s, c := math.Sincos(float64(x))
	return float32(s), float32(c)
}

// Tan returns the tangent of the angle x, in radians.
func Tan(x float32) float32 {
	return float32(math.Tan(float64(x)))
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

// ApproxEqual reports whether a and b differ by at most eps.
func ApproxEqual(a, b, eps float32) bool {
	return Abs(a-b) <= eps
}

// Clamp01 clamps x into the closed interval [0, 1].
func Clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
