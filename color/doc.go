// Package color provides float32 RGB and RGBA colors with component-wise
// arithmetic, plus 8-bit and 32-bit integer forms for framebuffer use.
//
// Float components live in [0, 1]: constructors and every arithmetic method
// clamp their results into that range, so colors never over- or
// under-saturate. Conversion to the integer forms scales by 255 and rounds
// to nearest.
//
// An RGB color is treated as fully opaque; RGBA carries an explicit alpha.
package color
