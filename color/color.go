package color

import "github.com/vkosev/mathengine/fmath"

// RGB is an opaque color with red, green, and blue components in [0, 1].
type RGB struct {
	R, G, B float32
}

// NewRGB returns the color (r, g, b) with each component clamped to [0, 1].
func NewRGB(r, g, b float32) RGB {
	return RGB{
		R: fmath.Clamp01(r),
		G: fmath.Clamp01(g),
		B: fmath.Clamp01(b),
	}
}

// At returns component i (0 → R, 1 → G, 2 → B).
// Panics if i is out of range.
func (c RGB) At(i int) float32 {
	switch i {
	case 0:
		return c.R
	case 1:
		return c.G
	case 2:
		return c.B
	default:
		panic("color: component index out of range")
	}
}

// SetAt assigns value f, clamped to [0, 1], to component i.
// Panics if i is out of range.
func (c *RGB) SetAt(i int, f float32) {
	switch i {
	case 0:
		c.R = fmath.Clamp01(f)
	case 1:
		c.G = fmath.Clamp01(f)
	case 2:
		c.B = fmath.Clamp01(f)
	default:
		panic("color: component index out of range")
	}
}

// Add returns the component-wise sum of c and o, clamped to [0, 1].
func (c RGB) Add(o RGB) RGB {
	return NewRGB(c.R+o.R, c.G+o.G, c.B+o.B)
}

// Sub returns the component-wise difference of c and o, clamped to [0, 1].
func (c RGB) Sub(o RGB) RGB {
	return NewRGB(c.R-o.R, c.G-o.G, c.B-o.B)
}

// Mul returns the component-wise (modulation) product of c and o.
func (c RGB) Mul(o RGB) RGB {
	return NewRGB(c.R*o.R, c.G*o.G, c.B*o.B)
}

// MulScalar returns c with every component multiplied by s and clamped.
func (c RGB) MulScalar(s float32) RGB {
	return NewRGB(c.R*s, c.G*s, c.B*s)
}

// Div returns c with every component divided by s and clamped.
func (c RGB) Div(s float32) RGB {
	return c.MulScalar(1 / s)
}

// RGBA returns c with an alpha of 1.
func (c RGB) RGBA() RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: 1}
}

// U8 returns c quantized to 8 bits per channel.
func (c RGB) U8() RGBu8 {
	return RGBu8{R: quantize8(c.R), G: quantize8(c.G), B: quantize8(c.B)}
}

// U32 returns c quantized to the 0..255 range in 32-bit channels.
func (c RGB) U32() RGBu32 {
	return RGBu32{
		R: uint32(quantize8(c.R)),
		G: uint32(quantize8(c.G)),
		B: uint32(quantize8(c.B)),
	}
}

// RGBA is a color with red, green, blue, and alpha components in [0, 1].
type RGBA struct {
	R, G, B, A float32
}

// NewRGBA returns the color (r, g, b, a) with each component clamped to
// [0, 1].
func NewRGBA(r, g, b, a float32) RGBA {
	return RGBA{
		R: fmath.Clamp01(r),
		G: fmath.Clamp01(g),
		B: fmath.Clamp01(b),
		A: fmath.Clamp01(a),
	}
}

// At returns component i (0 → R, 1 → G, 2 → B, 3 → A).
// Panics if i is out of range.
func (c RGBA) At(i int) float32 {
	switch i {
	case 0:
		return c.R
	case 1:
		return c.G
	case 2:
		return c.B
	case 3:
		return c.A
	default:
		panic("color: component index out of range")
	}
}

// SetAt assigns value f, clamped to [0, 1], to component i.
// Panics if i is out of range.
func (c *RGBA) SetAt(i int, f float32) {
	switch i {
	case 0:
		c.R = fmath.Clamp01(f)
	case 1:
		c.G = fmath.Clamp01(f)
	case 2:
		c.B = fmath.Clamp01(f)
	case 3:
		c.A = fmath.Clamp01(f)
	default:
		panic("color: component index out of range")
	}
}

// Add returns the component-wise sum of c and o, clamped to [0, 1].
func (c RGBA) Add(o RGBA) RGBA {
	return NewRGBA(c.R+o.R, c.G+o.G, c.B+o.B, c.A+o.A)
}

// Sub returns the component-wise difference of c and o, clamped to [0, 1].
func (c RGBA) Sub(o RGBA) RGBA {
	return NewRGBA(c.R-o.R, c.G-o.G, c.B-o.B, c.A-o.A)
}

// Mul returns the component-wise (modulation) product of c and o.
func (c RGBA) Mul(o RGBA) RGBA {
	return NewRGBA(c.R*o.R, c.G*o.G, c.B*o.B, c.A*o.A)
}

// MulScalar returns c with every component multiplied by s and clamped.
func (c RGBA) MulScalar(s float32) RGBA {
	return NewRGBA(c.R*s, c.G*s, c.B*s, c.A*s)
}

// Div returns c with every component divided by s and clamped.
func (c RGBA) Div(s float32) RGBA {
	return c.MulScalar(1 / s)
}

// RGB returns the color channels of c, dropping alpha.
func (c RGBA) RGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// RGBu8 is an 8-bit-per-channel color with components in 0..255.
type RGBu8 struct {
	R, G, B uint8
}

// NewRGBu8 returns the 8-bit color (r, g, b).
func NewRGBu8(r, g, b uint8) RGBu8 {
	return RGBu8{R: r, G: g, B: b}
}

// RGB returns c mapped back to the float [0, 1] range.
func (c RGBu8) RGB() RGB {
	return RGB{R: float32(c.R) / 255, G: float32(c.G) / 255, B: float32(c.B) / 255}
}

// RGBu32 is a color with 32-bit channels holding values in 0..255.
type RGBu32 struct {
	R, G, B uint32
}

// NewRGBu32 returns the 32-bit-channel color (r, g, b).
func NewRGBu32(r, g, b uint32) RGBu32 {
	return RGBu32{R: r, G: g, B: b}
}

// RGB returns c mapped back to the float [0, 1] range.
func (c RGBu32) RGB() RGB {
	return RGB{R: float32(c.R) / 255, G: float32(c.G) / 255, B: float32(c.B) / 255}
}

// quantize8 maps a [0, 1] channel to 0..255, rounding to nearest.
func quantize8(f float32) uint8 {
	return uint8(f*255 + 0.5)
}
