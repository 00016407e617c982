package sparkle

import (
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Color holds a color in both RGB and HSL form plus an independent alpha.
//
// Red, green and blue are in [0, 255], hue in [0, 360], saturation and
// lightness in [0, 100], alpha in [0, 1]. Setting an RGB channel recomputes
// HSL immediately and setting an HSL channel recomputes RGB immediately, so
// both forms are always consistent. Derived values are rounded to whole
// numbers. Alpha never changes as a side effect of a channel update.
//
// Color is a value type: assignment copies it. Use Copy when the intent to
// duplicate should be explicit.
type Color struct {
	r, g, b float64
	h, s, l float64
	a       float64
}

// NewColor creates a color from RGB channels and alpha, deriving HSL.
func NewColor(r, g, b, a float64) Color {
	c := Color{r: r, g: g, b: b, a: a}
	c.calcHSL()
	return c
}

// ColorFromHSL creates a color from hue, saturation, lightness and alpha,
// deriving RGB.
func ColorFromHSL(h, s, l, a float64) Color {
	c := Color{h: h, s: s, l: l, a: a}
	c.calcRGB()
	return c
}

// ColorZero returns transparent black.
func ColorZero() Color {
	return NewColor(0, 0, 0, 0)
}

// ColorRed returns opaque red, the default particle color.
func ColorRed() Color {
	return NewColor(255, 0, 0, 1)
}

func (c Color) R() float64 { return c.r }
func (c Color) G() float64 { return c.g }
func (c Color) B() float64 { return c.b }
func (c Color) H() float64 { return c.h }
func (c Color) S() float64 { return c.s }
func (c Color) L() float64 { return c.l }
func (c Color) A() float64 { return c.a }

func (c *Color) SetR(v float64) { c.r = v; c.calcHSL() }
func (c *Color) SetG(v float64) { c.g = v; c.calcHSL() }
func (c *Color) SetB(v float64) { c.b = v; c.calcHSL() }
func (c *Color) SetH(v float64) { c.h = v; c.calcRGB() }
func (c *Color) SetS(v float64) { c.s = v; c.calcRGB() }
func (c *Color) SetL(v float64) { c.l = v; c.calcRGB() }

// SetA sets alpha. Neither representation is recomputed.
func (c *Color) SetA(v float64) { c.a = v }

// Copy returns an independent color with the same RGB channels and alpha.
func (c Color) Copy() Color {
	return NewColor(c.r, c.g, c.b, c.a)
}

// calcHSL derives h, s, l from the current r, g, b.
func (c *Color) calcHSL() {
	h, s, l := colorful.Color{R: c.r / 255, G: c.g / 255, B: c.b / 255}.Hsl()
	c.h = math.Round(h)
	c.s = math.Round(s * 100)
	c.l = math.Round(l * 100)
}

// calcRGB derives r, g, b from the current h, s, l.
func (c *Color) calcRGB() {
	rgb := colorful.Hsl(c.h, c.s/100, c.l/100)
	c.r = math.Round(rgb.R * 255)
	c.g = math.Round(rgb.G * 255)
	c.b = math.Round(rgb.B * 255)
}

// HSLString formats the color as an hsla() expression.
func (c Color) HSLString() string {
	return c.HSLStringAlpha(c.a)
}

// HSLStringAlpha formats the color as an hsla() expression using alpha
// instead of the stored alpha.
func (c Color) HSLStringAlpha(alpha float64) string {
	return "hsla(" + formatNum(c.h) + "," + formatNum(c.s) + "%," + formatNum(c.l) + "%," + formatNum(alpha) + ")"
}

// RGBString formats the color as an rgba() expression.
func (c Color) RGBString() string {
	return c.RGBStringAlpha(c.a)
}

// RGBStringAlpha formats the color as an rgba() expression using alpha
// instead of the stored alpha.
func (c Color) RGBStringAlpha(alpha float64) string {
	return "rgba(" + formatNum(c.r) + "," + formatNum(c.g) + "," + formatNum(c.b) + "," + formatNum(alpha) + ")"
}

// String formats the color as an rgba() expression. It is the form surfaces
// receive as a fill style.
func (c Color) String() string {
	return c.RGBString()
}

// NRGBA returns the color as straight-alpha 8-bit channels for image APIs.
func (c Color) NRGBA() (r, g, b, a uint8) {
	return clampByte(c.r), clampByte(c.g), clampByte(c.b), clampByte(c.a * 255)
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func clampByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(math.Round(v))
	}
}
