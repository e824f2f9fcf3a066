package heartbutton

import (
	"image/color"
	"math"
)

// LogicalSize is the edge length of the square box all artwork is defined in.
const LogicalSize = 31

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// RGB255 builds an opaque Color from 8-bit channels.
func RGB255(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

var (
	// ColorUnchecked fills the heart at rest while unchecked.
	ColorUnchecked = RGB255(210, 236, 255)
	// ColorChecked fills the heart at rest while checked.
	ColorChecked = RGB255(106, 193, 255)
	// ColorOutline is used for the heart outline and the tick glyph.
	ColorOutline = RGB255(0, 53, 123)
	// ColorOval fills the decorative circle.
	ColorOval = RGB255(231, 240, 247)
)

// RestingColor returns the heart fill color for a non-animating button.
func RestingColor(checked bool) Color {
	if checked {
		return ColorChecked
	}
	return ColorUnchecked
}

// RGBA returns the premultiplied 8-bit form of c.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: to8(clamp01(c.R) * a),
		G: to8(clamp01(c.G) * a),
		B: to8(clamp01(c.B) * a),
		A: to8(a),
	}
}

// Equal reports whether c and o match within tolerance eps on every channel.
func (c Color) Equal(o Color, eps float64) bool {
	return math.Abs(c.R-o.R) <= eps &&
		math.Abs(c.G-o.G) <= eps &&
		math.Abs(c.B-o.B) <= eps &&
		math.Abs(c.A-o.A) <= eps
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func to8(v float64) uint8 {
	return uint8(math.Round(v * 255))
}

// Vec2 is a 2D point or offset.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// LineCap selects how open stroke ends are drawn.
type LineCap uint8

const (
	CapButt  LineCap = iota // flat end at the last point
	CapRound                // semicircle past the last point
)

// FillRule decides which regions of a self-intersecting path are inside.
type FillRule uint8

const (
	FillNonZero FillRule = iota // non-zero winding
	FillEvenOdd                 // even-odd crossing count
)
