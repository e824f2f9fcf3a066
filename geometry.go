package heartbutton

import "math"

// PathOp identifies a path segment kind.
type PathOp uint8

const (
	OpMoveTo  PathOp = iota // start a new subpath at Pts[0]
	OpLineTo                // straight line to Pts[0]
	OpCubicTo               // cubic Bézier with controls Pts[0], Pts[1] ending at Pts[2]
	OpClose                 // close the current subpath
)

// Segment is one path instruction. Only the first n points of Pts are used,
// where n depends on Op (1, 1, 3 and 0 respectively).
type Segment struct {
	Op  PathOp
	Pts [3]Vec2
}

func (s *Segment) points() []Vec2 {
	switch s.Op {
	case OpMoveTo, OpLineTo:
		return s.Pts[:1]
	case OpCubicTo:
		return s.Pts[:3]
	default:
		return nil
	}
}

// Path is a sequence of move/line/cubic segments. Paths returned by the
// geometry functions are fresh values; callers may transform them freely.
type Path struct {
	Segments []Segment
	FillRule FillRule
}

// MoveTo starts a new subpath.
func (p *Path) MoveTo(x, y float64) {
	p.Segments = append(p.Segments, Segment{Op: OpMoveTo, Pts: [3]Vec2{{x, y}}})
}

// LineTo appends a straight line.
func (p *Path) LineTo(x, y float64) {
	p.Segments = append(p.Segments, Segment{Op: OpLineTo, Pts: [3]Vec2{{x, y}}})
}

// CubicTo appends a cubic Bézier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.Segments = append(p.Segments, Segment{Op: OpCubicTo, Pts: [3]Vec2{{c1x, c1y}, {c2x, c2y}, {x, y}}})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.Segments = append(p.Segments, Segment{Op: OpClose})
}

// Transform returns a copy of p with every point mapped through m.
func (p Path) Transform(m Affine) Path {
	out := Path{Segments: make([]Segment, len(p.Segments)), FillRule: p.FillRule}
	for i := range p.Segments {
		seg := p.Segments[i]
		pts := seg.points()
		for j := range pts {
			pts[j].X, pts[j].Y = m.Apply(pts[j].X, pts[j].Y)
		}
		out.Segments[i] = seg
	}
	return out
}

// Bounds returns the box enclosing every point of the path, control points
// included. An empty path has zero bounds.
func (p Path) Bounds() Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := range p.Segments {
		for _, pt := range p.Segments[i].points() {
			minX = math.Min(minX, pt.X)
			minY = math.Min(minY, pt.Y)
			maxX = math.Max(maxX, pt.X)
			maxY = math.Max(maxY, pt.Y)
		}
	}
	if minX > maxX {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// --- Artwork ---
//
// All coordinates below live in the 31×31 logical box and are a fixed asset.

// HeartPath returns the filled heart body.
func HeartPath() Path {
	p := Path{FillRule: FillEvenOdd}
	p.MoveTo(14.89, 5.63)
	p.CubicTo(14.89, 5.63, 20.04, -1.56, 25.79, 2.19)
	p.CubicTo(31.22, 6.13, 28.68, 12.06, 26.07, 15.14)
	p.CubicTo(23.46, 18.22, 15.71, 25.08, 14.89, 25)
	p.CubicTo(14.06, 24.91, 8.54, 20.71, 4.13, 15.75)
	p.CubicTo(-0.28, 10.8, -0.2, 3.74, 5.44, 1.48)
	p.CubicTo(11.08, -0.78, 14.89, 5.63, 14.89, 5.63)
	p.Close()
	return p
}

// HeartStrokePath returns the heart outline, slightly larger than the body.
func HeartStrokePath() Path {
	var p Path
	p.MoveTo(14.92, 4.78)
	p.CubicTo(14.88, 4.72, 14.83, 4.67, 14.79, 4.61)
	p.CubicTo(14.37, 4.04, 13.88, 3.48, 13.32, 2.95)
	p.CubicTo(10.98, 0.74, 8.24, -0.18, 5.26, 1.02)
	p.CubicTo(-0.56, 3.35, -1.04, 10.7, 3.76, 16.09)
	p.CubicTo(7.67, 20.47, 13.58, 25.37, 14.83, 25.5)
	p.CubicTo(15.91, 25.61, 23.66, 18.76, 26.45, 15.46)
	p.CubicTo(30.29, 10.93, 30.96, 5.32, 26.08, 1.78)
	p.CubicTo(22.89, -0.29, 19.67, 0.49, 16.71, 2.99)
	p.CubicTo(16.1, 3.5, 15.56, 4.04, 15.08, 4.59)
	p.CubicTo(15.02, 4.66, 14.97, 4.72, 14.92, 4.78)
	p.Close()
	return p
}

// OvalRect is the logical rectangle the decorative circle is inscribed in.
var OvalRect = Rect{X: 17.04, Y: 10.66, Width: 30.96 - 17.04, Height: 25.17 - 10.66}

// OvalPath returns the decorative circle in the heart's lower-right quadrant.
func OvalPath() Path {
	return ellipsePath(OvalRect)
}

// TickPath returns the glyph drawn over the oval: a check mark when checked,
// a plus sign when unchecked. The check mark is an open polyline meant to be
// stroked; the plus sign is a closed outline meant to be filled.
func TickPath(checked bool) Path {
	var p Path
	if checked {
		p.MoveTo(20.92, 18.13)
		p.LineTo(23.45, 20.57)
		p.LineTo(28.25, 15.94)
		return p
	}
	p.MoveTo(25.46, 17)
	p.LineTo(25.46, 14)
	p.CubicTo(25.46, 13.46, 25.01, 13, 24.46, 13)
	p.CubicTo(23.91, 13, 23.46, 13.45, 23.46, 14)
	p.LineTo(23.46, 17)
	p.LineTo(20.46, 17)
	p.CubicTo(19.92, 17, 19.46, 17.45, 19.46, 18)
	p.CubicTo(19.46, 18.56, 19.91, 19, 20.46, 19)
	p.LineTo(23.46, 19)
	p.LineTo(23.46, 22)
	p.CubicTo(23.46, 22.54, 23.91, 23, 24.46, 23)
	p.CubicTo(25.02, 23, 25.46, 22.55, 25.46, 22)
	p.LineTo(25.46, 19)
	p.LineTo(28.47, 19)
	p.CubicTo(29.01, 19, 29.46, 18.55, 29.46, 18)
	p.CubicTo(29.46, 17.44, 29.02, 17, 28.47, 17)
	p.LineTo(25.46, 17)
	p.Close()
	return p
}

// kappa places cubic control points so four arcs approximate a quarter
// ellipse each with under 0.03% radial error.
const kappa = 0.5522847498307936

// ellipsePath builds the ellipse inscribed in r, clockwise on screen
// (Y down), starting at the rightmost point.
func ellipsePath(r Rect) Path {
	cx, cy := r.Center()
	rx, ry := r.Width/2, r.Height/2
	kx, ky := rx*kappa, ry*kappa

	var p Path
	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	p.Close()
	return p
}
