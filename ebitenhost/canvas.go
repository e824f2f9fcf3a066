package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/heartbutton"
)

// miterLimit is the join limit the artwork was tuned against.
const miterLimit = 4

// Canvas draws heartbutton paths onto an ebiten image with the vector
// package. Paths are expected in the image's own pixel coordinates.
type Canvas struct {
	Dst *ebiten.Image
}

// FillPath fills p with the paint color.
func (c *Canvas) FillPath(p heartbutton.Path, paint heartbutton.Paint) {
	var vp vector.Path
	appendPath(&vp, p)
	vector.FillPath(c.Dst, &vp, &vector.FillOptions{FillRule: fillRule(p.FillRule)}, drawOptions(paint))
}

// StrokePath strokes p with the paint color, width and cap.
func (c *Canvas) StrokePath(p heartbutton.Path, paint heartbutton.Paint) {
	var vp vector.Path
	appendPath(&vp, p)
	vector.StrokePath(c.Dst, &vp, &vector.StrokeOptions{
		Width:      float32(paint.StrokeWidth),
		LineCap:    lineCap(paint.Cap),
		LineJoin:   vector.LineJoinMiter,
		MiterLimit: miterLimit,
	}, drawOptions(paint))
}

func appendPath(dst *vector.Path, p heartbutton.Path) {
	for i := range p.Segments {
		s := &p.Segments[i]
		switch s.Op {
		case heartbutton.OpMoveTo:
			dst.MoveTo(float32(s.Pts[0].X), float32(s.Pts[0].Y))
		case heartbutton.OpLineTo:
			dst.LineTo(float32(s.Pts[0].X), float32(s.Pts[0].Y))
		case heartbutton.OpCubicTo:
			dst.CubicTo(
				float32(s.Pts[0].X), float32(s.Pts[0].Y),
				float32(s.Pts[1].X), float32(s.Pts[1].Y),
				float32(s.Pts[2].X), float32(s.Pts[2].Y),
			)
		case heartbutton.OpClose:
			dst.Close()
		}
	}
}

func drawOptions(paint heartbutton.Paint) *vector.DrawPathOptions {
	op := &vector.DrawPathOptions{AntiAlias: paint.AntiAlias}
	op.ColorScale.ScaleWithColor(paint.Color.RGBA())
	return op
}

func fillRule(r heartbutton.FillRule) vector.FillRule {
	if r == heartbutton.FillEvenOdd {
		return vector.FillRuleEvenOdd
	}
	return vector.FillRuleNonZero
}

func lineCap(c heartbutton.LineCap) vector.LineCap {
	if c == heartbutton.CapRound {
		return vector.LineCapRound
	}
	return vector.LineCapButt
}
