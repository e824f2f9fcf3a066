package raster

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/phanxgames/heartbutton"
)

// miterLimit matches the join limit used by the window host.
const miterLimit = 4

// Canvas rasterizes heartbutton paths into an in-memory pixmap with the gg
// software renderer. The first draw error is kept and reported by Err; later
// draws are skipped.
type Canvas struct {
	dc  *gg.Context
	err error
}

// New returns a transparent canvas of w×h pixels.
func New(w, h int) *Canvas {
	return &Canvas{dc: gg.NewContext(w, h)}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.dc.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.dc.Height() }

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col heartbutton.Color) {
	c.dc.ClearWithColor(gg.RGBA{R: col.R, G: col.G, B: col.B, A: col.A})
}

// FillPath fills p with the paint color using the path's fill rule.
func (c *Canvas) FillPath(p heartbutton.Path, paint heartbutton.Paint) {
	if c.err != nil {
		return
	}
	c.trace(p)
	c.dc.SetFillRule(fillRule(p.FillRule))
	c.setColor(paint.Color)
	if err := c.dc.Fill(); err != nil {
		c.err = fmt.Errorf("raster: fill: %w", err)
	}
}

// StrokePath strokes p with the paint color, width and cap.
func (c *Canvas) StrokePath(p heartbutton.Path, paint heartbutton.Paint) {
	if c.err != nil {
		return
	}
	c.trace(p)
	c.setColor(paint.Color)
	c.dc.SetLineWidth(paint.StrokeWidth)
	c.dc.SetLineCap(lineCap(paint.Cap))
	c.dc.SetLineJoin(gg.LineJoinMiter)
	c.dc.SetMiterLimit(miterLimit)
	if err := c.dc.Stroke(); err != nil {
		c.err = fmt.Errorf("raster: stroke: %w", err)
	}
}

// Err returns the first rendering error, if any.
func (c *Canvas) Err() error { return c.err }

// Image returns a copy of the current pixels.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.err != nil {
		return c.err
	}
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// Close releases the renderer. The canvas must not be used afterwards.
func (c *Canvas) Close() error { return c.dc.Close() }

func (c *Canvas) setColor(col heartbutton.Color) {
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
}

func (c *Canvas) trace(p heartbutton.Path) {
	c.dc.ClearPath()
	for i := range p.Segments {
		s := &p.Segments[i]
		switch s.Op {
		case heartbutton.OpMoveTo:
			c.dc.MoveTo(s.Pts[0].X, s.Pts[0].Y)
		case heartbutton.OpLineTo:
			c.dc.LineTo(s.Pts[0].X, s.Pts[0].Y)
		case heartbutton.OpCubicTo:
			c.dc.CubicTo(s.Pts[0].X, s.Pts[0].Y, s.Pts[1].X, s.Pts[1].Y, s.Pts[2].X, s.Pts[2].Y)
		case heartbutton.OpClose:
			c.dc.ClosePath()
		}
	}
}

func fillRule(r heartbutton.FillRule) gg.FillRule {
	if r == heartbutton.FillEvenOdd {
		return gg.FillRuleEvenOdd
	}
	return gg.FillRuleNonZero
}

func lineCap(lc heartbutton.LineCap) gg.LineCap {
	if lc == heartbutton.CapRound {
		return gg.LineCapRound
	}
	return gg.LineCapButt
}
