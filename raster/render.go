package raster

import (
	"fmt"
	"os"

	"github.com/phanxgames/heartbutton"
)

// Render draws b's current frame onto a new w×h canvas filled with bg.
// The caller owns the returned canvas and must Close it.
func Render(b *heartbutton.Button, w, h int, bg heartbutton.Color) (*Canvas, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raster: invalid size %dx%d", w, h)
	}
	c := New(w, h)
	c.Clear(bg)
	b.Draw(c, float64(w), float64(h))
	if err := c.Err(); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

// SavePNG renders b at w×h and writes the result to path.
func SavePNG(path string, b *heartbutton.Button, w, h int, bg heartbutton.Color) error {
	c, err := Render(b, w, h, bg)
	if err != nil {
		return err
	}
	defer c.Close()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	if err := c.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("raster: close %s: %w", path, err)
	}
	heartbutton.Logger().Debug("raster: frame saved", "path", path, "width", w, "height", h)
	return nil
}
