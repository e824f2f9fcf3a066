package raster

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/phanxgames/heartbutton"
)

var white = heartbutton.Color{R: 1, G: 1, B: 1, A: 1}

// pixelNear reports whether the pixel at (x, y) is within tol of want on
// every channel.
func pixelNear(t *testing.T, img image.Image, x, y int, want heartbutton.Color, tol int) {
	t.Helper()
	r, g, b, a := img.At(x, y).RGBA()
	got := [4]int{int(r >> 8), int(g >> 8), int(b >> 8), int(a >> 8)}
	w := want.RGBA()
	exp := [4]int{int(w.R), int(w.G), int(w.B), int(w.A)}
	for i := range got {
		if d := got[i] - exp[i]; d > tol || d < -tol {
			t.Errorf("pixel (%d,%d) = %v, want %v ±%d", x, y, got, exp, tol)
			return
		}
	}
}

func render(t *testing.T, b *heartbutton.Button, size int) image.Image {
	t.Helper()
	c, err := Render(b, size, size, white)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	defer c.Close()
	return c.Image()
}

func TestRenderRestingColors(t *testing.T) {
	tests := []struct {
		name    string
		checked bool
		heart   heartbutton.Color
	}{
		{"unchecked", false, heartbutton.ColorUnchecked},
		{"checked", true, heartbutton.ColorChecked},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := render(t, heartbutton.New(heartbutton.WithChecked(tt.checked)), 62)
			// Logical (8,8) lies inside the left lobe.
			pixelNear(t, img, 16, 16, tt.heart, 3)
			// Logical (21,12.5) lies inside the oval, clear of the glyph.
			pixelNear(t, img, 42, 25, heartbutton.ColorOval, 3)
			// Bottom-left corner is outside every layer.
			pixelNear(t, img, 0, 61, white, 0)
		})
	}
}

func TestRenderMidCrossfade(t *testing.T) {
	b := heartbutton.New()
	b.SetChecked(true, true)
	b.Update(250 * time.Millisecond)
	b.Update(35 * time.Millisecond)
	if b.Phase() != heartbutton.PhaseColor {
		t.Fatalf("phase = %v, want color", b.Phase())
	}

	img := render(t, b, 62)
	pixelNear(t, img, 16, 16, b.State().HeartColor, 3)
}

func TestRenderScalesWithSize(t *testing.T) {
	b := heartbutton.New(heartbutton.WithChecked(true))
	img := render(t, b, 124)
	if got := img.Bounds().Size(); got != image.Pt(124, 124) {
		t.Fatalf("size = %v, want 124x124", got)
	}
	pixelNear(t, img, 32, 32, heartbutton.ColorChecked, 3)
	pixelNear(t, img, 84, 50, heartbutton.ColorOval, 3)
}

func TestRenderInvalidSize(t *testing.T) {
	if _, err := Render(heartbutton.New(), 0, 10, white); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestEncodePNG(t *testing.T) {
	c, err := Render(heartbutton.New(), 31, 31, white)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 31 || img.Bounds().Dy() != 31 {
		t.Errorf("decoded size = %v", img.Bounds())
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heart.png")
	if err := SavePNG(path, heartbutton.New(), 62, 62, white); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("empty png")
	}
}
