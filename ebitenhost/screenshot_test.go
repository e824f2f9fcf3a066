package ebitenhost

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/phanxgames/heartbutton"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"checked", "checked"},
		{"after-toggle", "after-toggle"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"h\u00e9art", "h_art"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	h := NewHost(heartbutton.New())
	h.Screenshot("a")
	h.Screenshot("b")
	if len(h.screenshotQueue) != 2 || h.screenshotQueue[0] != "a" || h.screenshotQueue[1] != "b" {
		t.Errorf("queue = %v, want [a b]", h.screenshotQueue)
	}
}

func TestScreenshotDirDefault(t *testing.T) {
	h := NewHost(heartbutton.New())
	if h.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", h.ScreenshotDir, "screenshots")
	}
}

func TestSaveScreenshotsWritesPNG(t *testing.T) {
	h := NewHost(heartbutton.New())
	h.ScreenshotDir = filepath.Join(t.TempDir(), "shots")
	h.Screenshot("first frame")
	h.Screenshot("second")

	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	want := color.RGBA{R: 106, G: 193, B: 255, A: 255}
	img.SetRGBA(2, 1, want)

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	saved := h.saveScreenshots(img, now)
	if len(saved) != 2 {
		t.Fatalf("saved %d files, want 2", len(saved))
	}
	if got := filepath.Base(saved[0]); got != "20260102_030405_first_frame.png" {
		t.Errorf("file name = %q", got)
	}

	f, err := os.Open(saved[1])
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds().Dx() != 4 || decoded.Bounds().Dy() != 3 {
		t.Errorf("size = %v, want 4x3", decoded.Bounds())
	}
	r, g, b, a := decoded.At(2, 1).RGBA()
	got := [4]int{int(r >> 8), int(g >> 8), int(b >> 8), int(a >> 8)}
	exp := [4]int{int(want.R), int(want.G), int(want.B), int(want.A)}
	for i := range got {
		// gg truncates when converting to 8 bits.
		if d := got[i] - exp[i]; d > 1 || d < -1 {
			t.Errorf("pixel = %v, want %v ±1", got, exp)
			break
		}
	}
}
