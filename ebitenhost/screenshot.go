package ebitenhost

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/heartbutton"
)

// Screenshot queues a labeled screenshot to be captured at the end of the
// current frame's Draw call. The PNG is written to ScreenshotDir with a
// timestamped filename.
func (h *Host) Screenshot(label string) {
	h.screenshotQueue = append(h.screenshotQueue, label)
}

// flushScreenshots captures the rendered frame for every queued label.
func (h *Host) flushScreenshots(screen *ebiten.Image) {
	if len(h.screenshotQueue) == 0 {
		return
	}
	defer func() { h.screenshotQueue = h.screenshotQueue[:0] }()

	h.saveScreenshots(readScreen(screen), time.Now())
}

// saveScreenshots writes img once per queued label and returns the paths
// written.
func (h *Host) saveScreenshots(img image.Image, now time.Time) []string {
	if err := os.MkdirAll(h.ScreenshotDir, 0o755); err != nil {
		heartbutton.Logger().Warn("ebitenhost: screenshot dir", "dir", h.ScreenshotDir, "err", err)
		return nil
	}

	dc := gg.NewContextForImage(img)
	defer dc.Close()

	var saved []string
	stamp := now.Format("20060102_150405")
	for _, label := range h.screenshotQueue {
		path := filepath.Join(h.ScreenshotDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := dc.SavePNG(path); err != nil {
			heartbutton.Logger().Warn("ebitenhost: screenshot", "path", path, "err", err)
			continue
		}
		heartbutton.Logger().Info("ebitenhost: screenshot saved", "path", path)
		saved = append(saved, path)
	}
	return saved
}

// readScreen wraps the screen pixels in an image. ReadPixels returns
// premultiplied RGBA, which is the layout image.RGBA uses.
func readScreen(screen *ebiten.Image) *image.RGBA {
	img := image.NewRGBA(screen.Bounds())
	screen.ReadPixels(img.Pix)
	return img
}

// sanitizeLabel maps a label to a file-name fragment: letters, digits, '-'
// and '.' are kept, everything else becomes '_'.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r <= unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			return r
		case r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, label)
}
