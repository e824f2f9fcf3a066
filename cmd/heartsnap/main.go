// Command heartsnap renders a heart button to PNG files without opening a
// window.
//
// By default it writes the resting unchecked and checked frames. With
// -frames it also records the toggle animation, one PNG per frame:
//
//	heartsnap -size 124 -out shots -frames 20
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/gg"

	"github.com/phanxgames/heartbutton"
	"github.com/phanxgames/heartbutton/raster"
)

func main() {
	var (
		size    = flag.Int("size", 0, "output size in pixels (default: preferred size for the density)")
		outDir  = flag.String("out", ".", "output directory")
		cfgPath = flag.String("config", "", "TOML file with button settings")
		frames  = flag.Int("frames", 0, "number of animation frames to record")
		fps     = flag.Int("fps", 60, "frame rate used when recording the animation")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	heartbutton.SetLogger(logger)
	gg.SetLogger(logger)

	if err := run(*cfgPath, *outDir, *size, *frames, *fps); err != nil {
		logger.Error("heartsnap failed", "err", err)
		os.Exit(1)
	}
}

func run(cfgPath, outDir string, size, frames, fps int) error {
	cfg := heartbutton.DefaultConfig()
	if cfgPath != "" {
		var err error
		if cfg, err = heartbutton.LoadConfigFile(cfgPath); err != nil {
			return err
		}
	}
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", fps)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	b := heartbutton.New(heartbutton.WithConfig(cfg))
	if size <= 0 {
		size = b.PreferredSize()
	}
	bg := heartbutton.Color{R: 1, G: 1, B: 1, A: 1}

	save := func(name string) error {
		path := filepath.Join(outDir, name)
		if err := raster.SavePNG(path, b, size, size, bg); err != nil {
			return err
		}
		heartbutton.Logger().Info("wrote", "path", path, "checked", b.Checked(), "phase", b.Phase())
		return nil
	}

	if err := save("unchecked.png"); err != nil {
		return err
	}
	b.SetChecked(true, false)
	if err := save("checked.png"); err != nil {
		return err
	}
	if frames <= 0 {
		return nil
	}

	b.SetChecked(false, false)
	b.SetChecked(true, true)
	step := time.Second / time.Duration(fps)
	for i := 0; i < frames; i++ {
		if err := save(fmt.Sprintf("frame_%03d.png", i)); err != nil {
			return err
		}
		b.Update(step)
	}
	return nil
}
