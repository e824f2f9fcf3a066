package ebitenhost

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/phanxgames/heartbutton"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title      string            `toml:"title"`
	Width      int               `toml:"width"`
	Height     int               `toml:"height"`
	ButtonSize int               `toml:"button_size"`
	Resizable  bool              `toml:"resizable"`
	ShowFPS    bool              `toml:"show_fps"`
	ClearColor heartbutton.Color `toml:"-"`
	// TestScript, when set, is loaded with LoadTestScript and the window
	// closes once the script is done.
	TestScript string `toml:"test_script"`
}

// DefaultRunConfig returns a 200×200 resizable window.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:      "Heart Button",
		Width:      200,
		Height:     200,
		Resizable:  true,
		ClearColor: heartbutton.Color{R: 1, G: 1, B: 1, A: 1},
	}
}

// FileConfig is the on-disk layout read by LoadFileConfig:
//
//	[window]
//	title = "Heart"
//	width = 320
//
//	[button]
//	density = 2.0
type FileConfig struct {
	Window RunConfig          `toml:"window"`
	Button heartbutton.Config `toml:"button"`
}

// LoadFileConfig reads a TOML file. Missing keys keep their defaults.
func LoadFileConfig(path string) (FileConfig, error) {
	cfg := FileConfig{Window: DefaultRunConfig(), Button: heartbutton.DefaultConfig()}
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Button.Validate(); err != nil {
		return FileConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return FileConfig{}, fmt.Errorf("%s: window size must be positive, got %dx%d",
			path, cfg.Window.Width, cfg.Window.Height)
	}
	return cfg, nil
}

// Run opens a window and hosts b until the window is closed or the test
// script finishes.
func Run(b *heartbutton.Button, cfg RunConfig) error {
	h := NewHost(b)
	h.ButtonSize = cfg.ButtonSize
	h.ShowFPS = cfg.ShowFPS
	if cfg.ClearColor != (heartbutton.Color{}) {
		h.ClearColor = cfg.ClearColor
	}

	if cfg.TestScript != "" {
		data, err := os.ReadFile(cfg.TestScript)
		if err != nil {
			return fmt.Errorf("read test script: %w", err)
		}
		runner, err := LoadTestScript(data)
		if err != nil {
			return err
		}
		h.SetTestRunner(runner)
		h.SetUpdateFunc(func() error {
			if runner.Done() {
				return ebiten.Termination
			}
			return nil
		})
	}

	return RunHost(h, cfg)
}

// RunHost opens a window for an already configured Host.
func RunHost(h *Host, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	heartbutton.Logger().Info("ebitenhost: window opening",
		"title", cfg.Title, "width", cfg.Width, "height", cfg.Height)

	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	if h.testRunner != nil && len(h.testRunner.Failures()) > 0 {
		return fmt.Errorf("test script: %d expectation(s) failed: %v",
			len(h.testRunner.Failures()), h.testRunner.Failures())
	}
	return nil
}
