package ebitenhost

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/phanxgames/heartbutton"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFileConfig(t *testing.T) {
	path := writeFile(t, "heart.toml", `
[window]
title = "Likes"
width = 320
button_size = 96

[button]
density = 2.0
tick_ms = 300
`)
	cfg, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Window.Title != "Likes" || cfg.Window.Width != 320 || cfg.Window.ButtonSize != 96 {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Window.Height != DefaultRunConfig().Height {
		t.Errorf("Height = %d, want default", cfg.Window.Height)
	}
	want := heartbutton.Config{Density: 2, TickMillis: 300, ColorMillis: 70}
	if cfg.Button != want {
		t.Errorf("button = %+v, want %+v", cfg.Button, want)
	}
}

func TestLoadFileConfigErrors(t *testing.T) {
	for name, content := range map[string]string{
		"syntax":       "[window\n",
		"density":      "[button]\ndensity = -1.0\n",
		"window width": "[window]\nwidth = 0\n",
	} {
		path := writeFile(t, "bad.toml", content)
		if _, err := LoadFileConfig(path); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}
