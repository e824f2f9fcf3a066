package ebitenhost

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/phanxgames/heartbutton"
)

const reloadTimeout = 5 * time.Second

// pumpReloads runs the host's reload step until cond holds or the timeout
// passes, the way Update would on every frame.
func pumpReloads(h *Host, timeout time.Duration, cond func() bool) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		h.applyPendingConfig()
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	h.applyPendingConfig()
	return cond()
}

// replaceFile swaps content in with a rename so the watcher never sees a
// half-written file.
func replaceFile(t *testing.T, path, content string) {
	t.Helper()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}
}

func TestWatchConfigReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "heart.toml")
	if err := os.WriteFile(path, []byte("[button]\ndensity = 1.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	b := heartbutton.New()
	h := NewHost(b)
	cw, err := h.WatchConfig(path)
	if err != nil {
		t.Fatalf("WatchConfig: %v", err)
	}
	defer cw.Close()

	density := func() float64 { return b.Config().Density }

	// In-place write.
	if err := os.WriteFile(path, []byte("[button]\ndensity = 2.0\n[window]\nbutton_size = 64\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !pumpReloads(h, reloadTimeout, func() bool { return density() == 2 }) {
		t.Fatalf("Density = %v after write, want 2", density())
	}
	if h.ButtonSize != 64 {
		t.Errorf("ButtonSize = %d, want 64", h.ButtonSize)
	}

	// Other files in the directory are ignored.
	sibling := filepath.Join(dir, "other.toml")
	if err := os.WriteFile(sibling, []byte("[button]\ndensity = 3.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if pumpReloads(h, 300*time.Millisecond, func() bool { return density() != 2 }) {
		t.Errorf("sibling file changed Density to %v", density())
	}

	// Invalid content keeps the last good config.
	replaceFile(t, path, "[button]\ndensity = -1.0\n")
	if pumpReloads(h, 300*time.Millisecond, func() bool { return density() != 2 }) {
		t.Errorf("invalid reload changed Density to %v", density())
	}
	replaceFile(t, path, "[button\n")
	if pumpReloads(h, 300*time.Millisecond, func() bool { return density() != 2 }) {
		t.Errorf("malformed reload changed Density to %v", density())
	}

	// Replacing the file (editor save) reloads too.
	replaceFile(t, path, "[button]\ndensity = 3.0\n")
	if !pumpReloads(h, reloadTimeout, func() bool { return density() == 3 }) {
		t.Fatalf("Density = %v after replace, want 3", density())
	}
}

func TestConfigWatcherCloseStopsGoroutine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heart.toml")
	if err := os.WriteFile(path, []byte("[button]\ndensity = 1.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	h := NewHost(heartbutton.New())
	cw, err := h.WatchConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	closed := make(chan error, 1)
	go func() { closed <- cw.Close() }()
	select {
	case err := <-closed:
		if err != nil {
			t.Errorf("Close: %v", err)
		}
	case <-time.After(reloadTimeout):
		t.Fatal("Close did not return")
	}
	select {
	case <-cw.done:
	default:
		t.Error("watch goroutine still running after Close")
	}
}

func TestWatchConfigMissingDir(t *testing.T) {
	h := NewHost(heartbutton.New())
	path := filepath.Join(t.TempDir(), "missing", "heart.toml")
	if _, err := h.WatchConfig(path); err == nil {
		t.Error("expected error for a missing directory")
	}
}
