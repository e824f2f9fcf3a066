package ebitenhost

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/phanxgames/heartbutton"
)

// ConfigWatcher reloads a TOML config file whenever it changes and hands the
// result to the host loop. The button itself is only touched from Update.
type ConfigWatcher struct {
	w    *fsnotify.Watcher
	done chan struct{}
}

// WatchConfig starts watching path. Valid reloads are applied at the start
// of the next Update; invalid ones are logged and skipped.
func (h *Host) WatchConfig(path string) (*ConfigWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}
	// Watch the directory: editors often replace the file instead of
	// writing it in place.
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch config %s: %w", path, err)
	}

	cw := &ConfigWatcher{w: w, done: make(chan struct{})}
	target := filepath.Clean(path)
	go func() {
		defer close(cw.done)
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				cfg, err := LoadFileConfig(path)
				if err != nil {
					heartbutton.Logger().Warn("ebitenhost: config reload", "err", err)
					continue
				}
				h.queueReload(cfg)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				heartbutton.Logger().Warn("ebitenhost: config watcher", "err", err)
			}
		}
	}()
	return cw, nil
}

// Close stops the watcher and waits for its goroutine to exit.
func (cw *ConfigWatcher) Close() error {
	err := cw.w.Close()
	<-cw.done
	return err
}

// queueReload keeps only the newest pending config.
func (h *Host) queueReload(cfg FileConfig) {
	for {
		select {
		case h.reload <- cfg:
			return
		default:
		}
		select {
		case <-h.reload:
		default:
		}
	}
}

// applyPendingConfig runs on the host loop.
func (h *Host) applyPendingConfig() {
	select {
	case cfg := <-h.reload:
		if err := h.button.SetConfig(cfg.Button); err != nil {
			heartbutton.Logger().Warn("ebitenhost: config rejected", "err", err)
			return
		}
		h.ButtonSize = cfg.Window.ButtonSize
		h.ShowFPS = cfg.Window.ShowFPS
		h.place()
		heartbutton.Logger().Info("ebitenhost: config reloaded",
			"density", cfg.Button.Density, "button_size", h.ButtonSize)
	default:
	}
}
