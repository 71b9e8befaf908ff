package catalog

import (
	"fmt"
	"log"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Holder carries the current catalog and swaps it atomically when the
// backing file changes. Lookups during a reload see either the old or the
// new catalog, never a partial one.
type Holder struct {
	mu      sync.RWMutex
	current *Catalog
}

// NewHolder wraps an already loaded catalog.
func NewHolder(c *Catalog) *Holder {
	return &Holder{current: c}
}

// Get returns the current catalog.
func (h *Holder) Get() *Catalog {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// set swaps in a new catalog.
func (h *Holder) set(c *Catalog) {
	h.mu.Lock()
	h.current = c
	h.mu.Unlock()
}

// Watch reloads the catalog whenever the file at path is written. Reload
// failures keep the previous catalog and are logged. The watcher runs
// until stop is closed.
func (h *Holder) Watch(path string, stop <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(path); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch catalog file %s: %w", path, err)
	}

	go func() {
		defer func() { _ = watcher.Close() }()
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
					reloaded, err := LoadFile(path)
					if err != nil {
						log.Printf("Catalog reload failed, keeping previous catalog: %v", err)
						continue
					}
					h.set(reloaded)
					log.Printf("Catalog reloaded from %s (%d resources)", path, reloaded.Len())
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Catalog watcher error: %v", err)
			case <-stop:
				return
			}
		}
	}()

	return nil
}
