package content

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events editors emit on save
const DefaultDebounce = 150 * time.Millisecond

// Watcher reloads a portfolio file whenever it changes on disk
type Watcher struct {
	path     string
	fsw      *fsnotify.Watcher
	Debounce time.Duration
}

// NewWatcher watches the directory holding path, so that editors which
// replace the file on save are still noticed.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{path: abs, fsw: fsw, Debounce: DefaultDebounce}, nil
}

// Path returns the watched file
func (w *Watcher) Path() string {
	return w.path
}

// Run delivers a freshly loaded portfolio, or the load error, to onChange
// after each settled change. It returns when ctx is done.
func (w *Watcher) Run(ctx context.Context, onChange func(*Portfolio, error)) {
	defer w.fsw.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.Debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.Debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			p, err := Load(w.path)
			if err != nil {
				log.Printf("Portfolio reload failed: %v", err)
			} else {
				log.Printf("Portfolio reloaded from %s", w.path)
			}
			onChange(p, err)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("Portfolio watcher error: %v", err)
		}
	}
}
