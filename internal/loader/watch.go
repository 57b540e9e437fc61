package loader

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/Ashfaaq98/openday-console/internal/openday"
	"github.com/fsnotify/fsnotify"
)

// WatchOptions controls watch-mode reloading.
type WatchOptions struct {
	// Debounce coalesces bursts of writes (editors often write several times).
	Debounce time.Duration
	OnReload func(*openday.Event)
	OnError  func(error)
	Logger   *log.Logger
}

// Watcher reloads a local event document whenever it changes on disk.
type Watcher struct {
	loader *Loader
	opts   WatchOptions

	reloads int
	errors  int
}

// NewWatcher constructs a watcher for the loader's source, which must be a
// local file.
func NewWatcher(l *Loader, opts WatchOptions) (*Watcher, error) {
	if l.IsRemote() {
		return nil, errors.New("watch mode requires a local file source")
	}
	if opts.Debounce == 0 {
		opts.Debounce = 250 * time.Millisecond
	}
	if opts.Logger == nil {
		opts.Logger = log.New(log.Writer(), "[watch] ", log.LstdFlags)
	}
	return &Watcher{loader: l, opts: opts}, nil
}

// Run watches until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer fw.Close()

	path, err := filepath.Abs(w.loader.Source())
	if err != nil {
		return fmt.Errorf("resolve %s: %w", w.loader.Source(), err)
	}

	// Watch the directory so atomic replace-by-rename is still seen.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch add: %w", err)
	}
	w.opts.Logger.Printf("Watching %s for changes", path)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			w.opts.Logger.Printf("Watch stopping: reloads=%d errors=%d", w.reloads, w.errors)
			return ctx.Err()
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				pending = time.After(w.opts.Debounce)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			if err != nil {
				w.opts.Logger.Printf("watch error: %v", err)
			}
		case <-pending:
			pending = nil
			w.reload(ctx)
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	ev, err := w.loader.Reload(ctx)
	if err != nil {
		w.errors++
		if w.opts.OnError != nil {
			w.opts.OnError(err)
		}
		return
	}
	w.reloads++
	w.opts.Logger.Printf("Reloaded %s: %d programs", w.loader.Source(), ev.ProgramCount())
	if w.opts.OnReload != nil {
		w.opts.OnReload(ev)
	}
}
