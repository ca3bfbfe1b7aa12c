package theme

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/go-drift/toolsarea/pkg/errors"
)

// Watcher is a Provider backed by a color scheme file that reloads the
// palette whenever the file changes on disk.
//
// Run delivers changes from its own goroutine. Hosts with a single UI thread
// should hand the palette to their loop (for example through
// toolsarea.Manager.Post) instead of applying it directly.
type Watcher struct {
	path     string
	fsw      *fsnotify.Watcher
	logger   *slog.Logger
	onChange func(Palette)

	mu      sync.RWMutex
	current Palette
}

// NewWatcher loads the scheme at path and prepares to watch it. onChange may
// be nil.
func NewWatcher(path string, onChange func(Palette), logger *slog.Logger) (*Watcher, error) {
	path = filepath.Clean(path)
	p, err := LoadScheme(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	// Editors often replace the file, so watch the directory.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		path:     path,
		fsw:      fsw,
		logger:   logger.With(slog.String("component", "theme.Watcher")),
		onChange: onChange,
		current:  p,
	}, nil
}

// Palette implements Provider.
func (w *Watcher) Palette() Palette {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Run processes file events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.reload()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			errors.Report(&errors.ToolsAreaError{
				Op:   "theme.Watcher.Run",
				Kind: errors.KindTheme,
				Err:  err,
			})
		}
	}
}

func (w *Watcher) reload() {
	p, err := LoadScheme(w.path)
	if err != nil {
		// Keep the previous palette; a half-written file is common.
		errors.Report(&errors.ToolsAreaError{
			Op:   "theme.Watcher.reload",
			Kind: errors.KindTheme,
			Err:  err,
		})
		return
	}

	w.mu.Lock()
	changed := p != w.current
	w.current = p
	w.mu.Unlock()

	if !changed {
		return
	}
	w.logger.Info("color scheme reloaded", slog.String("path", w.path), slog.String("brightness", p.Brightness.String()))
	if w.onChange != nil {
		w.onChange(p)
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
