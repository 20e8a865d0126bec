// Package watch rebuilds a word graph whenever its input text file changes.
//
// The watcher observes the file's directory rather than the file itself, so
// editors that save by writing a temporary file and renaming it over the
// original are still seen. Bursts of events are debounced into one rebuild.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/katalvlaran/textgraph/core"
	"github.com/katalvlaran/textgraph/tokenize"
)

// DefaultDebounce is used when New receives a non-positive debounce.
const DefaultDebounce = 250 * time.Millisecond

// ErrNilHandler indicates New was called without a handler.
var ErrNilHandler = errors.New("watch: handler is nil")

// Handler receives each successfully rebuilt graph.
type Handler func(g *core.Graph)

// Watcher rebuilds one file's graph on change.
type Watcher struct {
	path     string
	debounce time.Duration
	handler  Handler
	build    func(path string) (*core.Graph, error)
	fs       *fsnotify.Watcher
}

// New starts watching path's directory. Call Run to process events and
// Close (or cancel Run's context) to release the watch.
func New(path string, debounce time.Duration, handler Handler) (*Watcher, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch: add %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		debounce: debounce,
		handler:  handler,
		build:    tokenize.BuildFile,
		fs:       fw,
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Close releases the underlying watch. Run returns once it notices.
func (w *Watcher) Close() error { return w.fs.Close() }

// Run processes events until ctx is done or the watcher is closed.
// It returns nil on either; rebuild failures are logged and the previous
// graph stays in place.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fs.Close()

	var timer *time.Timer
	var timerC <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", slog.String("path", w.path), slog.Any("error", err))

		case <-timerC:
			timer = nil
			timerC = nil
			w.rebuild()
		}
	}
}

// relevant reports whether ev may have changed the watched file's contents.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}

	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}

func (w *Watcher) rebuild() {
	start := time.Now()
	g, err := w.build(w.path)
	if err != nil {
		slog.Warn("rebuild failed, keeping previous graph",
			slog.String("path", w.path),
			slog.Any("error", err),
		)
		return
	}
	slog.Info("graph rebuilt",
		slog.String("path", w.path),
		slog.Int("words", g.Len()),
		slog.Int("edges", g.EdgeCount()),
		slog.Duration("took", time.Since(start)),
	)
	w.handler(g)
}
