// Package watch rescans source files whenever they change on disk, feeding
// live tooling that wants fresh tokens while a buffer is being edited.
package watch

import (
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/scanlex/scanlex/internal/scanner"
)

// Result is one rescan outcome. Data is populated even when Err is a scan
// error, so partial token sequences from incomplete buffers stay available;
// Data is nil only when the file could not be read.
type Result struct {
	Path string
	Data *scanner.ScanData
	Err  error
}

// Watcher rescans watched files on every create or write, using OS-native
// notifications via fsnotify.
type Watcher struct {
	w    *fsnotify.Watcher
	cfg  *scanner.Config
	resC chan Result
	erC  chan error

	done      chan struct{}
	loopDone  chan struct{}
	closeOnce sync.Once
}

// New creates a Watcher scanning with cfg. The configuration is borrowed
// read-only and must not be mutated while the watcher runs.
func New(cfg *scanner.Config) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	ww := &Watcher{
		w:        w,
		cfg:      cfg,
		resC:     make(chan Result, 16),
		erC:      make(chan error, 1),
		done:     make(chan struct{}),
		loopDone: make(chan struct{}),
	}
	go ww.loop()
	return ww, nil
}

// loop delivers rescan results until the watcher is closed. Every send races
// against done so a consumer that stopped reading cannot park the loop
// forever once Close is called.
func (w *Watcher) loop() {
	defer close(w.loopDone)
	for {
		select {
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			select {
			case w.resC <- w.rescan(ev.Name):
			case <-w.done:
				return
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			select {
			case w.erC <- err:
			case <-w.done:
				return
			}
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) rescan(path string) Result {
	b, err := os.ReadFile(path)
	if err != nil {
		return Result{Path: path, Err: err}
	}
	data := &scanner.ScanData{}
	var sc scanner.Scanner
	err = sc.Run(string(b), w.cfg, data)
	return Result{Path: path, Data: data, Err: err}
}

// Results delivers one Result per rescan.
func (w *Watcher) Results() <-chan Result { return w.resC }

// Errors delivers watcher-level errors.
func (w *Watcher) Errors() <-chan error { return w.erC }

// Add starts watching the named file or directory.
func (w *Watcher) Add(name string) error { return w.w.Add(name) }

// Remove stops watching the named file or directory.
func (w *Watcher) Remove(name string) error { return w.w.Remove(name) }

// Close stops the watcher and releases its event loop, even when delivered
// results were never consumed. Safe to call more than once.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() { close(w.done) })
	return w.w.Close()
}
