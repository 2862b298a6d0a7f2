package main

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/golang/glog"
)

const defaultDebounce = 250 * time.Millisecond

// watcher calls onChange whenever a single file is written, created or
// renamed over, coalescing bursts of events within the debounce interval.
type watcher struct {
	fw       *fsnotify.Watcher
	path     string
	debounce time.Duration
	onChange func() error
	onError  func(error)

	lock    *sync.Mutex
	running bool
	stop    chan struct{}
	stopped chan struct{}
}

// newWatcher watches the directory holding path rather than path itself,
// so editors that save by renaming a temp file are still seen.
func newWatcher(path string, debounce time.Duration, onChange func() error, onError func(error)) (*watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	return &watcher{
		fw:       fw,
		path:     path,
		debounce: debounce,
		onChange: onChange,
		onError:  onError,
		lock:     &sync.Mutex{},
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}, nil
}

// Start watching in a goroutine.
func (w *watcher) Start() {
	w.lock.Lock()
	defer w.lock.Unlock()
	if w.running {
		return
	}
	w.running = true
	go w.loop()
}

// Stop watching and wait for the goroutine to exit.
func (w *watcher) Stop() {
	w.lock.Lock()
	if !w.running {
		w.lock.Unlock()
		return
	}
	w.running = false
	w.lock.Unlock()

	close(w.stop)
	<-w.stopped
}

func (w *watcher) loop() {
	defer close(w.stopped)
	defer w.fw.Close()

	want, _ := filepath.Abs(w.path)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.stop:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			got, _ := filepath.Abs(event.Name)
			if got != want {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if glog.V(2) {
				glog.Infof("%s: %s", event.Op, event.Name)
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case <-fire:
			timer, fire = nil, nil
			if err := w.onChange(); err != nil && w.onError != nil {
				w.onError(err)
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}
