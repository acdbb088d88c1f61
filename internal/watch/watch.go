// Package watch implements `planner watch --dp DIR`'s fsnotify-driven
// replan loop: watch a domain/problem directory and re-plan on change.
package watch

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/logging"
)

// Watcher watches a directory for changes to domain.pddl/problem.pddl and
// invokes OnReplan, debounced, once per settled batch of changes.
type Watcher struct {
	mu          sync.Mutex
	fsw         *fsnotify.Watcher
	dir         string
	debounceMap map[string]time.Time
	debounceDur time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool

	onReplan func()
}

// New creates a Watcher over dir (which should contain domain.pddl and
// problem.pddl), invoking onReplan after changes settle for debounce.
func New(dir string, debounce time.Duration, onReplan func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsw:         fsw,
		dir:         dir,
		debounceMap: make(map[string]time.Time),
		debounceDur: debounce,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
		onReplan:    onReplan,
	}, nil
}

// Start begins watching w.dir. Non-blocking: the event loop runs in a
// goroutine until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	log := logging.Get(logging.CategoryWatch)
	if err := w.fsw.Add(w.dir); err != nil {
		log.Warnf("failed to watch %s: %v", w.dir, err)
	} else {
		log.Infof("watching %s", w.dir)
	}

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and blocks until its goroutine exits.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	_ = w.fsw.Close()
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)
	log := logging.Get(logging.CategoryWatch)

	ticker := time.NewTicker(debounceTick(w.debounceDur))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Errorf("watch error: %v", err)
		case <-ticker.C:
			w.processDebounced()
		}
	}
}

func debounceTick(debounce time.Duration) time.Duration {
	tick := debounce / 5
	if tick < time.Millisecond {
		tick = time.Millisecond
	}
	return tick
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	base := filepath.Base(event.Name)
	if !strings.HasSuffix(base, ".pddl") {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}
	w.mu.Lock()
	w.debounceMap[event.Name] = time.Now()
	w.mu.Unlock()
}

func (w *Watcher) processDebounced() {
	w.mu.Lock()
	now := time.Now()
	settled := false
	for _, t := range w.debounceMap {
		if now.Sub(t) >= w.debounceDur {
			settled = true
		}
	}
	if settled {
		w.debounceMap = make(map[string]time.Time)
	}
	w.mu.Unlock()

	if settled && w.onReplan != nil {
		w.onReplan()
	}
}
