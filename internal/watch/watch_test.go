package watch

import (
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestWatcher builds a Watcher without calling Start, so tests can
// exercise handleEvent/processDebounced directly without spawning the
// fsnotify goroutines a real Start/Stop cycle would, avoiding goleak
// noise from background watcher goroutines entirely.
func newTestWatcher(t *testing.T, debounce time.Duration, onReplan func()) *Watcher {
	t.Helper()
	w, err := New(t.TempDir(), debounce, onReplan)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.fsw.Close() })
	return w
}

func TestHandleEventIgnoresNonPDDLFiles(t *testing.T) {
	w := newTestWatcher(t, time.Millisecond, nil)
	w.handleEvent(fsnotify.Event{Name: "/tmp/notes.txt", Op: fsnotify.Write})
	assert.Empty(t, w.debounceMap)
}

func TestHandleEventRecordsPDDLWrites(t *testing.T) {
	w := newTestWatcher(t, time.Millisecond, nil)
	w.handleEvent(fsnotify.Event{Name: "/tmp/domain.pddl", Op: fsnotify.Write})
	assert.Len(t, w.debounceMap, 1)
}

func TestHandleEventIgnoresChmod(t *testing.T) {
	w := newTestWatcher(t, time.Millisecond, nil)
	w.handleEvent(fsnotify.Event{Name: "/tmp/domain.pddl", Op: fsnotify.Chmod})
	assert.Empty(t, w.debounceMap)
}

func TestProcessDebouncedFiresOnceAfterSettling(t *testing.T) {
	calls := 0
	w := newTestWatcher(t, 10*time.Millisecond, func() { calls++ })

	w.handleEvent(fsnotify.Event{Name: "/tmp/problem.pddl", Op: fsnotify.Write})
	w.processDebounced()
	assert.Equal(t, 0, calls, "should not fire before debounce settles")

	time.Sleep(15 * time.Millisecond)
	w.processDebounced()
	assert.Equal(t, 1, calls, "should fire once settled")

	w.processDebounced()
	assert.Equal(t, 1, calls, "should not re-fire with no new events")
}
