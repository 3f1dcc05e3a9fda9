package fs

import (
	"sync"
	"time"

	"github.com/aretw0/noted/pkg/core"
)

// debouncer coalesces bursts of events for the same title into one event,
// emitted once the window since the first event of the burst has elapsed.
type debouncer struct {
	mu      sync.Mutex
	window  time.Duration
	timers  map[string]*time.Timer
	pending map[string]core.Event
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{
		window:  window,
		timers:  make(map[string]*time.Timer),
		pending: make(map[string]core.Event),
	}
}

func (d *debouncer) add(e core.Event, emit func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if prev, ok := d.pending[e.Title]; ok {
		d.pending[e.Title] = merge(prev, e)
		return
	}

	d.pending[e.Title] = e
	d.wg.Add(1)
	title := e.Title
	d.timers[title] = time.AfterFunc(d.window, func() {
		defer d.wg.Done()

		d.mu.Lock()
		ev, ok := d.pending[title]
		delete(d.pending, title)
		delete(d.timers, title)
		d.mu.Unlock()

		if !ok {
			return
		}
		emit(ev)
	})
}

// merge folds a later event into an earlier one of the same burst.
// A file created and then written is still a creation.
func merge(prev, next core.Event) core.Event {
	if prev.Type == core.EventCreate && next.Type == core.EventModify {
		prev.Timestamp = next.Timestamp
		return prev
	}
	return next
}

// stopAndWait drops pending events that have not fired yet and waits up to
// timeout for the ones already emitting.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.dropPendingLocked()
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}

// dropPendingLocked stops the debouncer and discards unfired events.
// Timers that already fired find nothing pending and emit nothing.
// d.mu must be held.
func (d *debouncer) dropPendingLocked() {
	d.stopped = true
	for title, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, title)
		delete(d.pending, title)
	}
}
