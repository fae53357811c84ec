package backend

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/atomicstack/drilldown/internal/catalog"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	// KindReloading announces that the catalog file changed and a parse is
	// under way.
	KindReloading Kind = iota
	KindCatalog
)

// Event conveys updated data or an error from a backend poll.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Snapshot is the payload of a KindCatalog event.
type Snapshot struct {
	Path    string
	ModTime time.Time
	Catalog *catalog.Catalog
}

// Watcher polls the catalog file at a fixed interval and publishes an event
// pair each time its modification time changes.
type Watcher struct {
	path     string
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a backend watcher that checks path every interval.
func NewWatcher(path string, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.startCatalogPoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current check
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startCatalogPoller() {
	throttle := newReloadThrottle(reloadGap(w.interval))
	var last time.Time
	w.wg.Add(1)
	go w.poll(func(ctx context.Context) []Event {
		info, err := os.Stat(w.path)
		if err != nil {
			return []Event{{Kind: KindCatalog, Err: err}}
		}
		if info.ModTime().Equal(last) {
			return nil
		}
		if err := throttle.wait(ctx); err != nil {
			return nil
		}
		last = info.ModTime()
		c, err := catalog.Load(w.path)
		if err != nil {
			return []Event{{Kind: KindReloading}, {Kind: KindCatalog, Err: err}}
		}
		return []Event{
			{Kind: KindReloading},
			{Kind: KindCatalog, Data: Snapshot{Path: w.path, ModTime: last, Catalog: c}},
		}
	})
}

func (w *Watcher) poll(check func(context.Context) []Event) {
	defer w.wg.Done()

	emit := func() bool {
		for _, evt := range check(w.ctx) {
			select {
			case <-w.ctx.Done():
				return false
			case w.events <- evt:
			}
		}
		return true
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
