package backend

import (
	"context"
	"time"
)

const (
	minReloadGap = 50 * time.Millisecond
	maxReloadGap = time.Second
)

// reloadGap derives the minimum spacing between catalog parses from the poll
// interval: half of it, clamped to [minReloadGap, maxReloadGap].
func reloadGap(poll time.Duration) time.Duration {
	gap := poll / 2
	if gap < minReloadGap {
		return minReloadGap
	}
	if gap > maxReloadGap {
		return maxReloadGap
	}
	return gap
}

// reloadThrottle spaces catalog parses so an editor that writes the file in
// several steps does not cause a burst of reloads. It is owned by the poll
// goroutine and is not safe for concurrent use.
type reloadThrottle struct {
	gap  time.Duration
	next time.Time
}

func newReloadThrottle(gap time.Duration) *reloadThrottle {
	return &reloadThrottle{gap: gap}
}

// wait blocks until the gap since the previous reload has passed. It returns
// ctx.Err() if the watcher stops first.
func (t *reloadThrottle) wait(ctx context.Context) error {
	if t == nil || t.gap <= 0 {
		return nil
	}
	if delay := time.Until(t.next); delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	t.next = time.Now().Add(t.gap)
	return nil
}
