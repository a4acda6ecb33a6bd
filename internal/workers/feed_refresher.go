package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-post-board/models"
)

// FeedSource is the subset of the server adapter the refresher needs.
type FeedSource interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
}

type feedRefresher struct {
	source   FeedSource
	interval time.Duration
	notify   func([]models.Post)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewFeedRefresher creates a worker that re-fetches the post feed on a ticker
// and hands every successful result to notify. The worker is idle until Start
// is called. Run starts it with a background context so it satisfies [Worker].
func NewFeedRefresher(source FeedSource, interval time.Duration, notify func([]models.Post)) FeedRefreshJob {
	return &feedRefresher{source: source, interval: interval, notify: notify}
}

// Run implements [Worker].
func (f *feedRefresher) Run() {
	f.Start(context.Background())
}

// Start stops any previously running refresh loop, then launches a background
// goroutine that fetches the feed every interval. If the interval is zero or
// negative it defaults to one minute. Fetch errors are skipped; the next tick
// tries again. The goroutine exits when ctx is cancelled or Stop is called.
func (f *feedRefresher) Start(ctx context.Context) {
	interval := f.interval
	if interval <= 0 {
		interval = time.Minute
	}

	f.Stop()

	f.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.wg.Add(1)
	f.mu.Unlock()

	go func() {
		defer f.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				posts, err := f.source.ListPosts(jobCtx)
				if err != nil {
					continue
				}
				if f.notify != nil {
					f.notify(posts)
				}
			}
		}
	}()
}

// Stop cancels the background goroutine's context and blocks until it has
// fully exited. Safe to call when the refresher is not running.
func (f *feedRefresher) Stop() {
	f.mu.Lock()
	cancel := f.cancel
	f.cancel = nil
	f.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	f.wg.Wait()
}
