package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-post-board/internal/mock"
	"github.com/MKhiriev/go-post-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubFeedSource struct {
	mu    sync.Mutex
	calls int
	posts []models.Post
	err   error
}

func (s *stubFeedSource) ListPosts(ctx context.Context) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.posts, s.err
}

func (s *stubFeedSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestFeedRefresher(t *testing.T) {
	t.Run("NotifiesWithFetchedPosts", func(t *testing.T) {
		source := &stubFeedSource{posts: []models.Post{{ID: 42, Text: "hello"}}}

		notified := make(chan []models.Post, 1)
		refresher := NewFeedRefresher(source, 10*time.Millisecond, func(posts []models.Post) {
			select {
			case notified <- posts:
			default:
			}
		})

		refresher.Start(context.Background())
		defer refresher.Stop()

		select {
		case posts := <-notified:
			require.Len(t, posts, 1)
			assert.Equal(t, int64(42), posts[0].ID)
		case <-time.After(time.Second):
			t.Fatal("refresher never notified")
		}
	})

	t.Run("SkipsFailedFetches", func(t *testing.T) {
		source := &stubFeedSource{err: errors.New("server unreachable")}

		var notifications int
		var mu sync.Mutex
		refresher := NewFeedRefresher(source, 5*time.Millisecond, func([]models.Post) {
			mu.Lock()
			notifications++
			mu.Unlock()
		})

		refresher.Start(context.Background())
		time.Sleep(50 * time.Millisecond)
		refresher.Stop()

		assert.Greater(t, source.callCount(), 0)
		mu.Lock()
		assert.Zero(t, notifications)
		mu.Unlock()
	})

	t.Run("StopHaltsTheLoop", func(t *testing.T) {
		source := &stubFeedSource{}
		refresher := NewFeedRefresher(source, 5*time.Millisecond, nil)

		refresher.Start(context.Background())
		time.Sleep(20 * time.Millisecond)
		refresher.Stop()

		calls := source.callCount()
		time.Sleep(30 * time.Millisecond)
		assert.Equal(t, calls, source.callCount())
	})

	t.Run("StopWithoutStartIsSafe", func(t *testing.T) {
		refresher := NewFeedRefresher(&stubFeedSource{}, time.Minute, nil)
		refresher.Stop()
	})

	t.Run("RestartReplacesPreviousLoop", func(t *testing.T) {
		source := &stubFeedSource{}
		refresher := NewFeedRefresher(source, 5*time.Millisecond, nil)

		refresher.Start(context.Background())
		refresher.Start(context.Background())
		time.Sleep(20 * time.Millisecond)
		refresher.Stop()

		calls := source.callCount()
		time.Sleep(30 * time.Millisecond)
		assert.Equal(t, calls, source.callCount())
	})

	t.Run("WorksAgainstServerAdapter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		adapter := mock.NewMockServerAdapter(ctrl)
		adapter.EXPECT().
			ListPosts(gomock.Any()).
			Return([]models.Post{{ID: 1, Text: "from server"}}, nil).
			MinTimes(1)

		notified := make(chan []models.Post, 1)
		refresher := NewFeedRefresher(adapter, 10*time.Millisecond, func(posts []models.Post) {
			select {
			case notified <- posts:
			default:
			}
		})

		refresher.Start(context.Background())
		defer refresher.Stop()

		select {
		case posts := <-notified:
			require.Len(t, posts, 1)
			assert.Equal(t, "from server", posts[0].Text)
		case <-time.After(time.Second):
			t.Fatal("refresher never notified")
		}
	})

	t.Run("ContextCancellationStopsFetching", func(t *testing.T) {
		source := &stubFeedSource{}
		refresher := NewFeedRefresher(source, 5*time.Millisecond, nil)

		ctx, cancel := context.WithCancel(context.Background())
		refresher.Start(ctx)
		time.Sleep(20 * time.Millisecond)
		cancel()
		time.Sleep(20 * time.Millisecond)

		calls := source.callCount()
		time.Sleep(30 * time.Millisecond)
		assert.Equal(t, calls, source.callCount())

		refresher.Stop()
	})
}
