package view

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapfeed/snapfeed/internal/client/client"
	"github.com/snapfeed/snapfeed/internal/client/models"
	"github.com/snapfeed/snapfeed/internal/logging"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// fakeGetter serves user profiles with optional per-user delays and errors.
type fakeGetter struct {
	mu       sync.Mutex
	profiles map[string][]byte
	errs     map[string]error
	delays   map[string]time.Duration
	calls    int
}

func (f *fakeGetter) Get(ctx context.Context, collection, id string) (*client.Document, error) {
	f.mu.Lock()
	f.calls++
	delay := f.delays[id]
	err := f.errs[id]
	fields, ok := f.profiles[id]
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &client.Document{ID: id, Fields: fields}, nil
}

func (f *fakeGetter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// collector gathers published feeds.
type collector struct {
	mu    sync.Mutex
	feeds [][]models.EnrichedPost
}

func (c *collector) publish(posts []models.EnrichedPost) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.feeds = append(c.feeds, posts)
}

func (c *collector) last() []models.EnrichedPost {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.feeds) == 0 {
		return nil
	}
	return c.feeds[len(c.feeds)-1]
}

func (c *collector) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.feeds)
}

func postDoc(id, userID, text string) client.Document {
	return client.Document{
		ID:     id,
		Fields: []byte(fmt.Sprintf(`{"userId":%q,"text":%q,"images":[],"timestamp":1}`, userID, text)),
	}
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestEnrich_TwoPostScenario(t *testing.T) {
	g := &fakeGetter{profiles: map[string][]byte{
		"u1": []byte(`{"name":"Alice"}`),
	}}
	c := &collector{}
	r := NewFeedReconciler(g, nopLogger{}, 0, c.publish)

	enriched := r.enrich(context.Background(), []client.Document{
		postDoc("p1", "u1", "hi"),
		postDoc("p2", "u2", "yo"),
	})

	require.Len(t, enriched, 2)

	assert.Equal(t, "p1", enriched[0].ID)
	assert.Equal(t, "Alice", enriched[0].UserName)

	// автор без профиля получает фолбэки
	assert.Equal(t, "p2", enriched[1].ID)
	assert.Equal(t, models.FallbackDisplayName, enriched[1].UserName)
	assert.Equal(t, models.FallbackPhotoURL, enriched[1].UserPhotoURL)
}

func TestEnrich_LookupFailureDegradesToFallback(t *testing.T) {
	g := &fakeGetter{errs: map[string]error{"u1": errors.New("connection reset")}}
	r := NewFeedReconciler(g, nopLogger{}, 0, func([]models.EnrichedPost) {})

	enriched := r.enrich(context.Background(), []client.Document{postDoc("p1", "u1", "hi")})

	require.Len(t, enriched, 1)
	assert.Equal(t, models.FallbackDisplayName, enriched[0].UserName)
	assert.Equal(t, models.FallbackPhotoURL, enriched[0].UserPhotoURL)
}

func TestEnrich_SlowLookupHitsTimeoutNotBatchFailure(t *testing.T) {
	g := &fakeGetter{
		profiles: map[string][]byte{"u1": []byte(`{"name":"Slow"}`)},
		delays:   map[string]time.Duration{"u1": 500 * time.Millisecond},
	}
	r := NewFeedReconciler(g, nopLogger{}, 50*time.Millisecond, func([]models.EnrichedPost) {})

	start := time.Now()
	enriched := r.enrich(context.Background(), []client.Document{postDoc("p1", "u1", "hi")})

	require.Len(t, enriched, 1)
	assert.Equal(t, models.FallbackDisplayName, enriched[0].UserName)
	assert.Less(t, time.Since(start), 400*time.Millisecond, "lookup must be cut off by the timeout")
}

func TestEnrich_OneLookupPerDistinctAuthor(t *testing.T) {
	g := &fakeGetter{profiles: map[string][]byte{"u1": []byte(`{"name":"Alice"}`)}}
	r := NewFeedReconciler(g, nopLogger{}, 0, func([]models.EnrichedPost) {})

	r.enrich(context.Background(), []client.Document{
		postDoc("p1", "u1", "a"),
		postDoc("p2", "u1", "b"),
		postDoc("p3", "u1", "c"),
	})

	assert.Equal(t, 1, g.callCount())
}

func TestEnrich_SkipsUndecodablePosts(t *testing.T) {
	g := &fakeGetter{}
	r := NewFeedReconciler(g, nopLogger{}, 0, func([]models.EnrichedPost) {})

	enriched := r.enrich(context.Background(), []client.Document{
		{ID: "bad", Fields: []byte(`not json`)},
		postDoc("p1", "", "orphan"),
	})

	require.Len(t, enriched, 1)
	assert.Equal(t, "p1", enriched[0].ID)
	assert.Equal(t, models.FallbackDisplayName, enriched[0].UserName)
}

func TestRun_PublishesFullReplacements(t *testing.T) {
	g := &fakeGetter{profiles: map[string][]byte{"u1": []byte(`{"name":"Alice"}`)}}
	c := &collector{}
	r := NewFeedReconciler(g, nopLogger{}, 0, c.publish)

	snapshots := make(chan []client.Document)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		r.Run(ctx, snapshots)
		close(done)
	}()

	snapshots <- []client.Document{postDoc("p1", "u1", "hi")}
	waitFor(t, func() bool { return c.count() == 1 }, "first feed not published")

	snapshots <- []client.Document{postDoc("p2", "u1", "new"), postDoc("p1", "u1", "hi")}
	waitFor(t, func() bool { return c.count() == 2 }, "second feed not published")

	last := c.last()
	require.Len(t, last, 2, "new feed fully replaces the old, not appended")
	assert.Equal(t, "p2", last[0].ID)

	close(snapshots)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after channel close")
	}
}

func TestRun_StaleBatchIsDiscarded(t *testing.T) {
	// первый батч медленный, второй быстрый: медленный должен быть отброшен
	g := &fakeGetter{
		profiles: map[string][]byte{
			"slow": []byte(`{"name":"Slow"}`),
			"fast": []byte(`{"name":"Fast"}`),
		},
		delays: map[string]time.Duration{"slow": 300 * time.Millisecond},
	}
	c := &collector{}
	r := NewFeedReconciler(g, nopLogger{}, time.Second, c.publish)

	snapshots := make(chan []client.Document)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go r.Run(ctx, snapshots)

	snapshots <- []client.Document{postDoc("p1", "slow", "old")}
	snapshots <- []client.Document{postDoc("p2", "fast", "new")}

	waitFor(t, func() bool { return c.count() >= 1 }, "fast batch not published")

	// даём медленному батчу время завершиться
	time.Sleep(500 * time.Millisecond)

	assert.Equal(t, 1, c.count(), "stale batch must be discarded, not published")
	last := c.last()
	require.Len(t, last, 1)
	assert.Equal(t, "p2", last[0].ID)
	assert.Equal(t, "Fast", last[0].UserName)
}

func TestRun_SupersededBatchNeverPublishedEvenIfItSettlesFirst(t *testing.T) {
	// первый батч завершается раньше второго, но к этому моменту он уже
	// вытеснен: публиковаться должен только второй
	g := &fakeGetter{
		profiles: map[string][]byte{
			"fast": []byte(`{"name":"Fast"}`),
			"slow": []byte(`{"name":"Slow"}`),
		},
		delays: map[string]time.Duration{
			"fast": 100 * time.Millisecond,
			"slow": 300 * time.Millisecond,
		},
	}
	c := &collector{}
	r := NewFeedReconciler(g, nopLogger{}, time.Second, c.publish)

	snapshots := make(chan []client.Document)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go r.Run(ctx, snapshots)

	snapshots <- []client.Document{postDoc("p1", "fast", "old")}
	snapshots <- []client.Document{postDoc("p2", "slow", "new")}

	waitFor(t, func() bool { return c.count() >= 1 }, "newest batch not published")

	assert.Equal(t, 1, c.count(), "superseded batch must never be published, even transiently")
	first := c.last()
	require.Len(t, first, 1)
	assert.Equal(t, "p2", first[0].ID, "the first publish must already carry the newest batch")
}

func TestRun_TeardownInvalidatesInFlightBatch(t *testing.T) {
	g := &fakeGetter{
		profiles: map[string][]byte{"u1": []byte(`{"name":"Alice"}`)},
		delays:   map[string]time.Duration{"u1": 200 * time.Millisecond},
	}
	c := &collector{}
	r := NewFeedReconciler(g, nopLogger{}, time.Second, c.publish)

	snapshots := make(chan []client.Document)

	done := make(chan struct{})
	go func() {
		r.Run(context.Background(), snapshots)
		close(done)
	}()

	snapshots <- []client.Document{postDoc("p1", "u1", "hi")}

	// канал закрывается, пока обогащение ещё в полёте
	time.Sleep(50 * time.Millisecond)
	close(snapshots)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after channel close")
	}

	assert.Equal(t, 0, c.count(), "an in-flight batch must be discarded on teardown")
}

func TestRun_CancelInvalidatesInFlightBatch(t *testing.T) {
	g := &fakeGetter{
		profiles: map[string][]byte{"u1": []byte(`{"name":"Alice"}`)},
		delays:   map[string]time.Duration{"u1": 200 * time.Millisecond},
	}
	c := &collector{}
	r := NewFeedReconciler(g, nopLogger{}, time.Second, c.publish)

	snapshots := make(chan []client.Document)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		r.Run(ctx, snapshots)
		close(done)
	}()

	snapshots <- []client.Document{postDoc("p1", "u1", "hi")}

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	assert.Equal(t, 0, c.count(), "an in-flight batch must be discarded on cancel")
}

func TestGalleryReconciler_DecodesAndReplaces(t *testing.T) {
	var mu sync.Mutex
	var published [][]models.GalleryImage

	r := NewGalleryReconciler(nopLogger{}, func(imgs []models.GalleryImage) {
		mu.Lock()
		published = append(published, imgs)
		mu.Unlock()
	})

	snapshots := make(chan []client.Document, 2)
	snapshots <- []client.Document{
		{ID: "g1", Fields: []byte(`{"url":"http://a","uploadedAt":1}`)},
		{ID: "bad", Fields: []byte(`broken`)},
	}
	close(snapshots)

	r.Run(context.Background(), snapshots)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, published, 1)
	require.Len(t, published[0], 1)
	assert.Equal(t, "http://a", published[0][0].URL)
}
