package store

import (
	"context"
	"errors"
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

// scriptedStream feeds snapshots from a channel; a closed channel yields err.
// Recv unblocks on context cancel the way a real gRPC stream does.
type scriptedStream struct {
	ch  chan []client.Document
	err error
	ctx context.Context
}

func (s *scriptedStream) Recv() ([]client.Document, error) {
	select {
	case docs, ok := <-s.ch:
		if !ok {
			return nil, s.err
		}
		return docs, nil
	case <-s.ctx.Done():
		return nil, s.ctx.Err()
	}
}

type fakeClient struct {
	mu      sync.Mutex
	streams []*scriptedStream
	watches int

	getDoc *client.Document
	getErr error
	setErr error
	addID  string
	addErr error
}

func (f *fakeClient) Close() error { return nil }
func (f *fakeClient) Register(ctx context.Context, username, password, displayName, email string) (string, error) {
	return "", nil
}
func (f *fakeClient) Login(ctx context.Context, username, password string) (*models.Identity, error) {
	return nil, nil
}
func (f *fakeClient) Ping(ctx context.Context) error { return nil }
func (f *fakeClient) UpdateAccount(ctx context.Context, displayName, photoURL string) error {
	return nil
}
func (f *fakeClient) GetDocument(ctx context.Context, collection, id string) (*client.Document, error) {
	return f.getDoc, f.getErr
}
func (f *fakeClient) SetDocument(ctx context.Context, collection, id string, fields []byte, merge bool) error {
	return f.setErr
}
func (f *fakeClient) AddDocument(ctx context.Context, collection string, fields []byte) (string, error) {
	return f.addID, f.addErr
}

func (f *fakeClient) Watch(ctx context.Context, collection, filterField, filterValue string) (client.WatchStream, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.watches >= len(f.streams) {
		return nil, client.ErrUnavailable
	}
	s := f.streams[f.watches]
	s.ctx = ctx
	f.watches++
	return s, nil
}

func (f *fakeClient) watchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.watches
}

func doc(id string) client.Document {
	return client.Document{ID: id, Fields: []byte(`{}`)}
}

func recvSnapshot(t *testing.T, sub *Subscription) []client.Document {
	t.Helper()
	select {
	case docs := <-sub.Snapshots():
		return docs
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot received")
		return nil
	}
}

func TestSubscribe_DeliversSnapshots(t *testing.T) {
	stream := &scriptedStream{ch: make(chan []client.Document, 2)}
	stream.ch <- []client.Document{doc("p1")}
	stream.ch <- []client.Document{doc("p1"), doc("p2")}

	f := &fakeClient{streams: []*scriptedStream{stream}}
	s := NewStore(f, nopLogger{})

	sub := s.Subscribe(context.Background(), "posts", "", "")
	defer sub.Teardown()

	first := recvSnapshot(t, sub)
	require.Len(t, first, 1)
	assert.Equal(t, "p1", first[0].ID)

	second := recvSnapshot(t, sub)
	require.Len(t, second, 2)
}

func TestSubscribe_ResubscribesAfterStreamDrop(t *testing.T) {
	first := &scriptedStream{ch: make(chan []client.Document, 1), err: errors.New("dropped")}
	first.ch <- []client.Document{doc("p1")}
	close(first.ch)

	second := &scriptedStream{ch: make(chan []client.Document, 1)}
	second.ch <- []client.Document{doc("p1"), doc("p2")}

	f := &fakeClient{streams: []*scriptedStream{first, second}}
	s := NewStore(f, nopLogger{})

	sub := s.Subscribe(context.Background(), "posts", "", "")
	defer sub.Teardown()

	got := recvSnapshot(t, sub)
	require.Len(t, got, 1)

	// после обрыва стрима подписка должна восстановиться сама
	got = recvSnapshot(t, sub)
	require.Len(t, got, 2)

	assert.GreaterOrEqual(t, f.watchCount(), 2)
}

func TestSubscribe_CoalescesToLatest(t *testing.T) {
	stream := &scriptedStream{ch: make(chan []client.Document)}
	f := &fakeClient{streams: []*scriptedStream{stream}}
	s := NewStore(f, nopLogger{})

	sub := s.Subscribe(context.Background(), "posts", "", "")
	defer sub.Teardown()

	// не читаем из канала, пока не отправим несколько снапшотов
	stream.ch <- []client.Document{doc("p1")}
	stream.ch <- []client.Document{doc("p1"), doc("p2")}
	stream.ch <- []client.Document{doc("p1"), doc("p2"), doc("p3")}

	deadline := time.After(2 * time.Second)
	var got []client.Document
	for len(got) != 3 {
		select {
		case got = <-sub.Snapshots():
		case <-deadline:
			t.Fatalf("latest snapshot never delivered, last len=%d", len(got))
		}
	}
}

func TestTeardown_IsIdempotentAndClosesChannel(t *testing.T) {
	stream := &scriptedStream{ch: make(chan []client.Document)}
	f := &fakeClient{streams: []*scriptedStream{stream}}
	s := NewStore(f, nopLogger{})

	sub := s.Subscribe(context.Background(), "posts", "", "")

	sub.Teardown()
	sub.Teardown()
	sub.Teardown()

	select {
	case _, ok := <-sub.Snapshots():
		assert.False(t, ok, "snapshot channel must be closed after teardown")
	case <-time.After(2 * time.Second):
		t.Fatal("snapshot channel not closed")
	}
}

func TestSubscribe_ContextCancelStopsSubscription(t *testing.T) {
	stream := &scriptedStream{ch: make(chan []client.Document)}
	f := &fakeClient{streams: []*scriptedStream{stream}}
	s := NewStore(f, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	sub := s.Subscribe(ctx, "posts", "", "")

	cancel()

	select {
	case <-sub.done:
	case <-time.After(2 * time.Second):
		t.Fatal("subscription did not stop after context cancel")
	}
}
