// Package store is the client-side view of remote collections. It wraps the
// raw transport with live subscriptions: each subscription delivers full
// snapshots of its matched set and transparently resubscribes, with backoff,
// when the stream drops. Consumers only ever see snapshots, never transport
// errors.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/snapfeed/snapfeed/internal/client/client"
	"github.com/snapfeed/snapfeed/internal/logging"
)

const (
	backoffBase = 500 * time.Millisecond
	backoffCap  = 10 * time.Second
)

// Store reads, writes, and watches remote documents.
type Store struct {
	client client.Client
	logger logging.Logger
}

func NewStore(c client.Client, l logging.Logger) *Store {
	return &Store{client: c, logger: l.With("module", "store")}
}

// Get fetches a single document. A missing document is (nil, nil).
func (s *Store) Get(ctx context.Context, collection, id string) (*client.Document, error) {
	return s.client.GetDocument(ctx, collection, id)
}

// Set writes a document. With merge true only the provided fields change.
func (s *Store) Set(ctx context.Context, collection, id string, fields []byte, merge bool) error {
	return s.client.SetDocument(ctx, collection, id, fields, merge)
}

// Add creates a document with a server-generated id.
func (s *Store) Add(ctx context.Context, collection string, fields []byte) (string, error) {
	return s.client.AddDocument(ctx, collection, fields)
}

// Subscribe opens a live subscription on a collection. Snapshots arrive on
// Subscription.Snapshots until Teardown is called or ctx is cancelled.
func (s *Store) Subscribe(ctx context.Context, collection, filterField, filterValue string) *Subscription {

	ctx, cancel := context.WithCancel(ctx)

	sub := &Subscription{
		snapshots: make(chan []client.Document, 1),
		cancel:    cancel,
		done:      make(chan struct{}),
	}

	go s.run(ctx, sub, collection, filterField, filterValue)

	return sub
}

// run keeps the watch stream alive until the subscription context ends.
// Transport failures trigger resubscription with exponential backoff and are
// never surfaced to the snapshot consumer.
func (s *Store) run(ctx context.Context, sub *Subscription, collection, filterField, filterValue string) {
	defer close(sub.snapshots)
	defer close(sub.done)

	backoff := retry.WithCappedDuration(backoffCap, retry.NewExponential(backoffBase))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {

		stream, err := s.client.Watch(ctx, collection, filterField, filterValue)
		if err != nil {
			s.logger.Warn(ctx, "watch failed, will resubscribe", "collection", collection, "error", err)
			return retry.RetryableError(err)
		}

		for {
			docs, err := stream.Recv()
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				s.logger.Warn(ctx, "stream dropped, will resubscribe", "collection", collection, "error", err)
				return retry.RetryableError(err)
			}
			sub.push(docs)
		}
	})

	if err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Error(ctx, "subscription ended", "collection", collection, "error", err)
	}
}

// Subscription is a live view of one collection. Snapshots are coalesced:
// if the consumer lags, it only sees the most recent one.
type Subscription struct {
	snapshots chan []client.Document
	cancel    context.CancelFunc
	done      chan struct{}
}

// Snapshots delivers the full matched set after every remote change. The
// channel closes after Teardown.
func (s *Subscription) Snapshots() <-chan []client.Document {
	return s.snapshots
}

// push replaces a pending undelivered snapshot with the newer one.
func (s *Subscription) push(docs []client.Document) {
	for {
		select {
		case s.snapshots <- docs:
			return
		default:
			select {
			case <-s.snapshots:
			default:
			}
		}
	}
}

// Teardown stops the subscription. Safe to call multiple times; calls after
// the first are no-ops.
func (s *Subscription) Teardown() {
	s.cancel()
	<-s.done
}
