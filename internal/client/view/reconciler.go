// Package view turns raw document snapshots into display-ready state. The
// feed reconciler joins every post batch with its authors' profiles, applies
// fallbacks for missing data, and publishes full replacements of the feed.
// Batches carry monotonic sequence numbers; only the most recently received
// batch is ever published, a superseded batch is discarded when it settles.
// Teardown invalidates batches still in flight.
package view

import (
	"context"
	"sync"
	"time"

	"github.com/snapfeed/snapfeed/internal/client/client"
	"github.com/snapfeed/snapfeed/internal/client/models"
	"github.com/snapfeed/snapfeed/internal/common"
	"github.com/snapfeed/snapfeed/internal/logging"
)

// DefaultEnrichTimeout bounds a single author-profile lookup.
const DefaultEnrichTimeout = 2 * time.Second

// documentGetter is the slice of the store the reconciler needs.
type documentGetter interface {
	Get(ctx context.Context, collection, id string) (*client.Document, error)
}

// FeedReconciler consumes post snapshots, enriches them, and publishes the
// result. Publish receives the complete new feed; the previous one is fully
// replaced, never patched.
type FeedReconciler struct {
	store         documentGetter
	logger        logging.Logger
	enrichTimeout time.Duration
	publish       func([]models.EnrichedPost)

	mu      sync.Mutex
	nextSeq uint64
	stopped bool
	wg      sync.WaitGroup
}

func NewFeedReconciler(store documentGetter, logger logging.Logger, enrichTimeout time.Duration, publish func([]models.EnrichedPost)) *FeedReconciler {
	if enrichTimeout <= 0 {
		enrichTimeout = DefaultEnrichTimeout
	}
	return &FeedReconciler{
		store:         store,
		logger:        logger.With("module", "feed_reconciler"),
		enrichTimeout: enrichTimeout,
		publish:       publish,
	}
}

// Run consumes snapshots until the channel closes or ctx is cancelled.
// Each batch is enriched on its own goroutine, so a stalled lookup in one
// batch never blocks newer snapshots.
func (r *FeedReconciler) Run(ctx context.Context, snapshots <-chan []client.Document) {
	for {
		select {
		case <-ctx.Done():
			r.stop()
			r.wg.Wait()
			return
		case docs, ok := <-snapshots:
			if !ok {
				r.stop()
				r.wg.Wait()
				return
			}
			seq := r.claimSeq()
			r.wg.Add(1)
			go func() {
				defer r.wg.Done()
				r.process(ctx, seq, docs)
			}()
		}
	}
}

func (r *FeedReconciler) claimSeq() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextSeq++
	return r.nextSeq
}

// stop invalidates every batch still in flight; their results are discarded
// when they settle.
func (r *FeedReconciler) stop() {
	r.mu.Lock()
	r.stopped = true
	r.mu.Unlock()
}

// process enriches one batch and publishes it, unless the batch has been
// superseded by a newer snapshot or the reconciler was torn down while the
// enrichment was in flight.
func (r *FeedReconciler) process(ctx context.Context, seq uint64, docs []client.Document) {

	enriched := r.enrich(ctx, docs)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped || ctx.Err() != nil {
		r.logger.Debug(ctx, "discarding batch after teardown", "seq", seq)
		return
	}
	if seq != r.nextSeq {
		r.logger.Debug(ctx, "discarding superseded batch", "seq", seq, "newest", r.nextSeq)
		return
	}

	r.publish(enriched)
}

// enrich joins posts with their authors' profiles. The join is all-or-nothing
// per batch: every post comes back enriched, with fallbacks substituted where
// a profile is missing or a lookup fails. A lookup failure is logged, never
// propagated.
func (r *FeedReconciler) enrich(ctx context.Context, docs []client.Document) []models.EnrichedPost {

	// one lookup per distinct author
	profiles := make(map[string]*models.UserProfile)

	out := make([]models.EnrichedPost, 0, len(docs))

	for _, d := range docs {
		post, err := models.DecodePost(d.ID, d.Fields)
		if err != nil {
			r.logger.Warn(ctx, "skipping undecodable post", "id", d.ID, "error", err)
			continue
		}

		profile, seen := profiles[post.UserID]
		if !seen {
			profile = r.lookupProfile(ctx, post.UserID)
			profiles[post.UserID] = profile
		}

		name := profile.BestName()
		if name == "" {
			name = models.FallbackDisplayName
		}
		photo := profile.BestPhotoURL()
		if photo == "" {
			photo = models.FallbackPhotoURL
		}

		out = append(out, models.EnrichedPost{
			Post:         *post,
			UserName:     name,
			UserPhotoURL: photo,
		})
	}

	return out
}

// lookupProfile fetches one author profile within the enrichment budget.
// Any failure degrades to a nil profile, which the caller maps to fallbacks.
func (r *FeedReconciler) lookupProfile(ctx context.Context, userID string) *models.UserProfile {
	if userID == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.enrichTimeout)
	defer cancel()

	doc, err := r.store.Get(ctx, common.UsersCollection, userID)
	if err != nil {
		r.logger.Warn(ctx, "profile lookup failed", "userId", userID, "error", err)
		return nil
	}
	if doc == nil {
		return nil
	}

	profile, err := models.DecodeProfile(doc.Fields)
	if err != nil {
		r.logger.Warn(ctx, "undecodable profile", "userId", userID, "error", err)
		return nil
	}
	return profile
}
