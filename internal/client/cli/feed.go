package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/snapfeed/snapfeed/internal/client/models"
	"github.com/snapfeed/snapfeed/internal/client/view"
	"github.com/snapfeed/snapfeed/internal/common"
)

// startSubscriptions opens the live subscriptions for the signed-in user:
// the shared posts feed, the user's own posts, and the user's gallery. All of
// them run under one scope context bound to the current identity. The
// lifecycle runs teardowns newest-first, so the cancel registered last fires
// before the subscription teardowns: enrichment batches still in flight are
// invalidated and nothing issued under the old identity is published after
// Logout.
func (a *App) startSubscriptions(ctx context.Context) {

	scopeCtx, cancel := context.WithCancel(ctx)

	feedSub := a.store.Subscribe(scopeCtx, common.PostsCollection, "", "")
	feedRec := view.NewFeedReconciler(a.store, a.logger, a.config.EnrichTimeout, a.setFeed)
	go feedRec.Run(scopeCtx, feedSub.Snapshots())
	a.lifecycle.Add(feedSub.Teardown)

	mySub := a.store.Subscribe(scopeCtx, common.PostsCollection, "userId", a.identity.UserID)
	myRec := view.NewFeedReconciler(a.store, a.logger, a.config.EnrichTimeout, a.setMyPosts)
	go myRec.Run(scopeCtx, mySub.Snapshots())
	a.lifecycle.Add(mySub.Teardown)

	gallerySub := a.store.Subscribe(scopeCtx, common.GalleryCollection(a.identity.UserID), "", "")
	galleryRec := view.NewGalleryReconciler(a.logger, a.setGallery)
	go galleryRec.Run(scopeCtx, gallerySub.Snapshots())
	a.lifecycle.Add(gallerySub.Teardown)

	a.lifecycle.Add(cancel)
}

// Feed prints the current enriched feed snapshot. The snapshot is kept up to
// date in the background; this command only renders it.
func (a *App) Feed(ctx context.Context) error {
	posts := a.currentFeed()
	if len(posts) == 0 {
		printlnFn("The feed is empty.")
		return nil
	}

	printPosts(posts)
	return nil
}

// MyPosts prints the signed-in user's own posts, the profile-page view of the
// feed.
func (a *App) MyPosts(ctx context.Context) error {
	posts := a.currentMyPosts()
	if len(posts) == 0 {
		printlnFn("You have no posts yet.")
		return nil
	}

	printPosts(posts)
	return nil
}

func printPosts(posts []models.EnrichedPost) {
	for _, p := range posts {
		ts := time.UnixMilli(p.Timestamp).Format("2006-01-02 15:04")
		printlnFn(fmt.Sprintf("[%s] %s", ts, p.UserName))
		if p.Text != "" {
			printlnFn("  " + p.Text)
		}
		if len(p.Images) > 0 {
			printlnFn("  images: " + strings.Join(p.Images, ", "))
		}
	}
}

// Gallery prints the user's own uploaded images.
func (a *App) Gallery(ctx context.Context) error {
	images := a.currentGallery()
	if len(images) == 0 {
		printlnFn("The gallery is empty.")
		return nil
	}

	for _, img := range images {
		ts := time.UnixMilli(img.UploadedAt).Format("2006-01-02 15:04")
		printlnFn(fmt.Sprintf("[%s] %s", ts, img.URL))
	}
	return nil
}
