package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/snapfeed/snapfeed/internal/client/models"
	"github.com/snapfeed/snapfeed/internal/common"
	"github.com/snapfeed/snapfeed/internal/logging"
)

// uploader abstracts media uploads for testing.
type uploader interface {
	UploadAll(ctx context.Context, paths []string) ([]string, error)
}

// PostService defines post creation.
//
// Contract:
//   - Create: validate the post, upload all attached media, and publish the
//     post document. If any upload fails, nothing is published. Returns the
//     new document id.
type PostService interface {
	Create(ctx context.Context, userID, text string, imagePaths []string) (string, error)
}

type postService struct {
	store    docStore
	uploader uploader
	logger   logging.Logger
}

// NewPostService constructs a PostService over the document store and the
// media uploader.
func NewPostService(d docStore, u uploader, l logging.Logger) PostService {
	return &postService{store: d, uploader: u, logger: l.With("module", "post_service")}
}

func (p *postService) Create(ctx context.Context, userID, text string, imagePaths []string) (string, error) {

	text = strings.TrimSpace(text)
	if text == "" && len(imagePaths) == 0 {
		return "", common.ErrorEmptyPost
	}

	// all uploads must succeed before the post is published
	urls, err := p.uploader.UploadAll(ctx, imagePaths)
	if err != nil {
		return "", fmt.Errorf("media upload error: %w", err)
	}

	post := models.NewPost(userID, text, urls)
	fields, err := post.Encode()
	if err != nil {
		return "", fmt.Errorf("post encoding error: %w", err)
	}

	id, err := p.store.Add(ctx, common.PostsCollection, fields)
	if err != nil {
		return "", fmt.Errorf("post publishing error: %w", err)
	}

	p.appendToGallery(ctx, userID, urls)

	return id, nil
}

// appendToGallery records uploaded images in the author's gallery. The post
// is already published at this point, so failures are logged, not returned.
func (p *postService) appendToGallery(ctx context.Context, userID string, urls []string) {

	now := time.Now().UnixMilli()
	for _, url := range urls {
		img := &models.GalleryImage{URL: url, UploadedAt: now}
		fields, err := img.Encode()
		if err != nil {
			p.logger.Warn(ctx, "gallery encoding failed", "url", url, "error", err)
			continue
		}
		if _, err := p.store.Add(ctx, common.GalleryCollection(userID), fields); err != nil {
			p.logger.Warn(ctx, "gallery update failed", "url", url, "error", err)
		}
	}
}
