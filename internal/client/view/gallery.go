package view

import (
	"context"

	"github.com/snapfeed/snapfeed/internal/client/client"
	"github.com/snapfeed/snapfeed/internal/client/models"
	"github.com/snapfeed/snapfeed/internal/logging"
)

// GalleryReconciler mirrors a user's gallery subcollection into display
// state. No join is needed; each snapshot fully replaces the previous one.
type GalleryReconciler struct {
	logger  logging.Logger
	publish func([]models.GalleryImage)
}

func NewGalleryReconciler(logger logging.Logger, publish func([]models.GalleryImage)) *GalleryReconciler {
	return &GalleryReconciler{
		logger:  logger.With("module", "gallery_reconciler"),
		publish: publish,
	}
}

// Run consumes snapshots until the channel closes or ctx is cancelled.
func (r *GalleryReconciler) Run(ctx context.Context, snapshots <-chan []client.Document) {
	for {
		select {
		case <-ctx.Done():
			return
		case docs, ok := <-snapshots:
			if !ok {
				return
			}

			images := make([]models.GalleryImage, 0, len(docs))
			for _, d := range docs {
				img, err := models.DecodeGalleryImage(d.ID, d.Fields)
				if err != nil {
					r.logger.Warn(ctx, "skipping undecodable gallery image", "id", d.ID, "error", err)
					continue
				}
				images = append(images, *img)
			}

			r.publish(images)
		}
	}
}
