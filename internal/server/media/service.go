// Package media implements the HTTP upload endpoint: a multipart POST
// gated by a fixed upload preset, stored into S3-compatible object storage,
// answered with a JSON body carrying the public URL of the blob.
package media

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	sc "github.com/snapfeed/snapfeed/internal/server/config"
)

// BlobStore is the object-storage surface the service needs.
type BlobStore interface {
	Put(ctx context.Context, key string, contentType string, body []byte) error
}

type Service struct {
	store         BlobStore
	publicBaseURL string
}

func NewService(store BlobStore, cfg *sc.Config) *Service {
	return &Service{
		store:         store,
		publicBaseURL: strings.TrimRight(cfg.MediaPublicBaseURL, "/"),
	}
}

// storageKey spreads objects by date so buckets stay listable.
func storageKey() string {
	d := time.Now()
	return fmt.Sprintf("users/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

// Store writes the blob and returns its public URL.
func (s *Service) Store(ctx context.Context, contentType string, body []byte) (string, error) {
	key := storageKey()
	if err := s.store.Put(ctx, key, contentType, body); err != nil {
		return "", fmt.Errorf("blob store error: %w", err)
	}
	return s.publicBaseURL + "/" + key, nil
}
