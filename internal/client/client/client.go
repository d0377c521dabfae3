package client

import (
	"context"

	"github.com/snapfeed/snapfeed/internal/client/models"
)

// Document is a raw remote document: an id plus its JSON fields.
type Document struct {
	ID     string
	Fields []byte
}

// WatchStream delivers full snapshots of a watched collection. Recv blocks
// until the next snapshot or a stream error.
type WatchStream interface {
	Recv() ([]Document, error)
}

// Client is the remote store transport. Connectivity failures surface as
// ErrUnavailable, auth failures as ErrUnauthorized.
type Client interface {
	Close() error
	Register(ctx context.Context, username, password, displayName, email string) (string, error)
	Login(ctx context.Context, username, password string) (*models.Identity, error)
	Ping(ctx context.Context) error
	UpdateAccount(ctx context.Context, displayName, photoURL string) error
	GetDocument(ctx context.Context, collection, id string) (*Document, error)
	SetDocument(ctx context.Context, collection, id string, fields []byte, merge bool) error
	AddDocument(ctx context.Context, collection string, fields []byte) (string, error)
	Watch(ctx context.Context, collection, filterField, filterValue string) (WatchStream, error)
}
