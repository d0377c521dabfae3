package documents

import "context"

// Repository is the persistence contract of the document store.
//
// Get returns common.ErrorNotFound for a missing document; the service layer
// translates that into an option-style "not found" for the API.
type Repository interface {
	Get(ctx context.Context, collection, id string) (*Document, error)
	Set(ctx context.Context, collection, id string, fields []byte, merge bool) error
	Add(ctx context.Context, collection string, fields []byte) (string, error)
	List(ctx context.Context, collection string, filter Filter, limit int) ([]*Document, error)
}
