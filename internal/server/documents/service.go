package documents

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/snapfeed/snapfeed/internal/common"
)

// SnapshotLimit caps the number of documents a snapshot carries. The global
// feed has no pagination; a bounded snapshot keeps it from growing without
// limit.
const SnapshotLimit = 100

// Service wraps the repository with change notification: every successful
// write wakes the collection's watchers so their streams re-emit.
type Service struct {
	repo Repository
	hub  *Hub
}

func NewService(repo Repository, hub *Hub) *Service {
	return &Service{repo: repo, hub: hub}
}

// Get returns (nil, nil) when the document does not exist.
func (s *Service) Get(ctx context.Context, collection, id string) (*Document, error) {
	doc, err := s.repo.Get(ctx, collection, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}

func (s *Service) Set(ctx context.Context, collection, id string, fields []byte, merge bool) error {
	if err := validateFields(fields); err != nil {
		return err
	}
	if err := s.repo.Set(ctx, collection, id, fields, merge); err != nil {
		return err
	}
	s.hub.Notify(collection)
	return nil
}

func (s *Service) Add(ctx context.Context, collection string, fields []byte) (string, error) {
	if err := validateFields(fields); err != nil {
		return "", err
	}
	id, err := s.repo.Add(ctx, collection, fields)
	if err != nil {
		return "", err
	}
	s.hub.Notify(collection)
	return id, nil
}

// Snapshot returns the current full view of the matched set, in the order
// Watch streams deliver it.
func (s *Service) Snapshot(ctx context.Context, collection string, filter Filter) ([]*Document, error) {
	return s.repo.List(ctx, collection, filter, SnapshotLimit)
}

// Changes subscribes to write notifications for the collection.
func (s *Service) Changes(collection string) (<-chan struct{}, func()) {
	return s.hub.Subscribe(collection)
}

func validateFields(fields []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(fields, &obj); err != nil {
		return fmt.Errorf("%w: fields must be a JSON object", common.ErrorInvalidArgument)
	}
	return nil
}
