package documents

import "sync"

// Hub fans out collection-change notifications to Watch streams.
// A notification carries no payload; watchers re-query the snapshot.
type Hub struct {
	mu       sync.Mutex
	nextID   int
	watchers map[string]map[int]chan struct{}
}

func NewHub() *Hub {
	return &Hub{watchers: make(map[string]map[int]chan struct{})}
}

// Subscribe registers a watcher for the collection. The returned channel
// has capacity 1: notifications coalesce while the watcher is busy, which
// is enough because watchers re-read the full snapshot anyway.
// The cancel func is idempotent.
func (h *Hub) Subscribe(collection string) (<-chan struct{}, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	ch := make(chan struct{}, 1)
	if h.watchers[collection] == nil {
		h.watchers[collection] = make(map[int]chan struct{})
	}
	h.watchers[collection][id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.watchers[collection], id)
			if len(h.watchers[collection]) == 0 {
				delete(h.watchers, collection)
			}
		})
	}

	return ch, cancel
}

// Notify wakes every watcher of the collection. Never blocks: a watcher
// that already has a pending notification is skipped.
func (h *Hub) Notify(collection string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.watchers[collection] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
