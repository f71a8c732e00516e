package editor

import (
	"sync"
	"time"

	"magazine/internal/logger"
	"magazine/internal/metrics"
)

// RefreshListener is notified after a successful save so that views caching
// the persisted shape (listing pages, detail caches) can refresh.
type RefreshListener func(id string)

// SaveResult is the user-visible confirmation of a committed save.
type SaveResult struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	SavedAt time.Time `json:"saved_at"`
}

// Coordinator drives the save operation: snapshot the document, push the
// update to the store, reconcile local state, surface errors. Saves are not
// serialized or coalesced; two saves of the same id are independent
// requests and the store's last write wins.
type Coordinator struct {
	store Store

	mu        sync.Mutex
	listeners []RefreshListener
}

func NewCoordinator(store Store) *Coordinator {
	return &Coordinator{store: store}
}

// OnRefresh registers a listener fired after every successful save.
func (c *Coordinator) OnRefresh(fn RefreshListener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Save pushes the document's current title and content to the store as one
// update keyed by id. The full editable pair is always sent together. On
// success the sent values become the document's persisted snapshot; on
// failure local state is untouched and the store's error passes through so
// the user can retry without losing edits.
func (c *Coordinator) Save(doc *Document) (*SaveResult, error) {
	a := doc.Article()

	err := c.store.UpdateFields(a.ID, map[string]interface{}{
		"title":   a.Title,
		"content": a.Content,
	})
	if err != nil {
		metrics.EditorSavesTotal.WithLabelValues("error").Inc()
		logger.Error("article save failed", "id", a.ID, "error", err)
		return nil, &StoreError{Op: "update", Err: err}
	}

	doc.confirmSave(a.Title, a.Content)
	metrics.EditorSavesTotal.WithLabelValues("success").Inc()
	logger.Info("article saved", "id", a.ID)

	c.mu.Lock()
	listeners := make([]RefreshListener, len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()
	for _, fn := range listeners {
		fn(a.ID)
	}

	return &SaveResult{
		ID:      a.ID,
		Message: "Article saved successfully",
		SavedAt: time.Now(),
	}, nil
}
