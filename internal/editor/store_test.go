package editor

import (
	"errors"
	"sync"

	"magazine/internal/models"
)

// fakeStore is an in-memory content store with the same last-write-wins
// update semantics as the real repository.
type fakeStore struct {
	mu        sync.Mutex
	records   map[string]models.Article
	updateErr error
	updates   []map[string]interface{}
	onUpdate  func()
}

func newFakeStore(articles ...models.Article) *fakeStore {
	s := &fakeStore{records: make(map[string]models.Article)}
	for _, a := range articles {
		s.records[a.ID] = a
	}
	return s
}

func (s *fakeStore) FindByID(id string) (*models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.records[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return &a, nil
}

func (s *fakeStore) UpdateFields(id string, fields map[string]interface{}) error {
	s.mu.Lock()
	if s.updateErr != nil {
		err := s.updateErr
		s.mu.Unlock()
		return err
	}
	a := s.records[id]
	if title, ok := fields["title"].(string); ok {
		a.Title = title
	}
	if content, ok := fields["content"].(string); ok {
		a.Content = content
	}
	s.records[id] = a
	s.updates = append(s.updates, fields)
	hook := s.onUpdate
	s.mu.Unlock()

	if hook != nil {
		hook()
	}
	return nil
}

func (s *fakeStore) record(id string) models.Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records[id]
}
