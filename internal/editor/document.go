package editor

import (
	"fmt"
	"sync"

	"magazine/internal/models"
)

// Store is the slice of the content store the editor core depends on.
// repository.ArticleRepository satisfies it.
type Store interface {
	FindByID(id string) (*models.Article, error)
	UpdateFields(id string, fields map[string]interface{}) error
}

// Editable field names accepted by SetField.
const (
	FieldTitle   = "title"
	FieldContent = "content"
	FieldIntro   = "intro"
	FieldImage   = "image"
	FieldType    = "type"
)

// Document holds the editable snapshot of exactly one article. It is owned
// by the editing session that loaded it; the mutex only makes a late save
// response safe to apply after the owning view is gone.
type Document struct {
	mu       sync.Mutex
	article  models.Article
	snapshot models.Article
}

// LoadDocument fetches the article by id and wraps it in a fresh Document.
// Any store failure, including a missing record, yields ErrNotFound and no
// Document is constructed.
func LoadDocument(store Store, id string) (*Document, error) {
	article, err := store.FindByID(id)
	if err != nil || article == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return &Document{
		article:  *article,
		snapshot: *article,
	}, nil
}

// NewDocument wraps an already-fetched article, treating it as the clean
// persisted snapshot. Used when a listing view hands an article off to the
// editor without a second fetch.
func NewDocument(article models.Article) *Document {
	return &Document{
		article:  article,
		snapshot: article,
	}
}

// ID returns the immutable article id.
func (d *Document) ID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.article.ID
}

// SetField replaces one field of the local snapshot. The store is not
// touched and the value is accepted as-is; malformed markup is the caller's
// to keep.
func (d *Document) SetField(name, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch name {
	case FieldTitle:
		d.article.Title = value
	case FieldContent:
		d.article.Content = value
	case FieldIntro:
		d.article.Intro = value
	case FieldImage:
		d.article.Image = value
	case FieldType:
		d.article.Type = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// Field reads one editable field from the local snapshot. Unknown names
// read as empty.
func (d *Document) Field(name string) string {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch name {
	case FieldTitle:
		return d.article.Title
	case FieldContent:
		return d.article.Content
	case FieldIntro:
		return d.article.Intro
	case FieldImage:
		return d.article.Image
	case FieldType:
		return d.article.Type
	}
	return ""
}

// IsDirty reports whether any editable field differs from the last
// loaded-or-saved snapshot. It gates UI affordances only; a save is never
// blocked on it.
func (d *Document) IsDirty() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.article.Title != d.snapshot.Title ||
		d.article.Content != d.snapshot.Content ||
		d.article.Intro != d.snapshot.Intro ||
		d.article.Image != d.snapshot.Image ||
		d.article.Type != d.snapshot.Type
}

// Article returns a copy of the current editable state.
func (d *Document) Article() models.Article {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.article
}

// confirmSave records that title and content were persisted with the given
// values. Only the persisted fields move into the snapshot, so edits made
// while the save was in flight keep the document dirty.
func (d *Document) confirmSave(title, content string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.snapshot.Title = title
	d.snapshot.Content = content
}
