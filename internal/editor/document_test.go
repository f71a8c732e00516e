package editor

import (
	"testing"

	"magazine/internal/models"

	"github.com/stretchr/testify/assert"
)

func testArticle() models.Article {
	return models.Article{
		ID:      "a1",
		Title:   "Original title",
		Content: "<p>Original content</p>",
		Intro:   "A summary",
		Type:    "interview",
		Status:  true,
	}
}

func TestLoadDocument(t *testing.T) {
	store := newFakeStore(testArticle())

	doc, err := LoadDocument(store, "a1")

	assert.NoError(t, err)
	assert.Equal(t, "a1", doc.ID())
	assert.Equal(t, "Original title", doc.Field(FieldTitle))
	assert.Equal(t, "<p>Original content</p>", doc.Field(FieldContent))
	assert.False(t, doc.IsDirty())
}

func TestLoadDocumentNotFound(t *testing.T) {
	store := newFakeStore()

	doc, err := LoadDocument(store, "nonexistent-id")

	assert.Nil(t, doc)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetFieldUnknown(t *testing.T) {
	doc := NewDocument(testArticle())

	err := doc.SetField("publisher", "nobody")

	assert.ErrorIs(t, err, ErrUnknownField)
	assert.False(t, doc.IsDirty())
}

func TestDirtyTracking(t *testing.T) {
	type step struct {
		field, value string
		wantDirty    bool
	}
	tests := []struct {
		name  string
		steps []step
	}{
		{
			name: "single edit makes dirty",
			steps: []step{
				{FieldTitle, "Changed", true},
			},
		},
		{
			name: "reverting an edit makes clean again",
			steps: []step{
				{FieldTitle, "Changed", true},
				{FieldTitle, "Original title", false},
			},
		},
		{
			name: "setting the same value stays clean",
			steps: []step{
				{FieldContent, "<p>Original content</p>", false},
			},
		},
		{
			name: "dirty while any field differs",
			steps: []step{
				{FieldTitle, "Changed", true},
				{FieldContent, "<p>Also changed</p>", true},
				{FieldTitle, "Original title", true},
				{FieldContent, "<p>Original content</p>", false},
			},
		},
		{
			name: "non-persisted fields count too",
			steps: []step{
				{FieldIntro, "New summary", true},
				{FieldIntro, "A summary", false},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDocument(testArticle())
			assert.False(t, doc.IsDirty())

			for i, s := range tt.steps {
				assert.NoError(t, doc.SetField(s.field, s.value))
				assert.Equalf(t, s.wantDirty, doc.IsDirty(), "after step %d", i)
			}
		})
	}
}

func TestSetFieldAcceptsMalformedMarkup(t *testing.T) {
	doc := NewDocument(testArticle())

	assert.NoError(t, doc.SetField(FieldContent, "<p>unclosed <strong>tag"))
	assert.Equal(t, "<p>unclosed <strong>tag", doc.Field(FieldContent))
}

func TestArticleReturnsCopy(t *testing.T) {
	doc := NewDocument(testArticle())

	a := doc.Article()
	a.Title = "Mutated copy"

	assert.Equal(t, "Original title", doc.Field(FieldTitle))
}
