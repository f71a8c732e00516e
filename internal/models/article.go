package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Article is a single magazine entry. The id is assigned by the store at
// creation and never reassigned. Empty strings stand in for absent fields;
// a draft with no title or content is a valid state.
type Article struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id" example:"4f7c2d9e-1b3a-4c5d-8e6f-7a8b9c0d1e2f"`
	Title     string    `json:"title" example:"An interview with the founder"`
	Content   string    `json:"content" example:"<p>Body markup</p>"`
	Intro     string    `json:"intro,omitempty" example:"A short summary."`
	Image     string    `json:"image,omitempty" example:"https://example.com/cover.jpg"`
	Type      string    `json:"type,omitempty" example:"interview"`
	Status    bool      `gorm:"default:false" json:"status"`
	CreatedAt time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`
}

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
